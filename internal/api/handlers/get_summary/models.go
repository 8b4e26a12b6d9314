package get_summary

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/smiledental/DCS-SchedulingService/internal/domain"
	getSummary "github.com/smiledental/DCS-SchedulingService/internal/usecase/get_summary"
)

// ParseRequest reads the summary window from the query string.
// Required: dateFrom, dateTo. Optional: dentistId, includeCancelled,
// includeUnassigned, groupBy.
func ParseRequest(r *http.Request) (*getSummary.Request, error) {
	query := r.URL.Query()

	dateFrom, err := time.Parse(domain.DateFormat, query.Get("dateFrom"))
	if err != nil {
		return nil, fmt.Errorf("invalid dateFrom: %w", err)
	}
	dateTo, err := time.Parse(domain.DateFormat, query.Get("dateTo"))
	if err != nil {
		return nil, fmt.Errorf("invalid dateTo: %w", err)
	}

	req := &getSummary.Request{
		DateFrom: dateFrom,
		DateTo:   dateTo,
		GroupBy:  query.Get("groupBy"),
	}

	if raw := query.Get("dentistId"); raw != "" {
		dentistID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid dentistId: %w", err)
		}
		req.DentistID = &dentistID
	}

	if raw := query.Get("includeCancelled"); raw != "" {
		includeCancelled, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid includeCancelled: %w", err)
		}
		req.IncludeCancelled = includeCancelled
	}

	// Without a dentist filter the summary shows unassigned rows by
	// default; printed day sheets need the whole clinic.
	req.IncludeUnassigned = true
	if raw := query.Get("includeUnassigned"); raw != "" {
		includeUnassigned, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid includeUnassigned: %w", err)
		}
		req.IncludeUnassigned = includeUnassigned
	}

	return req, nil
}
