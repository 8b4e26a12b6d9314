package get_schedule

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/smiledental/DCS-SchedulingService/internal/domain"
	getSchedule "github.com/smiledental/DCS-SchedulingService/internal/usecase/get_schedule"
)

// ParseRequest reads the timetable window from the query string.
// Required: dateFrom, dateTo. Optional: dentistId, includeUnassigned.
func ParseRequest(r *http.Request) (*getSchedule.Request, error) {
	query := r.URL.Query()

	dateFrom, err := time.Parse(domain.DateFormat, query.Get("dateFrom"))
	if err != nil {
		return nil, fmt.Errorf("invalid dateFrom: %w", err)
	}
	dateTo, err := time.Parse(domain.DateFormat, query.Get("dateTo"))
	if err != nil {
		return nil, fmt.Errorf("invalid dateTo: %w", err)
	}

	req := &getSchedule.Request{
		DateFrom: dateFrom,
		DateTo:   dateTo,
	}

	if raw := query.Get("dentistId"); raw != "" {
		dentistID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid dentistId: %w", err)
		}
		req.DentistID = &dentistID
	}

	if raw := query.Get("includeUnassigned"); raw != "" {
		includeUnassigned, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid includeUnassigned: %w", err)
		}
		req.IncludeUnassigned = includeUnassigned
	}

	return req, nil
}
