package list_bookings

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/smiledental/DCS-SchedulingService/internal/domain"
	listBookings "github.com/smiledental/DCS-SchedulingService/internal/usecase/list_bookings"
)

// ParseRequest reads the listing filters from the query string.
// Required: dateFrom, dateTo. Optional: dentistId, status, q,
// includeDeleted, page, pageSize.
func ParseRequest(r *http.Request) (*listBookings.Request, error) {
	query := r.URL.Query()

	dateFrom, err := time.Parse(domain.DateFormat, query.Get("dateFrom"))
	if err != nil {
		return nil, fmt.Errorf("invalid dateFrom: %w", err)
	}
	dateTo, err := time.Parse(domain.DateFormat, query.Get("dateTo"))
	if err != nil {
		return nil, fmt.Errorf("invalid dateTo: %w", err)
	}

	req := &listBookings.Request{
		DateFrom:   dateFrom,
		DateTo:     dateTo,
		SearchTerm: query.Get("q"),
	}

	if raw := query.Get("dentistId"); raw != "" {
		dentistID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid dentistId: %w", err)
		}
		req.DentistID = &dentistID
	}

	if raw := query.Get("status"); raw != "" {
		req.Status = &raw
	}

	if raw := query.Get("includeDeleted"); raw != "" {
		includeDeleted, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid includeDeleted: %w", err)
		}
		req.IncludeDeleted = includeDeleted
	}

	if raw := query.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid page: %w", err)
		}
		req.Page = page
	}

	if raw := query.Get("pageSize"); raw != "" {
		pageSize, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid pageSize: %w", err)
		}
		req.PageSize = pageSize
	}

	return req, nil
}
