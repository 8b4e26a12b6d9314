package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/smiledental/DCS-SchedulingService/internal/api/handlers"
)

// StaffIDHeader carries the authenticated staff member's id, set by the
// clinic's reverse proxy after session validation.
const StaffIDHeader = "X-Staff-ID"

type contextKey string

const staffIDKey contextKey = "staffID"

// Logger is the logging contract
type Logger interface {
	Warn(format string, v ...interface{})
}

// Auth rejects requests without a valid staff id header and stores the
// id in the request context.
func Auth(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(StaffIDHeader)
			if raw == "" {
				logger.Warn("auth: missing %s header for %s %s", StaffIDHeader, r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, "missing staff id")
				return
			}

			staffID, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || staffID <= 0 {
				logger.Warn("auth: invalid %s header %q for %s %s", StaffIDHeader, raw, r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, "invalid staff id")
				return
			}

			ctx := context.WithValue(r.Context(), staffIDKey, staffID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetStaffID returns the authenticated staff id from the context.
func GetStaffID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(staffIDKey).(int64)
	return id, ok
}
