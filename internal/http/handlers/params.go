package handlers

import (
	"net/http"
	"strconv"
	"time"
)

const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100

	// recentRecordLimit caps the preview/download/login lists on the
	// user detail endpoint.
	recentRecordLimit = 20

	dateLayout = "2006-01-02"
)

// pagination reads page/limit query parameters. Invalid or missing values
// fall back to defaults rather than rejecting the request.
func pagination(r *http.Request) (page, limit int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	if page <= 0 {
		page = defaultPage
	}
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

// dateRange reads dateFrom/dateTo as YYYY-MM-DD. Unparseable values are
// treated as absent. The returned "to" bound is exclusive: the day after
// the requested end date, so the range includes the whole end day.
func dateRange(r *http.Request) (from, to time.Time, hasFrom, hasTo bool) {
	if v := r.URL.Query().Get("dateFrom"); v != "" {
		if t, err := time.Parse(dateLayout, v); err == nil {
			from, hasFrom = t.UTC(), true
		}
	}
	if v := r.URL.Query().Get("dateTo"); v != "" {
		if t, err := time.Parse(dateLayout, v); err == nil {
			to, hasTo = t.UTC().Add(24*time.Hour), true
		}
	}
	return from, to, hasFrom, hasTo
}
