package domain

import "time"

// DailyRegistrations is one bucket of the registration time series.
type DailyRegistrations struct {
	Date  time.Time
	Count int64
}

// DailyLogins is one bucket of the login time series. UniqueUsers counts
// distinct accounts with at least one successful login that day.
type DailyLogins struct {
	Date        time.Time
	UniqueUsers int64
	TotalLogins int64
}

// OnlineDuration aggregates a user's sessions for one day.
type OnlineDuration struct {
	Username     string
	Date         time.Time
	TotalSeconds int64
	SessionCount int64
}

// Overview is the single-shot dashboard panel.
type Overview struct {
	TotalUsers     int64
	ActiveUsers    int64
	TotalPreviews  int64
	TotalDownloads int64
	TotalLogins    int64
}
