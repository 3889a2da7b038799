package domain

import "time"

// LoginLog records a single login attempt. SessionSeconds is the elapsed
// time between login and logout, zero while the session is still open.
type LoginLog struct {
	ID             string
	UserID         string
	Success        bool
	IP             string
	UserAgent      string
	SessionSeconds int
	CreatedAt      time.Time
	LoggedOutAt    *time.Time
}
