package domain

import "time"

// UserRole enumerates supported roles.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

// User represents an account row as stored by the platform. The reporting
// service never writes users; it only reads and aggregates them.
type User struct {
	ID               string
	Username         string
	Email            string
	Role             UserRole
	IsActive         bool
	IsVIP            bool
	Balance          int64
	SubscriptionPlan string
	SubscriptionEnd  *time.Time
	CreatedAt        time.Time
	LastLoginAt      *time.Time
}
