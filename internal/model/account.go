package model

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Account represents an admin-console login account
type Account struct {
	ID                 int64      `json:"id"`
	Username           string     `json:"username"`
	Password           string     `json:"-"` // bcrypt hash, never exposed in JSON responses
	Role               string     `json:"role"`
	SubscriptionPlan   string     `json:"subscription_plan"`
	SubscriptionExpiry *time.Time `json:"subscription_expiry,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

// Principal identifies an authenticated caller.
type Principal struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}
