package domain

import "time"

// User is an operator allowed past the login gate.
type User struct {
	UserID       string `json:"userID"` // Primary Key (UUID)
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Name         string `json:"name"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
