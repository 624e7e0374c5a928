// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered customer in the system.
// It contains authentication credentials and profile metadata.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey" json:"id"`

	// Username is the display name shown on the profile page.
	// Uniqueness is not enforced at this layer; profile updates check it explicitly.
	Username string `gorm:"size:255;not null" json:"username"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null" json:"email"`

	// Password is the bcrypt hash for the user.
	// This should never store plaintext passwords and never leaks into JSON.
	Password string `gorm:"size:255;not null" json:"-"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time `json:"updated_at"`
}
