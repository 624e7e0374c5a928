// Package usecase implements the business logic for the profile feature.
package usecase

import "errors"

var (
	// ErrUsernameTaken is returned when the desired username belongs to a different user.
	ErrUsernameTaken = errors.New("username already exists")
)
