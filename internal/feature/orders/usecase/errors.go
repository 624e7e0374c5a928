// Package usecase implements the business logic for the orders feature.
package usecase

import "errors"

var (
	// ErrInvalidItems is returned when the order items payload is not a JSON array.
	ErrInvalidItems = errors.New("order items must be an array")
)
