// Package usecase implements the business logic for the membership feature.
package usecase

import "errors"

var (
	// ErrMembershipNotFound is returned when a user has no membership row.
	ErrMembershipNotFound = errors.New("membership not found")

	// ErrUnknownPlan is returned when the requested plan id is not in the catalog.
	ErrUnknownPlan = errors.New("invalid membership plan selected")
)
