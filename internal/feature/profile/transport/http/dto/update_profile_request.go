// Package dto defines the HTTP request bindings for the profile feature.
package dto

// UpdateProfileReq is the request body for PUT /api/profile.
// Username presence is checked by the handler so that a blank or
// whitespace-only value is rejected with the same message.
type UpdateProfileReq struct {
	Username string `json:"username"`
}
