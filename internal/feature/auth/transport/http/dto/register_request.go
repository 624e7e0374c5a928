// Package dto defines the HTTP request bindings for the auth feature.
package dto

// RegisterReq is the request body for POST /api/register.
type RegisterReq struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}
