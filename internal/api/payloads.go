// Package api defines the JSON request/response payloads shared between the
// HTTP handlers and the API client.
package api

import (
	"time"

	mementity "apparel_backend/internal/feature/membership/domain/entity"
	orderentity "apparel_backend/internal/feature/orders/domain/entity"
)

// ErrorResponse is the error body for every failing endpoint.
// Code is only set for machine-readable failures such as degraded mode.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// MessageResponse is a plain confirmation body.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserInfo is the sanitized user representation. It never carries the
// password hash.
type UserInfo struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}

// ProfileUser is the profile page payload: user fields plus the current
// membership, or null when the user has none.
type ProfileUser struct {
	UserInfo
	Membership *mementity.Membership `json:"membership"`
}

// ProfileResponse wraps the profile payload.
type ProfileResponse struct {
	User ProfileUser `json:"user"`
}

// UpdateProfileResponse is returned by a successful profile update.
type UpdateProfileResponse struct {
	Message string   `json:"message"`
	User    UserInfo `json:"user"`
}

// OrderResponse wraps a single created order.
type OrderResponse struct {
	Order orderentity.Order `json:"order"`
}

// OrdersResponse wraps the caller's order history, newest first.
type OrdersResponse struct {
	Orders []orderentity.Order `json:"orders"`
}

// MembershipResponse wraps a membership, null when the user has none.
type MembershipResponse struct {
	Membership *mementity.Membership `json:"membership"`
}

// BannerResponse is the service banner served at the root path.
type BannerResponse struct {
	Message   string    `json:"message"`
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}

// HealthResponse is the health-check body. Uptime is in seconds.
type HealthResponse struct {
	Status    string    `json:"status"`
	Uptime    float64   `json:"uptime"`
	Timestamp time.Time `json:"timestamp"`
}
