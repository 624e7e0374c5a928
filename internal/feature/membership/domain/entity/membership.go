// Package entity defines the domain entities for the membership feature.
package entity

import (
	"time"

	"gorm.io/datatypes"

	authentity "apparel_backend/internal/feature/auth/domain/entity"
)

// Membership is the single current-state record of a user's paid plan.
// Renewal overwrites the row in place; history is intentionally not retained
// and transaction_id is the only audit trail.
type Membership struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// UserID is unique: at most one membership row exists per user.
	// The database-enforced constraint is what makes concurrent purchase
	// calls for the same user race-safe (last writer wins).
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`

	// PlanID is one of the identifiers in the static plan catalog.
	PlanID string `gorm:"size:50;not null" json:"plan_id"`

	Amount   float64 `gorm:"type:numeric(10,2);not null" json:"amount"`
	Currency string  `gorm:"size:10;default:CNY" json:"currency"`
	Status   string  `gorm:"size:20;default:active" json:"status"`

	// TransactionID is the payment-provider reference, unique across rows.
	// A random token is synthesized when the caller supplies none.
	TransactionID string `gorm:"uniqueIndex;size:255;not null" json:"transaction_id"`

	// Provider is the source of the activation, "manual" by default.
	Provider string `gorm:"size:50;default:manual" json:"provider"`

	// StartedAt is reset on every renewal, even when the plan is unchanged.
	StartedAt time.Time `json:"started_at"`

	// ExpiresAt is nil for memberships that never expire.
	ExpiresAt *time.Time `json:"expires_at"`

	// RawPayload is the opaque payment payload. On renewal a stored payload
	// is preserved when the new activation does not supply one.
	RawPayload datatypes.JSON `gorm:"column:raw_payload" json:"raw_payload"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User *authentity.User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// IsActive reports whether the membership grants access at the given time.
// Active is derived, never stored: status must be "active" and the expiry,
// if any, must not have passed. A row with a past expires_at is inactive
// regardless of its stored status field.
func (m *Membership) IsActive(now time.Time) bool {
	if m.Status != "active" {
		return false
	}
	return m.ExpiresAt == nil || !m.ExpiresAt.Before(now)
}
