// Package dto defines the HTTP request bindings for the membership feature.
package dto

import "encoding/json"

// ActivateReq is the request body for POST /api/memberships.
// Field names follow the frontend's camelCase contract. A missing or
// non-string planId fails the bind with 400; catalog membership is checked
// by the usecase.
type ActivateReq struct {
	PlanID           string          `json:"planId" binding:"required"`
	PaymentReference string          `json:"paymentReference"`
	Provider         string          `json:"provider"`
	RawPayload       json.RawMessage `json:"rawPayload"`
}
