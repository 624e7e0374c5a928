// Package dto defines the HTTP request bindings for the orders feature.
package dto

import "encoding/json"

// CreateOrderReq is the request body for POST /api/orders.
// Total is a pointer so that a missing field is distinguishable from 0 and a
// non-numeric value fails the JSON bind. Items must be a JSON array; the
// shape check happens in the usecase. Remaining fields are opaque JSON
// passed through verbatim.
type CreateOrderReq struct {
	Total        *float64        `json:"total" binding:"required"`
	Items        json.RawMessage `json:"items" binding:"required"`
	Selections   json.RawMessage `json:"selections"`
	Design       json.RawMessage `json:"design"`
	ShippingInfo json.RawMessage `json:"shipping_info"`
}
