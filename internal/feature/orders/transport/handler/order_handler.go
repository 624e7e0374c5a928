// Package handler はordersフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"apparel_backend/internal/api"
	"apparel_backend/internal/feature/orders/domain/entity"
	"apparel_backend/internal/feature/orders/transport/http/dto"
	"apparel_backend/internal/feature/orders/usecase"
	jwtmw "apparel_backend/internal/platform/jwt"
)

// OrdersUsecase は注文操作のユースケースを定義します。
type OrdersUsecase interface {
	Create(ctx context.Context, userID uint, total float64, items, selections, design, shippingInfo json.RawMessage) (*entity.Order, error)
	ListByUser(ctx context.Context, userID uint) ([]entity.Order, error)
}

// OrderHandler は注文操作のHTTPリクエストを処理します。
type OrderHandler struct {
	orders OrdersUsecase
}

// NewOrderHandler はOrderHandlerの新しいインスタンスを生成します。
func NewOrderHandler(orders OrdersUsecase) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// Create はPOST /api/ordersを処理します。
// itemsが配列でない、またはtotalが数値でないリクエストは400です。
// それ以外の注文フィールドは不透明なJSONとしてそのまま保存されます。
func (h *OrderHandler) Create(c *gin.Context) {
	userID, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "user ID not found"})
		return
	}

	var req dto.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid order payload"})
		return
	}

	order, err := h.orders.Create(c.Request.Context(), userID, *req.Total, req.Items, req.Selections, req.Design, req.ShippingInfo)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidItems) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid order payload"})
			return
		}
		slog.Error("order creation failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "internal server error"})
		return
	}

	slog.Info("order created", "order_id", order.ID, "user_id", userID, "total", order.Total)
	c.JSON(http.StatusCreated, api.OrderResponse{Order: *order})
}

// List はGET /api/ordersを処理し、呼び出し元の注文を新しい順で返します。
func (h *OrderHandler) List(c *gin.Context) {
	userID, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "user ID not found"})
		return
	}

	orders, err := h.orders.ListByUser(c.Request.Context(), userID)
	if err != nil {
		slog.Error("order listing failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "internal server error"})
		return
	}

	c.JSON(http.StatusOK, api.OrdersResponse{Orders: orders})
}
