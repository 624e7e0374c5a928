// Package handler はmembershipフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"apparel_backend/internal/api"
	"apparel_backend/internal/feature/membership/domain/entity"
	"apparel_backend/internal/feature/membership/transport/http/dto"
	"apparel_backend/internal/feature/membership/usecase"
	jwtmw "apparel_backend/internal/platform/jwt"
)

// MembershipUsecase は会員操作のユースケースを定義します。
type MembershipUsecase interface {
	// Activate はプランを購入（アクティベート）し、結果の会員行を返します。
	Activate(ctx context.Context, userID uint, planID, paymentReference, provider string, rawPayload json.RawMessage) (*entity.Membership, error)
	// Get はユーザーの会員情報を返します。会員でない場合は(nil, nil)です。
	Get(ctx context.Context, userID uint) (*entity.Membership, error)
}

// MembershipHandler は会員操作のHTTPリクエストを処理します。
type MembershipHandler struct {
	memberships MembershipUsecase
}

// NewMembershipHandler はMembershipHandlerの新しいインスタンスを生成します。
func NewMembershipHandler(memberships MembershipUsecase) *MembershipHandler {
	return &MembershipHandler{memberships: memberships}
}

// Activate はPOST /api/membershipsを処理します。
// 購入フローはデモ用のモックアクティベーションで、実際の決済ゲートウェイには
// 接続しません。planIdが欠落・非文字列・カタログ外の場合は400です。
func (h *MembershipHandler) Activate(c *gin.Context) {
	userID, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "user ID not found"})
		return
	}

	var req dto.ActivateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "planId is required"})
		return
	}

	membership, err := h.memberships.Activate(c.Request.Context(), userID, req.PlanID, req.PaymentReference, req.Provider, req.RawPayload)
	if err != nil {
		if errors.Is(err, usecase.ErrUnknownPlan) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid membership plan selected"})
			return
		}
		slog.Error("membership activation failed", "error", err, "user_id", userID, "plan_id", req.PlanID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "internal server error"})
		return
	}

	slog.Info("membership activated", "user_id", userID, "plan_id", membership.PlanID, "transaction_id", membership.TransactionID)
	c.JSON(http.StatusCreated, api.MembershipResponse{Membership: membership})
}

// Me はGET /api/memberships/meを処理します。
// 会員でないことは正常な状態なので、404ではなくmembership: nullを返します。
func (h *MembershipHandler) Me(c *gin.Context) {
	userID, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "user ID not found"})
		return
	}

	membership, err := h.memberships.Get(c.Request.Context(), userID)
	if err != nil {
		slog.Error("membership fetch failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "internal server error"})
		return
	}

	c.JSON(http.StatusOK, api.MembershipResponse{Membership: membership})
}
