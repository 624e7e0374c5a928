// Package handler はprofileフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"apparel_backend/internal/api"
	authentity "apparel_backend/internal/feature/auth/domain/entity"
	authusecase "apparel_backend/internal/feature/auth/usecase"
	mementity "apparel_backend/internal/feature/membership/domain/entity"
	"apparel_backend/internal/feature/profile/transport/http/dto"
	"apparel_backend/internal/feature/profile/usecase"
	jwtmw "apparel_backend/internal/platform/jwt"
)

// ProfileUsecase はプロフィール操作のユースケースを定義します。
type ProfileUsecase interface {
	// Get はユーザーのプロフィールと現在の会員情報（無ければnil）を返します。
	Get(ctx context.Context, userID uint) (*authentity.User, *mementity.Membership, error)
	// UpdateUsername はユーザー名を更新し、更新後のユーザーを返します。
	UpdateUsername(ctx context.Context, userID uint, username string) (*authentity.User, error)
}

// ProfileHandler はプロフィール操作のHTTPリクエストを処理します。
type ProfileHandler struct {
	profile ProfileUsecase
}

// NewProfileHandler はProfileHandlerの新しいインスタンスを生成します。
func NewProfileHandler(profile ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{profile: profile}
}

// Get はGET /api/profileを処理します。
// 認証済みユーザーの行が既に存在しない場合は404を返します。
func (h *ProfileHandler) Get(c *gin.Context) {
	userID, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "user ID not found"})
		return
	}

	user, membership, err := h.profile.Get(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, authusecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
			return
		}
		slog.Error("profile fetch failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "internal server error"})
		return
	}

	c.JSON(http.StatusOK, api.ProfileResponse{User: api.ProfileUser{
		UserInfo: api.UserInfo{
			ID:        user.ID,
			Username:  user.Username,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
		},
		Membership: membership,
	}})
}

// Update はPUT /api/profileを処理します。
// - 空のユーザー名は400
// - 別ユーザーが使用中のユーザー名は409
// - ユーザー行が存在しない場合は404
func (h *ProfileHandler) Update(c *gin.Context) {
	userID, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "user ID not found"})
		return
	}

	var req dto.UpdateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request"})
		return
	}

	username := strings.TrimSpace(req.Username)
	if username == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "username is required"})
		return
	}

	user, err := h.profile.UpdateUsername(c.Request.Context(), userID, username)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUsernameTaken):
			c.JSON(http.StatusConflict, api.ErrorResponse{Message: "username already exists"})
		case errors.Is(err, authusecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
		default:
			slog.Error("profile update failed", "error", err, "user_id", userID)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "internal server error"})
		}
		return
	}

	slog.Info("profile updated", "user_id", userID)
	c.JSON(http.StatusOK, api.UpdateProfileResponse{
		Message: "profile updated successfully",
		User: api.UserInfo{
			ID:        user.ID,
			Username:  user.Username,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
		},
	})
}
