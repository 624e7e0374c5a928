package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apparel_backend/internal/feature/membership/domain/entity"
	"apparel_backend/internal/feature/membership/usecase"
	jwtmw "apparel_backend/internal/platform/jwt"
)

// mockMembershipUsecase is a mock implementation of the MembershipUsecase interface.
type mockMembershipUsecase struct {
	ActivateFunc func(ctx context.Context, userID uint, planID, paymentReference, provider string, rawPayload json.RawMessage) (*entity.Membership, error)
	GetFunc      func(ctx context.Context, userID uint) (*entity.Membership, error)
}

// Activate is the mock implementation of the Activate method.
func (m *mockMembershipUsecase) Activate(ctx context.Context, userID uint, planID, paymentReference, provider string, rawPayload json.RawMessage) (*entity.Membership, error) {
	if m.ActivateFunc != nil {
		return m.ActivateFunc(ctx, userID, planID, paymentReference, provider, rawPayload)
	}
	return nil, errors.New("activate failed") // Default: failure
}

// Get is the mock implementation of the Get method.
func (m *mockMembershipUsecase) Get(ctx context.Context, userID uint) (*entity.Membership, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, userID)
	}
	return nil, nil // Default: not a member
}

// setUserID injects the authenticated user ID the way the JWT middleware does.
func setUserID(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(jwtmw.ContextUserID, userID)
		c.Next()
	}
}

func activeMembership() *entity.Membership {
	expires := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	return &entity.Membership{
		ID:            3,
		UserID:        1,
		PlanID:        "monthly",
		Amount:        188,
		Currency:      "CNY",
		Status:        "active",
		TransactionID: "txn-001",
		Provider:      "manual",
		ExpiresAt:     &expires,
	}
}

func TestMembershipHandler_Activate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name             string
		requestBody      string
		mockActivateFunc func(ctx context.Context, userID uint, planID, paymentReference, provider string, rawPayload json.RawMessage) (*entity.Membership, error)
		expectedStatus   int
		expectedMessage  string
	}{
		{
			name:        "success: plan activated",
			requestBody: `{"planId":"monthly","paymentReference":"txn-001"}`,
			mockActivateFunc: func(ctx context.Context, userID uint, planID, paymentReference, provider string, rawPayload json.RawMessage) (*entity.Membership, error) {
				assert.Equal(t, uint(1), userID)
				assert.Equal(t, "monthly", planID)
				assert.Equal(t, "txn-001", paymentReference)
				return activeMembership(), nil
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:             "failure: missing planId",
			requestBody:      `{"paymentReference":"txn-001"}`,
			mockActivateFunc: nil, // Usecase is not called
			expectedStatus:   http.StatusBadRequest,
			expectedMessage:  "planId is required",
		},
		{
			name:             "failure: planId is not a string",
			requestBody:      `{"planId":42}`,
			mockActivateFunc: nil, // Usecase is not called
			expectedStatus:   http.StatusBadRequest,
			expectedMessage:  "planId is required",
		},
		{
			name:        "failure: unknown plan",
			requestBody: `{"planId":"lifetime"}`,
			mockActivateFunc: func(ctx context.Context, userID uint, planID, paymentReference, provider string, rawPayload json.RawMessage) (*entity.Membership, error) {
				return nil, usecase.ErrUnknownPlan
			},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "invalid membership plan selected",
		},
		{
			name:        "failure: unexpected usecase error",
			requestBody: `{"planId":"monthly"}`,
			mockActivateFunc: func(ctx context.Context, userID uint, planID, paymentReference, provider string, rawPayload json.RawMessage) (*entity.Membership, error) {
				return nil, errors.New("db down")
			},
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewMembershipHandler(&mockMembershipUsecase{ActivateFunc: tt.mockActivateFunc})

			router := gin.New()
			router.POST("/api/memberships", setUserID(1), handler.Activate)

			req, _ := http.NewRequest(http.MethodPost, "/api/memberships", bytes.NewBufferString(tt.requestBody))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

			if tt.expectedStatus == http.StatusCreated {
				membership, ok := body["membership"].(map[string]any)
				require.True(t, ok)
				assert.Equal(t, "monthly", membership["plan_id"])
				assert.Equal(t, "active", membership["status"])
			} else {
				assert.Equal(t, tt.expectedMessage, body["message"])
			}
		})
	}

	t.Run("failure: no user ID in context", func(t *testing.T) {
		handler := NewMembershipHandler(&mockMembershipUsecase{})

		router := gin.New()
		router.POST("/api/memberships", handler.Activate)

		req, _ := http.NewRequest(http.MethodPost, "/api/memberships", bytes.NewBufferString(`{"planId":"monthly"}`))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestMembershipHandler_Me(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success: active membership", func(t *testing.T) {
		handler := NewMembershipHandler(&mockMembershipUsecase{
			GetFunc: func(ctx context.Context, userID uint) (*entity.Membership, error) {
				return activeMembership(), nil
			},
		})

		router := gin.New()
		router.GET("/api/memberships/me", setUserID(1), handler.Me)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/memberships/me", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		membership, ok := body["membership"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "monthly", membership["plan_id"])
	})

	t.Run("success: non-member gets membership null, not 404", func(t *testing.T) {
		handler := NewMembershipHandler(&mockMembershipUsecase{})

		router := gin.New()
		router.GET("/api/memberships/me", setUserID(1), handler.Me)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/memberships/me", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"membership":null}`, w.Body.String())
	})

	t.Run("failure: usecase error", func(t *testing.T) {
		handler := NewMembershipHandler(&mockMembershipUsecase{
			GetFunc: func(ctx context.Context, userID uint) (*entity.Membership, error) {
				return nil, errors.New("db down")
			},
		})

		router := gin.New()
		router.GET("/api/memberships/me", setUserID(1), handler.Me)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/memberships/me", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
