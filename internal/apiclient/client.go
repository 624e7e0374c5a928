// Package apiclient is the Go client for the apparel backend API.
//
// A Client resolves a working backend base URL from a candidate list by
// probing each candidate's /health endpoint with a bounded timeout, caches
// the first success for its own lifetime, and normalizes every failure into
// *APIError. The cached resolution is owned by the client instance, never by
// package-level state, so independent clients cannot cross-contaminate.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"apparel_backend/internal/api"
	platformhttp "apparel_backend/internal/platform/http"
)

// probeTimeout bounds each health-check probe during base-URL discovery.
const probeTimeout = 3 * time.Second

// Client issues typed requests against the backend API.
// It is safe for concurrent use.
type Client struct {
	candidates []string
	httpc      *http.Client

	// resolveOnce memoizes base-URL discovery for the lifetime of this
	// instance.
	resolveOnce sync.Once
	baseURL     string

	mu    sync.RWMutex
	token string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client (mainly for tests).
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) { c.httpc = httpc }
}

// New creates a Client for the given candidate base URLs.
// Candidates are probed lazily, in order, on the first request.
func New(candidates []string, opts ...Option) *Client {
	cleaned := make([]string, 0, len(candidates))
	for _, u := range candidates {
		if u = strings.TrimRight(strings.TrimSpace(u), "/"); u != "" {
			cleaned = append(cleaned, u)
		}
	}
	c := &Client{
		candidates: cleaned,
		httpc:      platformhttp.NewHTTPClient(30 * time.Second),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken attaches a bearer credential to all subsequent requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// ClearToken removes the stored bearer credential.
func (c *Client) ClearToken() { c.SetToken("") }

// BaseURL returns the resolved backend base URL, probing the candidates on
// first use. When no candidate responds, the first candidate is returned so
// subsequent calls fail visibly instead of never being issued.
func (c *Client) BaseURL(ctx context.Context) string {
	c.resolveOnce.Do(func() {
		for _, candidate := range c.candidates {
			if c.probe(ctx, candidate) {
				slog.Info("api base URL resolved", "base_url", candidate)
				c.baseURL = candidate
				return
			}
			slog.Warn("api base URL probe failed", "candidate", candidate)
		}
		if len(c.candidates) > 0 {
			slog.Warn("no reachable api base URL, falling back to first candidate", "base_url", c.candidates[0])
			c.baseURL = c.candidates[0]
		}
	})
	return c.baseURL
}

// probe issues a bounded-timeout GET against the candidate's health endpoint.
func (c *Client) probe(ctx context.Context, baseURL string) bool {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/health", nil)
	if err != nil {
		return false
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return false
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

// request issues one JSON request and decodes the response into out.
// Every failure mode comes back as *APIError.
func (c *Client) request(ctx context.Context, method, endpoint string, body, out any) error {
	url := c.BaseURL(ctx) + endpoint

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return &APIError{Kind: KindNetwork, Endpoint: endpoint, Err: fmt.Errorf("encode request: %w", err)}
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return &APIError{Kind: KindNetwork, Endpoint: endpoint, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	c.mu.RLock()
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	c.mu.RUnlock()

	resp, err := c.httpc.Do(req)
	if err != nil {
		return &APIError{Kind: KindNetwork, Endpoint: endpoint, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Kind: KindNetwork, Endpoint: endpoint, Status: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Surface the structured server message when one exists
		var errBody api.ErrorResponse
		message := ""
		if jsonErr := json.Unmarshal(raw, &errBody); jsonErr == nil {
			message = errBody.Message
		}
		return &APIError{Kind: KindHTTP, Endpoint: endpoint, Status: resp.StatusCode, Message: message}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &APIError{Kind: KindInvalidResponse, Endpoint: endpoint, Status: resp.StatusCode, Err: err}
	}
	return nil
}

// RegisterRequest is the body for Register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body for Login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateOrderRequest is the body for CreateOrder.
type CreateOrderRequest struct {
	Total        float64         `json:"total"`
	Items        json.RawMessage `json:"items"`
	Selections   json.RawMessage `json:"selections,omitempty"`
	Design       json.RawMessage `json:"design,omitempty"`
	ShippingInfo json.RawMessage `json:"shipping_info,omitempty"`
}

// ActivateMembershipRequest is the body for ActivateMembership.
type ActivateMembershipRequest struct {
	PlanID           string          `json:"planId"`
	PaymentReference string          `json:"paymentReference,omitempty"`
	Provider         string          `json:"provider,omitempty"`
	RawPayload       json.RawMessage `json:"rawPayload,omitempty"`
}

// Register creates an account and stores the issued token on the client.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*api.AuthResponse, error) {
	var out api.AuthResponse
	if err := c.request(ctx, http.MethodPost, "/api/register", req, &out); err != nil {
		return nil, err
	}
	c.SetToken(out.Token)
	return &out, nil
}

// Login authenticates and stores the issued token on the client.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*api.AuthResponse, error) {
	var out api.AuthResponse
	if err := c.request(ctx, http.MethodPost, "/api/login", req, &out); err != nil {
		return nil, err
	}
	c.SetToken(out.Token)
	return &out, nil
}

// Profile fetches the authenticated user's profile with its membership.
func (c *Client) Profile(ctx context.Context) (*api.ProfileResponse, error) {
	var out api.ProfileResponse
	if err := c.request(ctx, http.MethodGet, "/api/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile changes the authenticated user's username.
func (c *Client) UpdateProfile(ctx context.Context, username string) (*api.UpdateProfileResponse, error) {
	var out api.UpdateProfileResponse
	body := map[string]string{"username": username}
	if err := c.request(ctx, http.MethodPut, "/api/profile", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateOrder places a design order.
func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (*api.OrderResponse, error) {
	var out api.OrderResponse
	if err := c.request(ctx, http.MethodPost, "/api/orders", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Orders fetches the caller's order history, newest first.
func (c *Client) Orders(ctx context.Context) (*api.OrdersResponse, error) {
	var out api.OrdersResponse
	if err := c.request(ctx, http.MethodGet, "/api/orders", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ActivateMembership purchases (activates) a membership plan.
func (c *Client) ActivateMembership(ctx context.Context, req ActivateMembershipRequest) (*api.MembershipResponse, error) {
	var out api.MembershipResponse
	if err := c.request(ctx, http.MethodPost, "/api/memberships", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Membership fetches the caller's membership; Membership is nil when the
// user has none.
func (c *Client) Membership(ctx context.Context) (*api.MembershipResponse, error) {
	var out api.MembershipResponse
	if err := c.request(ctx, http.MethodGet, "/api/memberships/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Health fetches the backend health status.
func (c *Client) Health(ctx context.Context) (*api.HealthResponse, error) {
	var out api.HealthResponse
	if err := c.request(ctx, http.MethodGet, "/health", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
