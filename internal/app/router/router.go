package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"apparel_backend/internal/app/config"
	authhandler "apparel_backend/internal/feature/auth/transport/handler"
	memhandler "apparel_backend/internal/feature/membership/transport/handler"
	orderhandler "apparel_backend/internal/feature/orders/transport/handler"
	profilehandler "apparel_backend/internal/feature/profile/transport/handler"
	jwtmw "apparel_backend/internal/platform/jwt"
	platformhandler "apparel_backend/internal/platform/http/handler"
)

// Handlers bundles the feature handlers wired by main. A nil Handlers (or a
// Handlers left zero) means the database connection could not be established
// and the router is built in degraded mode.
type Handlers struct {
	Auth       *authhandler.AuthHandler
	Profile    *profilehandler.ProfileHandler
	Orders     *orderhandler.OrderHandler
	Membership *memhandler.MembershipHandler
}

// NewRouter builds the HTTP routing table.
//
// The service banner and health check are always reachable. When h is nil,
// every /api/* path answers 503 with code DB_CONNECTION_FAILED through a
// single catch-all route: this is decided before any endpoint routing, and
// no feature handler is even registered.
func NewRouter(cfg *config.Config, h *Handlers) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	r.Use(limitBodySize(cfg.BodyLimitBytes))

	// 認証不要
	// 導通確認・ベースURL探索プローブ用
	r.GET("/", platformhandler.Banner)
	r.GET("/health", platformhandler.Health)
	r.HEAD("/health", platformhandler.Health)
	r.OPTIONS("/health", platformhandler.Health)

	api := r.Group("/api")

	// デグレードモード: DB接続なしでは全/api/*ルートが503
	if h == nil {
		api.Any("/*path", platformhandler.DatabaseUnavailable)
		return r
	}

	// 新規ユーザー登録
	api.POST("/register", h.Auth.Register)
	// ログイン（JWT 発行）
	api.POST("/login", h.Auth.Login)

	// 認証必須のルート
	auth := api.Group("")
	// リクエストヘッダーに JWT が必要になる
	auth.Use(jwtmw.AuthRequired())
	{
		auth.GET("/profile", h.Profile.Get)
		auth.PUT("/profile", h.Profile.Update)
		auth.POST("/orders", h.Orders.Create)
		auth.GET("/orders", h.Orders.List)
		auth.POST("/memberships", h.Membership.Activate)
		auth.GET("/memberships/me", h.Membership.Me)
	}

	return r
}

// limitBodySize caps request bodies so oversized design payloads fail fast
// instead of exhausting memory.
func limitBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
