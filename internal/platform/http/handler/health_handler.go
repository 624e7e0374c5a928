// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"apparel_backend/internal/api"
)

// startTime はアップタイム計算の基準となるプロセス起動時刻です。
var startTime = time.Now()

// Banner はサービスバナー用の / エンドポイントを処理します。
func Banner(c *gin.Context) {
	c.JSON(http.StatusOK, api.BannerResponse{
		Message:   "T-shirt Design Editor API is running!",
		Version:   "1.0.0",
		Timestamp: time.Now(),
	})
}

// Health はサービスヘルスチェック用の /health エンドポイントを処理します。
// フロントエンドのベースURL探索プローブがこのエンドポイントを叩くため、
// データベースの状態に関わらず常に200を返します。
func Health(c *gin.Context) {
	// 明示的にキャッシュを防止
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case http.MethodHead:
		c.Status(http.StatusOK)
	case http.MethodOptions:
		c.Status(http.StatusNoContent)
	default:
		c.JSON(http.StatusOK, api.HealthResponse{
			Status:    "healthy",
			Uptime:    time.Since(startTime).Seconds(),
			Timestamp: time.Now(),
		})
	}
}

// DatabaseUnavailable はデグレードモードで全/api/*ルートに適用される
// ハンドラーです。固定の機械可読コード付きで503を返し、ハンドラーロジックは
// 一切実行されません。
func DatabaseUnavailable(c *gin.Context) {
	c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{
		Message: "Database service is unavailable. Please configure DATABASE_URL.",
		Code:    "DB_CONNECTION_FAILED",
	})
}
