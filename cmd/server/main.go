package main

import (
	"log"
	"log/slog"
	"os"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"apparel_backend/internal/app/config"
	"apparel_backend/internal/app/di"
	"apparel_backend/internal/app/router"
	authadapters "apparel_backend/internal/feature/auth/adapters"
	authhandler "apparel_backend/internal/feature/auth/transport/handler"
	authusecase "apparel_backend/internal/feature/auth/usecase"
	memhandler "apparel_backend/internal/feature/membership/transport/handler"
	memusecase "apparel_backend/internal/feature/membership/usecase"
	orderadapters "apparel_backend/internal/feature/orders/adapters"
	orderhandler "apparel_backend/internal/feature/orders/transport/handler"
	orderusecase "apparel_backend/internal/feature/orders/usecase"
	profilehandler "apparel_backend/internal/feature/profile/transport/handler"
	profileusecase "apparel_backend/internal/feature/profile/usecase"
	platformdb "apparel_backend/internal/platform/db"
	jwtmw "apparel_backend/internal/platform/jwt"
	platformredis "apparel_backend/internal/platform/redis"
)

func main() {
	cfg := config.Load()

	// JWT_SECRETチェック（開発中の注意喚起）
	if os.Getenv(jwtmw.EnvKeyJWTSecret) == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	// db
	// 接続に失敗してもクラッシュせず、デグレードモードで起動します
	var handlers *router.Handlers
	gdb, err := platformdb.OpenDB(cfg.DatabaseURL)
	if err != nil {
		slog.Warn("database connection failed, running in degraded mode", "error", err)
	} else {
		// Redis（オプションのキャッシュ、無くても動作）
		var rdb *redisv9.Client
		if tmp, rerr := platformredis.NewRedisClient(); rerr != nil {
			log.Println("[WARN] Redis unavailable. Running without cache.")
		} else {
			rdb = tmp
			defer func() {
				if cerr := rdb.Close(); cerr != nil {
					log.Println("[ERROR] Failed to close Redis client:", cerr)
				}
			}()
		}

		// Repository
		userRepo := authadapters.NewUserPostgres(gdb)
		orderRepo := orderadapters.NewOrderPostgres(gdb)
		membershipRepo := di.NewMembershipRepository(rdb, gdb)

		// Usecase
		jwtGen := jwtmw.NewGenerator(os.Getenv(jwtmw.EnvKeyJWTSecret), 24*time.Hour)
		authUC := authusecase.NewAuthUsecase(userRepo, jwtGen)
		profileUC := profileusecase.NewProfileUsecase(userRepo, membershipRepo)
		ordersUC := orderusecase.NewOrdersUsecase(orderRepo)
		membershipUC := memusecase.NewMembershipUsecase(membershipRepo)

		// Handler
		handlers = &router.Handlers{
			Auth:       authhandler.NewAuthHandler(authUC),
			Profile:    profilehandler.NewProfileHandler(profileUC),
			Orders:     orderhandler.NewOrderHandler(ordersUC),
			Membership: memhandler.NewMembershipHandler(membershipUC),
		}
	}

	// ルータ生成
	r := router.NewRouter(cfg, handlers)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
