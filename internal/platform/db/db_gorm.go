// Package db はデータベース接続とスキーマのブートストラップを提供します。
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	authentity "apparel_backend/internal/feature/auth/domain/entity"
	mementity "apparel_backend/internal/feature/membership/domain/entity"
	orderentity "apparel_backend/internal/feature/orders/domain/entity"
)

const (
	// maxOpenConns は同時DBセッションの上限です。超過したリクエストは
	// プール内でキューイングされます。
	maxOpenConns = 20

	connMaxIdleTime = 30 * time.Second
	connectTimeout  = 2 * time.Second
)

// OpenDB はプール化されたPostgreSQL接続を確立し、スキーマを冪等に
// ブートストラップします。接続に失敗した場合はエラーを返します。
// プロセスを落とすかデグレードモードで継続するかは呼び出し元が決めます。
func OpenDB(databaseURL string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		// ドライバー固有のエラーをgorm.ErrDuplicatedKey等へ正規化します
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxOpenConns)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if err := Migrate(gdb); err != nil {
		return nil, err
	}

	slog.Info("database connected and initialized", "max_open_conns", maxOpenConns)
	return gdb, nil
}

// Migrate はusers・orders・membershipsの3テーブルを冪等に作成します。
// 何度実行しても安全です。
func Migrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(
		&authentity.User{},
		&orderentity.Order{},
		&mementity.Membership{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	// designカラムが存在しなかった頃に作られたデータベースを冪等に
	// アップグレードします
	if !gdb.Migrator().HasColumn(&orderentity.Order{}, "design") {
		if err := gdb.Migrator().AddColumn(&orderentity.Order{}, "design"); err != nil {
			return fmt.Errorf("failed to ensure orders.design column: %w", err)
		}
	}
	return nil
}
