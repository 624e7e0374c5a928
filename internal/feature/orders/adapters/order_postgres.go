// Package adapters はordersフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"gorm.io/gorm"

	"apparel_backend/internal/feature/orders/domain/entity"
	"apparel_backend/internal/feature/orders/usecase"
)

// orderPostgres はOrderRepositoryインターフェースのPostgreSQL実装です。
type orderPostgres struct {
	db *gorm.DB
}

var _ usecase.OrderRepository = (*orderPostgres)(nil)

// NewOrderPostgres は指定されたgorm.DB接続でorderPostgresの新しいインスタンスを生成します。
func NewOrderPostgres(db *gorm.DB) *orderPostgres {
	return &orderPostgres{db: db}
}

// Create は注文をデータベースに追加します。
// JSONフィールドはそのまま保存され、この層では解釈されません。
func (r *orderPostgres) Create(ctx context.Context, order *entity.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

// ListByUser はユーザーの全注文をcreated_at降順で返します。
// 注文が無い場合は空のスライスを返します。
func (r *orderPostgres) ListByUser(ctx context.Context, userID uint) ([]entity.Order, error) {
	orders := make([]entity.Order, 0)
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
