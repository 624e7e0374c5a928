// Package usecase はordersフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"bytes"
	"context"
	"encoding/json"

	"gorm.io/datatypes"

	"apparel_backend/internal/feature/orders/domain/entity"
)

// OrderRepository は注文エンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはコンシューマー（usecase）が定義します。
type OrderRepository interface {
	// Create は注文を永続化し、サーバー採番のID・タイムスタンプ・
	// デフォルトステータスを設定して返します。
	Create(ctx context.Context, order *entity.Order) error

	// ListByUser はユーザーの全注文をcreated_at降順（新しい順）で返します。
	ListByUser(ctx context.Context, userID uint) ([]entity.Order, error)
}

// OrdersUsecase は注文の作成と一覧取得を実装します。
type OrdersUsecase struct {
	orders OrderRepository
}

// NewOrdersUsecase はOrdersUsecaseの新しいインスタンスを生成します。
func NewOrdersUsecase(orders OrderRepository) *OrdersUsecase {
	return &OrdersUsecase{orders: orders}
}

// Create は注文を作成します。itemsがJSON配列でない場合はErrInvalidItemsを
// 返します。省略されたオプションのJSONフィールドは空オブジェクトとして
// 保存されます（nullでは保存しません）。それ以外のJSONの中身は
// 一切解釈せずそのまま永続化します。
func (u *OrdersUsecase) Create(ctx context.Context, userID uint, total float64, items, selections, design, shippingInfo json.RawMessage) (*entity.Order, error) {
	if !IsJSONArray(items) {
		return nil, ErrInvalidItems
	}

	order := &entity.Order{
		UserID:       userID,
		Total:        total,
		Status:       "pending",
		Items:        datatypes.JSON(items),
		Selections:   orEmptyObject(selections),
		Design:       orEmptyObject(design),
		ShippingInfo: orEmptyObject(shippingInfo),
	}
	if err := u.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// ListByUser はユーザーの注文履歴を新しい順で返します。
func (u *OrdersUsecase) ListByUser(ctx context.Context, userID uint) ([]entity.Order, error) {
	return u.orders.ListByUser(ctx, userID)
}

// IsJSONArray は生のJSON値が配列型かどうかを報告します。
func IsJSONArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '['
}

// orEmptyObject は省略されたJSONフィールドを空オブジェクトに置き換えます。
func orEmptyObject(raw json.RawMessage) datatypes.JSON {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return datatypes.JSON([]byte(`{}`))
	}
	return datatypes.JSON(raw)
}
