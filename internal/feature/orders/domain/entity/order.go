// Package entity はordersフィーチャーのドメインエンティティを定義します。
package entity

import (
	"time"

	"gorm.io/datatypes"

	authentity "apparel_backend/internal/feature/auth/domain/entity"
)

// Order はユーザーのデザイン注文を表します。
// items/selections/design/shipping_info はフロントエンドが保存した
// 不透明なJSONで、この層では中身を解釈しません。
type Order struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index;not null" json:"user_id"`

	// Total は注文金額です。
	Total float64 `gorm:"type:numeric(10,2);not null" json:"total"`

	// Status は作成時に "pending" が設定され、このコアでは遷移しません。
	Status string `gorm:"size:50;default:pending" json:"status"`

	// Items は注文明細の配列です。作成時に配列であることが検証されます。
	Items datatypes.JSON `gorm:"not null" json:"items"`

	// Selections はスタイル・カラー・サイズの選択内容です。
	Selections datatypes.JSON `json:"selections"`

	// Design はデザインキャンバスのシリアライズ状態です。
	Design datatypes.JSON `json:"design"`

	// ShippingInfo は配送先情報です。
	ShippingInfo datatypes.JSON `gorm:"column:shipping_info" json:"shipping_info"`

	CreatedAt time.Time `json:"created_at"`

	// User はユーザー削除時のカスケード削除のための外部キー制約です。
	User *authentity.User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
