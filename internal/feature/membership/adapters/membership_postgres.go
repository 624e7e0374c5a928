// Package adapters はmembershipフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"bytes"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"apparel_backend/internal/feature/membership/domain/entity"
	"apparel_backend/internal/feature/membership/usecase"
)

// membershipPostgres はMembershipRepositoryインターフェースのPostgreSQL実装です。
type membershipPostgres struct {
	db *gorm.DB
}

var _ usecase.MembershipRepository = (*membershipPostgres)(nil)

// NewMembershipPostgres は指定されたgorm.DB接続でmembershipPostgresの新しいインスタンスを生成します。
func NewMembershipPostgres(db *gorm.DB) *membershipPostgres {
	return &membershipPostgres{db: db}
}

// Upsert はuser_idの一意制約をキーに1回のアトミックなINSERT ... ON CONFLICT
// DO UPDATEを実行します。同時実行される購入はデータベースが直列化し、
// 最後の書き込みが勝ちます。
//
// 競合時はplan_id・amount・currency・status・transaction_id・provider・
// expires_atを上書きし、started_atは現在時刻にリセットします（プランが
// 同じでも更新の「開始」時計は巻き戻ります）。raw_payloadだけは例外で、
// 新しい呼び出しがペイロードを持たない場合は保存済みの値を保持します
// （支払いペイロードを再送しない更新でも最後の既知の値を失わないため）。
func (r *membershipPostgres) Upsert(ctx context.Context, m *entity.Membership) (*entity.Membership, error) {
	// JSON nullや空のペイロードはSQL NULLとして書き込みます。jsonbの'null'は
	// NULLではなくCOALESCEを素通りし、保存済みの値を消してしまうためです。
	if trimmed := bytes.TrimSpace(m.RawPayload); len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		m.RawPayload = nil
	}

	assignments := map[string]any{
		"plan_id":        m.PlanID,
		"amount":         m.Amount,
		"currency":       m.Currency,
		"status":         m.Status,
		"transaction_id": m.TransactionID,
		"provider":       m.Provider,
		"started_at":     m.StartedAt,
		"expires_at":     m.ExpiresAt,
		"raw_payload":    gorm.Expr("COALESCE(excluded.raw_payload, memberships.raw_payload)"),
		"updated_at":     gorm.Expr("CURRENT_TIMESTAMP"),
	}

	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(assignments),
	}).Create(m).Error; err != nil {
		return nil, err
	}

	// 競合時はmのIDが採番されないため、結果の行を読み直して返します
	return r.FindByUserID(ctx, m.UserID)
}

// FindByUserID はユーザーの会員行を取得します。
// 行が無い場合、usecase.ErrMembershipNotFoundを返します。
func (r *membershipPostgres) FindByUserID(ctx context.Context, userID uint) (*entity.Membership, error) {
	var m entity.Membership
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrMembershipNotFound
		}
		return nil, err
	}
	return &m, nil
}
