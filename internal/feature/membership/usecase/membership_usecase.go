// Package usecase はmembershipフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"apparel_backend/internal/feature/membership/domain"
	"apparel_backend/internal/feature/membership/domain/entity"
)

// MembershipRepository は会員行の永続化層を抽象化します。
// Goの慣例に従い、インターフェースはコンシューマー（usecase）が定義します。
type MembershipRepository interface {
	// Upsert はuser_idの一意制約をキーに、1回のアトミックな
	// insert-or-updateを実行し、結果の行を返します。
	Upsert(ctx context.Context, m *entity.Membership) (*entity.Membership, error)

	// FindByUserID はユーザーの会員行を取得します。
	// 行が無い場合、ErrMembershipNotFoundを返します。
	FindByUserID(ctx context.Context, userID uint) (*entity.Membership, error)
}

// MembershipUsecase は会員プランの購入（アクティベーション）と照会を実装します。
type MembershipUsecase struct {
	memberships MembershipRepository
}

// NewMembershipUsecase はMembershipUsecaseの新しいインスタンスを生成します。
func NewMembershipUsecase(memberships MembershipRepository) *MembershipUsecase {
	return &MembershipUsecase{memberships: memberships}
}

// Activate はプランカタログを参照して会員行をupsertします。
//   - planIDがカタログに無い場合はErrUnknownPlan
//   - expiresAt = 現在時刻 + プランの日数
//   - transactionId = トリム済みの非空paymentReference、無ければランダムなUUID
//   - provider = 非空の呼び出し元指定値、無ければ "manual"
//
// 再購入は履歴を残さず既存行を上書きします。支払いプロバイダーの参照で
// あるtransaction_idが唯一の監査証跡です。
func (u *MembershipUsecase) Activate(ctx context.Context, userID uint, planID, paymentReference, provider string, rawPayload json.RawMessage) (*entity.Membership, error) {
	plan, ok := domain.PlanByID(planID)
	if !ok {
		return nil, ErrUnknownPlan
	}

	transactionID := strings.TrimSpace(paymentReference)
	if transactionID == "" {
		transactionID = uuid.NewString()
	}
	if provider = strings.TrimSpace(provider); provider == "" {
		provider = "manual"
	}

	now := time.Now()
	expiresAt := now.Add(time.Duration(plan.DurationDays) * 24 * time.Hour)

	m := &entity.Membership{
		UserID:        userID,
		PlanID:        plan.ID,
		Amount:        plan.Amount,
		Currency:      plan.Currency,
		Status:        "active",
		TransactionID: transactionID,
		Provider:      provider,
		StartedAt:     now,
		ExpiresAt:     &expiresAt,
		RawPayload:    normalizePayload(rawPayload),
	}
	return u.memberships.Upsert(ctx, m)
}

// normalizePayload は明示的なJSON null（`"rawPayload": null`）と空バイト列を
// nilに正規化します。nilはSQL NULLとして書き込まれ、upsertのCOALESCEが
// 保存済みのraw_payloadを保持します。jsonbの'null'はNULLではないため、
// ここで区別しないと既存のペイロードが上書きされてしまいます。
func normalizePayload(raw json.RawMessage) datatypes.JSON {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	return datatypes.JSON(raw)
}

// Get はユーザーの会員情報を返します。
// 会員でないことは正常な状態なので、行が無い場合は(nil, nil)を返します。
func (u *MembershipUsecase) Get(ctx context.Context, userID uint) (*entity.Membership, error) {
	m, err := u.memberships.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrMembershipNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return m, nil
}
