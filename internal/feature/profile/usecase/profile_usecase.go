// Package usecase はprofileフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"

	authentity "apparel_backend/internal/feature/auth/domain/entity"
	authusecase "apparel_backend/internal/feature/auth/usecase"
	mementity "apparel_backend/internal/feature/membership/domain/entity"
	memusecase "apparel_backend/internal/feature/membership/usecase"
)

// UserRepository はプロフィール操作に必要なユーザー永続化層を抽象化します。
// コンシューマー（このusecase）が必要とする操作のみを定義します。
type UserRepository interface {
	// FindByID はIDでユーザーをパスワード抜きで取得します。
	// ユーザーが存在しない場合、authusecase.ErrUserNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*authentity.User, error)

	// FindByUsername はユーザー名でユーザーを取得します。
	FindByUsername(ctx context.Context, username string) (*authentity.User, error)

	// Update は指定されたフィールドのみを更新し、更新後のユーザーを返します。
	Update(ctx context.Context, id uint, username, email *string) (*authentity.User, error)
}

// MembershipReader は現在の会員情報の読み取りを抽象化します。
type MembershipReader interface {
	// FindByUserID はユーザーの会員行を取得します。
	// 会員でない場合、memusecase.ErrMembershipNotFoundを返します。
	FindByUserID(ctx context.Context, userID uint) (*mementity.Membership, error)
}

// ProfileUsecase はプロフィールの取得と更新を実装します。
type ProfileUsecase struct {
	users       UserRepository
	memberships MembershipReader
}

// NewProfileUsecase はProfileUsecaseの新しいインスタンスを生成します。
func NewProfileUsecase(users UserRepository, memberships MembershipReader) *ProfileUsecase {
	return &ProfileUsecase{users: users, memberships: memberships}
}

// Get は認証済みユーザーのプロフィールと現在の会員情報を返します。
// 会員でない場合、membershipはnilです（エラーではありません）。
func (u *ProfileUsecase) Get(ctx context.Context, userID uint) (*authentity.User, *mementity.Membership, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	membership, err := u.memberships.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, memusecase.ErrMembershipNotFound) {
			return user, nil, nil
		}
		return nil, nil, err
	}
	return user, membership, nil
}

// UpdateUsername はユーザー名を更新します。
// 指定されたユーザー名が別のユーザーに使われている場合、ErrUsernameTakenを返します。
// 同一ユーザーが自分の現在のユーザー名を再送信するのは許可されます。
func (u *ProfileUsecase) UpdateUsername(ctx context.Context, userID uint, username string) (*authentity.User, error) {
	existing, err := u.users.FindByUsername(ctx, username)
	if err != nil && !errors.Is(err, authusecase.ErrUserNotFound) {
		return nil, err
	}
	if err == nil && existing.ID != userID {
		return nil, ErrUsernameTaken
	}

	return u.users.Update(ctx, userID, &username, nil)
}
