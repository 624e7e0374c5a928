package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"apparel_backend/internal/feature/auth/domain/entity"
)

// mockUserRepository is a mock implementation of the UserRepository interface.
type mockUserRepository struct {
	createFn      func(ctx context.Context, user *entity.User) error
	findByEmailFn func(ctx context.Context, email string) (*entity.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	user.ID = 1
	return nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return nil, ErrUserNotFound
}

// mockJWTGenerator is a mock implementation of the JWTGenerator interface.
type mockJWTGenerator struct {
	generateFn func(userID uint, email string) (string, error)
}

func (m *mockJWTGenerator) GenerateToken(userID uint, email string) (string, error) {
	if m.generateFn != nil {
		return m.generateFn(userID, email)
	}
	return "dummy-jwt-token", nil
}

func TestAuthUsecase_Register(t *testing.T) {
	t.Run("success: password is hashed and a token is issued", func(t *testing.T) {
		var created *entity.User
		repo := &mockUserRepository{
			createFn: func(ctx context.Context, user *entity.User) error {
				user.ID = 7
				created = user
				return nil
			},
		}
		uc := NewAuthUsecase(repo, &mockJWTGenerator{})

		token, user, err := uc.Register(context.Background(), "tester", "test@example.com", "password123")

		require.NoError(t, err)
		assert.Equal(t, "dummy-jwt-token", token)
		assert.Equal(t, uint(7), user.ID)
		require.NotNil(t, created)
		assert.NotEqual(t, "password123", created.Password, "plaintext password must never be stored")
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("password123")),
			"stored hash must verify against the original password")
	})

	t.Run("failure: duplicate email propagates", func(t *testing.T) {
		repo := &mockUserRepository{
			createFn: func(ctx context.Context, user *entity.User) error {
				return ErrEmailAlreadyExists
			},
		}
		uc := NewAuthUsecase(repo, &mockJWTGenerator{})

		token, user, err := uc.Register(context.Background(), "tester", "dup@example.com", "password123")

		assert.ErrorIs(t, err, ErrEmailAlreadyExists)
		assert.Empty(t, token)
		assert.Nil(t, user)
	})

	t.Run("failure: token generation error", func(t *testing.T) {
		gen := &mockJWTGenerator{
			generateFn: func(userID uint, email string) (string, error) {
				return "", errors.New("no secret")
			},
		}
		uc := NewAuthUsecase(&mockUserRepository{}, gen)

		token, user, err := uc.Register(context.Background(), "tester", "test@example.com", "password123")

		assert.Error(t, err)
		assert.Empty(t, token)
		assert.Nil(t, user)
	})
}

func TestAuthUsecase_Login(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	knownUser := &entity.User{ID: 1, Username: "tester", Email: "test@example.com", Password: string(hashed)}

	t.Run("success: valid credentials", func(t *testing.T) {
		repo := &mockUserRepository{
			findByEmailFn: func(ctx context.Context, email string) (*entity.User, error) {
				return knownUser, nil
			},
		}
		uc := NewAuthUsecase(repo, &mockJWTGenerator{})

		token, user, err := uc.Login(context.Background(), "test@example.com", "password123")

		require.NoError(t, err)
		assert.Equal(t, "dummy-jwt-token", token)
		assert.Equal(t, uint(1), user.ID)
	})

	t.Run("failure: unknown email", func(t *testing.T) {
		uc := NewAuthUsecase(&mockUserRepository{}, &mockJWTGenerator{})

		token, user, err := uc.Login(context.Background(), "ghost@example.com", "password123")

		assert.ErrorIs(t, err, ErrInvalidCredentials, "unknown email and bad password must be indistinguishable")
		assert.Empty(t, token)
		assert.Nil(t, user)
	})

	t.Run("failure: wrong password", func(t *testing.T) {
		repo := &mockUserRepository{
			findByEmailFn: func(ctx context.Context, email string) (*entity.User, error) {
				return knownUser, nil
			},
		}
		uc := NewAuthUsecase(repo, &mockJWTGenerator{})

		token, user, err := uc.Login(context.Background(), "test@example.com", "wrong-password")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Empty(t, token)
		assert.Nil(t, user)
	})
}
