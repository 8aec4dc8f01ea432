package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"loonbedrijf/internal/domain"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type mockJWT struct {
	mock.Mock
}

func (m *mockJWT) GenerateToken(userID string, role string) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

func hashFor(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		users := new(mockUserRepo)
		tokens := new(mockJWT)
		svc := NewService(users, tokens)

		users.On("GetByEmail", ctx, "jan@maatschapdevries.nl").Return(&domain.User{
			ID:           "user-1",
			Email:        "jan@maatschapdevries.nl",
			PasswordHash: hashFor(t, "geheim123"),
			Role:         domain.RolePortal,
		}, nil)
		tokens.On("GenerateToken", "user-1", "portal").Return("signed-token", nil)

		user, token, err := svc.Login(ctx, LoginRequest{
			Email:    "Jan@MaatschapDeVries.nl ",
			Password: "geheim123",
		})

		assert.NoError(t, err)
		assert.Equal(t, "signed-token", token)
		assert.Equal(t, "user-1", user.ID)
		assert.Empty(t, user.PasswordHash, "hash never leaves the service")
	})

	t.Run("wrong password", func(t *testing.T) {
		users := new(mockUserRepo)
		svc := NewService(users, new(mockJWT))

		users.On("GetByEmail", ctx, "jan@maatschapdevries.nl").Return(&domain.User{
			ID:           "user-1",
			PasswordHash: hashFor(t, "geheim123"),
		}, nil)

		_, _, err := svc.Login(ctx, LoginRequest{
			Email:    "jan@maatschapdevries.nl",
			Password: "fout",
		})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		users := new(mockUserRepo)
		svc := NewService(users, new(mockJWT))

		users.On("GetByEmail", ctx, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)

		_, _, err := svc.Login(ctx, LoginRequest{
			Email:    "nobody@example.com",
			Password: "wat-dan-ook",
		})

		// same error as a wrong password, no account enumeration
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestCurrentUser(t *testing.T) {
	ctx := context.Background()

	users := new(mockUserRepo)
	svc := NewService(users, new(mockJWT))

	users.On("GetByID", ctx, "user-1").Return(&domain.User{
		ID:           "user-1",
		Email:        "jan@maatschapdevries.nl",
		PasswordHash: "should-not-leak",
		Role:         domain.RolePortal,
	}, nil)

	user, err := svc.CurrentUser(ctx, "user-1")

	assert.NoError(t, err)
	assert.Equal(t, "jan@maatschapdevries.nl", user.Email)
	assert.Empty(t, user.PasswordHash)
}
