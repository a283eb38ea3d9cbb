package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukaanhq/dukaan/internal/domain"
	"github.com/dukaanhq/dukaan/internal/usecase"
	"github.com/dukaanhq/dukaan/internal/usecase/mocks"
)

func newUserUseCase() *usecase.UserUseCase {
	return usecase.NewUserUseCase(
		mocks.NewMockUserRepository(),
		mocks.NewMockSessionStore(),
		&mocks.MockPasswordHasher{},
		mocks.NewMockTokenIssuer(),
		mocks.NewMockIDGenerator(),
	)
}

func TestUserUseCase_CreateUser(t *testing.T) {
	uc := newUserUseCase()
	ctx := context.Background()

	user, err := uc.CreateUser(ctx, usecase.CreateUserInput{
		Email:    "Owner@Example.com",
		Name:     "Shop Owner",
		Password: "Sup3rSecret",
		Role:     domain.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", user.Email)
	assert.NotEqual(t, "Sup3rSecret", user.HashedPassword)
	assert.True(t, user.Active)

	tests := []struct {
		name  string
		input usecase.CreateUserInput
	}{
		{"duplicate email", usecase.CreateUserInput{
			Email: "owner@example.com", Name: "Dup", Password: "Sup3rSecret", Role: domain.RoleStaff,
		}},
		{"weak password", usecase.CreateUserInput{
			Email: "weak@example.com", Name: "Weak", Password: "short", Role: domain.RoleStaff,
		}},
		{"invalid role", usecase.CreateUserInput{
			Email: "role@example.com", Name: "Role", Password: "Sup3rSecret", Role: domain.Role("superuser"),
		}},
		{"invalid email", usecase.CreateUserInput{
			Email: "not-an-email", Name: "Mail", Password: "Sup3rSecret", Role: domain.RoleStaff,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.CreateUser(ctx, tt.input)
			assert.Error(t, err)
		})
	}
}

func TestUserUseCase_LoginLogout(t *testing.T) {
	uc := newUserUseCase()
	ctx := context.Background()

	_, err := uc.CreateUser(ctx, usecase.CreateUserInput{
		Email:    "owner@example.com",
		Name:     "Shop Owner",
		Password: "Sup3rSecret",
		Role:     domain.RoleAdmin,
	})
	require.NoError(t, err)

	result, err := uc.Login(ctx, "owner@example.com", "Sup3rSecret")
	require.NoError(t, err)
	assert.NotEmpty(t, result.SessionToken)
	assert.NotEmpty(t, result.BearerToken)
	assert.Equal(t, domain.RoleAdmin, result.User.Role)

	t.Run("session resolves to user", func(t *testing.T) {
		user, err := uc.AuthenticateSession(ctx, result.SessionToken)
		require.NoError(t, err)
		assert.Equal(t, result.User.ID, user.ID)
	})

	t.Run("bearer resolves to user", func(t *testing.T) {
		user, err := uc.AuthenticateBearer(ctx, result.BearerToken)
		require.NoError(t, err)
		assert.Equal(t, result.User.ID, user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := uc.Login(ctx, "owner@example.com", "WrongPass1")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := uc.Login(ctx, "ghost@example.com", "Sup3rSecret")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("logout revokes session", func(t *testing.T) {
		require.NoError(t, uc.Logout(ctx, result.SessionToken))

		_, err := uc.AuthenticateSession(ctx, result.SessionToken)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}

func TestUserUseCase_InactiveUserCannotLogin(t *testing.T) {
	uc := newUserUseCase()
	ctx := context.Background()

	user, err := uc.CreateUser(ctx, usecase.CreateUserInput{
		Email:    "staff@example.com",
		Name:     "Staff Member",
		Password: "Sup3rSecret",
		Role:     domain.RoleStaff,
	})
	require.NoError(t, err)

	inactive := false
	_, err = uc.UpdateUser(ctx, usecase.UpdateUserInput{ID: user.ID, Active: &inactive})
	require.NoError(t, err)

	_, err = uc.Login(ctx, "staff@example.com", "Sup3rSecret")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestUserUseCase_UpdateUser(t *testing.T) {
	uc := newUserUseCase()
	ctx := context.Background()

	user, err := uc.CreateUser(ctx, usecase.CreateUserInput{
		Email:    "staff@example.com",
		Name:     "Staff Member",
		Password: "Sup3rSecret",
		Role:     domain.RoleStaff,
	})
	require.NoError(t, err)

	role := domain.RoleManager
	updated, err := uc.UpdateUser(ctx, usecase.UpdateUserInput{ID: user.ID, Role: &role})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleManager, updated.Role)

	t.Run("password change takes effect", func(t *testing.T) {
		newPass := "An0therSecret"
		_, err := uc.UpdateUser(ctx, usecase.UpdateUserInput{ID: user.ID, Password: &newPass})
		require.NoError(t, err)

		_, err = uc.Login(ctx, "staff@example.com", "Sup3rSecret")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)

		_, err = uc.Login(ctx, "staff@example.com", "An0therSecret")
		assert.NoError(t, err)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := uc.UpdateUser(ctx, usecase.UpdateUserInput{ID: "no-such-user"})
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}
