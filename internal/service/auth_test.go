package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/security"
)

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	tokens := security.NewTokenManager("test-secret-0123456789abcdef0123456789abcdef", 15)

	member := &domain.Member{
		ID:       "member-1",
		Name:     "Ada Lovelace",
		Email:    "ada@x.com",
		Role:     "student",
		Username: "ada",
		Password: "ada123",
	}

	t.Run("Valid credentials return profile and token", func(t *testing.T) {
		mockMemberRepo := new(MockMemberRepo)
		svc := NewAuthService(mockMemberRepo, tokens)

		mockMemberRepo.On("GetByUsername", ctx, "ada").Return(member, nil).Once()

		profile, token, err := svc.Login(ctx, "ada", "ada123")
		require.NoError(t, err)
		assert.Equal(t, "member-1", profile.ID)
		assert.Equal(t, "Ada Lovelace", profile.Name)
		assert.NotEmpty(t, token)

		claims, err := tokens.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "member-1", claims.MemberID)
		assert.Equal(t, "student", claims.Role)
	})

	t.Run("Username is matched case-insensitively", func(t *testing.T) {
		mockMemberRepo := new(MockMemberRepo)
		svc := NewAuthService(mockMemberRepo, tokens)

		mockMemberRepo.On("GetByUsername", ctx, "ada").Return(member, nil).Once()

		_, _, err := svc.Login(ctx, "  ADA ", "ada123")
		assert.NoError(t, err)
		mockMemberRepo.AssertExpectations(t)
	})

	t.Run("Unknown username", func(t *testing.T) {
		mockMemberRepo := new(MockMemberRepo)
		svc := NewAuthService(mockMemberRepo, tokens)

		mockMemberRepo.On("GetByUsername", ctx, "ghost").Return(nil, domain.ErrNotFound).Once()

		_, _, err := svc.Login(ctx, "ghost", "whatever")
		assert.ErrorIs(t, err, ErrUnknownUsername)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("Wrong password", func(t *testing.T) {
		mockMemberRepo := new(MockMemberRepo)
		svc := NewAuthService(mockMemberRepo, tokens)

		mockMemberRepo.On("GetByUsername", ctx, "ada").Return(member, nil).Once()

		_, _, err := svc.Login(ctx, "ada", "nope")
		assert.ErrorIs(t, err, ErrWrongPassword)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("Missing fields", func(t *testing.T) {
		mockMemberRepo := new(MockMemberRepo)
		svc := NewAuthService(mockMemberRepo, tokens)

		_, _, err := svc.Login(ctx, "", "ada123")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		_, _, err = svc.Login(ctx, "ada", "")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		mockMemberRepo.AssertNotCalled(t, "GetByUsername", ctx, "ada")
	})
}
