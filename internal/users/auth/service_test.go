// Copyright (c) 2026 BrewBuzz. All rights reserved.

package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewbuzz/brewbuzz/internal/platform/apperr"
	"github.com/brewbuzz/brewbuzz/internal/platform/sec"
)

// # Test Fakes

type fakeUserRepository struct {
	byEmail map[string]*User
	byID    map[string]*User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{byEmail: map[string]*User{}, byID: map[string]*User{}}
}

func (f *fakeUserRepository) FindByEmail(_ context.Context, email string) (*User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	return user, nil
}

func (f *fakeUserRepository) FindByID(_ context.Context, id string) (*User, error) {
	user, ok := f.byID[id]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	return user, nil
}

func (f *fakeUserRepository) Create(_ context.Context, user *User) error {
	f.byEmail[user.Email] = user
	f.byID[user.ID] = user
	return nil
}

type fakeTokenProvider struct{}

func (fakeTokenProvider) GenerateAccessToken(userID, _, _ string, _ time.Duration) (string, error) {
	return "token-for-" + userID, nil
}

func newTestService() (*Service, *fakeUserRepository) {
	repo := newFakeUserRepository()
	return NewService(repo, fakeTokenProvider{}), repo
}

// # Tests

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a member account with a hashed password", func(t *testing.T) {
		service, repo := newTestService()

		user, err := service.Register(ctx, RegisterInput{Email: "new@example.com", Password: "correct-horse"})
		require.NoError(t, err)

		assert.Equal(t, sec.RoleMember, user.Role)
		assert.NotEmpty(t, user.ID)
		assert.NotEqual(t, "correct-horse", user.PasswordHash)
		assert.True(t, sec.CheckPasswordHash("correct-horse", user.PasswordHash))
		assert.Contains(t, repo.byEmail, "new@example.com")
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		service, _ := newTestService()

		_, err := service.Register(ctx, RegisterInput{Email: "dup@example.com", Password: "correct-horse"})
		require.NoError(t, err)

		_, err = service.Register(ctx, RegisterInput{Email: "dup@example.com", Password: "another-pass"})
		require.Error(t, err)
		assert.Equal(t, apperr.CodeConflict, apperr.As(err).Code)
	})

	t.Run("short passwords fail validation", func(t *testing.T) {
		service, _ := newTestService()

		_, err := service.Register(ctx, RegisterInput{Email: "short@example.com", Password: "tiny"})

		require.Error(t, err)
		assert.Equal(t, apperr.CodeValidation, apperr.As(err).Code)
	})

	t.Run("malformed email fails validation", func(t *testing.T) {
		service, _ := newTestService()

		_, err := service.Register(ctx, RegisterInput{Email: "not-an-email", Password: "correct-horse"})

		require.Error(t, err)
		assert.Equal(t, apperr.CodeValidation, apperr.As(err).Code)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	register := func(service *Service) *User {
		user, err := service.Register(ctx, RegisterInput{Email: "login@example.com", Password: "correct-horse"})
		require.NoError(t, err)
		return user
	}

	t.Run("valid credentials issue a token", func(t *testing.T) {
		service, _ := newTestService()
		user := register(service)

		session, err := service.Login(ctx, LoginInput{Email: "login@example.com", Password: "correct-horse"})
		require.NoError(t, err)

		assert.Equal(t, user.ID, session.User.ID)
		assert.Equal(t, "token-for-"+user.ID, session.AccessToken)
	})

	t.Run("wrong password and unknown email return the same error", func(t *testing.T) {
		service, _ := newTestService()
		register(service)

		_, wrongPassword := service.Login(ctx, LoginInput{Email: "login@example.com", Password: "nope"})
		_, unknownEmail := service.Login(ctx, LoginInput{Email: "nobody@example.com", Password: "correct-horse"})

		require.Error(t, wrongPassword)
		require.Error(t, unknownEmail)
		assert.Equal(t, apperr.As(wrongPassword).Message, apperr.As(unknownEmail).Message)
		assert.Equal(t, apperr.CodeUnauthorized, apperr.As(wrongPassword).Code)
	})
}

func TestMe(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the caller's account", func(t *testing.T) {
		service, _ := newTestService()
		user, err := service.Register(ctx, RegisterInput{Email: "me@example.com", Password: "correct-horse"})
		require.NoError(t, err)

		got, err := service.Me(ctx, &sec.AuthClaims{UserID: user.ID, Role: string(sec.RoleMember)})
		require.NoError(t, err)
		assert.Equal(t, user.Email, got.Email)
	})

	t.Run("anonymous callers are rejected", func(t *testing.T) {
		service, _ := newTestService()

		_, err := service.Me(ctx, nil)

		require.Error(t, err)
		assert.Equal(t, apperr.CodeUnauthorized, apperr.As(err).Code)
	})
}
