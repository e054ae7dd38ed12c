package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/gestionformation/formation-api/internal/domain"
	"github.com/gestionformation/formation-api/internal/repository"
)

type fakeAuthUserRepo struct {
	users  map[string]domain.User
	nextID uint
}

func newFakeAuthUserRepo() *fakeAuthUserRepo {
	return &fakeAuthUserRepo{
		users:  make(map[string]domain.User),
		nextID: 1,
	}
}

func (r *fakeAuthUserRepo) Create(_ context.Context, user domain.User) (domain.User, error) {
	if _, ok := r.users[user.Username]; ok {
		return domain.User{}, repository.ErrUsernameExists
	}
	user.ID = r.nextID
	r.nextID++
	r.users[user.Username] = user

	return user, nil
}

func (r *fakeAuthUserRepo) FindByUsername(_ context.Context, username string) (domain.User, error) {
	user, ok := r.users[username]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}

	return user, nil
}

func TestAuthService_Signup(t *testing.T) {
	svc := NewAuthService(newFakeAuthUserRepo())
	ctx := context.Background()

	created, err := svc.Signup(ctx, domain.User{
		Username: "sarah_m",
		Password: "Password123",
		Role:     domain.RoleManager,
	})

	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	// The stored password is a bcrypt hash, never the plaintext.
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("Password123")))

	_, err = svc.Signup(ctx, domain.User{Username: "sarah_m", Password: "Password123"})
	assert.ErrorIs(t, err, ErrUsernameExists)
}

func TestAuthService_Login(t *testing.T) {
	svc := NewAuthService(newFakeAuthUserRepo())
	ctx := context.Background()

	_, err := svc.Signup(ctx, domain.User{Username: "john_doe", Password: "Password123"})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		user, err := svc.Login(ctx, "john_doe", "Password123")

		require.NoError(t, err)
		assert.Equal(t, "john_doe", user.Username)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "john_doe", "WrongPassword1")

		assert.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := svc.Login(ctx, "nobody", "Password123")

		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
