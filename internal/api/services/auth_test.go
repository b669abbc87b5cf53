package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rohits-web03/medrecords/internal/apperr"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuth(store *memoryUserStore) *AuthService {
	return NewAuthService(store, bcrypt.MinCost, zerolog.Nop())
}

func TestSignup_ThenLogin(t *testing.T) {
	store := &memoryUserStore{}
	auth := newAuth(store)
	ctx := context.Background()

	require.NoError(t, auth.Signup(ctx, "alice", "s3cret", "alice@example.com"))
	require.Len(t, store.users, 1)
	assert.NotEqual(t, "s3cret", store.users[0].Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(store.users[0].Password), []byte("s3cret")))

	assert.NoError(t, auth.Login(ctx, "alice@example.com", "s3cret"))
}

func TestSignup_PasswordLongerThanBcryptLimit(t *testing.T) {
	store := &memoryUserStore{}
	auth := newAuth(store)
	ctx := context.Background()

	long := strings.Repeat("p", 79) + "1"
	require.NoError(t, auth.Signup(ctx, "alice", long, "alice@example.com"))
	require.Len(t, store.users, 1)

	assert.NoError(t, auth.Login(ctx, "alice@example.com", long))

	// differs only after byte 72
	err := auth.Login(ctx, "alice@example.com", strings.Repeat("p", 79)+"2")
	assert.True(t, errors.Is(err, apperr.ErrInvalidCredential))

	err = auth.Login(ctx, "alice@example.com", long[:maxBcryptPassword])
	assert.True(t, errors.Is(err, apperr.ErrInvalidCredential))
}

func TestSignup_DuplicateNameIsConflict(t *testing.T) {
	store := &memoryUserStore{}
	auth := newAuth(store)
	ctx := context.Background()

	require.NoError(t, auth.Signup(ctx, "alice", "pw", "alice@example.com"))

	err := auth.Signup(ctx, "alice", "other", "alice2@example.com")
	assert.True(t, errors.Is(err, apperr.ErrConflict))
	assert.Equal(t, "User already exists", err.Error())
	assert.Len(t, store.users, 1)
}

func TestSignup_NameMatchIsCaseSensitive(t *testing.T) {
	store := &memoryUserStore{}
	auth := newAuth(store)
	ctx := context.Background()

	require.NoError(t, auth.Signup(ctx, "alice", "pw", "a1@example.com"))
	assert.NoError(t, auth.Signup(ctx, "Alice", "pw", "a2@example.com"))
}

func TestSignup_DuplicateEmailIsConflict(t *testing.T) {
	store := &memoryUserStore{}
	auth := newAuth(store)
	ctx := context.Background()

	require.NoError(t, auth.Signup(ctx, "alice", "pw", "shared@example.com"))
	err := auth.Signup(ctx, "bob", "pw", "shared@example.com")
	assert.True(t, errors.Is(err, apperr.ErrConflict))
}

func TestSignup_MissingFields(t *testing.T) {
	auth := newAuth(&memoryUserStore{})

	err := auth.Signup(context.Background(), "", "pw", "a@example.com")
	assert.True(t, errors.Is(err, apperr.ErrBadRequest))
}

func TestSignup_StoreFailurePropagates(t *testing.T) {
	storeErr := apperr.New(apperr.ErrUpstreamUnavailable, "record store error")
	auth := newAuth(&memoryUserStore{FindErr: storeErr})

	err := auth.Signup(context.Background(), "alice", "pw", "a@example.com")
	assert.True(t, errors.Is(err, apperr.ErrUpstreamUnavailable))
}

func TestLogin_WrongPasswordDistinctFromUnknownEmail(t *testing.T) {
	store := &memoryUserStore{}
	auth := newAuth(store)
	ctx := context.Background()
	require.NoError(t, auth.Signup(ctx, "alice", "s3cret", "alice@example.com"))

	err := auth.Login(ctx, "alice@example.com", "wrong")
	assert.True(t, errors.Is(err, apperr.ErrInvalidCredential))
	assert.False(t, errors.Is(err, apperr.ErrNotFound))
	assert.Equal(t, "Invalid password", err.Error())

	err = auth.Login(ctx, "nobody@example.com", "s3cret")
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
	assert.False(t, errors.Is(err, apperr.ErrInvalidCredential))
	assert.Equal(t, "User does not exist", err.Error())
}

func TestLogin_LooksUpByEmailNotName(t *testing.T) {
	store := &memoryUserStore{}
	auth := newAuth(store)
	ctx := context.Background()
	require.NoError(t, auth.Signup(ctx, "alice", "s3cret", "alice@example.com"))

	err := auth.Login(ctx, "alice", "s3cret")
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}
