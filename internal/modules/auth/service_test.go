package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/georgemunganga/retail/internal/apperr"
	"github.com/georgemunganga/retail/internal/modules/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUsers struct {
	user.Repository
	byName map[string]*user.User
	err    error
}

func (s stubUsers) GetUserByName(_ context.Context, name string) (*user.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	u, ok := s.byName[name]
	if !ok {
		return nil, user.ErrNotFound
	}
	return u, nil
}

func TestLoginBcrypt(t *testing.T) {
	hasher := BcryptHasher{Cost: 4}
	hash, err := hasher.Hash("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", hash)

	svc := NewService(stubUsers{byName: map[string]*user.User{
		"alice": {ID: 7, Name: "alice", PasswordHash: hash},
	}}, hasher)
	ctx := context.Background()

	u, err := svc.Login(ctx, " alice ", "hunter2")
	require.NoError(t, err)
	assert.EqualValues(t, 7, u.ID)

	_, err = svc.Login(ctx, "alice", "hunter3")
	assert.True(t, apperr.Is(err, apperr.KindUnauthorized))

	_, err = svc.Login(ctx, "bob", "hunter2")
	assert.True(t, apperr.Is(err, apperr.KindUnauthorized))
}

func TestLoginPlaintextAndBackendError(t *testing.T) {
	svc := NewService(stubUsers{byName: map[string]*user.User{
		"legacy": {ID: 1, Name: "legacy", PasswordHash: "abc"},
	}}, PlaintextHasher{})

	_, err := svc.Login(context.Background(), "legacy", "abc")
	assert.NoError(t, err)
	_, err = svc.Login(context.Background(), "legacy", "abcd")
	assert.Error(t, err)

	broken := NewService(stubUsers{err: errors.New("conn refused")}, PlaintextHasher{})
	_, err = broken.Login(context.Background(), "legacy", "abc")
	assert.True(t, apperr.Is(err, apperr.KindBackend))
}

func TestNewHasher(t *testing.T) {
	h, err := NewHasher("bcrypt")
	require.NoError(t, err)
	assert.IsType(t, BcryptHasher{}, h)

	h, err = NewHasher("plaintext")
	require.NoError(t, err)
	assert.IsType(t, PlaintextHasher{}, h)

	_, err = NewHasher("rot13")
	assert.Error(t, err)
}
