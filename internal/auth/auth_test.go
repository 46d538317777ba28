package auth

import (
	"context"
	"strings"
	"testing"

	"ecothread_back_end/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	gw := NewGateway(store.NewMemoryStore())

	user, err := gw.Register(ctx, "Marie Dupont", "marie@example.com", "s3cret!")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "marie@example.com", user.Email)
	assert.Equal(t, "Marie Dupont", user.FullName)

	logged, err := gw.Login(ctx, "marie@example.com", "s3cret!")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	gw := NewGateway(store.NewMemoryStore())

	_, err := gw.Register(ctx, "Marie", "marie@example.com", "abc")
	require.NoError(t, err)

	_, err = gw.Register(ctx, "Autre Marie", "MARIE@example.com", "xyz")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	gw := NewGateway(store.NewMemoryStore())

	_, err := gw.Register(ctx, "Marie", "marie@example.com", "bon-mdp")
	require.NoError(t, err)

	_, err = gw.Login(ctx, "marie@example.com", "mauvais-mdp")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	ctx := context.Background()
	gw := NewGateway(store.NewMemoryStore())

	_, err := gw.Login(ctx, "inconnue@example.com", "peu-importe")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegistryNeverExposesPassword(t *testing.T) {
	ctx := context.Background()
	blobs := store.NewMemoryStore()
	gw := NewGateway(blobs)

	_, err := gw.Register(ctx, "Marie", "marie@example.com", "s3cret!")
	require.NoError(t, err)

	data, err := blobs.Get(ctx, store.KeyUsers)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "s3cret!")
	assert.True(t, strings.Contains(string(data), "$argon2id$"))
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()
	gw := NewGateway(store.NewMemoryStore())

	user, err := gw.Register(ctx, "Marie", "marie@example.com", "abc")
	require.NoError(t, err)

	found, err := gw.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Marie", found.FullName)

	_, err = gw.Get(ctx, "id-inconnu")
	assert.Error(t, err)
}
