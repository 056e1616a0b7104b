package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstallRepo_FirstCallOnly(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInstallRepo(db)
	ctx := context.Background()

	first, err := repo.MarkInstalled(ctx)
	require.NoError(t, err)
	assert.True(t, first)

	first, err = repo.MarkInstalled(ctx)
	require.NoError(t, err)
	assert.False(t, first)
}

func TestInstallRepo_IndependentOfCredential(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	creds := NewCredentialRepo(db, nil)

	require.NoError(t, creds.Set(ctx, "AIza-key"))

	first, err := NewInstallRepo(db).MarkInstalled(ctx)
	require.NoError(t, err)
	assert.True(t, first, "a stored key does not count as a completed start")

	val, err := creds.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "AIza-key", val)
}
