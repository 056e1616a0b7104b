package sqlite

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/kotranslate/internal/domain/port/driven"
)

var testKey = bytes.Repeat([]byte{0x42}, 32)

func TestCredentialRepo_SetAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCredentialRepo(db, nil)
	ctx := context.Background()

	err := repo.Set(ctx, "AIza-test-key")
	require.NoError(t, err)

	val, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "AIza-test-key", val)
}

func TestCredentialRepo_GetMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCredentialRepo(db, nil)

	val, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "", val)

	cred, err := repo.Current(context.Background())
	require.NoError(t, err)
	assert.Nil(t, cred)
}

func TestCredentialRepo_UpsertOverwrites(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCredentialRepo(db, nil)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "old-value"))
	require.NoError(t, repo.Set(ctx, "new-value"))

	val, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new-value", val)

	var rows int
	require.NoError(t, db.Reader.QueryRow(`SELECT COUNT(*) FROM settings`).Scan(&rows))
	assert.Equal(t, 1, rows, "only one credential may exist at a time")
}

func TestCredentialRepo_Sealed(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCredentialRepo(db, testKey)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "AIza-secret"))

	var stored string
	require.NoError(t, db.Reader.QueryRow(`SELECT value FROM settings`).Scan(&stored))
	assert.NotContains(t, stored, "AIza-secret")

	cred, err := repo.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, cred)
	assert.Equal(t, "AIza-secret", cred.Value)
	assert.False(t, cred.UpdatedAt.IsZero())
}

func TestCredentialRepo_SealedWithoutKey(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, NewCredentialRepo(db, testKey).Set(ctx, "AIza-secret"))

	_, err := NewCredentialRepo(db, nil).Get(ctx)
	assert.ErrorIs(t, err, driven.ErrEncryptionKeyNotSet)
}
