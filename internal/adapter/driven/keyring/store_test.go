package keyring

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gokeyring "github.com/zalando/go-keyring"
)

func TestStore_GetMissing(t *testing.T) {
	gokeyring.MockInit()
	store := NewStore("")

	val, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "", val)
}

func TestStore_SetOverwrites(t *testing.T) {
	gokeyring.MockInit()
	store := NewStore("kotranslate-test")
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "first"))
	require.NoError(t, store.Set(ctx, "second"))

	val, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", val)
}

func TestStore_MarkInstalled(t *testing.T) {
	gokeyring.MockInit()
	store := NewStore("kotranslate-test")
	ctx := context.Background()

	first, err := store.MarkInstalled(ctx)
	require.NoError(t, err)
	assert.True(t, first)

	first, err = store.MarkInstalled(ctx)
	require.NoError(t, err)
	assert.False(t, first)

	val, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", val, "the marker is not the api key")
}
