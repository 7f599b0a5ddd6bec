package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileKVRoundTrip(t *testing.T) {
	kv, err := NewFileKV(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	// Missing keys read as nil without error.
	raw, err := kv.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, raw)

	require.NoError(t, kv.Set(ctx, "resumes", []byte(`[]`)))
	raw, err = kv.Get(ctx, "resumes")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), raw)

	require.NoError(t, kv.Delete(ctx, "resumes"))
	raw, err = kv.Get(ctx, "resumes")
	require.NoError(t, err)
	assert.Nil(t, raw)

	// Deleting a missing key is not an error.
	assert.NoError(t, kv.Delete(ctx, "resumes"))
}

func TestFileKVRejectsPathKeys(t *testing.T) {
	kv, err := NewFileKV(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	assert.Error(t, kv.Set(ctx, "../escape", []byte(`{}`)))
	_, err = kv.Get(ctx, "a/b")
	assert.Error(t, err)
	assert.Error(t, kv.Delete(ctx, ""))
}
