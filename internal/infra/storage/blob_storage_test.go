package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	domainerrors "comerciojusto/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobStorage_SaveOpenDelete(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()
	store := NewBlobStorage(bucket)

	key, err := store.Save(ctx, "certificados/a.pdf", strings.NewReader("%PDF-1.4"), "")
	require.NoError(t, err)
	assert.Equal(t, "certificados/a.pdf", key)

	r, contentType, err := store.Open(ctx, key)
	require.NoError(t, err)
	body, err := io.ReadAll(r)
	require.NoError(t, r.Close())
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(body))
	assert.Equal(t, "application/pdf", contentType)

	require.NoError(t, store.Delete(ctx, key))
	_, _, err = store.Open(ctx, key)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestBlobStorage_DeleteMissingIsNoop(t *testing.T) {
	store := NewBlobStorage(memblob.OpenBucket(nil))

	assert.NoError(t, store.Delete(context.Background(), "nope"))
	assert.NoError(t, store.Delete(context.Background(), ""))
}
