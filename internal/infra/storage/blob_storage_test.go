package storage

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBlobStorage_Save(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	store := NewWithBucket(bucket, "https://cdn.example.com/uploads/", newDiscardLogger())

	content := []byte("\x89PNG fake image")
	url, err := store.Save(ctx, "../../Leaf.PNG", "image/png", bytes.NewReader(content))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "https://cdn.example.com/uploads/"), url)
	assert.True(t, strings.HasSuffix(url, ".png"), url)

	key := keyPrefix + strings.TrimPrefix(url, "https://cdn.example.com/uploads/")
	got, err := bucket.ReadAll(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, content, got)

	attrs, err := bucket.Attributes(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "image/png", attrs.ContentType)
}

func TestBlobStorage_SaveWithoutPublicBase(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	store := NewWithBucket(bucket, "", newDiscardLogger())

	first, err := store.Save(ctx, "a.jpg", "image/jpeg", strings.NewReader("one"))
	require.NoError(t, err)
	second, err := store.Save(ctx, "a.jpg", "image/jpeg", strings.NewReader("two"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, strings.HasPrefix(first, keyPrefix))

	exists, err := bucket.Exists(ctx, first)
	require.NoError(t, err)
	assert.True(t, exists)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, io.ErrUnexpectedEOF }

func TestBlobStorage_SaveReadError(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	store := NewWithBucket(bucket, "", newDiscardLogger())

	_, err := store.Save(ctx, "a.png", "image/png", failingReader{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write blob")

	iter := bucket.List(&blob.ListOptions{Prefix: keyPrefix})
	_, err = iter.Next(ctx)
	assert.ErrorIs(t, err, io.EOF)
}
