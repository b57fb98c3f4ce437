package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStubObjectStorage_UploadLifecycle(t *testing.T) {
	ctx := context.Background()
	stub := NewStubObjectStorage()

	url, expiresAt, err := stub.GenerateUploadURL(ctx, "properties/abc/photo.jpg", "image/jpeg", 5*time.Minute)
	require.NoError(t, err)
	assert.Contains(t, url, "properties/abc/photo.jpg")
	assert.True(t, expiresAt.After(time.Now()))

	exists, err := stub.ObjectExists(ctx, "properties/abc/photo.jpg")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, stub.DeleteObject(ctx, "properties/abc/photo.jpg"))

	exists, err = stub.ObjectExists(ctx, "properties/abc/photo.jpg")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestStubObjectStorage_EmptyKeyRejected(t *testing.T) {
	ctx := context.Background()
	stub := NewStubObjectStorage()

	_, _, err := stub.GenerateUploadURL(ctx, "", "image/png", time.Minute)
	assert.Error(t, err)

	_, err = stub.ObjectExists(ctx, "")
	assert.Error(t, err)

	assert.Error(t, stub.DeleteObject(ctx, ""))
}

func TestStubObjectStorage_PublicURL(t *testing.T) {
	stub := NewStubObjectStorage()
	assert.Equal(t, "https://storage.example.com/uploads/x.png", stub.PublicURL("uploads/x.png"))
}
