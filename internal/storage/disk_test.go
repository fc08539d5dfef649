package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStoreSaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir)
	require.NoError(t, err)

	url, err := store.Save(context.Background(), "abc123.png", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/abc123.png", url)

	content, err := os.ReadFile(filepath.Join(dir, "abc123.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(content))

	require.NoError(t, store.Delete(context.Background(), "abc123.png"))
	_, err = os.Stat(filepath.Join(dir, "abc123.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestDiskStoreDeleteMissingFileIsNoop(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, store.Delete(context.Background(), "never-written.pdf"))
}

func TestDiskStoreIgnoresPathComponents(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir)
	require.NoError(t, err)

	url, err := store.Save(context.Background(), "../../escape.txt", "text/plain", strings.NewReader("data"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/escape.txt", url)

	_, err = os.Stat(filepath.Join(dir, "escape.txt"))
	assert.NoError(t, err)
}
