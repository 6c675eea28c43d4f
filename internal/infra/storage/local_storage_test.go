package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fisiohub/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorageConfig(dir string) *config.Config {
	return &config.Config{
		Upload: &config.UploadConfig{
			Dir:     dir,
			BaseURL: "/uploads",
		},
	}
}

func TestLocalStorage_Save(t *testing.T) {
	dir := t.TempDir()
	storage := NewLocalStorage(newTestStorageConfig(dir))

	ref, err := storage.Save(context.Background(), "avatar.png", strings.NewReader("png-bytes"))

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "/uploads/"))
	assert.True(t, strings.HasSuffix(ref, ".png"))

	stored, err := os.ReadFile(filepath.Join(dir, filepath.Base(ref)))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(stored))
}

func TestLocalStorage_Save_DistinctNames(t *testing.T) {
	dir := t.TempDir()
	storage := NewLocalStorage(newTestStorageConfig(dir))

	first, err := storage.Save(context.Background(), "avatar.png", strings.NewReader("one"))
	require.NoError(t, err)
	second, err := storage.Save(context.Background(), "avatar.png", strings.NewReader("two"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestLocalStorage_Save_NoExtension(t *testing.T) {
	dir := t.TempDir()
	storage := NewLocalStorage(newTestStorageConfig(dir))

	ref, err := storage.Save(context.Background(), "avatar", strings.NewReader("bytes"))

	require.NoError(t, err)
	assert.False(t, strings.Contains(filepath.Base(ref), "."))
}

func TestLocalStorage_Save_CanceledContext(t *testing.T) {
	dir := t.TempDir()
	storage := NewLocalStorage(newTestStorageConfig(dir))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ref, err := storage.Save(ctx, "avatar.png", strings.NewReader("png-bytes"))

	assert.Empty(t, ref)
	assert.Error(t, err)

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}
