package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"adboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jpegBytes = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F'}

func TestLocalStorage_Store(t *testing.T) {
	root := filepath.Join(t.TempDir(), "avatars", "nested")
	store := NewLocalStorage(root)

	stored, err := store.Store(context.Background(), jpegBytes, "photo.JPG", "image/jpeg")
	require.NoError(t, err)

	assert.Equal(t, root, filepath.Dir(stored.Path))
	assert.True(t, strings.HasSuffix(stored.Path, ".jpg"))
	assert.Equal(t, int64(len(jpegBytes)), stored.Size)
	assert.Equal(t, "image/jpeg", stored.ContentType)

	data, err := os.ReadFile(stored.Path)
	require.NoError(t, err)
	assert.Equal(t, jpegBytes, data)
}

func TestLocalStorage_StoreNeverOverwrites(t *testing.T) {
	root := t.TempDir()
	store := NewLocalStorage(root)

	stored, err := store.Store(context.Background(), jpegBytes, "photo.jpg", "image/jpeg")
	require.NoError(t, err)

	// simulate a name collision by writing at the same path directly
	file, err := os.OpenFile(stored.Path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	assert.Error(t, err)
	assert.Nil(t, file)
}

func TestLocalStorage_ConcurrentStores(t *testing.T) {
	store := NewLocalStorage(t.TempDir())

	var wg sync.WaitGroup
	paths := make([]string, 20)
	for i := range paths {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			stored, err := store.Store(context.Background(), jpegBytes, "photo.jpg", "image/jpeg")
			if assert.NoError(t, err) {
				paths[i] = stored.Path
			}
		}(i)
	}
	wg.Wait()

	seen := map[string]bool{}
	for _, p := range paths {
		assert.False(t, seen[p])
		seen[p] = true
	}
}

func TestLocalStorage_Replace(t *testing.T) {
	store := NewLocalStorage(t.TempDir())
	ctx := context.Background()

	old, err := store.Store(ctx, jpegBytes, "photo.jpg", "image/jpeg")
	require.NoError(t, err)

	newBytes := []byte{0x89, 'P', 'N', 'G'}
	replaced, err := store.Replace(ctx, old.Path, newBytes, "photo.png", "image/png")
	require.NoError(t, err)

	assert.NotEqual(t, old.Path, replaced.Path)
	_, err = store.Read(ctx, old.Path)
	assert.ErrorIs(t, err, models.ErrFileNotFound)

	data, err := store.Read(ctx, replaced.Path)
	require.NoError(t, err)
	assert.Equal(t, newBytes, data)
}

func TestLocalStorage_ReplaceMissingOld(t *testing.T) {
	store := NewLocalStorage(t.TempDir())

	replaced, err := store.Replace(context.Background(), filepath.Join(t.TempDir(), "gone.jpg"), jpegBytes, "a.jpg", "image/jpeg")
	require.NoError(t, err)
	assert.FileExists(t, replaced.Path)
}

func TestLocalStorage_ReadMissing(t *testing.T) {
	store := NewLocalStorage(t.TempDir())

	_, err := store.Read(context.Background(), filepath.Join(t.TempDir(), "missing.jpg"))
	assert.ErrorIs(t, err, models.ErrFileNotFound)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestLocalStorage_Delete(t *testing.T) {
	store := NewLocalStorage(t.TempDir())
	ctx := context.Background()

	stored, err := store.Store(ctx, jpegBytes, "photo.jpg", "image/jpeg")
	require.NoError(t, err)

	assert.NoError(t, store.Delete(ctx, stored.Path))
	assert.NoFileExists(t, stored.Path)
	assert.ErrorIs(t, store.Delete(ctx, stored.Path), models.ErrFileNotFound)
	assert.ErrorIs(t, store.Delete(ctx, ""), models.ErrFileNotFound)
}

func TestGenerateName(t *testing.T) {
	a := generateName("Holiday.PNG")
	b := generateName("Holiday.PNG")

	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasSuffix(a, ".png"))
	assert.Len(t, generateName("noext"), 36)
}
