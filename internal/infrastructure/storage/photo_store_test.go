package storage

import (
	"strings"
	"testing"

	"pet-census-api/config"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*PhotoStore, afero.Fs) {
	fs := afero.NewMemMapFs()
	store, err := NewPhotoStore(fs, config.StorageConfig{PhotoDir: "storage/photos"})
	require.NoError(t, err)
	return store, fs
}

func TestSaveStoresFileAndReturnsPath(t *testing.T) {
	store, fs := newTestStore(t)

	path, err := store.Save("pets", &Upload{
		Filename: "rex.JPG",
		Content:  strings.NewReader("image-bytes"),
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(path, "pets/"))
	assert.True(t, strings.HasSuffix(path, ".jpg"))

	data, err := afero.ReadFile(fs, "storage/photos/"+path)
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(data))
}

func TestSaveGeneratesUniqueNames(t *testing.T) {
	store, _ := newTestStore(t)

	first, err := store.Save("pets", &Upload{Filename: "a.png", Content: strings.NewReader("one")})
	require.NoError(t, err)
	second, err := store.Save("pets", &Upload{Filename: "a.png", Content: strings.NewReader("two")})
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestDeleteRemovesFile(t *testing.T) {
	store, fs := newTestStore(t)

	path, err := store.Save("owners", &Upload{Filename: "me.png", Content: strings.NewReader("pic")})
	require.NoError(t, err)

	require.NoError(t, store.Delete(path))

	exists, err := afero.Exists(fs, "storage/photos/"+path)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestDeleteIgnoresMissingFile(t *testing.T) {
	store, _ := newTestStore(t)

	assert.NoError(t, store.Delete("pets/does-not-exist.png"))
}
