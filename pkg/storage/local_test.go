package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalSave(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocal(dir, "/static/photos/")
	require.NoError(t, err)

	url, err := store.Save("my photo.jpg", strings.NewReader("jpegbytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/static/photos/"), url)
	assert.True(t, strings.HasSuffix(url, "-my_photo.jpg"), url)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Equal(t, "jpegbytes", string(data))
}

func TestLocalSaveStripsPath(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocal(dir, "/static/photos")
	require.NoError(t, err)

	url, err := store.Save("../../etc/passwd", strings.NewReader("x"))
	require.NoError(t, err)
	assert.NotContains(t, url, "..")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "file lands inside the upload dir")
}
