package database

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCreatesMissingResource(t *testing.T) {
	dir := t.TempDir()
	r := NewFileResource(dir, "products.json")

	data, err := r.Load()
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	// The file now exists on disk, seeded empty.
	onDisk, err := os.ReadFile(filepath.Join(dir, "products.json"))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(onDisk))
}

func TestLoadTreatsBlankFileAsEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "orders.json"), []byte("  \n"), 0o644))

	r := NewFileResource(dir, "orders.json")
	data, err := r.Load()
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestFlushReplacesContents(t *testing.T) {
	dir := t.TempDir()
	r := NewFileResource(dir, "carts.json")

	require.NoError(t, r.Flush([]byte(`[{"userId":1}]`)))
	require.NoError(t, r.Flush([]byte(`[{"userId":2}]`)))

	data, err := r.Load()
	require.NoError(t, err)
	assert.Equal(t, `[{"userId":2}]`, string(data))

	// No temp file left behind after the rename.
	_, err = os.Stat(filepath.Join(dir, "carts.json.tmp"))
	assert.True(t, os.IsNotExist(err))
}

func TestOpenFilesNamesAllKinds(t *testing.T) {
	res := OpenFiles(t.TempDir())
	assert.Equal(t, "products.json", res.Products.Name())
	assert.Equal(t, "users.json", res.Users.Name())
	assert.Equal(t, "carts.json", res.Carts.Name())
	assert.Equal(t, "orders.json", res.Orders.Name())
}
