package fragments

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-admin-config/internal/logger"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileLoader_LoadsInOrder(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "b.yml", "entities:\n  - App\\User\n")
	second := writeFile(t, dir, "a.json", `{"entities": {"Client": "App\\User"}}`)

	fragments, err := NewFileLoader(logger.Nop()).Load(context.Background(), first, second)
	require.NoError(t, err)
	require.Len(t, fragments, 2)

	assert.Equal(t, first, fragments[0].Source)
	assert.Equal(t, second, fragments[1].Source)
	assert.Equal(t, "Client", fragments[1].Entities[0].Key.String())
}

func TestFileLoader_UppercaseExtension(t *testing.T) {
	path := writeFile(t, t.TempDir(), "admin.YAML", "entities: []\n")

	fragments, err := NewFileLoader(logger.Nop()).Load(context.Background(), path)
	require.NoError(t, err)
	assert.Len(t, fragments, 1)
}

func TestFileLoader_NoPaths(t *testing.T) {
	_, err := NewFileLoader(logger.Nop()).Load(context.Background())
	assert.ErrorIs(t, err, ErrNoPaths)
}

func TestFileLoader_UnsupportedFormat(t *testing.T) {
	path := writeFile(t, t.TempDir(), "admin.toml", "")

	fragments, err := NewFileLoader(logger.Nop()).Load(context.Background(), path)
	assert.Nil(t, fragments)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestFileLoader_JoinsAllErrors(t *testing.T) {
	dir := t.TempDir()
	bad := writeFile(t, dir, "bad.yaml", "- not a mapping\n")
	missing := filepath.Join(dir, "missing.yaml")

	fragments, err := NewFileLoader(logger.Nop()).Load(context.Background(), bad, missing)
	require.Error(t, err)
	assert.Nil(t, fragments)

	assert.ErrorIs(t, err, ErrInvalidFragment)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFileLoader_CanceledContext(t *testing.T) {
	path := writeFile(t, t.TempDir(), "admin.yaml", "entities: []\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFileLoader(logger.Nop()).Load(ctx, path)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFileLoader_DuplicateEntityNamesThePath(t *testing.T) {
	path := writeFile(t, t.TempDir(), "admin.yaml", "entities:\n  Product: App\\Product\n  Product: App\\Other\n")

	fragments, err := NewFileLoader(logger.Nop()).Load(context.Background(), path)

	assert.Nil(t, fragments)
	require.ErrorIs(t, err, ErrDuplicateEntity)
	assert.Contains(t, err.Error(), path)
}
