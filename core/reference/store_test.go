package reference

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"visia/internal/errors"
)

func TestNewStorePreloadsBuiltin(t *testing.T) {
	store := NewStore()

	tbl, err := store.Get(DefaultVersion)
	require.NoError(t, err)
	assert.Equal(t, DefaultVersion, tbl.Version())
	assert.Equal(t, []string{DefaultVersion}, store.Versions())
}

func TestRegisterRejectsRepublishing(t *testing.T) {
	store := NewStore()

	err := store.Register(Builtin())
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeConfig))
}

func TestGetUnknownVersion(t *testing.T) {
	store := NewStore()

	_, err := store.Get("1999.01")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeNotFound))
}

func TestResolveEmptyMeansLatest(t *testing.T) {
	store := NewStore()

	tbl, err := store.Resolve("")
	require.NoError(t, err)
	assert.Equal(t, DefaultVersion, tbl.Version())
}

func TestLoadDirRegistersNewVersions(t *testing.T) {
	dir := t.TempDir()
	src := `
version = "2026.01"

indicator "trabalho.arrecadacao_2sm_ano" {
  value = 22500.00
}

sroi_band "educacao" {
  min = 1.5
  max = 3.5
  avg = 2.5
}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "visia-2026.01.hcl"), []byte(src), 0o644))

	store := NewStore()
	require.NoError(t, store.LoadDir(dir))

	assert.Equal(t, []string{DefaultVersion, "2026.01"}, store.Versions())
	assert.Equal(t, "2026.01", store.Latest().Version())

	pinned, err := store.Resolve(DefaultVersion)
	require.NoError(t, err)
	assert.Equal(t, DefaultVersion, pinned.Version())
}

func TestLoadDirMissingDirectoryIsNotAnError(t *testing.T) {
	store := NewStore()
	require.NoError(t, store.LoadDir(filepath.Join(t.TempDir(), "inexistente")))
	assert.Equal(t, []string{DefaultVersion}, store.Versions())
}
