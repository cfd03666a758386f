package cargov

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileManifestReadWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Cargo.toml")
	require.NoError(t, os.WriteFile(path, []byte(cargoToml), 0600))

	m := FileManifest{Path: path}
	got, err := m.Read()
	require.NoError(t, err)
	assert.Equal(t, cargoToml, got)

	require.NoError(t, m.Write("version = \"0.0.2\"\n"))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "version = \"0.0.2\"\n", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestFileManifestReadMissing(t *testing.T) {
	_, err := FileManifest{Path: filepath.Join(t.TempDir(), "Cargo.toml")}.Read()
	assert.ErrorIs(t, err, ErrIO)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
