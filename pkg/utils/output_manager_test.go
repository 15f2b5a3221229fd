package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputManager_WriteFile(t *testing.T) {
	dir := t.TempDir()
	om := NewOutputManager(dir)
	path := filepath.Join(dir, "nested", "stats.json")

	require.NoError(t, om.WriteFile(path, []byte(`{"a":1}`)))
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(got))

	// overwrite
	require.NoError(t, om.WriteFile(path, []byte(`{"a":2}`)))
	got, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"a":2}`, string(got))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestOutputManager_EnsureOutputDirExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	om := NewOutputManager(dir)

	require.NoError(t, om.EnsureOutputDirExists())
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
