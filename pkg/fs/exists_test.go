//go:build integration

package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_Exists(t *testing.T) {
	fs := NewFS()

	// Create a temporary file for testing
	tmpFile := filepath.Join(t.TempDir(), "present.class")
	require.NoError(t, os.WriteFile(tmpFile, []byte{0xCA, 0xFE}, 0644))

	// Test existing file
	exists, err := fs.Exists(tmpFile)
	assert.NoError(t, err)
	assert.True(t, exists)

	// Test non-existing file
	exists, err = fs.Exists(filepath.Join(t.TempDir(), "missing.class"))
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestFS_IsDir(t *testing.T) {
	fs := NewFS()

	tmpDir := t.TempDir()
	isDir, err := fs.IsDir(tmpDir)
	assert.NoError(t, err)
	assert.True(t, isDir)

	tmpFile := filepath.Join(tmpDir, "a.class")
	require.NoError(t, os.WriteFile(tmpFile, []byte("x"), 0644))

	isDir, err = fs.IsDir(tmpFile)
	assert.NoError(t, err)
	assert.False(t, isDir)
}
