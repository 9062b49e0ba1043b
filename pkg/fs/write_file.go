package fs

import (
	"os"
	"path/filepath"
)

// WriteFile writes data to a file, creating parent directories as needed.
func (f *realFS) WriteFile(path string, data []byte, perm os.FileMode) error {
	// Create parent directories if they don't exist
	dir := filepath.Dir(path)
	if err := f.MkdirAll(dir, 0755); err != nil {
		return err
	}

	return os.WriteFile(path, data, perm)
}
