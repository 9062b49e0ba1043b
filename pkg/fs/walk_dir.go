package fs

import (
	iofs "io/fs"
	"os"
	"path/filepath"
)

// WalkDir walks the file tree rooted at root, calling fn for each file or
// directory. A root that does not exist yields no calls and no error.
func (f *realFS) WalkDir(root string, fn iofs.WalkDirFunc) error {
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return nil
	}
	return filepath.WalkDir(root, fn)
}
