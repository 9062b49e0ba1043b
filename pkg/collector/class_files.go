package collector

import (
	"fmt"
	iofs "io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// classFileExtension marks compiled class files during discovery.
const classFileExtension = ".class"

// ClassFiles returns all compiled class files beneath the given directory
// roots, recursively, as absolute paths.
func (c *realCollector) ClassFiles(dirs []string) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string

	for _, dir := range dirs {
		err := c.fs.WalkDir(dir, func(path string, d iofs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !strings.HasSuffix(path, classFileExtension) {
				return nil
			}

			abs, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("failed to resolve class file path %s: %w", path, err)
			}
			if _, ok := seen[abs]; ok {
				return nil
			}
			seen[abs] = struct{}{}
			files = append(files, abs)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk class directory %s: %w", dir, err)
		}
	}

	sort.Strings(files)
	return files, nil
}
