package names

import (
	"path/filepath"
	"strings"
)

// classFileExtension is the on-disk extension for compiled class files.
const classFileExtension = ".class"

// OutputPath resolves the on-disk location for a processed class under the
// given temporary root: package segments become directories.
func OutputPath(tempRoot, external string) string {
	rel := strings.ReplaceAll(external, ".", string(filepath.Separator))
	return filepath.Join(tempRoot, rel+classFileExtension)
}
