// Package collector discovers first-party program inputs: compiled class
// files under output directories plus first-party archives.
package collector

import (
	"github.com/classtrim/classtrim/pkg/fs"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=collector.go -destination=mockcollector.gen.go -package=collector

// Collector interface provides program input discovery.
type Collector interface {
	// ClassFiles returns all compiled class files beneath the given
	// directory roots, recursively, as absolute paths. Roots that do not
	// exist contribute nothing and raise no error.
	ClassFiles(dirs []string) ([]string, error)

	// ProgramInputs combines discovered class files with the given archives
	// into one ordered, deduplicated list.
	ProgramInputs(dirs, archives []string) ([]string, error)
}

type realCollector struct {
	fs fs.FS
}

// NewCollector creates a new Collector instance.
func NewCollector(filesystem fs.FS) Collector {
	if filesystem == nil {
		filesystem = fs.NewFS()
	}
	return &realCollector{
		fs: filesystem,
	}
}
