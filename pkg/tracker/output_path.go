package tracker

import "github.com/classtrim/classtrim/pkg/names"

// OutputPath resolves where processed bytes for a class are written during
// FindUnused.
func (t *realTracker) OutputPath(external string) string {
	return names.OutputPath(t.tempRoot, external)
}
