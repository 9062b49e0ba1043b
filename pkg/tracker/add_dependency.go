package tracker

import "path/filepath"

// AddDependency registers a candidate dependency archive or directory. Only
// members of the to-minimize collection are tracked; anything else is a
// silent no-op. The set grows monotonically for the tracker's lifetime.
func (t *realTracker) AddDependency(path string) {
	candidate := filepath.Clean(path)
	if _, ok := t.toMinimize[candidate]; !ok {
		return
	}
	if _, ok := t.deps[candidate]; ok {
		return
	}

	t.deps[candidate] = struct{}{}
	t.logger.Logf("tracking dependency for minimization: %s", candidate)
}
