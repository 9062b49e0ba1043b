package tracker

import (
	"sort"

	"github.com/classtrim/classtrim/pkg/engine"
)

// Dependencies returns the accumulated dependency set, sorted.
func (t *realTracker) Dependencies() []string {
	deps := make([]string, 0, len(t.deps))
	for dep := range t.deps {
		deps = append(deps, dep)
	}
	sort.Strings(deps)
	return deps
}

// dependencyEntries returns the accumulated dependencies as engine entries.
func (t *realTracker) dependencyEntries() []engine.Entry {
	var entries []engine.Entry
	for _, dep := range t.Dependencies() {
		entries = append(entries, engine.Entry{Path: dep})
	}
	return entries
}
