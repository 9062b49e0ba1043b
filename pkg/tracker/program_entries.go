package tracker

import (
	"fmt"
	"strings"

	"github.com/classtrim/classtrim/pkg/engine"
)

// unknownOrigin tags single class files passed to the engine as raw bytes.
const unknownOrigin = "unknown"

// programEntries builds the first-party program inputs for one engine run:
// class directories expanded into individual class files read fully into
// memory, archives passed as path references.
func (t *realTracker) programEntries() ([]engine.Entry, error) {
	inputs, err := t.collector.ProgramInputs(t.classDirs, t.apiArchives)
	if err != nil {
		return nil, fmt.Errorf("failed to collect program inputs: %w", err)
	}

	var entries []engine.Entry
	for _, input := range inputs {
		if !strings.HasSuffix(input, ".class") {
			entries = append(entries, engine.Entry{Path: input})
			continue
		}

		data, err := t.fs.ReadFile(input)
		if err != nil {
			return nil, fmt.Errorf("failed to read class file %s: %w", input, err)
		}
		entries = append(entries, engine.Entry{Data: data, Name: unknownOrigin})
	}
	return entries, nil
}
