package tracker

import (
	"fmt"

	"github.com/classtrim/classtrim/pkg/engine"
	"github.com/classtrim/classtrim/pkg/names"
)

// FindUnused runs the real shrink pass and returns the external names of
// classes the engine determined to be unreachable.
//
// The pass is seeded with freshly synthesized keep rules so the engine
// retains every first-party class; tracked dependencies join the program
// inputs so their classes are elimination candidates too. The unused set is
// parsed from the usage log, then reconciled against actual emission: a
// class the engine writes out is never reported unused, whatever the log
// claimed.
func (t *realTracker) FindUnused() (map[string]struct{}, error) {
	rules, err := t.KeepRules()
	if err != nil {
		return nil, err
	}
	rules = append(rules,
		engine.RuleDontOptimize,
		engine.RuleDontObfuscate,
		engine.RuleDontWarn,
	)

	entries, err := t.programEntries()
	if err != nil {
		return nil, err
	}
	entries = append(entries, t.dependencyEntries()...)

	log := newUsageLog()
	emitted := make(map[string]struct{})
	var writeErr error

	inv := engine.Invocation{
		Program:   entries,
		Rules:     rules,
		UsageSink: log.Consume,
		ClassSink: func(internalName string, data []byte) {
			external := names.ExternalName(internalName)
			emitted[external] = struct{}{}
			if writeErr != nil {
				return
			}
			path := names.OutputPath(t.tempRoot, external)
			if err := t.fs.WriteFile(path, data, 0644); err != nil {
				writeErr = fmt.Errorf("failed to write processed class %s: %w", external, err)
			}
		},
	}

	if err := t.engine.Run(inv); err != nil {
		return nil, fmt.Errorf("shrink analysis pass failed: %w", err)
	}
	if writeErr != nil {
		return nil, writeErr
	}

	removed := log.Classes()
	for name := range emitted {
		delete(removed, name)
	}

	t.logger.Logf("analysis found %d unused classes (%d emitted)", len(removed), len(emitted))
	return removed, nil
}
