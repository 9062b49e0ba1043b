package tracker

import (
	"fmt"

	"github.com/classtrim/classtrim/pkg/engine"
	"github.com/classtrim/classtrim/pkg/names"
)

// KeepRules runs the engine with shrinking disabled over the first-party
// program inputs, with every tracked dependency visible as a library input,
// and converts each class the engine emits into a keep rule. The engine's
// view of the program is authoritative here: nested and synthetic classes
// appear even when directory scanning would miss them.
func (t *realTracker) KeepRules() ([]string, error) {
	entries, err := t.programEntries()
	if err != nil {
		return nil, err
	}

	var rules []string
	inv := engine.Invocation{
		Program: entries,
		Library: t.dependencyEntries(),
		Rules: []string{
			engine.RuleDontShrink,
			engine.RuleDontOptimize,
			engine.RuleDontObfuscate,
			engine.RuleDontWarn,
		},
		ClassSink: func(internalName string, _ []byte) {
			rules = append(rules, engine.KeepClassRule(names.ExternalName(internalName)))
		},
	}

	if err := t.engine.Run(inv); err != nil {
		return nil, fmt.Errorf("keep rule enumeration pass failed: %w", err)
	}

	t.logger.Logf("enumerated %d first-party classes", len(rules))
	return rules, nil
}
