package tracker

import "github.com/classtrim/classtrim/pkg/engine"

// usageLog reconstructs "one class name per line" semantics from the
// engine's free-text token stream. A candidate captured right after a
// separator is confirmed only when the very next token is again a separator;
// any other token discards it, and the discarding token cannot itself become
// a candidate until the following separator.
type usageLog struct {
	classes      map[string]struct{}
	candidate    string
	hasCandidate bool
	afterSep     bool
}

func newUsageLog() *usageLog {
	return &usageLog{
		classes:  make(map[string]struct{}),
		afterSep: true,
	}
}

// Consume processes one token from the usage stream.
func (u *usageLog) Consume(token string) {
	if token == engine.Separator {
		if u.hasCandidate {
			u.classes[u.candidate] = struct{}{}
		}
		u.hasCandidate = false
		u.afterSep = true
		return
	}

	u.hasCandidate = u.afterSep
	u.candidate = token
	u.afterSep = false
}

// Classes returns a copy of the confirmed class names.
func (u *usageLog) Classes() map[string]struct{} {
	classes := make(map[string]struct{}, len(u.classes))
	for name := range u.classes {
		classes[name] = struct{}{}
	}
	return classes
}
