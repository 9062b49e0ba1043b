// Package engine drives the external whole-program reachability engine. The
// engine is consumed as a black box: program and library inputs plus a rule
// configuration go in, emitted classes and a free-text usage log come out.
package engine

import "fmt"

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=engine.go -destination=mockengine.gen.go -package=engine

// Separator is the token the engine emits between usage log lines.
const Separator = "\n"

// Rule directives understood by the engine configuration.
const (
	RuleDontShrink    = "-dontshrink"
	RuleDontOptimize  = "-dontoptimize"
	RuleDontObfuscate = "-dontobfuscate"
	RuleDontWarn      = "-dontwarn"
	RuleDontNote      = "-dontnote"
)

// KeepClassRule returns a directive instructing the engine to retain the
// named class and all of its members.
func KeepClassRule(external string) string {
	return fmt.Sprintf("-keep class %s { *; }", external)
}

// Entry is a single program or library input. Either Path references an
// archive or directory on disk, or Data carries raw class bytes tagged with
// Name as their origin.
type Entry struct {
	Path string
	Data []byte
	Name string
}

// Invocation describes one engine run. Sinks may be nil; when set they are
// invoked synchronously before Run returns.
type Invocation struct {
	// Program inputs are candidates for elimination and are emitted.
	Program []Entry
	// Library inputs are visible for resolution but never eliminated and
	// never emitted.
	Library []Entry
	// Rules is the textual configuration, one directive per element.
	Rules []string
	// ClassSink receives every class the engine emits, with its internal
	// slash-separated name.
	ClassSink func(internalName string, data []byte)
	// UsageSink receives the usage log as a stream of opaque text tokens,
	// normally one class name token followed by a Separator token per line.
	UsageSink func(token string)
}

// Engine interface provides a synchronous run over one invocation.
type Engine interface {
	// Run executes the engine. All sink callbacks complete before Run
	// returns. Any failure is fatal for the invocation; there are no
	// retries.
	Run(inv Invocation) error
}
