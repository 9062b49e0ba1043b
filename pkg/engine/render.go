package engine

import (
	"fmt"
	"strings"
)

// renderParams holds the resolved inputs for one rendered configuration.
type renderParams struct {
	ProgramPaths []string
	LibraryPaths []string
	OutDir       string
	UsageFile    string
	Rules        []string
}

// renderConfig renders an invocation into the engine's single-file
// configuration format: input declarations first, then output and usage
// locations, then the rule directives in order.
func renderConfig(p renderParams) string {
	var b strings.Builder

	for _, path := range p.ProgramPaths {
		fmt.Fprintf(&b, "-injars %s\n", path)
	}
	for _, path := range p.LibraryPaths {
		fmt.Fprintf(&b, "-libraryjars %s\n", path)
	}
	fmt.Fprintf(&b, "-outjars %s\n", p.OutDir)
	fmt.Fprintf(&b, "-printusage %s\n", p.UsageFile)
	for _, rule := range p.Rules {
		b.WriteString(rule)
		b.WriteByte('\n')
	}

	return b.String()
}
