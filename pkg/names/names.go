// Package names converts class names between the engine's internal
// slash-separated form and the external dotted form, and resolves where
// processed class bytes land on disk.
package names

import "strings"

// ExternalName converts an internal class name such as "Lcom/foo/Bar;" or
// "com/foo/Bar" to the external dotted form "com.foo.Bar".
//
// The "L...;" descriptor wrapping is stripped only when both the prefix and
// the suffix are present. No further validation is performed: an ill-formed
// name maps to an ill-formed result.
func ExternalName(internal string) string {
	name := internal
	if strings.HasPrefix(name, "L") && strings.HasSuffix(name, ";") {
		name = name[1 : len(name)-1]
	}
	return strings.ReplaceAll(name, "/", ".")
}

// InternalName converts an external dotted class name "com.foo.Bar" to the
// internal slash-separated form "com/foo/Bar". Inverse of ExternalName for
// well-formed names.
func InternalName(external string) string {
	return strings.ReplaceAll(external, ".", "/")
}
