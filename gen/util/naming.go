// Package util holds naming helpers shared by the binding generators.
package util

import (
	"strings"
	"unicode"
)

// typeNamePrefix is the namespace prefix of the parser's node type constants.
const typeNamePrefix = "YP_NODE"

// StructName returns the lowercase C struct name suffix for a node name.
// An underscore is inserted before every uppercase character, including the
// first one: "CallNode" becomes "_call_node". The leading underscore
// produces the `yp_call_node_t`, `as_call_node` and `visit_call_node`
// spellings the emitted layer and its consumers use.
func StructName(name string) string {
	var b strings.Builder
	b.Grow(1 + len(name))

	for _, r := range name {
		if unicode.IsUpper(r) {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

// TypeName returns the discriminant tag constant name for a node name:
// the fixed namespace prefix followed by the name in SCREAMING_SNAKE_CASE.
// "CallNode" becomes "YP_NODE_CALL_NODE".
func TypeName(name string) string {
	var b strings.Builder
	b.Grow(len(typeNamePrefix) + 1 + len(name))
	b.WriteString(typeNamePrefix)

	for _, r := range name {
		if unicode.IsUpper(r) {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToUpper(r))
	}

	return b.String()
}
