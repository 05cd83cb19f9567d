// Package rust emits the Rust binding layer for the node schema: non-owning
// view types over the parser's arena, the Node union with tag dispatch,
// per-kind wrappers with typed field accessors, and a Visit trait with
// schema-derived default traversal.
package rust

import (
	"strings"

	"github.com/teranos/nodegen/schema"
)

// Generator implements gen.Generator for Rust
type Generator struct{}

// NewGenerator creates a new Rust generator
func NewGenerator() *Generator {
	return &Generator{}
}

// Language returns "rust"
func (g *Generator) Language() string {
	return "rust"
}

// FileExtension returns "rs"
func (g *Generator) FileExtension() string {
	return "rs"
}

// GenerateFile creates the complete binding unit from the schema. The layout
// is fixed: shared view and list types, discriminant constants, the Node
// union and its operations, per-node wrappers, then the visitor. Everything
// follows schema order, so output is byte-deterministic.
func (g *Generator) GenerateFile(s *schema.Schema) string {
	var sb strings.Builder

	writePreamble(&sb)
	sb.WriteString("\n")
	writeTagConstants(&sb, s)
	writeUnion(&sb, s)

	for i := range s.Nodes {
		writeNode(&sb, &s.Nodes[i])
		sb.WriteString("\n")
	}

	writeVisitor(&sb, s)

	return sb.String()
}
