// Package gen generates typed AST binding layers from a node schema for
// target languages.
//
// # Architecture
//
// The package uses a two-layer design:
//  1. Language-agnostic schema model (the schema package) describes the node
//     hierarchy: one entry per node kind, ordered fields, documentation.
//  2. Language-specific generators (rust/, ...) synthesize the binding layer:
//     per-node wrapper types, the discriminated node union with tag dispatch,
//     lazy list/iterator views over the parser's contiguous arrays, and a
//     visitor with default traversal derived from the field declarations.
//
// This separation allows adding new target languages without duplicating the
// schema handling or the traversal derivation logic.
//
// # Design Decisions
//
//   - Output is byte-deterministic for a given schema: node order and field
//     order come straight from the schema document, and no maps are iterated
//     during emission. Determinism enables CI validation via `nodegen check`.
//   - The schema is validated before any generator runs; generators may
//     assume unique node names and resolvable narrowing kinds.
//   - Generators are pure: schema in, source text out. All file I/O lives in
//     the command layer.
//
// # Implementing a New Generator
//
// To add support for a new target language:
//
//  1. Create package: gen/<language>/generator.go
//  2. Implement the Generator interface (see below)
//  3. Register the language in cmd/nodegen/commands/generate.go
//  4. Add golden tests in gen/<language>/generator_test.go
package gen

import "github.com/teranos/nodegen/schema"

// Generator defines the interface for language-specific binding generators.
type Generator interface {
	// GenerateFile creates the complete binding source unit from the schema.
	GenerateFile(s *schema.Schema) string

	// FileExtension returns the file extension for this language (e.g., "rs")
	FileExtension() string

	// Language returns the language name (e.g., "rust")
	Language() string
}
