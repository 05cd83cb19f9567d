// Package schema holds the in-memory model of the AST node declarations that
// drive code generation.
//
// The model is loaded once from a YAML document (see Load), validated, and
// then read immutably by every generator. Node order and field order are
// preserved from the document: field order is both accessor emission order
// and default traversal order, so it carries semantic weight downstream.
package schema

import (
	"github.com/teranos/nodegen/errors"
)

// FieldKind identifies the access strategy a node field requires.
type FieldKind int

const (
	// KindNode is a required child node pointer.
	KindNode FieldKind = iota
	// KindOptionalNode is a child node pointer that may be null.
	KindOptionalNode
	// KindNodeList is an embedded list of child nodes.
	KindNodeList
	// KindString is a placeholder accessor that always yields an empty
	// string. The parser does not expose string contents yet.
	KindString
	// KindConstant is an interned constant id resolved through the parser's
	// constant pool.
	KindConstant
	// KindConstantList is an embedded list of interned constant ids.
	KindConstantList
	// KindLocation is an embedded source range.
	KindLocation
	// KindOptionalLocation is a source range pointer that may be null.
	KindOptionalLocation
	// KindLocationList is an embedded list of source ranges.
	KindLocationList
	// KindUInt32 is a plain unsigned 32-bit value read directly.
	KindUInt32
	// KindFlags reads the flags word in the node's common header, regardless
	// of the field name.
	KindFlags
)

// fieldKindTags maps the YAML spellings of the schema document to kinds.
var fieldKindTags = map[string]FieldKind{
	"node":       KindNode,
	"node?":      KindOptionalNode,
	"node[]":     KindNodeList,
	"string":     KindString,
	"constant":   KindConstant,
	"constant[]": KindConstantList,
	"location":   KindLocation,
	"location?":  KindOptionalLocation,
	"location[]": KindLocationList,
	"uint32":     KindUInt32,
	"flags":      KindFlags,
}

var fieldKindNames = func() map[FieldKind]string {
	names := make(map[FieldKind]string, len(fieldKindTags))
	for tag, kind := range fieldKindTags {
		names[kind] = tag
	}
	return names
}()

// ParseFieldKind maps a YAML type tag to its FieldKind.
func ParseFieldKind(tag string) (FieldKind, error) {
	kind, ok := fieldKindTags[tag]
	if !ok {
		return 0, errors.WithHint(
			errors.Newf("unknown field type %q", tag),
			"valid types: node, node?, node[], string, constant, constant[], location, location?, location[], uint32, flags")
	}
	return kind, nil
}

// String returns the YAML spelling of the kind.
func (k FieldKind) String() string {
	if name, ok := fieldKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ChildBearing reports whether fields of this kind hold child nodes and
// therefore participate in default traversal.
func (k FieldKind) ChildBearing() bool {
	switch k {
	case KindNode, KindOptionalNode, KindNodeList:
		return true
	}
	return false
}

// Narrowable reports whether a narrowing `kind:` is meaningful for fields of
// this kind. Only single-child fields can be narrowed; list elements are
// always dispatched at runtime.
func (k FieldKind) Narrowable() bool {
	return k == KindNode || k == KindOptionalNode
}

// Field is one declared field of a node.
type Field struct {
	// Name is the field identifier, also the name of the C struct member.
	Name string

	// Type selects the access strategy.
	Type FieldKind

	// Kind optionally narrows a node/node? field to a specific node name.
	// Empty means the child may be any node kind.
	Kind string
}

// Node is one declared node kind.
type Node struct {
	// Name is the CamelCase node identifier, unique across the schema.
	Name string

	// Fields in declaration order. Order is accessor emission order and
	// default traversal order.
	Fields []Field

	// Comment is the free-form documentation block. Lines indented by four
	// spaces are code examples.
	Comment string
}

// ChildBearing reports whether any field of the node holds child nodes.
func (n *Node) ChildBearing() bool {
	for _, field := range n.Fields {
		if field.Type.ChildBearing() {
			return true
		}
	}
	return false
}

// Schema is the full set of node declarations, in document order.
type Schema struct {
	Nodes []Node
}

// Validate checks the invariants generation depends on: unique node names,
// unique field names per node, and narrowing kinds that name declared nodes.
// Generation must not start on a schema that fails validation.
func (s *Schema) Validate() error {
	if len(s.Nodes) == 0 {
		return errors.New("schema declares no nodes")
	}

	declared := make(map[string]bool, len(s.Nodes))
	for _, node := range s.Nodes {
		if node.Name == "" {
			return errors.New("node with empty name")
		}
		if declared[node.Name] {
			return errors.Newf("duplicate node name %q", node.Name)
		}
		declared[node.Name] = true
	}

	for _, node := range s.Nodes {
		seen := make(map[string]bool, len(node.Fields))
		for _, field := range node.Fields {
			if field.Name == "" {
				return errors.Newf("node %s: field with empty name", node.Name)
			}
			if seen[field.Name] {
				return errors.Newf("node %s: duplicate field name %q", node.Name, field.Name)
			}
			seen[field.Name] = true

			if field.Kind == "" {
				continue
			}
			if !field.Type.Narrowable() {
				return errors.Newf("node %s: field %s: kind %q is only valid on node and node? fields, not %s",
					node.Name, field.Name, field.Kind, field.Type)
			}
			if !declared[field.Kind] {
				return errors.WithHint(
					errors.Newf("node %s: field %s: narrowing kind %q is not a declared node", node.Name, field.Name, field.Kind),
					"narrowing kinds must match a node name declared in the same schema")
			}
		}
	}

	return nil
}
