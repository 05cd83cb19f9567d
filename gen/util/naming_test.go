package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStructName(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"CallNode", "_call_node"},
		{"IfNode", "_if_node"},
		{"XStringNode", "_x_string_node"},
		{"ProgramNode", "_program_node"},
		{"lower", "lower"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StructName(tt.name))
		})
	}
}

func TestTypeName(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"CallNode", "YP_NODE_CALL_NODE"},
		{"IfNode", "YP_NODE_IF_NODE"},
		{"XStringNode", "YP_NODE_X_STRING_NODE"},
		{"ProgramNode", "YP_NODE_PROGRAM_NODE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TypeName(tt.name))
		})
	}
}

// The two transforms must stay consistent: stripping the namespace prefix
// from the tag constant and lowercasing it re-identifies the struct name, so
// both spellings of a node kind resolve to the same declaration.
func TestTransformsRoundTrip(t *testing.T) {
	names := []string{"CallNode", "IfNode", "XStringNode", "InterpolatedXStringNode", "AliasNode"}

	for _, name := range names {
		tag := TypeName(name)
		stripped := strings.TrimPrefix(tag, "YP_NODE")
		assert.Equal(t, StructName(name), strings.ToLower(stripped))
	}
}

// The transform must be injective over distinct CamelCase identifiers.
func TestStructNameInjective(t *testing.T) {
	names := []string{
		"CallNode", "CallOperatorWriteNode", "ClassNode", "ClassVariableReadNode",
		"XStringNode", "StringNode", "InterpolatedStringNode",
	}

	seen := make(map[string]string)
	for _, name := range names {
		s := StructName(name)
		prev, dup := seen[s]
		assert.False(t, dup, "StructName(%s) collides with StructName(%s)", name, prev)
		seen[s] = name
	}
}
