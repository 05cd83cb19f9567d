package schema

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDocument = `
nodes:
  - name: CallNode
    fields:
      - name: receiver
        type: node?
      - name: arguments
        type: node[]
      - name: name
        type: constant
      - name: flags
        type: flags
    comment: |
      Represents a method call.

          foo.bar(1, 2)

      The receiver may be absent for implicit self calls.
  - name: IntegerNode
    comment: |
      Represents an integer literal.
`

func TestLoad(t *testing.T) {
	s, err := Load(strings.NewReader(sampleDocument))
	require.NoError(t, err)
	require.Len(t, s.Nodes, 2)

	call := s.Nodes[0]
	assert.Equal(t, "CallNode", call.Name)
	require.Len(t, call.Fields, 4)
	assert.Equal(t, Field{Name: "receiver", Type: KindOptionalNode}, call.Fields[0])
	assert.Equal(t, Field{Name: "arguments", Type: KindNodeList}, call.Fields[1])
	assert.Equal(t, Field{Name: "name", Type: KindConstant}, call.Fields[2])
	assert.Equal(t, Field{Name: "flags", Type: KindFlags}, call.Fields[3])
	assert.Contains(t, call.Comment, "foo.bar(1, 2)")

	integer := s.Nodes[1]
	assert.Equal(t, "IntegerNode", integer.Name)
	assert.Empty(t, integer.Fields)
}

func TestLoadPreservesNodeOrder(t *testing.T) {
	s, err := Load(strings.NewReader(sampleDocument))
	require.NoError(t, err)

	names := make([]string, 0, len(s.Nodes))
	for _, node := range s.Nodes {
		names = append(names, node.Name)
	}
	assert.Equal(t, []string{"CallNode", "IntegerNode"}, names)
}

func TestLoadNarrowingKind(t *testing.T) {
	doc := `
nodes:
  - name: BlockNode
    fields:
      - name: call
        type: node
        kind: CallNode
    comment: A block attached to a call.
  - name: CallNode
    comment: A method call.
`
	s, err := Load(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "CallNode", s.Nodes[0].Fields[0].Kind)
}

func TestLoadUnknownFieldType(t *testing.T) {
	doc := `
nodes:
  - name: CallNode
    fields:
      - name: receiver
        type: pointer
    comment: A method call.
`
	_, err := Load(strings.NewReader(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown field type "pointer"`)
}

func TestLoadUnknownDocumentKey(t *testing.T) {
	doc := `
nodes:
  - name: CallNode
    members: []
`
	_, err := Load(strings.NewReader(doc))
	require.Error(t, err)
}

func TestLoadInvalidSchema(t *testing.T) {
	doc := `
nodes:
  - name: CallNode
    comment: one
  - name: CallNode
    comment: two
`
	_, err := Load(strings.NewReader(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate node name")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(sampleDocument), 0644))

	s, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, s.Nodes, 2)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yml"))
	require.Error(t, err)
}
