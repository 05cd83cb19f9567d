package rust

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/nodegen/schema"
)

func rootLeafSchema() *schema.Schema {
	return &schema.Schema{Nodes: []schema.Node{
		{
			Name:    "Root",
			Comment: "The root of the tree.\n",
			Fields: []schema.Field{
				{Name: "body", Type: schema.KindNodeList},
			},
		},
		{
			Name: "Leaf",
			Fields: []schema.Field{
				{Name: "value", Type: schema.KindUInt32},
			},
		},
	}}
}

func TestGeneratorMetadata(t *testing.T) {
	g := NewGenerator()
	assert.Equal(t, "rust", g.Language())
	assert.Equal(t, "rs", g.FileExtension())
}

func TestGenerateFileSectionOrder(t *testing.T) {
	output := NewGenerator().GenerateFile(rootLeafSchema())

	sections := []string{
		"// Code generated by nodegen from config.yml. DO NOT EDIT.",
		"pub struct Location<'pr> {",
		"pub struct LocationList<'pr> {",
		"const YP_NODE_ROOT: u16 = yp_node_type::YP_NODE_ROOT as u16;",
		"pub enum Node<'pr> {",
		"pub struct Root<'pr> {",
		"pub struct Leaf<'pr> {",
		"pub trait Visit<'pr> {",
		"pub fn visit_root<'pr, V>(visitor: &mut V, node: &Root<'pr>)",
	}

	last := -1
	for _, section := range sections {
		index := strings.Index(output, section)
		require.GreaterOrEqual(t, index, 0, section)
		assert.Greater(t, index, last, section)
		last = index
	}
}

func TestGenerateFileWiresSchemaThrough(t *testing.T) {
	output := NewGenerator().GenerateFile(rootLeafSchema())

	assert.Contains(t, output, "/// The root of the tree.")
	assert.Contains(t, output, "pub fn body(&self) -> NodeList<'pr> {")
	assert.Contains(t, output, "pub fn value(&self) -> u32 {")
	assert.Contains(t, output, "pub fn as_root(&self) -> Option<Root<'_>> {")
	assert.Contains(t, output, "pub fn as_leaf(&self) -> Option<Leaf<'_>> {")
	assert.Contains(t, output, "for node in node.body().iter() {")
	assert.Contains(t, output, "pub fn visit_leaf<'pr, V>(_visitor: &mut V, _node: &Leaf<'pr>)")
}

func TestGenerateFileDeterministic(t *testing.T) {
	s := rootLeafSchema()
	first := NewGenerator().GenerateFile(s)
	second := NewGenerator().GenerateFile(s)
	assert.Equal(t, first, second)
}
