package rust

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/teranos/nodegen/schema"
)

func renderVisitor(s *schema.Schema) string {
	var sb strings.Builder
	writeVisitor(&sb, s)
	return sb.String()
}

func TestVisitorTraitDispatch(t *testing.T) {
	output := renderVisitor(&schema.Schema{Nodes: []schema.Node{
		{Name: "CallNode"},
		{Name: "IntegerNode"},
	}})

	assert.Contains(t, output, "pub trait Visit<'pr> {")
	assert.Contains(t, output, "fn visit(&mut self, node: &Node<'pr>) {")
	assert.Contains(t, output, "Node::CallNode { parser, pointer, marker } => self.visit_call_node(&CallNode { parser: *parser, pointer: *pointer, marker: *marker }),")

	// Each kind gets an overridable method delegating to the free function
	assert.Contains(t, output, "fn visit_call_node(&mut self, node: &CallNode<'pr>) {")
	assert.Contains(t, output, "visit_call_node(self, node);")
	assert.Contains(t, output, "fn visit_integer_node(&mut self, node: &IntegerNode<'pr>) {")
}

func TestDefaultTraversalLeafNode(t *testing.T) {
	var sb strings.Builder
	writeDefaultTraversal(&sb, &schema.Node{Name: "IntegerNode", Fields: []schema.Field{
		{Name: "value", Type: schema.KindUInt32},
	}})
	output := sb.String()

	// No child-bearing fields means an empty body with unused params
	assert.Contains(t, output, "pub fn visit_integer_node<'pr, V>(_visitor: &mut V, _node: &IntegerNode<'pr>)")
	assert.Contains(t, output, "{}")
	assert.NotContains(t, output, "visitor.visit")
}

func TestDefaultTraversalChildFields(t *testing.T) {
	var sb strings.Builder
	writeDefaultTraversal(&sb, &schema.Node{Name: "CallNode", Fields: []schema.Field{
		{Name: "receiver", Type: schema.KindOptionalNode},
		{Name: "message_loc", Type: schema.KindOptionalLocation},
		{Name: "arguments", Type: schema.KindNodeList},
		{Name: "block", Type: schema.KindNode},
	}})
	output := sb.String()

	assert.Contains(t, output, "pub fn visit_call_node<'pr, V>(visitor: &mut V, node: &CallNode<'pr>)")
	assert.Contains(t, output, "    V: Visit<'pr> + ?Sized,")

	assert.Contains(t, output, "if let Some(node) = node.receiver() {\n        visitor.visit(&node);\n    }")
	assert.Contains(t, output, "for node in node.arguments().iter() {\n        visitor.visit(&node);\n    }")
	assert.Contains(t, output, "visitor.visit(&node.block());")

	// Locations are not children; traversal never touches them
	assert.NotContains(t, output, "message_loc")
}

func TestDefaultTraversalDeclarationOrder(t *testing.T) {
	var sb strings.Builder
	writeDefaultTraversal(&sb, &schema.Node{Name: "IfNode", Fields: []schema.Field{
		{Name: "predicate", Type: schema.KindNode},
		{Name: "statements", Type: schema.KindOptionalNode},
		{Name: "consequent", Type: schema.KindOptionalNode},
	}})
	output := sb.String()

	assert.Less(t, strings.Index(output, "predicate"), strings.Index(output, "statements"))
	assert.Less(t, strings.Index(output, "statements"), strings.Index(output, "consequent"))
}

func TestDefaultTraversalNarrowedChildren(t *testing.T) {
	var sb strings.Builder
	writeDefaultTraversal(&sb, &schema.Node{Name: "DefNode", Fields: []schema.Field{
		{Name: "parameters", Type: schema.KindOptionalNode, Kind: "ParametersNode"},
		{Name: "statements", Type: schema.KindNode, Kind: "StatementsNode"},
	}})
	output := sb.String()

	// Narrowed children dispatch straight to their kind's method
	assert.Contains(t, output, "visitor.visit_parameters_node(&node);")
	assert.Contains(t, output, "visitor.visit_statements_node(&node.statements());")
	assert.NotContains(t, output, "visitor.visit(&node.statements())")
}
