package rust

import (
	"fmt"
	"strings"

	"github.com/teranos/nodegen/gen/util"
	"github.com/teranos/nodegen/schema"
)

// writeVisitor emits the traversal contract: a Visit trait whose entry point
// dispatches on the union's active variant to one overridable method per
// node kind, and a free default-traversal function per node kind that
// recurses into exactly the child-bearing fields in declaration order.
func writeVisitor(sb *strings.Builder, s *schema.Schema) {
	sb.WriteString("/// A trait for visiting the AST.\n")
	sb.WriteString("pub trait Visit<'pr> {\n")
	sb.WriteString("    /// Visits a node.\n")
	sb.WriteString("    fn visit(&mut self, node: &Node<'pr>) {\n")
	sb.WriteString("        match node {\n")

	for _, node := range s.Nodes {
		sb.WriteString(fmt.Sprintf("            Node::%s { parser, pointer, marker } => self.visit%s(&%s { parser: *parser, pointer: *pointer, marker: *marker }),\n",
			node.Name, util.StructName(node.Name), node.Name))
	}

	sb.WriteString("        }\n")
	sb.WriteString("    }\n")

	for _, node := range s.Nodes {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("    /// Visits a `%s` node.\n", node.Name))
		sb.WriteString(fmt.Sprintf("    fn visit%s(&mut self, node: &%s<'pr>) {\n", util.StructName(node.Name), node.Name))
		sb.WriteString(fmt.Sprintf("        visit%s(self, node);\n", util.StructName(node.Name)))
		sb.WriteString("    }\n")
	}
	sb.WriteString("}\n")

	for i := range s.Nodes {
		sb.WriteString("\n")
		writeDefaultTraversal(sb, &s.Nodes[i])
	}
}

// writeDefaultTraversal emits the free default-traversal function for one
// node kind. Only node, node? and node[] fields are visited; narrowed
// children dispatch straight to their kind's method without
// re-discrimination. Nodes without child-bearing fields still get a function
// so overrides compose uniformly.
func writeDefaultTraversal(sb *strings.Builder, node *schema.Node) {
	structName := util.StructName(node.Name)

	sb.WriteString(fmt.Sprintf("/// The default visitor implementation for a `%s` node.\n", node.Name))

	if !node.ChildBearing() {
		sb.WriteString(fmt.Sprintf("pub fn visit%s<'pr, V>(_visitor: &mut V, _node: &%s<'pr>)\n", structName, node.Name))
		sb.WriteString("where\n")
		sb.WriteString("    V: Visit<'pr> + ?Sized,\n")
		sb.WriteString("{}\n")
		return
	}

	sb.WriteString(fmt.Sprintf("pub fn visit%s<'pr, V>(visitor: &mut V, node: &%s<'pr>)\n", structName, node.Name))
	sb.WriteString("where\n")
	sb.WriteString("    V: Visit<'pr> + ?Sized,\n")
	sb.WriteString("{\n")

	for _, field := range node.Fields {
		switch field.Type {
		case schema.KindNode:
			if field.Kind != "" {
				sb.WriteString(fmt.Sprintf("    visitor.visit%s(&node.%s());\n", util.StructName(field.Kind), field.Name))
			} else {
				sb.WriteString(fmt.Sprintf("    visitor.visit(&node.%s());\n", field.Name))
			}

		case schema.KindOptionalNode:
			if field.Kind != "" {
				sb.WriteString(fmt.Sprintf("    if let Some(node) = node.%s() {\n", field.Name))
				sb.WriteString(fmt.Sprintf("        visitor.visit%s(&node);\n", util.StructName(field.Kind)))
				sb.WriteString("    }\n")
			} else {
				sb.WriteString(fmt.Sprintf("    if let Some(node) = node.%s() {\n", field.Name))
				sb.WriteString("        visitor.visit(&node);\n")
				sb.WriteString("    }\n")
			}

		case schema.KindNodeList:
			sb.WriteString(fmt.Sprintf("    for node in node.%s().iter() {\n", field.Name))
			sb.WriteString("        visitor.visit(&node);\n")
			sb.WriteString("    }\n")
		}
	}

	sb.WriteString("}\n")
}
