package rust

import (
	"fmt"
	"strings"

	"github.com/teranos/nodegen/gen/util"
	"github.com/teranos/nodegen/schema"
)

// writeTagConstants emits one u16 discriminant constant per node kind,
// aliased from the parser's node type enum. Declaration order follows the
// schema so the constants and the union variants line up.
func writeTagConstants(sb *strings.Builder, s *schema.Schema) {
	for _, node := range s.Nodes {
		sb.WriteString(fmt.Sprintf("const %s: u16 = yp_node_type::%s as u16;\n",
			util.TypeName(node.Name), util.TypeName(node.Name)))
	}
	sb.WriteString("\n")
}

// writeUnion emits the Node enum with one variant per node kind, the
// tag-dispatch constructor, the location delegator, per-kind downcasts, and
// the Debug delegator.
func writeUnion(sb *strings.Builder, s *schema.Schema) {
	sb.WriteString("/// An enum representing the different kinds of nodes that can be parsed.\n")
	sb.WriteString("pub enum Node<'pr> {\n")

	for _, node := range s.Nodes {
		sb.WriteString(fmt.Sprintf("    /// The %s node\n", node.Name))
		sb.WriteString(fmt.Sprintf("    %s {\n", node.Name))
		sb.WriteString("        /// The pointer to the associated parser this node came from.\n")
		sb.WriteString("        parser: NonNull<yp_parser_t>,\n")
		sb.WriteString("\n")
		sb.WriteString("        /// The raw pointer to the node allocated by the parser.\n")
		sb.WriteString(fmt.Sprintf("        pointer: *mut yp%s_t,\n", util.StructName(node.Name)))
		sb.WriteString("\n")
		sb.WriteString("        /// The marker to indicate the lifetime of the pointer.\n")
		sb.WriteString(fmt.Sprintf("        marker: PhantomData<&'pr mut yp%s_t>\n", util.StructName(node.Name)))
		sb.WriteString("    },\n")
	}

	sb.WriteString("}\n")
	sb.WriteString("\n")

	sb.WriteString("impl<'pr> Node<'pr> {\n")
	sb.WriteString("    /// Creates a new node from the given pointer.\n")
	sb.WriteString("    ///\n")
	sb.WriteString("    /// # Panics\n")
	sb.WriteString("    ///\n")
	sb.WriteString("    /// Panics if the node type cannot be read.\n")
	sb.WriteString("    ///\n")
	sb.WriteString("    #[allow(clippy::not_unsafe_ptr_arg_deref)]\n")
	sb.WriteString("    pub(crate) fn new(parser: NonNull<yp_parser_t>, node: *mut yp_node_t) -> Self {\n")
	sb.WriteString("        match unsafe { (*node).type_ } {\n")

	for _, node := range s.Nodes {
		sb.WriteString(fmt.Sprintf("            %s => Self::%s { parser, pointer: node.cast::<yp%s_t>(), marker: PhantomData },\n",
			util.TypeName(node.Name), node.Name, util.StructName(node.Name)))
	}

	sb.WriteString("            _ => panic!(\"Unknown node type: {}\", unsafe { (*node).type_ })\n")
	sb.WriteString("        }\n")
	sb.WriteString("    }\n")
	sb.WriteString("\n")

	sb.WriteString("    /// Returns the location of this node.\n")
	sb.WriteString("    #[must_use]\n")
	sb.WriteString("    pub fn location(&self) -> Location<'pr> {\n")
	sb.WriteString("        match *self {\n")
	for _, node := range s.Nodes {
		sb.WriteString(fmt.Sprintf("            Self::%s { pointer, .. } => Location { pointer: unsafe { NonNull::new_unchecked(&mut (*pointer.cast::<yp_node_t>()).location) }, marker: PhantomData },\n",
			node.Name))
	}
	sb.WriteString("        }\n")
	sb.WriteString("    }\n")
	sb.WriteString("\n")

	for _, node := range s.Nodes {
		sb.WriteString(fmt.Sprintf("    /// Returns the node as a `%s`.\n", node.Name))
		sb.WriteString("    #[must_use]\n")
		sb.WriteString(fmt.Sprintf("    pub fn as%s(&self) -> Option<%s<'_>> {\n", util.StructName(node.Name), node.Name))
		sb.WriteString("        match *self {\n")
		sb.WriteString(fmt.Sprintf("            Self::%s { parser, pointer, marker } => Some(%s { parser, pointer, marker }),\n",
			node.Name, node.Name))
		sb.WriteString("            _ => None\n")
		sb.WriteString("        }\n")
		sb.WriteString("    }\n")
	}

	sb.WriteString("}\n")
	sb.WriteString("\n")

	sb.WriteString("impl std::fmt::Debug for Node<'_> {\n")
	sb.WriteString("    fn fmt(&self, f: &mut std::fmt::Formatter<'_>) -> std::fmt::Result {\n")
	sb.WriteString("        match *self {\n")

	for _, node := range s.Nodes {
		sb.WriteString(fmt.Sprintf("            Self::%s { parser, pointer, marker } => write!(f, \"{:?}\", %s { parser, pointer, marker }),\n",
			node.Name, node.Name))
	}

	sb.WriteString("        }\n")
	sb.WriteString("    }\n")
	sb.WriteString("}\n")
	sb.WriteString("\n")
}
