package rust

import (
	"fmt"
	"strings"

	"github.com/teranos/nodegen/gen/util"
	"github.com/teranos/nodegen/schema"
)

// writeNode emits the typed wrapper for one node kind: documentation, the
// {parser, pointer, marker} struct, the conversion back to the generic Node,
// the location accessor every node carries in its common header, one
// accessor per declared field, and the Debug impl.
func writeNode(sb *strings.Builder, node *schema.Node) {
	for _, line := range FormatDocComment(node.Comment) {
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	structName := util.StructName(node.Name)

	sb.WriteString(fmt.Sprintf("pub struct %s<'pr> {\n", node.Name))
	sb.WriteString("    /// The pointer to the parser this node came from.\n")
	sb.WriteString("    parser: NonNull<yp_parser_t>,\n")
	sb.WriteString("\n")
	sb.WriteString("    /// The raw pointer to the node allocated by the parser.\n")
	sb.WriteString(fmt.Sprintf("    pointer: *mut yp%s_t,\n", structName))
	sb.WriteString("\n")
	sb.WriteString("    /// The marker to indicate the lifetime of the pointer.\n")
	sb.WriteString(fmt.Sprintf("    marker: PhantomData<&'pr mut yp%s_t>\n", structName))
	sb.WriteString("}\n")
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("impl<'pr> %s<'pr> {\n", node.Name))
	sb.WriteString("    /// Converts this node to a generic node.\n")
	sb.WriteString("    #[must_use]\n")
	sb.WriteString("    pub fn as_node(&self) -> Node<'pr> {\n")
	sb.WriteString(fmt.Sprintf("        Node::%s { parser: self.parser, pointer: self.pointer, marker: PhantomData }\n", node.Name))
	sb.WriteString("    }\n")
	sb.WriteString("\n")
	sb.WriteString("    /// Returns the location of this node.\n")
	sb.WriteString("    #[must_use]\n")
	sb.WriteString("    pub fn location(&self) -> Location<'pr> {\n")
	sb.WriteString("        let pointer: *mut yp_location_t = unsafe { &mut (*self.pointer).base.location };\n")
	sb.WriteString("        Location { pointer: unsafe { NonNull::new_unchecked(pointer) }, marker: PhantomData }\n")
	sb.WriteString("    }\n")

	for _, field := range node.Fields {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("    /// Returns the `%s` param\n", field.Name))
		sb.WriteString("    #[must_use]\n")
		writeFieldAccessor(sb, &field)
	}

	sb.WriteString("}\n")
	sb.WriteString("\n")

	writeNodeDebug(sb, node)
}

// writeFieldAccessor emits one accessor, dispatched on the field kind.
// Every accessor is a pure read through the borrowed pointer; optional kinds
// surface null as None, everything else assumes the schema's layout
// contract holds.
func writeFieldAccessor(sb *strings.Builder, field *schema.Field) {
	switch field.Type {
	case schema.KindNode:
		if field.Kind != "" {
			// Narrowed child: reinterpret directly, the schema guarantees
			// the layout. No runtime check.
			sb.WriteString(fmt.Sprintf("    pub fn %s(&self) -> %s<'pr> {\n", field.Name, field.Kind))
			sb.WriteString(fmt.Sprintf("        let node: *mut yp%s_t = unsafe { (*self.pointer).%s };\n", util.StructName(field.Kind), field.Name))
			sb.WriteString(fmt.Sprintf("        %s { parser: self.parser, pointer: node, marker: PhantomData }\n", field.Kind))
			sb.WriteString("    }\n")
		} else {
			sb.WriteString(fmt.Sprintf("    pub fn %s(&self) -> Node<'pr> {\n", field.Name))
			sb.WriteString(fmt.Sprintf("        let node: *mut yp_node_t = unsafe { (*self.pointer).%s };\n", field.Name))
			sb.WriteString("        Node::new(self.parser, node)\n")
			sb.WriteString("    }\n")
		}

	case schema.KindOptionalNode:
		if field.Kind != "" {
			sb.WriteString(fmt.Sprintf("    pub fn %s(&self) -> Option<%s<'pr>> {\n", field.Name, field.Kind))
			sb.WriteString(fmt.Sprintf("        let node: *mut yp%s_t = unsafe { (*self.pointer).%s };\n", util.StructName(field.Kind), field.Name))
			sb.WriteString("        if node.is_null() {\n")
			sb.WriteString("            None\n")
			sb.WriteString("        } else {\n")
			sb.WriteString(fmt.Sprintf("            Some(%s { parser: self.parser, pointer: node, marker: PhantomData })\n", field.Kind))
			sb.WriteString("        }\n")
			sb.WriteString("    }\n")
		} else {
			sb.WriteString(fmt.Sprintf("    pub fn %s(&self) -> Option<Node<'pr>> {\n", field.Name))
			sb.WriteString(fmt.Sprintf("        let node: *mut yp_node_t = unsafe { (*self.pointer).%s };\n", field.Name))
			sb.WriteString("        if node.is_null() {\n")
			sb.WriteString("            None\n")
			sb.WriteString("        } else {\n")
			sb.WriteString("            Some(Node::new(self.parser, node))\n")
			sb.WriteString("        }\n")
			sb.WriteString("    }\n")
		}

	case schema.KindNodeList:
		sb.WriteString(fmt.Sprintf("    pub fn %s(&self) -> NodeList<'pr> {\n", field.Name))
		sb.WriteString(fmt.Sprintf("        let pointer: *mut yp_node_list = unsafe { &mut (*self.pointer).%s };\n", field.Name))
		sb.WriteString("        NodeList { parser: self.parser, pointer: unsafe { NonNull::new_unchecked(pointer) }, marker: PhantomData }\n")
		sb.WriteString("    }\n")

	case schema.KindString:
		// Stub: the parser does not expose string contents yet.
		sb.WriteString(fmt.Sprintf("    pub const fn %s(&self) -> &str {\n", field.Name))
		sb.WriteString("        \"\"\n")
		sb.WriteString("    }\n")

	case schema.KindConstant:
		sb.WriteString(fmt.Sprintf("    pub fn %s(&self) -> ConstantId<'pr> {\n", field.Name))
		sb.WriteString(fmt.Sprintf("        ConstantId::new(self.parser, unsafe { (*self.pointer).%s })\n", field.Name))
		sb.WriteString("    }\n")

	case schema.KindConstantList:
		sb.WriteString(fmt.Sprintf("    pub fn %s(&self) -> ConstantList<'pr> {\n", field.Name))
		sb.WriteString(fmt.Sprintf("        let pointer: *mut yp_constant_id_list_t = unsafe { &mut (*self.pointer).%s };\n", field.Name))
		sb.WriteString("        ConstantList { parser: self.parser, pointer: unsafe { NonNull::new_unchecked(pointer) }, marker: PhantomData }\n")
		sb.WriteString("    }\n")

	case schema.KindLocation:
		sb.WriteString(fmt.Sprintf("    pub fn %s(&self) -> Location<'pr> {\n", field.Name))
		sb.WriteString(fmt.Sprintf("        let pointer: *mut yp_location_t = unsafe { &mut (*self.pointer).%s };\n", field.Name))
		sb.WriteString("        Location { pointer: unsafe { NonNull::new_unchecked(pointer) }, marker: PhantomData }\n")
		sb.WriteString("    }\n")

	case schema.KindOptionalLocation:
		sb.WriteString(fmt.Sprintf("    pub fn %s(&self) -> Option<Location<'pr>> {\n", field.Name))
		sb.WriteString(fmt.Sprintf("        let pointer: *mut yp_location_t = unsafe { &mut (*self.pointer).%s };\n", field.Name))
		sb.WriteString("        if pointer.is_null() {\n")
		sb.WriteString("            None\n")
		sb.WriteString("        } else {\n")
		sb.WriteString("            Some(Location { pointer: unsafe { NonNull::new_unchecked(pointer) }, marker: PhantomData })\n")
		sb.WriteString("        }\n")
		sb.WriteString("    }\n")

	case schema.KindLocationList:
		sb.WriteString(fmt.Sprintf("    pub fn %s(&self) -> LocationList<'pr> {\n", field.Name))
		sb.WriteString(fmt.Sprintf("        let pointer: *mut yp_location_list_t = unsafe { &mut (*self.pointer).%s };\n", field.Name))
		sb.WriteString("        LocationList { pointer: unsafe { NonNull::new_unchecked(pointer) }, marker: PhantomData }\n")
		sb.WriteString("    }\n")

	case schema.KindUInt32:
		sb.WriteString(fmt.Sprintf("    pub fn %s(&self) -> u32 {\n", field.Name))
		sb.WriteString(fmt.Sprintf("        unsafe { (*self.pointer).%s }\n", field.Name))
		sb.WriteString("    }\n")

	case schema.KindFlags:
		// Flags always read the common header, not field-specific storage.
		sb.WriteString(fmt.Sprintf("    pub fn %s(&self) -> yp_node_flags_t {\n", field.Name))
		sb.WriteString("        unsafe { (*self.pointer).base.flags }\n")
		sb.WriteString("    }\n")
	}
}

// writeNodeDebug emits the Debug impl that renders the node name followed by
// the parenthesized debug output of every field accessor in declaration
// order. A node with no fields renders as `Name()`.
func writeNodeDebug(sb *strings.Builder, node *schema.Node) {
	sb.WriteString(fmt.Sprintf("impl std::fmt::Debug for %s<'_> {\n", node.Name))
	sb.WriteString("    fn fmt(&self, f: &mut std::fmt::Formatter<'_>) -> std::fmt::Result {\n")

	sb.WriteString(fmt.Sprintf("        write!(f, \"%s(", node.Name))
	if len(node.Fields) == 0 {
		sb.WriteString(")\"")
	} else {
		placeholders := make([]string, len(node.Fields))
		accessors := make([]string, len(node.Fields))
		for i, field := range node.Fields {
			placeholders[i] = "{:?}"
			accessors[i] = fmt.Sprintf("self.%s()", field.Name)
		}
		sb.WriteString(strings.Join(placeholders, ", "))
		sb.WriteString(")\", ")
		sb.WriteString(strings.Join(accessors, ", "))
	}
	sb.WriteString(")\n")

	sb.WriteString("    }\n")
	sb.WriteString("}\n")
}
