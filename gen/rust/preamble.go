package rust

import (
	"fmt"
	"strings"
)

// header is the fixed prologue of the generated unit. The bindings sit on
// top of the raw parser crate, so everything below borrows from a
// yp_parser_t that owns the arena.
const header = `// Code generated by nodegen from config.yml. DO NOT EDIT.

use std::marker::PhantomData;
use std::ptr::NonNull;

#[allow(clippy::wildcard_imports)]
use yarp_sys::*;
`

// scalarViews declares the two non-list view types every family and accessor
// builds on: a borrowed source range and an interned constant handle. The
// byte length of a range is derived from its endpoints; an end pointer
// before the start means the foreign memory is corrupt and aborts.
const scalarViews = `/// A range in the source file.
pub struct Location<'pr> {
    pointer: NonNull<yp_location_t>,
    marker: PhantomData<&'pr mut yp_location_t>
}

impl<'pr> Location<'pr> {
    /// Returns the pointer to the start of the range.
    #[must_use]
    pub fn start(&self) -> *const u8 {
        unsafe { self.pointer.as_ref().start }
    }

    /// Returns the pointer to the end of the range.
    #[must_use]
    pub fn end(&self) -> *const u8 {
        unsafe { self.pointer.as_ref().end }
    }

    /// Returns a byte slice for the range.
    #[must_use]
    pub fn as_slice(&self) -> &'pr [u8] {
        let start = self.start();

        unsafe {
          let len = usize::try_from(self.end().offset_from(start)).expect("end should point to memory after start");
          std::slice::from_raw_parts(start, len)
        }
    }
}

impl std::fmt::Debug for Location<'_> {
    fn fmt(&self, f: &mut std::fmt::Formatter<'_>) -> std::fmt::Result {
        let slice: &[u8] = self.as_slice();

        let mut visible = String::new();
        visible.push('"');

        for &byte in slice {
            let part: Vec<u8> = std::ascii::escape_default(byte).collect();
            visible.push_str(std::str::from_utf8(&part).unwrap());
        }

        visible.push('"');
        write!(f, "{visible}")
    }
}

/// A handle for a constant ID.
pub struct ConstantId<'pr> {
    parser: NonNull<yp_parser_t>,
    id: yp_constant_id_t,
    marker: PhantomData<&'pr mut yp_constant_id_t>
}

impl<'pr> ConstantId<'pr> {
    fn new(parser: NonNull<yp_parser_t>, id: yp_constant_id_t) -> Self {
        ConstantId { parser, id, marker: PhantomData }
    }

    /// Returns a byte slice for the constant ID.
    #[must_use]
    pub fn as_slice(&self) -> &'pr [u8] {
        unsafe {
            let pool = &(*self.parser.as_ptr()).constant_pool;
            let constant = &(*pool.constants.offset(isize::try_from(self.id).expect("id should be in range")));
            std::slice::from_raw_parts(constant.start, constant.length)
        }
    }
}

impl std::fmt::Debug for ConstantId<'_> {
    fn fmt(&self, f: &mut std::fmt::Formatter<'_>) -> std::fmt::Result {
        write!(f, "{:?}", self.id)
    }
}
`

// listFamily describes one container/iterator pair over a foreign
// "size + backing array" record. All four families share the same shape;
// they differ only in the record they walk and how an element materializes.
type listFamily struct {
	// listName and iterName are the emitted Rust type names.
	listName string
	iterName string

	// record is the foreign list record type holding size and backing array.
	record string

	// item is the Rust item type yielded by the family's iterator.
	item string

	// plural names the elements in doc comments ("nodes", "ranges", ...).
	plural string

	// listDoc is the doc comment of the container type.
	listDoc string

	// needsParser is set when materializing an element requires the parser
	// handle (tag dispatch or constant pool resolution).
	needsParser bool

	// element binds the raw element at the cursor offset to a local.
	element string

	// materialize turns the bound local into the family's item view.
	materialize string
}

// listFamilies is the fixed emission table. Order is emission order.
//
// The fourth family walks records whose elements are themselves constant id
// lists. No field kind produces one today; it is emitted for structural
// parity with the parser's list records.
var listFamilies = []listFamily{
	{
		listName:    "LocationList",
		iterName:    "LocationListIter",
		record:      "yp_location_list_t",
		item:        "Location<'pr>",
		plural:      "ranges",
		listDoc:     "A list of ranges in the source file.",
		needsParser: false,
		element:     "let pointer: *mut yp_location_t = unsafe { self.pointer.as_ref().locations.add(self.index) };",
		materialize: "Location { pointer: unsafe { NonNull::new_unchecked(pointer) }, marker: PhantomData }",
	},
	{
		listName:    "NodeList",
		iterName:    "NodeListIter",
		record:      "yp_node_list",
		item:        "Node<'pr>",
		plural:      "nodes",
		listDoc:     "A list of nodes.",
		needsParser: true,
		element:     "let node: *mut yp_node_t = unsafe { *(self.pointer.as_ref().nodes.add(self.index)) };",
		materialize: "Node::new(self.parser, node)",
	},
	{
		listName:    "ConstantList",
		iterName:    "ConstantListIter",
		record:      "yp_constant_id_list_t",
		item:        "ConstantId<'pr>",
		plural:      "constants",
		listDoc:     "A list of constants.",
		needsParser: true,
		element:     "let constant_id: yp_constant_id_t = unsafe { *(self.pointer.as_ref().ids.add(self.index)) };",
		materialize: "ConstantId::new(self.parser, constant_id)",
	},
	{
		listName:    "ConstantListList",
		iterName:    "ConstantListListIter",
		record:      "yp_constant_id_list_list_t",
		item:        "ConstantList<'pr>",
		plural:      "constant lists",
		listDoc:     "A list of constant lists.",
		needsParser: true,
		element:     "let pointer: *mut yp_constant_id_list_t = unsafe { self.pointer.as_ref().lists.add(self.index) };",
		materialize: "ConstantList { parser: self.parser, pointer: unsafe { NonNull::new_unchecked(pointer) }, marker: PhantomData }",
	},
}

// writePreamble emits the shared view types and the four list/iterator
// families ahead of any schema-derived declarations.
func writePreamble(sb *strings.Builder) {
	sb.WriteString(header)
	sb.WriteString("\n")
	sb.WriteString(scalarViews)

	for i := range listFamilies {
		sb.WriteString("\n")
		writeListFamily(sb, &listFamilies[i])
	}
}

// writeListFamily emits one container/iterator pair. The iterator is
// forward-only and never resets; the container hands out a fresh iterator at
// cursor zero on every iter() call.
func writeListFamily(sb *strings.Builder, f *listFamily) {
	sb.WriteString(fmt.Sprintf("/// An iterator over the %s in a list.\n", f.plural))
	sb.WriteString(fmt.Sprintf("pub struct %s<'pr> {\n", f.iterName))
	if f.needsParser {
		sb.WriteString("    parser: NonNull<yp_parser_t>,\n")
	}
	sb.WriteString(fmt.Sprintf("    pointer: NonNull<%s>,\n", f.record))
	sb.WriteString("    index: usize,\n")
	sb.WriteString(fmt.Sprintf("    marker: PhantomData<&'pr mut %s>\n", f.record))
	sb.WriteString("}\n")
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("impl<'pr> Iterator for %s<'pr> {\n", f.iterName))
	sb.WriteString(fmt.Sprintf("    type Item = %s;\n", f.item))
	sb.WriteString("\n")
	sb.WriteString("    fn next(&mut self) -> Option<Self::Item> {\n")
	sb.WriteString("        if self.index >= unsafe { self.pointer.as_ref().size } {\n")
	sb.WriteString("            None\n")
	sb.WriteString("        } else {\n")
	sb.WriteString(fmt.Sprintf("            %s\n", f.element))
	sb.WriteString("            self.index += 1;\n")
	sb.WriteString(fmt.Sprintf("            Some(%s)\n", f.materialize))
	sb.WriteString("        }\n")
	sb.WriteString("    }\n")
	sb.WriteString("}\n")
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("/// %s\n", f.listDoc))
	sb.WriteString(fmt.Sprintf("pub struct %s<'pr> {\n", f.listName))
	if f.needsParser {
		sb.WriteString("    parser: NonNull<yp_parser_t>,\n")
	}
	sb.WriteString(fmt.Sprintf("    pointer: NonNull<%s>,\n", f.record))
	sb.WriteString(fmt.Sprintf("    marker: PhantomData<&'pr mut %s>\n", f.record))
	sb.WriteString("}\n")
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("impl<'pr> %s<'pr> {\n", f.listName))
	sb.WriteString(fmt.Sprintf("    /// Returns an iterator over the %s.\n", f.plural))
	sb.WriteString("    #[must_use]\n")
	sb.WriteString(fmt.Sprintf("    pub fn iter(&self) -> %s<'pr> {\n", f.iterName))
	sb.WriteString(fmt.Sprintf("        %s {\n", f.iterName))
	if f.needsParser {
		sb.WriteString("            parser: self.parser,\n")
	}
	sb.WriteString("            pointer: self.pointer,\n")
	sb.WriteString("            index: 0,\n")
	sb.WriteString("            marker: PhantomData\n")
	sb.WriteString("        }\n")
	sb.WriteString("    }\n")
	sb.WriteString("}\n")
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("impl std::fmt::Debug for %s<'_> {\n", f.listName))
	sb.WriteString("    fn fmt(&self, f: &mut std::fmt::Formatter<'_>) -> std::fmt::Result {\n")
	sb.WriteString("        write!(f, \"{:?}\", self.iter().collect::<Vec<_>>())\n")
	sb.WriteString("    }\n")
	sb.WriteString("}\n")
}
