package parsers

import (
	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/codedoc/solution-analyzer/internal/lang"
)

// newCParser extracts structs, unions, enums, and typedefs as types, and
// function definitions as members. C declaration names can hide inside
// pointer and function declarators, so name resolution digs through them.
func newCParser(g *lang.Grammar) *treeSitterParser {
	return &treeSitterParser{
		grammar: g,
		spec: declSpec{
			typeKinds: map[string]bool{
				"struct_specifier": true,
				"union_specifier":  true,
				"enum_specifier":   true,
				"type_definition":  true,
			},
			memberKinds: map[string]bool{
				"function_definition": true,
			},
			commentKinds: map[string]bool{
				"comment": true,
			},
			docMarkers: []string{"/**", "///"},
			nameOf:     cFamilyName,
		},
	}
}

// cFamilyName resolves declaration names for the C and C++ grammars.
func cFamilyName(n *sitter.Node, source []byte) string {
	switch n.Kind() {
	case "function_definition", "type_definition":
		return declaratorName(n.ChildByFieldName("declarator"), source)
	default:
		return fieldText(n, "name", source)
	}
}

// declaratorName recursively finds the declared identifier in a declarator.
func declaratorName(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}

	switch node.Kind() {
	case "identifier", "type_identifier", "field_identifier", "qualified_identifier", "operator_name", "destructor_name":
		return extractNodeText(node, source)
	case "function_declarator", "pointer_declarator", "reference_declarator", "parenthesized_declarator":
		return declaratorName(node.ChildByFieldName("declarator"), source)
	default:
		for i := 0; i < int(node.ChildCount()); i++ {
			child := node.Child(uint(i))
			switch child.Kind() {
			case "identifier", "type_identifier", "field_identifier":
				return extractNodeText(child, source)
			}
		}
		return ""
	}
}
