package parsers

import "github.com/codedoc/solution-analyzer/internal/lang"

// newRustParser extracts structs, enums, traits, unions, and type aliases as
// types, and free functions plus impl/trait methods as members. Rust doc
// comments are /// and //! line runs or /** */ blocks.
func newRustParser(g *lang.Grammar) *treeSitterParser {
	return &treeSitterParser{
		grammar: g,
		spec: declSpec{
			typeKinds: map[string]bool{
				"struct_item": true,
				"enum_item":   true,
				"trait_item":  true,
				"union_item":  true,
				"type_item":   true,
			},
			memberKinds: map[string]bool{
				"function_item":           true,
				"function_signature_item": true,
			},
			commentKinds: map[string]bool{
				"line_comment":  true,
				"block_comment": true,
			},
			docMarkers: []string{"///", "//!", "/**"},
		},
	}
}
