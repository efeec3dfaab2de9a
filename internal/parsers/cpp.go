package parsers

import "github.com/codedoc/solution-analyzer/internal/lang"

// newCppParser extends the C declaration set with classes and alias
// declarations. Methods defined inside a class body and out-of-line
// definitions are both function_definition nodes, so the member pass finds
// them at any nesting level.
func newCppParser(g *lang.Grammar) *treeSitterParser {
	return &treeSitterParser{
		grammar: g,
		spec: declSpec{
			typeKinds: map[string]bool{
				"class_specifier":   true,
				"struct_specifier":  true,
				"union_specifier":   true,
				"enum_specifier":    true,
				"type_definition":   true,
				"alias_declaration": true,
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
