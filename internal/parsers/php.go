package parsers

import "github.com/codedoc/solution-analyzer/internal/lang"

// newPhpParser extracts classes, interfaces, traits, and enums as types, and
// free functions plus class methods as members. Documentation is PHPDoc.
func newPhpParser(g *lang.Grammar) *treeSitterParser {
	return &treeSitterParser{
		grammar: g,
		spec: declSpec{
			typeKinds: map[string]bool{
				"class_declaration":     true,
				"interface_declaration": true,
				"trait_declaration":     true,
				"enum_declaration":      true,
			},
			memberKinds: map[string]bool{
				"function_definition": true,
				"method_declaration":  true,
			},
			commentKinds: map[string]bool{
				"comment": true,
			},
			docMarkers: []string{"/**"},
		},
	}
}
