package parsers

import "github.com/codedoc/solution-analyzer/internal/lang"

// newJavaScriptParser extracts class declarations as types, and function
// declarations plus class methods as members. Documentation is JSDoc.
func newJavaScriptParser(g *lang.Grammar) *treeSitterParser {
	return &treeSitterParser{
		grammar: g,
		spec: declSpec{
			typeKinds: map[string]bool{
				"class_declaration": true,
			},
			memberKinds: map[string]bool{
				"function_declaration":           true,
				"generator_function_declaration": true,
				"method_definition":              true,
			},
			commentKinds: map[string]bool{
				"comment": true,
			},
			docMarkers: []string{"/**"},
			wrapperKinds: map[string]bool{
				"export_statement": true,
			},
		},
	}
}
