package parsers

import "github.com/codedoc/solution-analyzer/internal/lang"

// newTypeScriptParser extends the JavaScript shape with interfaces, enums,
// type aliases, and abstract members.
func newTypeScriptParser(g *lang.Grammar) *treeSitterParser {
	return &treeSitterParser{
		grammar: g,
		spec: declSpec{
			typeKinds: map[string]bool{
				"class_declaration":          true,
				"abstract_class_declaration": true,
				"interface_declaration":      true,
				"enum_declaration":           true,
				"type_alias_declaration":     true,
			},
			memberKinds: map[string]bool{
				"function_declaration":           true,
				"generator_function_declaration": true,
				"method_definition":              true,
				"method_signature":               true,
				"abstract_method_signature":      true,
				"function_signature":             true,
			},
			commentKinds: map[string]bool{
				"comment": true,
			},
			docMarkers: []string{"/**"},
			wrapperKinds: map[string]bool{
				"export_statement":    true,
				"ambient_declaration": true,
			},
		},
	}
}
