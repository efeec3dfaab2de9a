package parsers

import "github.com/codedoc/solution-analyzer/internal/lang"

// newJavaParser extracts classes, interfaces, enums, records, and annotation
// types, plus methods and constructors. Documentation is Javadoc (/** */).
func newJavaParser(g *lang.Grammar) *treeSitterParser {
	return &treeSitterParser{
		grammar: g,
		spec: declSpec{
			typeKinds: map[string]bool{
				"class_declaration":           true,
				"interface_declaration":       true,
				"enum_declaration":            true,
				"record_declaration":          true,
				"annotation_type_declaration": true,
			},
			memberKinds: map[string]bool{
				"method_declaration":      true,
				"constructor_declaration": true,
			},
			commentKinds: map[string]bool{
				"line_comment":  true,
				"block_comment": true,
			},
			docMarkers: []string{"/**"},
		},
	}
}
