package parsers

import "github.com/codedoc/solution-analyzer/internal/lang"

// newPythonParser extracts class definitions as types and def/async def as
// members, nested functions included. Python convention puts documentation in
// docstrings after the declaration; only leading # comment blocks are
// captured here, consistent with the leading-trivia heuristic used for every
// other language.
func newPythonParser(g *lang.Grammar) *treeSitterParser {
	return &treeSitterParser{
		grammar: g,
		spec: declSpec{
			typeKinds: map[string]bool{
				"class_definition": true,
			},
			memberKinds: map[string]bool{
				"function_definition": true,
			},
			commentKinds: map[string]bool{
				"comment": true,
			},
			docMarkers: []string{"#"},
			wrapperKinds: map[string]bool{
				"decorated_definition": true,
			},
		},
	}
}
