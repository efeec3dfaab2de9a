package parsers

import "github.com/codedoc/solution-analyzer/internal/lang"

// newRubyParser extracts classes and modules as types, and instance plus
// singleton methods as members. RDoc blocks are plain # comment runs.
func newRubyParser(g *lang.Grammar) *treeSitterParser {
	return &treeSitterParser{
		grammar: g,
		spec: declSpec{
			typeKinds: map[string]bool{
				"class":  true,
				"module": true,
			},
			memberKinds: map[string]bool{
				"method":           true,
				"singleton_method": true,
			},
			commentKinds: map[string]bool{
				"comment": true,
			},
			docMarkers: []string{"#"},
		},
	}
}
