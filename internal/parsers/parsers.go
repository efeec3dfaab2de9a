package parsers

import "github.com/codedoc/solution-analyzer/internal/lang"

// For returns the parser for a registered grammar, or nil when no extractor
// exists for it. Parsers are stateless and safe to share across workers.
func For(g *lang.Grammar) Parser {
	switch g.ID {
	case lang.Go:
		return goParser{}
	case lang.C:
		return newCParser(g)
	case lang.CPP:
		return newCppParser(g)
	case lang.Java:
		return newJavaParser(g)
	case lang.JavaScript:
		return newJavaScriptParser(g)
	case lang.TypeScript:
		return newTypeScriptParser(g)
	case lang.Python:
		return newPythonParser(g)
	case lang.Ruby:
		return newRubyParser(g)
	case lang.Rust:
		return newRustParser(g)
	case lang.PHP:
		return newPhpParser(g)
	default:
		return nil
	}
}
