package parsers

import (
	"context"
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
)

// goParser parses Go sources with go/ast instead of tree-sitter. The
// standard parser already attaches leading comment groups to declarations,
// which is exactly the doc-comment attachment the other grammars approximate.
type goParser struct{}

// Parse extracts type names in a first pass and function/method names in a
// second, so documentation blocks land in type-then-member order. go/parser
// returns a partial AST alongside an error for malformed files; whatever
// declarations survived are still extracted.
func (goParser) Parse(ctx context.Context, path string, source []byte) (*FileFacts, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, source, parser.ParseComments|parser.SkipObjectResolution)
	if file == nil || (err != nil && file.Name.Name == "") {
		// No package clause means nothing usable survived. go/parser
		// fabricates an empty file even then, so the error check matters.
		return nil, &ParseError{Path: path, Err: err}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	facts := newFileFacts()

	ast.Inspect(file, func(n ast.Node) bool {
		decl, ok := n.(*ast.GenDecl)
		if !ok || decl.Tok != token.TYPE {
			return true
		}
		for _, spec := range decl.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}
			facts.Types = append(facts.Types, ts.Name.Name)
			if doc := rawCommentText(typeDoc(decl, ts)); doc != "" {
				facts.DocComments = append(facts.DocComments, doc)
			}
		}
		return true
	})

	ast.Inspect(file, func(n ast.Node) bool {
		fn, ok := n.(*ast.FuncDecl)
		if !ok {
			return true
		}
		facts.Members = append(facts.Members, fn.Name.Name)
		if doc := rawCommentText(fn.Doc); doc != "" {
			facts.DocComments = append(facts.DocComments, doc)
		}
		return true
	})

	return facts, nil
}

// typeDoc picks the comment group documenting a type spec: the spec's own
// doc inside a grouped declaration, or the GenDecl doc for the common
// single-spec form.
func typeDoc(decl *ast.GenDecl, spec *ast.TypeSpec) *ast.CommentGroup {
	if spec.Doc != nil {
		return spec.Doc
	}
	if len(decl.Specs) == 1 {
		return decl.Doc
	}
	return nil
}

// rawCommentText reassembles a comment group verbatim, markers included,
// trimmed of surrounding whitespace.
func rawCommentText(cg *ast.CommentGroup) string {
	if cg == nil {
		return ""
	}
	lines := make([]string, 0, len(cg.List))
	for _, c := range cg.List {
		lines = append(lines, c.Text)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
