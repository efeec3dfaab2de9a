package parsers

import (
	"context"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/codedoc/solution-analyzer/internal/lang"
)

// declSpec describes how one language's declarations appear in its
// tree-sitter grammar: which node kinds declare types, which declare callable
// members, which kinds carry comments, and which lexical markers identify a
// comment block as documentation.
type declSpec struct {
	typeKinds    map[string]bool
	memberKinds  map[string]bool
	commentKinds map[string]bool
	docMarkers   []string

	// wrapperKinds are ancestor kinds that wrap a declaration without being
	// one (export statements, decorators). Leading comments sit before the
	// wrapper, so the comment scan climbs through them.
	wrapperKinds map[string]bool

	// nameOf resolves a declaration's simple identifier. Nil means the
	// grammar exposes it as the "name" field.
	nameOf func(n *sitter.Node, source []byte) string
}

// treeSitterParser extracts facts from any tree-sitter grammar driven by a
// declSpec. One instance per language; safe for concurrent use because every
// Parse call owns its own sitter.Parser.
type treeSitterParser struct {
	grammar *lang.Grammar
	spec    declSpec
}

// Parse parses the source and walks the tree twice: a type pass, then a
// member pass. Tree-sitter produces best-effort trees with error nodes for
// malformed input, so a syntactically broken file still yields whatever
// declarations survived.
func (p *treeSitterParser) Parse(ctx context.Context, path string, source []byte) (*FileFacts, error) {
	parser := sitter.NewParser()
	defer parser.Close()

	if err := parser.SetLanguage(p.grammar.Language()); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, &ParseError{Path: path}
	}
	defer tree.Close()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	facts := newFileFacts()
	root := tree.RootNode()
	p.collect(root, source, p.spec.typeKinds, &facts.Types, &facts.DocComments)
	p.collect(root, source, p.spec.memberKinds, &facts.Members, &facts.DocComments)
	return facts, nil
}

// collect appends the name and attached documentation of every declaration
// whose kind is in kinds, in depth-first order. Declarations are picked up at
// any nesting level; names stay unqualified.
func (p *treeSitterParser) collect(root *sitter.Node, source []byte, kinds map[string]bool, names, docs *[]string) {
	walkTree(root, func(n *sitter.Node) bool {
		if !kinds[n.Kind()] {
			return true
		}
		name := p.declarationName(n, source)
		if name == "" {
			return true
		}
		*names = append(*names, name)
		if doc := p.leadingDocComment(n, source); doc != "" {
			*docs = append(*docs, doc)
		}
		return true
	})
}

func (p *treeSitterParser) declarationName(n *sitter.Node, source []byte) string {
	if p.spec.nameOf != nil {
		return p.spec.nameOf(n, source)
	}
	return fieldText(n, "name", source)
}

// leadingDocComment gathers the contiguous run of comment siblings directly
// above the declaration (no blank line in between) and returns its trimmed
// verbatim text when it contains one of the language's doc markers. The
// marker check is a substring heuristic, not a comment parser.
func (p *treeSitterParser) leadingDocComment(n *sitter.Node, source []byte) string {
	for parent := n.Parent(); parent != nil && p.spec.wrapperKinds[parent.Kind()]; parent = n.Parent() {
		n = parent
	}

	var parts []string
	belowRow := int(n.StartPosition().Row)

	for s := n.PrevSibling(); s != nil; s = s.PrevSibling() {
		if !p.spec.commentKinds[s.Kind()] {
			break
		}
		if belowRow-int(s.EndPosition().Row) > 1 {
			break
		}
		parts = append([]string{extractNodeText(s, source)}, parts...)
		belowRow = int(s.StartPosition().Row)
	}

	text := strings.TrimSpace(strings.Join(parts, "\n"))
	if text == "" {
		return ""
	}
	for _, marker := range p.spec.docMarkers {
		if strings.Contains(text, marker) {
			return text
		}
	}
	return ""
}

// walkTree recursively walks a tree-sitter tree and calls the visitor for
// each node. Returning false stops descent into that node's children.
func walkTree(node *sitter.Node, visitor func(*sitter.Node) bool) {
	if node == nil {
		return
	}

	if !visitor(node) {
		return
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		walkTree(node.Child(uint(i)), visitor)
	}
}

// extractNodeText extracts the text content of a tree-sitter node.
func extractNodeText(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	return string(source[node.StartByte():node.EndByte()])
}

func fieldText(node *sitter.Node, field string, source []byte) string {
	return extractNodeText(node.ChildByFieldName(field), source)
}
