package lang

import (
	"path/filepath"
	"strings"
	"sync"

	sitter "github.com/tree-sitter/go-tree-sitter"
	c "github.com/tree-sitter/tree-sitter-c/bindings/go"
	cpp "github.com/tree-sitter/tree-sitter-cpp/bindings/go"
	java "github.com/tree-sitter/tree-sitter-java/bindings/go"
	javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	php "github.com/tree-sitter/tree-sitter-php/bindings/go"
	python "github.com/tree-sitter/tree-sitter-python/bindings/go"
	ruby "github.com/tree-sitter/tree-sitter-ruby/bindings/go"
	rust "github.com/tree-sitter/tree-sitter-rust/bindings/go"
	typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

// ID identifies a supported source language.
type ID string

const (
	Go         ID = "go"
	C          ID = "c"
	CPP        ID = "cpp"
	Java       ID = "java"
	JavaScript ID = "javascript"
	TypeScript ID = "typescript"
	Python     ID = "python"
	Ruby       ID = "ruby"
	Rust       ID = "rust"
	PHP        ID = "php"
)

// Grammar describes one supported language: its tree-sitter grammar and the
// file extensions it claims. Go carries no tree-sitter grammar because Go
// sources are parsed with go/ast.
type Grammar struct {
	ID         ID
	Extensions []string

	language *sitter.Language
	loadOnce sync.Once
	load     func() *sitter.Language
}

// Language returns the tree-sitter language object, loading the grammar on
// first use. Returns nil for Go.
func (g *Grammar) Language() *sitter.Language {
	if g.load == nil {
		return nil
	}
	g.loadOnce.Do(func() {
		g.language = g.load()
	})
	return g.language
}

// Registry is the process-wide table of supported languages. It is the
// analyzer's "toolchain" handle: constructing it loads every grammar table
// entry, and all workspace loading and parsing happens against an
// already-constructed registry.
type Registry struct {
	byExt map[string]*Grammar
	byID  map[ID]*Grammar
}

var (
	defaultRegistry *Registry
	registryOnce    sync.Once
)

// Default returns the shared registry. Initialization happens once per
// process; repeated calls are idempotent and return the same handle.
func Default() *Registry {
	registryOnce.Do(func() {
		defaultRegistry = newRegistry()
	})
	return defaultRegistry
}

func newRegistry() *Registry {
	grammars := []*Grammar{
		{
			ID:         Go,
			Extensions: []string{".go"},
		},
		{
			ID:         C,
			Extensions: []string{".c", ".h"},
			load:       func() *sitter.Language { return sitter.NewLanguage(c.Language()) },
		},
		{
			ID:         CPP,
			Extensions: []string{".cpp", ".cc", ".cxx", ".hpp"},
			load:       func() *sitter.Language { return sitter.NewLanguage(cpp.Language()) },
		},
		{
			ID:         Java,
			Extensions: []string{".java"},
			load:       func() *sitter.Language { return sitter.NewLanguage(java.Language()) },
		},
		{
			ID:         JavaScript,
			Extensions: []string{".js", ".jsx", ".mjs"},
			load:       func() *sitter.Language { return sitter.NewLanguage(javascript.Language()) },
		},
		{
			ID:         TypeScript,
			Extensions: []string{".ts", ".tsx"},
			load:       func() *sitter.Language { return sitter.NewLanguage(typescript.LanguageTypescript()) },
		},
		{
			ID:         Python,
			Extensions: []string{".py"},
			load:       func() *sitter.Language { return sitter.NewLanguage(python.Language()) },
		},
		{
			ID:         Ruby,
			Extensions: []string{".rb"},
			load:       func() *sitter.Language { return sitter.NewLanguage(ruby.Language()) },
		},
		{
			ID:         Rust,
			Extensions: []string{".rs"},
			load:       func() *sitter.Language { return sitter.NewLanguage(rust.Language()) },
		},
		{
			ID:         PHP,
			Extensions: []string{".php"},
			load:       func() *sitter.Language { return sitter.NewLanguage(php.LanguagePHP()) },
		},
	}

	r := &Registry{
		byExt: make(map[string]*Grammar),
		byID:  make(map[ID]*Grammar),
	}
	for _, g := range grammars {
		r.byID[g.ID] = g
		for _, ext := range g.Extensions {
			r.byExt[ext] = g
		}
	}
	return r
}

// ByPath returns the grammar claiming the file's extension.
func (r *Registry) ByPath(path string) (*Grammar, bool) {
	g, ok := r.byExt[strings.ToLower(filepath.Ext(path))]
	return g, ok
}

// ByID returns the grammar for a language ID.
func (r *Registry) ByID(id ID) (*Grammar, bool) {
	g, ok := r.byID[id]
	return g, ok
}

// Supports reports whether the file's extension maps to a known grammar.
func (r *Registry) Supports(path string) bool {
	_, ok := r.ByPath(path)
	return ok
}
