package parsers

import (
	"context"
	"fmt"
)

// FileFacts is the structural fact set extracted from one source document:
// declared type names, declared callable-member names, and the documentation
// comment blocks attached to either. All three preserve declaration order;
// DocComments lists type docs before member docs because extraction runs a
// type pass and then a member pass.
type FileFacts struct {
	Types       []string
	Members     []string
	DocComments []string
}

// Empty reports whether the document contributed no facts at all.
func (f *FileFacts) Empty() bool {
	return len(f.Types) == 0 && len(f.Members) == 0 && len(f.DocComments) == 0
}

func newFileFacts() *FileFacts {
	return &FileFacts{
		Types:       []string{},
		Members:     []string{},
		DocComments: []string{},
	}
}

// Parser extracts structural facts from one document's source text. Parsing
// is a pure function of the text; implementations must tolerate malformed
// input by returning a ParseError rather than panicking.
type Parser interface {
	Parse(ctx context.Context, path string, source []byte) (*FileFacts, error)
}

// ParseError reports that a single document could not be parsed. It is a
// per-document condition: callers treat the document as contributing zero
// facts and continue the run.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("parse %s: unparseable source", e.Path)
	}
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
