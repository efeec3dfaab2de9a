package parsers

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codedoc/solution-analyzer/internal/lang"
)

// Test Plan for parser selection:
// - Every registered grammar maps to a parser
// - Go maps to the go/ast parser, everything else to tree-sitter
// - Malformed input yields partial facts, not an error

func parseFixture(t *testing.T, path string) *FileFacts {
	t.Helper()

	source, err := os.ReadFile(path)
	require.NoError(t, err)

	g, ok := lang.Default().ByPath(path)
	require.True(t, ok, "no grammar for %s", path)

	p := For(g)
	require.NotNil(t, p, "no parser for %s", g.ID)

	facts, err := p.Parse(context.Background(), path, source)
	require.NoError(t, err)
	require.NotNil(t, facts)
	return facts
}

func TestFor_CoversEveryLanguage(t *testing.T) {
	t.Parallel()

	registry := lang.Default()
	for _, id := range []lang.ID{
		lang.Go, lang.C, lang.CPP, lang.Java, lang.JavaScript,
		lang.TypeScript, lang.Python, lang.Ruby, lang.Rust, lang.PHP,
	} {
		g, ok := registry.ByID(id)
		require.True(t, ok, "grammar missing for %s", id)
		assert.NotNil(t, For(g), "parser missing for %s", id)
	}
}

func TestTreeSitterParser_MalformedInput(t *testing.T) {
	t.Parallel()

	g, ok := lang.Default().ByID(lang.Rust)
	require.True(t, ok)
	p := For(g)

	// Tree-sitter recovers with error nodes; broken input is not fatal.
	facts, err := p.Parse(context.Background(), "broken.rs", []byte("fn {{{ %%%"))
	require.NoError(t, err)
	require.NotNil(t, facts)
	assert.Empty(t, facts.Types)
	assert.Empty(t, facts.Members)
}

func TestTreeSitterParser_PartialRecovery(t *testing.T) {
	t.Parallel()

	g, ok := lang.Default().ByID(lang.Rust)
	require.True(t, ok)
	p := For(g)

	source := []byte("struct Intact {}\n\nfn broken( {\n")
	facts, err := p.Parse(context.Background(), "partial.rs", source)
	require.NoError(t, err)
	assert.Contains(t, facts.Types, "Intact")
}

func TestTreeSitterParser_CancelledContext(t *testing.T) {
	t.Parallel()

	g, ok := lang.Default().ByID(lang.Python)
	require.True(t, ok)
	p := For(g)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Parse(ctx, "x.py", []byte("def f():\n    pass\n"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFileFacts_Empty(t *testing.T) {
	t.Parallel()

	facts := newFileFacts()
	assert.True(t, facts.Empty())

	facts.Members = append(facts.Members, "f")
	assert.False(t, facts.Empty())
}
