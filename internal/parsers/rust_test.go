package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test Plan for the Rust parser:
// - Structs and enums are types; functions inside and outside impl blocks
//   are members
// - /// doc comments attach to the declaration below them
// - Documentation lands type-first, then members

func TestRustParser_SimpleFile(t *testing.T) {
	t.Parallel()

	facts := parseFixture(t, "testdata/code/rust/simple.rs")

	assert.Equal(t, []string{"Point", "Shape"}, facts.Types)
	assert.Equal(t, []string{"norm", "scale", "main"}, facts.Members)
	assert.Equal(t, []string{
		"/// A point on the plane.",
		"/// Distance from the origin.",
		"/// Entry point.",
	}, facts.DocComments)
}
