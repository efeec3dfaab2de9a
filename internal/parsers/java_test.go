package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test Plan for the Java parser:
// - Classes at any nesting level are types
// - Methods are members; field declarations are not
// - Javadoc blocks attach to the declaration below them; plain comments
//   without the /** marker are dropped

func TestJavaParser_SimpleFile(t *testing.T) {
	t.Parallel()

	facts := parseFixture(t, "testdata/code/java/simple.java")

	assert.Equal(t, []string{"UserService", "User"}, facts.Types)
	assert.Equal(t, []string{"find", "clear"}, facts.Members)
	assert.Equal(t, []string{
		"/** In-memory registry of user accounts. */",
		"/** Looks up a user by identifier. */",
	}, facts.DocComments)
}
