package workspace

import (
	"fmt"

	"github.com/codedoc/solution-analyzer/internal/lang"
)

// Document is one source file inside a project: its display name (path
// relative to the project directory), its absolute path, and the language
// its extension mapped to. Display names are not unique across projects.
type Document struct {
	Name     string
	Path     string
	Language lang.ID
}

// Project is a named grouping of source documents declared by one project
// manifest. References list the project files this project depends on; the
// referenced projects do not contribute documents here.
type Project struct {
	Name       string
	Dir        string
	Documents  []Document
	References []string
}

// Solution is the resolved form of a solution manifest: the ordered projects
// it enumerates. Read-only once loaded; its lifetime is one extraction run.
type Solution struct {
	ManifestPath string
	Projects     []*Project
}

// DocumentCount returns the total number of documents across all projects.
func (s *Solution) DocumentCount() int {
	n := 0
	for _, p := range s.Projects {
		n += len(p.Documents)
	}
	return n
}

// LoadError reports that the solution manifest or its project graph could
// not be resolved. It is fatal for the run: no partial solution exists.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load workspace %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
