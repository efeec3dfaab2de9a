package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/dominikbraun/graph"
	"gopkg.in/yaml.v3"

	"github.com/codedoc/solution-analyzer/internal/lang"
)

// solutionManifest is the on-disk shape of a solution file.
type solutionManifest struct {
	Name     string       `yaml:"name"`
	Projects []projectRef `yaml:"projects"`
}

type projectRef struct {
	Path string `yaml:"path"`
}

// projectManifest is the on-disk shape of a project file. Sources are
// doublestar globs relative to the project directory; references are paths
// to other project files relative to the project directory.
type projectManifest struct {
	Name       string   `yaml:"name"`
	Sources    []string `yaml:"sources"`
	References []string `yaml:"references"`
}

// Loader resolves a solution manifest into a Solution. It must be handed an
// initialized language registry; only documents whose extension the registry
// supports are enumerated.
type Loader struct {
	registry *lang.Registry
}

// NewLoader creates a loader bound to the given language registry.
func NewLoader(registry *lang.Registry) *Loader {
	return &Loader{registry: registry}
}

// Load reads the solution manifest, loads every listed project, validates
// the transitive project-reference graph (every referenced project file must
// load, and references must be acyclic), and enumerates each project's
// documents. Any failure is a LoadError for the whole run. The result is
// deterministic for a fixed manifest and file system state: projects in
// manifest order, documents per project in pattern order with each pattern's
// matches sorted.
func (l *Loader) Load(manifestPath string) (*Solution, error) {
	absPath, err := filepath.Abs(manifestPath)
	if err != nil {
		return nil, &LoadError{Path: manifestPath, Err: err}
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, &LoadError{Path: manifestPath, Err: err}
	}

	var manifest solutionManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, &LoadError{Path: manifestPath, Err: fmt.Errorf("malformed solution manifest: %w", err)}
	}

	sol := &Solution{
		ManifestPath: absPath,
		Projects:     []*Project{},
	}

	refGraph := graph.New(graph.StringHash, graph.Directed(), graph.PreventCycles())
	seen := map[string]*projectManifest{}
	solutionDir := filepath.Dir(absPath)

	for _, ref := range manifest.Projects {
		projectPath := resolvePath(solutionDir, ref.Path)
		pm, err := l.resolveProject(projectPath, refGraph, seen)
		if err != nil {
			return nil, &LoadError{Path: manifestPath, Err: err}
		}

		project, err := l.enumerateDocuments(projectPath, pm)
		if err != nil {
			return nil, &LoadError{Path: manifestPath, Err: err}
		}
		sol.Projects = append(sol.Projects, project)
	}

	return sol, nil
}

// resolveProject parses a project manifest and walks its references
// transitively, recording edges in the reference graph. Each project file is
// parsed once; a missing or malformed reference, or a reference cycle, fails
// the load.
func (l *Loader) resolveProject(path string, g graph.Graph[string, string], seen map[string]*projectManifest) (*projectManifest, error) {
	if pm, ok := seen[path]; ok {
		return pm, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("project %s: %w", path, err)
	}

	pm := &projectManifest{}
	if err := yaml.Unmarshal(data, pm); err != nil {
		return nil, fmt.Errorf("project %s: malformed manifest: %w", path, err)
	}
	seen[path] = pm

	if err := g.AddVertex(path); err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
		return nil, fmt.Errorf("project %s: %w", path, err)
	}

	projectDir := filepath.Dir(path)
	for _, ref := range pm.References {
		refPath := resolvePath(projectDir, ref)
		if _, err := l.resolveProject(refPath, g, seen); err != nil {
			return nil, err
		}
		err := g.AddEdge(path, refPath)
		switch {
		case errors.Is(err, graph.ErrEdgeCreatesCycle):
			return nil, fmt.Errorf("project %s: reference cycle via %s", path, refPath)
		case err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists):
			return nil, fmt.Errorf("project %s: %w", path, err)
		}
	}

	return pm, nil
}

// enumerateDocuments expands a project's source globs into its document
// list. Matches of each pattern are sorted; a file matched by several
// patterns keeps its first position; unsupported extensions are skipped.
func (l *Loader) enumerateDocuments(path string, pm *projectManifest) (*Project, error) {
	projectDir := filepath.Dir(path)
	project := &Project{
		Name:       pm.Name,
		Dir:        projectDir,
		Documents:  []Document{},
		References: pm.References,
	}
	if project.Name == "" {
		project.Name = filepath.Base(projectDir)
	}

	taken := map[string]bool{}
	for _, pattern := range pm.Sources {
		matches, err := doublestar.FilepathGlob(
			filepath.Join(projectDir, filepath.FromSlash(pattern)),
			doublestar.WithFilesOnly(),
		)
		if err != nil {
			return nil, fmt.Errorf("project %s: bad source pattern %q: %w", path, pattern, err)
		}
		sort.Strings(matches)

		for _, match := range matches {
			if taken[match] {
				continue
			}
			grammar, ok := l.registry.ByPath(match)
			if !ok {
				continue
			}
			taken[match] = true

			name, err := filepath.Rel(projectDir, match)
			if err != nil {
				name = filepath.Base(match)
			}
			project.Documents = append(project.Documents, Document{
				Name:     filepath.ToSlash(name),
				Path:     match,
				Language: grammar.ID,
			})
		}
	}

	return project, nil
}

func resolvePath(baseDir, p string) string {
	p = filepath.FromSlash(p)
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Clean(filepath.Join(baseDir, p))
}
