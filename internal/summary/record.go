package summary

// FileRecord is one file's extracted facts in the semantic summary. The
// field set, names, and order are the contract with the downstream
// documentation generator; do not add fields without a version marker.
type FileRecord struct {
	Project  string   `json:"project"`
	File     string   `json:"file"`
	Types    []string `json:"types"`
	Methods  []string `json:"methods"`
	Comments []string `json:"comments"`
}

// Aggregate assembles a FileRecord from extracted facts. Files that yielded
// nothing return nil and are dropped from the index rather than emitted as
// empty records. Lists are normalized so they serialize as [] and never null.
func Aggregate(project, file string, types, methods, comments []string) *FileRecord {
	if len(types) == 0 && len(methods) == 0 && len(comments) == 0 {
		return nil
	}
	return &FileRecord{
		Project:  project,
		File:     file,
		Types:    orEmpty(types),
		Methods:  orEmpty(methods),
		Comments: orEmpty(comments),
	}
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
