package summary

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultFileName is the well-known output path, relative to the working
// directory, that the downstream documentation generator reads.
const DefaultFileName = "semantic_summary.json"

// WriteError reports that the summary could not be rendered or persisted.
// Fatal: the run's extracted facts are lost.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write summary %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Write renders the records as indented JSON, preserving record and field
// order, and atomically replaces any previous file at path. The rendering is
// byte-identical for identical input, so re-running an unchanged solution
// reproduces the same artifact.
func Write(path string, records []FileRecord) error {
	if records == nil {
		records = []FileRecord{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		// Records are plain strings and slices; failing here means an
		// internal invariant broke.
		return &WriteError{Path: path, Err: err}
	}
	data = append(data, '\n')

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
