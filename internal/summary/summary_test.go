package summary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for the summary package:
// - Aggregate drops files that yielded nothing
// - Aggregate normalizes nil lists to empty ones
// - Write renders fields in contract order: project, file, types, methods,
//   comments
// - Write emits [] for an empty index, never null
// - Write atomically replaces an existing file and leaves no temp file
// - Identical input renders byte-identical output

func TestAggregate_DropsEmptyFiles(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Aggregate("p", "f.go", nil, nil, nil))
	assert.Nil(t, Aggregate("p", "f.go", []string{}, []string{}, []string{}))
	assert.NotNil(t, Aggregate("p", "f.go", []string{"T"}, nil, nil))
	assert.NotNil(t, Aggregate("p", "f.go", nil, nil, []string{"// doc"}))
}

func TestAggregate_NormalizesNilLists(t *testing.T) {
	t.Parallel()

	rec := Aggregate("p", "f.go", []string{"T"}, nil, nil)
	require.NotNil(t, rec)
	assert.NotNil(t, rec.Methods)
	assert.NotNil(t, rec.Comments)
	assert.Empty(t, rec.Methods)
}

func TestWrite_FieldOrder(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "semantic_summary.json")
	rec := Aggregate("core", "a.go", []string{"Foo"}, []string{"Bar"}, []string{"// Foo is a thing."})
	require.NoError(t, Write(path, []FileRecord{*rec}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	want := `[
  {
    "project": "core",
    "file": "a.go",
    "types": [
      "Foo"
    ],
    "methods": [
      "Bar"
    ],
    "comments": [
      "// Foo is a thing."
    ]
  }
]
`
	assert.Equal(t, want, string(data))
}

func TestWrite_EmptyIndex(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, Write(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestWrite_ReplacesExistingFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	require.NoError(t, Write(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file should not survive the write")
}

func TestWrite_ByteIdenticalReruns(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	records := []FileRecord{
		*Aggregate("p", "x.rs", []string{"Point"}, []string{"norm"}, []string{"/// A point."}),
		*Aggregate("p", "y.rs", []string{"Shape"}, nil, nil),
	}

	first := filepath.Join(dir, "first.json")
	second := filepath.Join(dir, "second.json")
	require.NoError(t, Write(first, records))
	require.NoError(t, Write(second, records))

	a, err := os.ReadFile(first)
	require.NoError(t, err)
	b, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestWrite_ErrorWrapsPath(t *testing.T) {
	t.Parallel()

	err := Write(filepath.Join(t.TempDir(), "missing", "deep", "out.json"), nil)
	require.Error(t, err)

	var werr *WriteError
	require.ErrorAs(t, err, &werr)
	assert.Contains(t, werr.Error(), "out.json")
}
