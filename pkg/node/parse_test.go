package node

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteAndParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.xml")

	person := New("person")
	person.SetString("name", "Alice")
	person.SetBool("alive", false)

	require.NoError(t, person.WriteFile(path))

	// Output is indented, human-readable XML.
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(raw), `alive="false"`)

	doc, err := ParseFile(path)
	require.NoError(t, err)
	root, err := doc.Root()
	require.NoError(t, err)
	require.Equal(t, "person", root.Tag())

	alive, err := root.Bool("alive")
	require.NoError(t, err)
	require.False(t, alive)
}

func TestWriteFileTruncatesPrevious(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.xml")
	require.NoError(t, os.WriteFile(path, make([]byte, 4096), 0o644))

	n := New("tiny")
	require.NoError(t, n.WriteFile(path))

	doc, err := ParseFile(path)
	require.NoError(t, err)
	root, err := doc.Root()
	require.NoError(t, err)
	require.Equal(t, "tiny", root.Tag())
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "absent.xml"))
	require.Error(t, err)
}

func TestDocumentBytes(t *testing.T) {
	doc, err := Parse([]byte(`<people><person name="Bob"/></people>`))
	require.NoError(t, err)

	buf, err := doc.Bytes()
	require.NoError(t, err)
	require.Contains(t, string(buf), "  <person")
}
