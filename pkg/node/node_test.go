package node

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prefskit/prefskit/pkg/types"
)

func TestStringAttr(t *testing.T) {
	n := New("person")
	n.SetString("name", "Bob")

	got, err := n.String("name")
	require.NoError(t, err)
	require.Equal(t, "Bob", got)

	// Replacing keeps a single attribute.
	n.SetString("name", "Alice")
	got, err = n.String("name")
	require.NoError(t, err)
	require.Equal(t, "Alice", got)

	_, err = n.String("email")
	require.ErrorIs(t, err, types.ErrNotFound)
}

func TestIntAttr(t *testing.T) {
	n := New("person")
	n.SetInt("age", 30)

	got, err := n.Int("age")
	require.NoError(t, err)
	require.Equal(t, 30, got)

	n.SetString("age", "not-a-number")
	_, err = n.Int("age")
	var terr *types.Error
	require.True(t, errors.As(err, &terr))
	require.Equal(t, types.ErrKindParse, terr.Kind)
}

func TestBoolAttr(t *testing.T) {
	n := New("person")

	// true and false must both survive exactly, not as 0/1.
	n.SetBool("alive", true)
	s, err := n.String("alive")
	require.NoError(t, err)
	require.Equal(t, "true", s)

	v, err := n.Bool("alive")
	require.NoError(t, err)
	require.True(t, v)

	n.SetBool("alive", false)
	s, err = n.String("alive")
	require.NoError(t, err)
	require.Equal(t, "false", s)

	v, err = n.Bool("alive")
	require.NoError(t, err)
	require.False(t, v)
}

func TestChildrenDocumentOrder(t *testing.T) {
	parent := New("people")
	tags := []string{"first", "second", "third"}
	for _, tag := range tags {
		parent.AddChild(New(tag))
	}
	require.Equal(t, 3, parent.Len())

	// Children slice preserves append order.
	var got []string
	for _, c := range parent.Children() {
		got = append(got, c.Tag())
	}
	require.Equal(t, tags, got)

	// First-child/next-sibling walk sees the same order.
	got = nil
	for c := parent.FirstChild(); c != nil; c = c.Next() {
		got = append(got, c.Tag())
	}
	require.Equal(t, tags, got)
}

func TestFirstChildEmpty(t *testing.T) {
	n := New("empty")
	require.Nil(t, n.FirstChild())
	require.Nil(t, n.Next()) // detached node has no siblings
}

func TestSerializeParseRoundTrip(t *testing.T) {
	person := New("person")
	person.SetString("name", "Bob")
	person.SetInt("age", 30)
	person.SetBool("alive", true)

	people := New("people")
	people.AddChild(person)

	buf, err := people.Bytes()
	require.NoError(t, err)
	require.Contains(t, string(buf), "<people>")
	require.Contains(t, string(buf), `name="Bob"`)

	doc, err := Parse(buf)
	require.NoError(t, err)
	root, err := doc.Root()
	require.NoError(t, err)
	require.Equal(t, "people", root.Tag())

	child := root.FirstChild()
	require.NotNil(t, child)
	require.Equal(t, "person", child.Tag())

	name, err := child.String("name")
	require.NoError(t, err)
	require.Equal(t, "Bob", name)
	age, err := child.Int("age")
	require.NoError(t, err)
	require.Equal(t, 30, age)
	alive, err := child.Bool("alive")
	require.NoError(t, err)
	require.True(t, alive)
}

func TestSerializeLeavesSourceIntact(t *testing.T) {
	n := New("person")
	n.SetString("name", "Bob")

	_, err := n.Bytes()
	require.NoError(t, err)

	// Indentation must not have leaked whitespace children into the node.
	require.Equal(t, 0, n.Len())
	name, err := n.String("name")
	require.NoError(t, err)
	require.Equal(t, "Bob", name)
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse([]byte("<people><person></people>"))
	require.Error(t, err)
	var terr *types.Error
	require.True(t, errors.As(err, &terr))
	require.Equal(t, types.ErrKindParse, terr.Kind)
}

func TestParseNoRoot(t *testing.T) {
	doc, err := Parse([]byte("<!-- nothing here -->"))
	require.NoError(t, err)
	_, err = doc.Root()
	require.Error(t, err)
}

func TestParseLatin1Charset(t *testing.T) {
	// 0xE9 is "é" in ISO-8859-1.
	raw := append([]byte(`<?xml version="1.0" encoding="ISO-8859-1"?><person name="Ren`), 0xE9)
	raw = append(raw, []byte(`"/>`)...)

	doc, err := Parse(raw)
	require.NoError(t, err)
	root, err := doc.Root()
	require.NoError(t, err)
	name, err := root.String("name")
	require.NoError(t, err)
	require.Equal(t, "René", name)
}
