package node

import (
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/prefskit/prefskit/pkg/types"
)

// Document owns a parsed preference tree. The prefs context keeps the
// document of its most recent top-level parse alive so nodes handed to
// callbacks stay valid; a new parse replaces it.
type Document struct {
	doc *etree.Document
}

// Parse reads a complete preference document from an in-memory buffer.
func Parse(buf []byte) (*Document, error) {
	doc := newDocument()
	if err := doc.ReadFromBytes(buf); err != nil {
		return nil, types.Wrap(types.ErrKindParse, "failed to parse preference buffer", err)
	}
	return &Document{doc: doc}, nil
}

// ParseFile reads a complete preference document from a file. On unix the
// file is read under a shared advisory lock.
func ParseFile(path string) (*Document, error) {
	buf, err := lockedRead(path)
	if err != nil {
		return nil, types.Wrap(types.ErrKindParse, fmt.Sprintf("failed to read %q", path), err)
	}
	d, err := Parse(buf)
	if err != nil {
		return nil, types.Wrap(types.ErrKindParse, fmt.Sprintf("failed to parse %q", path), err)
	}
	return d, nil
}

// Root returns the document's root node.
func (d *Document) Root() (*Node, error) {
	root := d.doc.Root()
	if root == nil {
		return nil, types.Wrap(types.ErrKindParse, "no root element in document", nil)
	}
	return wrap(root), nil
}

// Bytes serializes the whole document in indented form.
func (d *Document) Bytes() ([]byte, error) {
	c := d.doc.Copy()
	c.Indent(2)
	return c.WriteToBytes()
}

func newDocument() *etree.Document {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charsetReader
	return doc
}

// charsetReader decodes the legacy single-byte encodings preference files in
// the wild still declare. UTF-8 never reaches here.
func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	var enc encoding.Encoding
	switch strings.ToLower(charset) {
	case "iso-8859-1", "latin1":
		enc = charmap.ISO8859_1
	case "windows-1252", "cp1252":
		enc = charmap.Windows1252
	case "us-ascii", "ascii":
		// ASCII is a UTF-8 subset; pass through unchanged.
		return input, nil
	default:
		return nil, fmt.Errorf("unsupported charset %q", charset)
	}
	return transform.NewReader(input, enc.NewDecoder()), nil
}
