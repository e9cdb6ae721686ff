package node

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/prefskit/prefskit/pkg/types"
)

// Bytes serializes the node and its subtree to an indented buffer. The node
// itself is left untouched; serialization works on a copy so indentation
// whitespace never leaks into the live tree.
func (n *Node) Bytes() ([]byte, error) {
	doc := etree.NewDocument()
	doc.SetRoot(n.el.Copy())
	doc.Indent(2)
	buf, err := doc.WriteToBytes()
	if err != nil {
		return nil, types.Wrap(types.ErrKindExhausted, "failed to serialize node", err)
	}
	return buf, nil
}

// WriteFile serializes the node and its subtree to a file in indented form.
// On unix the file is written under an exclusive advisory lock.
func (n *Node) WriteFile(path string) error {
	buf, err := n.Bytes()
	if err != nil {
		return err
	}
	if err := lockedWrite(path, buf); err != nil {
		return types.Wrap(types.ErrKindExhausted, fmt.Sprintf("failed to write %q", path), err)
	}
	return nil
}
