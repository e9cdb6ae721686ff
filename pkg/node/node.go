package node

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"github.com/prefskit/prefskit/pkg/types"
)

// Node is one preference node: a tagged element with named attributes and an
// ordered list of child nodes. The tag carries the class name of the object
// the node describes.
type Node struct {
	el *etree.Element
}

// New creates a detached node tagged with the given name.
func New(tag string) *Node {
	return &Node{el: etree.NewElement(tag)}
}

func wrap(el *etree.Element) *Node {
	if el == nil {
		return nil
	}
	return &Node{el: el}
}

// Tag returns the node's class-name tag.
func (n *Node) Tag() string { return n.el.Tag }

// SetString sets a string-valued attribute, replacing any previous value.
func (n *Node) SetString(name, value string) {
	n.el.CreateAttr(name, value)
}

// String returns a string-valued attribute.
func (n *Node) String(name string) (string, error) {
	attr := n.el.SelectAttr(name)
	if attr == nil {
		return "", types.Wrap(types.ErrKindNotFound,
			fmt.Sprintf("attribute %q not set on <%s>", name, n.el.Tag), types.ErrNotFound)
	}
	return attr.Value, nil
}

// SetInt sets an integer-valued attribute.
func (n *Node) SetInt(name string, value int) {
	n.el.CreateAttr(name, strconv.Itoa(value))
}

// Int returns an integer-valued attribute.
func (n *Node) Int(name string) (int, error) {
	s, err := n.String(name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, types.Wrap(types.ErrKindParse,
			fmt.Sprintf("attribute %q on <%s> is not an integer", name, n.el.Tag), err)
	}
	return v, nil
}

// SetBool sets a boolean-valued attribute, encoded as "true" or "false".
func (n *Node) SetBool(name string, value bool) {
	n.el.CreateAttr(name, strconv.FormatBool(value))
}

// Bool returns a boolean-valued attribute.
func (n *Node) Bool(name string) (bool, error) {
	s, err := n.String(name)
	if err != nil {
		return false, err
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, types.Wrap(types.ErrKindParse,
			fmt.Sprintf("attribute %q on <%s> is not a boolean", name, n.el.Tag), err)
	}
	return v, nil
}

// Attr is one named attribute of a node.
type Attr struct {
	Name  string
	Value string
}

// Attrs returns the node's attributes in the order they were set.
func (n *Node) Attrs() []Attr {
	out := make([]Attr, len(n.el.Attr))
	for i, a := range n.el.Attr {
		out[i] = Attr{Name: a.Key, Value: a.Value}
	}
	return out
}

// AddChild appends child as the last child of n. A child already attached
// elsewhere is moved, not copied.
func (n *Node) AddChild(child *Node) {
	if child == nil {
		return
	}
	n.el.AddChild(child.el)
}

// FirstChild returns the first child node in document order, or nil.
func (n *Node) FirstChild() *Node {
	children := n.el.ChildElements()
	if len(children) == 0 {
		return nil
	}
	return wrap(children[0])
}

// Next returns the next sibling node in document order, or nil. Together with
// FirstChild it walks a composite node's children the way the conversion
// callbacks consume them.
func (n *Node) Next() *Node {
	parent := n.el.Parent()
	if parent == nil {
		return nil
	}
	siblings := parent.ChildElements()
	for i, el := range siblings {
		if el == n.el && i+1 < len(siblings) {
			return wrap(siblings[i+1])
		}
	}
	return nil
}

// Children returns all child nodes in document order.
func (n *Node) Children() []*Node {
	els := n.el.ChildElements()
	out := make([]*Node, len(els))
	for i, el := range els {
		out[i] = wrap(el)
	}
	return out
}

// Len returns the number of child nodes.
func (n *Node) Len() int { return len(n.el.ChildElements()) }
