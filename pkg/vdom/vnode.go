package vdom

import (
	"strings"

	"github.com/vango-dev/vattr/pkg/attr"
)

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement  Kind = iota // <div>, <button>, etc.
	KindText                 // Plain text node
	KindFragment             // Grouping without wrapper
	KindRaw                  // Raw HTML (dangerous)
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// Attr is an attribute keyed by its HTML name.
type Attr[EVENT, MSG any] = attr.Attribute[string, EVENT, MSG]

// Node is the virtual DOM node.
type Node[EVENT, MSG any] struct {
	Kind     Kind               // Node type
	Tag      string             // Element tag name (e.g., "div")
	Attrs    []Attr[EVENT, MSG] // Attributes, properties and listeners
	Children []*Node[EVENT, MSG]
	Key      string // Reconciliation key
	Text     string // For KindText and KindRaw
	HID      string // Hydration ID (assigned during render)
}

// IsInteractive returns true if this node has event attributes and needs a HID.
func (n *Node[EVENT, MSG]) IsInteractive() bool {
	if n == nil || n.Kind != KindElement {
		return false
	}
	for _, a := range n.Attrs {
		if a.IsEvent() {
			return true
		}
	}
	return false
}

// Attr returns the last attribute with the given qualified name.
func (n *Node[EVENT, MSG]) Attr(name string) (Attr[EVENT, MSG], bool) {
	if n == nil {
		return Attr[EVENT, MSG]{}, false
	}
	for i := len(n.Attrs) - 1; i >= 0; i-- {
		if n.Attrs[i].QualifiedName() == name {
			return n.Attrs[i], true
		}
	}
	return Attr[EVENT, MSG]{}, false
}

// PrettyString renders the subtree as unescaped markup for debugging.
// Only static attributes appear; properties and listeners are omitted.
// Use package render for HTML that is safe to serve.
func (n *Node[EVENT, MSG]) PrettyString() string {
	var b strings.Builder
	n.writePretty(&b)
	return b.String()
}

func (n *Node[EVENT, MSG]) writePretty(b *strings.Builder) {
	if n == nil {
		return
	}
	switch n.Kind {
	case KindText, KindRaw:
		b.WriteString(n.Text)
	case KindFragment:
		for _, child := range n.Children {
			child.writePretty(b)
		}
	case KindElement:
		b.WriteByte('<')
		b.WriteString(n.Tag)
		for _, a := range n.Attrs {
			if s := a.PrettyString(); s != "" {
				b.WriteByte(' ')
				b.WriteString(s)
			}
		}
		b.WriteByte('>')
		if IsVoidElement(n.Tag) {
			return
		}
		for _, child := range n.Children {
			child.writePretty(b)
		}
		b.WriteString("</")
		b.WriteString(n.Tag)
		b.WriteByte('>')
	}
}
