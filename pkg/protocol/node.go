package protocol

import (
	"github.com/vango-dev/vattr/pkg/vdom"
)

// nilNode marks an absent node on the wire.
const nilNode = 0xFF

// NodeWire is the wire format for nodes. It holds only serializable data:
// static attributes (with data-on-* listener markers) and function-call
// properties. Callbacks never leave the server.
type NodeWire struct {
	Kind     vdom.Kind         // Node type
	Tag      string            // Element tag name
	HID      string            // Hydration ID
	Attrs    map[string]string // Attributes by qualified name
	Props    map[string]string // DOM properties by name
	Children []*NodeWire       // Child nodes
	Text     string            // For Text and Raw nodes
}

// NodeToWire converts a node tree to wire format.
func NodeToWire[EVENT, MSG any](node *vdom.Node[EVENT, MSG]) *NodeWire {
	if node == nil {
		return nil
	}

	w := &NodeWire{
		Kind: node.Kind,
		Tag:  node.Tag,
		HID:  node.HID,
		Text: node.Text,
	}

	if attrs := vdom.EffectiveAttrs(node); len(attrs) > 0 {
		w.Attrs = attrs
	}
	if props := vdom.EffectiveProps(node); len(props) > 0 {
		w.Props = make(map[string]string, len(props))
		for name, v := range props {
			w.Props[name] = v.String()
		}
	}

	if len(node.Children) > 0 {
		w.Children = make([]*NodeWire, 0, len(node.Children))
		for _, child := range node.Children {
			if child != nil {
				w.Children = append(w.Children, NodeToWire(child))
			}
		}
	}

	return w
}

// EncodeNode appends node to e. Attributes and properties are written in
// sorted order so identical trees encode identically.
func EncodeNode(e *Encoder, node *NodeWire) {
	if node == nil {
		e.WriteByte(nilNode)
		return
	}

	e.WriteByte(byte(node.Kind))

	switch node.Kind {
	case vdom.KindElement:
		e.WriteString(node.Tag)
		e.WriteString(node.HID)
		writeStringMap(e, node.Attrs)
		writeStringMap(e, node.Props)
		writeChildren(e, node.Children)
	case vdom.KindText, vdom.KindRaw:
		e.WriteString(node.Text)
	case vdom.KindFragment:
		writeChildren(e, node.Children)
	}
}

func writeStringMap(e *Encoder, m map[string]string) {
	e.WriteUvarint(uint64(len(m)))
	for _, k := range vdom.SortedKeys(m) {
		e.WriteString(k)
		e.WriteString(m[k])
	}
}

func writeChildren(e *Encoder, children []*NodeWire) {
	e.WriteUvarint(uint64(len(children)))
	for _, child := range children {
		EncodeNode(e, child)
	}
}

// DecodeNode reads a node written by EncodeNode, enforcing the decoder's
// depth limit.
func DecodeNode(d *Decoder) (*NodeWire, error) {
	return decodeNode(d, 0)
}

func decodeNode(d *Decoder, depth int) (*NodeWire, error) {
	if depth > d.limits.MaxNodeDepth {
		return nil, ErrMaxDepthExceeded
	}

	kind, err := d.ReadByte()
	if err != nil {
		return nil, err
	}
	if kind == nilNode {
		return nil, nil
	}

	node := &NodeWire{Kind: vdom.Kind(kind)}

	switch node.Kind {
	case vdom.KindElement:
		if node.Tag, err = d.ReadString(); err != nil {
			return nil, err
		}
		if node.HID, err = d.ReadString(); err != nil {
			return nil, err
		}
		if node.Attrs, err = readStringMap(d); err != nil {
			return nil, err
		}
		if node.Props, err = readStringMap(d); err != nil {
			return nil, err
		}
		if node.Children, err = readChildren(d, depth); err != nil {
			return nil, err
		}
	case vdom.KindText, vdom.KindRaw:
		if node.Text, err = d.ReadString(); err != nil {
			return nil, err
		}
	case vdom.KindFragment:
		if node.Children, err = readChildren(d, depth); err != nil {
			return nil, err
		}
	default:
		return nil, ErrUnknownNodeKind
	}

	return node, nil
}

func readStringMap(d *Decoder) (map[string]string, error) {
	count, err := d.ReadCount()
	if err != nil || count == 0 {
		return nil, err
	}

	m := make(map[string]string, count)
	for i := 0; i < count; i++ {
		k, err := d.ReadString()
		if err != nil {
			return nil, err
		}
		v, err := d.ReadString()
		if err != nil {
			return nil, err
		}
		m[k] = v
	}
	return m, nil
}

func readChildren(d *Decoder, depth int) ([]*NodeWire, error) {
	count, err := d.ReadCount()
	if err != nil || count == 0 {
		return nil, err
	}

	children := make([]*NodeWire, count)
	for i := range children {
		child, err := decodeNode(d, depth+1)
		if err != nil {
			return nil, err
		}
		children[i] = child
	}
	return children, nil
}
