package protocol

import (
	"github.com/vango-dev/vattr/pkg/vdom"
)

// Patch is the wire form of a vdom patch. Op values are the vdom.PatchOp
// values.
type Patch struct {
	Op        vdom.PatchOp
	HID       string    // Target element's hydration ID
	Key       string    // Attribute, property or event name
	Namespace string    // Attribute namespace URI, for SetAttr/RemoveAttr
	Value     string    // Text, attribute or property value
	ParentID  string    // Parent HID for InsertNode/MoveNode
	Index     int       // Insert/Move position
	Node      *NodeWire // For InsertNode/ReplaceNode
}

// PatchesFrame is a batch of patches with a sequence number.
type PatchesFrame struct {
	Seq     uint64
	Patches []Patch
}

// FromVDOM converts vdom patches to wire form.
func FromVDOM[EVENT, MSG any](patches []vdom.Patch[EVENT, MSG]) []Patch {
	if len(patches) == 0 {
		return nil
	}

	out := make([]Patch, len(patches))
	for i, p := range patches {
		out[i] = Patch{
			Op:        p.Op,
			HID:       p.HID,
			Key:       p.Key,
			Namespace: p.Namespace,
			Value:     p.Value,
			ParentID:  p.ParentID,
			Index:     p.Index,
			Node:      NodeToWire(p.Node),
		}
	}
	return out
}

// EncodePatches encodes a patches frame payload.
func EncodePatches(pf *PatchesFrame) []byte {
	e := NewEncoder()
	EncodePatchesTo(e, pf)
	return e.Bytes()
}

// EncodePatchesTo encodes a patches frame payload using e.
func EncodePatchesTo(e *Encoder, pf *PatchesFrame) {
	e.WriteUvarint(pf.Seq)
	e.WriteUvarint(uint64(len(pf.Patches)))

	for i := range pf.Patches {
		encodePatch(e, &pf.Patches[i])
	}
}

func encodePatch(e *Encoder, p *Patch) {
	e.WriteByte(byte(p.Op))
	e.WriteString(p.HID)

	switch p.Op {
	case vdom.PatchSetText:
		e.WriteString(p.Value)

	case vdom.PatchSetAttr:
		e.WriteString(p.Key)
		e.WriteString(p.Namespace)
		e.WriteString(p.Value)

	case vdom.PatchRemoveAttr:
		e.WriteString(p.Key)
		e.WriteString(p.Namespace)

	case vdom.PatchSetProp:
		e.WriteString(p.Key)
		e.WriteString(p.Value)

	case vdom.PatchRemoveProp, vdom.PatchAddListener, vdom.PatchRemoveListener:
		e.WriteString(p.Key)

	case vdom.PatchInsertNode:
		e.WriteString(p.ParentID)
		e.WriteUvarint(uint64(p.Index))
		EncodeNode(e, p.Node)

	case vdom.PatchMoveNode:
		e.WriteString(p.ParentID)
		e.WriteUvarint(uint64(p.Index))

	case vdom.PatchReplaceNode:
		EncodeNode(e, p.Node)

	case vdom.PatchRemoveNode:
		// HID is sufficient
	}
}

// DecodePatches decodes a patches frame payload with DefaultLimits.
func DecodePatches(data []byte) (*PatchesFrame, error) {
	return DecodePatchesWithLimits(data, DefaultLimits())
}

// DecodePatchesWithLimits decodes a patches frame payload.
func DecodePatchesWithLimits(data []byte, limits Limits) (*PatchesFrame, error) {
	d := NewDecoderWithLimits(data, limits)
	pf, err := decodePatches(d)
	if err == nil {
		err = d.finish()
	}
	if err != nil {
		return nil, wrapDecodeErr(err)
	}
	return pf, nil
}

func decodePatches(d *Decoder) (*PatchesFrame, error) {
	seq, err := d.ReadUvarint()
	if err != nil {
		return nil, err
	}

	count, err := d.ReadCount()
	if err != nil {
		return nil, err
	}

	pf := &PatchesFrame{Seq: seq}
	if count > 0 {
		pf.Patches = make([]Patch, count)
	}
	for i := range pf.Patches {
		if err := decodePatch(d, &pf.Patches[i]); err != nil {
			return nil, err
		}
	}
	return pf, nil
}

func decodePatch(d *Decoder, p *Patch) error {
	op, err := d.ReadByte()
	if err != nil {
		return err
	}
	p.Op = vdom.PatchOp(op)

	if p.HID, err = d.ReadString(); err != nil {
		return err
	}

	switch p.Op {
	case vdom.PatchSetText:
		p.Value, err = d.ReadString()

	case vdom.PatchSetAttr:
		if p.Key, err = d.ReadString(); err != nil {
			return err
		}
		if p.Namespace, err = d.ReadString(); err != nil {
			return err
		}
		p.Value, err = d.ReadString()

	case vdom.PatchRemoveAttr:
		if p.Key, err = d.ReadString(); err != nil {
			return err
		}
		p.Namespace, err = d.ReadString()

	case vdom.PatchSetProp:
		if p.Key, err = d.ReadString(); err != nil {
			return err
		}
		p.Value, err = d.ReadString()

	case vdom.PatchRemoveProp, vdom.PatchAddListener, vdom.PatchRemoveListener:
		p.Key, err = d.ReadString()

	case vdom.PatchInsertNode:
		if p.ParentID, err = d.ReadString(); err != nil {
			return err
		}
		if p.Index, err = readIndex(d); err != nil {
			return err
		}
		p.Node, err = DecodeNode(d)

	case vdom.PatchMoveNode:
		if p.ParentID, err = d.ReadString(); err != nil {
			return err
		}
		p.Index, err = readIndex(d)

	case vdom.PatchReplaceNode:
		p.Node, err = DecodeNode(d)

	case vdom.PatchRemoveNode:
		// HID is sufficient

	default:
		// The payload layout of an unknown op is unknown, so the rest of
		// the frame cannot be read.
		return ErrUnknownPatchOp
	}

	return err
}

func readIndex(d *Decoder) (int, error) {
	v, err := d.ReadUvarint()
	if err != nil {
		return 0, err
	}
	if v > uint64(d.limits.MaxCollection) {
		return 0, ErrCollectionTooLarge
	}
	return int(v), nil
}
