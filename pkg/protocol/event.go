package protocol

import (
	"github.com/vango-dev/vattr/pkg/vdom"
)

// EventFrame is a client event with its sequence number.
type EventFrame struct {
	Seq   uint64
	Event vdom.Event
}

// EncodeEvent encodes an event frame payload.
func EncodeEvent(ef *EventFrame) []byte {
	e := NewEncoder()
	EncodeEventTo(e, ef)
	return e.Bytes()
}

// EncodeEventTo encodes an event frame payload using e.
//
// Layout: seq, type, hid, value, checked, key, x, y.
func EncodeEventTo(e *Encoder, ef *EventFrame) {
	ev := &ef.Event
	e.WriteUvarint(ef.Seq)
	e.WriteString(ev.Type)
	e.WriteString(ev.HID)
	e.WriteString(ev.Value)
	e.WriteBool(ev.Checked)
	e.WriteString(ev.Key)
	e.WriteSvarint(int64(ev.X))
	e.WriteSvarint(int64(ev.Y))
}

// DecodeEvent decodes an event frame payload with DefaultLimits.
func DecodeEvent(data []byte) (*EventFrame, error) {
	return DecodeEventWithLimits(data, DefaultLimits())
}

// DecodeEventWithLimits decodes an event frame payload.
func DecodeEventWithLimits(data []byte, limits Limits) (*EventFrame, error) {
	d := NewDecoderWithLimits(data, limits)
	ef, err := decodeEvent(d)
	if err == nil {
		err = d.finish()
	}
	if err != nil {
		return nil, wrapDecodeErr(err)
	}
	return ef, nil
}

func decodeEvent(d *Decoder) (*EventFrame, error) {
	ef := &EventFrame{}
	ev := &ef.Event
	var err error

	if ef.Seq, err = d.ReadUvarint(); err != nil {
		return nil, err
	}
	if ev.Type, err = d.ReadString(); err != nil {
		return nil, err
	}
	if ev.HID, err = d.ReadString(); err != nil {
		return nil, err
	}
	if ev.Value, err = d.ReadString(); err != nil {
		return nil, err
	}
	if ev.Checked, err = d.ReadBool(); err != nil {
		return nil, err
	}
	if ev.Key, err = d.ReadString(); err != nil {
		return nil, err
	}
	x, err := d.ReadSvarint()
	if err != nil {
		return nil, err
	}
	y, err := d.ReadSvarint()
	if err != nil {
		return nil, err
	}
	ev.X, ev.Y = int(x), int(y)

	return ef, nil
}
