package protocol

import (
	"errors"
	"io"
)

// FrameHeaderSize is the size of the frame header in bytes.
const FrameHeaderSize = 5

// FrameType identifies the type of frame.
type FrameType uint8

const (
	FrameEvent   FrameType = 0x01 // Client → Server event
	FramePatches FrameType = 0x02 // Server → Client patches
	FrameError   FrameType = 0x05 // Error report, either direction
)

// String returns the string representation of the frame type.
func (ft FrameType) String() string {
	switch ft {
	case FrameEvent:
		return "Event"
	case FramePatches:
		return "Patches"
	case FrameError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Frame errors.
var (
	ErrFrameTooLarge    = errors.New("protocol: frame payload too large")
	ErrInvalidFrameType = errors.New("protocol: invalid frame type")
)

// Frame is a typed, length-prefixed payload.
//
// Wire format (5 bytes header + variable payload):
//
//	┌─────────────┬──────────────────────────────┐
//	│ Frame Type  │ Payload Length               │
//	│ (1 byte)    │ (4 bytes, big-endian)        │
//	└─────────────┴──────────────────────────────┘
//	│  Payload (variable length)                 │
//	└────────────────────────────────────────────┘
type Frame struct {
	Type    FrameType
	Payload []byte
}

// NewFrame creates a frame with the given type and payload.
func NewFrame(ft FrameType, payload []byte) *Frame {
	return &Frame{Type: ft, Payload: payload}
}

// Encode encodes the frame, header included.
func (f *Frame) Encode() []byte {
	e := &Encoder{buf: make([]byte, 0, FrameHeaderSize+len(f.Payload))}
	e.WriteByte(byte(f.Type))
	e.WriteUint32(uint32(len(f.Payload)))
	e.buf = append(e.buf, f.Payload...)
	return e.Bytes()
}

// DecodeFrame decodes a single frame occupying all of data.
func DecodeFrame(data []byte, limits Limits) (*Frame, error) {
	limits = limits.WithDefaults()
	d := NewDecoderWithLimits(data, limits)

	ft, err := d.ReadByte()
	if err != nil {
		return nil, wrapDecodeErr(err)
	}
	switch FrameType(ft) {
	case FrameEvent, FramePatches, FrameError:
	default:
		return nil, wrapDecodeErr(ErrInvalidFrameType)
	}

	length, err := d.ReadUint32()
	if err != nil {
		return nil, wrapDecodeErr(err)
	}
	if int64(length) > int64(limits.MaxFrameSize) {
		return nil, wrapDecodeErr(ErrFrameTooLarge)
	}
	if int(length) != d.Remaining() {
		if int(length) > d.Remaining() {
			return nil, wrapDecodeErr(io.ErrUnexpectedEOF)
		}
		return nil, wrapDecodeErr(ErrTrailingBytes)
	}

	payload := make([]byte, length)
	copy(payload, data[FrameHeaderSize:])
	return &Frame{Type: FrameType(ft), Payload: payload}, nil
}
