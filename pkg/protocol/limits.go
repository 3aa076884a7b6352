package protocol

import (
	stderrors "errors"
	"io"

	"github.com/vango-dev/vattr/internal/errors"
)

// Default decoding limits.
const (
	// DefaultMaxFrameSize bounds a frame payload and any single string in it.
	DefaultMaxFrameSize = 1 << 20

	// DefaultMaxNodeDepth bounds the nesting of node trees in patches.
	DefaultMaxNodeDepth = 256

	// DefaultMaxCollection bounds the number of items in any list or map.
	DefaultMaxCollection = 100_000
)

// Limits bounds what a Decoder will accept. Zero fields take the defaults.
type Limits struct {
	MaxFrameSize  int
	MaxNodeDepth  int
	MaxCollection int
}

// DefaultLimits returns the default decoding limits.
func DefaultLimits() Limits {
	return Limits{
		MaxFrameSize:  DefaultMaxFrameSize,
		MaxNodeDepth:  DefaultMaxNodeDepth,
		MaxCollection: DefaultMaxCollection,
	}
}

// WithDefaults returns l with zero fields replaced by the defaults.
func (l Limits) WithDefaults() Limits {
	if l.MaxFrameSize <= 0 {
		l.MaxFrameSize = DefaultMaxFrameSize
	}
	if l.MaxNodeDepth <= 0 {
		l.MaxNodeDepth = DefaultMaxNodeDepth
	}
	if l.MaxCollection <= 0 {
		l.MaxCollection = DefaultMaxCollection
	}
	return l
}

// wrapDecodeErr attaches an error code to a decoding failure:
// E041 for exceeded limits, E042 for unknown ops and E040 otherwise.
func wrapDecodeErr(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case stderrors.Is(err, ErrAllocationTooLarge),
		stderrors.Is(err, ErrCollectionTooLarge),
		stderrors.Is(err, ErrMaxDepthExceeded),
		stderrors.Is(err, ErrFrameTooLarge):
		return errors.New("E041").Wrap(err)
	case stderrors.Is(err, ErrUnknownPatchOp):
		return errors.New("E042").Wrap(err)
	case stderrors.Is(err, io.ErrUnexpectedEOF):
		return errors.New("E040").WithDetail("payload truncated").Wrap(err)
	default:
		return errors.New("E040").Wrap(err)
	}
}
