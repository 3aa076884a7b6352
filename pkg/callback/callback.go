// Package callback provides Callback, a shared handle to a function that
// turns an occurring event into an application message.
//
// Copies of a Callback share the same underlying closure. Two handles are
// equal only when they refer to the same allocation; closure bodies are
// never compared. The closure is released once no handle references it.
package callback

import "sync/atomic"

var nextID atomic.Uint64

// box is the single allocation shared by every copy of a handle.
type box[EVENT, MSG any] struct {
	id uint64
	fn func(EVENT) MSG
}

// Callback is a shared handle to a func(EVENT) MSG.
// The zero Callback is valid: Emit returns the zero MSG.
type Callback[EVENT, MSG any] struct {
	b *box[EVENT, MSG]
}

// New wraps fn in a new shared handle.
// A nil fn produces the zero Callback.
func New[EVENT, MSG any](fn func(EVENT) MSG) Callback[EVENT, MSG] {
	if fn == nil {
		return Callback[EVENT, MSG]{}
	}
	return Callback[EVENT, MSG]{b: &box[EVENT, MSG]{id: nextID.Add(1), fn: fn}}
}

// Emit invokes the callback with e.
func (c Callback[EVENT, MSG]) Emit(e EVENT) MSG {
	if c.b == nil {
		var zero MSG
		return zero
	}
	return c.b.fn(e)
}

// IsZero reports whether c wraps no function.
func (c Callback[EVENT, MSG]) IsZero() bool {
	return c.b == nil
}

// Equal reports whether c and other share the same allocation.
func (c Callback[EVENT, MSG]) Equal(other Callback[EVENT, MSG]) bool {
	return c.b == other.b
}

// ID returns an identifier unique to the underlying allocation, or 0 for the
// zero Callback.
func (c Callback[EVENT, MSG]) ID() uint64 {
	if c.b == nil {
		return 0
	}
	return c.b.id
}

// Map chains g after c: the result maps e to g(c(e)).
// If either c or g is the zero Callback, so is the result; check IsZero to
// catch a composition that lost its function.
func Map[EVENT, MSG, MSG2 any](c Callback[EVENT, MSG], g Callback[MSG, MSG2]) Callback[EVENT, MSG2] {
	if c.IsZero() || g.IsZero() {
		return Callback[EVENT, MSG2]{}
	}
	return New(func(e EVENT) MSG2 {
		return g.Emit(c.Emit(e))
	})
}

// MapFunc is Map for a plain function.
func MapFunc[EVENT, MSG, MSG2 any](c Callback[EVENT, MSG], g func(MSG) MSG2) Callback[EVENT, MSG2] {
	return Map(c, New(g))
}

// Reform chains f before c: the result maps e2 to c(f(e2)).
// If c is the zero Callback or f is nil, the result is the zero Callback.
func Reform[EVENT, MSG, EVENT2 any](c Callback[EVENT, MSG], f func(EVENT2) EVENT) Callback[EVENT2, MSG] {
	if c.IsZero() || f == nil {
		return Callback[EVENT2, MSG]{}
	}
	return New(func(e2 EVENT2) MSG {
		return c.Emit(f(e2))
	})
}
