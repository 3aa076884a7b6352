package attr

import (
	"github.com/vango-dev/vattr/pkg/callback"
	"github.com/vango-dev/vattr/pkg/value"
)

// Kind is the variant discriminator of an AttribValue.
type Kind uint8

const (
	KindNone     Kind = iota // Zero Attribute (no value)
	KindValue                // Static markup value
	KindFuncCall             // Imperatively applied property
	KindEvent                // Event callback
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindValue:
		return "Value"
	case KindFuncCall:
		return "FuncCall"
	case KindEvent:
		return "Event"
	default:
		return "Unknown"
	}
}

// AttribValue is the payload of an Attribute. The only implementations are
// Static, FuncCall and Event.
type AttribValue[EVENT, MSG any] interface {
	// Kind returns the variant tag.
	Kind() Kind

	IsValue() bool
	IsFuncCall() bool
	IsEvent() bool

	// GetValue returns the payload of Static and FuncCall.
	GetValue() (value.Value, bool)

	// GetCallback returns the payload of Event.
	GetCallback() (callback.Callback[EVENT, MSG], bool)

	// String renders Static as its value text; FuncCall and Event render as
	// the empty string.
	String() string

	sealed()
}

// Static is a value rendered into markup.
type Static[EVENT, MSG any] struct {
	Value value.Value
}

// FuncCall is a value applied through a DOM property rather than markup.
type FuncCall[EVENT, MSG any] struct {
	Value value.Value
}

// Event is a callback bound as an event listener.
type Event[EVENT, MSG any] struct {
	Callback callback.Callback[EVENT, MSG]
}

// NewValue returns v as a Static AttribValue.
func NewValue[EVENT, MSG any](v value.Value) AttribValue[EVENT, MSG] {
	return Static[EVENT, MSG]{Value: v}
}

// NewFuncCall returns v as a FuncCall AttribValue.
func NewFuncCall[EVENT, MSG any](v value.Value) AttribValue[EVENT, MSG] {
	return FuncCall[EVENT, MSG]{Value: v}
}

// NewCallback returns cb as an Event AttribValue.
func NewCallback[EVENT, MSG any](cb callback.Callback[EVENT, MSG]) AttribValue[EVENT, MSG] {
	return Event[EVENT, MSG]{Callback: cb}
}

func (Static[EVENT, MSG]) Kind() Kind       { return KindValue }
func (Static[EVENT, MSG]) IsValue() bool    { return true }
func (Static[EVENT, MSG]) IsFuncCall() bool { return false }
func (Static[EVENT, MSG]) IsEvent() bool    { return false }
func (s Static[EVENT, MSG]) GetValue() (value.Value, bool) {
	return s.Value, true
}
func (Static[EVENT, MSG]) GetCallback() (callback.Callback[EVENT, MSG], bool) {
	return callback.Callback[EVENT, MSG]{}, false
}
func (s Static[EVENT, MSG]) String() string { return s.Value.String() }
func (Static[EVENT, MSG]) sealed()          {}

func (FuncCall[EVENT, MSG]) Kind() Kind       { return KindFuncCall }
func (FuncCall[EVENT, MSG]) IsValue() bool    { return false }
func (FuncCall[EVENT, MSG]) IsFuncCall() bool { return true }
func (FuncCall[EVENT, MSG]) IsEvent() bool    { return false }
func (f FuncCall[EVENT, MSG]) GetValue() (value.Value, bool) {
	return f.Value, true
}
func (FuncCall[EVENT, MSG]) GetCallback() (callback.Callback[EVENT, MSG], bool) {
	return callback.Callback[EVENT, MSG]{}, false
}
func (FuncCall[EVENT, MSG]) String() string { return "" }
func (FuncCall[EVENT, MSG]) sealed()        {}

func (Event[EVENT, MSG]) Kind() Kind       { return KindEvent }
func (Event[EVENT, MSG]) IsValue() bool    { return false }
func (Event[EVENT, MSG]) IsFuncCall() bool { return false }
func (Event[EVENT, MSG]) IsEvent() bool    { return true }
func (Event[EVENT, MSG]) GetValue() (value.Value, bool) {
	return value.Value{}, false
}
func (e Event[EVENT, MSG]) GetCallback() (callback.Callback[EVENT, MSG], bool) {
	return e.Callback, true
}
func (Event[EVENT, MSG]) String() string { return "" }
func (Event[EVENT, MSG]) sealed()        {}

// TakeCallback consumes v and returns its callback if v is an Event.
// Static and FuncCall report ok == false.
func TakeCallback[EVENT, MSG any](v AttribValue[EVENT, MSG]) (cb callback.Callback[EVENT, MSG], ok bool) {
	if e, isEvent := v.(Event[EVENT, MSG]); isEvent {
		return e.Callback, true
	}
	return cb, false
}

// MapValue lifts v to a new message type. An Event's callback is followed by
// cb; Static and FuncCall keep their payload and change type only.
// A nil v stays nil.
func MapValue[EVENT, MSG, MSG2 any](v AttribValue[EVENT, MSG], cb callback.Callback[MSG, MSG2]) AttribValue[EVENT, MSG2] {
	switch v := v.(type) {
	case Static[EVENT, MSG]:
		return Static[EVENT, MSG2]{Value: v.Value}
	case FuncCall[EVENT, MSG]:
		return FuncCall[EVENT, MSG2]{Value: v.Value}
	case Event[EVENT, MSG]:
		return Event[EVENT, MSG2]{Callback: callback.Map(v.Callback, cb)}
	default:
		return nil
	}
}

// ReformValue adapts v to a new event type. An Event's callback is preceded
// by f; Static and FuncCall keep their payload and change type only.
// A nil v stays nil.
func ReformValue[EVENT, MSG, EVENT2 any](v AttribValue[EVENT, MSG], f func(EVENT2) EVENT) AttribValue[EVENT2, MSG] {
	switch v := v.(type) {
	case Static[EVENT, MSG]:
		return Static[EVENT2, MSG]{Value: v.Value}
	case FuncCall[EVENT, MSG]:
		return FuncCall[EVENT2, MSG]{Value: v.Value}
	case Event[EVENT, MSG]:
		return Event[EVENT2, MSG]{Callback: callback.Reform(v.Callback, f)}
	default:
		return nil
	}
}
