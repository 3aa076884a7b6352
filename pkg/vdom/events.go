package vdom

import (
	"github.com/vango-dev/vattr/pkg/attr"
	"github.com/vango-dev/vattr/pkg/callback"
)

// Event is the raw event delivered by the client for an HID.
// Fields not relevant to the event type are left zero.
type Event struct {
	Type    string // "click", "input", ...
	HID     string // Target element
	Value   string // Input value for input/change/submit
	Checked bool   // Checkbox state for change
	Key     string // Key for keyboard events
	X, Y    int    // Pointer position for mouse events
}

// ListenerName returns the attribute name for an event type
// (e.g., "click" becomes "onclick").
func ListenerName(eventType string) string {
	return "on" + eventType
}

// Listen binds an existing callback to the named event type.
func (HTML[EVENT, MSG]) Listen(eventType string, cb callback.Callback[EVENT, MSG]) Attr[EVENT, MSG] {
	return attr.FromCallback(ListenerName(eventType), cb)
}

// On binds fn to the named event type.
func (h HTML[EVENT, MSG]) On(eventType string, fn func(EVENT) MSG) Attr[EVENT, MSG] {
	return h.Listen(eventType, callback.New(fn))
}

// Mouse events

// OnClick handles click events.
func (h HTML[EVENT, MSG]) OnClick(fn func(EVENT) MSG) Attr[EVENT, MSG] { return h.On("click", fn) }

// OnDblClick handles double-click events.
func (h HTML[EVENT, MSG]) OnDblClick(fn func(EVENT) MSG) Attr[EVENT, MSG] {
	return h.On("dblclick", fn)
}

// OnMouseDown handles mousedown events.
func (h HTML[EVENT, MSG]) OnMouseDown(fn func(EVENT) MSG) Attr[EVENT, MSG] {
	return h.On("mousedown", fn)
}

// OnMouseUp handles mouseup events.
func (h HTML[EVENT, MSG]) OnMouseUp(fn func(EVENT) MSG) Attr[EVENT, MSG] { return h.On("mouseup", fn) }

// OnMouseEnter handles mouseenter events.
func (h HTML[EVENT, MSG]) OnMouseEnter(fn func(EVENT) MSG) Attr[EVENT, MSG] {
	return h.On("mouseenter", fn)
}

// OnMouseLeave handles mouseleave events.
func (h HTML[EVENT, MSG]) OnMouseLeave(fn func(EVENT) MSG) Attr[EVENT, MSG] {
	return h.On("mouseleave", fn)
}

// Keyboard events

// OnKeyDown handles keydown events.
func (h HTML[EVENT, MSG]) OnKeyDown(fn func(EVENT) MSG) Attr[EVENT, MSG] { return h.On("keydown", fn) }

// OnKeyUp handles keyup events.
func (h HTML[EVENT, MSG]) OnKeyUp(fn func(EVENT) MSG) Attr[EVENT, MSG] { return h.On("keyup", fn) }

// Form events

// OnInput handles input events (fired when value changes).
func (h HTML[EVENT, MSG]) OnInput(fn func(EVENT) MSG) Attr[EVENT, MSG] { return h.On("input", fn) }

// OnChange handles change events (fired when value is committed).
func (h HTML[EVENT, MSG]) OnChange(fn func(EVENT) MSG) Attr[EVENT, MSG] { return h.On("change", fn) }

// OnSubmit handles form submit events.
func (h HTML[EVENT, MSG]) OnSubmit(fn func(EVENT) MSG) Attr[EVENT, MSG] { return h.On("submit", fn) }

// OnFocus handles focus events.
func (h HTML[EVENT, MSG]) OnFocus(fn func(EVENT) MSG) Attr[EVENT, MSG] { return h.On("focus", fn) }

// OnBlur handles blur events.
func (h HTML[EVENT, MSG]) OnBlur(fn func(EVENT) MSG) Attr[EVENT, MSG] { return h.On("blur", fn) }

// Scroll events

// OnScroll handles scroll events.
func (h HTML[EVENT, MSG]) OnScroll(fn func(EVENT) MSG) Attr[EVENT, MSG] { return h.On("scroll", fn) }

// Load events

// OnLoad handles load events.
func (h HTML[EVENT, MSG]) OnLoad(fn func(EVENT) MSG) Attr[EVENT, MSG] { return h.On("load", fn) }

// OnError handles error events.
func (h HTML[EVENT, MSG]) OnError(fn func(EVENT) MSG) Attr[EVENT, MSG] { return h.On("error", fn) }
