package attr

import (
	"fmt"
	"strings"

	"github.com/vango-dev/vattr/pkg/callback"
	"github.com/vango-dev/vattr/pkg/value"
)

// Attribute is a named AttribValue attached to a node.
//
// ATT is the name token; it carries no constraint here. Operations that need
// a textual name stringify it (string kinds directly, fmt.Stringer, or
// fmt.Sprint otherwise).
type Attribute[ATT, EVENT, MSG any] struct {
	Name      ATT
	Value     AttribValue[EVENT, MSG]
	Namespace Namespace
}

// FromValue creates a Static attribute. The name type is inferred, so
// callers only spell out the event and message types:
//
//	attr.FromValue[*dom.Event, Msg]("checked", value.Bool(true))
func FromValue[EVENT, MSG, ATT any](name ATT, v value.Value) Attribute[ATT, EVENT, MSG] {
	return Attribute[ATT, EVENT, MSG]{
		Name:  name,
		Value: Static[EVENT, MSG]{Value: v},
	}
}

// FromCallback creates an Event attribute.
func FromCallback[ATT, EVENT, MSG any](name ATT, cb callback.Callback[EVENT, MSG]) Attribute[ATT, EVENT, MSG] {
	return Attribute[ATT, EVENT, MSG]{
		Name:  name,
		Value: Event[EVENT, MSG]{Callback: cb},
	}
}

// WithNamespace returns a copy of a qualified by ns. A namespace without a
// prefix is absent, so it leaves a unqualified.
func (a Attribute[ATT, EVENT, MSG]) WithNamespace(ns Namespace) Attribute[ATT, EVENT, MSG] {
	if ns.IsZero() {
		ns = Namespace{}
	}
	a.Namespace = ns
	return a
}

// Kind returns the variant of the attribute's value.
func (a Attribute[ATT, EVENT, MSG]) Kind() Kind {
	if a.Value == nil {
		return KindNone
	}
	return a.Value.Kind()
}

func (a Attribute[ATT, EVENT, MSG]) IsValue() bool {
	return a.Value != nil && a.Value.IsValue()
}

func (a Attribute[ATT, EVENT, MSG]) IsEvent() bool {
	return a.Value != nil && a.Value.IsEvent()
}

func (a Attribute[ATT, EVENT, MSG]) IsFuncCall() bool {
	return a.Value != nil && a.Value.IsFuncCall()
}

// GetValue returns the value of a Static or FuncCall attribute.
func (a Attribute[ATT, EVENT, MSG]) GetValue() (value.Value, bool) {
	if a.Value == nil {
		return value.Value{}, false
	}
	return a.Value.GetValue()
}

// GetCallback returns the callback of an Event attribute.
func (a Attribute[ATT, EVENT, MSG]) GetCallback() (callback.Callback[EVENT, MSG], bool) {
	if a.Value == nil {
		return callback.Callback[EVENT, MSG]{}, false
	}
	return a.Value.GetCallback()
}

// TakeCallback consumes a and returns its callback if it is an Event
// attribute. a should not be used afterwards.
func (a Attribute[ATT, EVENT, MSG]) TakeCallback() (callback.Callback[EVENT, MSG], bool) {
	return TakeCallback(a.Value)
}

// NameString returns the attribute name as text.
func (a Attribute[ATT, EVENT, MSG]) NameString() string {
	return nameString(a.Name)
}

// QualifiedName returns the name with its namespace prefix, if any.
func (a Attribute[ATT, EVENT, MSG]) QualifiedName() string {
	return a.Namespace.Qualify(a.NameString())
}

// PrettyString renders a Static attribute as name="value", or
// prefix:name="value" when namespaced. FuncCall and Event attributes render
// as the empty string; they never appear in markup.
func (a Attribute[ATT, EVENT, MSG]) PrettyString() string {
	if !a.IsValue() {
		return ""
	}
	var b strings.Builder
	b.WriteString(a.QualifiedName())
	b.WriteString(`="`)
	b.WriteString(a.Value.String())
	b.WriteByte('"')
	return b.String()
}

// MapCallback lifts a to a new message type; see MapValue.
func MapCallback[ATT, EVENT, MSG, MSG2 any](a Attribute[ATT, EVENT, MSG], cb callback.Callback[MSG, MSG2]) Attribute[ATT, EVENT, MSG2] {
	return Attribute[ATT, EVENT, MSG2]{
		Name:      a.Name,
		Value:     MapValue(a.Value, cb),
		Namespace: a.Namespace,
	}
}

// Reform adapts a to a new event type; see ReformValue.
func Reform[ATT, EVENT, MSG, EVENT2 any](a Attribute[ATT, EVENT, MSG], f func(EVENT2) EVENT) Attribute[ATT, EVENT2, MSG] {
	return Attribute[ATT, EVENT2, MSG]{
		Name:      a.Name,
		Value:     ReformValue(a.Value, f),
		Namespace: a.Namespace,
	}
}

func nameString(name any) string {
	switch n := name.(type) {
	case string:
		return n
	case fmt.Stringer:
		return n.String()
	default:
		return fmt.Sprint(name)
	}
}
