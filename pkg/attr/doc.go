// Package attr provides the attribute model for virtual DOM nodes.
//
// An Attribute pairs a name and an optional XML namespace with an
// AttribValue, a closed sum type with exactly three variants:
//
//   - Static: a plain value that belongs in markup (class="card").
//   - FuncCall: a value that can only be applied imperatively, such as the
//     value, checked or innerHTML DOM properties.
//   - Event: a callback turning an occurring EVENT into an application MSG.
//
// Every node holds a homogeneous []Attribute regardless of the variants
// involved. The patch engine branches on IsValue, IsFuncCall and IsEvent to
// decide between setting an attribute, assigning a property and binding a
// listener; the markup serializer uses PrettyString, which renders static
// values only.
//
// # Composition
//
// A parent component embeds a child whose types differ from its own with
// two combinators:
//
//	// Lift the child's messages into the parent's message type.
//	lifted := attr.MapCallback(childAttr, callback.New(func(m ChildMsg) ParentMsg {
//	    return ParentMsg{Child: m}
//	}))
//
//	// Adapt the parent's raw event type to what the child expects.
//	adapted := attr.Reform(lifted, func(e *dom.Event) ChildEvent {
//	    return ChildEvent{Value: e.Value}
//	})
//
// Both return a new Attribute and leave the name, namespace and any static
// or function-call payload untouched. They are package-level functions
// because Go methods cannot introduce type parameters.
//
// No operation in this package panics or returns an error. Accessors that
// do not apply to a variant report ok == false.
package attr
