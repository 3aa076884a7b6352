// Package vdom provides the virtual DOM tree built on top of package attr.
//
// A Node holds a homogeneous []Attr regardless of whether each attribute
// carries a static value, a DOM property set through a function call, or an
// event callback. The tree is generic over the raw event type delivered by
// the client and the message type produced by callbacks.
//
// # Element API
//
// Elements are created through an HTML builder, which fixes the event and
// message types once so that attribute factories need no type arguments:
//
//	var h vdom.HTML[vdom.Event, Msg]
//
//	h.Div(h.Class("card"), h.ID("main"),
//	    h.H1("Title"),
//	    h.Button(h.OnClick(func(vdom.Event) Msg { return Increment{} }), "+"),
//	)
//
// # Composition
//
// MapMsg and Reform apply attr.MapCallback and attr.Reform to every
// attribute of a subtree, so a parent can embed a child component whose
// message or event type differs from its own:
//
//	child := counter.View(state)                   // *Node[Event, counter.Msg]
//	embedded := vdom.MapMsg(child, wrapCounterMsg) // *Node[Event, app.Msg]
//
// # Diffing
//
// Diff compares two trees and returns Patch operations. Each attribute is
// patched according to its classification: static values become SetAttr or
// RemoveAttr, function-call values become SetProp or RemoveProp, and
// callbacks become AddListener or RemoveListener. Listeners are rebound
// only when the callback identity changes.
//
// # Hydration
//
// AssignHIDs walks the tree and assigns hydration IDs to interactive
// elements (those with event attributes). CollectListeners and Dispatch
// route client events back to the callbacks by HID.
package vdom
