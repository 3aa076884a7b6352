// Package demo is a small todo application used by the vattr command.
//
// The page is composed from child views with their own event and message
// types: each row emits ItemMsg and is lifted into Msg with vdom.MapMsgFunc,
// and the draft input reads plain strings and is adapted to vdom.Event with
// vdom.Reform.
package demo
