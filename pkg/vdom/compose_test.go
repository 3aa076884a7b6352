package vdom

import (
	"testing"

	"github.com/vango-dev/vattr/pkg/attr"
)

type parentMsg struct {
	child testMsg
}

func counterView() *Node[Event, testMsg] {
	return h.Div(h.Class("counter"), h.Key("c1"),
		h.Button(h.OnClick(func(Event) testMsg { return "inc" }), "+"),
		h.Input(h.PropValue("0"), h.OnInput(func(e Event) testMsg { return testMsg(e.Value) })),
	)
}

func TestMapMsgPreservesStructure(t *testing.T) {
	child := counterView()
	child.HID = "h1"

	mapped := MapMsgFunc(child, func(m testMsg) parentMsg { return parentMsg{child: m} })

	if mapped.Tag != "div" || mapped.Key != "c1" || mapped.HID != "h1" {
		t.Errorf("mapped = %+v, want div key c1 hid h1", mapped)
	}
	if len(mapped.Children) != 2 {
		t.Fatalf("len(Children) = %d, want 2", len(mapped.Children))
	}
	if got := mapped.PrettyString(); got != child.PrettyString() {
		t.Errorf("PrettyString() = %q, want %q", got, child.PrettyString())
	}

	input := mapped.Children[1]
	kinds := []attr.Kind{attr.KindFuncCall, attr.KindEvent}
	for i, want := range kinds {
		if got := input.Attrs[i].Kind(); got != want {
			t.Errorf("Attrs[%d].Kind() = %v, want %v", i, got, want)
		}
	}
	if v, _ := input.Attrs[0].GetValue(); v.String() != "0" {
		t.Errorf("prop value = %v, want 0", v)
	}
}

func TestMapMsgDispatch(t *testing.T) {
	child := counterView()
	AssignHIDs(child, NewHIDGenerator())

	mapped := MapMsgFunc(child, func(m testMsg) parentMsg { return parentMsg{child: m} })

	msg, ok := Dispatch(mapped, "h2", "input", Event{Value: "42"})
	if !ok {
		t.Fatal("Dispatch(h2, input) not found")
	}
	if msg != (parentMsg{child: "42"}) {
		t.Errorf("msg = %+v, want {42}", msg)
	}

	// The original tree still yields child messages.
	if got, _ := Dispatch(child, "h1", "click", Event{}); got != "inc" {
		t.Errorf("child msg = %q, want inc", got)
	}
}

func TestReformConvertsEvents(t *testing.T) {
	child := counterView()
	AssignHIDs(child, NewHIDGenerator())

	// The host delivers raw strings; the component expects Event.
	reformed := Reform(child, func(raw string) Event { return Event{Value: raw} })

	msg, ok := Dispatch(reformed, "h2", "input", "hello")
	if !ok || msg != "hello" {
		t.Errorf("Dispatch = %q, %v, want hello, true", msg, ok)
	}
}

func TestMapMsgDoesNotAliasInput(t *testing.T) {
	child := counterView()
	mapped := MapMsgFunc(child, func(m testMsg) testMsg { return m + "!" })

	mapped.Children[0].Tag = "a"
	mapped.Attrs[0] = attr.Attribute[string, Event, testMsg]{}

	if child.Children[0].Tag != "button" {
		t.Error("child tag changed through mapped copy")
	}
	if child.Attrs[0].Name != "class" {
		t.Error("child attrs changed through mapped copy")
	}
}

func TestMapMsgNil(t *testing.T) {
	var node *Node[Event, testMsg]
	if got := MapMsgFunc(node, func(m testMsg) int { return len(m) }); got != nil {
		t.Errorf("MapMsgFunc(nil) = %v, want nil", got)
	}
	if got := Reform(node, func(s string) Event { return Event{} }); got != nil {
		t.Errorf("Reform(nil) = %v, want nil", got)
	}
}

func TestMapMsgSkipsNilChildren(t *testing.T) {
	node := &Node[Event, testMsg]{
		Kind:     KindElement,
		Tag:      "div",
		Children: []*Node[Event, testMsg]{nil, h.Text("x"), nil},
	}

	mapped := MapMsgFunc(node, func(m testMsg) testMsg { return m })
	if len(mapped.Children) != 1 || mapped.Children[0].Text != "x" {
		t.Errorf("Children = %+v, want just the text node", mapped.Children)
	}
}
