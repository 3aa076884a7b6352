package vdom

import (
	"testing"

	"github.com/vango-dev/vattr/pkg/attr"
	"github.com/vango-dev/vattr/pkg/callback"
)

// assignTestHIDs gives every element in the tree a HID.
func assignTestHIDs(node *Node[Event, testMsg]) {
	AssignAllHIDs(node, NewHIDGenerator())
}

func TestDiffBothNil(t *testing.T) {
	patches := Diff[Event, testMsg](nil, nil)
	if len(patches) != 0 {
		t.Errorf("Expected 0 patches, got %d", len(patches))
	}
}

func TestDiffNodeRemoved(t *testing.T) {
	prev := h.Div()
	prev.HID = "h1"

	patches := Diff(prev, nil)

	if len(patches) != 1 {
		t.Fatalf("Expected 1 patch, got %d", len(patches))
	}
	if patches[0].Op != PatchRemoveNode {
		t.Errorf("Op = %v, want RemoveNode", patches[0].Op)
	}
	if patches[0].HID != "h1" {
		t.Errorf("HID = %v, want h1", patches[0].HID)
	}
}

func TestDiffTextChange(t *testing.T) {
	prev := h.P("Hello")
	prev.HID = "h1"
	next := h.P("World")

	patches := Diff(prev, next)

	if len(patches) != 1 {
		t.Fatalf("Expected 1 patch, got %d", len(patches))
	}
	p := patches[0]
	if p.Op != PatchSetText || p.HID != "h1" || p.Value != "World" {
		t.Errorf("patch = %+v, want SetText h1 World", p)
	}
}

func TestDiffTextUnchanged(t *testing.T) {
	prev := h.P("Hello")
	prev.HID = "h1"

	if patches := Diff(prev, h.P("Hello")); len(patches) != 0 {
		t.Errorf("Expected 0 patches for unchanged text, got %d", len(patches))
	}
}

func TestDiffKindChange(t *testing.T) {
	prev := h.Div()
	prev.HID = "h1"
	next := h.Text("now text")

	patches := Diff(prev, next)

	if len(patches) != 1 || patches[0].Op != PatchReplaceNode {
		t.Fatalf("patches = %+v, want one ReplaceNode", patches)
	}
	if patches[0].Node != next {
		t.Error("ReplaceNode should carry the next node")
	}
}

func TestDiffTagChange(t *testing.T) {
	prev := h.Div()
	prev.HID = "h1"

	patches := Diff(prev, h.Span())

	if len(patches) != 1 || patches[0].Op != PatchReplaceNode {
		t.Fatalf("patches = %+v, want one ReplaceNode", patches)
	}
}

func TestDiffStaticAttributes(t *testing.T) {
	tests := []struct {
		name   string
		prev   *Node[Event, testMsg]
		next   *Node[Event, testMsg]
		wantOp []PatchOp
		want   []string
	}{
		{
			name:   "added",
			prev:   h.Div(),
			next:   h.Div(h.ID("main")),
			wantOp: []PatchOp{PatchSetAttr},
			want:   []string{"id=main"},
		},
		{
			name:   "removed",
			prev:   h.Div(h.ID("main")),
			next:   h.Div(),
			wantOp: []PatchOp{PatchRemoveAttr},
			want:   []string{"id="},
		},
		{
			name:   "changed",
			prev:   h.Div(h.Class("a")),
			next:   h.Div(h.Class("b")),
			wantOp: []PatchOp{PatchSetAttr},
			want:   []string{"class=b"},
		},
		{
			name: "unchanged",
			prev: h.Div(h.Class("a"), h.Width(10)),
			next: h.Div(h.Class("a"), h.Width(10)),
		},
		{
			name:   "value kind change",
			prev:   h.Div(h.Attr("data-n", 1)),
			next:   h.Div(h.Attr("data-n", "1")),
			wantOp: []PatchOp{PatchSetAttr},
			want:   []string{"data-n=1"},
		},
		{
			name:   "last occurrence wins",
			prev:   h.Div(h.Class("a"), h.Class("b")),
			next:   h.Div(h.Class("b")),
			wantOp: nil,
		},
		{
			name:   "removed then added order",
			prev:   h.Div(h.ID("x")),
			next:   h.Div(h.Class("y")),
			wantOp: []PatchOp{PatchRemoveAttr, PatchSetAttr},
			want:   []string{"id=", "class=y"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prev.HID = "h1"
			patches := Diff(tt.prev, tt.next)

			if len(patches) != len(tt.wantOp) {
				t.Fatalf("got %d patches %+v, want %d", len(patches), patches, len(tt.wantOp))
			}
			for i, p := range patches {
				if p.Op != tt.wantOp[i] {
					t.Errorf("patches[%d].Op = %v, want %v", i, p.Op, tt.wantOp[i])
				}
				if got := p.Key + "=" + p.Value; got != tt.want[i] {
					t.Errorf("patches[%d] = %q, want %q", i, got, tt.want[i])
				}
				if p.HID != "h1" {
					t.Errorf("patches[%d].HID = %v, want h1", i, p.HID)
				}
			}
		})
	}
}

func TestDiffBooleanAttributes(t *testing.T) {
	tests := []struct {
		name   string
		prev   *Node[Event, testMsg]
		next   *Node[Event, testMsg]
		wantOp []PatchOp
	}{
		{"true to false", h.Button(h.Disabled(true)), h.Button(h.Disabled(false)), []PatchOp{PatchRemoveAttr}},
		{"false to true", h.Button(h.Disabled(false)), h.Button(h.Disabled(true)), []PatchOp{PatchSetAttr}},
		{"false unchanged", h.Button(h.Disabled(false)), h.Button(h.Disabled(false)), nil},
		{"true to truthy string", h.Button(h.Disabled(true)), h.Button(h.Attr("disabled", "disabled")), nil},
		{"added true", h.Button(), h.Button(h.Disabled(true)), []PatchOp{PatchSetAttr}},
		{"added false", h.Button(), h.Button(h.Disabled(false)), nil},
		{"removed true", h.Button(h.Disabled(true)), h.Button(), []PatchOp{PatchRemoveAttr}},
		{"removed false", h.Button(h.Disabled(false)), h.Button(), nil},
		{"false to prop", h.Input(h.Attr("checked", false)), h.Input(h.PropChecked(true)), []PatchOp{PatchSetProp}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prev.HID = "h1"
			patches := Diff(tt.prev, tt.next)

			if len(patches) != len(tt.wantOp) {
				t.Fatalf("got %d patches %+v, want %d", len(patches), patches, len(tt.wantOp))
			}
			for i, p := range patches {
				if p.Op != tt.wantOp[i] {
					t.Errorf("patches[%d].Op = %v, want %v", i, p.Op, tt.wantOp[i])
				}
				if p.Op == PatchSetAttr && p.Value != "" {
					t.Errorf("patches[%d].Value = %q, want empty", i, p.Value)
				}
			}

			if _, present := EffectiveAttrs(tt.next)["disabled"]; !present {
				for _, p := range patches {
					if p.Op == PatchSetAttr && p.Key == "disabled" {
						t.Errorf("SetAttr disabled emitted while EffectiveAttrs omits it")
					}
				}
			}
		})
	}
}

func TestDiffFuncCallBecomesProp(t *testing.T) {
	prev := h.Input(h.PropValue("a"))
	prev.HID = "h1"

	patches := Diff(prev, h.Input(h.PropValue("b")))

	if len(patches) != 1 {
		t.Fatalf("Expected 1 patch, got %d", len(patches))
	}
	if p := patches[0]; p.Op != PatchSetProp || p.Key != "value" || p.Value != "b" {
		t.Errorf("patch = %+v, want SetProp value=b", p)
	}

	patches = Diff(prev, h.Input())
	if len(patches) != 1 || patches[0].Op != PatchRemoveProp {
		t.Errorf("patches = %+v, want one RemoveProp", patches)
	}
}

func TestDiffReclassifiedAttribute(t *testing.T) {
	prev := h.Input(h.Attr("value", "a"))
	prev.HID = "h1"

	patches := Diff(prev, h.Input(h.PropValue("a")))

	if len(patches) != 2 {
		t.Fatalf("Expected 2 patches, got %d", len(patches))
	}
	if patches[0].Op != PatchRemoveAttr || patches[0].Key != "value" {
		t.Errorf("patches[0] = %+v, want RemoveAttr value", patches[0])
	}
	if patches[1].Op != PatchSetProp || patches[1].Key != "value" || patches[1].Value != "a" {
		t.Errorf("patches[1] = %+v, want SetProp value=a", patches[1])
	}
}

func TestDiffListenerIdentity(t *testing.T) {
	shared := callback.New(noop)

	t.Run("same callback", func(t *testing.T) {
		prev := h.Button(h.Listen("click", shared))
		prev.HID = "h1"
		if patches := Diff(prev, h.Button(h.Listen("click", shared))); len(patches) != 0 {
			t.Errorf("Expected 0 patches for shared callback, got %+v", patches)
		}
	})

	t.Run("new callback", func(t *testing.T) {
		prev := h.Button(h.Listen("click", shared))
		prev.HID = "h1"
		patches := Diff(prev, h.Button(h.OnClick(noop)))
		if len(patches) != 1 {
			t.Fatalf("Expected 1 patch, got %d", len(patches))
		}
		if p := patches[0]; p.Op != PatchAddListener || p.Key != "click" || p.HID != "h1" {
			t.Errorf("patch = %+v, want AddListener click", p)
		}
	})

	t.Run("removed", func(t *testing.T) {
		prev := h.Button(h.Listen("click", shared))
		prev.HID = "h1"
		patches := Diff(prev, h.Button())
		if len(patches) != 1 || patches[0].Op != PatchRemoveListener || patches[0].Key != "click" {
			t.Errorf("patches = %+v, want RemoveListener click", patches)
		}
	})
}

func TestDiffNamespacedAttribute(t *testing.T) {
	prev := h.Use(h.XLinkHref("#a"))
	prev.HID = "h1"

	patches := Diff(prev, h.Use(h.XLinkHref("#b")))

	if len(patches) != 1 {
		t.Fatalf("Expected 1 patch, got %d", len(patches))
	}
	p := patches[0]
	if p.Op != PatchSetAttr || p.Key != "xlink:href" || p.Value != "#b" {
		t.Errorf("patch = %+v, want SetAttr xlink:href=#b", p)
	}
	if p.Namespace != attr.XLink.URI {
		t.Errorf("Namespace = %q, want %q", p.Namespace, attr.XLink.URI)
	}

	// Same local name without a namespace is a different attribute.
	patches = Diff(prev, h.Use(h.Href("#a")))
	if len(patches) != 2 {
		t.Fatalf("Expected 2 patches, got %+v", patches)
	}
	if patches[0].Op != PatchRemoveAttr || patches[0].Key != "xlink:href" {
		t.Errorf("patches[0] = %+v, want RemoveAttr xlink:href", patches[0])
	}
	if patches[1].Op != PatchSetAttr || patches[1].Key != "href" || patches[1].Namespace != "" {
		t.Errorf("patches[1] = %+v, want SetAttr href", patches[1])
	}
}

func TestDiffNamespaceWithoutPrefix(t *testing.T) {
	prev := h.Use(h.Href("#a"))
	prev.HID = "h1"

	uriOnly := h.Href("#a")
	uriOnly.Namespace = attr.Namespace{URI: attr.XLink.URI}

	if patches := Diff(prev, h.Use(uriOnly)); len(patches) != 0 {
		t.Errorf("got %+v, want no patches", patches)
	}

	uriOnly = h.Href("#b")
	uriOnly.Namespace = attr.Namespace{URI: attr.XLink.URI}
	patches := Diff(prev, h.Use(uriOnly))
	if len(patches) != 1 || patches[0].Op != PatchSetAttr || patches[0].Namespace != "" {
		t.Errorf("got %+v, want one SetAttr href without namespace", patches)
	}
}

func TestDiffChildAdded(t *testing.T) {
	prev := h.Ul(h.Li("a"))
	assignTestHIDs(prev)
	next := h.Ul(h.Li("a"), h.Li("b"))

	patches := Diff(prev, next)

	if len(patches) != 1 {
		t.Fatalf("Expected 1 patch, got %d", len(patches))
	}
	if p := patches[0]; p.Op != PatchInsertNode || p.ParentID != "h1" || p.Index != 1 {
		t.Errorf("patch = %+v, want InsertNode at h1[1]", p)
	}
}

func TestDiffChildRemoved(t *testing.T) {
	prev := h.Ul(h.Li("a"), h.Li("b"))
	assignTestHIDs(prev)

	patches := Diff(prev, h.Ul(h.Li("a")))

	if len(patches) != 1 {
		t.Fatalf("Expected 1 patch, got %d", len(patches))
	}
	if p := patches[0]; p.Op != PatchRemoveNode || p.HID != "h3" {
		t.Errorf("patch = %+v, want RemoveNode h3", p)
	}
}

func TestDiffKeyedReorder(t *testing.T) {
	prev := h.Ul(h.Li(h.Key("a"), "A"), h.Li(h.Key("b"), "B"))
	assignTestHIDs(prev)
	next := h.Ul(h.Li(h.Key("b"), "B"), h.Li(h.Key("a"), "A"))

	patches := Diff(prev, next)

	moves := 0
	for _, p := range patches {
		switch p.Op {
		case PatchMoveNode:
			moves++
		default:
			t.Errorf("unexpected patch %+v", p)
		}
	}
	if moves != 2 {
		t.Errorf("moves = %d, want 2", moves)
	}
	if next.Children[0].HID != "h3" || next.Children[1].HID != "h2" {
		t.Errorf("HIDs not carried by key: %q %q", next.Children[0].HID, next.Children[1].HID)
	}
}

func TestDiffKeyedAdditionAndRemoval(t *testing.T) {
	prev := h.Ul(h.Li(h.Key(1)), h.Li(h.Key(2)))
	assignTestHIDs(prev)
	next := h.Ul(h.Li(h.Key(1)), h.Li(h.Key(3)))

	patches := Diff(prev, next)

	if len(patches) != 2 {
		t.Fatalf("Expected 2 patches, got %+v", patches)
	}
	if patches[0].Op != PatchInsertNode || patches[0].Index != 1 {
		t.Errorf("patches[0] = %+v, want InsertNode at 1", patches[0])
	}
	if patches[1].Op != PatchRemoveNode || patches[1].HID != "h3" {
		t.Errorf("patches[1] = %+v, want RemoveNode h3", patches[1])
	}
}

func TestDiffFragmentChildren(t *testing.T) {
	prev := h.Div(h.Fragment(h.Span("a")))
	assignTestHIDs(prev)
	next := h.Div(h.Fragment(h.Span("b")))

	patches := Diff(prev, next)

	if len(patches) != 1 {
		t.Fatalf("Expected 1 patch, got %d", len(patches))
	}
	if p := patches[0]; p.Op != PatchSetText || p.HID != "h2" || p.Value != "b" {
		t.Errorf("patch = %+v, want SetText h2 b", p)
	}
}

func TestDiffRawChange(t *testing.T) {
	prev := h.Div(h.Raw("<b>a</b>"))
	assignTestHIDs(prev)

	patches := Diff(prev, h.Div(h.Raw("<b>b</b>")))
	if len(patches) != 1 || patches[0].Op != PatchReplaceNode || patches[0].HID != "h1" {
		t.Errorf("patches = %+v, want ReplaceNode h1", patches)
	}

	if patches := Diff(prev, h.Div(h.Raw("<b>a</b>"))); len(patches) != 0 {
		t.Errorf("Expected 0 patches for unchanged raw, got %d", len(patches))
	}
}

func TestDiffSameTree(t *testing.T) {
	cb := callback.New(noop)
	build := func() *Node[Event, testMsg] {
		return h.Div(h.Class("app"),
			h.Input(h.Type("text"), h.PropValue("x"), h.Listen("input", cb)),
			h.Ul(h.Li(h.Key("1"), "one"), h.Li(h.Key("2"), "two")),
		)
	}
	prev := build()
	assignTestHIDs(prev)

	if patches := Diff(prev, build()); len(patches) != 0 {
		t.Errorf("Expected 0 patches for identical tree, got %+v", patches)
	}
}

func TestHIDCopied(t *testing.T) {
	prev := h.Div(h.Span("a"))
	assignTestHIDs(prev)
	next := h.Div(h.Span("b"))

	Diff(prev, next)

	if next.HID != "h1" || next.Children[0].HID != "h2" {
		t.Errorf("HIDs = %q %q, want h1 h2", next.HID, next.Children[0].HID)
	}
}

func TestEventType(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"onclick", "click"},
		{"OnInput", "Input"},
		{"on", "on"},
		{"click", "click"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := EventType(tt.name); got != tt.want {
			t.Errorf("EventType(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
