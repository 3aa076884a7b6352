package demo

import (
	"slices"
	"strconv"
	"strings"

	"github.com/vango-dev/vattr/internal/errors"
	"github.com/vango-dev/vattr/pkg/live"
	"github.com/vango-dev/vattr/pkg/vdom"
)

// Item is one todo entry.
type Item struct {
	ID   int
	Text string
	Done bool
}

// Model is the application state.
type Model struct {
	Items  []Item
	Draft  string
	NextID int
}

// Op identifies what a Msg does.
type Op uint8

const (
	OpDraft Op = iota + 1
	OpAdd
	OpToggle
	OpRemove
	OpClearDone
)

// Msg is the application message. ID is set for item ops, Text for OpDraft.
type Msg struct {
	Op   Op
	ID   int
	Text string
}

// ItemMsg is emitted by a single row.
type ItemMsg uint8

const (
	ItemToggle ItemMsg = iota + 1
	ItemRemove
)

// Init returns the starting model.
func Init() Model {
	return Model{
		Items: []Item{
			{ID: 1, Text: "Write the renderer"},
			{ID: 2, Text: "Ship the patch codec", Done: true},
		},
		NextID: 3,
	}
}

// Update applies msg to m. The model is treated as immutable.
func Update(m Model, msg Msg) Model {
	m.Items = slices.Clone(m.Items)

	switch msg.Op {
	case OpDraft:
		m.Draft = msg.Text
	case OpAdd:
		if m.Draft == "" {
			return m
		}
		m.Items = append(m.Items, Item{ID: m.NextID, Text: m.Draft})
		m.NextID++
		m.Draft = ""
	case OpToggle:
		if i := m.index(msg.ID); i >= 0 {
			m.Items[i].Done = !m.Items[i].Done
		}
	case OpRemove:
		if i := m.index(msg.ID); i >= 0 {
			m.Items = slices.Delete(m.Items, i, i+1)
		}
	case OpClearDone:
		m.Items = slices.DeleteFunc(m.Items, func(it Item) bool { return it.Done })
	}
	return m
}

func (m Model) index(id int) int {
	return slices.IndexFunc(m.Items, func(it Item) bool { return it.ID == id })
}

// Remaining returns the number of items not done.
func (m Model) Remaining() int {
	n := 0
	for _, it := range m.Items {
		if !it.Done {
			n++
		}
	}
	return n
}

var h vdom.HTML[vdom.Event, Msg]

// View renders the whole page body.
func View(m Model) *vdom.Node[vdom.Event, Msg] {
	rows := make([]*vdom.Node[vdom.Event, Msg], 0, len(m.Items))
	for _, it := range m.Items {
		id := it.ID
		rows = append(rows, vdom.MapMsgFunc(ItemView(it), func(im ItemMsg) Msg {
			if im == ItemRemove {
				return Msg{Op: OpRemove, ID: id}
			}
			return Msg{Op: OpToggle, ID: id}
		}))
	}

	draft := vdom.MapMsgFunc(
		vdom.Reform(DraftView(m.Draft), func(e vdom.Event) string { return e.Value }),
		func(text string) Msg { return Msg{Op: OpDraft, Text: text} },
	)

	return h.Main(h.Class("todo"),
		h.H1("Todo"),
		h.Form(
			h.OnSubmit(func(vdom.Event) Msg { return Msg{Op: OpAdd} }),
			draft,
			h.Button(h.Type("submit"), h.Disabled(m.Draft == ""), "Add"),
		),
		h.Ul(h.Class("items"), rows),
		h.Footer(
			h.Span(h.Class("remaining"), strconv.Itoa(m.Remaining())+" left"),
			vdom.If(m.Remaining() < len(m.Items),
				h.Button(h.OnClick(func(vdom.Event) Msg { return Msg{Op: OpClearDone} }), "Clear done")),
		),
	)
}

var item vdom.HTML[vdom.Event, ItemMsg]

// ItemView renders one row. It knows nothing about the page it sits in.
func ItemView(it Item) *vdom.Node[vdom.Event, ItemMsg] {
	return item.Li(
		item.Key(it.ID),
		item.ClassIf(it.Done, "done"),
		item.Input(
			item.Type("checkbox"),
			item.PropChecked(it.Done),
			item.OnChange(func(vdom.Event) ItemMsg { return ItemToggle }),
		),
		item.Span(it.Text),
		item.Button(
			item.AriaLabel("Remove "+it.Text),
			item.OnClick(func(vdom.Event) ItemMsg { return ItemRemove }),
			"×",
		),
	)
}

var draft vdom.HTML[string, string]

// DraftView renders the new-item input. Its listener receives the input's
// current text and returns it unchanged.
func DraftView(text string) *vdom.Node[string, string] {
	return draft.Input(
		draft.Type("text"),
		draft.Name("draft"),
		draft.Placeholder("What needs doing?"),
		draft.PropValue(text),
		draft.OnInput(func(s string) string { return s }),
	)
}

// Program returns the live program for the demo.
func Program() live.Program[Model, Msg] {
	return live.Program[Model, Msg]{Init: Init, Update: Update, View: View}
}

// Script is a fixed sequence of messages used to produce a sample state.
func Script() []Msg {
	return []Msg{
		{Op: OpDraft, Text: "Publish to S3"},
		{Op: OpAdd},
		{Op: OpToggle, ID: 1},
		{Op: OpRemove, ID: 2},
	}
}

// Run applies msgs to m in order.
func Run(m Model, msgs []Msg) Model {
	for _, msg := range msgs {
		m = Update(m, msg)
	}
	return m
}

// State names a demo model for the command line.
func State(name string) (Model, error) {
	switch name {
	case "", "initial":
		return Init(), nil
	case "sample":
		return Run(Init(), Script()), nil
	case "empty":
		return Model{NextID: 1}, nil
	}
	return Model{}, errors.New("E100").
		WithDetailf("unknown state %q", name).
		WithSuggestion("Use one of: " + strings.Join(StateNames(), ", "))
}

// StateNames lists the names State accepts.
func StateNames() []string {
	return []string{"initial", "sample", "empty"}
}

