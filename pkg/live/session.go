package live

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"go.opentelemetry.io/otel/attribute"

	"github.com/vango-dev/vattr/internal/errors"
	"github.com/vango-dev/vattr/pkg/protocol"
	"github.com/vango-dev/vattr/pkg/telemetry"
	"github.com/vango-dev/vattr/pkg/vdom"
)

// Program is a model-update-view application. View builds a fresh tree for
// each model; listeners in that tree turn client events into messages.
type Program[MODEL, MSG any] struct {
	Init   func() MODEL
	Update func(MODEL, MSG) MODEL
	View   func(MODEL) *vdom.Node[vdom.Event, MSG]
}

// Initial returns the view of the initial model with a HID on every
// element. Repeated calls produce identical HIDs, so a page rendered from
// Initial lines up with a session started later.
func (p Program[MODEL, MSG]) Initial() *vdom.Node[vdom.Event, MSG] {
	tree := p.View(p.Init())
	vdom.AssignAllHIDs(tree, vdom.NewHIDGenerator())
	return tree
}

// Session holds one client's model and the tree last sent to it.
// It is safe for concurrent use.
type Session[MODEL, MSG any] struct {
	program Program[MODEL, MSG]
	metrics *telemetry.Metrics
	tracer  *telemetry.Tracer
	logger  *slog.Logger

	mu    sync.Mutex
	model MODEL
	tree  *vdom.Node[vdom.Event, MSG]
	hids  *vdom.HIDGenerator
	seq   uint64
}

// NewSession starts a session at the program's initial model.
func NewSession[MODEL, MSG any](program Program[MODEL, MSG], config Config) *Session[MODEL, MSG] {
	config = config.withDefaults()

	hids := vdom.NewHIDGenerator()
	model := program.Init()
	tree := program.View(model)
	vdom.AssignAllHIDs(tree, hids)

	return &Session[MODEL, MSG]{
		program: program,
		metrics: config.Metrics,
		tracer:  config.Tracer,
		logger:  config.Logger.With("component", "live.session"),
		model:   model,
		tree:    tree,
		hids:    hids,
	}
}

// Model returns the current model.
func (s *Session[MODEL, MSG]) Model() MODEL {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.model
}

// Tree returns the tree last sent to the client.
func (s *Session[MODEL, MSG]) Tree() *vdom.Node[vdom.Event, MSG] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree
}

// HandleEvent dispatches ev to the listener bound at ev.HID, updates the
// model with the resulting message and returns the patches that bring the
// client's DOM up to date. An event with no bound listener returns E020
// and leaves the session unchanged.
func (s *Session[MODEL, MSG]) HandleEvent(ctx context.Context, ev vdom.Event) (pf *protocol.PatchesFrame, err error) {
	_, span := s.tracer.Start(ctx, "dispatch",
		attribute.String("vattr.event.type", ev.Type),
		attribute.String("vattr.event.hid", ev.HID))
	defer func() { telemetry.End(span, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	msg, ok := vdom.Dispatch(s.tree, ev.HID, ev.Type, ev)
	s.metrics.ObserveDispatch(ev.Type, ok)
	if !ok {
		return nil, errors.New("E020").WithDetailf("no %s listener on %s", ev.Type, ev.HID)
	}

	s.model = s.program.Update(s.model, msg)
	next := s.program.View(s.model)

	patches := dropRebinds(s.tree, vdom.Diff(s.tree, next))
	assignMissingHIDs(next, s.hids)
	for _, p := range patches {
		s.metrics.AddPatch(p.Op.String())
	}

	s.tree = next
	s.seq++
	span.SetAttributes(attribute.Int("vattr.patches", len(patches)))
	s.logger.Debug("event handled",
		"type", ev.Type,
		"hid", ev.HID,
		"patches", len(patches),
		"seq", s.seq)

	return &protocol.PatchesFrame{Seq: s.seq, Patches: protocol.FromVDOM(patches)}, nil
}

// dropRebinds removes AddListener patches for listeners the client already
// has. A fresh view binds new callbacks, but the client only needs to know
// that a listener exists; dispatch always uses the server's tree.
func dropRebinds[EVENT, MSG any](prev *vdom.Node[EVENT, MSG], patches []vdom.Patch[EVENT, MSG]) []vdom.Patch[EVENT, MSG] {
	bound := vdom.CollectListeners(prev)
	return slices.DeleteFunc(patches, func(p vdom.Patch[EVENT, MSG]) bool {
		if p.Op != vdom.PatchAddListener {
			return false
		}
		_, ok := bound[vdom.ListenerKey{HID: p.HID, Type: p.Key}]
		return ok
	})
}

// assignMissingHIDs gives a HID to every element that did not inherit one
// from the previous tree, so inserted nodes are addressable by later
// patches.
func assignMissingHIDs[EVENT, MSG any](node *vdom.Node[EVENT, MSG], gen *vdom.HIDGenerator) {
	if node == nil {
		return
	}
	if node.Kind == vdom.KindElement && node.HID == "" {
		node.HID = gen.Next()
	}
	for _, child := range node.Children {
		assignMissingHIDs(child, gen)
	}
}
