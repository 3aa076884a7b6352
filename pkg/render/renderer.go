package render

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/vango-dev/vattr/internal/errors"
	"github.com/vango-dev/vattr/pkg/attr"
	"github.com/vango-dev/vattr/pkg/telemetry"
	"github.com/vango-dev/vattr/pkg/vdom"
)

// DefaultMaxDepth is the nesting depth at which rendering fails.
const DefaultMaxDepth = 512

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables pretty-printed HTML output with indentation.
	// Should only be used in development as it increases output size.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string

	// Hydrate assigns a data-hid to interactive elements that lack one.
	// Elements that already carry a HID always render it.
	Hydrate bool

	// MaxDepth bounds tree nesting. Defaults to DefaultMaxDepth.
	MaxDepth int

	// Metrics records render counts, durations and attribute kinds.
	Metrics *telemetry.Metrics

	// Tracer wraps each render in a span.
	Tracer *telemetry.Tracer

	// Logger receives debug output. Defaults to slog.Default().
	Logger *slog.Logger
}

// Renderer handles server-side rendering of node trees to HTML.
//
// Only static attributes become markup. Function-call attributes are DOM
// properties applied by the client, and event attributes become data-on-*
// markers next to the element's data-hid.
type Renderer[EVENT, MSG any] struct {
	config RendererConfig
	hids   *vdom.HIDGenerator
	logger *slog.Logger
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer[EVENT, MSG any](config RendererConfig) *Renderer[EVENT, MSG] {
	if config.Indent == "" {
		config.Indent = "  "
	}
	if config.MaxDepth <= 0 {
		config.MaxDepth = DefaultMaxDepth
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer[EVENT, MSG]{
		config: config,
		hids:   vdom.NewHIDGenerator(),
		logger: logger.With("component", "render"),
	}
}

// RenderToString renders a node tree to an HTML string.
func (r *Renderer[EVENT, MSG]) RenderToString(node *vdom.Node[EVENT, MSG]) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a node tree to the given writer.
func (r *Renderer[EVENT, MSG]) RenderToWriter(w io.Writer, node *vdom.Node[EVENT, MSG]) error {
	return r.RenderContext(context.Background(), w, node)
}

// RenderContext renders node to w, stopping early if ctx is cancelled.
func (r *Renderer[EVENT, MSG]) RenderContext(ctx context.Context, w io.Writer, node *vdom.Node[EVENT, MSG]) (err error) {
	ctx, span := r.config.Tracer.Start(ctx, "render")
	start := time.Now()

	st := &renderState{ctx: ctx, w: &errWriter{w: w}}
	defer func() {
		r.config.Metrics.ObserveRender(time.Since(start), err)
		for kind, n := range st.kinds {
			r.config.Metrics.AddAttributes(kind.String(), n)
		}
		span.SetAttributes(
			attribute.Int("vattr.nodes", st.nodes),
			attribute.Int64("vattr.bytes", st.w.n),
		)
		telemetry.End(span, err)
		r.logger.Debug("rendered tree",
			"nodes", st.nodes,
			"bytes", st.w.n,
			"duration", time.Since(start),
			"error", err)
	}()

	if err := r.renderNode(st, node, 0); err != nil {
		return err
	}
	if st.w.err != nil {
		return errors.New("E002").Wrap(st.w.err)
	}
	return nil
}

// Reset restarts hydration ID assignment at h1.
func (r *Renderer[EVENT, MSG]) Reset() {
	r.hids.Reset()
}

// renderState carries per-render bookkeeping.
type renderState struct {
	ctx    context.Context
	w      *errWriter
	nodes  int
	inline int // >0 while inside an element whose children render inline
	kinds  map[attr.Kind]int
}

func (st *renderState) countAttr(k attr.Kind) {
	if st.kinds == nil {
		st.kinds = make(map[attr.Kind]int)
	}
	st.kinds[k]++
}

// errWriter remembers the first write error; later writes are dropped.
type errWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (ew *errWriter) WriteString(s string) {
	if ew.err != nil {
		return
	}
	n, err := io.WriteString(ew.w, s)
	ew.n += int64(n)
	ew.err = err
}

// renderNode dispatches rendering based on node kind.
func (r *Renderer[EVENT, MSG]) renderNode(st *renderState, node *vdom.Node[EVENT, MSG], depth int) error {
	if node == nil {
		return nil
	}
	if depth > r.config.MaxDepth {
		return errors.New("E004").WithDetailf("depth exceeds %d", r.config.MaxDepth)
	}
	if st.w.err != nil {
		return errors.New("E002").Wrap(st.w.err)
	}
	st.nodes++

	switch node.Kind {
	case vdom.KindElement:
		return r.renderElement(st, node, depth)
	case vdom.KindText:
		st.w.WriteString(escapeHTML(node.Text))
		return nil
	case vdom.KindFragment:
		return r.renderChildren(st, node.Children, depth)
	case vdom.KindRaw:
		st.w.WriteString(node.Text)
		return nil
	default:
		return errors.New("E001").WithDetailf("node kind %d at depth %d", node.Kind, depth)
	}
}

// renderElement renders an HTML element with its attributes and children.
func (r *Renderer[EVENT, MSG]) renderElement(st *renderState, node *vdom.Node[EVENT, MSG], depth int) error {
	if err := st.ctx.Err(); err != nil {
		return errors.New("E003").Wrap(err)
	}

	tag := node.Tag
	pretty := r.config.Pretty && st.inline == 0

	if pretty && depth > 0 {
		r.writeIndent(st, depth)
	}

	st.w.WriteString("<")
	st.w.WriteString(tag)
	r.renderAttributes(st, node)
	st.w.WriteString(">")

	if vdom.IsVoidElement(tag) {
		if pretty {
			st.w.WriteString("\n")
		}
		return nil
	}

	if inner, ok := innerHTML(node); ok {
		st.w.WriteString(inner)
	} else {
		block := len(node.Children) > 0 && !isInlineElement(tag) && !hasOnlyText(node.Children)
		if pretty && block {
			st.w.WriteString("\n")
		}

		if !block {
			st.inline++
		}
		err := r.renderChildren(st, node.Children, depth+1)
		if !block {
			st.inline--
		}
		if err != nil {
			return err
		}

		if pretty && block {
			r.writeIndent(st, depth)
		}
	}

	st.w.WriteString("</")
	st.w.WriteString(tag)
	st.w.WriteString(">")
	if pretty {
		st.w.WriteString("\n")
	}
	return nil
}

// renderChildren renders each child at the given depth.
func (r *Renderer[EVENT, MSG]) renderChildren(st *renderState, children []*vdom.Node[EVENT, MSG], depth int) error {
	for _, child := range children {
		if err := r.renderNode(st, child, depth); err != nil {
			return err
		}
	}
	return nil
}

// renderAttributes writes the static attributes, listener markers and
// hydration ID of an element. Attributes are written in sorted order.
func (r *Renderer[EVENT, MSG]) renderAttributes(st *renderState, node *vdom.Node[EVENT, MSG]) {
	for _, a := range node.Attrs {
		st.countAttr(a.Kind())
	}

	attrs := vdom.EffectiveAttrs(node)
	for _, name := range vdom.SortedKeys(attrs) {
		v := attrs[name]
		if v == "" && vdom.IsBooleanAttr(name) {
			st.w.WriteString(" ")
			st.w.WriteString(name)
			continue
		}
		st.w.WriteString(" ")
		st.w.WriteString(name)
		st.w.WriteString(`="`)
		st.w.WriteString(escapeAttr(v))
		st.w.WriteString(`"`)
	}

	if node.HID == "" && r.config.Hydrate && node.IsInteractive() {
		node.HID = r.hids.Next()
	}
	if node.HID != "" {
		st.w.WriteString(` data-hid="`)
		st.w.WriteString(escapeAttr(node.HID))
		st.w.WriteString(`"`)
	}
}

// innerHTML returns the innerHTML property of node, if set.
func innerHTML[EVENT, MSG any](node *vdom.Node[EVENT, MSG]) (string, bool) {
	v, ok := vdom.EffectiveProps(node)["innerHTML"]
	if !ok {
		return "", false
	}
	return v.String(), true
}

// writeIndent writes indentation for pretty printing.
func (r *Renderer[EVENT, MSG]) writeIndent(st *renderState, depth int) {
	for i := 0; i < depth; i++ {
		st.w.WriteString(r.config.Indent)
	}
}
