package render

import (
	"bytes"
	"context"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/vango-dev/vattr/internal/errors"
	"github.com/vango-dev/vattr/pkg/telemetry"
	"github.com/vango-dev/vattr/pkg/vdom"
)

type testMsg string

var h vdom.HTML[vdom.Event, testMsg]

func noop(vdom.Event) testMsg { return "" }

func render(t *testing.T, config RendererConfig, node *vdom.Node[vdom.Event, testMsg]) string {
	t.Helper()
	r := NewRenderer[vdom.Event, testMsg](config)
	got, err := r.RenderToString(node)
	if err != nil {
		t.Fatalf("RenderToString() error: %v", err)
	}
	return got
}

func TestRenderElements(t *testing.T) {
	tests := []struct {
		name string
		node *vdom.Node[vdom.Event, testMsg]
		want string
	}{
		{"nil node", nil, ""},
		{"text", h.Text("Hello"), "Hello"},
		{"escaped text", h.Div("<a> & b"), "<div>&lt;a&gt; &amp; b</div>"},
		{"raw", h.Raw("<b>bold</b>"), "<b>bold</b>"},
		{"element with class", h.Div(h.Class("card"), "Hi"), `<div class="card">Hi</div>`},
		{"nested", h.Div(h.P("a"), h.Span("b")), "<div><p>a</p><span>b</span></div>"},
		{"fragment", h.Fragment(h.Li("1"), h.Li("2")), "<li>1</li><li>2</li>"},
		{"void element", h.Br(), "<br>"},
		{"void with attrs", h.Img(h.Src("/a.png"), h.Alt("A")), `<img alt="A" src="/a.png">`},
		{"sorted attributes", h.A(h.Href("/x"), h.ID("link"), h.Class("nav"), "x"), `<a class="nav" href="/x" id="link">x</a>`},
		{"escaped attribute", h.Div(h.TitleAttr(`say "hi"`)), `<div title="say &quot;hi&quot;"></div>`},
		{"empty attribute value", h.Div(h.Attr("data-x", "")), `<div data-x=""></div>`},
		{"numeric attribute", h.Input(h.MaxLength(10)), `<input maxlength="10">`},
		{"namespaced attribute", h.Svg(h.Use(h.XLinkHref("#icon"))), `<svg><use xlink:href="#icon"></use></svg>`},
		{"key not rendered", h.Li(h.Key(1), "one"), "<li>one</li>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := render(t, RendererConfig{}, tt.node); got != tt.want {
				t.Errorf("got  %q\nwant %q", got, tt.want)
			}
		})
	}
}

func TestRenderBooleanAttributes(t *testing.T) {
	tests := []struct {
		name string
		node *vdom.Node[vdom.Event, testMsg]
		want string
	}{
		{"true renders bare", h.Input(h.Type("checkbox"), h.Checked(true)), `<input checked type="checkbox">`},
		{"false omitted", h.Input(h.Type("checkbox"), h.Checked(false)), `<input type="checkbox">`},
		{"disabled button", h.Button(h.Disabled(true), "Go"), `<button disabled>Go</button>`},
		{"last occurrence wins", h.Button(h.Disabled(true), h.Disabled(false), "Go"), `<button>Go</button>`},
		{"hidden", h.Div(h.Hidden()), `<div hidden></div>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := render(t, RendererConfig{}, tt.node); got != tt.want {
				t.Errorf("got  %q\nwant %q", got, tt.want)
			}
		})
	}
}

func TestRenderAttributeKinds(t *testing.T) {
	t.Run("func call is not markup", func(t *testing.T) {
		got := render(t, RendererConfig{}, h.Input(h.Name("q"), h.PropValue("typed")))
		if got != `<input name="q">` {
			t.Errorf("got %q", got)
		}
	})

	t.Run("innerHTML becomes content", func(t *testing.T) {
		got := render(t, RendererConfig{}, h.Div(h.InnerHTML("<em>x</em>"), "ignored"))
		if got != "<div><em>x</em></div>" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("listener marker without hydration", func(t *testing.T) {
		got := render(t, RendererConfig{}, h.Button(h.OnClick(noop), "Go"))
		if got != `<button data-on-click="true">Go</button>` {
			t.Errorf("got %q", got)
		}
	})

	t.Run("hydration assigns ids in order", func(t *testing.T) {
		node := h.Div(
			h.Button(h.OnClick(noop), "A"),
			h.Span("static"),
			h.Input(h.OnInput(noop), h.OnChange(noop)),
		)
		got := render(t, RendererConfig{Hydrate: true}, node)
		want := `<div><button data-on-click="true" data-hid="h1">A</button><span>static</span>` +
			`<input data-on-change="true" data-on-input="true" data-hid="h2"></div>`
		if got != want {
			t.Errorf("got  %q\nwant %q", got, want)
		}
		if node.Children[0].HID != "h1" {
			t.Errorf("button HID = %q, want h1", node.Children[0].HID)
		}
	})

	t.Run("existing hid kept", func(t *testing.T) {
		node := h.Div(h.Class("x"))
		node.HID = "h9"
		got := render(t, RendererConfig{}, node)
		if got != `<div class="x" data-hid="h9"></div>` {
			t.Errorf("got %q", got)
		}
	})
}

func TestRenderReset(t *testing.T) {
	r := NewRenderer[vdom.Event, testMsg](RendererConfig{Hydrate: true})

	first := h.Button(h.OnClick(noop))
	if _, err := r.RenderToString(first); err != nil {
		t.Fatal(err)
	}
	r.Reset()
	second := h.Button(h.OnClick(noop))
	if _, err := r.RenderToString(second); err != nil {
		t.Fatal(err)
	}
	if first.HID != "h1" || second.HID != "h1" {
		t.Errorf("HIDs = %q, %q, want h1 for both", first.HID, second.HID)
	}
}

func TestRenderPretty(t *testing.T) {
	node := h.Div(
		h.P("a"),
		h.Ul(h.Li("x"), h.Li(h.Strong("y"))),
		h.Br(),
	)
	got := render(t, RendererConfig{Pretty: true}, node)
	want := "<div>\n" +
		"  <p>a</p>\n" +
		"  <ul>\n" +
		"    <li>x</li>\n" +
		"    <li>\n" +
		"      <strong>y</strong>\n" +
		"    </li>\n" +
		"  </ul>\n" +
		"  <br>\n" +
		"</div>\n"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderPrettyIndent(t *testing.T) {
	got := render(t, RendererConfig{Pretty: true, Indent: "\t"}, h.Div(h.P("a")))
	if got != "<div>\n\t<p>a</p>\n</div>\n" {
		t.Errorf("got %q", got)
	}
}

func TestRenderErrors(t *testing.T) {
	t.Run("unknown kind", func(t *testing.T) {
		r := NewRenderer[vdom.Event, testMsg](RendererConfig{})
		_, err := r.RenderToString(&vdom.Node[vdom.Event, testMsg]{Kind: vdom.Kind(99)})
		if errors.Code(err) != "E001" {
			t.Errorf("error = %v, want E001", err)
		}
	})

	t.Run("too deep", func(t *testing.T) {
		node := h.Div(h.Div(h.Div(h.Div("deep"))))
		r := NewRenderer[vdom.Event, testMsg](RendererConfig{MaxDepth: 2})
		_, err := r.RenderToString(node)
		if errors.Code(err) != "E004" {
			t.Errorf("error = %v, want E004", err)
		}
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		r := NewRenderer[vdom.Event, testMsg](RendererConfig{})
		err := r.RenderContext(ctx, &bytes.Buffer{}, h.Div("x"))
		if errors.Code(err) != "E003" {
			t.Errorf("error = %v, want E003", err)
		}
		if !stderrors.Is(err, context.Canceled) {
			t.Errorf("error %v does not wrap context.Canceled", err)
		}
	})

	t.Run("write failure", func(t *testing.T) {
		r := NewRenderer[vdom.Event, testMsg](RendererConfig{})
		err := r.RenderToWriter(failWriter{}, h.Div("x"))
		if errors.Code(err) != "E002" {
			t.Errorf("error = %v, want E002", err)
		}
		if !stderrors.Is(err, errWrite) {
			t.Errorf("error %v does not wrap the write error", err)
		}
	})
}

var errWrite = stderrors.New("disk full")

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestRenderMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := telemetry.NewMetrics(telemetry.WithRegistry(reg), telemetry.WithNamespace("test"))
	r := NewRenderer[vdom.Event, testMsg](RendererConfig{
		Metrics: metrics,
		Tracer:  telemetry.NewTracer(),
	})

	node := h.Input(h.Name("q"), h.PropValue("v"), h.OnInput(noop))
	if _, err := r.RenderToString(node); err != nil {
		t.Fatal(err)
	}
	if _, err := r.RenderToString(&vdom.Node[vdom.Event, testMsg]{Kind: vdom.Kind(99)}); err == nil {
		t.Fatal("expected error")
	}

	if n, err := testutil.GatherAndCount(reg, "test_renders_total"); err != nil || n != 2 {
		t.Errorf("renders_total series = %d (%v), want 2", n, err)
	}
	if n, err := testutil.GatherAndCount(reg, "test_attributes_rendered_total"); err != nil || n != 3 {
		t.Errorf("attributes_rendered_total series = %d (%v), want 3", n, err)
	}
}

func TestRenderToWriterMatchesString(t *testing.T) {
	node := h.Div(h.Class("a"), h.P("b"), h.Button(h.OnClick(noop), "c"))

	s := render(t, RendererConfig{}, node)

	var buf bytes.Buffer
	r := NewRenderer[vdom.Event, testMsg](RendererConfig{})
	if err := r.RenderToWriter(&buf, node); err != nil {
		t.Fatal(err)
	}
	if buf.String() != s {
		t.Errorf("writer output %q differs from string output %q", buf.String(), s)
	}
	if v := firstTagAttrs(t, s, "div")["class"]; v != "a" {
		t.Errorf("class = %q, want a", v)
	}
	if strings.Count(s, "data-on-click") != 1 {
		t.Errorf("expected one listener marker in %q", s)
	}
}

func TestRenderedAttributes(t *testing.T) {
	node := h.Div(
		h.Button(h.Disabled(true), h.OnClick(noop), h.Attr("title", `a "b"`), "go"),
		h.Svg(h.Use(h.XLinkHref("#icon"))),
		h.Input(h.PropValue("typed"), h.Disabled(false)),
	)
	s := render(t, RendererConfig{Hydrate: true}, node)

	tests := []struct {
		tag  string
		want map[string]string
	}{
		{"button", map[string]string{"data-hid": "h1", "disabled": "", "data-on-click": "true", "title": "a &quot;b&quot;"}},
		{"use", map[string]string{"xlink:href": "#icon"}},
		{"input", map[string]string{}},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			got := firstTagAttrs(t, s, tt.tag)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("<%s> attributes mismatch (-want +got):\n%s", tt.tag, diff)
			}
		})
	}
}
