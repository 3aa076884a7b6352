package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/vango-dev/vattr/internal/config"
	"github.com/vango-dev/vattr/internal/demo"
	"github.com/vango-dev/vattr/internal/errors"
	"github.com/vango-dev/vattr/pkg/protocol"
	"github.com/vango-dev/vattr/pkg/render"
	"github.com/vango-dev/vattr/pkg/vdom"
)

// execute runs the root command with args and returns its standard output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append(args, "--config", t.TempDir()))
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version", "--short")
	if err != nil {
		t.Fatal(err)
	}
	if out != "dev\n" {
		t.Errorf("version --short = %q, want %q", out, "dev\n")
	}

	out, err = execute(t, "version")
	if err != nil || !strings.Contains(out, "Go version:") {
		t.Errorf("version = %q, %v", out, err)
	}
}

func TestRenderCmd(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []string
		notWant []string
	}{
		{
			name: "initial",
			args: []string{"render"},
			want: []string{`<main class="todo">`, "Write the renderer", `data-on-click="true"`},
			notWant: []string{"data-hid", "<!DOCTYPE html>"},
		},
		{
			name: "sample pretty",
			args: []string{"render", "sample", "--pretty"},
			want: []string{"Publish to S3", "\n  <h1>Todo</h1>"},
		},
		{
			name: "hydrate",
			args: []string{"render", "--hydrate"},
			want: []string{`data-hid="h1"`},
		},
		{
			name: "page",
			args: []string{"render", "empty", "--page"},
			want: []string{"<!DOCTYPE html>", "<title>vattr todo</title>", "0 left"},
			notWant: []string{render.DefaultClientScript},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("render error: %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
			for _, notWant := range tt.notWant {
				if strings.Contains(out, notWant) {
					t.Errorf("output contains %q:\n%s", notWant, out)
				}
			}
		})
	}
}

func TestRenderCmdUnknownState(t *testing.T) {
	if _, err := execute(t, "render", "bogus"); errors.Code(err) != "E100" {
		t.Errorf("error = %v, want E100", err)
	}
}

func TestRenderCmdPublish(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "render", "--page", "--publish", dir, "--name", "todo/index.html")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Published") {
		t.Errorf("output = %q", out)
	}

	data, err := os.ReadFile(filepath.Join(dir, "todo", "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("<!DOCTYPE html>")) {
		t.Errorf("published file starts with %q", data[:20])
	}

	if _, err := execute(t, "render", "--publish", "ftp://x/y"); errors.Code(err) != "E080" {
		t.Errorf("bad target error = %v, want E080", err)
	}
}

func TestDiffCmd(t *testing.T) {
	out, err := execute(t, "diff", "--wire")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		`SetAttr h7 class="done"`,
		`SetProp h8 checked="true"`,
		"InsertNode h6[1] <li>",
		"Publish to S3",
		"RemoveNode h11",
		"bytes on the wire",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	// A fresh view binds fresh callbacks, so only listeners are rebound.
	same, err := execute(t, "diff", "initial", "initial")
	if err != nil {
		t.Fatal(err)
	}
	for _, line := range strings.Split(strings.TrimSpace(same), "\n") {
		if !strings.HasPrefix(line, "AddListener ") {
			t.Errorf("diff of identical states has %q", line)
		}
	}

	if _, err := execute(t, "diff", "initial", "nope"); errors.Code(err) != "E100" {
		t.Errorf("error = %v, want E100", err)
	}
}

func TestFormatPatch(t *testing.T) {
	r := render.NewRenderer[vdom.Event, demo.Msg](render.RendererConfig{})
	var h vdom.HTML[vdom.Event, demo.Msg]

	tests := []struct {
		patch vdom.Patch[vdom.Event, demo.Msg]
		want  string
	}{
		{vdom.Patch[vdom.Event, demo.Msg]{Op: vdom.PatchSetText, HID: "h1", Value: "a"}, `SetText h1 "a"`},
		{vdom.Patch[vdom.Event, demo.Msg]{Op: vdom.PatchSetAttr, HID: "h1", Key: "class", Value: "x"}, `SetAttr h1 class="x"`},
		{vdom.Patch[vdom.Event, demo.Msg]{Op: vdom.PatchSetProp, HID: "h2", Key: "checked", Value: "true"}, `SetProp h2 checked="true"`},
		{vdom.Patch[vdom.Event, demo.Msg]{Op: vdom.PatchRemoveAttr, HID: "h1", Key: "disabled"}, `RemoveAttr h1 disabled`},
		{vdom.Patch[vdom.Event, demo.Msg]{Op: vdom.PatchAddListener, HID: "h3", Key: "click"}, `AddListener h3 click`},
		{vdom.Patch[vdom.Event, demo.Msg]{Op: vdom.PatchRemoveNode, HID: "h4"}, `RemoveNode h4`},
		{vdom.Patch[vdom.Event, demo.Msg]{Op: vdom.PatchMoveNode, HID: "h5", ParentID: "h1", Index: 2}, `MoveNode h5 -> h1[2]`},
		{vdom.Patch[vdom.Event, demo.Msg]{Op: vdom.PatchInsertNode, ParentID: "h1", Index: 0, Node: h.P("x")}, `InsertNode h1[0] <p>x</p>`},
		{vdom.Patch[vdom.Event, demo.Msg]{Op: vdom.PatchReplaceNode, HID: "h6", Node: h.Text("y")}, `ReplaceNode h6 y`},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got, err := formatPatch(r, tt.patch)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("formatPatch() = %q, want %q", got, tt.want)
			}
		})
	}
}

func testApp(t *testing.T) (*app, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return newApp(config.New(), logger, reg), reg
}

func TestAppRoutes(t *testing.T) {
	a, _ := testApp(t)

	tests := []struct {
		path   string
		status int
		want   string
	}{
		{"/", http.StatusOK, `data-live="/live"`},
		{"/", http.StatusOK, `data-hid="h2"`},
		{"/state/sample", http.StatusOK, "Publish to S3"},
		{"/state/bogus", http.StatusNotFound, "E100"},
		{render.DefaultClientScript, http.StatusOK, "data-live"},
		{"/metrics", http.StatusOK, "vattr_renders_total"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			a.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d", rec.Code, tt.status)
			}
			if !strings.Contains(rec.Body.String(), tt.want) {
				t.Errorf("body missing %q", tt.want)
			}
		})
	}
}

func TestAppLiveSession(t *testing.T) {
	a, _ := testApp(t)
	srv := httptest.NewServer(a.router)
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/live", nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// The form is the second child of <main>; submitting with an empty
	// draft changes nothing.
	form := a.program.Initial().Children[1]
	payload := protocol.EncodeEvent(&protocol.EventFrame{Seq: 1, Event: vdom.Event{Type: "submit", HID: form.HID}})
	if err := conn.WriteMessage(websocket.BinaryMessage, protocol.NewFrame(protocol.FrameEvent, payload).Encode()); err != nil {
		t.Fatal(err)
	}

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatal(err)
	}
	frame, err := protocol.DecodeFrame(msg, protocol.DefaultLimits())
	if err != nil || frame.Type != protocol.FramePatches {
		t.Fatalf("frame = %+v, %v; want patches frame", frame, err)
	}
	pf, err := protocol.DecodePatches(frame.Payload)
	if err != nil {
		t.Fatal(err)
	}
	if pf.Seq != 1 || len(pf.Patches) != 0 {
		t.Errorf("patches = %+v, want seq 1 with none", pf)
	}
}

func TestRunServeShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}

	cmd := &cobra.Command{}
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- runServe(ctx, cmd, config.New(), ln) }()

	url := "http://" + ln.Addr().String() + "/state/initial"
	deadline := time.Now().Add(5 * time.Second)
	for {
		resp, err := http.Get(url)
		if err == nil {
			resp.Body.Close()
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("server did not start: %v", err)
		}
		time.Sleep(20 * time.Millisecond)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("runServe() = %v, want nil", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("runServe did not return after cancel")
	}
}
