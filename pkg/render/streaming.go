package render

import (
	"context"
	"io"
	"net/http"

	"github.com/vango-dev/vattr/internal/errors"
)

// StreamingRenderer wraps Renderer with chunked output support.
// It flushes content incrementally for faster time-to-first-byte.
type StreamingRenderer[EVENT, MSG any] struct {
	*Renderer[EVENT, MSG]
	flusher http.Flusher
	w       io.Writer
}

// NewStreamingRenderer creates a streaming renderer that writes to w.
// If w implements http.Flusher, content is flushed after the head and
// again after the body.
func NewStreamingRenderer[EVENT, MSG any](w io.Writer, config RendererConfig) *StreamingRenderer[EVENT, MSG] {
	flusher, _ := w.(http.Flusher)
	return &StreamingRenderer[EVENT, MSG]{
		Renderer: NewRenderer[EVENT, MSG](config),
		flusher:  flusher,
		w:        w,
	}
}

// RenderPage renders a complete HTML document with incremental flushing.
func (s *StreamingRenderer[EVENT, MSG]) RenderPage(ctx context.Context, page Page[EVENT, MSG]) error {
	if err := s.renderPage(ctx, s.w, page, s.flush); err != nil {
		return err
	}
	s.flush()
	return nil
}

// flush flushes the writer if it supports flushing.
func (s *StreamingRenderer[EVENT, MSG]) flush() {
	if s.flusher != nil {
		s.flusher.Flush()
	}
}

// FlushableWriter wraps an io.Writer with flushing capability.
// This is useful for testing streaming behavior without an http.ResponseWriter.
type FlushableWriter struct {
	io.Writer
	FlushCount int
}

// Flush implements http.Flusher.
func (w *FlushableWriter) Flush() {
	w.FlushCount++
}

func wrapWriteErr(err error) error {
	return errors.New("E002").Wrap(err)
}
