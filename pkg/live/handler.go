package live

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vango-dev/vattr/internal/errors"
	"github.com/vango-dev/vattr/pkg/protocol"
	"github.com/vango-dev/vattr/pkg/telemetry"
)

// Config configures live sessions.
type Config struct {
	// Limits bounds incoming frames.
	Limits protocol.Limits

	// ReadTimeout is the maximum time to wait for a message from the client.
	// Default: 60 seconds.
	ReadTimeout time.Duration

	// WriteTimeout is the maximum time to wait when sending a message.
	// Default: 10 seconds.
	WriteTimeout time.Duration

	// AllowedOrigins lists the Origin headers accepted on upgrade. "*"
	// accepts any origin. When empty, only same-host requests are accepted.
	AllowedOrigins []string

	Metrics *telemetry.Metrics
	Tracer  *telemetry.Tracer
	Logger  *slog.Logger
}

func (c Config) withDefaults() Config {
	c.Limits = c.Limits.WithDefaults()
	if c.ReadTimeout <= 0 {
		c.ReadTimeout = 60 * time.Second
	}
	if c.WriteTimeout <= 0 {
		c.WriteTimeout = 10 * time.Second
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return c
}

// Handler upgrades HTTP requests to websocket connections and runs one
// Session per connection.
type Handler[MODEL, MSG any] struct {
	program  Program[MODEL, MSG]
	config   Config
	upgrader websocket.Upgrader
	logger   *slog.Logger

	mu    sync.Mutex
	conns map[*websocket.Conn]bool
}

// NewHandler creates a Handler for program.
func NewHandler[MODEL, MSG any](program Program[MODEL, MSG], config Config) *Handler[MODEL, MSG] {
	config = config.withDefaults()

	h := &Handler[MODEL, MSG]{
		program: program,
		config:  config,
		conns:   make(map[*websocket.Conn]bool),
		logger:  config.Logger.With("component", "live"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
		},
	}
	if len(config.AllowedOrigins) > 0 {
		h.upgrader.CheckOrigin = h.checkOrigin
	}
	return h
}

func (h *Handler[MODEL, MSG]) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	return slices.Contains(h.config.AllowedOrigins, "*") ||
		slices.Contains(h.config.AllowedOrigins, origin)
}

// ServeHTTP implements http.Handler.
func (h *Handler[MODEL, MSG]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written an HTTP error.
		h.logger.Warn("upgrade failed", "error", err, "remote", r.RemoteAddr)
		return
	}
	conn.SetReadLimit(int64(h.config.Limits.MaxFrameSize) + protocol.FrameHeaderSize)

	h.mu.Lock()
	h.conns[conn] = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.conns, conn)
		h.mu.Unlock()
		conn.Close()
	}()

	session := NewSession(h.program, h.config)
	h.logger.Info("session started", "remote", r.RemoteAddr)
	h.readLoop(r.Context(), conn, session)
	h.logger.Info("session ended", "remote", r.RemoteAddr)
}

// readLoop reads frames until the connection closes. Events are handled in
// order; each handled event answers with one patches frame.
func (h *Handler[MODEL, MSG]) readLoop(ctx context.Context, conn *websocket.Conn, session *Session[MODEL, MSG]) {
	logger := h.logger

	for {
		conn.SetReadDeadline(time.Now().Add(h.config.ReadTimeout))

		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				logger.Error("read error", "error", err)
			}
			return
		}

		frame, err := protocol.DecodeFrame(msg, h.config.Limits)
		if err != nil {
			logger.Warn("frame decode error", "error", err)
			if !h.sendError(conn, err) {
				return
			}
			continue
		}

		switch frame.Type {
		case protocol.FrameEvent:
			if !h.handleEventFrame(ctx, conn, session, frame.Payload) {
				return
			}
		case protocol.FrameError:
			if em, err := protocol.DecodeErrorMessage(frame.Payload); err == nil {
				logger.Warn("client error", "code", em.Code, "message", em.Message)
			}
		default:
			logger.Warn("unexpected frame type", "type", frame.Type)
		}
	}
}

// handleEventFrame decodes and handles one event. It reports false when
// the connection can no longer be written to.
func (h *Handler[MODEL, MSG]) handleEventFrame(ctx context.Context, conn *websocket.Conn, session *Session[MODEL, MSG], payload []byte) bool {
	ef, err := protocol.DecodeEventWithLimits(payload, h.config.Limits)
	if err != nil {
		h.logger.Warn("event decode error", "error", err)
		return h.sendError(conn, err)
	}

	pf, err := session.HandleEvent(ctx, ef.Event)
	if err != nil {
		h.logger.Debug("event not handled", "error", err)
		return h.sendError(conn, err)
	}

	frame := protocol.NewFrame(protocol.FramePatches, protocol.EncodePatches(pf))
	return h.write(conn, frame)
}

// sendError reports err to the client as a non-fatal error frame.
func (h *Handler[MODEL, MSG]) sendError(conn *websocket.Conn, err error) bool {
	em := &protocol.ErrorMessage{Code: errors.Code(err), Message: err.Error()}
	if em.Code == "" {
		em.Code = "E040"
	}
	return h.write(conn, protocol.NewFrame(protocol.FrameError, protocol.EncodeErrorMessage(em)))
}

func (h *Handler[MODEL, MSG]) write(conn *websocket.Conn, frame *protocol.Frame) bool {
	conn.SetWriteDeadline(time.Now().Add(h.config.WriteTimeout))
	if err := conn.WriteMessage(websocket.BinaryMessage, frame.Encode()); err != nil {
		h.logger.Error("write error", "error", errors.New("E043").Wrap(err))
		return false
	}
	return true
}

// Sessions returns the number of open connections.
func (h *Handler[MODEL, MSG]) Sessions() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

// Close sends a close message to every open connection and closes it.
func (h *Handler[MODEL, MSG]) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.conns {
		conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutdown"),
			time.Now().Add(time.Second),
		)
		conn.Close()
		delete(h.conns, conn)
	}
}
