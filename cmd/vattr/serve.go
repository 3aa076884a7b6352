package main

import (
	"context"
	stderrors "errors"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/vango-dev/vattr/internal/config"
	"github.com/vango-dev/vattr/internal/demo"
	"github.com/vango-dev/vattr/internal/errors"
	"github.com/vango-dev/vattr/pkg/live"
	"github.com/vango-dev/vattr/pkg/protocol"
	"github.com/vango-dev/vattr/pkg/render"
	"github.com/vango-dev/vattr/pkg/telemetry"
	"github.com/vango-dev/vattr/pkg/vdom"
)

func serveCmd(flags *rootFlags) *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the demo application",
		Long: `Serve the demo application over HTTP.

  /                 live page: events are sent over a websocket and
                    answered with patches
  /state/{name}     static render of a named state
  <livePath>        websocket endpoint (default /live)
  <metricsPath>     Prometheus metrics (default /metrics)

The server shuts down gracefully on SIGINT or SIGTERM.

Examples:
  vattr serve
  vattr serve --port=8080 --host=0.0.0.0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Serve.Port = port
			}
			if host != "" {
				cfg.Serve.Host = host
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			ln, err := net.Listen("tcp", cfg.Address())
			if err != nil {
				return errors.New("E101").Wrap(err)
			}
			return runServe(ctx, cmd, cfg, ln)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from vattr.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from vattr.json)")

	return cmd
}

// runServe serves on ln until ctx is cancelled, then shuts down within the
// configured timeout.
func runServe(ctx context.Context, cmd *cobra.Command, cfg *config.Config, ln net.Listener) error {
	logger := newLogger(cfg, cmd.ErrOrStderr())
	app := newApp(cfg, logger, prometheus.NewRegistry())

	srv := &http.Server{
		Handler:           app.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	success(cmd.OutOrStdout(), "Serving on http://%s", ln.Addr())
	info(cmd.OutOrStdout(), "live:    %s", cfg.Serve.LivePath)
	info(cmd.OutOrStdout(), "metrics: %s", cfg.Serve.MetricsPath)

	select {
	case err := <-errCh:
		return errors.New("E101").Wrap(err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", "timeout", cfg.ShutdownTimeout())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
	defer cancel()

	app.live.Close()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New("E101").Wrap(err)
	}
	if err := <-errCh; err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return errors.New("E101").Wrap(err)
	}
	return nil
}

// app holds the handlers of a running server.
type app struct {
	router   chi.Router
	live     *live.Handler[demo.Model, demo.Msg]
	program  live.Program[demo.Model, demo.Msg]
	renderer render.RendererConfig
	livePath string
	title    string
	logger   *slog.Logger
}

func newApp(cfg *config.Config, logger *slog.Logger, reg *prometheus.Registry) *app {
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	metrics := telemetry.NewMetrics(
		telemetry.WithRegistry(reg),
		telemetry.WithNamespace(cfg.Metrics.Namespace),
		telemetry.WithSubsystem(cfg.Metrics.Subsystem),
	)
	tracer := telemetry.NewTracer(telemetry.WithTracerName(cfg.Tracing.TracerName))

	a := &app{
		program:  demo.Program(),
		livePath: cfg.Serve.LivePath,
		title:    pageTitle(cfg),
		logger:   logger,
		renderer: render.RendererConfig{
			Pretty:  cfg.Render.Pretty,
			Indent:  cfg.Render.Indent,
			Metrics: metrics,
			Tracer:  tracer,
			Logger:  logger,
		},
	}
	a.live = live.NewHandler(a.program, live.Config{
		Limits: protocol.Limits{
			MaxFrameSize: cfg.Protocol.MaxFrameSize,
			MaxNodeDepth: cfg.Protocol.MaxNodeDepth,
		},
		AllowedOrigins: cfg.Serve.AllowedOrigins,
		Metrics:        metrics,
		Tracer:         tracer,
		Logger:         logger,
	})

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	r.Get("/", a.serveLive)
	r.Get("/state/{name}", a.serveState)
	r.Method(http.MethodGet, render.DefaultClientScript, live.ClientHandler())
	r.Method(http.MethodHead, render.DefaultClientScript, live.ClientHandler())
	r.Handle(cfg.Serve.LivePath, a.live)
	if cfg.Serve.MetricsPath != "" {
		r.Handle(cfg.Serve.MetricsPath, promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	}
	a.router = r
	return a
}

// serveLive renders the initial view with the HIDs a new live session
// starts with, and points the client at the websocket.
func (a *app) serveLive(w http.ResponseWriter, r *http.Request) {
	a.servePage(w, r, render.Page[vdom.Event, demo.Msg]{
		Title:   a.title,
		Body:    a.program.Initial(),
		LiveURL: a.livePath,
	})
}

func (a *app) serveState(w http.ResponseWriter, r *http.Request) {
	model, err := demo.State(chi.URLParam(r, "name"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	a.servePage(w, r, render.Page[vdom.Event, demo.Msg]{
		Title: a.title,
		Body:  demo.View(model),
	})
}

func (a *app) servePage(w http.ResponseWriter, r *http.Request, page render.Page[vdom.Event, demo.Msg]) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	sr := render.NewStreamingRenderer[vdom.Event, demo.Msg](w, a.renderer)
	if err := sr.RenderPage(r.Context(), page); err != nil {
		// Headers are already sent once streaming starts.
		a.logger.Error("render failed", "path", r.URL.Path, "error", err)
	}
}

// requestLogger logs one line per request at debug level.
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Debug("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()))
		})
	}
}
