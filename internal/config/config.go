package config

import (
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/vango-dev/vattr/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "vattr.json"

	// DefaultPort is the default server port.
	DefaultPort = 3000

	// DefaultHost is the default server host.
	DefaultHost = "localhost"

	// DefaultIndent is the default pretty-print indentation.
	DefaultIndent = "  "

	// DefaultMetricsPath is the default Prometheus scrape path.
	DefaultMetricsPath = "/metrics"

	// DefaultLivePath is the default live session WebSocket path.
	DefaultLivePath = "/live"

	// DefaultNamespace is the default metrics namespace.
	DefaultNamespace = "vattr"

	// DefaultShutdownTimeout is the default graceful shutdown timeout.
	DefaultShutdownTimeout = "10s"

	// DefaultMaxFrameSize is the default maximum live frame size in bytes.
	DefaultMaxFrameSize = 1 << 20

	// DefaultMaxNodeDepth is the default maximum encoded tree depth.
	DefaultMaxNodeDepth = 256
)

// Config represents the complete vattr.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Render contains HTML rendering configuration.
	Render RenderConfig `json:"render,omitempty"`

	// Serve contains HTTP server configuration.
	Serve ServeConfig `json:"serve,omitempty"`

	// Metrics contains Prometheus configuration.
	Metrics MetricsConfig `json:"metrics,omitempty"`

	// Tracing contains OpenTelemetry configuration.
	Tracing TracingConfig `json:"tracing,omitempty"`

	// Protocol contains live protocol limits.
	Protocol ProtocolConfig `json:"protocol,omitempty"`

	// Publish contains the default publish target.
	Publish PublishConfig `json:"publish,omitempty"`

	// Log contains logging configuration.
	Log LogConfig `json:"log,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// RenderConfig contains HTML rendering settings.
type RenderConfig struct {
	// Pretty enables indented output.
	Pretty bool `json:"pretty,omitempty"`

	// Indent is the string used per indentation level.
	Indent string `json:"indent,omitempty"`

	// Hydrate emits data-hid markers on interactive elements.
	Hydrate bool `json:"hydrate,omitempty"`
}

// ServeConfig contains HTTP server settings.
type ServeConfig struct {
	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// Port is the port to listen on.
	Port int `json:"port,omitempty"`

	// MetricsPath is the Prometheus scrape path. Empty disables it.
	MetricsPath string `json:"metricsPath,omitempty"`

	// LivePath is the live session WebSocket path.
	LivePath string `json:"livePath,omitempty"`

	// ShutdownTimeout bounds graceful shutdown (e.g., "10s").
	ShutdownTimeout string `json:"shutdownTimeout,omitempty"`

	// AllowedOrigins restricts WebSocket origins. Empty allows same-origin only.
	AllowedOrigins []string `json:"allowedOrigins,omitempty"`
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	// Namespace is the metrics namespace.
	Namespace string `json:"namespace,omitempty"`

	// Subsystem is the metrics subsystem.
	Subsystem string `json:"subsystem,omitempty"`
}

// TracingConfig contains OpenTelemetry settings.
type TracingConfig struct {
	// TracerName is the tracer name.
	TracerName string `json:"tracerName,omitempty"`
}

// ProtocolConfig contains live protocol limits.
type ProtocolConfig struct {
	// MaxFrameSize is the maximum size of an inbound frame in bytes.
	MaxFrameSize int `json:"maxFrameSize,omitempty"`

	// MaxNodeDepth is the maximum depth of an encoded node tree.
	MaxNodeDepth int `json:"maxNodeDepth,omitempty"`
}

// PublishConfig contains publish settings.
type PublishConfig struct {
	// Target is a directory path or s3://bucket/prefix URL.
	Target string `json:"target,omitempty"`

	// Region is the S3 region.
	Region string `json:"region,omitempty"`

	// Endpoint overrides the S3 endpoint (for S3-compatible stores).
	Endpoint string `json:"endpoint,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level,omitempty"`

	// Format is text or json.
	Format string `json:"format,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from the specified directory.
// It looks for vattr.json in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadOrDefault is like Load but returns the defaults when no file exists.
func LoadOrDefault(dir string) (*Config, error) {
	cfg, err := Load(dir)
	if errors.Code(err) == "E060" {
		return New(), nil
	}
	return cfg, err
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E060").
				WithDetail("No " + ConfigFileName + " found in " + filepath.Dir(path)).
				WithSuggestion("Create " + ConfigFileName + " or run without --config")
		}
		return nil, errors.New("E061").Wrap(err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		e := errors.New("E061").
			Wrap(err).
			WithSuggestion("Check that " + filepath.Base(path) + " is valid JSON")
		if offset, ok := jsonErrorOffset(err); ok {
			line, col := lineColumn(data, offset)
			e.WithLocation(path, line, col)
		}
		return nil, e
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// jsonErrorOffset returns the input offset of a decoding error.
func jsonErrorOffset(err error) (int64, bool) {
	var syntaxErr *json.SyntaxError
	if stderrors.As(err, &syntaxErr) {
		return syntaxErr.Offset, true
	}
	var typeErr *json.UnmarshalTypeError
	if stderrors.As(err, &typeErr) {
		return typeErr.Offset, true
	}
	return 0, false
}

// lineColumn converts a byte offset into a 1-based line and column.
func lineColumn(data []byte, offset int64) (int, int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	before := data[:offset]
	line := 1 + strings.Count(string(before), "\n")
	col := int(offset) - strings.LastIndexByte(string(before), '\n')
	return line, col
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E061").Wrap(err)
	}

	// Add newline at end of file
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E061").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Render.Indent == "" {
		c.Render.Indent = DefaultIndent
	}

	if c.Serve.Host == "" {
		c.Serve.Host = DefaultHost
	}
	if c.Serve.Port == 0 {
		c.Serve.Port = DefaultPort
	}
	if c.Serve.MetricsPath == "" {
		c.Serve.MetricsPath = DefaultMetricsPath
	}
	if c.Serve.LivePath == "" {
		c.Serve.LivePath = DefaultLivePath
	}
	if c.Serve.ShutdownTimeout == "" {
		c.Serve.ShutdownTimeout = DefaultShutdownTimeout
	}

	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultNamespace
	}
	if c.Tracing.TracerName == "" {
		c.Tracing.TracerName = DefaultNamespace
	}

	if c.Protocol.MaxFrameSize == 0 {
		c.Protocol.MaxFrameSize = DefaultMaxFrameSize
	}
	if c.Protocol.MaxNodeDepth == 0 {
		c.Protocol.MaxNodeDepth = DefaultMaxNodeDepth
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Serve.Port < 0 || c.Serve.Port > 65535 {
		return errors.New("E062").
			WithDetailf("serve.port must be between 0 and 65535, got %d", c.Serve.Port)
	}
	if d, err := time.ParseDuration(c.Serve.ShutdownTimeout); err != nil || d < 0 {
		return errors.New("E062").
			WithDetailf("serve.shutdownTimeout %q is not a valid duration", c.Serve.ShutdownTimeout).
			WithSuggestion(`Use a Go duration such as "10s"`)
	}
	if !strings.HasPrefix(c.Serve.LivePath, "/") {
		return errors.New("E062").
			WithDetailf("serve.livePath %q must start with /", c.Serve.LivePath)
	}
	if c.Protocol.MaxFrameSize < 0 || c.Protocol.MaxNodeDepth < 0 {
		return errors.New("E062").
			WithDetail("protocol limits must not be negative")
	}
	if _, ok := logLevels[strings.ToLower(c.Log.Level)]; !ok {
		return errors.New("E062").
			WithDetailf("log.level %q must be one of debug, info, warn, error", c.Log.Level)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return errors.New("E062").
			WithDetailf("log.format %q must be text or json", c.Log.Format)
	}
	return nil
}

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// LogLevel returns the configured slog level, defaulting to info.
func (c *Config) LogLevel() slog.Level {
	if level, ok := logLevels[strings.ToLower(c.Log.Level)]; ok {
		return level
	}
	return slog.LevelInfo
}

// ShutdownTimeout returns the parsed shutdown timeout.
func (c *Config) ShutdownTimeout() time.Duration {
	d, err := time.ParseDuration(c.Serve.ShutdownTimeout)
	if err != nil {
		return 10 * time.Second
	}
	return d
}

// Address returns the host:port the server listens on.
func (c *Config) Address() string {
	return c.Serve.Host + ":" + strconv.Itoa(c.Serve.Port)
}

// URL returns the base URL of the server.
func (c *Config) URL() string {
	return "http://" + c.Address()
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// FindProjectRoot walks up directories to find the project root.
// Returns the directory containing vattr.json, or an error if not found.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("E060").
				WithDetail("No " + ConfigFileName + " found in " + startDir + " or any parent directory")
		}
		dir = parent
	}
}
