package publish

import (
	"context"
	"log/slog"
	"mime"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/vango-dev/vattr/internal/errors"
)

// DefaultContentType is used when a name has no recognised extension.
const DefaultContentType = "text/html; charset=utf-8"

// Store writes named documents to a publish target.
type Store interface {
	// Put stores data under name and returns where it was written.
	Put(ctx context.Context, name string, data []byte) (string, error)
}

// Target is a parsed publish destination.
type Target struct {
	// Bucket is set for S3 targets and empty for directories.
	Bucket string

	// Path is the directory, or the key prefix within Bucket.
	Path string
}

// IsS3 reports whether the target names an S3 bucket.
func (t Target) IsS3() bool {
	return t.Bucket != ""
}

// String returns the target in the form ParseTarget accepts.
func (t Target) String() string {
	if t.IsS3() {
		return "s3://" + t.Bucket + "/" + t.Path
	}
	return t.Path
}

// ParseTarget parses a directory path or an s3://bucket/prefix URL.
func ParseTarget(s string) (Target, error) {
	if s == "" {
		return Target{}, errors.New("E080").WithDetail("empty publish target")
	}
	if !strings.Contains(s, "://") {
		return Target{Path: filepath.Clean(s)}, nil
	}

	u, err := url.Parse(s)
	if err != nil {
		return Target{}, errors.New("E080").Wrap(err)
	}
	if u.Scheme != "s3" {
		return Target{}, errors.New("E080").
			WithDetailf("unsupported scheme %q", u.Scheme).
			WithSuggestion("Use a directory path or s3://bucket/prefix")
	}
	if u.Host == "" {
		return Target{}, errors.New("E080").WithDetailf("%q has no bucket", s)
	}
	return Target{Bucket: u.Host, Path: strings.TrimPrefix(u.Path, "/")}, nil
}

// Options configures Open.
type Options struct {
	// Region is the S3 region. Default: us-east-1.
	Region string

	// Endpoint overrides the S3 endpoint, for S3-compatible stores.
	Endpoint string

	Logger *slog.Logger
}

// Open returns the Store for target.
func Open(ctx context.Context, target string, opts Options) (Store, error) {
	t, err := ParseTarget(target)
	if err != nil {
		return nil, err
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	logger := opts.Logger.With("component", "publish", "target", t.String())

	if t.IsS3() {
		return &S3Store{
			client: NewS3Client(opts.Region, opts.Endpoint),
			bucket: t.Bucket,
			prefix: t.Path,
			logger: logger,
		}, nil
	}
	return &FileStore{Dir: t.Path, logger: logger}, nil
}

// cleanName validates a document name and returns it in slash form.
// Names must be relative and stay inside the target.
func cleanName(name string) (string, error) {
	clean := path.Clean(filepath.ToSlash(name))
	if name == "" || clean == "." || path.IsAbs(clean) ||
		clean == ".." || strings.HasPrefix(clean, "../") {
		return "", errors.New("E080").WithDetailf("invalid document name %q", name)
	}
	return clean, nil
}

// contentType returns the MIME type for name based on its extension.
func contentType(name string) string {
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		return ct
	}
	return DefaultContentType
}

// FileStore writes documents below a directory.
type FileStore struct {
	Dir    string
	logger *slog.Logger
}

// NewFileStore creates a FileStore rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{Dir: dir, logger: slog.Default()}
}

// Put writes data to Dir/name, creating parent directories as needed.
func (s *FileStore) Put(ctx context.Context, name string, data []byte) (string, error) {
	clean, err := cleanName(name)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", errors.New("E081").Wrap(err)
	}

	dest := filepath.Join(s.Dir, filepath.FromSlash(clean))
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return "", errors.New("E081").Wrap(err)
	}
	if err := os.WriteFile(dest, data, 0644); err != nil {
		return "", errors.New("E081").Wrap(err)
	}

	if s.logger != nil {
		s.logger.Debug("published", "path", dest, "bytes", len(data))
	}
	return dest, nil
}
