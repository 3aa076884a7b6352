package publish

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/vango-dev/vattr/internal/errors"
)

func TestParseTarget(t *testing.T) {
	tests := []struct {
		in      string
		want    Target
		wantErr bool
	}{
		{in: "dist", want: Target{Path: "dist"}},
		{in: "./out/site/", want: Target{Path: "out/site"}},
		{in: "s3://bucket", want: Target{Bucket: "bucket"}},
		{in: "s3://bucket/pages/", want: Target{Bucket: "bucket", Path: "pages/"}},
		{in: "s3://bucket/a/b", want: Target{Bucket: "bucket", Path: "a/b"}},
		{in: "", wantErr: true},
		{in: "s3:///key", wantErr: true},
		{in: "gs://bucket/key", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTarget(tt.in)
			if tt.wantErr {
				if errors.Code(err) != "E080" {
					t.Errorf("error = %v, want E080", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTarget() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseTarget() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTargetString(t *testing.T) {
	for _, s := range []string{"dist", "s3://bucket/pages/"} {
		target, err := ParseTarget(s)
		if err != nil {
			t.Fatal(err)
		}
		if target.String() != s {
			t.Errorf("String() = %q, want %q", target.String(), s)
		}
	}
}

func TestCleanName(t *testing.T) {
	tests := []struct {
		name string
		want string
		ok   bool
	}{
		{"index.html", "index.html", true},
		{"blog/post.html", "blog/post.html", true},
		{"./a/../b.html", "b.html", true},
		{"", "", false},
		{".", "", false},
		{"../escape.html", "", false},
		{"/abs.html", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cleanName(tt.name)
			if tt.ok != (err == nil) {
				t.Fatalf("cleanName(%q) error = %v, want ok=%v", tt.name, err, tt.ok)
			}
			if got != tt.want {
				t.Errorf("cleanName(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestContentType(t *testing.T) {
	if got := contentType("index.html"); got != "text/html; charset=utf-8" {
		t.Errorf("contentType(html) = %q", got)
	}
	if got := contentType("page"); got != DefaultContentType {
		t.Errorf("contentType(no ext) = %q", got)
	}
}

func TestFileStorePut(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)

	loc, err := store.Put(context.Background(), "blog/index.html", []byte("<p>hi</p>"))
	if err != nil {
		t.Fatalf("Put() error: %v", err)
	}
	if want := filepath.Join(dir, "blog", "index.html"); loc != want {
		t.Errorf("location = %q, want %q", loc, want)
	}
	data, err := os.ReadFile(loc)
	if err != nil || string(data) != "<p>hi</p>" {
		t.Errorf("file = %q, %v", data, err)
	}

	if _, err := store.Put(context.Background(), "../x.html", nil); errors.Code(err) != "E080" {
		t.Errorf("escaping name error = %v, want E080", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := store.Put(ctx, "late.html", nil); errors.Code(err) != "E081" {
		t.Errorf("cancelled error = %v, want E081", err)
	}
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	store, err := Open(ctx, t.TempDir(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := store.(*FileStore); !ok {
		t.Errorf("Open(dir) = %T, want *FileStore", store)
	}

	store, err = Open(ctx, "s3://bucket/site", Options{Endpoint: "http://localhost:9000"})
	if err != nil {
		t.Fatal(err)
	}
	s3store, ok := store.(*S3Store)
	if !ok {
		t.Fatalf("Open(s3) = %T, want *S3Store", store)
	}
	if s3store.bucket != "bucket" || s3store.Key("index.html") != "site/index.html" {
		t.Errorf("store = %s %s", s3store.bucket, s3store.Key("index.html"))
	}

	if _, err := Open(ctx, "ftp://host/x", Options{}); errors.Code(err) != "E080" {
		t.Errorf("Open(ftp) error = %v, want E080", err)
	}
}
