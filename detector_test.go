package mimedetector

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// failingTransport fails the test when a request is attempted
type failingTransport struct {
	t *testing.T
}

func (f failingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	f.t.Errorf("unexpected request %s %s", req.Method, req.URL)
	return nil, errors.New("unexpected request")
}

func createFile(t *testing.T, dir, name string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte("content"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	return path
}

func TestGetMIME_Local(t *testing.T) {
	tmpDir := t.TempDir()
	d := New(WithTable(DefaultTable().WithSystem(false)))
	ctx := context.Background()

	tests := []struct {
		name   string
		file   string
		want   string
		wantOK bool
	}{
		{name: "markdown", file: "README.md", want: "text/markdown", wantOK: true},
		{name: "compound extension", file: "archive.tar.gz", want: "application/gzip", wantOK: true},
		{name: "pdf", file: "docs/manual.pdf", want: "application/pdf", wantOK: true},
		{name: "no extension", file: "LICENSE", wantOK: false},
		{name: "unknown extension", file: "data.zzqx", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := createFile(t, tmpDir, tt.file)

			got, ok := d.GetMIME(ctx, path)
			if ok != tt.wantOK {
				t.Fatalf("GetMIME(%q) ok = %v, want %v", tt.file, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("GetMIME(%q) = %q, want %q", tt.file, got, tt.want)
			}
		})
	}
}

func TestGetMIME_InvalidPerformsNoLookup(t *testing.T) {
	client := &http.Client{Transport: failingTransport{t: t}}
	d := New(WithHTTPClient(client))
	ctx := context.Background()

	for _, path := range []string{"", "nonexistent/file.pdf", "example.com/file.pdf"} {
		got, ok := d.GetMIME(ctx, path)
		if ok || got != "" {
			t.Errorf("GetMIME(%q) = (%q, %v), want no result", path, got, ok)
		}

		res := d.Detect(ctx, path)
		if res.Location != LocationInvalid {
			t.Errorf("Detect(%q).Location = %v, want invalid", path, res.Location)
		}
		if res.Err != nil {
			t.Errorf("Detect(%q).Err = %v, want nil", path, res.Err)
		}
	}
}

func TestDetect_Local(t *testing.T) {
	path := createFile(t, t.TempDir(), "notes.md")
	d := New()

	res := d.Detect(context.Background(), path)
	if res.Location != LocationLocal {
		t.Errorf("Location = %v, want local", res.Location)
	}
	if !res.Found || res.MIMEType != "text/markdown" {
		t.Errorf("MIMEType = (%q, %v), want text/markdown", res.MIMEType, res.Found)
	}
	if res.Source != SourceTable {
		t.Errorf("Source = %q, want %q", res.Source, SourceTable)
	}
	if res.Path != path {
		t.Errorf("Path = %q, want %q", res.Path, path)
	}
}

func TestResolveLocal_FileRemovedAfterClassification(t *testing.T) {
	path := createFile(t, t.TempDir(), "report.pdf")
	d := New()

	if loc := d.CheckFileLocation(path); loc != LocationLocal {
		t.Fatalf("CheckFileLocation() = %v, want local", loc)
	}
	if err := os.Remove(path); err != nil {
		t.Fatalf("Failed to remove file: %v", err)
	}

	got, ok := d.ResolveLocal(path)
	if !ok || got != "application/pdf" {
		t.Errorf("ResolveLocal() = (%q, %v), want application/pdf", got, ok)
	}
}

func TestGetMIME_CustomTable(t *testing.T) {
	stater := &fakeStater{names: map[string]bool{"notebook.ipynb": true}}
	table := NewTable(map[string]string{".ipynb": "application/x-ipynb+json"})
	d := New(WithTable(table), WithFileStater(stater))

	got, ok := d.GetMIME(context.Background(), "notebook.ipynb")
	if !ok || got != "application/x-ipynb+json" {
		t.Errorf("GetMIME() = (%q, %v), want application/x-ipynb+json", got, ok)
	}
	if d.Table() != table {
		t.Error("Table() should return the configured table")
	}
}

func TestGetMIME_ConcurrentCallers(t *testing.T) {
	tmpDir := t.TempDir()
	paths := []string{
		createFile(t, tmpDir, "a.md"),
		createFile(t, tmpDir, "b.json"),
		createFile(t, tmpDir, "c.png"),
	}
	want := []string{"text/markdown", "application/json", "image/png"}

	d := New()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			idx := i % len(paths)
			if got, _ := d.GetMIME(ctx, paths[idx]); got != want[idx] {
				t.Errorf("GetMIME(%q) = %q, want %q", paths[idx], got, want[idx])
			}
		}(i)
	}
	wg.Wait()
}
