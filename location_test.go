package mimedetector

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// fakeStater answers Stat from a fixed set of names
type fakeStater struct {
	names map[string]bool
	calls int
}

func (f *fakeStater) Stat(name string) (os.FileInfo, error) {
	f.calls++
	if f.names[name] {
		return nil, nil
	}
	return nil, os.ErrNotExist
}

// failingStater fails the test when an existence check is made
type failingStater struct {
	t *testing.T
}

func (f failingStater) Stat(name string) (os.FileInfo, error) {
	f.t.Errorf("unexpected Stat(%q)", name)
	return nil, errors.New("unexpected stat")
}

func TestCheckFileLocation(t *testing.T) {
	tmpDir := t.TempDir()
	filePath := filepath.Join(tmpDir, "README.md")
	if err := os.WriteFile(filePath, []byte("# readme"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	tests := []struct {
		name string
		path string
		want Location
	}{
		{name: "https url", path: "https://example.com/file.pdf", want: LocationRemote},
		{name: "unreachable url", path: "http://127.0.0.1:1/file.pdf", want: LocationRemote},
		{name: "ftp url", path: "ftp://files.example.com/archive.zip", want: LocationRemote},
		{name: "existing file", path: filePath, want: LocationLocal},
		{name: "existing directory", path: tmpDir, want: LocationLocal},
		{name: "missing relative path", path: "nonexistent/file.pdf", want: LocationInvalid},
		{name: "empty string", path: "", want: LocationInvalid},
		{name: "bare hostname", path: "example.com/file", want: LocationInvalid},
		{name: "file url without host", path: "file:///nonexistent/file.pdf", want: LocationInvalid},
		{name: "scheme without host", path: "mailto:someone@example.com", want: LocationInvalid},
		{name: "unparsable url", path: "http://[::1/file", want: LocationInvalid},
	}

	d := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.CheckFileLocation(tt.path); got != tt.want {
				t.Errorf("CheckFileLocation(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestCheckFileLocation_RemoteSkipsFilesystem(t *testing.T) {
	d := New(WithFileStater(failingStater{t: t}))

	if got := d.CheckFileLocation("https://example.com/file.pdf"); got != LocationRemote {
		t.Errorf("CheckFileLocation() = %v, want %v", got, LocationRemote)
	}
}

func TestCheckFileLocation_CustomStater(t *testing.T) {
	stater := &fakeStater{names: map[string]bool{"docs/guide.pdf": true}}
	d := New(WithFileStater(stater))

	if got := d.CheckFileLocation("docs/guide.pdf"); got != LocationLocal {
		t.Errorf("CheckFileLocation(docs/guide.pdf) = %v, want %v", got, LocationLocal)
	}
	if got := d.CheckFileLocation("docs/missing.pdf"); got != LocationInvalid {
		t.Errorf("CheckFileLocation(docs/missing.pdf) = %v, want %v", got, LocationInvalid)
	}
	if got := d.CheckFileLocation(""); got != LocationInvalid {
		t.Errorf("CheckFileLocation(\"\") = %v, want %v", got, LocationInvalid)
	}
	if stater.calls != 2 {
		t.Errorf("Stat calls = %d, want 2", stater.calls)
	}
}

func TestLocationString(t *testing.T) {
	tests := []struct {
		loc  Location
		want string
	}{
		{LocationLocal, "local"},
		{LocationRemote, "remote"},
		{LocationInvalid, ""},
	}

	for _, tt := range tests {
		if got := tt.loc.String(); got != tt.want {
			t.Errorf("Location(%d).String() = %q, want %q", tt.loc, got, tt.want)
		}
	}
}
