package mimedetector

import (
	"net/url"
	"os"
)

// Location tells where a path points to
type Location int

const (
	// LocationInvalid means the path is neither a reachable URL form nor an
	// existing local file
	LocationInvalid Location = iota

	// LocationLocal means the path exists on the local filesystem
	LocationLocal

	// LocationRemote means the path parses as a URL with both scheme and host
	LocationRemote
)

// String returns "local", "remote" or the empty string for LocationInvalid
func (l Location) String() string {
	switch l {
	case LocationLocal:
		return "local"
	case LocationRemote:
		return "remote"
	default:
		return ""
	}
}

// FileStater reports file information for a local path. It lets callers
// swap the filesystem used for existence checks.
type FileStater interface {
	Stat(name string) (os.FileInfo, error)
}

type osStater struct{}

func (osStater) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// classify decides the location of path. Remote wins only when the URL has
// both a scheme and a host; no network I/O happens here.
func classify(stater FileStater, path string) Location {
	if isRemoteURL(path) {
		return LocationRemote
	}
	if path == "" {
		return LocationInvalid
	}
	if _, err := stater.Stat(path); err == nil {
		return LocationLocal
	}
	return LocationInvalid
}

func isRemoteURL(path string) bool {
	u, err := url.Parse(path)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}
