package mimedetector

import (
	"context"
	"log/slog"
	"net/http"
	"path/filepath"
	"strconv"
	"time"
)

// Detector guesses the MIME type of local paths and remote URLs. A Detector
// is immutable once built and safe for concurrent use.
type Detector struct {
	headers map[string]string
	timeout time.Duration
	client  *http.Client
	logger  *slog.Logger
	debug   bool
	table   *Table
	stater  FileStater
}

// Result is the outcome of a single detection. Err explains why a remote
// lookup came back empty; it is informational and never returned as a
// failure.
type Result struct {
	Path     string
	Location Location
	MIMEType string
	Found    bool
	Source   Source
	Err      error
}

// New creates a Detector with the given options
func New(options ...Option) *Detector {
	opts := processOptions(options...)

	headers := make(map[string]string, len(opts.Headers))
	for name, value := range opts.Headers {
		headers[name] = value
	}

	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{}
	}

	d := &Detector{
		headers: headers,
		timeout: opts.Timeout,
		client:  client,
		logger:  opts.Logger,
		debug:   opts.Debug,
		table:   opts.Table,
		stater:  opts.FileStater,
	}

	if d.debug {
		d.logger.Debug("mime table loaded",
			"entries", d.table.Len(),
			"fingerprint", strconv.FormatUint(d.table.Fingerprint(), 16),
			"timeout", d.timeout.String(),
		)
	}

	return d
}

// CheckFileLocation reports whether path is a remote URL, an existing local
// file, or neither. It never performs network I/O.
func (d *Detector) CheckFileLocation(path string) Location {
	return classify(d.stater, path)
}

// GetMIME classifies path and resolves its MIME type with the matching
// strategy. The second return value is false when no type could be found.
func (d *Detector) GetMIME(ctx context.Context, path string) (string, bool) {
	res := d.Detect(ctx, path)
	return res.MIMEType, res.Found
}

// Detect is like GetMIME but reports how the result was obtained
func (d *Detector) Detect(ctx context.Context, path string) Result {
	switch d.CheckFileLocation(path) {
	case LocationRemote:
		return d.resolveRemote(ctx, path)
	case LocationLocal:
		return d.resolveLocal(path)
	default:
		return Result{Path: path, Location: LocationInvalid}
	}
}

// ResolveLocal looks the extension of path up in the detector's table. The
// file itself is never read, so it may have disappeared in the meantime.
func (d *Detector) ResolveLocal(path string) (string, bool) {
	res := d.resolveLocal(path)
	return res.MIMEType, res.Found
}

func (d *Detector) resolveLocal(path string) Result {
	res := Result{Path: path, Location: LocationLocal}
	mimeType, source, ok := d.table.lookup(filepath.Ext(path))
	if ok {
		res.MIMEType = mimeType
		res.Source = source
		res.Found = true
	}
	return res
}

// Table returns the extension table used for local lookups
func (d *Detector) Table() *Table {
	return d.table
}
