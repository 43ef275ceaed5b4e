package mimedetector

import (
	"log/slog"
	"net/http"
	"net/textproto"
	"time"
)

// DefaultTimeout bounds a remote lookup when no timeout is configured
const DefaultTimeout = 30 * time.Second

// Option represents a configuration option for a Detector
type Option func(*Options)

// Options contains everything a Detector is built from
type Options struct {
	// Headers are sent with every remote lookup
	Headers map[string]string

	// Timeout bounds a single remote lookup, including redirects
	Timeout time.Duration

	// HTTPClient overrides the client used for remote lookups. Its own
	// Timeout is left untouched.
	HTTPClient *http.Client

	// Logger receives diagnostics for failed remote lookups
	Logger *slog.Logger

	// Debug enables diagnostics on the logger
	Debug bool

	// Table resolves local extensions
	Table *Table

	// FileStater is used for local existence checks
	FileStater FileStater
}

// WithHeaders sets additional HTTP headers for remote lookups
func WithHeaders(headers map[string]string) Option {
	return func(o *Options) {
		if o.Headers == nil {
			o.Headers = make(map[string]string, len(headers))
		}
		for name, value := range headers {
			o.Headers[textproto.CanonicalMIMEHeaderKey(name)] = value
		}
	}
}

// WithHeader sets a single HTTP header for remote lookups
func WithHeader(name, value string) Option {
	return WithHeaders(map[string]string{name: value})
}

// WithTimeout sets the upper bound of a remote lookup
func WithTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		o.Timeout = timeout
	}
}

// WithHTTPClient sets the client used for remote lookups
func WithHTTPClient(client *http.Client) Option {
	return func(o *Options) {
		o.HTTPClient = client
	}
}

// WithLogger sets the diagnostic logger
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithDebug enables or disables diagnostics for remote lookups
func WithDebug(debug bool) Option {
	return func(o *Options) {
		o.Debug = debug
	}
}

// WithTable sets the extension table used for local lookups
func WithTable(table *Table) Option {
	return func(o *Options) {
		o.Table = table
	}
}

// WithFileStater sets the filesystem used for local existence checks
func WithFileStater(stater FileStater) Option {
	return func(o *Options) {
		o.FileStater = stater
	}
}

func processOptions(options ...Option) *Options {
	opts := &Options{}
	for _, option := range options {
		option(opts)
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Table == nil {
		opts.Table = DefaultTable()
	}
	if opts.FileStater == nil {
		opts.FileStater = osStater{}
	}
	return opts
}
