package mimedetector

import (
	"context"
	"sync"

	"github.com/gobeaver/beaver-kit/config"
)

// Global instance
var (
	defaultDetector *Detector
	defaultOnce     sync.Once
	defaultErr      error
)

// Builder provides a way to create Detector instances with custom env prefixes
type Builder struct {
	prefix string
}

// WithPrefix creates a new Builder with the specified prefix
func WithPrefix(prefix string) *Builder {
	return &Builder{prefix: prefix}
}

// Init initializes the global Detector using the builder's prefix
func (b *Builder) Init() error {
	cfg := &Config{}
	if err := config.Load(cfg, config.LoadOptions{Prefix: b.prefix}); err != nil {
		return err
	}
	return Init(cfg)
}

// New creates a new Detector using the builder's prefix
func (b *Builder) New(options ...Option) (*Detector, error) {
	cfg := &Config{}
	if err := config.Load(cfg, config.LoadOptions{Prefix: b.prefix}); err != nil {
		return nil, err
	}
	return NewFromConfig(cfg, options...)
}

// Init initializes the global Detector
func Init(configs ...*Config) error {
	defaultOnce.Do(func() {
		var cfg *Config
		if len(configs) > 0 {
			cfg = configs[0]
		} else {
			cfg, defaultErr = GetConfig()
			if defaultErr != nil {
				return
			}
		}

		defaultDetector, defaultErr = NewFromConfig(cfg)
	})

	return defaultErr
}

// NewFromConfig creates a Detector from cfg. Options are applied after the
// config, so they take precedence.
func NewFromConfig(cfg *Config, options ...Option) (*Detector, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	all := configOptions(cfg)
	all = append(all, options...)
	return New(all...), nil
}

// NewFromEnv creates a Detector from environment variables
func NewFromEnv(options ...Option) (*Detector, error) {
	cfg, err := GetConfig()
	if err != nil {
		return nil, err
	}
	return NewFromConfig(cfg, options...)
}

// Default returns the global Detector, initializing it if needed
func Default() (*Detector, error) {
	if err := Init(); err != nil {
		return nil, err
	}
	return defaultDetector, nil
}

// GetMIME resolves path with the global Detector. It reports no result if
// the global Detector cannot be initialized.
func GetMIME(ctx context.Context, path string) (string, bool) {
	d, err := Default()
	if err != nil {
		return "", false
	}
	return d.GetMIME(ctx, path)
}

// CheckFileLocation classifies path with the global Detector
func CheckFileLocation(path string) Location {
	d, err := Default()
	if err != nil {
		return classify(osStater{}, path)
	}
	return d.CheckFileLocation(path)
}

// Reset clears the global instance (for testing)
func Reset() {
	defaultDetector = nil
	defaultOnce = sync.Once{}
	defaultErr = nil
}
