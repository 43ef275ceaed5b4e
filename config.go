package mimedetector

import (
	"fmt"
	"net/http"
	"net/textproto"
	"os"
	"strings"
	"time"

	"github.com/gobeaver/beaver-kit/config"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Upper bound of a remote lookup, as a Go duration string
	Timeout string `env:"MIMEDETECT_TIMEOUT,default:30s"`

	// User-Agent sent with remote lookups (empty keeps the client default)
	UserAgent string `env:"MIMEDETECT_USER_AGENT"`

	// Extra headers for remote lookups, comma-separated Name=value pairs.
	// A segment without a name continues the previous value.
	Headers string `env:"MIMEDETECT_HEADERS"`

	// Log diagnostics for failed remote lookups
	Debug bool `env:"MIMEDETECT_DEBUG,default:false"`

	// Local lookup tables
	SystemTable   bool `env:"MIMEDETECT_SYSTEM_TABLE,default:true"`
	LinguistTable bool `env:"MIMEDETECT_LINGUIST_TABLE,default:false"`
}

// GetConfig returns config loaded from environment
func GetConfig() (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FileConfig is the YAML overlay accepted by LoadConfigFile
type FileConfig struct {
	Timeout   string            `yaml:"timeout"`
	UserAgent string            `yaml:"user_agent"`
	Debug     *bool             `yaml:"debug"`
	Headers   map[string]string `yaml:"headers"`
}

// LoadConfigFile reads a YAML overlay from path
func LoadConfigFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	fc := &FileConfig{}
	if err := yaml.Unmarshal(data, fc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return fc, nil
}

// Apply copies the scalar settings of the overlay onto cfg. Headers are
// handed over separately through Options.
func (fc *FileConfig) Apply(cfg *Config) {
	if fc.Timeout != "" {
		cfg.Timeout = fc.Timeout
	}
	if fc.UserAgent != "" {
		cfg.UserAgent = fc.UserAgent
	}
	if fc.Debug != nil {
		cfg.Debug = *fc.Debug
	}
}

// Options returns the detector options carried by the overlay
func (fc *FileConfig) Options() []Option {
	if len(fc.Headers) == 0 {
		return nil
	}
	return []Option{WithHeaders(fc.Headers)}
}

// ParseHeader splits a "Name: value" or "Name=value" pair
func ParseHeader(s string) (string, string, error) {
	idx := strings.IndexAny(s, ":=")
	if idx <= 0 {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidHeader, s)
	}
	name := strings.TrimSpace(s[:idx])
	value := strings.TrimSpace(s[idx+1:])
	if !isHeaderToken(name) {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidHeader, s)
	}
	return textproto.CanonicalMIMEHeaderKey(name), value, nil
}

// ParseHeaders parses a comma-separated list of header pairs. A segment that
// does not start with a header name continues the previous value, so
// "Accept=text/html, */*" yields a single Accept header.
func ParseHeaders(s string) (map[string]string, error) {
	var pairs []string
	for _, segment := range strings.Split(s, ",") {
		if strings.TrimSpace(segment) == "" {
			continue
		}
		if startsHeaderPair(segment) || len(pairs) == 0 {
			pairs = append(pairs, segment)
			continue
		}
		pairs[len(pairs)-1] += "," + segment
	}

	headers := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		name, value, err := ParseHeader(pair)
		if err != nil {
			return nil, err
		}
		headers[name] = value
	}
	return headers, nil
}

func startsHeaderPair(segment string) bool {
	idx := strings.IndexAny(segment, ":=")
	return idx > 0 && isHeaderToken(strings.TrimSpace(segment[:idx]))
}

// isHeaderToken reports whether name is a valid RFC 7230 field name
func isHeaderToken(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z', '0' <= r && r <= '9':
		case strings.ContainsRune("!#$%&'*+-.^_`|~", r):
		default:
			return false
		}
	}
	return true
}

// validateConfig checks configuration validity
func validateConfig(cfg *Config) error {
	if cfg.Timeout != "" {
		timeout, err := time.ParseDuration(cfg.Timeout)
		if err != nil {
			return fmt.Errorf("%w: timeout %q: %v", ErrInvalidConfig, cfg.Timeout, err)
		}
		if timeout <= 0 {
			return fmt.Errorf("%w: timeout must be positive", ErrInvalidConfig)
		}
	}
	if _, err := ParseHeaders(cfg.Headers); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// configOptions turns a validated config into detector options
func configOptions(cfg *Config) []Option {
	var options []Option

	if cfg.Timeout != "" {
		timeout, _ := time.ParseDuration(cfg.Timeout)
		options = append(options, WithTimeout(timeout))
	}

	headers, _ := ParseHeaders(cfg.Headers)
	if cfg.UserAgent != "" {
		headers[http.CanonicalHeaderKey("User-Agent")] = cfg.UserAgent
	}
	if len(headers) > 0 {
		options = append(options, WithHeaders(headers))
	}

	options = append(options,
		WithDebug(cfg.Debug),
		WithTable(DefaultTable().WithSystem(cfg.SystemTable).WithLinguist(cfg.LinguistTable)),
	)

	return options
}
