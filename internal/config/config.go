// Package config holds the startup configuration of the dev server.
//
// A Config is built once in main and handed by value to the bootstrap. Nothing
// below the entry point reads the process environment; callers pass a
// LookupFunc (normally os.LookupEnv) instead.
package config

import (
	"errors"
	"fmt"
	"maps"
	"net"
	"strconv"
	"strings"

	"github.com/atlanticdynamic/hytopia-dev/internal/catalog"
	"golang.org/x/net/http/httpguts"
)

// Config is the startup configuration passed to the engine constructor.
type Config struct {
	Port int
	// Development is always true for configs built by New.
	Development bool

	// Catalog lists the bundles the engine serves. Dirs are resolved.
	Catalog catalog.Catalog

	// Headers are added to every response in development mode.
	Headers map[string]string

	// Source names where the optional file settings came from, if anywhere.
	Source string
}

// Option adjusts a Config during New.
type Option func(*Config)

// WithCatalog sets the bundle catalog. Entry dirs are resolved by New.
func WithCatalog(c catalog.Catalog) Option {
	return func(cfg *Config) {
		cfg.Catalog = c
	}
}

// WithHeaders sets extra development response headers.
func WithHeaders(h map[string]string) Option {
	return func(cfg *Config) {
		cfg.Headers = maps.Clone(h)
	}
}

// WithSource records the config file path.
func WithSource(path string) Option {
	return func(cfg *Config) {
		cfg.Source = path
	}
}

// WithFile applies the catalog and headers from a loaded file. File entries
// win over catalog entries already set with the same name.
func WithFile(f *File) Option {
	return func(cfg *Config) {
		if f == nil {
			return
		}
		cfg.Catalog = f.Catalog().Merge(cfg.Catalog)
		if len(f.Headers) > 0 {
			WithHeaders(f.Headers)(cfg)
		}
		WithSource(f.Path)(cfg)
	}
}

// New builds a validated Config with the development flag set.
func New(port int, opts ...Option) (Config, error) {
	cfg := Config{
		Port:        port,
		Development: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.Development = true
	cfg.Catalog = cfg.Catalog.Resolve()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// FromEnv resolves the port through lookup and builds the Config.
func FromEnv(lookup LookupFunc, opts ...Option) (Config, error) {
	port, err := DeterminePort(lookup)
	if err != nil {
		return Config{}, err
	}
	return New(port, opts...)
}

// Validate checks the port, the catalog, and the header set.
func (c Config) Validate() error {
	var errs []error
	if err := validatePort(c.Port); err != nil {
		errs = append(errs, err)
	}
	if err := c.Catalog.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidConfig, err))
	}
	for k, v := range c.Headers {
		if err := validateHeader(k, v); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Address is the listen address for the port on all interfaces.
func (c Config) Address() string {
	return net.JoinHostPort("", strconv.Itoa(c.Port))
}

func validateHeader(key, value string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidHeader)
	}
	if !httpguts.ValidHeaderFieldName(key) {
		return fmt.Errorf("%w: name %q", ErrInvalidHeader, key)
	}
	if !httpguts.ValidHeaderFieldValue(value) {
		return fmt.Errorf("%w: value for %s", ErrInvalidHeader, key)
	}
	return nil
}
