package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/atlanticdynamic/hytopia-dev/internal/catalog"
	"github.com/atlanticdynamic/hytopia-dev/internal/interpolation"
	gotoml "github.com/pelletier/go-toml/v2"
)

// File is the optional TOML settings file. String values may reference the
// environment as ${VAR} or ${VAR:default}.
//
//	games_root = "${GAMES_DIR:./games}"
//
//	[[games]]
//	name = "arena"
//
//	[[examples]]
//	name = "payload-game"
//	dir = "./sdk-examples/payload-game"
//
//	[headers]
//	"X-Dev-Server" = "hytopia"
//
//	[tunnel]
//	domain = "${TUNNEL_DOMAIN:}"
type File struct {
	GamesRoot    string            `toml:"games_root"    env_interpolation:"yes"`
	ExamplesRoot string            `toml:"examples_root" env_interpolation:"yes"`
	Games        []catalog.Entry   `toml:"games"         env_interpolation:"yes"`
	Examples     []catalog.Entry   `toml:"examples"      env_interpolation:"yes"`
	Headers      map[string]string `toml:"headers"       env_interpolation:"yes"`
	Tunnel       Tunnel            `toml:"tunnel"        env_interpolation:"yes"`

	// Path is where the file was read from; not part of the TOML.
	Path string `toml:"-"`
}

// Tunnel holds defaults for the tunnel config generator.
type Tunnel struct {
	Domain   string `toml:"domain"   env_interpolation:"yes"`
	Service  string `toml:"service"  env_interpolation:"yes"`
	Template string `toml:"template" env_interpolation:"yes"`
	Output   string `toml:"output"   env_interpolation:"yes"`
}

// Catalog returns the bundle catalog described by the file.
func (f *File) Catalog() catalog.Catalog {
	if f == nil {
		return catalog.Catalog{}
	}
	return catalog.Catalog{
		GamesRoot:    f.GamesRoot,
		ExamplesRoot: f.ExamplesRoot,
		Games:        f.Games,
		Examples:     f.Examples,
	}
}

// LoadFile reads and parses a settings file.
func LoadFile(path string, lookup LookupFunc) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFile, err)
	}

	f, err := ParseFile(data, lookup)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.Path = path
	return f, nil
}

// ParseFile decodes TOML bytes and expands environment references. Unknown
// keys are rejected so typos do not silently drop settings.
func ParseFile(data []byte, lookup LookupFunc) (*File, error) {
	f := &File{}
	dec := gotoml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseToml, err)
	}

	if err := interpolation.Struct(f, lookup); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInterpolateEnv, err)
	}
	return f, nil
}
