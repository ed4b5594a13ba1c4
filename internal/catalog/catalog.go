// Package catalog describes the game and example bundles a dev engine serves.
//
// Games are mounted at /<name>/ and examples at /examples/<name>/. The same
// names become tunnel hostnames, so they must be valid DNS labels.
package catalog

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

const (
	// ExamplesPrefix is the URL path segment all examples are mounted under.
	ExamplesPrefix = "examples"

	DefaultGamesRoot    = "games"
	DefaultExamplesRoot = "examples"
)

var (
	ErrInvalidName   = errors.New("invalid bundle name")
	ErrDuplicateName = errors.New("duplicate bundle name")
	ErrReservedName  = errors.New("reserved bundle name")
)

var labelPattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]{0,61}[a-z0-9])?$`)

// Kind distinguishes games from examples.
type Kind string

const (
	KindGame    Kind = "game"
	KindExample Kind = "example"
)

// Entry is one servable bundle.
type Entry struct {
	Name string `toml:"name" yaml:"name"`
	Dir  string `toml:"dir"  yaml:"dir"  env_interpolation:"yes"`
}

// Catalog is the full set of bundles.
type Catalog struct {
	GamesRoot    string  `toml:"games_root"`
	ExamplesRoot string  `toml:"examples_root"`
	Games        []Entry `toml:"games"`
	Examples     []Entry `toml:"examples"`
}

// IsEmpty reports whether nothing would be mounted.
func (c Catalog) IsEmpty() bool {
	return len(c.Games) == 0 && len(c.Examples) == 0
}

// Merge appends entries from other whose names are not already present.
// Roots from c take precedence when set.
func (c Catalog) Merge(other Catalog) Catalog {
	out := Catalog{
		GamesRoot:    c.GamesRoot,
		ExamplesRoot: c.ExamplesRoot,
		Games:        appendMissing(c.Games, other.Games),
		Examples:     appendMissing(c.Examples, other.Examples),
	}
	if out.GamesRoot == "" {
		out.GamesRoot = other.GamesRoot
	}
	if out.ExamplesRoot == "" {
		out.ExamplesRoot = other.ExamplesRoot
	}
	return out
}

func appendMissing(dst, src []Entry) []Entry {
	out := make([]Entry, 0, len(dst)+len(src))
	seen := make(map[string]struct{}, len(dst)+len(src))
	for _, e := range dst {
		seen[e.Name] = struct{}{}
		out = append(out, e)
	}
	for _, e := range src {
		if _, ok := seen[e.Name]; ok {
			continue
		}
		seen[e.Name] = struct{}{}
		out = append(out, e)
	}
	return out
}

// Resolve returns a copy where every entry has a directory. Entries without
// one live under the matching root, named after the entry.
func (c Catalog) Resolve() Catalog {
	out := c
	if out.GamesRoot == "" {
		out.GamesRoot = DefaultGamesRoot
	}
	if out.ExamplesRoot == "" {
		out.ExamplesRoot = DefaultExamplesRoot
	}
	out.Games = resolveDirs(c.Games, out.GamesRoot)
	out.Examples = resolveDirs(c.Examples, out.ExamplesRoot)
	return out
}

func resolveDirs(entries []Entry, root string) []Entry {
	if entries == nil {
		return nil
	}
	out := make([]Entry, len(entries))
	for i, e := range entries {
		if e.Dir == "" {
			e.Dir = filepath.Join(root, e.Name)
		}
		out[i] = e
	}
	return out
}

// Validate checks names for both kinds and returns every problem found.
func (c Catalog) Validate() error {
	var errs []error
	errs = append(errs, validateEntries(KindGame, c.Games)...)
	errs = append(errs, validateEntries(KindExample, c.Examples)...)
	return errors.Join(errs...)
}

func validateEntries(kind Kind, entries []Entry) []error {
	var errs []error
	seen := make(map[string]struct{}, len(entries))
	for i, e := range entries {
		if err := ValidateName(e.Name); err != nil {
			errs = append(errs, fmt.Errorf("%s %d: %w", kind, i, err))
			continue
		}
		if kind == KindGame && e.Name == ExamplesPrefix {
			errs = append(errs, fmt.Errorf("%s %q: %w: collides with the examples tree", kind, e.Name, ErrReservedName))
		}
		if _, dup := seen[e.Name]; dup {
			errs = append(errs, fmt.Errorf("%s %q: %w", kind, e.Name, ErrDuplicateName))
		}
		seen[e.Name] = struct{}{}
	}
	return errs
}

// ValidateName checks that name is a lowercase DNS label.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidName)
	}
	if !labelPattern.MatchString(name) {
		return fmt.Errorf("%w: %q must be a lowercase DNS label", ErrInvalidName, name)
	}
	return nil
}

// Names returns the entry names in order.
func Names(entries []Entry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}
