package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atlanticdynamic/hytopia-dev/internal/catalog"
	"github.com/atlanticdynamic/hytopia-dev/internal/interpolation"
)

// Environment variables read at the program entry point.
const (
	EnvPort       = "HYTOPIA_PORT"
	EnvConfigFile = "HYTOPIA_CONFIG"
	EnvLogLevel   = "HYTOPIA_LOG_LEVEL"
	EnvGameRepos  = "GAME_REPOS"
	EnvExamples   = "EXAMPLES"
	EnvTunnel     = "TUNNEL_DOMAIN"
)

const (
	DefaultPort = 8080
	MinPort     = 1
	MaxPort     = 65535
)

// LookupFunc has the signature of os.LookupEnv. Everything in this package
// takes one instead of touching the process environment directly.
type LookupFunc = interpolation.LookupFunc

// DeterminePort resolves the listen port from HYTOPIA_PORT. Unset or blank
// yields DefaultPort; anything else must parse as a port number.
func DeterminePort(lookup LookupFunc) (int, error) {
	raw, ok := lookup(EnvPort)
	if !ok || strings.TrimSpace(raw) == "" {
		return DefaultPort, nil
	}

	port, err := ParsePort(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", EnvPort, err)
	}
	return port, nil
}

// ParsePort parses a decimal port in [MinPort, MaxPort].
func ParsePort(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	port, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidPort, raw)
	}
	if err := validatePort(port); err != nil {
		return 0, err
	}
	return port, nil
}

func validatePort(port int) error {
	if port < MinPort || port > MaxPort {
		return fmt.Errorf("%w: %d is outside %d-%d", ErrInvalidPort, port, MinPort, MaxPort)
	}
	return nil
}

// CatalogFromEnv reads the GAME_REPOS and EXAMPLES lists.
func CatalogFromEnv(lookup LookupFunc) (catalog.Catalog, error) {
	games, err := listFromEnv(lookup, EnvGameRepos)
	if err != nil {
		return catalog.Catalog{}, err
	}
	examples, err := listFromEnv(lookup, EnvExamples)
	if err != nil {
		return catalog.Catalog{}, err
	}
	return catalog.Catalog{Games: games, Examples: examples}, nil
}

func listFromEnv(lookup LookupFunc, key string) ([]catalog.Entry, error) {
	raw, _ := lookup(key)
	entries, err := catalog.ParseList(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return entries, nil
}
