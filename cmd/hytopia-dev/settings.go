package main

import (
	"fmt"

	"github.com/atlanticdynamic/hytopia-dev/internal/catalog"
	"github.com/atlanticdynamic/hytopia-dev/internal/config"
)

// settings is everything read from the environment and the optional file.
type settings struct {
	Config config.Config
	File   *config.File
}

// readSources reads the catalog lists from the environment and the optional
// settings file at path.
func readSources(path string, lookup config.LookupFunc) (*config.File, catalog.Catalog, error) {
	envCatalog, err := config.CatalogFromEnv(lookup)
	if err != nil {
		return nil, catalog.Catalog{}, err
	}
	if path == "" {
		return nil, envCatalog, nil
	}

	file, err := config.LoadFile(path, lookup)
	if err != nil {
		return nil, catalog.Catalog{}, err
	}
	return file, envCatalog, nil
}

// loadSettings builds the startup configuration. File entries win over
// environment entries with the same name.
func loadSettings(path string, lookup config.LookupFunc) (settings, error) {
	file, envCatalog, err := readSources(path, lookup)
	if err != nil {
		return settings{}, err
	}

	cfg, err := config.FromEnv(lookup, config.WithCatalog(envCatalog), config.WithFile(file))
	if err != nil {
		return settings{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return settings{Config: cfg, File: file}, nil
}
