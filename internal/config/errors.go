package config

import "errors"

var (
	ErrInvalidPort   = errors.New("invalid port")
	ErrInvalidConfig = errors.New("invalid config")
	ErrInvalidHeader = errors.New("invalid header")
)

// File loading errors
var (
	ErrReadFile       = errors.New("failed to read config file")
	ErrParseToml      = errors.New("failed to parse TOML")
	ErrInterpolateEnv = errors.New("failed to interpolate environment variables")
)
