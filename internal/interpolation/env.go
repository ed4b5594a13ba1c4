// Package interpolation expands environment references inside config file strings.
package interpolation

import (
	"errors"
	"fmt"
	"os"
	"regexp"
)

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Matches ${VAR_NAME} and ${VAR_NAME:default}; the colon is captured on its own.
var envVarWithDefaultPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(:)?([^}]*)\}`)

// ErrUndefinedVar is joined once per reference with no value and no default.
var ErrUndefinedVar = errors.New("environment variable not defined")

// Expand replaces ${VAR} and ${VAR:default} using lookup, or the process
// environment when lookup is nil. A set variable wins
// over the default, even when set to the empty string. Unresolved references
// are left in place and reported through the returned error.
func Expand(input string, lookup LookupFunc) (string, error) {
	if input == "" {
		return "", nil
	}
	if lookup == nil {
		lookup = os.LookupEnv
	}

	var missing []error
	result := envVarWithDefaultPattern.ReplaceAllStringFunc(input, func(match string) string {
		// [full_match, varName, colon, defaultValue]
		sub := envVarWithDefaultPattern.FindStringSubmatch(match)
		name, hasDefault, def := sub[1], sub[2] == ":", sub[3]

		if value, ok := lookup(name); ok {
			return value
		}
		if hasDefault {
			return def
		}

		missing = append(missing, fmt.Errorf("%w: %s", ErrUndefinedVar, name))
		return match
	})

	return result, errors.Join(missing...)
}
