package catalog

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrParseList wraps YAML decoding failures from ParseList.
var ErrParseList = errors.New("failed to parse bundle list")

// ParseList decodes a YAML sequence such as `[{name: arena}, {name: lobby}]`,
// the format of the GAME_REPOS and EXAMPLES variables. An empty or blank
// input is an empty list. JSON arrays are accepted since they are valid YAML.
func ParseList(s string) ([]Entry, error) {
	if strings.TrimSpace(s) == "" {
		return []Entry{}, nil
	}

	var entries []Entry
	if err := yaml.Unmarshal([]byte(s), &entries); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseList, err)
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries, nil
}
