// Package writers resolves the --log-output setting into an io.Writer.
package writers

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Kind names where log output goes.
type Kind string

const (
	KindStdout Kind = "stdout"
	KindStderr Kind = "stderr"
	KindFile   Kind = "file"
)

// nopCloser is returned for the standard streams, which must stay open.
func nopCloser() error { return nil }

// Open resolves an output setting:
//   - "" or "stderr": os.Stderr
//   - "stdout": os.Stdout
//   - "file:///path" or any path containing a separator: appended file
//
// The returned close func is always non-nil.
func Open(output string) (io.Writer, func() error, error) {
	switch KindOf(output) {
	case KindStdout:
		return os.Stdout, nopCloser, nil
	case KindStderr:
		return os.Stderr, nopCloser, nil
	}

	path := strings.TrimPrefix(output, "file://")
	if strings.Contains(path, "://") {
		return nil, nopCloser, fmt.Errorf("unsupported output format: %s", output)
	}

	f, err := openFile(path)
	if err != nil {
		return nil, nopCloser, err
	}
	return f, f.Close, nil
}

// KindOf classifies an output setting without opening anything.
func KindOf(output string) Kind {
	switch strings.ToLower(strings.TrimSpace(output)) {
	case "", "stderr":
		return KindStderr
	case "stdout":
		return KindStdout
	default:
		return KindFile
	}
}

func openFile(path string) (*os.File, error) {
	if path == "" {
		return nil, fmt.Errorf("empty log file path")
	}

	dir := filepath.Dir(path)
	if dir != "." && dir != "/" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	return f, nil
}
