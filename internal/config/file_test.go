package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFile = `
games_root = "${GAMES_DIR:./games}"

[[games]]
name = "arena"

[[games]]
name = "lobby"
dir = "${LOBBY_DIR}"

[[examples]]
name = "payload-game"
dir = "./sdk-examples/payload-game"

[headers]
"X-Dev-Server" = "hytopia-${STAGE:local}"

[tunnel]
domain = "${TUNNEL_DOMAIN:}"
service = "http://hytopia-dev:8080"
`

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dev.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseFile(t *testing.T) {
	t.Parallel()

	f, err := ParseFile([]byte(sampleFile), envLookup(map[string]string{
		"LOBBY_DIR":     "/srv/lobby",
		"TUNNEL_DOMAIN": "dev.example.com",
	}))
	require.NoError(t, err)

	assert.Equal(t, "./games", f.GamesRoot)
	require.Len(t, f.Games, 2)
	assert.Equal(t, "arena", f.Games[0].Name)
	assert.Empty(t, f.Games[0].Dir)
	assert.Equal(t, "/srv/lobby", f.Games[1].Dir)
	require.Len(t, f.Examples, 1)
	assert.Equal(t, "./sdk-examples/payload-game", f.Examples[0].Dir)
	assert.Equal(t, "hytopia-local", f.Headers["X-Dev-Server"])
	assert.Equal(t, "dev.example.com", f.Tunnel.Domain)
	assert.Equal(t, "http://hytopia-dev:8080", f.Tunnel.Service)

	c := f.Catalog()
	assert.Equal(t, "./games", c.GamesRoot)
	assert.Len(t, c.Games, 2)
}

func TestParseFile_Errors(t *testing.T) {
	t.Parallel()

	t.Run("bad toml", func(t *testing.T) {
		_, err := ParseFile([]byte("games = [[["), envLookup(nil))
		require.ErrorIs(t, err, ErrParseToml)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := ParseFile([]byte(`prot = 8080`), envLookup(nil))
		require.ErrorIs(t, err, ErrParseToml)
	})

	t.Run("missing env reference", func(t *testing.T) {
		_, err := ParseFile([]byte(sampleFile), envLookup(nil))
		require.ErrorIs(t, err, ErrInterpolateEnv)
		assert.Contains(t, err.Error(), "LOBBY_DIR")
	})
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	t.Run("reads and records path", func(t *testing.T) {
		path := writeFile(t, `[[games]]
name = "arena"
`)
		f, err := LoadFile(path, envLookup(nil))
		require.NoError(t, err)
		assert.Equal(t, path, f.Path)
		assert.Len(t, f.Games, 1)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"), envLookup(nil))
		require.ErrorIs(t, err, ErrReadFile)
	})

	t.Run("parse error names the file", func(t *testing.T) {
		path := writeFile(t, "not toml at all = = =")
		_, err := LoadFile(path, envLookup(nil))
		require.ErrorIs(t, err, ErrParseToml)
		assert.Contains(t, err.Error(), path)
	})

	t.Run("nil file catalog", func(t *testing.T) {
		var f *File
		assert.True(t, f.Catalog().IsEmpty())
	})
}
