package tunnel

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/atlanticdynamic/hytopia-dev/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const template = `tunnel: hytopia
ingress:
${DYNAMIC_EXAMPLES}
${DYNAMIC_ROUTES}
  - service: http_status:404
`

func entries(names ...string) []catalog.Entry {
	out := make([]catalog.Entry, len(names))
	for i, n := range names {
		out[i] = catalog.Entry{Name: n}
	}
	return out
}

func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		service  string
		games    []catalog.Entry
		examples []catalog.Entry
		want     string
	}{
		{
			name:     "games and examples",
			games:    entries("arena"),
			examples: entries("payload-game", "hygrounds"),
			want: `tunnel: hytopia
ingress:
  - hostname: "payload-game.dev.example.com"
    service: http://hytopia-dev:8080/examples/payload-game
  - hostname: "hygrounds.dev.example.com"
    service: http://hytopia-dev:8080/examples/hygrounds
  - hostname: "arena.dev.example.com"
    service: http://hytopia-dev:8080/arena
  - service: http_status:404
`,
		},
		{
			name: "empty lists",
			want: "tunnel: hytopia\ningress:\n\n\n  - service: http_status:404\n",
		},
		{
			name:    "custom service with trailing slash",
			service: "http://localhost:3000/",
			games:   entries("arena"),
			want: `tunnel: hytopia
ingress:

  - hostname: "arena.dev.example.com"
    service: http://localhost:3000/arena
  - service: http_status:404
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(template, "dev.example.com", tt.service, tt.games, tt.examples)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRender_MissingDomain(t *testing.T) {
	t.Parallel()
	_, err := Render(template, "  ", "", nil, nil)
	require.ErrorIs(t, err, ErrMissingDomain)
}

func TestRule_String(t *testing.T) {
	t.Parallel()
	r := Rule{Hostname: "arena.dev.example.com", Service: "http://hytopia-dev:8080/arena"}
	assert.Equal(t, "  - hostname: \"arena.dev.example.com\"\n    service: http://hytopia-dev:8080/arena", r.String())

	t.Run("hostname is not escaped", func(t *testing.T) {
		r := Rule{Hostname: `caf\u00e9.dev\example.com`, Service: "http://hytopia-dev:8080/cafe"}
		assert.Equal(t, "  - hostname: \""+`caf\u00e9.dev\example.com`+"\"\n    service: http://hytopia-dev:8080/cafe", r.String())
	})
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tmplPath := filepath.Join(dir, "config.template.yml")
	require.NoError(t, os.WriteFile(tmplPath, []byte(template), 0o644))
	outPath := filepath.Join(dir, "out", "config.yml")

	written, err := Generate(Options{
		TemplatePath: tmplPath,
		OutputPath:   outPath,
		Domain:       "dev.example.com",
		Games:        entries("arena"),
	})
	require.NoError(t, err)
	assert.Equal(t, outPath, written)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "service: http://hytopia-dev:8080/arena")
	assert.NotContains(t, string(data), RoutesPlaceholder)
	assert.NotContains(t, string(data), ExamplesPlaceholder)
}

func TestGenerate_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing template", func(t *testing.T) {
		_, err := Generate(Options{
			TemplatePath: filepath.Join(t.TempDir(), "nope.yml"),
			Domain:       "dev.example.com",
		})
		require.ErrorIs(t, err, ErrReadTemplate)
	})

	t.Run("missing domain", func(t *testing.T) {
		dir := t.TempDir()
		tmplPath := filepath.Join(dir, "t.yml")
		require.NoError(t, os.WriteFile(tmplPath, []byte(template), 0o644))
		_, err := Generate(Options{TemplatePath: tmplPath, OutputPath: filepath.Join(dir, "o.yml")})
		require.ErrorIs(t, err, ErrMissingDomain)
	})
}
