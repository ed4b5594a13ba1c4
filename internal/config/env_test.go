package config

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envLookup(env map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestDeterminePort(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		env     map[string]string
		want    int
		wantErr bool
	}{
		{name: "unset uses default", env: nil, want: 8080},
		{name: "empty uses default", env: map[string]string{EnvPort: ""}, want: 8080},
		{name: "blank uses default", env: map[string]string{EnvPort: "   "}, want: 8080},
		{name: "explicit port", env: map[string]string{EnvPort: "3000"}, want: 3000},
		{name: "surrounding whitespace", env: map[string]string{EnvPort: " 3000\n"}, want: 3000},
		{name: "lowest port", env: map[string]string{EnvPort: "1"}, want: 1},
		{name: "highest port", env: map[string]string{EnvPort: "65535"}, want: 65535},
		{name: "not a number", env: map[string]string{EnvPort: "notanumber"}, wantErr: true},
		{name: "trailing junk", env: map[string]string{EnvPort: "3000abc"}, wantErr: true},
		{name: "float", env: map[string]string{EnvPort: "80.5"}, wantErr: true},
		{name: "zero", env: map[string]string{EnvPort: "0"}, wantErr: true},
		{name: "negative", env: map[string]string{EnvPort: "-1"}, wantErr: true},
		{name: "too large", env: map[string]string{EnvPort: "65536"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DeterminePort(envLookup(tt.env))
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidPort)
				assert.Contains(t, err.Error(), EnvPort)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeterminePort_RoundTripsValidPorts(t *testing.T) {
	t.Parallel()
	for _, p := range []int{80, 443, 1024, 3000, 8080, 8081, 25565, 49152, 65535} {
		got, err := DeterminePort(envLookup(map[string]string{EnvPort: strconv.Itoa(p)}))
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
}

func TestCatalogFromEnv(t *testing.T) {
	t.Parallel()

	t.Run("unset", func(t *testing.T) {
		c, err := CatalogFromEnv(envLookup(nil))
		require.NoError(t, err)
		assert.True(t, c.IsEmpty())
	})

	t.Run("both lists", func(t *testing.T) {
		c, err := CatalogFromEnv(envLookup(map[string]string{
			EnvGameRepos: "[{name: arena}, {name: lobby}]",
			EnvExamples:  "[{name: payload-game}]",
		}))
		require.NoError(t, err)
		require.Len(t, c.Games, 2)
		require.Len(t, c.Examples, 1)
		assert.Equal(t, "payload-game", c.Examples[0].Name)
	})

	t.Run("malformed games", func(t *testing.T) {
		_, err := CatalogFromEnv(envLookup(map[string]string{EnvGameRepos: "[{name: arena"}))
		require.Error(t, err)
		assert.Contains(t, err.Error(), EnvGameRepos)
	})

	t.Run("malformed examples", func(t *testing.T) {
		_, err := CatalogFromEnv(envLookup(map[string]string{EnvExamples: "{"}))
		require.Error(t, err)
		assert.Contains(t, err.Error(), EnvExamples)
	})
}
