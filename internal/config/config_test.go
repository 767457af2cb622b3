package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"BLACKJACK_PORT",
		"BLACKJACK_FRONTEND_URL",
		"BLACKJACK_DEFAULT_DECKS",
		"BLACKJACK_MAX_DECKS",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, Config{
		Port:         "8080",
		FrontendURL:  "http://localhost:5173",
		DefaultDecks: 6,
		MaxDecks:     8,
	}, cfg)
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestLoad_Env(t *testing.T) {
	clearEnv(t)
	t.Setenv("BLACKJACK_PORT", "9090")
	t.Setenv("BLACKJACK_DEFAULT_DECKS", "2")
	t.Setenv("BLACKJACK_MAX_DECKS", "4")

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 2, cfg.DefaultDecks)
	assert.Equal(t, 4, cfg.MaxDecks)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("BLACKJACK_PORT", "9090")
	t.Setenv("BLACKJACK_DEFAULT_DECKS", "2")

	cfg, err := Load([]string{"-port", "7070", "-decks", "1", "-frontend", "http://example.test"})
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, 1, cfg.DefaultDecks)
	assert.Equal(t, "http://example.test", cfg.FrontendURL)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"default above max", nil, []string{"-decks", "9"}},
		{"zero default", nil, []string{"-decks", "0"}},
		{"zero max", nil, []string{"-max-decks", "0", "-decks", "0"}},
		{"port not numeric", map[string]string{"BLACKJACK_PORT": "http"}, nil},
		{"negative port", nil, []string{"-port", "-1"}},
		{"port out of range", map[string]string{"BLACKJACK_PORT": "70000"}, nil},
		{"zero port", nil, []string{"-port", "0"}},
		{"deck env not numeric", map[string]string{"BLACKJACK_DEFAULT_DECKS": "six"}, nil},
		{"unknown flag", nil, []string{"-tables", "3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(tt.args)
			require.Error(t, err)
		})
	}
}
