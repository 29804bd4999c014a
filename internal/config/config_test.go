package config

import (
	"testing"

	"blackjack/internal/game"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "./blackjack.db", cfg.DatabasePath)
	assert.False(t, cfg.LedgerEnabled, "nothing is written to disk unless asked")
	assert.Equal(t, "en", cfg.Language)
	assert.Equal(t, 7, cfg.MaxPlayers)
	assert.Equal(t, game.DefaultRules(), cfg.Rules())
	assert.Error(t, cfg.RequireBotToken())
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("DATABASE_PATH", "/tmp/ledger.db")
	t.Setenv("LEDGER_ENABLED", "true")
	t.Setenv("TABLE_LANGUAGE", "ko")
	t.Setenv("MAX_PLAYERS", "3")
	t.Setenv("BLACKJACK_PAYS", "2")
	t.Setenv("DEALER_STAND_THRESHOLD", "15")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.NoError(t, cfg.RequireBotToken())
	assert.True(t, cfg.LedgerEnabled)
	assert.Equal(t, "/tmp/ledger.db", cfg.DatabasePath)
	assert.Equal(t, "ko", cfg.Language)
	assert.Equal(t, 3, cfg.MaxPlayers)
	assert.Equal(t, game.Rules{StandThreshold: 15, NaturalPayout: 2}, cfg.Rules())
}

func TestParseRejectsBadValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"MAX_PLAYERS", "0"},
		{"MAX_PLAYERS", "26"},
		{"MAX_PLAYERS", "many"},
		{"BLACKJACK_PAYS", "0"},
		{"DEALER_STAND_THRESHOLD", "21"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Parse()
			assert.Error(t, err)
		})
	}
}
