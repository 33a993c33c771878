package config

import (
	"os"
	"testing"
	"time"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type ConfigUnitSuite struct {
	suite.Suite
}

func setenv(t provider.T, kv map[string]string) {
	for k, v := range kv {
		prev, had := os.LookupEnv(k)
		_ = os.Setenv(k, v)
		t.Cleanup(func() {
			if had {
				_ = os.Setenv(k, prev)
				return
			}
			_ = os.Unsetenv(k)
		})
	}
}

func (s *ConfigUnitSuite) TestDefaults(t provider.T) {
	cfg := FromEnv()

	assert.Equal(t, 120*time.Second, cfg.Game.LobbyWindow)
	assert.Equal(t, 50, cfg.Game.LowThreshold)
	assert.Equal(t, 100, cfg.Game.HighThreshold)
	assert.Equal(t, 60*time.Second, cfg.Game.NormalLimit)
	assert.Equal(t, 30*time.Second, cfg.Game.ReducedLimit)
	assert.Equal(t, 15*time.Second, cfg.Game.SuddenDeathLimit)
	assert.Equal(t, 5, cfg.Game.MaxConsecutiveErrors)
	assert.Equal(t, "memory", cfg.Words.CacheBackend)
	assert.True(t, cfg.Words.DictionaryEnabled)
	assert.False(t, cfg.History.Enabled)
}

func (s *ConfigUnitSuite) TestOverrides(t provider.T) {
	setenv(t, map[string]string{
		"GAME_LOW_THRESHOLD":       "70",
		"GAME_HIGH_THRESHOLD":      "120",
		"GAME_COUNTDOWN":           "0s",
		"WORDS_DICTIONARY_ENABLED": "false",
		"HISTORY_ENABLED":          "true",
		"SESSION_TTL":              "1h",
	})

	cfg := FromEnv()

	assert.Equal(t, 70, cfg.Game.LowThreshold)
	assert.Equal(t, 120, cfg.Game.HighThreshold)
	assert.Equal(t, time.Duration(0), cfg.Game.Countdown)
	assert.False(t, cfg.Words.DictionaryEnabled)
	assert.True(t, cfg.History.Enabled)
	assert.Equal(t, time.Hour, cfg.Session.TTL)
}

func (s *ConfigUnitSuite) TestMalformedFallsBack(t provider.T) {
	setenv(t, map[string]string{
		"GAME_MAX_CONSECUTIVE_ERRORS": "many",
		"GAME_NORMAL_LIMIT":           "a minute",
		"HISTORY_ENABLED":             "perhaps",
	})

	cfg := FromEnv()

	assert.Equal(t, 5, cfg.Game.MaxConsecutiveErrors)
	assert.Equal(t, 60*time.Second, cfg.Game.NormalLimit)
	assert.False(t, cfg.History.Enabled)
}

func TestConfigUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(ConfigUnitSuite))
}
