package config

import (
	"testing"

	"github.com/rs/zerolog"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv_Defaults(t *testing.T) {
	c, err := FromEnv(envMap(nil))
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if c.LogLevel != zerolog.WarnLevel {
		t.Errorf("LogLevel %v, want warn", c.LogLevel)
	}
	if c.Seed != 0 || c.Daily || c.NoPause || c.DebugAddr != "" || c.DebugSecret != "" {
		t.Errorf("unexpected defaults %+v", c)
	}
	if c.DailySalt != "local_dev_salt" {
		t.Errorf("DailySalt %q", c.DailySalt)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	c, err := FromEnv(envMap(map[string]string{
		"LOG_LEVEL":            "debug",
		"HANGMAN_SEED":         "42",
		"HANGMAN_DAILY":        "true",
		"HANGMAN_DAILY_SALT":   "pepper",
		"HANGMAN_DEBUG_ADDR":   " 127.0.0.1:7070 ",
		"HANGMAN_DEBUG_SECRET": "s3cret",
		"HANGMAN_NO_PAUSE":     "1",
	}))
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	want := Config{
		LogLevel:    zerolog.DebugLevel,
		Seed:        42,
		Daily:       true,
		DailySalt:   "pepper",
		DebugAddr:   "127.0.0.1:7070",
		DebugSecret: "s3cret",
		NoPause:     true,
	}
	if c != want {
		t.Errorf("FromEnv %+v, want %+v", c, want)
	}
}

func TestFromEnv_Invalid(t *testing.T) {
	for k, v := range map[string]string{
		"LOG_LEVEL":        "loud",
		"HANGMAN_SEED":     "abc",
		"HANGMAN_DAILY":    "maybe",
		"HANGMAN_NO_PAUSE": "nah",
	} {
		if _, err := FromEnv(envMap(map[string]string{k: v})); err == nil {
			t.Errorf("%s=%q: expected error", k, v)
		}
	}
}
