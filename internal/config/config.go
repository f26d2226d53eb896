// internal/config/config.go
//
// Runtime configuration read from the environment.
// A `.env` file in the working directory is loaded first when present;
// variables already set in the environment win.
//
// Environment variables:
//   LOG_LEVEL=warn                 zerolog level (trace…panic, disabled)
//   HANGMAN_SEED=0                 fixed seed; 0 means crypto randomness
//   HANGMAN_DAILY=false            same word sequence for everyone today
//   HANGMAN_DAILY_SALT=…           salt for the daily seed
//   HANGMAN_DEBUG_ADDR=            listen address for the debug server; empty disables it
//   HANGMAN_DEBUG_SECRET=          HS256 secret required by /debug/* when set
//   HANGMAN_NO_PAUSE=false         skip "Press Enter" pauses

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config is the resolved runtime configuration.
type Config struct {
	LogLevel    zerolog.Level
	Seed        int64
	Daily       bool
	DailySalt   string
	DebugAddr   string
	DebugSecret string
	NoPause     bool
}

// Load reads .env (if any) and the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv resolves configuration through getenv, which makes it testable
// without touching the process environment.
func FromEnv(getenv func(string) string) (Config, error) {
	c := Config{
		DailySalt:   envStr(getenv, "HANGMAN_DAILY_SALT", "local_dev_salt"),
		DebugAddr:   strings.TrimSpace(getenv("HANGMAN_DEBUG_ADDR")),
		DebugSecret: getenv("HANGMAN_DEBUG_SECRET"),
	}

	lvl, err := zerolog.ParseLevel(envStr(getenv, "LOG_LEVEL", "warn"))
	if err != nil {
		return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	c.LogLevel = lvl

	if v := strings.TrimSpace(getenv("HANGMAN_SEED")); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("HANGMAN_SEED: %w", err)
		}
		c.Seed = n
	}
	if c.Daily, err = envBool(getenv, "HANGMAN_DAILY"); err != nil {
		return Config{}, err
	}
	if c.NoPause, err = envBool(getenv, "HANGMAN_NO_PAUSE"); err != nil {
		return Config{}, err
	}
	return c, nil
}

func envStr(getenv func(string) string, k, def string) string {
	if v := strings.TrimSpace(getenv(k)); v != "" {
		return v
	}
	return def
}

func envBool(getenv func(string) string, k string) (bool, error) {
	v := strings.TrimSpace(getenv(k))
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", k, err)
	}
	return b, nil
}
