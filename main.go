package main

import (
	"context"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/config"
	"github.com/robalobadob/hangman/internal/console"
	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/httpserver"
	"github.com/robalobadob/hangman/internal/ledger"
	"github.com/robalobadob/hangman/internal/rng"
	"github.com/robalobadob/hangman/internal/store"
	"github.com/robalobadob/hangman/internal/words"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	setupLogging(cfg.LogLevel)

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msg("hangman exited")
	}
}

func run(cfg config.Config) error {
	ctx := context.Background()

	catalog, err := words.Default()
	if err != nil {
		return err
	}

	sess := game.NewSession(catalog, source(cfg))
	snaps := store.NewMemoryStore()

	led, err := ledger.Open("hangman_" + sess.ID())
	if err != nil {
		return err
	}
	defer led.Close()

	if cfg.DebugAddr != "" {
		srv := httpserver.New(snaps, catalog, led, cfg.DebugSecret)
		go func() {
			if err := srv.Start(cfg.DebugAddr); err != nil {
				log.Error().Err(err).Str("addr", cfg.DebugAddr).Msg("debug server stopped")
			}
		}()
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = srv.Shutdown(sctx)
		}()
		log.Info().Str("addr", cfg.DebugAddr).Msg("debug server listening")
		if cfg.DebugSecret != "" {
			tok, exp, err := httpserver.SignToken(cfg.DebugSecret, sess.ID(), 24*time.Hour)
			if err != nil {
				return err
			}
			log.Info().Str("token", tok).Time("expires", exp).Msg("debug bearer token")
		}
	}

	out, tty := console.Stdout()
	con := console.New(sess, console.Options{
		In:     os.Stdin,
		Out:    out,
		Clear:  tty,
		Pause:  !cfg.NoPause,
		Store:  snaps,
		Ledger: led,
	})
	return con.Run(ctx)
}

// source picks the random source: daily beats a fixed seed beats crypto.
func source(cfg config.Config) rng.Source {
	switch {
	case cfg.Daily:
		log.Info().Msg("daily mode")
		return rng.Daily(time.Now(), cfg.DailySalt)
	case cfg.Seed != 0:
		log.Info().Int64("seed", cfg.Seed).Msg("seeded mode")
		return rng.Seeded(cfg.Seed)
	}
	return rng.Crypto()
}

// setupLogging writes human-readable logs to a terminal stderr, JSON otherwise.
func setupLogging(lvl zerolog.Level) {
	zerolog.SetGlobalLevel(lvl)
	zerolog.TimeFieldFormat = time.RFC3339
	if isatty.IsTerminal(os.Stderr.Fd()) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}
