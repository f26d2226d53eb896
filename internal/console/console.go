// Package console is the terminal front end: it reads commands, drives a
// game.Session and renders its snapshots.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/ledger"
	"github.com/robalobadob/hangman/internal/store"
)

// Recorder keeps finished rounds. *ledger.Ledger satisfies it.
type Recorder interface {
	Record(ctx context.Context, r ledger.Result) error
	Summary(ctx context.Context, sessionID string) (ledger.Summary, error)
}

// Options configures a Console. In and Out are required.
type Options struct {
	In     io.Reader
	Out    io.Writer
	Clear  bool // clear the screen before each board
	Pause  bool // wait for Enter after messages
	Store  store.Store
	Ledger Recorder
	Logger *zerolog.Logger
}

// Console runs rounds of a session against a line-oriented terminal.
type Console struct {
	sess   *game.Session
	in     *bufio.Scanner
	out    io.Writer
	clear  bool
	pause  bool
	store  store.Store
	ledger Recorder
	log    zerolog.Logger
}

// New binds sess to the given terminal.
func New(sess *game.Session, opts Options) *Console {
	l := log.Logger
	if opts.Logger != nil {
		l = *opts.Logger
	}
	return &Console{
		sess:   sess,
		in:     bufio.NewScanner(opts.In),
		out:    opts.Out,
		clear:  opts.Clear,
		pause:  opts.Pause,
		store:  opts.Store,
		ledger: opts.Ledger,
		log:    l.With().Str("session", sess.ID()).Logger(),
	}
}

// Run plays rounds until the player quits or input ends, then prints the final score.
func (c *Console) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, "🎯 HANGMAN")
	fmt.Fprintln(c.out, "Multiple categories, hints, scoring, ASCII art!")

	for {
		more, err := c.PlayRound(ctx)
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}

	fmt.Fprintf(c.out, "\n🏆 FINAL SCORE: %d\n", c.sess.Score())
	c.printSummary(ctx)
	fmt.Fprintln(c.out, "Thanks for playing Hangman!")
	return nil
}

// PlayRound plays one round. It returns false when the player quits or
// input is exhausted, true when another round should follow.
func (c *Console) PlayRound(ctx context.Context) (bool, error) {
	label := c.sess.StartRound()
	c.log.Debug().Int("round", c.sess.RoundsPlayed()).Str("category", label).Msg("round started")

	fmt.Fprintf(c.out, "\n🎮 New game! Category: %s\n", label)
	if err := c.wait("Press Enter to start..."); err != nil {
		return stopOn(err)
	}

	for !c.sess.IsLost() {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		c.show(ctx)

		if c.sess.IsWon() {
			pts := c.sess.FinishRound(true)
			c.show(ctx)
			c.record(ctx, true, pts)
			fmt.Fprintln(c.out, "🎉 CONGRATULATIONS! You won!")
			fmt.Fprintf(c.out, "💰 Score this game: %d\n", pts)
			return c.next()
		}

		fmt.Fprintln(c.out, "\nCommands: [letter], 'h' = hint, 'q' = quit")
		line, err := c.readLine("Your guess: ")
		if err != nil {
			return stopOn(err)
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "q":
			c.log.Debug().Msg("player quit")
			fmt.Fprintln(c.out, "👋 Thanks for playing!")
			return false, nil
		case "h":
			c.hint()
		default:
			c.guess(line)
		}
		if err := c.wait("Press Enter..."); err != nil {
			return stopOn(err)
		}
	}

	c.sess.FinishRound(false)
	c.show(ctx)
	c.record(ctx, false, 0)
	fmt.Fprintf(c.out, "💀 Game Over! Word was: %s\n", c.sess.SecretWord())
	fmt.Fprintf(c.out, "📊 Final Score: %d\n", c.sess.Score())
	return c.next()
}

func (c *Console) guess(line string) {
	out := c.sess.ApplyGuess(line)
	c.log.Debug().Str("outcome", out.String()).Msg("guess")
	switch out {
	case game.InvalidInput:
		fmt.Fprintln(c.out, "❌ Enter single letter or 'h' for hint!")
	case game.AlreadyGuessed:
		fmt.Fprintln(c.out, "✅ Already guessed!")
	case game.Wrong:
		fmt.Fprintln(c.out, "❌ Wrong guess!")
	case game.Correct:
		fmt.Fprintln(c.out, "✅ Correct!")
	}
}

func (c *Console) hint() {
	letter, out := c.sess.GiveHint()
	c.log.Debug().Str("outcome", out.String()).Msg("hint")
	if err := out.Err(); err != nil {
		fmt.Fprintln(c.out, "No hints left!")
		return
	}
	fmt.Fprintf(c.out, "💡 Hint: '%c' was revealed!\n", letter)
}

// next waits before the following round; running out of input ends the session.
func (c *Console) next() (bool, error) {
	if err := c.wait("\nPress Enter for next game..."); err != nil {
		return stopOn(err)
	}
	return true, nil
}

// show renders the board and publishes the snapshot.
func (c *Console) show(ctx context.Context) {
	snap := c.sess.Snapshot()
	if c.clear {
		fmt.Fprint(c.out, clearSeq)
	}
	Render(c.out, snap)
	if c.store != nil {
		if err := c.store.Save(ctx, snap); err != nil {
			c.log.Warn().Err(err).Msg("publish snapshot")
		}
	}
}

func (c *Console) record(ctx context.Context, won bool, pts int) {
	c.log.Info().
		Int("round", c.sess.RoundsPlayed()).
		Bool("won", won).
		Int("wrong", c.sess.WrongGuesses()).
		Int("points", pts).
		Msg("round finished")
	if c.ledger == nil {
		return
	}
	err := c.ledger.Record(ctx, ledger.Result{
		SessionID: c.sess.ID(),
		Round:     c.sess.RoundsPlayed(),
		Category:  c.sess.Category(),
		Word:      c.sess.SecretWord(),
		Won:       won,
		Wrong:     c.sess.WrongGuesses(),
		Hints:     c.sess.HintsUsed(),
		Points:    pts,
	})
	if err != nil {
		c.log.Warn().Err(err).Msg("record round")
	}
}

func (c *Console) printSummary(ctx context.Context) {
	if c.ledger == nil {
		return
	}
	sum, err := c.ledger.Summary(ctx, c.sess.ID())
	if err != nil {
		c.log.Warn().Err(err).Msg("session summary")
		return
	}
	if sum.Rounds == 0 {
		return
	}
	fmt.Fprintf(c.out, "📈 Rounds: %d | Wins: %d | Losses: %d | Best round: %d | Hints: %d\n",
		sum.Rounds, sum.Wins, sum.Losses, sum.BestPoints, sum.Hints)
}

// readLine prompts and reads one line. io.EOF means input is exhausted.
func (c *Console) readLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	if c.in.Scan() {
		return c.in.Text(), nil
	}
	if err := c.in.Err(); err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	fmt.Fprintln(c.out)
	return "", io.EOF
}

// wait pauses for Enter when pauses are enabled.
func (c *Console) wait(prompt string) error {
	if !c.pause {
		return nil
	}
	_, err := c.readLine(prompt)
	return err
}

// stopOn ends the session: cleanly on EOF, with the error otherwise.
func stopOn(err error) (bool, error) {
	if errors.Is(err, io.EOF) {
		return false, nil
	}
	return false, err
}
