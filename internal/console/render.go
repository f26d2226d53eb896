package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/robalobadob/hangman/internal/game"
)

const clearSeq = "\033[H\033[2J"

// Stdout returns a writer for the game board and whether it is a terminal.
// On Windows the writer translates ANSI sequences.
func Stdout() (io.Writer, bool) {
	fd := os.Stdout.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	return colorable.NewColorableStdout(), tty
}

// Render writes the board for snap.
func Render(w io.Writer, snap game.Snapshot) {
	fmt.Fprintln(w, Stage(snap.Wrong))
	fmt.Fprintf(w, "\n🏆 Score: %d | Game #%d\n", snap.Score, snap.Round)
	fmt.Fprintf(w, "📂 Category: %s\n", snap.Category)
	fmt.Fprintf(w, "🎯 Word: %s\n", spaced(snap.Masked))
	fmt.Fprintf(w, "📝 Guessed: %s\n", guessedList(snap.Guessed))
	fmt.Fprintf(w, "❌ Wrong: %d/%d\n", snap.Wrong, snap.MaxWrong)
	fmt.Fprintf(w, "📊 Letters left: %d/%d | Hint cost: %d\n",
		snap.Stats.LettersLeft, snap.Stats.Length, snap.Stats.HintCost)
}

// spaced puts one space between letters: "C_T" → "C _ T".
func spaced(s string) string {
	return strings.Join(strings.Split(s, ""), " ")
}

func guessedList(letters string) string {
	if letters == "" {
		return "None"
	}
	return strings.Join(strings.Split(letters, ""), ", ")
}
