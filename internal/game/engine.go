// internal/game/engine.go
//
// Core game engine for a hangman session.
// Responsibilities:
//   - Start rounds by drawing a category and word from an injected catalog.
//   - Validate and apply single-letter guesses.
//   - Reveal hint letters.
//   - Report win/loss and award points when a round is finished.
//
// Notes:
//   - Randomness comes from an injected rng.Source so tests can script selection.
//   - The engine never decides termination on its own; callers check IsWon/IsLost.
//   - No I/O happens here; the console package renders Snapshot().
package game

import (
	"crypto/rand"
	"encoding/hex"
	"slices"
	"strings"

	"github.com/robalobadob/hangman/internal/rng"
	"github.com/robalobadob/hangman/internal/words"
)

const (
	// MaxWrong is the number of wrong guesses that loses a round.
	MaxWrong = 6

	winBase      = 100
	wrongPenalty = 10
	placeholder  = '_'
)

// Session holds one player's state across rounds.
type Session struct {
	id      string
	catalog *words.Catalog
	src     rng.Source

	// current round
	secret    string
	category  string
	guessed   [26]bool
	nGuessed  int
	wrong     int
	hintsUsed int
	finished  bool

	// across rounds
	score  int
	rounds int
	won    int
	lost   int
}

// NewSession constructs a session over catalog. A nil src uses crypto randomness.
func NewSession(catalog *words.Catalog, src rng.Source) *Session {
	if src == nil {
		src = rng.Crypto()
	}
	return &Session{id: randomID(), catalog: catalog, src: src}
}

// StartRound draws a category uniformly, then a word uniformly from it,
// and resets the per-round state. Returns the category label.
func (s *Session) StartRound() string {
	cat := s.catalog.Category(s.src.Intn(s.catalog.NumCategories()))
	word := s.catalog.Word(cat, s.src.Intn(s.catalog.Len(cat)))

	s.secret = strings.ToUpper(word)
	s.category = strings.ToUpper(cat)
	s.guessed = [26]bool{}
	s.nGuessed = 0
	s.wrong = 0
	s.hintsUsed = 0
	s.finished = false
	s.rounds++
	return s.category
}

// MaskedWord returns the secret with unrevealed letters replaced by '_'.
func (s *Session) MaskedWord() string {
	var b strings.Builder
	b.Grow(len(s.secret))
	for i := 0; i < len(s.secret); i++ {
		c := s.secret[i]
		if s.guessed[idx(c)] {
			b.WriteByte(c)
		} else {
			b.WriteByte(placeholder)
		}
	}
	return b.String()
}

// Stats reports counts for the current round.
func (s *Session) Stats() Stats {
	left := 0
	for i := 0; i < len(s.secret); i++ {
		if !s.guessed[idx(s.secret[i])] {
			left++
		}
	}
	return Stats{
		Length:       len(s.secret),
		LettersLeft:  left,
		GuessedCount: s.nGuessed,
		WrongCount:   s.wrong,
		HintCost:     max(1, left/2),
	}
}

// ApplyGuess validates and records one guess.
//
// Validation rules:
//   - Input (after trimming) must be exactly one ASCII letter, any case.
//   - The letter must not have been guessed this round.
//
// Rejected guesses leave state untouched.
func (s *Session) ApplyGuess(input string) GuessOutcome {
	in := strings.ToUpper(strings.TrimSpace(input))
	if len(in) != 1 || in[0] < 'A' || in[0] > 'Z' {
		return InvalidInput
	}
	c := in[0]
	if s.guessed[idx(c)] {
		return AlreadyGuessed
	}
	s.mark(c)
	if strings.IndexByte(s.secret, c) < 0 {
		s.wrong++
		return Wrong
	}
	return Correct
}

// IsWon reports whether every letter of the secret has been revealed.
func (s *Session) IsWon() bool {
	if s.secret == "" {
		return false
	}
	for i := 0; i < len(s.secret); i++ {
		if !s.guessed[idx(s.secret[i])] {
			return false
		}
	}
	return true
}

// IsLost reports whether the wrong-guess budget is spent.
func (s *Session) IsLost() bool { return s.wrong >= MaxWrong }

// GiveHint reveals one unrevealed letter chosen at random.
// Hints never count as wrong guesses and cost nothing.
func (s *Session) GiveHint() (rune, HintOutcome) {
	var pool []byte
	var seen [26]bool
	for i := 0; i < len(s.secret); i++ {
		c := s.secret[i]
		if !s.guessed[idx(c)] && !seen[idx(c)] {
			seen[idx(c)] = true
			pool = append(pool, c)
		}
	}
	if len(pool) == 0 {
		return 0, HintNoneAvailable
	}
	// sorted so a scripted source picks a predictable letter
	slices.Sort(pool)
	c := pool[s.src.Intn(len(pool))]
	s.mark(c)
	s.hintsUsed++
	return rune(c), HintRevealed
}

// FinishRound awards points for a won round and records the result.
// Returns the points awarded. Only the first call per round has an effect.
func (s *Session) FinishRound(won bool) int {
	if s.finished || s.secret == "" {
		return 0
	}
	s.finished = true
	if !won {
		s.lost++
		return 0
	}
	pts := winBase - s.wrong*wrongPenalty
	s.score += pts
	s.won++
	return pts
}

// Phase derives the coarse round state.
func (s *Session) Phase() Phase {
	switch {
	case s.secret == "":
		return PhaseNotStarted
	case s.IsWon():
		return PhaseWon
	case s.IsLost():
		return PhaseLost
	}
	return PhaseInProgress
}

// GuessedLetters returns the letters tried this round in alphabetical order.
func (s *Session) GuessedLetters() string {
	b := make([]byte, 0, s.nGuessed)
	for i, ok := range s.guessed {
		if ok {
			b = append(b, byte('A'+i))
		}
	}
	return string(b)
}

// Snapshot copies the state a renderer needs. The secret is only included
// once the round is over.
func (s *Session) Snapshot() Snapshot {
	ph := s.Phase()
	snap := Snapshot{
		SessionID:  s.id,
		Round:      s.rounds,
		Score:      s.score,
		Category:   s.category,
		Masked:     s.MaskedWord(),
		Guessed:    s.GuessedLetters(),
		Wrong:      s.wrong,
		MaxWrong:   MaxWrong,
		HintsUsed:  s.hintsUsed,
		Stats:      s.Stats(),
		Phase:      ph,
		RoundsWon:  s.won,
		RoundsLost: s.lost,
	}
	if ph.Terminal() {
		snap.Word = s.secret
	}
	return snap
}

func (s *Session) ID() string         { return s.id }
func (s *Session) Score() int         { return s.score }
func (s *Session) RoundsPlayed() int  { return s.rounds }
func (s *Session) RoundsWon() int     { return s.won }
func (s *Session) RoundsLost() int    { return s.lost }
func (s *Session) Category() string   { return s.category }
func (s *Session) SecretWord() string { return s.secret }
func (s *Session) WrongGuesses() int  { return s.wrong }
func (s *Session) HintsUsed() int     { return s.hintsUsed }

// mark records c as guessed.
func (s *Session) mark(c byte) {
	s.guessed[idx(c)] = true
	s.nGuessed++
}

// idx maps an uppercase ASCII letter to 0..25.
// Assumes inputs are validated to A–Z elsewhere.
func idx(c byte) int { return int(c - 'A') }

// randomID returns a compact 16‑hex‑char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
