// internal/game/types.go
//
// Core type definitions for the hangman game engine.
// Defines:
//   - GuessOutcome: result of applying one guess.
//   - HintOutcome:  result of asking for a hint.
//   - Phase:        coarse state of the current round.
//   - Stats, Snapshot: read-only views for the presentation layer.

package game

import "errors"

// Sentinel errors for the outcomes that leave state unchanged.
var (
	ErrInvalidInput   = errors.New("enter a single letter")
	ErrAlreadyGuessed = errors.New("letter already guessed")
	ErrNoHints        = errors.New("no hints left")
)

// GuessOutcome is the evaluation result of a single guess.
type GuessOutcome int

const (
	InvalidInput GuessOutcome = iota
	AlreadyGuessed
	Wrong
	Correct
)

func (o GuessOutcome) String() string {
	switch o {
	case InvalidInput:
		return "invalid"
	case AlreadyGuessed:
		return "already_guessed"
	case Wrong:
		return "wrong"
	case Correct:
		return "correct"
	}
	return "unknown"
}

// Err maps rejected outcomes to their sentinel error; accepted guesses return nil.
func (o GuessOutcome) Err() error {
	switch o {
	case InvalidInput:
		return ErrInvalidInput
	case AlreadyGuessed:
		return ErrAlreadyGuessed
	}
	return nil
}

// HintOutcome reports whether a hint revealed a letter.
type HintOutcome int

const (
	HintNoneAvailable HintOutcome = iota
	HintRevealed
)

func (o HintOutcome) String() string {
	if o == HintRevealed {
		return "revealed"
	}
	return "none_available"
}

// Err returns ErrNoHints when nothing could be revealed.
func (o HintOutcome) Err() error {
	if o == HintNoneAvailable {
		return ErrNoHints
	}
	return nil
}

// Phase is the state of the current round.
type Phase string

const (
	PhaseNotStarted Phase = "not_started"
	PhaseInProgress Phase = "in_progress"
	PhaseWon        Phase = "won"
	PhaseLost       Phase = "lost"
)

// Terminal reports whether no further guesses should be accepted.
func (p Phase) Terminal() bool { return p == PhaseWon || p == PhaseLost }

// Stats summarizes the current round for display.
type Stats struct {
	Length       int `json:"length"`
	LettersLeft  int `json:"lettersLeft"`
	GuessedCount int `json:"guessedCount"`
	WrongCount   int `json:"wrongCount"`
	HintCost     int `json:"hintCost"` // advisory only, never charged
}

// Snapshot is a read-only copy of everything a renderer needs.
// Word is only populated once the round is over.
type Snapshot struct {
	SessionID  string `json:"sessionId"`
	Round      int    `json:"round"`
	Score      int    `json:"score"`
	Category   string `json:"category"`
	Masked     string `json:"masked"`
	Word       string `json:"word,omitempty"`
	Guessed    string `json:"guessed"` // sorted letters
	Wrong      int    `json:"wrong"`
	MaxWrong   int    `json:"maxWrong"`
	HintsUsed  int    `json:"hintsUsed"`
	Stats      Stats  `json:"stats"`
	Phase      Phase  `json:"phase"`
	RoundsWon  int    `json:"roundsWon"`
	RoundsLost int    `json:"roundsLost"`
}
