// internal/rng/rng.go
//
// Random sources for word and hint selection.
//
// Sources:
//   - Crypto():   crypto/rand backed, used for normal play.
//   - Seeded(n):  math/rand with a fixed seed, reproducible sessions.
//   - Daily(t,s): Seeded with a seed derived from the date, same word for everyone that day.
//   - Script(..): replays fixed indices, used by tests.

package rng

import (
	"crypto/rand"
	"math/big"
	mrand "math/rand"
	"time"

	"github.com/robalobadob/hangman/internal/daily"
)

// Source picks indices uniformly from [0, n). n is always > 0.
type Source interface {
	Intn(n int) int
}

type cryptoSource struct{}

// Crypto returns a Source backed by crypto/rand.
func Crypto() Source { return cryptoSource{} }

// Intn returns a cryptographically random index.
// Falls back to 0 if the system entropy source fails.
func (cryptoSource) Intn(n int) int {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(nBig.Int64())
}

// Seeded returns a deterministic Source.
func Seeded(seed int64) Source {
	return mrand.New(mrand.NewSource(seed))
}

// Daily returns a Source seeded from date and salt.
func Daily(date time.Time, salt string) Source {
	return Seeded(daily.Seed(date, salt))
}

// Scripted replays a fixed list of indices, wrapping each into [0, n).
// Once exhausted it keeps returning 0.
type Scripted struct {
	seq []int
	pos int
}

// Script builds a Scripted source.
func Script(seq ...int) *Scripted { return &Scripted{seq: seq} }

// Intn returns the next scripted value modulo n.
func (s *Scripted) Intn(n int) int {
	if s.pos >= len(s.seq) {
		return 0
	}
	v := s.seq[s.pos] % n
	s.pos++
	if v < 0 {
		v += n
	}
	return v
}
