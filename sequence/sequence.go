// Package sequence produces the stream of upcoming pieces: the random draw with its
// optional anti-drought bias, the fixed-length next queue, and the hold slot.
package sequence

import (
	"github.com/kamstrup/intmap"
	"github.com/plus3/stackfall/piece"
)

// DefaultThreshold is the drought length after which a kind is forced.
const DefaultThreshold = 25

// Source is a uniform random source. *math/rand/v2.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// Options configures a Sequencer.
type Options struct {
	// AntiDrought forces the longest-missing kind once its drought reaches Threshold.
	AntiDrought bool
	// Threshold defaults to DefaultThreshold when zero.
	Threshold int
}

// Sequencer draws piece kinds. Drought counters are tracked whether or not the bias is
// enabled so they can be reported at the end of a round.
type Sequencer struct {
	src       Source
	opts      Options
	droughts  *intmap.Map[piece.Kind, int]
	drawCount int
}

// New creates a Sequencer reading from src.
func New(src Source, opts Options) *Sequencer {
	if opts.Threshold <= 0 {
		opts.Threshold = DefaultThreshold
	}
	s := &Sequencer{
		src:      src,
		opts:     opts,
		droughts: intmap.New[piece.Kind, int](piece.Count),
	}
	s.resetDroughts()
	return s
}

func (s *Sequencer) resetDroughts() {
	s.droughts.Clear()
	for _, k := range piece.Kinds() {
		s.droughts.Put(k, 0)
	}
}

// Options returns the configuration in effect.
func (s *Sequencer) Options() Options {
	return s.opts
}

// Draw returns the next kind. The random source is consulted on every call so a recorded
// seed replays the same way regardless of forcing.
func (s *Sequencer) Draw() piece.Kind {
	drawn := piece.Kind(s.src.IntN(piece.Count))
	if s.opts.AntiDrought {
		if forced, ok := s.overdue(); ok {
			drawn = forced
		}
	}

	for _, k := range piece.Kinds() {
		if k == drawn {
			s.droughts.Put(k, 0)
			continue
		}
		n, _ := s.droughts.Get(k)
		s.droughts.Put(k, n+1)
	}
	s.drawCount++
	return drawn
}

// overdue returns the kind with the longest drought at or past the threshold, preferring
// the earlier kind on ties.
func (s *Sequencer) overdue() (piece.Kind, bool) {
	var (
		best  piece.Kind
		worst = -1
	)
	for _, k := range piece.Kinds() {
		n, _ := s.droughts.Get(k)
		if n >= s.opts.Threshold && n > worst {
			best, worst = k, n
		}
	}
	return best, worst >= 0
}

// Drought returns how many draws have passed since k was last produced.
func (s *Sequencer) Drought(k piece.Kind) int {
	n, _ := s.droughts.Get(k)
	return n
}

// Droughts returns a copy of every counter indexed by kind.
func (s *Sequencer) Droughts() [piece.Count]int {
	var out [piece.Count]int
	for _, k := range piece.Kinds() {
		out[k] = s.Drought(k)
	}
	return out
}

// MaxDrought returns the largest current counter.
func (s *Sequencer) MaxDrought() int {
	worst := 0
	for _, k := range piece.Kinds() {
		worst = max(worst, s.Drought(k))
	}
	return worst
}

// Draws returns the number of kinds produced so far.
func (s *Sequencer) Draws() int {
	return s.drawCount
}
