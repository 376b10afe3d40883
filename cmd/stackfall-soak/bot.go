package main

import (
	"math"

	"github.com/plus3/stackfall/board"
	"github.com/plus3/stackfall/frame"
	"github.com/plus3/stackfall/kick"
	"github.com/plus3/stackfall/piece"
	"github.com/plus3/stackfall/session"
)

// Weights scores a board after a placement. Higher totals are better.
type Weights struct {
	Height    float64
	Lines     float64
	Holes     float64
	Bumpiness float64
}

// DefaultWeights is a well known linear heuristic for single-piece lookahead.
var DefaultWeights = Weights{
	Height:    -0.51,
	Lines:     0.76,
	Holes:     -0.36,
	Bumpiness: -0.18,
}

// Placement is where the bot wants the active piece to land.
type Placement struct {
	Rotation piece.Rotation
	Col      int
	Lines    int
	Score    float64
}

// Plan tries every rotation and column for kind k starting from row and returns the best
// placement that stays fully on the board. ok is false when every placement tops out.
func Plan(g board.Grid, k piece.Kind, row int, w Weights) (best Placement, ok bool) {
	view := board.FromGrid(g)
	best.Score = math.Inf(-1)

	for r := piece.Rotation(0); r < 4; r++ {
		for col := -piece.GridSize; col < board.Width; col++ {
			if board.Collides(view, k, r, col, row) {
				continue
			}
			dropped := board.DropRow(view, k, r, col, row)
			if piece.BoundsOf(k, r).MinRow+dropped < 0 {
				continue
			}
			cells := piece.ShapeOf(k, r).At(col, dropped)

			after := board.FromGrid(g)
			after.Place(k, cells[:])
			lines := after.ClearFullRowsInRange(0, board.Height-1)
			score := w.score(after.Grid(), lines)
			if score > best.Score {
				best = Placement{Rotation: r, Col: col, Lines: lines, Score: score}
				ok = true
			}
		}
	}
	return best, ok
}

func (w Weights) score(g board.Grid, lines int) float64 {
	var heights [board.Width]int
	holes := 0
	for col := range board.Width {
		seen := false
		for row := range board.Height {
			if g[row][col] != board.Empty {
				if !seen {
					heights[col] = board.Height - row
					seen = true
				}
			} else if seen {
				holes++
			}
		}
	}

	aggregate, bumpiness := 0, 0
	for col, h := range heights {
		aggregate += h
		if col > 0 {
			bumpiness += abs(h - heights[col-1])
		}
	}
	return w.Height*float64(aggregate) + w.Lines*float64(lines) +
		w.Holes*float64(holes) + w.Bumpiness*float64(bumpiness)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// BotSystem plays the session: every Delay frames it plans the active piece, steers it
// with the same commands a player uses and hard drops it.
type BotSystem struct {
	Session frame.Resource[session.Session]

	Weights Weights
	Delay   int

	wait int
}

// Execute places the active piece once the delay has passed.
func (b *BotSystem) Execute(f *frame.UpdateFrame) {
	s := b.Session.MustGet()
	if s.State() != session.Playing {
		b.wait = b.Delay
		return
	}
	if b.wait > 0 {
		b.wait--
		return
	}
	b.wait = b.Delay
	b.place(s)
}

func (b *BotSystem) place(s *session.Session) {
	active := s.Active()
	if p, ok := Plan(s.Board(), active.Kind, active.Row, b.Weights); ok {
		for i := 0; i < 4 && s.Active().Rotation != p.Rotation; i++ {
			s.Rotate(kick.Clockwise)
		}
		for i := 0; i < board.Width && s.Active().Col != p.Col; i++ {
			before := s.Active().Col
			if before < p.Col {
				s.MoveHorizontal(1)
			} else {
				s.MoveHorizontal(-1)
			}
			if s.Active().Col == before {
				break
			}
		}
	}
	s.HardDrop()
}

// RoundCollector records the result of every finished round. Done is called once Limit
// results have been collected; a zero Limit collects forever.
type RoundCollector struct {
	Session frame.Resource[session.Session]

	Limit   int
	Done    func()
	Results []session.Result

	recorded bool
}

// Execute records the result the first frame a round is over.
func (c *RoundCollector) Execute(f *frame.UpdateFrame) {
	s := c.Session.MustGet()
	if s.State() != session.GameOver {
		c.recorded = false
		return
	}
	if c.recorded {
		return
	}
	c.recorded = true
	c.Results = append(c.Results, s.Result())
	if c.Limit > 0 && len(c.Results) == c.Limit && c.Done != nil {
		c.Done()
	}
}
