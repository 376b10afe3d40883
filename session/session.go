// Package session is the game state machine. A Session owns the board, the active piece,
// the hold slot, the next queue, the score counters and the gravity clock, and exposes the
// command methods a front end calls plus read-only snapshots for drawing.
//
// All methods are synchronous and expect to be called from one goroutine, typically once
// per rendered frame.
package session

import (
	"github.com/plus3/stackfall/board"
	"github.com/plus3/stackfall/gravity"
	"github.com/plus3/stackfall/piece"
	"github.com/plus3/stackfall/sequence"
)

// Spawn anchor of every new piece.
const (
	SpawnCol = 3
	SpawnRow = -1
)

// State is the lifecycle phase of a round.
type State int

const (
	CountingDown State = iota
	Playing
	Paused
	AwaitingNameEntry
	GameOver
)

var stateNames = [...]string{
	CountingDown:      "counting-down",
	Playing:           "playing",
	Paused:            "paused",
	AwaitingNameEntry: "awaiting-name-entry",
	GameOver:          "game-over",
}

func (s State) String() string {
	if s < CountingDown || s > GameOver {
		return "unknown"
	}
	return stateNames[s]
}

// Config holds the round rules that may vary between sessions.
type Config struct {
	// AntiDrought enables forcing a kind that has not appeared for DroughtThreshold draws.
	AntiDrought      bool
	DroughtThreshold int
	// NameEntry routes a top-out through AwaitingNameEntry before GameOver.
	NameEntry bool
	// CountdownOnResume makes Resume run the pre-round countdown again.
	CountdownOnResume bool
	// CountdownSeconds is the pre-round countdown.
	CountdownSeconds float64
	// RestartSeconds is how long GameOver lasts before a new round starts.
	RestartSeconds float64
}

// DefaultConfig returns the standard rules.
func DefaultConfig() Config {
	return Config{
		DroughtThreshold: sequence.DefaultThreshold,
		NameEntry:        true,
		CountdownSeconds: 3,
		RestartSeconds:   4,
	}
}

func withDefaults(cfg Config) Config {
	def := DefaultConfig()
	if cfg.CountdownSeconds <= 0 {
		cfg.CountdownSeconds = def.CountdownSeconds
	}
	if cfg.RestartSeconds <= 0 {
		cfg.RestartSeconds = def.RestartSeconds
	}
	if cfg.DroughtThreshold <= 0 {
		cfg.DroughtThreshold = def.DroughtThreshold
	}
	return cfg
}

// Active is the falling piece: its kind, rotation and the board position of its local
// grid's top-left corner. Row may be negative while the piece is partly above the board.
type Active struct {
	Kind     piece.Kind
	Rotation piece.Rotation
	Col, Row int
}

// Cells returns the board coordinates the piece covers.
func (a Active) Cells() [4]piece.Cell {
	return piece.ShapeOf(a.Kind, a.Rotation).At(a.Col, a.Row)
}

// Session is one player's game. Create it with New.
type Session struct {
	cfg   Config
	src   sequence.Source
	state State
	timer float64

	board  *board.Board
	seq    *sequence.Sequencer
	queue  *sequence.Queue
	hold   *sequence.Hold
	active Active
	clock  gravity.Clock

	score    int
	lines    int
	pieces   int
	round    int
	initials string
}

// New creates a session in the CountingDown state with the first piece already spawned.
// src supplies the random piece draws.
func New(cfg Config, src sequence.Source) *Session {
	cfg = withDefaults(cfg)
	s := &Session{
		cfg:   cfg,
		src:   src,
		board: board.New(),
		hold:  sequence.NewHold(),
	}
	s.StartNewRound(cfg.AntiDrought)
	return s
}

// StartNewRound discards the current round and begins a countdown for a fresh one.
func (s *Session) StartNewRound(antiDrought bool) {
	s.cfg.AntiDrought = antiDrought
	s.seq = sequence.New(s.src, sequence.Options{
		AntiDrought: antiDrought,
		Threshold:   s.cfg.DroughtThreshold,
	})
	s.queue = sequence.NewQueue(s.seq)
	s.queue.Fill()
	s.board.Reset()
	s.hold.Clear()
	s.clock.Reset()
	s.score, s.lines, s.pieces = 0, 0, 0
	s.initials = ""
	s.round++

	s.state = CountingDown
	s.timer = s.cfg.CountdownSeconds
	s.spawn(s.queue.Pop())
}

// Config returns the current rules.
func (s *Session) Config() Config {
	return s.cfg
}

// SetConfig replaces the rules. Timing and name entry changes apply at once; the
// anti-drought settings take effect when the next round starts.
func (s *Session) SetConfig(cfg Config) {
	s.cfg = withDefaults(cfg)
}

// State returns the lifecycle phase.
func (s *Session) State() State {
	return s.state
}

// Timer returns the seconds left on the countdown or the restart delay.
func (s *Session) Timer() float64 {
	return s.timer
}

// Active returns the falling piece.
func (s *Session) Active() Active {
	return s.active
}

// Board returns a copy of the locked cells.
func (s *Session) Board() board.Grid {
	return s.board.Grid()
}

// Next returns the upcoming kinds, head first.
func (s *Session) Next() []piece.Kind {
	return s.queue.Peek()
}

// Held returns the kind in the hold slot.
func (s *Session) Held() (piece.Kind, bool) {
	return s.hold.Held()
}

// CanHold reports whether Hold would currently be accepted.
func (s *Session) CanHold() bool {
	return s.hold.CanHold()
}

// Score returns the points earned this round.
func (s *Session) Score() int {
	return s.score
}

// Lines returns the rows cleared this round.
func (s *Session) Lines() int {
	return s.lines
}

// Level is Lines / 10.
func (s *Session) Level() int {
	return s.lines / 10
}

// Round counts the rounds started by this session, starting at 1.
func (s *Session) Round() int {
	return s.round
}

// AntiDrought reports whether the current round is dealt with anti-drought forcing.
func (s *Session) AntiDrought() bool {
	return s.seq.Options().AntiDrought
}

// Frame returns the gravity clock's pseudo-frame.
func (s *Session) Frame() int64 {
	return s.clock.Frame()
}
