package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/plus3/stackfall/debugui"
	"github.com/plus3/stackfall/frame"
	"github.com/plus3/stackfall/input"
	"github.com/plus3/stackfall/kick"
	"github.com/plus3/stackfall/session"
)

// RoundInfo identifies the round in progress for the recorder log.
type RoundInfo struct {
	ID     uuid.UUID
	Number int
}

// NameEntry holds the initials typed so far.
type NameEntry struct {
	Initials []rune
}

// SessionSystem feeds wall time to the session.
type SessionSystem struct {
	Session frame.Resource[session.Session]
}

// Execute advances the session by the frame's delta time.
func (s *SessionSystem) Execute(f *frame.UpdateFrame) {
	s.Session.MustGet().Advance(f.DeltaTime)
}

// Keys reports the physical state behind the bindings.
type Keys interface {
	Pressed(a input.Action) bool
	// Typed returns the characters entered this frame.
	Typed() []rune
	Backspace() bool
	Enter() bool
}

// KeySystem turns key state into session commands.
type KeySystem struct {
	Session   frame.Resource[session.Session]
	Names     frame.Resource[NameEntry]
	ImguiKeys frame.Resource[debugui.InputState]

	keys   Keys
	repeat *input.Repeater
	edge   *input.Edge
}

func NewKeySystem(keys Keys) *KeySystem {
	return &KeySystem{
		keys:   keys,
		repeat: input.NewRepeater(input.DefaultDelay, input.DefaultRate),
		edge:   input.NewEdge(),
	}
}

var repeatedMoves = []struct {
	action input.Action
	apply  func(s *session.Session)
}{
	{input.Left, func(s *session.Session) { s.MoveHorizontal(-1) }},
	{input.Right, func(s *session.Session) { s.MoveHorizontal(1) }},
	{input.RotateCCW, func(s *session.Session) { s.Rotate(kick.CounterClockwise) }},
	{input.RotateCW, func(s *session.Session) { s.Rotate(kick.Clockwise) }},
	{input.SoftDrop, func(s *session.Session) { s.SoftDrop() }},
}

// Execute applies this frame's key presses to the session.
func (k *KeySystem) Execute(f *frame.UpdateFrame) {
	s := k.Session.MustGet()
	if state := k.ImguiKeys.Get(); state != nil && state.WantCaptureKeyboard {
		k.repeat.Reset()
		k.edge.Reset()
		return
	}

	pause := k.edge.Rising(input.Pause, k.keys.Pressed(input.Pause))
	hold := k.edge.Rising(input.Hold, k.keys.Pressed(input.Hold))
	hardDrop := k.edge.Rising(input.HardDrop, k.keys.Pressed(input.HardDrop))
	skip := k.edge.Rising(input.SkipLevel, k.keys.Pressed(input.SkipLevel))

	if pause {
		s.TogglePause()
	}

	switch s.State() {
	case session.Playing:
		if skip {
			s.AddLines(10)
		}
		if hold {
			s.Hold()
		}
		for _, m := range repeatedMoves {
			if k.repeat.Update(m.action, k.keys.Pressed(m.action)) {
				m.apply(s)
			}
		}
		if hardDrop {
			s.HardDrop()
		}
	case session.AwaitingNameEntry:
		k.repeat.Reset()
		k.enterName(s)
	default:
		k.repeat.Reset()
		if names := k.Names.Get(); names != nil {
			names.Initials = names.Initials[:0]
		}
	}
}

func (k *KeySystem) enterName(s *session.Session) {
	names := k.Names.MustGet()
	names.Initials = input.AppendInitials(names.Initials, k.keys.Typed())
	if k.keys.Backspace() && len(names.Initials) > 0 {
		names.Initials = names.Initials[:len(names.Initials)-1]
	}
	if k.keys.Enter() && len(names.Initials) > 0 {
		s.ConfirmNameEntry(string(names.Initials))
		names.Initials = names.Initials[:0]
	}
}

// RoundLogSystem gives each round an identifier and writes one line per finished round
// for an external score recorder.
type RoundLogSystem struct {
	Session frame.Resource[session.Session]
	Round   frame.Resource[RoundInfo]
	Logf    func(format string, args ...any)

	logged bool
}

// Execute logs round starts and writes the result line once per finished round.
func (r *RoundLogSystem) Execute(f *frame.UpdateFrame) {
	s := r.Session.MustGet()
	info := r.Round.MustGet()

	if s.Round() != info.Number {
		info.Number = s.Round()
		info.ID = uuid.New()
		r.logged = false
		r.Logf("round %s started (anti-drought %t)", info.ID, s.AntiDrought())
	}
	if s.State() == session.GameOver && !r.logged {
		r.logged = true
		r.Logf("%s", formatResult(info.ID, s.Result()))
	}
}

func formatResult(id uuid.UUID, res session.Result) string {
	initials := res.Initials
	if initials == "" {
		initials = "-"
	}
	return fmt.Sprintf("round %s finished: initials=%s score=%d lines=%d level=%d pieces=%d drought=%d anti-drought=%t time=%s",
		id, initials, res.Score, res.Lines, res.Level, res.Pieces, res.Drought, res.AntiDrought, res.Duration.Round(time.Millisecond))
}
