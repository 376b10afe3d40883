package debugui_test

import (
	"reflect"
	"testing"

	"github.com/plus3/stackfall/debugui"
	"github.com/plus3/stackfall/piece"
	"github.com/plus3/stackfall/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type constSource int

func (c constSource) IntN(n int) int { return int(c) % n }

func TestWindows(t *testing.T) {
	var w debugui.Windows
	w.Add("Session", func() {})
	w.Add("Performance", func() {})
	assert.Equal(t, []string{"Session", "Performance"}, w.Names())
}

func TestFields(t *testing.T) {
	fields := debugui.Fields(reflect.TypeFor[session.Config]())
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	assert.Equal(t, []string{
		"AntiDrought", "DroughtThreshold", "NameEntry", "CountdownOnResume",
		"CountdownSeconds", "RestartSeconds",
	}, names)

	again := debugui.Fields(reflect.TypeFor[session.Config]())
	assert.Equal(t, fields, again)

	assert.Empty(t, debugui.Fields(reflect.TypeFor[int]()))

	type inner struct{ X int }
	type outer struct {
		hidden int
		In     *inner
	}
	f := debugui.Fields(reflect.TypeFor[outer]())
	require.Len(t, f, 1)
	assert.True(t, f[0].IsPointer)
	assert.True(t, f[0].IsStruct)
	assert.Equal(t, 1, f[0].Index)
}

func TestInspectRejectsNonStructs(t *testing.T) {
	assert.Panics(t, func() { debugui.Inspect("x", 3, false) })
	assert.Panics(t, func() { debugui.Inspect("x", session.Config{}, false) })
}

func TestFormatKinds(t *testing.T) {
	assert.Equal(t, "-", debugui.FormatKinds(nil))
	assert.Equal(t, "T I O", debugui.FormatKinds([]piece.Kind{piece.T, piece.I, piece.O}))
}

func TestPerformanceStats(t *testing.T) {
	ps := debugui.NewPerformanceStats(4)
	assert.Zero(t, ps.AverageMillis())

	for _, dt := range []float64{0.010, 0.020, 0.030, 0.040} {
		ps.Record(dt)
	}
	assert.InDelta(t, 25.0, ps.AverageMillis(), 1e-3)

	ps.Record(0.050)
	assert.InDelta(t, 35.0, ps.AverageMillis(), 1e-3, "the oldest sample is overwritten")
}

func TestSessionInspectorHistory(t *testing.T) {
	s := session.New(session.DefaultConfig(), constSource(piece.T))
	si := debugui.NewSessionInspector(s, 3)

	snap := s.Snapshot()
	for i := 1; i <= 4; i++ {
		snap.Droughts[piece.I] = i
		si.Sample(snap)
	}
	assert.Equal(t, []float32{2, 3, 4}, si.DroughtHistory(piece.I))
	assert.Equal(t, []float32{0, 0, 0}, si.DroughtHistory(piece.T))

	snap.Round++
	snap.Droughts[piece.I] = 9
	si.Sample(snap)
	assert.Equal(t, []float32{9}, si.DroughtHistory(piece.I), "a new round clears the history")
}

func TestSessionInspectorRules(t *testing.T) {
	s := session.New(session.DefaultConfig(), constSource(piece.T))
	si := debugui.NewSessionInspector(s, 3)

	cfg := s.Config()
	cfg.DroughtThreshold = 0
	cfg.NameEntry = false
	shown := si.EditRules(cfg)

	assert.Equal(t, s.Config(), shown, "the editor shows the rules in effect")
	assert.Positive(t, shown.DroughtThreshold)
	assert.False(t, shown.NameEntry)
}

func TestSessionInspectorInitials(t *testing.T) {
	s := session.New(session.DefaultConfig(), constSource(piece.O))
	s.Countdown(s.Config().CountdownSeconds)
	for i := 0; i < 20 && s.State() == session.Playing; i++ {
		s.HardDrop()
	}
	require.Equal(t, session.AwaitingNameEntry, s.State())
	si := debugui.NewSessionInspector(s, 3)

	assert.False(t, si.TypeInitials(""))
	assert.False(t, si.TypeInitials("7 !"))
	assert.Equal(t, session.AwaitingNameEntry, s.State(), "no letters, no confirmation")

	assert.True(t, si.TypeInitials("jk-lmn"))
	assert.Equal(t, session.GameOver, s.State())
	assert.Equal(t, "JKL", s.Result().Initials)
}
