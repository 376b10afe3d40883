package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/plus3/stackfall/board"
	"github.com/plus3/stackfall/frame"
	"github.com/plus3/stackfall/piece"
	"github.com/plus3/stackfall/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cycleSource struct{ next int }

func (c *cycleSource) IntN(n int) int {
	v := c.next % n
	c.next++
	return v
}

func TestPlan(t *testing.T) {
	t.Run("flat board lays an I piece against the wall", func(t *testing.T) {
		p, ok := Plan(board.Grid{}, piece.I, session.SpawnRow, DefaultWeights)
		require.True(t, ok)
		assert.Equal(t, piece.Spawn, p.Rotation)
		assert.Equal(t, 0, p.Col)
		assert.Zero(t, p.Lines)
	})

	t.Run("fills a well to clear a line", func(t *testing.T) {
		g := board.FromRows("IIIIIIIII.").Grid()
		p, ok := Plan(g, piece.I, session.SpawnRow, DefaultWeights)
		require.True(t, ok)
		assert.Equal(t, 1, p.Lines)
		for _, c := range piece.ShapeOf(piece.I, p.Rotation).At(p.Col, 0) {
			assert.Equal(t, board.Width-1, c.Col)
		}
	})

	t.Run("no placement on a full stack", func(t *testing.T) {
		rows := make([]string, board.Height)
		for i := range rows {
			rows[i] = "ZZZZ.ZZZZZ"
		}
		_, ok := Plan(board.FromRows(rows...).Grid(), piece.O, session.SpawnRow, DefaultWeights)
		assert.False(t, ok)
	})
}

// newSoak wires a bot slow enough that rising gravity eventually beats it.
func newSoak(cfg session.Config, limit int, done func()) (*frame.Scheduler, *RoundCollector) {
	res := frame.NewResources()
	frame.Provide(res, session.New(cfg, &cycleSource{}))
	scheduler := frame.NewScheduler(res)
	scheduler.Register(&sessionSystem{})
	scheduler.Register(&BotSystem{Weights: DefaultWeights, Delay: 40})
	collector := &RoundCollector{Limit: limit, Done: done}
	scheduler.Register(collector)
	return scheduler, collector
}

func TestBotPlaysRounds(t *testing.T) {
	cfg := session.DefaultConfig()
	cfg.NameEntry = false

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	scheduler, collector := newSoak(cfg, 2, cancel)

	var timing Stats
	updates := simulate(ctx, scheduler, &timing)
	require.Len(t, collector.Results, 2, "rounds should finish well before the timeout")
	assert.Equal(t, int64(len(timing.Samples)), updates)

	for i, res := range collector.Results {
		assert.Equal(t, i+1, res.Round)
		assert.Positive(t, res.Pieces)
		assert.Positive(t, res.Lines, "the bot clears lines")
	}
}

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3, 1, 2}}
	s.Finalize()
	assert.Equal(t, time.Duration(1), s.Min)
	assert.Equal(t, time.Duration(3), s.Max)
	assert.Equal(t, time.Duration(2), s.Avg)

	var empty Stats
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestReport(t *testing.T) {
	r := &Report{
		Duration: time.Second,
		Seed:     7,
		Rounds: []session.Result{
			{Score: 100, Lines: 2, Pieces: 20, Drought: 10, Duration: time.Second},
			{Score: 300, Lines: 4, Pieces: 30, Drought: 30, Duration: 2 * time.Second},
		},
	}

	sum := r.Summary()
	assert.Equal(t, 2, sum.Count)
	assert.Equal(t, 300, sum.BestScore)
	assert.InDelta(t, 200.0, sum.AvgScore, 1e-9)
	assert.Equal(t, 30, sum.WorstDrought)
	assert.Equal(t, 3*time.Second, sum.PlayTime)

	var buf bytes.Buffer
	require.NoError(t, r.Generate(&buf))
	out := buf.String()
	assert.Contains(t, out, "**Finished Rounds:** 2")
	assert.Contains(t, out, "**Avg Score:** 200.0")
	assert.Contains(t, out, "**Longest Drought:** 30 (avg 20.0)")
	assert.NotContains(t, out, "GC Pause")

	assert.Zero(t, (&Report{}).Summary().Count)
}
