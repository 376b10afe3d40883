package frame_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/stackfall/frame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counter struct {
	Value int
	Time  float64
}

type countSystem struct {
	Counter      frame.Resource[counter]
	ExecuteCount int
}

func (s *countSystem) Execute(f *frame.UpdateFrame) {
	s.ExecuteCount++
	c := s.Counter.MustGet()
	c.Value++
	c.Time += f.DeltaTime
}

type traceSystem struct {
	name  string
	trace *[]string
}

func (s *traceSystem) Execute(f *frame.UpdateFrame) {
	*s.trace = append(*s.trace, s.name)
	name := s.name
	f.Commands.Defer(func() {
		*s.trace = append(*s.trace, "defer:"+name)
	})
}

func TestScheduler(t *testing.T) {
	t.Run("resource fields are bound on register", func(t *testing.T) {
		res := frame.NewResources()
		c := &counter{}
		frame.Provide(res, c)

		scheduler := frame.NewScheduler(res)
		sys := &countSystem{}
		scheduler.Register(sys)

		scheduler.Once(0.5)
		scheduler.Once(0.25)

		assert.Equal(t, 2, sys.ExecuteCount)
		assert.Equal(t, 2, c.Value)
		assert.InDelta(t, 0.75, c.Time, 1e-9)
	})

	t.Run("resources provided after register are visible", func(t *testing.T) {
		scheduler := frame.NewScheduler(nil)
		sys := &countSystem{}
		scheduler.Register(sys)
		assert.Nil(t, sys.Counter.Get())

		frame.Provide(scheduler.Resources(), &counter{Value: 10})
		scheduler.Once(1)
		assert.Equal(t, 11, sys.Counter.Get().Value)
	})

	t.Run("missing resource panics", func(t *testing.T) {
		scheduler := frame.NewScheduler(nil)
		scheduler.Register(&countSystem{})
		assert.Panics(t, func() { scheduler.Once(1) })
	})

	t.Run("systems run in order before deferred commands", func(t *testing.T) {
		var trace []string
		scheduler := frame.NewScheduler(nil)
		scheduler.Register(&traceSystem{name: "session", trace: &trace})
		scheduler.Register(&traceSystem{name: "input", trace: &trace})
		scheduler.Register(&traceSystem{name: "render", trace: &trace})

		scheduler.Once(1.0 / 60)

		assert.Equal(t, []string{
			"session", "input", "render",
			"defer:session", "defer:input", "defer:render",
		}, trace)
	})

	t.Run("context cancellation in run", func(t *testing.T) {
		res := frame.NewResources()
		frame.Provide(res, &counter{})
		scheduler := frame.NewScheduler(res)
		sys := &countSystem{}
		scheduler.Register(sys)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			scheduler.Run(ctx, time.Millisecond)
			close(done)
		}()

		time.Sleep(10 * time.Millisecond)
		cancel()

		select {
		case <-done:
		case <-time.After(100 * time.Millisecond):
			t.Fatal("scheduler did not stop after context cancellation")
		}
		assert.Positive(t, sys.ExecuteCount)
	})

	t.Run("stats", func(t *testing.T) {
		res := frame.NewResources()
		frame.Provide(res, &counter{})
		scheduler := frame.NewScheduler(res)
		scheduler.Register(&countSystem{})

		empty := scheduler.GetStats()
		require.Len(t, empty.Systems, 1)
		assert.Zero(t, empty.Systems[0].MinDuration)

		for i := 0; i < 3; i++ {
			scheduler.Once(0)
		}
		stats := scheduler.GetStats()
		assert.Equal(t, 1, stats.SystemCount)
		assert.Equal(t, int64(3), stats.TotalExecutions)
		assert.Equal(t, int64(3), stats.Frames)
		assert.Equal(t, "countSystem", stats.Systems[0].Name)
		assert.Equal(t, int64(3), stats.Systems[0].ExecutionCount)
		assert.LessOrEqual(t, stats.Systems[0].MinDuration, stats.Systems[0].MaxDuration)
	})
}

func TestCommands(t *testing.T) {
	scheduler := frame.NewScheduler(nil)
	var order []int
	scheduler.Register(systemFunc(func(f *frame.UpdateFrame) {
		f.Commands.Defer(func() {
			order = append(order, 1)
			f.Commands.Defer(func() { order = append(order, 3) })
		})
		f.Commands.Defer(func() { order = append(order, 2) })
		assert.Equal(t, 2, f.Commands.Len())
	}))

	scheduler.Once(0)
	assert.Equal(t, []int{1, 2, 3}, order, "commands queued while flushing run in the same flush")

	scheduler.Once(0)
	assert.Equal(t, []int{1, 2, 3, 1, 2, 3}, order)
}

type systemFunc func(f *frame.UpdateFrame)

func (fn systemFunc) Execute(f *frame.UpdateFrame) { fn(f) }
