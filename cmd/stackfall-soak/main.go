package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/stackfall/frame"
	"github.com/plus3/stackfall/gravity"
	"github.com/plus3/stackfall/sequence"
	"github.com/plus3/stackfall/session"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	rounds := flag.Int("rounds", 0, "Stop after this many finished rounds. 0 runs for the full duration.")
	seed := flag.Uint64("seed", 1, "Seed for piece draws.")
	antiDrought := flag.Bool("anti-drought", false, "Play with anti-drought forcing.")
	threshold := flag.Int("drought-threshold", sequence.DefaultThreshold, "Draws without a kind before anti-drought forces it.")
	delay := flag.Int("delay", 6, "Frames the bot waits before placing each piece.")
	realtime := flag.Bool("realtime", false, "Run at 60 frames per wall clock second instead of as fast as possible.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting stackfall soak test...")

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	cfg := session.DefaultConfig()
	cfg.AntiDrought = *antiDrought
	cfg.DroughtThreshold = *threshold
	cfg.NameEntry = false
	s := session.New(cfg, rand.New(rand.NewPCG(*seed, *seed>>1|1)))

	res := frame.NewResources()
	frame.Provide(res, s)
	scheduler := frame.NewScheduler(res)
	scheduler.Register(&sessionSystem{})
	scheduler.Register(&BotSystem{Weights: DefaultWeights, Delay: *delay})
	collector := &RoundCollector{Limit: *rounds, Done: cancel}
	scheduler.Register(collector)

	report := &Report{
		Duration:       *duration,
		Seed:           *seed,
		AntiDrought:    *antiDrought,
		Threshold:      *threshold,
		Realtime:       *realtime,
		GCPauseMetrics: *gcPauseMetrics,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running for %s...\n", *duration)
	startTime := time.Now()
	if *realtime {
		scheduler.Run(ctx, time.Second/gravity.FramesPerSecond)
	} else {
		report.TotalUpdates = simulate(ctx, scheduler, &report.UpdateTime)
	}

	report.TotalTime = time.Since(startTime)
	report.Rounds = collector.Results
	report.Scheduler = scheduler.GetStats()
	if *realtime {
		report.TotalUpdates = report.Scheduler.Frames
	}
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Soak finished.")

	fmt.Println("\n\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

// simulate steps the scheduler with a fixed 60 Hz delta until ctx is done and returns the
// number of frames run.
func simulate(ctx context.Context, scheduler *frame.Scheduler, timing *Stats) int64 {
	const dt = 1.0 / gravity.FramesPerSecond

	var updates int64
	for ctx.Err() == nil {
		updateStart := time.Now()
		scheduler.Once(dt)
		timing.Samples = append(timing.Samples, time.Since(updateStart))
		updates++
	}
	return updates
}

type sessionSystem struct {
	Session frame.Resource[session.Session]
}

func (s *sessionSystem) Execute(f *frame.UpdateFrame) {
	s.Session.MustGet().Advance(f.DeltaTime)
}
