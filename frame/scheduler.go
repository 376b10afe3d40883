package frame

import (
	"context"
	"reflect"
	"strings"
	"time"
)

// SchedulerStats summarizes how the registered systems have run.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Frames          int64
	Systems         []SystemStats
}

// SystemStats is the timing of one system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemTiming struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler executes systems in registration order.
type Scheduler struct {
	resources *Resources
	systems   []System
	timings   []*systemTiming
	frames    int64
}

// NewScheduler creates a scheduler whose systems share resources. A nil store is replaced
// with an empty one.
func NewScheduler(resources *Resources) *Scheduler {
	if resources == nil {
		resources = NewResources()
	}
	return &Scheduler{
		resources: resources,
		systems:   make([]System, 0),
	}
}

// Resources returns the store shared by the systems.
func (s *Scheduler) Resources() *Resources {
	return s.resources
}

// Register appends a system and binds its Resource fields.
func (s *Scheduler) Register(system System) {
	s.bindResources(system)
	s.systems = append(s.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	s.timings = append(s.timings, &systemTiming{
		name:        systemType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
}

func (s *Scheduler) bindResources(system System) {
	value := reflect.ValueOf(system)
	if value.Kind() == reflect.Ptr {
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return
	}

	valueType := value.Type()
	for i := 0; i < value.NumField(); i++ {
		field := value.Field(i)
		if !field.CanSet() || field.Kind() != reflect.Struct {
			continue
		}
		if !strings.HasPrefix(field.Type().Name(), "Resource[") {
			continue
		}
		initMethod := field.Addr().MethodByName("Init")
		if !initMethod.IsValid() {
			panic("frame: Init method not found on Resource field: " + valueType.Field(i).Name)
		}
		initMethod.Call([]reflect.Value{reflect.ValueOf(s.resources)})
	}
}

// Once runs every system with the given delta time in seconds, then flushes the frame's
// deferred commands.
func (s *Scheduler) Once(dt float64) {
	frame := newUpdateFrame(dt, s.resources)

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)

		t := s.timings[i]
		t.executionCount++
		t.lastDuration = duration
		t.totalDuration += duration
		t.minDuration = min(t.minDuration, duration)
		t.maxDuration = max(t.maxDuration, duration)
	}

	frame.Commands.Flush()
	s.frames++
}

// Run calls Once every interval until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Once(dt)
		}
	}
}

// GetStats returns per-system timing.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Frames:      s.frames,
		Systems:     make([]SystemStats, len(s.timings)),
	}

	for i, t := range s.timings {
		var avg time.Duration
		minDuration := t.minDuration
		if t.executionCount > 0 {
			avg = t.totalDuration / time.Duration(t.executionCount)
		} else {
			minDuration = 0
		}

		stats.Systems[i] = SystemStats{
			Name:           t.name,
			ExecutionCount: t.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    t.maxDuration,
			AvgDuration:    avg,
			LastDuration:   t.lastDuration,
			TotalDuration:  t.totalDuration,
		}
		stats.TotalExecutions += t.executionCount
	}
	return stats
}
