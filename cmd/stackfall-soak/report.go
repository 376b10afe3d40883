package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/stackfall/frame"
	"github.com/plus3/stackfall/session"
)

type Report struct {
	// Configuration
	Duration    time.Duration
	Seed        uint64
	AntiDrought bool
	Threshold   int
	Realtime    bool

	// Results
	Rounds         []session.Result
	TotalUpdates   int64
	TotalTime      time.Duration
	UpdateTime     Stats
	Scheduler      *frame.SchedulerStats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// RoundSummary aggregates the finished rounds.
type RoundSummary struct {
	Count        int
	BestScore    int
	AvgScore     float64
	AvgLines     float64
	AvgPieces    float64
	WorstDrought int
	AvgDrought   float64
	PlayTime     time.Duration
}

func (r *Report) Summary() RoundSummary {
	sum := RoundSummary{Count: len(r.Rounds)}
	if sum.Count == 0 {
		return sum
	}

	var score, lines, pieces, drought int
	for _, res := range r.Rounds {
		score += res.Score
		lines += res.Lines
		pieces += res.Pieces
		drought += res.Drought
		sum.BestScore = max(sum.BestScore, res.Score)
		sum.WorstDrought = max(sum.WorstDrought, res.Drought)
		sum.PlayTime += res.Duration
	}
	n := float64(sum.Count)
	sum.AvgScore = float64(score) / n
	sum.AvgLines = float64(lines) / n
	sum.AvgPieces = float64(pieces) / n
	sum.AvgDrought = float64(drought) / n
	return sum
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Stackfall Soak Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Seed:** {{.Seed}}
- **Anti-Drought:** {{.AntiDrought}} (threshold {{.Threshold}})
- **Real Time:** {{.Realtime}}

## Rounds
{{- with .Summary}}
- **Finished Rounds:** {{.Count}}
{{- if .Count}}
- **Best Score:** {{.BestScore}}
- **Avg Score:** {{printf "%.1f" .AvgScore}}
- **Avg Lines:** {{printf "%.1f" .AvgLines}}
- **Avg Pieces:** {{printf "%.1f" .AvgPieces}}
- **Longest Drought:** {{.WorstDrought}} (avg {{printf "%.1f" .AvgDrought}})
- **Simulated Play Time:** {{.PlayTime}}
{{- end}}
{{- end}}

## Performance Results
- **Total Updates:** {{.TotalUpdates}}
- **Total Test Time:** {{.TotalTime}}
{{- if .UpdateTime.Samples}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}
{{- end}}
{{- with .Scheduler}}
- **Systems:**
{{- range .Systems}}
  - **{{.Name}}:** {{.ExecutionCount}} runs, avg {{.AvgDuration}}, max {{.MaxDuration}}
{{- end}}
{{- end}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Heap In Use:** {{mb .MemStatsEnd.HeapInuse}} MiB
{{end}}`

	fm := template.FuncMap{
		"mb": func(v uint64) string {
			return fmt.Sprintf("%.2f", float64(v)/1024/1024)
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
