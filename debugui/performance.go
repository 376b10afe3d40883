package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/stackfall/frame"
)

// PerformanceStats keeps a ring of recent frame times and draws them with the scheduler's
// per-system timing.
type PerformanceStats struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

// NewPerformanceStats keeps historyFrames samples.
func NewPerformanceStats(historyFrames int) *PerformanceStats {
	historyFrames = max(historyFrames, 1)
	return &PerformanceStats{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

// Record adds a frame time in seconds.
func (ps *PerformanceStats) Record(dt float64) {
	ps.frameHistory[ps.frameIndex] = float32(dt * 1000)
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames
}

// AverageMillis is the mean of the recorded frame times.
func (ps *PerformanceStats) AverageMillis() float32 {
	var total float32
	for _, ft := range ps.frameHistory {
		total += ft
	}
	return total / float32(ps.historyFrames)
}

// Render draws the "Performance" window.
func (ps *PerformanceStats) Render(stats *frame.SchedulerStats) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 420), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 260), imgui.CondOnce)
	if !imgui.BeginV("Performance", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	avg := ps.AverageMillis()
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000.0/avg))
	} else {
		imgui.Text("Avg Frame Time: -")
	}
	imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	if imgui.TreeNodeStr("Systems") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, sys := range stats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(sys.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.MaxDuration.String())
			}
			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}
