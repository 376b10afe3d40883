package debugui

import (
	"fmt"
	"strings"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/AllenDang/cimgui-go/implot"
	"github.com/plus3/stackfall/input"
	"github.com/plus3/stackfall/piece"
	"github.com/plus3/stackfall/session"
)

var stateColors = map[session.State]imgui.Vec4{
	session.CountingDown:      imgui.NewVec4(1.0, 0.8, 0.0, 1.0),
	session.Playing:           imgui.NewVec4(0.0, 1.0, 0.0, 1.0),
	session.Paused:            imgui.NewVec4(1.0, 0.8, 0.0, 1.0),
	session.AwaitingNameEntry: imgui.NewVec4(0.4, 0.7, 1.0, 1.0),
	session.GameOver:          imgui.NewVec4(1.0, 0.3, 0.3, 1.0),
}

// SessionInspector shows a live session and lets a developer steer it: pause, restart,
// skip levels, edit the rules and enter initials.
type SessionInspector struct {
	Session *session.Session

	historyFrames int
	droughts      [piece.Count][]float32
	index         int
	samples       int
	round         int

	initials string
	rules    session.Config
}

// NewSessionInspector keeps historyFrames samples of drought history.
func NewSessionInspector(s *session.Session, historyFrames int) *SessionInspector {
	historyFrames = max(historyFrames, 1)
	si := &SessionInspector{
		Session:       s,
		historyFrames: historyFrames,
		rules:         s.Config(),
	}
	for k := range si.droughts {
		si.droughts[k] = make([]float32, historyFrames)
	}
	return si
}

// Sample appends the snapshot's drought counters to the history. A new round clears it.
func (si *SessionInspector) Sample(snap session.Snapshot) {
	if snap.Round != si.round {
		si.round = snap.Round
		si.index, si.samples = 0, 0
		for k := range si.droughts {
			clear(si.droughts[k])
		}
	}
	for k, d := range snap.Droughts {
		si.droughts[k][si.index] = float32(d)
	}
	si.index = (si.index + 1) % si.historyFrames
	si.samples = min(si.samples+1, si.historyFrames)
}

// DroughtHistory returns the recorded drought of k, oldest first.
func (si *SessionInspector) DroughtHistory(k piece.Kind) []float32 {
	ring := si.droughts[k]
	out := make([]float32, 0, si.samples)
	start := (si.index - si.samples + si.historyFrames) % si.historyFrames
	for i := 0; i < si.samples; i++ {
		out = append(out, ring[(start+i)%si.historyFrames])
	}
	return out
}

// FormatKinds renders kinds as letters, "-" when empty.
func FormatKinds(kinds []piece.Kind) string {
	if len(kinds) == 0 {
		return "-"
	}
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = k.String()
	}
	return strings.Join(parts, " ")
}

// Render draws the "Session" window.
func (si *SessionInspector) Render() {
	s := si.Session
	snap := s.Snapshot()
	si.Sample(snap)

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 400), imgui.CondOnce)
	if !imgui.BeginV("Session", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.TextColored(stateColors[snap.State], strings.ToUpper(snap.State.String()))
	imgui.Text(fmt.Sprintf("Round %d", snap.Round))
	if snap.State == session.CountingDown || snap.State == session.GameOver {
		imgui.Text(fmt.Sprintf("Timer: %.1fs", snap.Timer))
	}
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Score: %d", snap.Score))
	imgui.Text(fmt.Sprintf("Lines: %d  Level: %d", snap.Lines, snap.Level))
	imgui.Text(fmt.Sprintf("Frame: %d  Play time: %s", snap.Frame, snap.PlayTime.Round(time.Second/10)))
	imgui.Text(fmt.Sprintf("Active: %s %s at (%d,%d), ghost row %d",
		snap.Active.Kind, snap.Active.Rotation, snap.Active.Col, snap.Active.Row, snap.GhostRow))
	imgui.Text("Next: " + FormatKinds(snap.Next))
	if snap.HasHeld {
		imgui.Text(fmt.Sprintf("Hold: %s (ready: %t)", snap.Held, snap.CanHold))
	} else {
		imgui.Text("Hold: -")
	}

	imgui.Separator()
	si.renderControls(snap)

	if imgui.TreeNodeStr("Droughts") {
		si.renderDroughts(snap)
		imgui.TreePop()
	}
	if imgui.TreeNodeStr("Board") {
		imgui.Text(snap.Grid.String())
		imgui.TreePop()
	}
	if imgui.TreeNodeStr("Rules") {
		if Inspect("rules", &si.rules, true) {
			si.applyRules()
		}
		imgui.TreePop()
	}
	if imgui.TreeNodeStr("Result") {
		res := s.Result()
		Inspect("result", &res, false)
		imgui.TreePop()
	}

	imgui.End()
}

func (si *SessionInspector) renderControls(snap session.Snapshot) {
	s := si.Session
	switch snap.State {
	case session.Playing:
		imgui.PushStyleColorVec4(imgui.ColButton, imgui.NewVec4(0.7, 0.2, 0.2, 1.0))
		if imgui.Button("Pause") {
			s.Pause()
		}
		imgui.PopStyleColor()
		imgui.SameLine()
		if imgui.Button("+10 Lines") {
			s.AddLines(10)
		}
	case session.Paused:
		imgui.PushStyleColorVec4(imgui.ColButton, imgui.NewVec4(0.2, 0.7, 0.2, 1.0))
		if imgui.Button("Resume") {
			s.Resume()
		}
		imgui.PopStyleColor()
	case session.AwaitingNameEntry:
		imgui.SetNextItemWidth(80)
		if imgui.InputTextWithHint("##initials", "AAA", &si.initials, imgui.InputTextFlagsNone, nil) {
			si.initials = input.Initials(si.initials)
		}
		imgui.SameLine()
		if si.initials == "" {
			imgui.Text("Type initials")
		} else if imgui.Button("Confirm") {
			si.confirmInitials()
		}
	}

	if imgui.Button("New Round") {
		s.StartNewRound(si.rules.AntiDrought)
	}
}

// applyRules hands the edited rules to the session and reads back what it kept, so
// defaulted fields show their effective value.
func (si *SessionInspector) applyRules() {
	si.Session.SetConfig(si.rules)
	si.rules = si.Session.Config()
}

// confirmInitials submits the typed initials. Nothing happens until at least one letter
// has been entered.
func (si *SessionInspector) confirmInitials() bool {
	initials := input.Initials(si.initials)
	if initials == "" {
		return false
	}
	si.Session.ConfirmNameEntry(initials)
	si.initials = ""
	return true
}

func (si *SessionInspector) renderDroughts(snap session.Snapshot) {
	imgui.Text(fmt.Sprintf("Anti-drought: %t  Longest: %d", snap.AntiDrought, snap.MaxDrought))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("DroughtTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Kind")
		imgui.TableSetupColumn("Draws since seen")
		imgui.TableHeadersRow()
		for _, k := range piece.Kinds() {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(k.String())
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", snap.Droughts[k]))
		}
		imgui.EndTable()
	}

	if si.samples == 0 {
		return
	}
	if implot.BeginPlotV("Drought History", imgui.NewVec2(-1, 200), 0) {
		implot.SetupAxesV("Frame", "Draws", 0, implot.AxisFlagsAutoFit)
		for _, k := range piece.Kinds() {
			history := si.DroughtHistory(k)
			implot.PlotLineFloatPtrInt(k.String(), &history[0], int32(len(history)))
		}
		implot.EndPlot()
	}
}
