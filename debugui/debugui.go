// Package debugui draws Dear ImGui developer windows over the game: a live view of the
// session, an editor for its rules and the frame scheduler's timing.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/stackfall/frame"
)

// Window is one ImGui window. Render is called once per frame between the backend's
// BeginFrame and EndFrame.
type Window struct {
	Name   string
	Render func()
}

// Windows is the resource listing every window to draw.
type Windows struct {
	list []Window
}

// Add appends a window.
func (w *Windows) Add(name string, render func()) {
	w.list = append(w.list, Window{Name: name, Render: render})
}

// Names returns the window names in draw order.
func (w *Windows) Names() []string {
	names := make([]string, len(w.list))
	for i, win := range w.list {
		names[i] = win.Name
	}
	return names
}

// InputState tells other systems whether ImGui wants the keyboard or mouse this frame.
// Game keys should be ignored while WantCaptureKeyboard is set.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// System refreshes InputState and queues every window's Render after the other systems.
type System struct {
	Windows    frame.Resource[Windows]
	InputState frame.Resource[InputState]
}

func (s *System) Execute(f *frame.UpdateFrame) {
	if state := s.InputState.Get(); state != nil {
		io := imgui.CurrentIO()
		state.WantCaptureMouse = io.WantCaptureMouse()
		state.WantCaptureKeyboard = io.WantCaptureKeyboard()
	}

	windows := s.Windows.Get()
	if windows == nil {
		return
	}
	for _, w := range windows.list {
		f.Commands.Defer(w.Render)
	}
}
