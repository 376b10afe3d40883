package main

import (
	"flag"
	"log"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/stackfall/debugui"
	debugui_ebiten "github.com/plus3/stackfall/debugui/ebiten"
	"github.com/plus3/stackfall/frame"
	"github.com/plus3/stackfall/sequence"
	"github.com/plus3/stackfall/session"
)

func main() {
	seed := flag.Uint64("seed", 0, "Seed for piece draws. 0 picks one from the clock.")
	antiDrought := flag.Bool("anti-drought", false, "Force a piece kind that has not appeared for -drought-threshold draws.")
	threshold := flag.Int("drought-threshold", sequence.DefaultThreshold, "Draws without a kind before anti-drought forces it.")
	nameEntry := flag.Bool("name-entry", true, "Ask for initials when a round ends.")
	resumeCountdown := flag.Bool("resume-countdown", false, "Count down again when resuming from pause.")
	debug := flag.Bool("debug", false, "Show the ImGui debug windows.")
	scale := flag.Float64("scale", 1.5, "Window scale factor.")
	flag.Parse()

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	log.Printf("Starting stackfall (seed %d)", *seed)

	cfg := session.DefaultConfig()
	cfg.AntiDrought = *antiDrought
	cfg.DroughtThreshold = *threshold
	cfg.NameEntry = *nameEntry
	cfg.CountdownOnResume = *resumeCountdown
	game := newGame(cfg, rand.New(rand.NewPCG(*seed, *seed>>1|1)))

	if *debug {
		game.enableDebugUI(debugui_ebiten.NewImguiBackend("stackfall (debug)", 1280, 720))
	} else {
		factor := max(*scale, 0.5)
		ebiten.SetWindowSize(int(float64(screenWidth)*factor), int(float64(screenHeight)*factor))
		ebiten.SetWindowTitle("stackfall")
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("stackfall: %v", err)
	}
}

// Game is the Ebiten entry point. Update runs the frame scheduler; Draw paints the last
// snapshot the render system captured.
type Game struct {
	scheduler *frame.Scheduler
	session   *session.Session
	render    *RenderSystem
	timer     *frame.Timer

	imgui *debugui_ebiten.ImguiBackend
	perf  *debugui.PerformanceStats
}

func newGame(cfg session.Config, src sequence.Source) *Game {
	s := session.New(cfg, src)

	res := frame.NewResources()
	frame.Provide(res, s)
	frame.Provide(res, &RoundInfo{})
	frame.Provide(res, &NameEntry{})

	scheduler := frame.NewScheduler(res)
	scheduler.Register(&SessionSystem{})
	scheduler.Register(NewKeySystem(keyboard{}))
	scheduler.Register(&RoundLogSystem{Logf: log.Printf})
	render := &RenderSystem{}
	scheduler.Register(render)

	return &Game{
		scheduler: scheduler,
		session:   s,
		render:    render,
		timer:     frame.NewTimer(250 * time.Millisecond),
	}
}

func (g *Game) enableDebugUI(backend *debugui_ebiten.ImguiBackend) {
	g.imgui = backend
	g.perf = debugui.NewPerformanceStats(120)
	inspector := debugui.NewSessionInspector(g.session, 600)

	windows := &debugui.Windows{}
	windows.Add("Session", inspector.Render)
	windows.Add("Performance", func() {
		g.perf.Render(g.scheduler.GetStats())
	})

	res := g.scheduler.Resources()
	frame.Provide(res, windows)
	frame.Provide(res, &debugui.InputState{})
	g.scheduler.Register(&debugui.System{})
}

func (g *Game) Update() error {
	dt := g.timer.Delta()
	if g.imgui == nil {
		g.scheduler.Once(dt)
		return nil
	}

	g.perf.Record(dt)
	g.imgui.BeginFrame()
	g.scheduler.Once(dt)
	g.imgui.EndFrame()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(screen)
	if g.imgui != nil {
		g.imgui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imgui != nil {
		g.imgui.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return screenWidth, screenHeight
}
