package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/stackfall/board"
	"github.com/plus3/stackfall/frame"
	"github.com/plus3/stackfall/piece"
	"github.com/plus3/stackfall/session"
)

const (
	cellSize     = 24
	previewSize  = 14
	boardX       = 6 * cellSize
	boardY       = cellSize
	panelX       = boardX + board.Width*cellSize + cellSize
	screenWidth  = panelX + 6*cellSize
	screenHeight = boardY + board.Height*cellSize + cellSize
)

var (
	backgroundColor = color.RGBA{24, 24, 32, 255}
	wellColor       = color.RGBA{12, 12, 16, 255}
	frameColor      = color.RGBA{90, 90, 110, 255}
	dimColor        = color.RGBA{0, 0, 0, 150}
)

var kindColors = [piece.Count]color.RGBA{
	piece.I: {0, 220, 230, 255},
	piece.J: {40, 80, 230, 255},
	piece.L: {240, 150, 30, 255},
	piece.O: {240, 220, 40, 255},
	piece.S: {60, 210, 80, 255},
	piece.T: {170, 60, 220, 255},
	piece.Z: {230, 50, 60, 255},
}

func ghostColor(k piece.Kind) color.RGBA {
	c := kindColors[k]
	return color.RGBA{c.R / 4, c.G / 4, c.B / 4, 255}
}

// RenderSystem captures the frame's snapshot during Update so Draw paints a consistent
// state.
type RenderSystem struct {
	Session frame.Resource[session.Session]
	Names   frame.Resource[NameEntry]
	Round   frame.Resource[RoundInfo]

	snap     session.Snapshot
	initials string
	roundID  string
	ready    bool
}

func (r *RenderSystem) Execute(f *frame.UpdateFrame) {
	r.snap = r.Session.MustGet().Snapshot()
	if names := r.Names.Get(); names != nil {
		r.initials = string(names.Initials)
	}
	if info := r.Round.Get(); info != nil {
		r.roundID = info.ID.String()
	}
	r.ready = true
}

// Draw paints the last captured snapshot.
func (r *RenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	if !r.ready {
		return
	}
	snap := r.snap

	vector.DrawFilledRect(screen, boardX, boardY, board.Width*cellSize, board.Height*cellSize, wellColor, false)
	if snap.State == session.Playing || snap.State == session.Paused {
		r.drawGhost(screen, snap)
	}
	for row := range board.Height {
		for col := range board.Width {
			if k, ok := snap.Grid[row][col].Kind(); ok {
				drawCell(screen, col, row, kindColors[k])
			}
		}
	}
	vector.StrokeRect(screen, boardX-1, boardY-1, board.Width*cellSize+2, board.Height*cellSize+2, 2, frameColor, false)

	r.drawPanels(screen, snap)
	r.drawOverlay(screen, snap)
}

func drawCell(screen *ebiten.Image, col, row int, c color.RGBA) {
	x := float32(boardX + col*cellSize)
	y := float32(boardY + row*cellSize)
	vector.DrawFilledRect(screen, x+1, y+1, cellSize-2, cellSize-2, c, false)
}

func (r *RenderSystem) drawGhost(screen *ebiten.Image, snap session.Snapshot) {
	if snap.GhostRow == snap.Active.Row {
		return
	}
	ghost := snap.Active
	ghost.Row = snap.GhostRow
	for _, c := range ghost.Cells() {
		if c.Row >= 0 && c.Row < board.Height {
			drawCell(screen, c.Col, c.Row, ghostColor(ghost.Kind))
		}
	}
}

// drawPreview draws kind k in its spawn rotation with its top-left at (x,y).
func drawPreview(screen *ebiten.Image, k piece.Kind, x, y float32, c color.RGBA) {
	shape := piece.ShapeOf(k, piece.Spawn)
	for _, cell := range shape.Cells {
		cx := x + float32(cell.Col*previewSize)
		cy := y + float32((cell.Row-shape.Bounds.MinRow)*previewSize)
		vector.DrawFilledRect(screen, cx+1, cy+1, previewSize-2, previewSize-2, c, false)
	}
}

func (r *RenderSystem) drawPanels(screen *ebiten.Image, snap session.Snapshot) {
	ebitenutil.DebugPrintAt(screen, "HOLD", cellSize, boardY)
	if snap.HasHeld {
		c := kindColors[snap.Held]
		if !snap.CanHold {
			c = ghostColor(snap.Held)
		}
		drawPreview(screen, snap.Held, cellSize, boardY+20, c)
	}

	ebitenutil.DebugPrintAt(screen, "NEXT", panelX, boardY)
	for i, k := range snap.Next {
		drawPreview(screen, k, panelX, float32(boardY+20+i*3*previewSize), kindColors[k])
	}

	statsY := boardY + 20 + len(snap.Next)*3*previewSize + cellSize
	stats := fmt.Sprintf("SCORE\n%d\n\nLINES\n%d\n\nLEVEL\n%d", snap.Score, snap.Lines, snap.Level)
	ebitenutil.DebugPrintAt(screen, stats, panelX, statsY)

	if snap.AntiDrought {
		ebitenutil.DebugPrintAt(screen, "ANTI-\nDROUGHT", cellSize, screenHeight-4*cellSize)
	}
	if len(r.roundID) >= 8 {
		ebitenutil.DebugPrintAt(screen, r.roundID[:8], cellSize, screenHeight-2*cellSize)
	}
}

func (r *RenderSystem) drawOverlay(screen *ebiten.Image, snap session.Snapshot) {
	var msg string
	switch snap.State {
	case session.CountingDown:
		msg = fmt.Sprintf("%d", int(math.Ceil(snap.Timer)))
	case session.Paused:
		msg = "PAUSED\n\nESC TO RESUME"
	case session.AwaitingNameEntry:
		msg = fmt.Sprintf("GAME OVER\n\nINITIALS: %-3s\n\nENTER TO SAVE", r.initials+"_")
	case session.GameOver:
		msg = fmt.Sprintf("GAME OVER\n\nSCORE %d\n\nNEXT ROUND IN %d", snap.Score, int(math.Ceil(snap.Timer)))
	default:
		return
	}
	vector.DrawFilledRect(screen, boardX, boardY, board.Width*cellSize, board.Height*cellSize, dimColor, false)
	ebitenutil.DebugPrintAt(screen, msg, boardX+cellSize, boardY+board.Height*cellSize/2-cellSize)
}
