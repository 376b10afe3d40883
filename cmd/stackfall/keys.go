package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/stackfall/input"
)

var bindings = map[input.Action][]ebiten.Key{
	input.Left:      {ebiten.KeyA, ebiten.KeyArrowLeft},
	input.Right:     {ebiten.KeyD, ebiten.KeyArrowRight},
	input.SoftDrop:  {ebiten.KeyS, ebiten.KeyArrowDown},
	input.RotateCW:  {ebiten.KeyW, ebiten.KeyArrowUp, ebiten.KeyX},
	input.RotateCCW: {ebiten.KeyZ},
	input.HardDrop:  {ebiten.KeySpace},
	input.Hold:      {ebiten.KeyC},
	input.Pause:     {ebiten.KeyEscape},
	input.SkipLevel: {ebiten.KeyP},
}

// keyboard reads the Ebiten keyboard.
type keyboard struct{}

func (keyboard) Pressed(a input.Action) bool {
	for _, k := range bindings[a] {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func (keyboard) Typed() []rune {
	return ebiten.AppendInputChars(nil)
}

func (keyboard) Backspace() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyBackspace)
}

func (keyboard) Enter() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter)
}
