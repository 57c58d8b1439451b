// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ebitencanvas

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gogpu/easel/canvas"
	"github.com/gogpu/easel/geom"
)

var mouseButtons = [...]struct {
	eb     ebiten.MouseButton
	button int
}{
	{ebiten.MouseButtonLeft, canvas.ButtonLeft},
	{ebiten.MouseButtonMiddle, canvas.ButtonMiddle},
	{ebiten.MouseButtonRight, canvas.ButtonRight},
}

// game adapts a Canvas to ebiten.Game.
type game struct {
	c *Canvas
}

// Update collects input. It ends the game loop once the canvas is closed
// or the drawing goroutine has returned.
func (g *game) Update() error {
	c := g.c
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.appDone {
		return ebiten.Termination
	}
	if ebiten.IsWindowBeingClosed() && !c.quitSent {
		c.events = append(c.events, canvas.Event{Kind: canvas.Quit})
		c.quitSent = true
	}

	c.keys = inpututil.AppendJustPressedKeys(c.keys[:0])
	for _, k := range c.keys {
		c.events = append(c.events, canvas.Event{Kind: canvas.KeyDown, Key: k.String()})
	}
	c.keys = inpututil.AppendJustReleasedKeys(c.keys[:0])
	for _, k := range c.keys {
		c.events = append(c.events, canvas.Event{Kind: canvas.KeyUp, Key: k.String()})
	}

	x, y := ebiten.CursorPosition()
	c.events = append(c.events, c.pointer.Move(geom.Pt(float64(x), float64(y)))...)
	for _, mb := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(mb.eb) {
			c.events = append(c.events, c.pointer.Press(mb.button)...)
		}
		if inpututil.IsMouseButtonJustReleased(mb.eb) {
			c.events = append(c.events, c.pointer.Release(mb.button)...)
		}
	}
	return nil
}

// Draw paints the last published frame.
func (g *game) Draw(screen *ebiten.Image) {
	c := g.c
	c.mu.Lock()
	defer c.mu.Unlock()
	c.render(screen)
}

// Layout keeps one screen pixel per canvas pixel.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	c := g.c
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.width, c.height
}
