// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ebitencanvas implements canvas.Canvas as a desktop window using
// Ebitengine.
//
// Ebitengine owns the main thread, so the drawing program runs on its own
// goroutine:
//
//	func main() {
//	    err := ebitencanvas.Run(func() error {
//	        scr, err := easel.NewScreen(easel.WithBackend("window"))
//	        ...
//	    })
//	}
//
// The screen stages changes on the canvas and Flush publishes them as the
// next frame; the game loop draws the last published frame and collects
// input for PollEvents. Closing the window delivers a canvas.Quit event.
//
// The package registers itself as the "window" backend, which always
// returns the canvas driven by Run.
package ebitencanvas

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"slices"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"github.com/gogpu/easel/canvas"
)

// ErrClosed is returned by operations on a closed canvas.
var ErrClosed = errors.New("ebitencanvas: canvas is closed")

var std = New()

func init() {
	canvas.Register("window", func() canvas.Canvas { return std })
}

// Default returns the canvas used by Run and the "window" backend.
func Default() *Canvas { return std }

// Run drives the default canvas. See Canvas.Run.
func Run(app func() error) error { return std.Run(app) }

// textureEntry caches the GPU copy of an image primitive.
type textureEntry struct {
	src image.Image
	img *ebiten.Image
}

type faceKey struct {
	bold, italic bool
	size         float64
}

// Canvas is a window canvas. All methods are safe for concurrent use; the
// game loop and the drawing goroutine share it.
type Canvas struct {
	mu sync.Mutex

	width, height int
	title         string
	background    color.Color
	picture       image.Image
	grid          canvas.Grid

	// staged state, changed by the screen
	shapes map[canvas.Handle]canvas.Primitive
	order  []canvas.Handle
	next   canvas.Handle

	// published state, drawn by the game loop
	frame     []canvas.Primitive
	frameBG   color.Color
	framePic  image.Image
	frameGrid canvas.Grid
	handles   []canvas.Handle

	textures map[canvas.Handle]textureEntry
	stale    []*ebiten.Image
	faces    map[faceKey]font.Face
	white    *ebiten.Image
	picTex   textureEntry

	events  []canvas.Event
	pointer canvas.Pointer
	keys    []ebiten.Key

	quitSent bool
	closed   bool
	appDone  bool
	lost     bool

	log *slog.Logger
}

// New returns an unopened canvas. Most programs use Default.
func New() *Canvas {
	return &Canvas{
		width:    640,
		height:   480,
		shapes:   make(map[canvas.Handle]canvas.Primitive),
		textures: make(map[canvas.Handle]textureEntry),
		faces:    make(map[faceKey]font.Face),
		log:      slog.New(slog.DiscardHandler),
	}
}

// SetLogger sets the logger used for diagnostics.
func (c *Canvas) SetLogger(l *slog.Logger) {
	if l == nil {
		return
	}
	c.mu.Lock()
	c.log = l
	c.mu.Unlock()
}

// Run starts app on a new goroutine and runs the Ebitengine game loop on
// the calling one, which must be the main goroutine. It returns once the
// window is gone and app has returned.
func (c *Canvas) Run(app func() error) error {
	done := make(chan error, 1)
	go func() {
		err := app()
		c.mu.Lock()
		c.appDone = true
		c.mu.Unlock()
		done <- err
	}()

	ebiten.SetWindowClosingHandled(true)
	runErr := ebiten.RunGame(&game{c: c})

	c.mu.Lock()
	c.lost = true
	c.mu.Unlock()
	appErr := <-done
	if runErr != nil {
		runErr = fmt.Errorf("ebitencanvas: run game: %w", runErr)
	}
	return errors.Join(runErr, appErr)
}

// Open implements canvas.Canvas.
func (c *Canvas) Open(width, height int, title string) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("ebitencanvas: invalid size %dx%d", width, height)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	c.width, c.height, c.title = width, height, title
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(title)
	c.log.Debug("ebitencanvas: window opened", "width", width, "height", height)
	return nil
}

// CreateShape implements canvas.Canvas.
func (c *Canvas) CreateShape(p canvas.Primitive) (canvas.Handle, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return 0, ErrClosed
	}
	c.next++
	c.shapes[c.next] = p
	c.order = append(c.order, c.next)
	return c.next, nil
}

// UpdateShape implements canvas.Canvas.
func (c *Canvas) UpdateShape(h canvas.Handle, p canvas.Primitive) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	if _, ok := c.shapes[h]; !ok {
		return fmt.Errorf("ebitencanvas: unknown shape %d", h)
	}
	c.shapes[h] = p
	return nil
}

// DeleteShape implements canvas.Canvas.
func (c *Canvas) DeleteShape(h canvas.Handle) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	delete(c.shapes, h)
	c.order = slices.DeleteFunc(c.order, func(x canvas.Handle) bool { return x == h })
	return nil
}

// Restack implements canvas.Canvas.
func (c *Canvas) Restack(order []canvas.Handle) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	c.order = slices.DeleteFunc(slices.Clone(order), func(h canvas.Handle) bool {
		_, ok := c.shapes[h]
		return !ok
	})
	return nil
}

// Flush implements canvas.Canvas by publishing the staged state as the
// next frame.
func (c *Canvas) Flush() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	c.frame = c.frame[:0]
	c.handles = c.handles[:0]
	for _, h := range c.order {
		c.frame = append(c.frame, c.shapes[h])
		c.handles = append(c.handles, h)
	}
	c.frameBG = c.background
	c.framePic = c.picture
	c.frameGrid = c.grid
	return nil
}

// PollEvents implements canvas.Canvas.
func (c *Canvas) PollEvents() []canvas.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lost && !c.quitSent {
		c.events = append(c.events, canvas.Event{Kind: canvas.Quit})
		c.quitSent = true
	}
	ev := c.events
	c.events = nil
	return ev
}

// Close implements canvas.Canvas. The game loop stops on its next tick.
func (c *Canvas) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	c.shapes = make(map[canvas.Handle]canvas.Primitive)
	c.order = nil
	c.log.Debug("ebitencanvas: closed")
	return nil
}

// SetBackground implements canvas.BackgroundSetter.
func (c *Canvas) SetBackground(col color.Color) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.background = col
	return nil
}

// SetPicture implements canvas.PictureSetter.
func (c *Canvas) SetPicture(img image.Image) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.picture = img
	return nil
}

// SetGrid implements canvas.GridSetter.
func (c *Canvas) SetGrid(g canvas.Grid) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.grid = g
	return nil
}

// SetTitle implements canvas.TitleSetter.
func (c *Canvas) SetTitle(title string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.title = title
	ebiten.SetWindowTitle(title)
	return nil
}

// Resize implements canvas.Resizer.
func (c *Canvas) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("ebitencanvas: invalid size %dx%d", width, height)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.width, c.height = width, height
	ebiten.SetWindowSize(width, height)
	return nil
}
