package easel

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"slices"
	"time"

	"github.com/gogpu/easel/canvas"
	"github.com/gogpu/easel/geom"
)

// Screen owns a canvas and the renderables drawn on it.
//
// The registry order is the paint order: the first renderable is painted
// first (backmost), the last is frontmost. New renderables go to the front.
// Changes reach the canvas on Update, which also delivers input.
//
// A Screen is not safe for concurrent use.
type Screen struct {
	canvas canvas.Canvas
	images ImageStore
	log    *slog.Logger

	width, height int
	title         string
	background    Color
	picture       image.Image
	grid          gridState

	registry  []Renderable
	listeners map[EventKind][]Listener
	keysDown  map[string]bool
	clicks    map[int]bool // button -> pressed with no drag since

	// snapshot is the registry as it was when the running Update began;
	// nil outside Update.
	snapshot []Renderable

	restack    bool
	bgDirty    bool
	picDirty   bool
	titleDirty bool
	closed     bool
}

type gridState struct {
	enabled bool
	cell    float64
	color   Color
	dirty   bool
}

// NewScreen opens a canvas and returns an active screen.
func NewScreen(opts ...Option) (*Screen, error) {
	o := defaultScreenOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.width <= 0 || o.height <= 0 {
		return nil, argError("NewScreen", "size", fmt.Sprintf("%dx%d", o.width, o.height), "must be positive")
	}
	if !finite(o.grid) || o.grid < 0 {
		return nil, argError("NewScreen", "grid", o.grid, "must be a finite number >= 0")
	}
	if o.images == nil {
		return nil, argError("NewScreen", "images", nil, "must not be nil")
	}
	c, err := o.openCanvas()
	if err != nil {
		return nil, err
	}
	log := Logger()
	propagateLogger(c, log)
	if err := c.Open(o.width, o.height, o.title); err != nil {
		return nil, fmt.Errorf("easel: open canvas: %w", err)
	}
	scr := &Screen{
		canvas:     c,
		images:     o.images,
		log:        log,
		width:      o.width,
		height:     o.height,
		title:      o.title,
		background: o.background,
		grid: gridState{
			enabled: o.grid > 0,
			cell:    o.grid,
			color:   o.gridColor,
			dirty:   o.grid > 0,
		},
		listeners: make(map[EventKind][]Listener),
		keysDown:  make(map[string]bool),
		clicks:    make(map[int]bool),
		bgDirty:   true,
	}
	log.Info("easel: screen opened", "width", o.width, "height", o.height, "title", o.title)
	return scr, nil
}

func (scr *Screen) usable() error {
	if scr.closed {
		return ErrClosed
	}
	return nil
}

// Canvas returns the canvas the screen draws on.
func (scr *Screen) Canvas() canvas.Canvas { return scr.canvas }

// CreateLocation returns the location (x, y).
func (scr *Screen) CreateLocation(x, y float64) Location { return geom.Pt(x, y) }

// Width returns the screen width in pixels.
func (scr *Screen) Width() int { return scr.width }

// Height returns the screen height in pixels.
func (scr *Screen) Height() int { return scr.height }

// Center returns the middle of the screen.
func (scr *Screen) Center() Location {
	return geom.Pt(float64(scr.width)/2, float64(scr.height)/2)
}

// Title returns the window title.
func (scr *Screen) Title() string { return scr.title }

// Background returns the background color.
func (scr *Screen) Background() Color { return scr.background }

// Closed reports whether Exit has run.
func (scr *Screen) Closed() bool { return scr.closed }

// register adds r at the front and creates its canvas shape.
func (scr *Screen) register(r Renderable) error {
	s := r.core()
	h, err := scr.canvas.CreateShape(r.primitive())
	if err != nil {
		return fmt.Errorf("easel: create %s: %w", s.kind, err)
	}
	s.screen = scr
	s.handle = h
	s.state = registered
	s.dirty = false
	scr.registry = append(scr.registry, r)
	scr.log.Debug("easel: shape created", "kind", s.kind, "handle", h)
	return nil
}

// Add registers a detached renderable, usually a clone, at the front.
func (scr *Screen) Add(r Renderable) error {
	if err := scr.usable(); err != nil {
		return err
	}
	if r == nil {
		return argError("Add", "renderable", nil, "must not be nil")
	}
	s := r.core()
	if s.state != detached || s.screen != nil {
		return argError("Add", "renderable", s.kind, "must be a detached clone")
	}
	return scr.register(r)
}

func (scr *Screen) index(r Renderable) int {
	if r == nil {
		return -1
	}
	s := r.core()
	return slices.IndexFunc(scr.registry, func(x Renderable) bool { return x.core() == s })
}

func (scr *Screen) owned(op string, r Renderable) (int, error) {
	if err := scr.usable(); err != nil {
		return -1, err
	}
	i := scr.index(r)
	if i < 0 {
		if r != nil && r.core().screen == scr && r.Removed() {
			return -1, ErrRemoved
		}
		return -1, argError(op, "renderable", r, "is not on this screen")
	}
	return i, nil
}

// Remove unregisters r and deletes its canvas shape. Removing an already
// removed renderable of this screen is a no-op.
func (scr *Screen) Remove(r Renderable) error {
	if err := scr.usable(); err != nil {
		return err
	}
	if r != nil && r.core().screen == scr && r.Removed() {
		return nil
	}
	i, err := scr.owned("Remove", r)
	if err != nil {
		return err
	}
	s := r.core()
	scr.registry = slices.Delete(scr.registry, i, i+1)
	s.state = removed
	scr.log.Debug("easel: shape removed", "kind", s.kind, "handle", s.handle)
	if err := scr.canvas.DeleteShape(s.handle); err != nil {
		return fmt.Errorf("easel: delete %s: %w", s.kind, err)
	}
	return nil
}

// Clear removes every renderable.
func (scr *Screen) Clear() error {
	if err := scr.usable(); err != nil {
		return err
	}
	var errs []error
	for _, r := range slices.Clone(scr.registry) {
		errs = append(errs, scr.Remove(r))
	}
	return errors.Join(errs...)
}

// Front moves r in front of every other renderable.
func (scr *Screen) Front(r Renderable) error {
	i, err := scr.owned("Front", r)
	if err != nil {
		return err
	}
	if i != len(scr.registry)-1 {
		scr.registry = append(slices.Delete(scr.registry, i, i+1), r)
		scr.restack = true
	}
	return nil
}

// Back moves r behind every other renderable.
func (scr *Screen) Back(r Renderable) error {
	i, err := scr.owned("Back", r)
	if err != nil {
		return err
	}
	if i != 0 {
		scr.registry = slices.Insert(slices.Delete(scr.registry, i, i+1), 0, r)
		scr.restack = true
	}
	return nil
}

// InFrontOf reports whether a is painted after b.
func (scr *Screen) InFrontOf(a, b Renderable) (bool, error) {
	i, err := scr.owned("InFrontOf", a)
	if err != nil {
		return false, err
	}
	j, err := scr.owned("InFrontOf", b)
	if err != nil {
		return false, err
	}
	return i > j, nil
}

// Objects returns the registered renderables, back to front.
func (scr *Screen) Objects() []Renderable { return slices.Clone(scr.registry) }

// ObjectsAt returns the visible renderables containing p, front to back.
// While Update is dispatching events it answers from the order captured
// when that Update began.
func (scr *Screen) ObjectsAt(p Location) []Renderable {
	src := scr.registry
	if scr.snapshot != nil {
		src = scr.snapshot
	}
	var out []Renderable
	for i := len(src) - 1; i >= 0; i-- {
		r := src[i]
		if !r.Removed() && r.Visible() && r.Contains(p) {
			out = append(out, r)
		}
	}
	return out
}

// SetTitle changes the window title.
func (scr *Screen) SetTitle(title string) error {
	if err := scr.usable(); err != nil {
		return err
	}
	scr.title = title
	scr.titleDirty = true
	return nil
}

// SetBackground changes the background color. ColorNone restores the
// canvas default.
func (scr *Screen) SetBackground(c Color) error {
	if err := scr.usable(); err != nil {
		return err
	}
	scr.background = c
	scr.bgDirty = true
	return nil
}

// SetPicture shows the image file at path, loaded through the image store,
// centered at its natural size behind every renderable. An empty path
// removes the picture.
func (scr *Screen) SetPicture(path string) error {
	if err := scr.usable(); err != nil {
		return err
	}
	if path == "" {
		return scr.SetPictureImage(nil)
	}
	img, err := scr.images.Load(path)
	if err != nil {
		return err
	}
	return scr.SetPictureImage(img)
}

// SetPictureImage is SetPicture for an image in memory. A nil image
// removes the picture.
func (scr *Screen) SetPictureImage(img image.Image) error {
	if err := scr.usable(); err != nil {
		return err
	}
	scr.picture = img
	scr.picDirty = true
	return nil
}

// Picture returns the background picture, or nil.
func (scr *Screen) Picture() image.Image { return scr.picture }

// Resize changes the screen size. The canvas must implement
// canvas.Resizer.
func (scr *Screen) Resize(width, height int) error {
	if err := scr.usable(); err != nil {
		return err
	}
	if width <= 0 || height <= 0 {
		return argError("Resize", "size", fmt.Sprintf("%dx%d", width, height), "must be positive")
	}
	rs, ok := scr.canvas.(canvas.Resizer)
	if !ok {
		return fmt.Errorf("%w: canvas cannot resize", ErrUnsupportedOperation)
	}
	if err := rs.Resize(width, height); err != nil {
		return fmt.Errorf("easel: resize canvas: %w", err)
	}
	scr.width, scr.height = width, height
	return nil
}

// Grid shows the grid overlay with the given cell size in pixels.
func (scr *Screen) Grid(cell float64) error {
	if err := scr.usable(); err != nil {
		return err
	}
	if !finite(cell) || cell <= 0 {
		return argError("Grid", "cell", cell, "must be a finite number > 0")
	}
	scr.grid.enabled = true
	scr.grid.cell = cell
	scr.grid.dirty = true
	return nil
}

// ToggleGrid shows or hides the grid overlay. A grid that was never sized
// uses 50 pixel cells.
func (scr *Screen) ToggleGrid() error {
	if err := scr.usable(); err != nil {
		return err
	}
	if scr.grid.cell <= 0 {
		scr.grid.cell = 50
	}
	scr.grid.enabled = !scr.grid.enabled
	scr.grid.dirty = true
	return nil
}

// SetGridColor sets the grid line color.
func (scr *Screen) SetGridColor(c Color) error {
	if err := scr.usable(); err != nil {
		return err
	}
	scr.grid.color = c
	scr.grid.dirty = true
	return nil
}

// GridEnabled reports whether the grid overlay is shown.
func (scr *Screen) GridEnabled() bool { return scr.grid.enabled }

// Sleep pauses for d without polling input or flushing.
func (scr *Screen) Sleep(d time.Duration) error {
	if err := scr.usable(); err != nil {
		return err
	}
	time.Sleep(d)
	return nil
}

// Update runs one frame: it polls input and dispatches it to listeners,
// then pushes every pending change to the canvas and flushes.
//
// Events are grouped by kind in the order keydown, keyup, mousedown,
// mouseup, mousedrag, mousemove; within a kind they keep arrival order.
// A keypress runs right after the keyup completing it and a mouseclick
// right after its mouseup.
// The first listener error aborts the frame and is returned as is. When
// the canvas reports that the user closed it, the screen exits after the
// other events are dispatched and Update returns ErrClosed.
func (scr *Screen) Update() error {
	if err := scr.usable(); err != nil {
		return err
	}
	events := scr.derive(scr.canvas.PollEvents())
	slices.SortStableFunc(events, func(a, b canvas.Event) int { return dispatchRank(a.Kind) - dispatchRank(b.Kind) })

	scr.snapshot = slices.Clone(scr.registry)
	err := scr.dispatch(events)
	scr.snapshot = nil
	if err != nil {
		return err
	}
	if scr.closed {
		return nil
	}
	return scr.flush()
}

func (scr *Screen) dispatch(events []canvas.Event) error {
	for _, ce := range events {
		if ce.Kind == canvas.Quit {
			scr.log.Info("easel: canvas requested quit")
			if err := scr.Exit(); err != nil {
				return err
			}
			return ErrClosed
		}
		e := fromCanvas(ce)
		for _, l := range slices.Clone(scr.listeners[e.Kind]) {
			if err := l(e); err != nil {
				return err
			}
			if scr.closed {
				return nil
			}
		}
	}
	return nil
}

func (scr *Screen) flush() error {
	if scr.titleDirty {
		if ts, ok := scr.canvas.(canvas.TitleSetter); ok {
			if err := ts.SetTitle(scr.title); err != nil {
				return fmt.Errorf("easel: set title: %w", err)
			}
		}
		scr.titleDirty = false
	}
	if scr.bgDirty {
		if bs, ok := scr.canvas.(canvas.BackgroundSetter); ok {
			if err := bs.SetBackground(scr.background.ImageColor()); err != nil {
				return fmt.Errorf("easel: set background: %w", err)
			}
		}
		scr.bgDirty = false
	}
	if scr.picDirty {
		if ps, ok := scr.canvas.(canvas.PictureSetter); ok {
			if err := ps.SetPicture(scr.picture); err != nil {
				return fmt.Errorf("easel: set picture: %w", err)
			}
		} else if scr.picture != nil {
			scr.log.Debug("easel: canvas cannot show a picture")
		}
		scr.picDirty = false
	}
	if scr.grid.dirty {
		if gs, ok := scr.canvas.(canvas.GridSetter); ok {
			g := canvas.Grid{Enabled: scr.grid.enabled, Cell: scr.grid.cell, Color: scr.grid.color.ImageColor()}
			if err := gs.SetGrid(g); err != nil {
				return fmt.Errorf("easel: set grid: %w", err)
			}
		}
		scr.grid.dirty = false
	}
	if scr.restack {
		order := make([]canvas.Handle, len(scr.registry))
		for i, r := range scr.registry {
			order[i] = r.core().handle
		}
		if err := scr.canvas.Restack(order); err != nil {
			return fmt.Errorf("easel: restack: %w", err)
		}
		scr.log.Debug("easel: shapes restacked", "count", len(order))
		scr.restack = false
	}
	for _, r := range scr.registry {
		s := r.core()
		if !s.dirty {
			continue
		}
		if err := scr.canvas.UpdateShape(s.handle, r.primitive()); err != nil {
			return fmt.Errorf("easel: update %s: %w", s.kind, err)
		}
		s.dirty = false
	}
	if err := scr.canvas.Flush(); err != nil {
		return fmt.Errorf("easel: flush: %w", err)
	}
	return nil
}

// Exit closes the screen: every renderable is invalidated and the canvas
// is closed. Later calls do nothing.
func (scr *Screen) Exit() error {
	if scr.closed {
		return nil
	}
	scr.closed = true
	for _, r := range scr.registry {
		r.core().state = removed
	}
	scr.registry = nil
	clear(scr.listeners)
	if err := scr.canvas.Close(); err != nil {
		scr.log.Warn("easel: canvas close failed", "err", err)
		return fmt.Errorf("easel: close canvas: %w", err)
	}
	scr.log.Info("easel: screen closed")
	return nil
}
