package easel

import (
	"errors"

	"github.com/gogpu/easel/geom"
)

// DefaultPenWidth is the trail width used when none is given.
const DefaultPenWidth = 2

// Pen leaves a trail as it moves. While drawing, every move adds a Line
// segment to the screen; otherwise it moves without a mark. A Pen is not a
// renderable itself: its segments are, and they can be queried, restyled
// or removed like any other line.
type Pen struct {
	scr   *Screen
	at    Location
	color Color
	width float64
	top   bool

	drawing  bool
	points   []Location
	segments []*Line
}

// NewPen returns a pen resting at (x, y), not drawing. WithColor and
// WithThickness set the trail style.
func (scr *Screen) NewPen(x, y float64, opts ...ShapeOption) (*Pen, error) {
	const op = "NewPen"
	if err := scr.usable(); err != nil {
		return nil, err
	}
	if !finite(x) || !finite(y) {
		return nil, argError(op, "location", geom.Pt(x, y), "must be finite")
	}
	o, err := buildShapeOptions(op, append([]ShapeOption{WithThickness(DefaultPenWidth)}, opts...))
	if err != nil {
		return nil, err
	}
	return &Pen{scr: scr, at: geom.Pt(x, y), color: o.color, width: o.thickness}, nil
}

// Location returns where the pen is.
func (p *Pen) Location() Location { return p.at }

// Drawing reports whether moves leave a trail.
func (p *Pen) Drawing() bool { return p.drawing }

// Start begins a new stroke at the current location.
func (p *Pen) Start() error {
	if err := p.scr.usable(); err != nil {
		return err
	}
	p.drawing = true
	p.points = []Location{p.at}
	return nil
}

// Stop ends the stroke. Its segments stay on the screen.
func (p *Pen) Stop() error {
	if err := p.scr.usable(); err != nil {
		return err
	}
	p.drawing = false
	return nil
}

// Toggle starts or stops drawing.
func (p *Pen) Toggle() error {
	if p.drawing {
		return p.Stop()
	}
	return p.Start()
}

// Move moves the pen by (dx, dy).
func (p *Pen) Move(dx, dy float64) error {
	if !finite(dx) || !finite(dy) {
		return argError("Pen.Move", "delta", geom.Pt(dx, dy), "must be finite")
	}
	return p.step("Pen.Move", p.at.Add(geom.Pt(dx, dy)))
}

// MoveTo moves the pen to (x, y).
func (p *Pen) MoveTo(x, y float64) error {
	return p.step("Pen.MoveTo", geom.Pt(x, y))
}

func (p *Pen) step(op string, to Location) error {
	if err := p.scr.usable(); err != nil {
		return err
	}
	if !to.IsFinite() {
		return argError(op, "location", to, "must be finite")
	}
	if p.drawing && to != p.at {
		l, err := p.scr.NewLine(p.at, to, WithColor(p.color), WithThickness(p.width))
		if err != nil {
			return err
		}
		p.segments = append(p.segments, l)
		p.points = append(p.points, to)
	}
	p.at = to
	if p.top {
		return p.raise()
	}
	return nil
}

// Coordinates returns the points of the current or last stroke.
func (p *Pen) Coordinates() []Location {
	out := make([]Location, len(p.points))
	copy(out, p.points)
	return out
}

// Segments returns the trail lines still on the screen, oldest first.
func (p *Pen) Segments() []*Line {
	var out []*Line
	for _, l := range p.segments {
		if !l.Removed() {
			out = append(out, l)
		}
	}
	return out
}

// Clear removes the whole trail from the screen. A stroke in progress
// continues from the current location.
func (p *Pen) Clear() error {
	if err := p.scr.usable(); err != nil {
		return err
	}
	var errs []error
	for _, l := range p.Segments() {
		errs = append(errs, l.Remove())
	}
	p.segments = nil
	p.points = nil
	if p.drawing {
		p.points = []Location{p.at}
	}
	return errors.Join(errs...)
}

// Color returns the trail color.
func (p *Pen) Color() Color { return p.color }

// SetColor recolors the trail, old segments included.
func (p *Pen) SetColor(c Color) error {
	if err := p.scr.usable(); err != nil {
		return err
	}
	for _, l := range p.Segments() {
		if err := l.SetColor(c); err != nil {
			return err
		}
	}
	p.color = c
	return nil
}

// Width returns the trail width in pixels.
func (p *Pen) Width() float64 { return p.width }

// SetWidth changes the trail width, old segments included.
func (p *Pen) SetWidth(px float64) error {
	if err := p.scr.usable(); err != nil {
		return err
	}
	if !finite(px) || px <= 0 {
		return argError("Pen.SetWidth", "width", px, "must be a finite number > 0")
	}
	for _, l := range p.Segments() {
		if err := l.SetThickness(px); err != nil {
			return err
		}
	}
	p.width = px
	return nil
}

// Top reports whether the trail is kept in front of other renderables.
func (p *Pen) Top() bool { return p.top }

// SetTop keeps the trail in front of every other renderable, raising it
// after each move.
func (p *Pen) SetTop(top bool) error {
	if err := p.scr.usable(); err != nil {
		return err
	}
	p.top = top
	if top {
		return p.raise()
	}
	return nil
}

func (p *Pen) raise() error {
	for _, l := range p.Segments() {
		if err := l.Front(); err != nil {
			return err
		}
	}
	return nil
}
