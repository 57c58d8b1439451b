package easel

import (
	"slices"

	"github.com/gogpu/easel/canvas"
	"github.com/gogpu/easel/geom"
)

// Line is a segment between two endpoints. Its location is the first
// endpoint; it rotates about its midpoint. Lines have a thickness and an
// optional dash pattern instead of a fill and border.
type Line struct {
	shape
	thickness float64
	dashes    []float64
}

// NewLine creates a line from p1 to p2.
func (scr *Screen) NewLine(p1, p2 Location, opts ...ShapeOption) (*Line, error) {
	const op = "NewLine"
	if err := scr.usable(); err != nil {
		return nil, err
	}
	if err := checkVertices(op, []Location{p1, p2}, 2); err != nil {
		return nil, err
	}
	o, err := buildShapeOptions(op, opts)
	if err != nil {
		return nil, err
	}
	if err := checkDashes(op, o.dashes); err != nil {
		return nil, err
	}
	l := &Line{shape: newShape(KindLine, o), thickness: o.thickness, dashes: slices.Clone(o.dashes)}
	l.owner = l
	l.resizable = false
	l.initVertices([]Location{p1, p2})
	if err := scr.register(l); err != nil {
		return nil, err
	}
	return l, nil
}

func checkDashes(op string, pattern []float64) error {
	for _, d := range pattern {
		if !finite(d) || d < 0 {
			return argError(op, "dashes", pattern, "entries must be finite numbers >= 0")
		}
	}
	return nil
}

// Pos1 returns the first endpoint.
func (l *Line) Pos1() Location { return l.verts[0] }

// Pos2 returns the second endpoint.
func (l *Line) Pos2() Location { return l.verts[1] }

// Location returns the first endpoint.
func (l *Line) Location() Location { return l.verts[0] }

// Length returns the distance between the endpoints.
func (l *Line) Length() float64 { return l.verts[0].Distance(l.verts[1]) }

// MoveTo moves the line so that its first endpoint is at (x, y).
func (l *Line) MoveTo(x, y float64) error {
	if !finite(x) || !finite(y) {
		return argError("MoveTo", "location", geom.Pt(x, y), "must be finite")
	}
	return l.Move(x-l.verts[0].X, y-l.verts[0].Y)
}

// SetPos1 moves the first endpoint, keeping the second. The rotation
// resets to 0.
func (l *Line) SetPos1(p Location) error { return l.setEnds("SetPos1", p, l.verts[1]) }

// SetPos2 moves the second endpoint, keeping the first. The rotation
// resets to 0.
func (l *Line) SetPos2(p Location) error { return l.setEnds("SetPos2", l.verts[0], p) }

func (l *Line) setEnds(op string, p1, p2 Location) error {
	if err := l.mutable(); err != nil {
		return err
	}
	if !p1.IsFinite() || !p2.IsFinite() {
		return argError(op, "endpoint", []Location{p1, p2}, "must be finite")
	}
	l.rot = 0
	l.initVertices([]Location{p1, p2})
	return nil
}

// LookAt swings the second endpoint about the first so the line points at
// p. The length is kept.
func (l *Line) LookAt(p Location) error {
	if !p.IsFinite() {
		return argError("LookAt", "target", p, "must be finite")
	}
	if p.ApproxEqual(l.verts[0]) {
		return l.mutable()
	}
	delta := geom.Heading(l.verts[0], p) - geom.Heading(l.verts[0], l.verts[1])
	return l.RotateAbout(delta, l.verts[0])
}

// Thickness returns the stroke width in pixels.
func (l *Line) Thickness() float64 { return l.thickness }

// SetThickness sets the stroke width in pixels.
func (l *Line) SetThickness(px float64) error {
	if err := l.mutable(); err != nil {
		return err
	}
	if !finite(px) || px <= 0 {
		return argError("SetThickness", "thickness", px, "must be a finite number > 0")
	}
	l.thickness = px
	l.dirty = true
	return nil
}

// Dashes returns the on/off dash pattern, or nil for a solid line.
func (l *Line) Dashes() []float64 { return slices.Clone(l.dashes) }

// SetDashes sets the on/off dash pattern in pixels. No arguments make the
// line solid.
func (l *Line) SetDashes(pattern ...float64) error {
	if err := l.mutable(); err != nil {
		return err
	}
	if err := checkDashes("SetDashes", pattern); err != nil {
		return err
	}
	l.dashes = slices.Clone(pattern)
	l.dirty = true
	return nil
}

// Contains reports whether p is within half the thickness of the segment.
func (l *Line) Contains(p Location) bool {
	return geom.SegmentDistance(p, l.verts[0], l.verts[1]) <= max(l.thickness/2, geom.Epsilon)
}

// SetBorder is not supported by lines.
func (l *Line) SetBorder(Color) error { return l.unsupported("SetBorder") }

// SetBorderWidth is not supported by lines; use SetThickness.
func (l *Line) SetBorderWidth(float64) error { return l.unsupported("SetBorderWidth") }

// SetFill is not supported by lines.
func (l *Line) SetFill(bool) error { return l.unsupported("SetFill") }

func (l *Line) unsupported(op string) error {
	if err := l.mutable(); err != nil {
		return err
	}
	return unsupported(KindLine, op)
}

func (l *Line) primitive() canvas.Primitive {
	return canvas.Primitive{
		Kind:        canvas.KindLine,
		Points:      slices.Clone(l.verts),
		Stroke:      l.color.ImageColor(),
		StrokeWidth: l.thickness,
		Dashes:      slices.Clone(l.dashes),
		Visible:     l.visible,
		Rotation:    l.rot,
	}
}

// Clone returns a detached copy.
func (l *Line) Clone() *Line {
	c := &Line{shape: l.clone(), thickness: l.thickness, dashes: slices.Clone(l.dashes)}
	c.owner = c
	return c
}
