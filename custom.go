package easel

import (
	"slices"

	"github.com/gogpu/easel/geom"
)

// OutlineFunc returns the unrotated outline of a box with top-left (x, y)
// and size (w, h). It must return at least three finite points for every
// box the shape takes; moves and resizes that break this are rejected.
type OutlineFunc func(x, y, w, h float64) []Location

// CustomRenderable is a box shape whose outline comes from a user
// function. It moves, resizes and rotates like a Rectangle unless created
// with NotRotatable.
type CustomRenderable struct {
	shape
	fn OutlineFunc
}

// NewCustomRenderable creates a box shape drawn with outline.
func (scr *Screen) NewCustomRenderable(x, y, w, h float64, outline OutlineFunc, opts ...ShapeOption) (*CustomRenderable, error) {
	const op = "NewCustomRenderable"
	if err := scr.usable(); err != nil {
		return nil, err
	}
	if err := checkBox(op, x, y, w, h); err != nil {
		return nil, err
	}
	if outline == nil {
		return nil, argError(op, "outline", nil, "must not be nil")
	}
	if pts := outline(x, y, w, h); len(pts) < 3 || !finitePoints(pts) {
		return nil, argError(op, "outline", len(pts), "must return at least 3 finite points")
	}
	o, err := buildShapeOptions(op, opts)
	if err != nil {
		return nil, err
	}
	c := &CustomRenderable{shape: newShape(KindCustom, o), fn: outline}
	c.owner = c
	c.userOutline = true
	c.initBox(x, y, w, h, c.call)
	if err := scr.register(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *CustomRenderable) call(x, y, w, h float64) []geom.Point {
	return slices.Clone(c.fn(x, y, w, h))
}

// NewRoundedRectangle creates a rectangle whose corners are rounded to
// radius.
func (scr *Screen) NewRoundedRectangle(x, y, w, h, radius float64, opts ...ShapeOption) (*CustomRenderable, error) {
	if !finite(radius) || radius < 0 {
		return nil, argError("NewRoundedRectangle", "radius", radius, "must be a finite number >= 0")
	}
	return scr.NewCustomRenderable(x, y, w, h, func(x, y, w, h float64) []Location {
		return geom.RoundedRectangleVertices(x, y, w, h, radius, 6)
	}, opts...)
}

// Clone returns a detached copy sharing the outline function.
func (c *CustomRenderable) Clone() *CustomRenderable {
	d := &CustomRenderable{shape: c.clone(), fn: c.fn}
	d.owner = d
	d.outline = d.call
	return d
}
