package easel

import "github.com/gogpu/easel/geom"

// Rectangle is an axis-aligned box that may be rotated about its center.
type Rectangle struct {
	shape
}

func checkBox(op string, x, y, w, h float64) error {
	if !finite(x) || !finite(y) {
		return argError(op, "location", geom.Pt(x, y), "must be finite")
	}
	if !finite(w) || w < 0 {
		return argError(op, "width", w, "must be a finite number >= 0")
	}
	if !finite(h) || h < 0 {
		return argError(op, "height", h, "must be a finite number >= 0")
	}
	return nil
}

func (s *shape) initBox(x, y, w, h float64, outline func(x, y, w, h float64) []geom.Point) {
	s.boxed = true
	s.x, s.y, s.w, s.h = x, y, w, h
	s.outline = outline
	s.recompute()
}

// NewRectangle creates a rectangle with its top-left corner at (x, y).
func (scr *Screen) NewRectangle(x, y, w, h float64, opts ...ShapeOption) (*Rectangle, error) {
	const op = "NewRectangle"
	if err := scr.usable(); err != nil {
		return nil, err
	}
	if err := checkBox(op, x, y, w, h); err != nil {
		return nil, err
	}
	o, err := buildShapeOptions(op, opts)
	if err != nil {
		return nil, err
	}
	r := &Rectangle{shape: newShape(KindRectangle, o)}
	r.owner = r
	r.initBox(x, y, w, h, geom.RectangleVertices)
	if err := scr.register(r); err != nil {
		return nil, err
	}
	return r, nil
}

// Clone returns a detached copy. Add it to a screen with Screen.Add.
func (r *Rectangle) Clone() *Rectangle {
	c := &Rectangle{shape: r.clone()}
	c.owner = c
	return c
}
