package easel

import (
	"slices"
	"strconv"

	"github.com/gogpu/easel/geom"
)

// Polygon is a closed shape given by its vertices. Its location is the
// vertex centroid, which is also the pivot for rotation and resizing.
type Polygon struct {
	shape
}

// Triangle is a three-vertex polygon.
type Triangle struct {
	shape
}

// CustomPolygon is a polygon whose vertices can be replaced after
// creation.
type CustomPolygon struct {
	shape
}

func checkVertices(op string, vs []Location, minimum int) error {
	if len(vs) < minimum {
		return argError(op, "vertices", len(vs), "needs at least "+strconv.Itoa(minimum)+" vertices")
	}
	if !finitePoints(vs) {
		return argError(op, "vertices", vs, "must be finite")
	}
	return nil
}

func (s *shape) initVertices(vs []Location) {
	s.base = slices.Clone(vs)
	s.recompute()
}

// NewPolygon creates a polygon from at least three vertices.
func (scr *Screen) NewPolygon(vertices []Location, opts ...ShapeOption) (*Polygon, error) {
	const op = "NewPolygon"
	if err := scr.usable(); err != nil {
		return nil, err
	}
	if err := checkVertices(op, vertices, 3); err != nil {
		return nil, err
	}
	o, err := buildShapeOptions(op, opts)
	if err != nil {
		return nil, err
	}
	p := &Polygon{shape: newShape(KindPolygon, o)}
	p.owner = p
	p.initVertices(vertices)
	if err := scr.register(p); err != nil {
		return nil, err
	}
	return p, nil
}

// NewRegularPolygon creates a polygon with the given number of equal sides
// inscribed in the box with top-left (x, y). The first vertex is at the
// top.
func (scr *Screen) NewRegularPolygon(sides int, x, y, w, h float64, opts ...ShapeOption) (*Polygon, error) {
	const op = "NewRegularPolygon"
	if sides < 3 {
		return nil, argError(op, "sides", sides, "must be >= 3")
	}
	if err := checkBox(op, x, y, w, h); err != nil {
		return nil, err
	}
	return scr.NewPolygon(geom.RegularPolygon(sides, x, y, w, h), opts...)
}

// Clone returns a detached copy.
func (p *Polygon) Clone() *Polygon {
	c := &Polygon{shape: p.clone()}
	c.owner = c
	return c
}

// NewTriangle creates a triangle from three vertices.
func (scr *Screen) NewTriangle(a, b, c Location, opts ...ShapeOption) (*Triangle, error) {
	const op = "NewTriangle"
	if err := scr.usable(); err != nil {
		return nil, err
	}
	vs := []Location{a, b, c}
	if err := checkVertices(op, vs, 3); err != nil {
		return nil, err
	}
	o, err := buildShapeOptions(op, opts)
	if err != nil {
		return nil, err
	}
	t := &Triangle{shape: newShape(KindTriangle, o)}
	t.owner = t
	t.initVertices(vs)
	if err := scr.register(t); err != nil {
		return nil, err
	}
	return t, nil
}

// NewTriangleIn creates the isosceles triangle that fills the box with
// top-left (x, y): apex at the top center.
func (scr *Screen) NewTriangleIn(x, y, w, h float64, opts ...ShapeOption) (*Triangle, error) {
	if err := checkBox("NewTriangleIn", x, y, w, h); err != nil {
		return nil, err
	}
	vs := geom.TriangleIn(x, y, w, h)
	return scr.NewTriangle(vs[0], vs[1], vs[2], opts...)
}

// Clone returns a detached copy.
func (t *Triangle) Clone() *Triangle {
	c := &Triangle{shape: t.clone()}
	c.owner = c
	return c
}

// NewCustomPolygon creates a polygon from at least three vertices.
func (scr *Screen) NewCustomPolygon(vertices []Location, opts ...ShapeOption) (*CustomPolygon, error) {
	const op = "NewCustomPolygon"
	if err := scr.usable(); err != nil {
		return nil, err
	}
	if err := checkVertices(op, vertices, 3); err != nil {
		return nil, err
	}
	o, err := buildShapeOptions(op, opts)
	if err != nil {
		return nil, err
	}
	p := &CustomPolygon{shape: newShape(KindCustomPolygon, o)}
	p.owner = p
	p.initVertices(vertices)
	if err := scr.register(p); err != nil {
		return nil, err
	}
	return p, nil
}

// SetVertices replaces the outline. The new vertices are taken as drawn
// and the rotation resets to 0.
func (p *CustomPolygon) SetVertices(vertices []Location) error {
	if err := p.mutable(); err != nil {
		return err
	}
	if err := checkVertices("SetVertices", vertices, 3); err != nil {
		return err
	}
	p.rot = 0
	p.initVertices(vertices)
	return nil
}

// Clone returns a detached copy.
func (p *CustomPolygon) Clone() *CustomPolygon {
	c := &CustomPolygon{shape: p.clone()}
	c.owner = c
	return c
}
