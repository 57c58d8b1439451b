package geom

import "math"

// Rect is an axis-aligned box. Min is the top-left corner.
type Rect struct {
	Min, Max Point
}

// Width returns Max.X - Min.X.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns Max.Y - Min.Y.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Center returns the midpoint of the box.
func (r Rect) Center() Point {
	return Point{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// Intersects reports whether r and s share any point, edges included.
func (r Rect) Intersects(s Rect) bool {
	return r.Min.X <= s.Max.X+Epsilon && s.Min.X <= r.Max.X+Epsilon &&
		r.Min.Y <= s.Max.Y+Epsilon && s.Min.Y <= r.Max.Y+Epsilon
}

// ContainsPoint reports whether p lies inside r or on its edge.
func (r Rect) ContainsPoint(p Point) bool {
	return p.X >= r.Min.X-Epsilon && p.X <= r.Max.X+Epsilon &&
		p.Y >= r.Min.Y-Epsilon && p.Y <= r.Max.Y+Epsilon
}

// Union returns the smallest box covering r and s.
func (r Rect) Union(s Rect) Rect {
	return Rect{
		Min: Point{X: math.Min(r.Min.X, s.Min.X), Y: math.Min(r.Min.Y, s.Min.Y)},
		Max: Point{X: math.Max(r.Max.X, s.Max.X), Y: math.Max(r.Max.Y, s.Max.Y)},
	}
}

// Bounds returns the axis-aligned bounding box of vs.
// It panics if vs is empty.
func Bounds(vs []Point) Rect {
	need("Bounds", vs, 1)
	r := Rect{Min: vs[0], Max: vs[0]}
	for _, v := range vs[1:] {
		r.Min.X = math.Min(r.Min.X, v.X)
		r.Min.Y = math.Min(r.Min.Y, v.Y)
		r.Max.X = math.Max(r.Max.X, v.X)
		r.Max.Y = math.Max(r.Max.Y, v.Y)
	}
	return r
}
