package geom

import "math"

// RectangleVertices returns the corners of the box (x, y, w, h) in
// clockwise screen order starting at the top-left.
func RectangleVertices(x, y, w, h float64) []Point {
	return []Point{
		{X: x, Y: y},
		{X: x + w, Y: y},
		{X: x + w, Y: y + h},
		{X: x, Y: y + h},
	}
}

// EllipseVertices approximates the ellipse inscribed in (x, y, w, h) with
// n points, starting at 12 o'clock and proceeding clockwise.
func EllipseVertices(x, y, w, h float64, n int) []Point {
	cx, cy := x+w/2, y+h/2
	rx, ry := w/2, h/2
	out := make([]Point, n)
	step := 2 * math.Pi / float64(n)
	for i := range n {
		sin, cos := math.Sincos(float64(i) * step)
		out[i] = Point{X: cx + rx*sin, Y: cy - ry*cos}
	}
	return out
}

// RegularPolygon returns a polygon with the given number of sides
// inscribed in the box (x, y, w, h), with its first vertex at the top.
func RegularPolygon(sides int, x, y, w, h float64) []Point {
	return EllipseVertices(x, y, w, h, sides)
}

// TriangleIn returns the isosceles triangle that fills (x, y, w, h): apex
// at the top center, then bottom-right and bottom-left.
func TriangleIn(x, y, w, h float64) []Point {
	return []Point{
		{X: x + w/2, Y: y},
		{X: x + w, Y: y + h},
		{X: x, Y: y + h},
	}
}

// RoundedRectangleVertices returns the outline of (x, y, w, h) with corners
// rounded to radius r, each corner approximated by segments steps. The
// radius is clamped to half of the shorter side.
func RoundedRectangleVertices(x, y, w, h, r float64, segments int) []Point {
	r = math.Max(0, math.Min(r, math.Min(w, h)/2))
	if r == 0 || segments < 1 {
		return RectangleVertices(x, y, w, h)
	}
	corners := [4]Point{
		{X: x + w - r, Y: y + r},
		{X: x + w - r, Y: y + h - r},
		{X: x + r, Y: y + h - r},
		{X: x + r, Y: y + r},
	}
	out := make([]Point, 0, 4*(segments+1))
	for c, center := range corners {
		start := float64(c) * math.Pi / 2
		for i := 0; i <= segments; i++ {
			a := start + float64(i)*(math.Pi/2)/float64(segments)
			sin, cos := math.Sincos(a)
			out = append(out, Point{X: center.X + r*sin, Y: center.Y - r*cos})
		}
	}
	return out
}
