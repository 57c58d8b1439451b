package geom

import "math"

// Translate returns vs shifted by (dx, dy).
func Translate(vs []Point, dx, dy float64) []Point {
	out := make([]Point, len(vs))
	for i, v := range vs {
		out[i] = Point{X: v.X + dx, Y: v.Y + dy}
	}
	return out
}

// Centroid returns the arithmetic mean of the vertices.
// It panics if vs is empty.
func Centroid(vs []Point) Point {
	need("Centroid", vs, 1)
	var sx, sy float64
	for _, v := range vs {
		sx += v.X
		sy += v.Y
	}
	n := float64(len(vs))
	return Point{X: sx / n, Y: sy / n}
}

// RotateAbout returns vs rotated by deg degrees around pivot.
func RotateAbout(vs []Point, pivot Point, deg float64) []Point {
	out := make([]Point, len(vs))
	if deg == 0 {
		copy(out, vs)
		return out
	}
	sin, cos := SinCos(deg)
	for i, v := range vs {
		dx, dy := v.X-pivot.X, v.Y-pivot.Y
		out[i] = Point{
			X: pivot.X + dx*cos - dy*sin,
			Y: pivot.Y + dx*sin + dy*cos,
		}
	}
	return out
}

// ScaleAbout returns vs with every offset from pivot multiplied by
// (sx, sy).
func ScaleAbout(vs []Point, pivot Point, sx, sy float64) []Point {
	out := make([]Point, len(vs))
	for i, v := range vs {
		out[i] = Point{
			X: pivot.X + (v.X-pivot.X)*sx,
			Y: pivot.Y + (v.Y-pivot.Y)*sy,
		}
	}
	return out
}

// SinCos returns the sine and cosine of deg degrees. Multiples of 90
// give exact results, so quarter and half turns of integer coordinates
// stay integer.
func SinCos(deg float64) (sin, cos float64) {
	if q := deg / 90; q == math.Trunc(q) && !math.IsInf(q, 0) {
		switch (int(math.Mod(q, 4)) + 4) % 4 {
		case 0:
			return 0, 1
		case 1:
			return 1, 0
		case 2:
			return 0, -1
		default:
			return -1, 0
		}
	}
	return math.Sincos(deg * math.Pi / 180)
}

// NormalizeAngle maps deg into [0, 360).
func NormalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// Heading returns the direction from p to q in degrees, where 0 points up
// and angles grow clockwise.
func Heading(p, q Point) float64 {
	return NormalizeAngle(math.Atan2(q.X-p.X, p.Y-q.Y) * 180 / math.Pi)
}

// Advance returns the offset of a step of length d along heading deg.
func Advance(deg, d float64) (dx, dy float64) {
	sin, cos := SinCos(deg)
	return d * sin, -d * cos
}
