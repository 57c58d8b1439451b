package geom

import "math"

// Contains reports whether p lies inside the closed polygon vs.
//
// The test casts a ray toward +x and counts edge crossings (even-odd
// rule). Points within Epsilon of an edge count as inside. It panics if vs
// has fewer than three vertices.
func Contains(vs []Point, p Point) bool {
	need("Contains", vs, 3)
	n := len(vs)
	for i := range n {
		if SegmentDistance(p, vs[i], vs[(i+1)%n]) <= Epsilon {
			return true
		}
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := vs[i], vs[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if p.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

// Overlaps reports whether the shapes a and b share any point.
//
// A sequence of two vertices is treated as a segment, longer sequences as
// closed polygons. Bounding boxes are compared first; then every pair of
// edges is tested for intersection (touching counts); finally each shape is
// checked for containing a vertex of the other, which catches full
// containment without edge crossings. The result is symmetric.
func Overlaps(a, b []Point) bool {
	need("Overlaps", a, 2)
	need("Overlaps", b, 2)
	if !Bounds(a).Intersects(Bounds(b)) {
		return false
	}
	ea, eb := edges(a), edges(b)
	for _, s := range ea {
		for _, t := range eb {
			if SegmentsIntersect(s[0], s[1], t[0], t[1]) {
				return true
			}
		}
	}
	if len(b) >= 3 && Contains(b, a[0]) {
		return true
	}
	if len(a) >= 3 && Contains(a, b[0]) {
		return true
	}
	return false
}

func edges(vs []Point) [][2]Point {
	if len(vs) == 2 {
		return [][2]Point{{vs[0], vs[1]}}
	}
	out := make([][2]Point, len(vs))
	for i := range vs {
		out[i] = [2]Point{vs[i], vs[(i+1)%len(vs)]}
	}
	return out
}

// orientation returns 1 for a clockwise turn p→q→r on screen, -1 for
// counter-clockwise and 0 for collinear points.
func orientation(p, q, r Point) int {
	v := (q.X-p.X)*(r.Y-p.Y) - (q.Y-p.Y)*(r.X-p.X)
	switch {
	case v > Epsilon*Epsilon:
		return 1
	case v < -Epsilon*Epsilon:
		return -1
	}
	return 0
}

// OnSegment reports whether r lies within the bounding box of segment pq.
// Combined with a collinearity check it tells whether r is on pq.
func OnSegment(p, q, r Point) bool {
	return r.X <= math.Max(p.X, q.X)+Epsilon && r.X >= math.Min(p.X, q.X)-Epsilon &&
		r.Y <= math.Max(p.Y, q.Y)+Epsilon && r.Y >= math.Min(p.Y, q.Y)-Epsilon
}

// SegmentsIntersect reports whether segments p1q1 and p2q2 share a point.
func SegmentsIntersect(p1, q1, p2, q2 Point) bool {
	o1 := orientation(p1, q1, p2)
	o2 := orientation(p1, q1, q2)
	o3 := orientation(p2, q2, p1)
	o4 := orientation(p2, q2, q1)

	if o1 != o2 && o3 != o4 {
		return true
	}
	switch {
	case o1 == 0 && OnSegment(p1, q1, p2):
		return true
	case o2 == 0 && OnSegment(p1, q1, q2):
		return true
	case o3 == 0 && OnSegment(p2, q2, p1):
		return true
	case o4 == 0 && OnSegment(p2, q2, q1):
		return true
	}
	return false
}

// SegmentDistance returns the shortest distance from p to segment ab.
func SegmentDistance(p, a, b Point) float64 {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 == 0 {
		return p.Distance(a)
	}
	t := p.Sub(a).Dot(ab) / l2
	t = math.Max(0, math.Min(1, t))
	return p.Distance(a.Add(ab.Mul(t)))
}
