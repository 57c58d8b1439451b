package geom

import (
	"errors"
	"math"
	"testing"
)

func approx(a, b float64) bool { return math.Abs(a-b) <= 1e-9 }

func square(x, y, s float64) []Point { return RectangleVertices(x, y, s, s) }

func TestPoint_MoveInPlace(t *testing.T) {
	p := Pt(1, 2)
	p.Move(3, -4)
	if p != Pt(4, -2) {
		t.Errorf("Move: got %v, want (4, -2)", p)
	}
	p.MoveTo(-1, 0.5)
	if p != Pt(-1, 0.5) {
		t.Errorf("MoveTo: got %v, want (-1, 0.5)", p)
	}
}

func TestPoint_RotateAbout(t *testing.T) {
	tests := []struct {
		name  string
		p     Point
		pivot Point
		deg   float64
		want  Point
	}{
		{"quarter turn is clockwise on screen", Pt(1, 0), Pt(0, 0), 90, Pt(0, 1)},
		{"half turn", Pt(1, 0), Pt(0, 0), 180, Pt(-1, 0)},
		{"pivot offset", Pt(12, 10), Pt(10, 10), 90, Pt(10, 12)},
		{"zero", Pt(3, 4), Pt(1, 1), 0, Pt(3, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.p.RotateAbout(tt.pivot, tt.deg)
			if !got.ApproxEqual(tt.want) {
				t.Errorf("RotateAbout(%v, %v) = %v, want %v", tt.pivot, tt.deg, got, tt.want)
			}
		})
	}
}

func TestTranslate_Inverse(t *testing.T) {
	vs := []Point{{1, 2}, {5, -3}, {-7, 8}}
	got := Translate(Translate(vs, 13, -4), -13, 4)
	for i := range vs {
		if got[i] != vs[i] {
			t.Errorf("vertex %d: got %v, want %v", i, got[i], vs[i])
		}
	}
}

func TestCentroid(t *testing.T) {
	c := Centroid(square(0, 0, 10))
	if !c.ApproxEqual(Pt(5, 5)) {
		t.Errorf("Centroid(square) = %v, want (5, 5)", c)
	}
	c = Centroid([]Point{{0, 0}, {3, 0}, {0, 3}})
	if !c.ApproxEqual(Pt(1, 1)) {
		t.Errorf("Centroid(triangle) = %v, want (1, 1)", c)
	}
}

func TestRotateAbout_RoundTrip(t *testing.T) {
	vs := []Point{{0, 0}, {10, 0}, {12, 7}, {-3, 9}}
	pivot := Centroid(vs)
	for _, deg := range []float64{1, 33.3, 90, 179, 271.5} {
		back := RotateAbout(RotateAbout(vs, pivot, deg), pivot, -deg)
		for i := range vs {
			if !back[i].ApproxEqual(vs[i]) {
				t.Errorf("deg=%v vertex %d: got %v, want %v", deg, i, back[i], vs[i])
			}
		}
	}
	full := RotateAbout(vs, pivot, 360)
	for i := range vs {
		if !full[i].ApproxEqual(vs[i]) {
			t.Errorf("360: vertex %d: got %v, want %v", i, full[i], vs[i])
		}
	}
}

func TestRotateAbout_Bounds(t *testing.T) {
	sq := RectangleVertices(0, 0, 10, 10)
	b := Bounds(RotateAbout(sq, Pt(5, 5), 90))
	if !approx(b.Width(), 10) || !approx(b.Height(), 10) {
		t.Errorf("rotated square bounds = %vx%v, want 10x10", b.Width(), b.Height())
	}

	r := RectangleVertices(0, 0, 10, 20)
	b = Bounds(RotateAbout(r, Pt(5, 10), 90))
	if !approx(b.Width(), 20) || !approx(b.Height(), 10) {
		t.Errorf("rotated rect bounds = %vx%v, want 20x10", b.Width(), b.Height())
	}
	if !b.Center().ApproxEqual(Pt(5, 10)) {
		t.Errorf("rotated rect center = %v, want (5, 10)", b.Center())
	}
}

func TestScaleAbout(t *testing.T) {
	got := ScaleAbout(square(0, 0, 10), Pt(5, 5), 2, 0.5)
	b := Bounds(got)
	want := Rect{Min: Pt(-5, 2.5), Max: Pt(15, 7.5)}
	if !b.Min.ApproxEqual(want.Min) || !b.Max.ApproxEqual(want.Max) {
		t.Errorf("ScaleAbout bounds = %v, want %v", b, want)
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0}, {90, 90}, {360, 0}, {-90, 270}, {720.5, 0.5}, {-450, 270},
	}
	for _, tt := range tests {
		if got := NormalizeAngle(tt.in); !approx(got, tt.want) {
			t.Errorf("NormalizeAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHeading(t *testing.T) {
	tests := []struct {
		name string
		to   Point
		want float64
	}{
		{"up", Pt(0, -10), 0},
		{"right", Pt(10, 0), 90},
		{"down", Pt(0, 10), 180},
		{"left", Pt(-10, 0), 270},
		{"diagonal", Pt(5, -5), 45},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Heading(Pt(0, 0), tt.to); !approx(got, tt.want) {
				t.Errorf("Heading = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAdvance(t *testing.T) {
	dx, dy := Advance(0, 5)
	if !approx(dx, 0) || !approx(dy, -5) {
		t.Errorf("Advance(0, 5) = (%v, %v), want (0, -5)", dx, dy)
	}
	dx, dy = Advance(90, 5)
	if !approx(dx, 5) || !approx(dy, 0) {
		t.Errorf("Advance(90, 5) = (%v, %v), want (5, 0)", dx, dy)
	}
}

func TestContains(t *testing.T) {
	sq := square(0, 0, 10)
	notch := []Point{{0, 0}, {10, 0}, {10, 10}, {5, 10}, {5, 5}, {0, 5}}
	tests := []struct {
		name string
		vs   []Point
		p    Point
		want bool
	}{
		{"center", sq, Pt(5, 5), true},
		{"edge", sq, Pt(10, 5), true},
		{"corner", sq, Pt(0, 0), true},
		{"outside right", sq, Pt(11, 5), false},
		{"just outside left", sq, Pt(-0.1, 5), false},
		{"concave arm", notch, Pt(8, 8), true},
		{"concave notch", notch, Pt(2, 8), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Contains(tt.vs, tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestOverlaps(t *testing.T) {
	tri := []Point{{0, 0}, {10, 0}, {0, 10}}
	tests := []struct {
		name string
		a, b []Point
		want bool
	}{
		{"partial", square(0, 0, 10), square(5, 5, 10), true},
		{"disjoint", square(0, 0, 10), square(20, 20, 10), false},
		{"contained", square(0, 0, 100), square(40, 40, 10), true},
		{"touching edge", square(0, 0, 10), square(10, 0, 10), true},
		{"segment crossing", square(0, 0, 10), []Point{{-5, 5}, {15, 5}}, true},
		{"segment inside", square(0, 0, 10), []Point{{2, 2}, {3, 3}}, true},
		{"bounds overlap only", tri, []Point{{8, 8}, {10, 10}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.a, tt.b); got != tt.want {
				t.Errorf("Overlaps(a, b) = %v, want %v", got, tt.want)
			}
			if got := Overlaps(tt.b, tt.a); got != tt.want {
				t.Errorf("Overlaps(b, a) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSegmentDistance(t *testing.T) {
	if d := SegmentDistance(Pt(5, 3), Pt(0, 0), Pt(10, 0)); !approx(d, 3) {
		t.Errorf("perpendicular distance = %v, want 3", d)
	}
	if d := SegmentDistance(Pt(13, 4), Pt(0, 0), Pt(10, 0)); !approx(d, 5) {
		t.Errorf("endpoint distance = %v, want 5", d)
	}
}

func TestShapes(t *testing.T) {
	e := EllipseVertices(0, 0, 20, 10, 24)
	if len(e) != 24 {
		t.Fatalf("EllipseVertices len = %d, want 24", len(e))
	}
	if !e[0].ApproxEqual(Pt(10, 0)) {
		t.Errorf("first ellipse vertex = %v, want top center (10, 0)", e[0])
	}
	b := Bounds(e)
	if !approx(b.Width(), 20) || !approx(b.Height(), 10) {
		t.Errorf("ellipse bounds = %vx%v, want 20x10", b.Width(), b.Height())
	}

	tri := TriangleIn(0, 0, 10, 8)
	if tri[0] != Pt(5, 0) || tri[1] != Pt(10, 8) || tri[2] != Pt(0, 8) {
		t.Errorf("TriangleIn = %v", tri)
	}

	if got := RoundedRectangleVertices(0, 0, 10, 10, 0, 4); len(got) != 4 {
		t.Errorf("zero radius rounded rect has %d vertices, want 4", len(got))
	}
	rr := RoundedRectangleVertices(0, 0, 40, 20, 5, 4)
	if len(rr) != 20 {
		t.Errorf("rounded rect has %d vertices, want 20", len(rr))
	}
	rb := Bounds(rr)
	if !approx(rb.Width(), 40) || !approx(rb.Height(), 20) {
		t.Errorf("rounded rect bounds = %vx%v, want 40x20", rb.Width(), rb.Height())
	}
}

func TestDegeneratePanics(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrDegenerate) {
			t.Errorf("recovered %v, want error wrapping ErrDegenerate", r)
		}
	}()
	Contains([]Point{{0, 0}, {1, 1}}, Pt(0, 0))
}

func TestDash(t *testing.T) {
	tests := []struct {
		name    string
		pattern []float64
		want    [][2]Point
	}{
		{"solid", nil, [][2]Point{{Pt(0, 0), Pt(10, 0)}}},
		{"zero pattern", []float64{0, 0}, [][2]Point{{Pt(0, 0), Pt(10, 0)}}},
		{"two three", []float64{2, 3}, [][2]Point{{Pt(0, 0), Pt(2, 0)}, {Pt(5, 0), Pt(7, 0)}}},
		{"odd length", []float64{4}, [][2]Point{{Pt(0, 0), Pt(4, 0)}, {Pt(8, 0), Pt(10, 0)}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Dash(Pt(0, 0), Pt(10, 0), tt.pattern)
			if len(got) != len(tt.want) {
				t.Fatalf("Dash() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if !got[i][0].ApproxEqual(tt.want[i][0]) || !got[i][1].ApproxEqual(tt.want[i][1]) {
					t.Errorf("piece %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSinCos_QuarterTurnsExact(t *testing.T) {
	tests := []struct {
		deg, sin, cos float64
	}{
		{0, 0, 1}, {90, 1, 0}, {180, 0, -1}, {270, -1, 0},
		{360, 0, 1}, {-90, -1, 0}, {-180, 0, -1}, {450, 1, 0}, {-720, 0, 1},
	}
	for _, tt := range tests {
		sin, cos := SinCos(tt.deg)
		if sin != tt.sin || cos != tt.cos {
			t.Errorf("SinCos(%v) = (%v, %v), want (%v, %v)", tt.deg, sin, cos, tt.sin, tt.cos)
		}
	}
	sin, cos := SinCos(30)
	if !approx(sin, 0.5) || !approx(cos, math.Sqrt(3)/2) {
		t.Errorf("SinCos(30) = (%v, %v)", sin, cos)
	}
}

func TestRotateAbout_HalfTurnIsExact(t *testing.T) {
	got := RotateAbout([]Point{{0, 0}, {30, 40}}, Pt(15, 20), 180)
	want := []Point{{30, 40}, {0, 0}}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("vertex %d = %v, want exactly %v", i, got[i], want[i])
		}
	}
	if p := Pt(12, 10).RotateAbout(Pt(10, 10), -90); p != Pt(10, 8) {
		t.Errorf("Point.RotateAbout(-90) = %v, want exactly (10, 8)", p)
	}
}
