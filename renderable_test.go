package easel

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/easel/geom"
)

func assertVerticesNear(t *testing.T, want, got []Location, tol float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.InDelta(t, want[i].X, got[i].X, tol, "vertex %d x", i)
		assert.InDelta(t, want[i].Y, got[i].Y, tol, "vertex %d y", i)
	}
}

// allVariants creates one renderable of each variant on scr.
func allVariants(t *testing.T, scr *Screen) map[string]Renderable {
	t.Helper()
	out := make(map[string]Renderable)
	add := func(name string, r Renderable, err error) {
		require.NoError(t, err, name)
		out[name] = r
	}
	r, err := scr.NewRectangle(10, 10, 40, 20)
	add("rectangle", r, err)
	o, err := scr.NewOval(100, 100, 60, 30)
	add("oval", o, err)
	p, err := scr.NewRegularPolygon(6, 200, 50, 40, 40)
	add("polygon", p, err)
	tr, err := scr.NewTriangle(Loc(0, 0), Loc(30, 0), Loc(15, 20))
	add("triangle", tr, err)
	cp, err := scr.NewCustomPolygon([]Location{Loc(0, 0), Loc(10, 0), Loc(10, 10), Loc(0, 10)})
	add("custom polygon", cp, err)
	l, err := scr.NewLine(Loc(5, 5), Loc(55, 25), WithThickness(4))
	add("line", l, err)
	tx, err := scr.NewText("hello", 300, 300)
	add("text", tx, err)
	rr, err := scr.NewRoundedRectangle(50, 50, 80, 40, 8)
	add("rounded rectangle", rr, err)
	return out
}

func TestRotateRoundTrip(t *testing.T) {
	scr, _ := newTestScreen(t)
	for name, r := range allVariants(t, scr) {
		t.Run(name, func(t *testing.T) {
			start := r.Vertices()
			for _, deg := range []float64{30, 90, 137.5, -45} {
				require.NoError(t, r.Rotate(deg))
				require.NoError(t, r.Rotate(-deg))
				assertVerticesNear(t, start, r.Vertices(), 1e-6)
			}
			require.NoError(t, r.Rotate(360))
			assertVerticesNear(t, start, r.Vertices(), 1e-6)
		})
	}
}

func TestMoveRoundTripExact(t *testing.T) {
	scr, _ := newTestScreen(t)
	for name, r := range allVariants(t, scr) {
		t.Run(name, func(t *testing.T) {
			start := r.Vertices()
			require.NoError(t, r.Move(7, -3))
			require.NoError(t, r.Move(-7, 3))
			switch name {
			case "rectangle", "triangle", "custom polygon", "line":
				assert.Equal(t, start, r.Vertices())
			default:
				assertVerticesNear(t, start, r.Vertices(), 1e-9)
			}
		})
	}
}

func TestContainsCenter(t *testing.T) {
	scr, _ := newTestScreen(t)
	for name, r := range allVariants(t, scr) {
		t.Run(name, func(t *testing.T) {
			assert.True(t, r.Contains(r.Center()))
			require.NoError(t, r.Rotate(33))
			assert.True(t, r.Contains(r.Center()))
		})
	}
}

func TestRotatedBounds(t *testing.T) {
	scr, _ := newTestScreen(t)
	sq, err := scr.NewRectangle(0, 0, 10, 10)
	require.NoError(t, err)
	require.NoError(t, sq.Rotate(90))
	b := sq.Bounds()
	assert.InDelta(t, 10, b.Width(), 1e-9)
	assert.InDelta(t, 10, b.Height(), 1e-9)
	assert.InDelta(t, 0, b.Min.X, 1e-9)
	assert.InDelta(t, 0, b.Min.Y, 1e-9)

	r, err := scr.NewRectangle(0, 0, 10, 20)
	require.NoError(t, err)
	require.NoError(t, r.Rotate(90))
	b = r.Bounds()
	assert.InDelta(t, 20, b.Width(), 1e-9)
	assert.InDelta(t, 10, b.Height(), 1e-9)
	assert.Equal(t, 10.0, r.Width(), "unrotated width")
	assert.Equal(t, 90.0, r.Rotation())
}

func TestOverlapScenario(t *testing.T) {
	scr, _ := newTestScreen(t)
	a, err := scr.NewRectangle(0, 0, 10, 10)
	require.NoError(t, err)
	b, err := scr.NewRectangle(5, 5, 10, 10)
	require.NoError(t, err)

	assert.True(t, a.Overlaps(b))
	assert.True(t, b.Overlaps(a))

	require.NoError(t, b.MoveTo(20, 20))
	assert.False(t, a.Overlaps(b))
	assert.False(t, b.Overlaps(a))
}

func TestOverlapsSymmetric(t *testing.T) {
	scr, _ := newTestScreen(t)
	vs := allVariants(t, scr)
	for an, a := range vs {
		for bn, b := range vs {
			assert.Equal(t, a.Overlaps(b), b.Overlaps(a), "%s vs %s", an, bn)
		}
	}
}

func TestOverlapContained(t *testing.T) {
	scr, _ := newTestScreen(t)
	outer, err := scr.NewOval(0, 0, 100, 100)
	require.NoError(t, err)
	inner, err := scr.NewRectangle(45, 45, 10, 10)
	require.NoError(t, err)
	assert.True(t, outer.Overlaps(inner))
	assert.True(t, inner.Overlaps(outer))
}

func TestResizeKeepsCenterAndRotation(t *testing.T) {
	scr, _ := newTestScreen(t)
	for _, name := range []string{"rectangle", "oval", "polygon", "triangle", "rounded rectangle"} {
		t.Run(name, func(t *testing.T) {
			r := allVariants(t, scr)[name]
			require.NoError(t, r.Rotate(30))
			c := r.Center()
			require.NoError(t, r.Resize(50, 70))
			assert.InDelta(t, 50, r.Width(), 1e-9)
			assert.InDelta(t, 70, r.Height(), 1e-9)
			assert.InDelta(t, c.X, r.Center().X, 1e-9)
			assert.InDelta(t, c.Y, r.Center().Y, 1e-9)
			assert.Equal(t, 30.0, r.Rotation())
		})
	}
}

func TestTransform(t *testing.T) {
	scr, _ := newTestScreen(t)
	r, err := scr.NewRectangle(0, 0, 10, 10)
	require.NoError(t, err)
	require.NoError(t, r.SetTransform(Transform{Width: 20, Height: 40, Rotation: 45}))
	assert.Equal(t, Transform{Width: 20, Height: 40, Rotation: 45}, r.Transform())

	err = r.SetTransform(Transform{Width: -1, Height: 40, Rotation: 0})
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, 45.0, r.Rotation(), "failed SetTransform changed the rotation")
}

func TestInvalidArgumentsLeaveShapeUnchanged(t *testing.T) {
	scr, _ := newTestScreen(t)
	r, err := scr.NewRectangle(0, 0, 10, 10)
	require.NoError(t, err)
	before := r.Vertices()

	tests := []struct {
		name string
		call func() error
	}{
		{"negative width", func() error { return r.SetWidth(-1) }},
		{"NaN height", func() error { return r.SetHeight(math.NaN()) }},
		{"Inf move", func() error { return r.Move(math.Inf(1), 0) }},
		{"NaN rotate", func() error { return r.Rotate(math.NaN()) }},
		{"negative border", func() error { return r.SetBorderWidth(-2) }},
		{"NaN look", func() error { return r.LookAt(Loc(math.NaN(), 0)) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			var ae *ArgumentError
			require.True(t, errors.As(err, &ae), "error = %v", err)
			assert.NotEmpty(t, ae.Arg)
			assert.NotEmpty(t, ae.Constraint)
			assert.Equal(t, before, r.Vertices())
		})
	}
}

func TestConstructorValidation(t *testing.T) {
	scr, _ := newTestScreen(t)
	tests := []struct {
		name string
		call func() error
	}{
		{"rectangle negative", func() error { _, err := scr.NewRectangle(0, 0, -1, 5); return err }},
		{"oval NaN", func() error { _, err := scr.NewOval(math.NaN(), 0, 1, 1); return err }},
		{"polygon short", func() error { _, err := scr.NewPolygon([]Location{Loc(0, 0), Loc(1, 1)}); return err }},
		{"regular sides", func() error { _, err := scr.NewRegularPolygon(2, 0, 0, 10, 10); return err }},
		{"custom polygon empty", func() error { _, err := scr.NewCustomPolygon(nil); return err }},
		{"line Inf", func() error { _, err := scr.NewLine(Loc(0, 0), Loc(math.Inf(-1), 0)); return err }},
		{"text size", func() error { _, err := scr.NewText("x", 0, 0, WithFontSize(-3)); return err }},
		{"oval wedges", func() error { _, err := scr.NewOval(0, 0, 10, 10, WithWedges(3)); return err }},
		{"custom nil outline", func() error { _, err := scr.NewCustomRenderable(0, 0, 1, 1, nil); return err }},
		{"custom short outline", func() error {
			_, err := scr.NewCustomRenderable(0, 0, 1, 1, func(x, y, w, h float64) []Location { return nil })
			return err
		}},
		{"rounded radius", func() error { _, err := scr.NewRoundedRectangle(0, 0, 10, 10, -1); return err }},
		{"line dashes", func() error { _, err := scr.NewLine(Loc(0, 0), Loc(1, 1), WithDashes(-1)); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.call(), ErrInvalidArgument)
		})
	}
	assert.Empty(t, scr.Objects(), "failed constructors registered shapes")
}

func TestForwardAndHeading(t *testing.T) {
	scr, _ := newTestScreen(t)
	r, err := scr.NewRectangle(0, 0, 10, 10)
	require.NoError(t, err)

	require.NoError(t, r.Forward(10))
	assertVerticesNear(t, []Location{Loc(5, -5)}, []Location{r.Center()}, 1e-9)

	require.NoError(t, r.SetRotation(90))
	require.NoError(t, r.Forward(10))
	assertVerticesNear(t, []Location{Loc(15, -5)}, []Location{r.Center()}, 1e-9)

	require.NoError(t, r.Backward(10))
	assertVerticesNear(t, []Location{Loc(5, -5)}, []Location{r.Center()}, 1e-9)

	assert.InDelta(t, 180, r.AngleTo(Loc(5, 100)), 1e-9)
	require.NoError(t, r.LookAt(Loc(-100, -5)))
	assert.InDelta(t, 270, r.Rotation(), 1e-9)
}

func TestDistance(t *testing.T) {
	scr, _ := newTestScreen(t)
	a, err := scr.NewRectangle(0, 0, 10, 10)
	require.NoError(t, err)
	b, err := scr.NewRectangle(30, 40, 10, 10)
	require.NoError(t, err)
	assert.InDelta(t, 50, a.Distance(b), 1e-9)
	assert.InDelta(t, 5, a.DistanceTo(Loc(5, 10)), 1e-9)
}

func TestRotateAboutPivot(t *testing.T) {
	scr, _ := newTestScreen(t)
	r, err := scr.NewRectangle(10, -5, 10, 10)
	require.NoError(t, err)
	require.NoError(t, r.RotateAbout(90, Loc(0, 0)))
	assertVerticesNear(t, []Location{Loc(0, 15)}, []Location{r.Center()}, 1e-9)
	assert.Equal(t, 90.0, r.Rotation())
}

func TestNotRotatable(t *testing.T) {
	scr, _ := newTestScreen(t)
	c, err := scr.NewCustomRenderable(0, 0, 20, 20, geom.RectangleVertices, NotRotatable())
	require.NoError(t, err)
	assert.ErrorIs(t, c.Rotate(10), ErrUnsupportedOperation)
	assert.ErrorIs(t, c.LookAt(Loc(100, 100)), ErrUnsupportedOperation)
	assert.NoError(t, c.Move(1, 1))
	assert.NoError(t, c.Resize(40, 40))
}

func TestCustomRenderableFollowsBox(t *testing.T) {
	scr, _ := newTestScreen(t)
	calls := 0
	diamond := func(x, y, w, h float64) []Location {
		calls++
		return []Location{Loc(x+w/2, y), Loc(x+w, y+h/2), Loc(x+w/2, y+h), Loc(x, y+h/2)}
	}
	c, err := scr.NewCustomRenderable(0, 0, 20, 10, diamond)
	require.NoError(t, err)
	require.NoError(t, c.Resize(40, 20))
	assertVerticesNear(t, []Location{Loc(10, -5), Loc(30, 5), Loc(10, 15), Loc(-10, 5)}, c.Vertices(), 1e-9)
	assert.Greater(t, calls, 1)

	d := c.Clone()
	require.NoError(t, d.Move(100, 0))
	assert.NotEqual(t, c.Vertices(), d.Vertices())
}

func TestCustomOutlineCheckedOnBoxChange(t *testing.T) {
	scr, _ := newTestScreen(t)
	// The outline collapses below 10 pixels and leaves the visible area
	// past x = 500.
	outline := func(x, y, w, h float64) []Location {
		if w < 10 || h < 10 {
			return []Location{Loc(x, y), Loc(x+w, y+h)}
		}
		if x > 500 {
			return []Location{Loc(x, y), Loc(math.NaN(), y), Loc(x, y+h)}
		}
		return geom.RectangleVertices(x, y, w, h)
	}
	c, err := scr.NewCustomRenderable(0, 0, 20, 20, outline)
	require.NoError(t, err)
	before := c.Vertices()

	tests := []struct {
		name string
		call func() error
	}{
		{"Resize", func() error { return c.Resize(5, 5) }},
		{"SetWidth", func() error { return c.SetWidth(2) }},
		{"SetTransform", func() error { return c.SetTransform(Transform{Width: 4, Height: 20, Rotation: 10}) }},
		{"Move", func() error { return c.Move(600, 0) }},
		{"MoveTo", func() error { return c.MoveTo(501, 0) }},
		{"RotateAbout", func() error { return c.RotateAbout(180, Loc(300, 10)) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			var ae *ArgumentError
			require.True(t, errors.As(err, &ae), "error = %v", err)
			assert.Equal(t, "outline", ae.Arg)
			assert.Equal(t, before, c.Vertices())
			assert.Equal(t, 0.0, c.Rotation())
			assert.True(t, c.Contains(Loc(10, 10)))
			assert.NotPanics(t, func() { c.Bounds() })
		})
	}
	require.NoError(t, c.Resize(12, 12))
	assert.InDelta(t, 12, c.Width(), 1e-9)
}

func TestNotRotatableRejectsInitialRotation(t *testing.T) {
	scr, _ := newTestScreen(t)
	_, err := scr.NewRectangle(0, 0, 10, 10, NotRotatable(), WithRotation(45))
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Empty(t, scr.Objects())

	r, err := scr.NewRectangle(0, 0, 10, 10, NotRotatable(), WithRotation(360))
	require.NoError(t, err)
	assert.Equal(t, 0.0, r.Rotation())
}

func TestSetTransformComparesNormalizedRotation(t *testing.T) {
	scr, _ := newTestScreen(t)
	r, err := scr.NewRectangle(0, 0, 10, 10, NotRotatable())
	require.NoError(t, err)
	assert.NoError(t, r.SetTransform(Transform{Width: 20, Height: 10, Rotation: 360}))
	assert.NoError(t, r.SetTransform(Transform{Width: 20, Height: 10, Rotation: -720}))
	assert.Equal(t, Transform{Width: 20, Height: 10}, r.Transform())
	assert.ErrorIs(t, r.SetTransform(Transform{Width: 20, Height: 10, Rotation: 90}), ErrUnsupportedOperation)
	assert.ErrorIs(t, r.SetTransform(Transform{Width: 20, Height: 10, Rotation: math.Inf(1)}), ErrInvalidArgument)

	q, err := scr.NewRectangle(0, 0, 10, 10, WithRotation(30))
	require.NoError(t, err)
	require.NoError(t, q.SetTransform(Transform{Width: 10, Height: 10, Rotation: 390}))
	assert.Equal(t, 30.0, q.Rotation())
}

func TestStyleSetters(t *testing.T) {
	scr, _ := newTestScreen(t)
	r, err := scr.NewRectangle(0, 0, 10, 10)
	require.NoError(t, err)
	require.NoError(t, r.SetColor(Green))
	require.NoError(t, r.SetBorder(Blue))
	require.NoError(t, r.SetBorderWidth(3))
	require.NoError(t, r.SetFill(false))
	require.NoError(t, r.SetVisible(false))

	assert.True(t, r.Color().Equal(Green))
	assert.True(t, r.Border().Equal(Blue))
	assert.Equal(t, 3.0, r.BorderWidth())
	assert.False(t, r.Fill())
	assert.False(t, r.Visible())

	p := r.primitive()
	assert.Nil(t, p.Fill)
	assert.Equal(t, Blue.ImageColor(), p.Stroke)
	assert.False(t, p.Visible)
}

func TestLocationIsAnchorNotInterior(t *testing.T) {
	scr, _ := newTestScreen(t)
	r, err := scr.NewRectangle(0, 0, 100, 20)
	require.NoError(t, err)
	require.NoError(t, r.Rotate(45))

	assert.Equal(t, Loc(0, 0), r.Location())
	assert.False(t, r.Contains(r.Location()))
	assert.True(t, r.Contains(r.Center()))
	assert.Equal(t, []Renderable{r}, scr.ObjectsAt(r.Center()))
	assert.Empty(t, scr.ObjectsAt(r.Location()))
}

func TestLine(t *testing.T) {
	scr, _ := newTestScreen(t)
	l, err := scr.NewLine(Loc(0, 0), Loc(30, 40), WithThickness(4), WithColor(Red))
	require.NoError(t, err)

	assert.Equal(t, KindLine, l.Kind())
	assert.InDelta(t, 50, l.Length(), 1e-9)
	assert.Equal(t, Loc(0, 0), l.Location())
	assert.Equal(t, Loc(15, 20), l.Center())

	assert.True(t, l.Contains(Loc(15, 20)))
	assert.True(t, l.Contains(Loc(16.5, 19)))
	assert.False(t, l.Contains(Loc(30, 0)))

	assert.ErrorIs(t, l.SetWidth(10), ErrUnsupportedOperation)
	assert.ErrorIs(t, l.SetBorder(Blue), ErrUnsupportedOperation)
	assert.ErrorIs(t, l.SetFill(false), ErrUnsupportedOperation)
	assert.ErrorIs(t, l.SetBorderWidth(2), ErrUnsupportedOperation)

	require.NoError(t, l.Rotate(180))
	assertVerticesNear(t, []Location{Loc(30, 40), Loc(0, 0)}, l.Vertices(), 1e-9)

	require.NoError(t, l.SetPos2(Loc(0, 10)))
	assert.Equal(t, 0.0, l.Rotation())
	assert.Equal(t, Loc(30, 40), l.Pos1())
	assert.Equal(t, Loc(0, 10), l.Pos2())

	require.NoError(t, l.MoveTo(0, 0))
	assert.Equal(t, Loc(0, 0), l.Pos1())
	assert.Equal(t, Loc(-30, -30), l.Pos2())

	require.NoError(t, l.SetPos2(Loc(10, 0)))
	require.NoError(t, l.LookAt(Loc(0, 50)))
	assertVerticesNear(t, []Location{Loc(0, 0), Loc(0, 10)}, l.Vertices(), 1e-9)

	require.NoError(t, l.SetDashes(4, 2))
	assert.Equal(t, []float64{4, 2}, l.Dashes())
	require.NoError(t, l.SetThickness(2))
	assert.ErrorIs(t, l.SetThickness(0), ErrInvalidArgument)

	p := l.primitive()
	assert.Equal(t, []float64{4, 2}, p.Dashes)
	assert.Equal(t, 2.0, p.StrokeWidth)
	assert.Equal(t, Red.ImageColor(), p.Stroke)
}

func TestText(t *testing.T) {
	scr, _ := newTestScreen(t)
	tx, err := scr.NewText("hi", 10, 20)
	require.NoError(t, err)

	w, h := tx.Width(), tx.Height()
	assert.Greater(t, w, 0.0)
	assert.Greater(t, h, 0.0)
	assert.Equal(t, Loc(10, 20), tx.Location())

	require.NoError(t, tx.SetText("hello, world"))
	assert.Greater(t, tx.Width(), w)
	assert.Equal(t, Loc(10, 20), tx.Location())

	require.NoError(t, tx.SetSize(32))
	assert.Greater(t, tx.Height(), h)

	require.NoError(t, tx.SetBold(true))
	require.NoError(t, tx.SetItalic(true))
	require.NoError(t, tx.SetUnderline(true))
	require.NoError(t, tx.SetStrikethrough(true))
	assert.True(t, tx.Bold() && tx.Italic() && tx.Underline() && tx.Strikethrough())

	assert.ErrorIs(t, tx.SetWidth(5), ErrUnsupportedOperation)
	assert.ErrorIs(t, tx.Resize(5, 5), ErrUnsupportedOperation)
	assert.ErrorIs(t, tx.SetSize(0), ErrInvalidArgument)
	assert.NoError(t, tx.Rotate(15))

	p := tx.primitive()
	require.NotNil(t, p.Text)
	assert.Equal(t, "hello, world", p.Text.Text)
	assert.Equal(t, 32.0, p.Text.Size)
}

func TestTextAlign(t *testing.T) {
	scr, _ := newTestScreen(t)
	tx, err := scr.NewText("a\nlonger line", 0, 0, WithAlign(AlignCenter))
	require.NoError(t, err)
	assert.Equal(t, AlignCenter, tx.Align())
	w := tx.Width()

	require.NoError(t, tx.SetAlign(AlignRight))
	assert.Equal(t, AlignRight, tx.primitive().Text.Align)
	assert.Equal(t, w, tx.Width(), "alignment changed the box")

	assert.ErrorIs(t, tx.SetAlign(Align(7)), ErrInvalidArgument)
	assert.Equal(t, AlignRight, tx.Align())
	_, err = scr.NewText("x", 0, 0, WithAlign(Align(3)))
	assert.ErrorIs(t, err, ErrInvalidArgument)

	a, err := ParseAlign(" Center ")
	require.NoError(t, err)
	assert.Equal(t, AlignCenter, a)
	_, err = ParseAlign("middle")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestOval(t *testing.T) {
	scr, _ := newTestScreen(t)
	small, err := scr.NewOval(0, 0, 10, 10)
	require.NoError(t, err)
	assert.Equal(t, MinWedges, small.Wedges())
	assert.Len(t, small.Vertices(), MinWedges)

	big, err := scr.NewOval(0, 0, 2000, 2000)
	require.NoError(t, err)
	assert.Greater(t, big.Wedges(), MinWedges)
	assert.LessOrEqual(t, big.Wedges(), 120)

	require.NoError(t, small.SetWedges(40))
	assert.Len(t, small.Vertices(), 40)
	assert.ErrorIs(t, small.SetWedges(19), ErrInvalidArgument)

	top := small.Vertices()[0]
	assert.InDelta(t, 5, top.X, 1e-9)
	assert.InDelta(t, 0, top.Y, 1e-9)

	slices, err := small.Slices()
	require.NoError(t, err)
	assert.Len(t, slices, 40)
	assert.Len(t, scr.Objects(), 2+40)
	for _, s := range slices {
		assert.Len(t, s.Vertices(), 3)
		assert.Equal(t, small.Center(), s.Vertices()[1])
	}

	c := small.Clone()
	require.NoError(t, c.Resize(100, 50))
	assert.Len(t, c.Vertices(), 40)
	assert.Len(t, small.Vertices(), 40)
	assert.InDelta(t, 10, small.Width(), 1e-9)
}

func TestPolygonVariants(t *testing.T) {
	scr, _ := newTestScreen(t)
	hex, err := scr.NewRegularPolygon(6, 0, 0, 100, 100)
	require.NoError(t, err)
	assert.Len(t, hex.Vertices(), 6)
	assert.Equal(t, KindPolygon, hex.Kind())

	tri, err := scr.NewTriangleIn(0, 0, 20, 10)
	require.NoError(t, err)
	assert.Equal(t, []Location{Loc(10, 0), Loc(20, 10), Loc(0, 10)}, tri.Vertices())

	cp, err := scr.NewCustomPolygon([]Location{Loc(0, 0), Loc(10, 0), Loc(10, 10)}, WithRotation(90))
	require.NoError(t, err)
	assert.Equal(t, 90.0, cp.Rotation())
	require.NoError(t, cp.SetVertices([]Location{Loc(0, 0), Loc(4, 0), Loc(4, 4), Loc(0, 4)}))
	assert.Equal(t, 0.0, cp.Rotation())
	assert.Equal(t, []Location{Loc(0, 0), Loc(4, 0), Loc(4, 4), Loc(0, 4)}, cp.Vertices())
	assert.ErrorIs(t, cp.SetVertices([]Location{Loc(0, 0)}), ErrInvalidArgument)
	assert.Len(t, cp.Vertices(), 4)
}

func TestKindNames(t *testing.T) {
	assert.Equal(t, "Rectangle", KindRectangle.String())
	assert.Equal(t, "CustomRenderable", KindCustom.String())
	assert.Equal(t, "Unknown", Kind(200).String())
}
