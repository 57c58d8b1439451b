package soft

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/easel/canvas"
	"github.com/gogpu/easel/geom"
)

func (c *Canvas) draw(dst *image.RGBA, p canvas.Primitive) error {
	switch p.Kind {
	case canvas.KindPolygon:
		if len(p.Points) < 3 {
			return nil
		}
		if p.Fill != nil {
			c.fillPolygon(dst, p.Points, p.Fill)
		}
		if p.Stroke != nil && p.StrokeWidth > 0 {
			c.stroke(dst, p.Points, true, p.StrokeWidth, nil, p.Stroke)
		}
	case canvas.KindLine:
		if len(p.Points) < 2 || p.Stroke == nil {
			return nil
		}
		c.stroke(dst, p.Points[:2], false, math.Max(p.StrokeWidth, 1), p.Dashes, p.Stroke)
	case canvas.KindText:
		if p.Text == nil || len(p.Points) < 4 {
			return nil
		}
		w, h := boxSize(p.Points)
		img, err := c.text.render(p.Text, p.Fill, w, h)
		if err != nil {
			return err
		}
		place(dst, img, p.Points, p.Rotation)
		if p.Stroke != nil && p.StrokeWidth > 0 {
			c.stroke(dst, p.Points, true, p.StrokeWidth, nil, p.Stroke)
		}
	case canvas.KindImage:
		if p.Image == nil || len(p.Points) < 4 {
			return nil
		}
		place(dst, p.Image, p.Points, p.Rotation)
		if p.Stroke != nil && p.StrokeWidth > 0 {
			c.stroke(dst, p.Points, true, p.StrokeWidth, nil, p.Stroke)
		}
	}
	return nil
}

func fillRect(dst draw.Image, r image.Rectangle, col color.Color) {
	draw.Draw(dst, r, image.NewUniform(col), image.Point{}, draw.Src)
}

// fillPolygon rasterizes the closed outline pts with the non-zero rule.
func (c *Canvas) fillPolygon(dst *image.RGBA, pts []geom.Point, col color.Color) {
	pts = clipPolygon(pts, float64(c.width), float64(c.height))
	if len(pts) < 3 {
		return
	}
	c.z.Reset(c.width, c.height)
	c.z.DrawOp = draw.Over
	c.z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		c.z.LineTo(float32(p.X), float32(p.Y))
	}
	c.z.ClosePath()
	c.z.Draw(dst, dst.Bounds(), image.NewUniform(col), image.Point{})
}

// stroke draws each segment of pts as a quad of the given width, with
// small round caps at the vertices so corners join.
func (c *Canvas) stroke(dst *image.RGBA, pts []geom.Point, closed bool, width float64, dashes []float64, col color.Color) {
	n := len(pts)
	segs := n - 1
	if closed {
		segs = n
	}
	for i := range segs {
		a, b := pts[i], pts[(i+1)%n]
		for _, s := range geom.Dash(a, b, dashes) {
			c.fillPolygon(dst, segmentQuad(s[0], s[1], width), col)
		}
	}
	if width > 2 && len(dashes) == 0 {
		r := width / 2
		for _, p := range pts {
			c.fillPolygon(dst, geom.EllipseVertices(p.X-r, p.Y-r, width, width, 12), col)
		}
	}
}

func segmentQuad(a, b geom.Point, width float64) []geom.Point {
	d := b.Sub(a)
	l := d.Length()
	if l == 0 {
		h := width / 2
		return geom.RectangleVertices(a.X-h, a.Y-h, width, width)
	}
	n := geom.Pt(-d.Y/l, d.X/l).Mul(width / 2)
	return []geom.Point{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)}
}

// boxSize returns the width and height of a rotated box given as
// top-left, top-right, bottom-right, bottom-left.
func boxSize(box []geom.Point) (w, h float64) {
	return box[0].Distance(box[1]), box[0].Distance(box[3])
}

// place draws src stretched over the rotated box.
func place(dst *image.RGBA, src image.Image, box []geom.Point, rotation float64) {
	sb := src.Bounds()
	if sb.Empty() {
		return
	}
	w, h := boxSize(box)
	sx, sy := w/float64(sb.Dx()), h/float64(sb.Dy())
	origin := box[0]
	if rotation == 0 && sx == 1 && sy == 1 &&
		origin.X == math.Trunc(origin.X) && origin.Y == math.Trunc(origin.Y) {
		r := sb.Sub(sb.Min).Add(image.Pt(int(origin.X), int(origin.Y)))
		draw.Draw(dst, r, src, sb.Min, draw.Over)
		return
	}
	sin, cos := geom.SinCos(rotation)
	m := f64.Aff3{
		cos * sx, -sin * sy, origin.X,
		sin * sx, cos * sy, origin.Y,
	}
	// Transform maps src pixel space, which starts at sb.Min.
	m[2] -= m[0]*float64(sb.Min.X) + m[1]*float64(sb.Min.Y)
	m[5] -= m[3]*float64(sb.Min.X) + m[4]*float64(sb.Min.Y)
	xdraw.BiLinear.Transform(dst, m, src, sb, xdraw.Over, nil)
}

// drawPicture centers the background picture on the canvas at its natural
// size.
func (c *Canvas) drawPicture(dst *image.RGBA) {
	sb := c.picture.Bounds()
	at := image.Pt((c.width-sb.Dx())/2, (c.height-sb.Dy())/2)
	r := image.Rectangle{Min: at, Max: at.Add(sb.Size())}
	draw.Draw(dst, r, c.picture, sb.Min, draw.Over)
}

func (c *Canvas) drawGrid(dst *image.RGBA) {
	col := c.grid.Color
	if col == nil {
		col = DefaultGridColor
	}
	u := image.NewUniform(col)
	for x := 0.0; x < float64(c.width); x += c.grid.Cell {
		xi := int(x)
		draw.Draw(dst, image.Rect(xi, 0, xi+1, c.height), u, image.Point{}, draw.Over)
	}
	for y := 0.0; y < float64(c.height); y += c.grid.Cell {
		yi := int(y)
		draw.Draw(dst, image.Rect(0, yi, c.width, yi+1), u, image.Point{}, draw.Over)
	}
}

// clipPolygon clips pts to [0,w]x[0,h] (Sutherland-Hodgman).
func clipPolygon(pts []geom.Point, w, h float64) []geom.Point {
	b := geom.Bounds(pts)
	if b.Min.X >= 0 && b.Min.Y >= 0 && b.Max.X <= w && b.Max.Y <= h {
		return pts
	}
	type edge struct {
		inside func(geom.Point) bool
		cross  func(a, b geom.Point) geom.Point
	}
	atX := func(x float64) func(a, b geom.Point) geom.Point {
		return func(a, b geom.Point) geom.Point {
			return a.Lerp(b, (x-a.X)/(b.X-a.X))
		}
	}
	atY := func(y float64) func(a, b geom.Point) geom.Point {
		return func(a, b geom.Point) geom.Point {
			return a.Lerp(b, (y-a.Y)/(b.Y-a.Y))
		}
	}
	edges := []edge{
		{func(p geom.Point) bool { return p.X >= 0 }, atX(0)},
		{func(p geom.Point) bool { return p.X <= w }, atX(w)},
		{func(p geom.Point) bool { return p.Y >= 0 }, atY(0)},
		{func(p geom.Point) bool { return p.Y <= h }, atY(h)},
	}
	out := pts
	for _, e := range edges {
		if len(out) == 0 {
			break
		}
		in := out
		out = make([]geom.Point, 0, len(in)+4)
		prev := in[len(in)-1]
		for _, cur := range in {
			switch {
			case e.inside(cur):
				if !e.inside(prev) {
					out = append(out, e.cross(prev, cur))
				}
				out = append(out, cur)
			case e.inside(prev):
				out = append(out, e.cross(prev, cur))
			}
			prev = cur
		}
	}
	return out
}
