// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ebitencanvas

import (
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/gogpu/easel/canvas"
	"github.com/gogpu/easel/geom"
	"github.com/gogpu/easel/internal/fonts"
)

var (
	defaultBackground color.Color = color.White
	defaultGridColor  color.Color = color.NRGBA{R: 0xC0, G: 0xC0, B: 0xC0, A: 0xFF}
)

// render paints the published frame. Callers hold c.mu.
func (c *Canvas) render(dst *ebiten.Image) {
	bg := c.frameBG
	if bg == nil {
		bg = defaultBackground
	}
	dst.Fill(bg)
	c.releaseTextures()
	c.drawPicture(dst)
	for i, p := range c.frame {
		if !p.Visible {
			continue
		}
		c.draw(dst, c.handles[i], p)
	}
	if c.frameGrid.Enabled && c.frameGrid.Cell > 0 {
		c.drawGrid(dst)
	}
}

func (c *Canvas) draw(dst *ebiten.Image, h canvas.Handle, p canvas.Primitive) {
	switch p.Kind {
	case canvas.KindPolygon:
		if len(p.Points) < 3 {
			return
		}
		if p.Fill != nil {
			c.fill(dst, p.Points, p.Fill)
		}
		if p.Stroke != nil && p.StrokeWidth > 0 {
			c.stroke(dst, p.Points, p.StrokeWidth, p.Stroke)
		}
	case canvas.KindLine:
		if len(p.Points) < 2 || p.Stroke == nil {
			return
		}
		w := float32(math.Max(p.StrokeWidth, 1))
		for _, s := range geom.Dash(p.Points[0], p.Points[1], p.Dashes) {
			vector.StrokeLine(dst, float32(s[0].X), float32(s[0].Y), float32(s[1].X), float32(s[1].Y), w, p.Stroke, true)
		}
	case canvas.KindText:
		if p.Text == nil || len(p.Points) < 4 {
			return
		}
		if err := c.drawText(dst, p); err != nil {
			c.log.Warn("ebitencanvas: text not drawn", "handle", h, "err", err)
		}
		if p.Stroke != nil && p.StrokeWidth > 0 {
			c.stroke(dst, p.Points, p.StrokeWidth, p.Stroke)
		}
	case canvas.KindImage:
		if p.Image == nil || len(p.Points) < 4 {
			return
		}
		c.drawImage(dst, h, p)
		if p.Stroke != nil && p.StrokeWidth > 0 {
			c.stroke(dst, p.Points, p.StrokeWidth, p.Stroke)
		}
	}
}

func outline(pts []geom.Point) *vector.Path {
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()
	return &path
}

func (c *Canvas) fill(dst *ebiten.Image, pts []geom.Point, col color.Color) {
	vs, is := outline(pts).AppendVerticesAndIndicesForFilling(nil, nil)
	c.triangles(dst, vs, is, col)
}

func (c *Canvas) stroke(dst *ebiten.Image, pts []geom.Point, width float64, col color.Color) {
	vs, is := outline(pts).AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{
		Width:    float32(width),
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	})
	c.triangles(dst, vs, is, col)
}

// triangles paints vs with the non-zero rule so overlapping stroke
// triangles do not blend twice.
func (c *Canvas) triangles(dst *ebiten.Image, vs []ebiten.Vertex, is []uint16, col color.Color) {
	if c.white == nil {
		c.white = ebiten.NewImage(3, 3)
		c.white.Fill(color.White)
	}
	r, g, b, a := col.RGBA()
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	op := &ebiten.DrawTrianglesOptions{
		AntiAlias:      true,
		FillRule:       ebiten.NonZero,
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
	}
	dst.DrawTriangles(vs, is, c.white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image), op)
}

// placement maps box-local coordinates, origin at the top-left corner of
// the unrotated box, onto the rotated box.
func placement(box []geom.Point, rotation float64) (geo ebiten.GeoM, w, h float64) {
	w, h = box[0].Distance(box[1]), box[0].Distance(box[3])
	center := geom.Centroid(box)
	geo.Translate(-w/2, -h/2)
	geo.Rotate(rotation * math.Pi / 180)
	geo.Translate(center.X, center.Y)
	return geo, w, h
}

func (c *Canvas) face(s *canvas.TextStyle) (font.Face, *fonts.Font, error) {
	f, err := fonts.Get(s.Bold, s.Italic)
	if err != nil {
		return nil, nil, err
	}
	key := faceKey{s.Bold, s.Italic, s.Size}
	if face, ok := c.faces[key]; ok {
		return face, f, nil
	}
	face, err := f.Face(s.Size)
	if err != nil {
		return nil, nil, err
	}
	c.faces[key] = face
	return face, f, nil
}

func (c *Canvas) drawText(dst *ebiten.Image, p canvas.Primitive) error {
	s := p.Text
	col := p.Fill
	if col == nil {
		col = color.Black
	}
	face, f, err := c.face(s)
	if err != nil {
		return err
	}
	m, err := f.Metrics(s.Size)
	if err != nil {
		return err
	}
	box, w, _ := placement(p.Points, p.Rotation)
	thickness := float32(math.Max(1, math.Round(s.Size/14)))
	rule := func(x0, x1, y float64) {
		ax, ay := box.Apply(x0, y)
		bx, by := box.Apply(x1, y)
		vector.StrokeLine(dst, float32(ax), float32(ay), float32(bx), float32(by), thickness, col, true)
	}

	baseline := m.Ascent
	for _, line := range strings.Split(s.Text, "\n") {
		adv := f.Advance(line, s.Size)
		x := s.Align.Offset(w, adv)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x, baseline)
		op.GeoM.Concat(box)
		op.ColorScale.ScaleWithColor(col)
		op.Filter = ebiten.FilterLinear
		text.DrawWithOptions(dst, line, face, op)

		if s.Underline {
			rule(x, x+adv, baseline+m.Descent/2)
		}
		if s.Strikethrough {
			rule(x, x+adv, baseline-m.Ascent*0.3)
		}
		baseline += m.LineHeight
	}
	return nil
}

// texture returns the GPU copy of the image primitive for h, uploading it
// when the source image changed.
func (c *Canvas) texture(h canvas.Handle, src image.Image) *ebiten.Image {
	if e, ok := c.textures[h]; ok {
		if e.src == src {
			return e.img
		}
		c.stale = append(c.stale, e.img)
	}
	img := ebiten.NewImageFromImage(src)
	c.textures[h] = textureEntry{src: src, img: img}
	return img
}

// releaseTextures frees textures of shapes that are no longer in the
// published frame along with replaced ones.
func (c *Canvas) releaseTextures() {
	live := make(map[canvas.Handle]bool, len(c.handles))
	for _, h := range c.handles {
		live[h] = true
	}
	for h, e := range c.textures {
		if !live[h] {
			c.stale = append(c.stale, e.img)
			delete(c.textures, h)
		}
	}
	for _, img := range c.stale {
		img.Deallocate()
	}
	c.stale = c.stale[:0]
}

func (c *Canvas) drawImage(dst *ebiten.Image, handle canvas.Handle, p canvas.Primitive) {
	sb := p.Image.Bounds()
	if sb.Empty() {
		return
	}
	tex := c.texture(handle, p.Image)
	box, w, h := placement(p.Points, p.Rotation)
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM.Scale(w/float64(sb.Dx()), h/float64(sb.Dy()))
	op.GeoM.Concat(box)
	dst.DrawImage(tex, op)
}

// drawPicture centers the published background picture at its natural
// size, uploading it when it changed.
func (c *Canvas) drawPicture(dst *ebiten.Image) {
	if c.picTex.src != c.framePic {
		if c.picTex.img != nil {
			c.picTex.img.Deallocate()
		}
		c.picTex = textureEntry{src: c.framePic}
		if c.framePic != nil {
			c.picTex.img = ebiten.NewImageFromImage(c.framePic)
		}
	}
	if c.picTex.img == nil {
		return
	}
	sb, db := c.picTex.img.Bounds(), dst.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64((db.Dx()-sb.Dx())/2), float64((db.Dy()-sb.Dy())/2))
	dst.DrawImage(c.picTex.img, op)
}

func (c *Canvas) drawGrid(dst *ebiten.Image) {
	col := c.frameGrid.Color
	if col == nil {
		col = defaultGridColor
	}
	b := dst.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())
	cell := float32(c.frameGrid.Cell)
	for x := float32(0); x < w; x += cell {
		vector.StrokeLine(dst, x+0.5, 0, x+0.5, h, 1, col, false)
	}
	for y := float32(0); y < h; y += cell {
		vector.StrokeLine(dst, 0, y+0.5, w, y+0.5, 1, col, false)
	}
}
