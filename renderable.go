package easel

import (
	"math"
	"slices"

	"github.com/gogpu/easel/canvas"
	"github.com/gogpu/easel/geom"
)

// Kind names a renderable variant.
type Kind uint8

const (
	KindRectangle Kind = iota
	KindOval
	KindPolygon
	KindTriangle
	KindCustomPolygon
	KindLine
	KindText
	KindImage
	KindCustom
)

var kindNames = [...]string{
	KindRectangle:     "Rectangle",
	KindOval:          "Oval",
	KindPolygon:       "Polygon",
	KindTriangle:      "Triangle",
	KindCustomPolygon: "CustomPolygon",
	KindLine:          "Line",
	KindText:          "Text",
	KindImage:         "Image",
	KindCustom:        "CustomRenderable",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Transform is the (width, height, rotation) triple of a renderable.
type Transform struct {
	Width, Height float64
	Rotation      float64
}

// Renderable is a shape registered with a Screen. The set of
// implementations is closed: *Rectangle, *Oval, *Polygon, *Triangle,
// *CustomPolygon, *Line, *Text, *Image and *CustomRenderable.
//
// Mutators validate their arguments before changing anything and return
// an error wrapping ErrInvalidArgument or ErrUnsupportedOperation; on
// error the renderable is unchanged. Queries never fail, even after
// Remove.
type Renderable interface {
	Kind() Kind
	Screen() *Screen

	Vertices() []Location
	Location() Location
	Center() Location
	Rotation() float64
	Width() float64
	Height() float64
	Transform() Transform
	Bounds() geom.Rect

	Color() Color
	Border() Color
	BorderWidth() float64
	Fill() bool
	Visible() bool

	Move(dx, dy float64) error
	MoveTo(x, y float64) error
	SetCenter(x, y float64) error
	Rotate(deg float64) error
	RotateAbout(deg float64, pivot Location) error
	SetRotation(deg float64) error
	SetWidth(w float64) error
	SetHeight(h float64) error
	Resize(w, h float64) error
	SetTransform(t Transform) error
	Forward(d float64) error
	Backward(d float64) error
	LookAt(p Location) error
	AngleTo(p Location) float64

	SetColor(c Color) error
	SetBorder(c Color) error
	SetBorderWidth(w float64) error
	SetFill(fill bool) error
	SetVisible(visible bool) error

	Contains(p Location) bool
	Overlaps(o Renderable) bool
	Distance(o Renderable) float64
	DistanceTo(p Location) float64

	Front() error
	Back() error
	InFrontOf(o Renderable) (bool, error)
	Remove() error
	Removed() bool

	core() *shape
	primitive() canvas.Primitive
}

type lifeState uint8

const (
	detached lifeState = iota
	registered
	removed
)

// shape holds the state shared by every variant.
//
// Box variants keep (x, y, w, h) and produce their unrotated outline from
// outline. Vertex variants keep base, their unrotated vertices. In both
// cases verts is the outline rotated by rot about the pivot and is rebuilt
// by recompute after every change.
type shape struct {
	kind   Kind
	owner  Renderable // the variant embedding this shape
	screen *Screen
	handle canvas.Handle
	state  lifeState

	boxed      bool
	x, y, w, h float64
	outline    func(x, y, w, h float64) []geom.Point
	base       []geom.Point

	rot   float64
	verts []geom.Point

	color       Color
	border      Color
	borderWidth float64
	fill        bool
	visible     bool
	rotatable   bool
	resizable   bool
	userOutline bool // outline is caller code and is checked before each box change

	dirty bool
}

func newShape(kind Kind, o shapeOptions) shape {
	return shape{
		kind:        kind,
		rot:         geom.NormalizeAngle(o.rotation),
		color:       o.color,
		border:      o.border,
		borderWidth: o.borderWidth,
		fill:        o.fill,
		visible:     o.visible,
		rotatable:   o.rotatable,
		resizable:   true,
	}
}

func (s *shape) core() *shape { return s }

func (s *shape) recompute() {
	var pts []geom.Point
	if s.boxed {
		pts = s.outline(s.x, s.y, s.w, s.h)
	} else {
		pts = s.base
	}
	s.verts = geom.RotateAbout(pts, s.pivot(), s.rot)
	s.dirty = true
}

// pivot is the center of rotation and resizing.
func (s *shape) pivot() geom.Point {
	if s.boxed {
		return geom.Pt(s.x+s.w/2, s.y+s.h/2)
	}
	return geom.Centroid(s.base)
}

// checkOutline verifies that a caller supplied outline still yields a
// polygon for the box (x, y, w, h).
func (s *shape) checkOutline(op string, x, y, w, h float64) error {
	if !s.userOutline {
		return nil
	}
	if pts := s.outline(x, y, w, h); len(pts) < 3 || !finitePoints(pts) {
		return argError(op, "outline", len(pts), "must return at least 3 finite points")
	}
	return nil
}

// mutable reports why the shape cannot change, if it cannot.
func (s *shape) mutable() error {
	if s.screen != nil && s.screen.closed {
		return ErrClosed
	}
	if s.state == removed {
		return ErrRemoved
	}
	return nil
}

func (s *shape) clone() shape {
	c := *s
	c.owner = nil
	c.screen = nil
	c.handle = 0
	c.state = detached
	c.base = slices.Clone(s.base)
	c.verts = slices.Clone(s.verts)
	c.dirty = false
	return c
}

func (s *shape) Kind() Kind { return s.kind }

// Screen returns the owning screen, or nil for a detached clone.
func (s *shape) Screen() *Screen { return s.screen }

// Vertices returns a copy of the current outline.
func (s *shape) Vertices() []Location { return slices.Clone(s.verts) }

// Location returns the anchor: the top-left corner of the unrotated box
// for box variants, the centroid for vertex variants.
func (s *shape) Location() Location {
	if s.boxed {
		return geom.Pt(s.x, s.y)
	}
	return geom.Centroid(s.base)
}

// Center returns the box center or vertex centroid.
func (s *shape) Center() Location { return s.pivot() }

func (s *shape) Rotation() float64 { return s.rot }

// Width returns the unrotated width.
func (s *shape) Width() float64 {
	if s.boxed {
		return s.w
	}
	return geom.Bounds(s.base).Width()
}

// Height returns the unrotated height.
func (s *shape) Height() float64 {
	if s.boxed {
		return s.h
	}
	return geom.Bounds(s.base).Height()
}

func (s *shape) Transform() Transform {
	return Transform{Width: s.Width(), Height: s.Height(), Rotation: s.rot}
}

// Bounds returns the axis-aligned box around the rotated outline.
func (s *shape) Bounds() geom.Rect { return geom.Bounds(s.verts) }

func (s *shape) Color() Color         { return s.color }
func (s *shape) Border() Color        { return s.border }
func (s *shape) BorderWidth() float64 { return s.borderWidth }
func (s *shape) Fill() bool           { return s.fill }
func (s *shape) Visible() bool        { return s.visible }
func (s *shape) Removed() bool        { return s.state == removed }

func (s *shape) Move(dx, dy float64) error {
	if err := s.mutable(); err != nil {
		return err
	}
	if !finite(dx) || !finite(dy) {
		return argError("Move", "delta", geom.Pt(dx, dy), "must be finite")
	}
	if s.boxed {
		if err := s.checkOutline("Move", s.x+dx, s.y+dy, s.w, s.h); err != nil {
			return err
		}
	}
	s.translate(dx, dy)
	return nil
}

func (s *shape) translate(dx, dy float64) {
	if s.boxed {
		s.x += dx
		s.y += dy
	} else {
		s.base = geom.Translate(s.base, dx, dy)
	}
	s.recompute()
}

func (s *shape) MoveTo(x, y float64) error {
	if !finite(x) || !finite(y) {
		return argError("MoveTo", "location", geom.Pt(x, y), "must be finite")
	}
	at := s.Location()
	return s.Move(x-at.X, y-at.Y)
}

func (s *shape) SetCenter(x, y float64) error {
	if !finite(x) || !finite(y) {
		return argError("SetCenter", "center", geom.Pt(x, y), "must be finite")
	}
	c := s.pivot()
	return s.Move(x-c.X, y-c.Y)
}

func (s *shape) canRotate(op string, deg float64) error {
	if err := s.mutable(); err != nil {
		return err
	}
	if !s.rotatable {
		return unsupported(s.kind, op)
	}
	if !finite(deg) {
		return argError(op, "degrees", deg, "must be finite")
	}
	return nil
}

// Rotate turns the shape by deg degrees (clockwise on screen) about its
// center.
func (s *shape) Rotate(deg float64) error {
	if err := s.canRotate("Rotate", deg); err != nil {
		return err
	}
	s.rot = geom.NormalizeAngle(s.rot + deg)
	s.recompute()
	return nil
}

// RotateAbout turns the shape by deg degrees about pivot. The center
// orbits the pivot and the rotation grows by deg.
func (s *shape) RotateAbout(deg float64, pivot Location) error {
	if err := s.canRotate("RotateAbout", deg); err != nil {
		return err
	}
	if !pivot.IsFinite() {
		return argError("RotateAbout", "pivot", pivot, "must be finite")
	}
	c := s.pivot()
	nc := c.RotateAbout(pivot, deg)
	if s.boxed {
		if err := s.checkOutline("RotateAbout", s.x+nc.X-c.X, s.y+nc.Y-c.Y, s.w, s.h); err != nil {
			return err
		}
		s.x += nc.X - c.X
		s.y += nc.Y - c.Y
	} else {
		s.base = geom.Translate(s.base, nc.X-c.X, nc.Y-c.Y)
	}
	s.rot = geom.NormalizeAngle(s.rot + deg)
	s.recompute()
	return nil
}

func (s *shape) SetRotation(deg float64) error {
	if err := s.canRotate("SetRotation", deg); err != nil {
		return err
	}
	s.rot = geom.NormalizeAngle(deg)
	s.recompute()
	return nil
}

func (s *shape) SetWidth(w float64) error  { return s.Resize(w, s.Height()) }
func (s *shape) SetHeight(h float64) error { return s.Resize(s.Width(), h) }

// Resize sets the unrotated size, keeping the center and the rotation.
func (s *shape) Resize(w, h float64) error {
	if err := s.checkResize("Resize", w, h); err != nil {
		return err
	}
	s.resize(w, h)
	return nil
}

func (s *shape) checkResize(op string, w, h float64) error {
	if err := s.mutable(); err != nil {
		return err
	}
	if !s.resizable {
		return unsupported(s.kind, op)
	}
	if !finite(w) || w < 0 {
		return argError(op, "width", w, "must be a finite number >= 0")
	}
	if !finite(h) || h < 0 {
		return argError(op, "height", h, "must be a finite number >= 0")
	}
	if !s.boxed {
		ow, oh := s.Width(), s.Height()
		if (ow == 0 && w != 0) || (oh == 0 && h != 0) {
			return unsupported(s.kind, op+" of a degenerate outline")
		}
		return nil
	}
	c := s.pivot()
	return s.checkOutline(op, c.X-w/2, c.Y-h/2, w, h)
}

func (s *shape) resize(w, h float64) {
	if s.boxed {
		c := s.pivot()
		s.x, s.y, s.w, s.h = c.X-w/2, c.Y-h/2, w, h
	} else {
		sx, sy := ratio(w, s.Width()), ratio(h, s.Height())
		s.base = geom.ScaleAbout(s.base, geom.Centroid(s.base), sx, sy)
	}
	s.recompute()
}

func ratio(want, have float64) float64 {
	if have == 0 {
		return 1
	}
	return want / have
}

// SetTransform applies width, height and rotation together.
func (s *shape) SetTransform(t Transform) error {
	if err := s.mutable(); err != nil {
		return err
	}
	if t.Width != s.Width() || t.Height != s.Height() {
		if err := s.checkResize("SetTransform", t.Width, t.Height); err != nil {
			return err
		}
	}
	if !finite(t.Rotation) {
		return argError("SetTransform", "rotation", t.Rotation, "must be finite")
	}
	if geom.NormalizeAngle(t.Rotation) != s.rot {
		if err := s.canRotate("SetTransform", t.Rotation); err != nil {
			return err
		}
	}
	if t.Width != s.Width() || t.Height != s.Height() {
		s.resize(t.Width, t.Height)
	}
	s.rot = geom.NormalizeAngle(t.Rotation)
	s.recompute()
	return nil
}

// Forward moves the shape d pixels along its heading. A rotation of 0
// faces up.
func (s *shape) Forward(d float64) error {
	if !finite(d) {
		return argError("Forward", "distance", d, "must be finite")
	}
	dx, dy := geom.Advance(s.rot, d)
	return s.Move(dx, dy)
}

// Backward moves the shape d pixels against its heading.
func (s *shape) Backward(d float64) error { return s.Forward(-d) }

// AngleTo returns the heading from the center to p.
func (s *shape) AngleTo(p Location) float64 { return geom.Heading(s.pivot(), p) }

// LookAt turns the shape so its heading points at p.
func (s *shape) LookAt(p Location) error {
	if !p.IsFinite() {
		return argError("LookAt", "target", p, "must be finite")
	}
	return s.SetRotation(s.AngleTo(p))
}

func (s *shape) SetColor(c Color) error {
	if err := s.mutable(); err != nil {
		return err
	}
	s.color = c
	s.dirty = true
	return nil
}

func (s *shape) SetBorder(c Color) error {
	if err := s.mutable(); err != nil {
		return err
	}
	s.border = c
	s.dirty = true
	return nil
}

func (s *shape) SetBorderWidth(w float64) error {
	if err := s.mutable(); err != nil {
		return err
	}
	if !finite(w) || w < 0 {
		return argError("SetBorderWidth", "width", w, "must be a finite number >= 0")
	}
	s.borderWidth = w
	s.dirty = true
	return nil
}

func (s *shape) SetFill(fill bool) error {
	if err := s.mutable(); err != nil {
		return err
	}
	s.fill = fill
	s.dirty = true
	return nil
}

func (s *shape) SetVisible(visible bool) error {
	if err := s.mutable(); err != nil {
		return err
	}
	s.visible = visible
	s.dirty = true
	return nil
}

// Contains reports whether p is inside the outline, edges included.
func (s *shape) Contains(p Location) bool { return geom.Contains(s.verts, p) }

// Overlaps reports whether the outlines of s and o share a point.
func (s *shape) Overlaps(o Renderable) bool { return geom.Overlaps(s.verts, o.core().verts) }

// Distance returns the distance between the centers of s and o.
func (s *shape) Distance(o Renderable) float64 { return s.pivot().Distance(o.Center()) }

// DistanceTo returns the distance from the center to p.
func (s *shape) DistanceTo(p Location) float64 { return s.pivot().Distance(p) }

func (s *shape) attached() error {
	if s.state == removed {
		return ErrRemoved
	}
	if s.screen == nil {
		return ErrDetached
	}
	return nil
}

// Front moves the shape in front of every other shape on its screen.
func (s *shape) Front() error {
	if err := s.attached(); err != nil {
		return err
	}
	return s.screen.Front(s.owner)
}

// Back moves the shape behind every other shape on its screen.
func (s *shape) Back() error {
	if err := s.attached(); err != nil {
		return err
	}
	return s.screen.Back(s.owner)
}

// InFrontOf reports whether s is painted after o.
func (s *shape) InFrontOf(o Renderable) (bool, error) {
	if err := s.attached(); err != nil {
		return false, err
	}
	return s.screen.InFrontOf(s.owner, o)
}

// Remove unregisters the shape from its screen. Calling it again is a
// no-op.
func (s *shape) Remove() error {
	switch {
	case s.state == removed:
		return nil
	case s.screen == nil:
		s.state = removed
		return nil
	}
	return s.screen.Remove(s.owner)
}

// primitive describes the shape as a filled, optionally outlined polygon.
func (s *shape) primitive() canvas.Primitive {
	p := canvas.Primitive{
		Kind:     canvas.KindPolygon,
		Points:   slices.Clone(s.verts),
		Visible:  s.visible,
		Rotation: s.rot,
	}
	if s.fill {
		p.Fill = s.color.ImageColor()
	}
	if s.borderWidth > 0 {
		p.Stroke = s.border.ImageColor()
		p.StrokeWidth = s.borderWidth
	}
	return p
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func finitePoints(vs []Location) bool {
	for _, v := range vs {
		if !v.IsFinite() {
			return false
		}
	}
	return true
}
