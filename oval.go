package easel

import (
	"math"

	"github.com/gogpu/easel/geom"
)

// MinWedges is the smallest number of points an oval may use.
const MinWedges = 20

// maxAutoWedges caps the automatic point count for large ovals.
const maxAutoWedges = 120

// Oval is an ellipse inscribed in a box, approximated by a polygon of
// Wedges points.
type Oval struct {
	shape
	wedges int // 0 picks a count from the size
}

// NewOval creates the oval inscribed in the box with top-left (x, y).
func (scr *Screen) NewOval(x, y, w, h float64, opts ...ShapeOption) (*Oval, error) {
	const op = "NewOval"
	if err := scr.usable(); err != nil {
		return nil, err
	}
	if err := checkBox(op, x, y, w, h); err != nil {
		return nil, err
	}
	o, err := buildShapeOptions(op, opts)
	if err != nil {
		return nil, err
	}
	ov := &Oval{shape: newShape(KindOval, o), wedges: o.wedges}
	ov.owner = ov
	ov.initBox(x, y, w, h, ov.ellipse)
	if err := scr.register(ov); err != nil {
		return nil, err
	}
	return ov, nil
}

func (ov *Oval) ellipse(x, y, w, h float64) []geom.Point {
	return geom.EllipseVertices(x, y, w, h, ov.Wedges())
}

// Wedges returns the number of points in the outline.
func (ov *Oval) Wedges() int {
	if ov.wedges != 0 {
		return ov.wedges
	}
	r := (ov.w + ov.h) / 4
	return min(max(MinWedges, int(math.Ceil(4*math.Sqrt(r)))), maxAutoWedges)
}

// SetWedges fixes the number of outline points. n must be at least
// MinWedges.
func (ov *Oval) SetWedges(n int) error {
	if err := ov.mutable(); err != nil {
		return err
	}
	if n < MinWedges {
		return argError("SetWedges", "n", n, "must be >= 20")
	}
	ov.wedges = n
	ov.recompute()
	return nil
}

// Slices splits the oval into one triangle per wedge (outline point,
// center, next outline point) and adds them to the screen with the oval's
// style. The oval itself is left in place.
func (ov *Oval) Slices() ([]*CustomPolygon, error) {
	if err := ov.attached(); err != nil {
		return nil, err
	}
	c := ov.pivot()
	n := len(ov.verts)
	out := make([]*CustomPolygon, 0, n)
	for i := range n {
		p, err := ov.screen.NewCustomPolygon(
			[]Location{ov.verts[i], c, ov.verts[(i+1)%n]},
			WithColor(ov.color),
			WithBorder(ov.border),
			WithBorderWidth(ov.borderWidth),
			WithFill(ov.fill),
			WithVisible(ov.visible),
		)
		if err != nil {
			return out, err
		}
		out = append(out, p)
	}
	return out, nil
}

// Clone returns a detached copy.
func (ov *Oval) Clone() *Oval {
	c := &Oval{shape: ov.clone(), wedges: ov.wedges}
	c.owner = c
	c.outline = c.ellipse
	return c
}
