package easel

import (
	"errors"
	"slices"

	"github.com/gogpu/easel/geom"
)

// Group moves, styles and removes several renderables together. Members
// stay individually registered with their screen; the group only holds
// references.
type Group struct {
	members []Renderable
}

// NewGroup returns a group of rs.
func NewGroup(rs ...Renderable) (*Group, error) {
	g := &Group{}
	for _, r := range rs {
		if err := g.Add(r); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Add appends r. Adding a member twice is a no-op.
func (g *Group) Add(r Renderable) error {
	if r == nil {
		return argError("Group.Add", "renderable", nil, "must not be nil")
	}
	if g.index(r) >= 0 {
		return nil
	}
	g.members = append(g.members, r)
	return nil
}

// Drop takes r out of the group without removing it from its screen.
// It reports whether r was a member.
func (g *Group) Drop(r Renderable) bool {
	i := g.index(r)
	if i < 0 {
		return false
	}
	g.members = slices.Delete(g.members, i, i+1)
	return true
}

func (g *Group) index(r Renderable) int {
	s := r.core()
	return slices.IndexFunc(g.members, func(m Renderable) bool { return m.core() == s })
}

// Members returns the members in insertion order.
func (g *Group) Members() []Renderable { return slices.Clone(g.members) }

// Len returns the number of members.
func (g *Group) Len() int { return len(g.members) }

// Bounds returns the box around every member's outline.
func (g *Group) Bounds() geom.Rect {
	if len(g.members) == 0 {
		return geom.Rect{}
	}
	b := g.members[0].Bounds()
	for _, m := range g.members[1:] {
		b = b.Union(m.Bounds())
	}
	return b
}

// Location returns the top-left corner of Bounds.
func (g *Group) Location() Location { return g.Bounds().Min }

// each applies fn to every member. Members are checked first so that a
// removed member leaves the whole group unchanged.
func (g *Group) each(fn func(Renderable) error) error {
	for _, m := range g.members {
		if err := m.core().mutable(); err != nil {
			return err
		}
	}
	var errs []error
	for _, m := range g.members {
		errs = append(errs, fn(m))
	}
	return errors.Join(errs...)
}

// Move translates every member by (dx, dy).
func (g *Group) Move(dx, dy float64) error {
	if !finite(dx) || !finite(dy) {
		return argError("Group.Move", "delta", geom.Pt(dx, dy), "must be finite")
	}
	return g.each(func(r Renderable) error { return r.Move(dx, dy) })
}

// MoveTo translates the group so that Location becomes (x, y).
func (g *Group) MoveTo(x, y float64) error {
	if !finite(x) || !finite(y) {
		return argError("Group.MoveTo", "location", geom.Pt(x, y), "must be finite")
	}
	at := g.Location()
	return g.Move(x-at.X, y-at.Y)
}

// SetColor recolors every member.
func (g *Group) SetColor(c Color) error {
	return g.each(func(r Renderable) error { return r.SetColor(c) })
}

// SetVisible shows or hides every member.
func (g *Group) SetVisible(visible bool) error {
	return g.each(func(r Renderable) error { return r.SetVisible(visible) })
}

// Front brings the members to the front, keeping their relative order.
func (g *Group) Front() error {
	return g.each(func(r Renderable) error { return r.Front() })
}

// Back sends the members to the back, keeping their relative order.
func (g *Group) Back() error {
	for i := len(g.members) - 1; i >= 0; i-- {
		if err := g.members[i].Back(); err != nil {
			return err
		}
	}
	return nil
}

// Remove removes every member from its screen and empties the group.
func (g *Group) Remove() error {
	var errs []error
	for _, m := range g.members {
		errs = append(errs, m.Remove())
	}
	g.members = nil
	return errors.Join(errs...)
}

// Contains reports whether any member contains p.
func (g *Group) Contains(p Location) bool {
	return slices.ContainsFunc(g.members, func(m Renderable) bool { return m.Contains(p) })
}

// Overlaps reports whether any member overlaps o.
func (g *Group) Overlaps(o Renderable) bool {
	s := o.core()
	return slices.ContainsFunc(g.members, func(m Renderable) bool {
		return m.core() != s && m.Overlaps(o)
	})
}
