package main

import (
	"fmt"
	"time"

	"github.com/gogpu/easel"
)

type mover struct {
	r      easel.Renderable
	dx, dy float64
	spin   float64
}

// demo bounces a few shapes around the screen. Pressing on a shape brings
// it to the front and dragging moves it; a click without a drag recolors
// it. Arrow keys steer the arrow, p toggles its pen, space toggles the
// grid and escape quits.
type demo struct {
	frames int
	scr    *easel.Screen

	movers  []*mover
	arrow   *easel.Polygon
	trail   *easel.Line
	pen     *easel.Pen
	status  *easel.Text
	pair    *easel.Group
	dragged easel.Renderable
	last    easel.Location
	quit    bool
}

func (d *demo) Name() string { return "demo" }

func (d *demo) Start(scr *easel.Screen) error {
	d.scr = scr
	if err := scr.SetBackground(easel.MustColor(easel.ColorHex("#1e1e2e"))); err != nil {
		return err
	}

	sun, err := scr.NewOval(80, 80, 90, 90, easel.WithColor(easel.Yellow),
		easel.WithBorder(easel.Orange), easel.WithBorderWidth(4))
	if err != nil {
		return err
	}
	box, err := scr.NewRectangle(400, 120, 120, 70, easel.WithColor(easel.Blue),
		easel.WithBorder(easel.White), easel.WithBorderWidth(2))
	if err != nil {
		return err
	}
	hex, err := scr.NewRegularPolygon(6, 250, 300, 100, 100, easel.WithColor(easel.Green))
	if err != nil {
		return err
	}
	tri, err := scr.NewTriangleIn(520, 350, 90, 80, easel.WithColor(easel.Purple))
	if err != nil {
		return err
	}
	pill, err := scr.NewRoundedRectangle(120, 420, 140, 50, 20, easel.WithColor(easel.Red))
	if err != nil {
		return err
	}
	d.movers = []*mover{
		{r: sun, dx: 3, dy: 2},
		{r: box, dx: -2, dy: 3, spin: 2},
		{r: hex, dx: 2.5, dy: -1.5, spin: -3},
		{r: tri, dx: -3, dy: -2, spin: 4},
		{r: pill, dx: 1.5, dy: -2.5},
	}
	if d.pair, err = easel.NewGroup(box, pill); err != nil {
		return err
	}

	c := scr.Center()
	d.arrow, err = scr.NewPolygon([]easel.Location{
		easel.Loc(c.X, c.Y-20), easel.Loc(c.X+12, c.Y+15),
		easel.Loc(c.X, c.Y+8), easel.Loc(c.X-12, c.Y+15),
	}, easel.WithColor(easel.White))
	if err != nil {
		return err
	}
	d.trail, err = scr.NewLine(c, c, easel.WithColor(easel.Gray),
		easel.WithThickness(2), easel.WithDashes(6, 4))
	if err != nil {
		return err
	}
	d.pen, err = scr.NewPen(c.X, c.Y, easel.WithColor(easel.Orange))
	if err != nil {
		return err
	}
	d.status, err = scr.NewText("", 10, 10, easel.WithColor(easel.White), easel.WithFontSize(16))
	if err != nil {
		return err
	}
	return nil
}

func (d *demo) Run(scr *easel.Screen) error {
	for frame := 0; d.frames == 0 || frame < d.frames; frame++ {
		if d.quit {
			return nil
		}
		if err := d.step(scr, frame); err != nil {
			return err
		}
		if err := scr.Update(); err != nil {
			return err
		}
		if scr.Closed() {
			return nil
		}
		if err := scr.Sleep(16 * time.Millisecond); err != nil {
			return err
		}
	}
	return nil
}

// step advances the animation by one frame.
func (d *demo) step(scr *easel.Screen, frame int) error {
	w, h := float64(scr.Width()), float64(scr.Height())
	for _, m := range d.movers {
		if m.r == d.dragged {
			continue
		}
		b := m.r.Bounds()
		if b.Min.X+m.dx < 0 || b.Max.X+m.dx > w {
			m.dx = -m.dx
		}
		if b.Min.Y+m.dy < 0 || b.Max.Y+m.dy > h {
			m.dy = -m.dy
		}
		if err := m.r.Move(m.dx, m.dy); err != nil {
			return err
		}
		if m.spin != 0 {
			if err := m.r.Rotate(m.spin); err != nil {
				return err
			}
		}
	}

	hits := 0
	for i, a := range d.movers {
		hit := false
		for j, b := range d.movers {
			if i != j && a.r.Overlaps(b.r) {
				hit = true
				break
			}
		}
		border := easel.White
		if hit {
			border = easel.Red
			hits++
		}
		if a.r.Kind() != easel.KindOval {
			if err := a.r.SetBorder(border); err != nil {
				return err
			}
		}
	}

	tip := d.arrow.Center()
	if err := d.trail.SetPos2(tip); err != nil {
		return err
	}
	if err := d.pen.MoveTo(tip.X, tip.Y); err != nil {
		return err
	}
	under := len(scr.ObjectsAt(d.last))
	return d.status.SetText(fmt.Sprintf("frame %d  overlaps %d  under cursor %d", frame, hits, under))
}

func (d *demo) KeyDown(k easel.Key) error {
	switch {
	case k.Is("up"):
		return d.arrow.Forward(10)
	case k.Is("down"):
		return d.arrow.Backward(10)
	case k.Is("left"):
		return d.arrow.Rotate(-15)
	case k.Is("right"):
		return d.arrow.Rotate(15)
	case k.Is("space"):
		return d.scr.ToggleGrid()
	case k.Is("g"):
		return d.pair.SetColor(easel.RandomColor())
	case k.Is("escape"):
		d.quit = true
	}
	return nil
}

func (d *demo) KeyPress(k easel.Key) error {
	if k.Is("p") {
		return d.pen.Toggle()
	}
	return nil
}

func (d *demo) MouseClick(b easel.Button, at easel.Location) error {
	hits := d.scr.ObjectsAt(at)
	if len(hits) == 0 {
		return nil
	}
	return hits[0].SetColor(easel.RandomColor())
}

func (d *demo) MouseDown(b easel.Button, at easel.Location) error {
	d.last = at
	hits := d.scr.ObjectsAt(at)
	if len(hits) == 0 {
		return nil
	}
	d.dragged = hits[0]
	return d.dragged.Front()
}

func (d *demo) MouseDrag(b easel.Button, at easel.Location) error {
	defer func() { d.last = at }()
	if d.dragged == nil {
		return nil
	}
	return d.dragged.Move(at.X-d.last.X, at.Y-d.last.Y)
}

func (d *demo) MouseUp(b easel.Button, at easel.Location) error {
	d.dragged = nil
	return nil
}

func (d *demo) MouseMove(at easel.Location) error {
	d.last = at
	return nil
}
