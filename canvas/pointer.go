package canvas

import "github.com/gogpu/easel/geom"

// Pointer turns raw mouse state into events. Canvases that only see
// button transitions and positions feed it and queue what it returns.
//
// Motion with a button held is reported as MouseDrag for the button
// pressed first; otherwise as MouseMove. Motion to the current position
// reports nothing.
type Pointer struct {
	pos     geom.Point
	known   bool
	pressed []int
}

// Pos returns the last known position.
func (p *Pointer) Pos() geom.Point { return p.pos }

// Held reports whether button is down.
func (p *Pointer) Held(button int) bool {
	for _, b := range p.pressed {
		if b == button {
			return true
		}
	}
	return false
}

// Move records a new position.
func (p *Pointer) Move(to geom.Point) []Event {
	if p.known && to == p.pos {
		return nil
	}
	p.pos, p.known = to, true
	if len(p.pressed) > 0 {
		return []Event{{Kind: MouseDrag, Button: p.pressed[0], Pos: to}}
	}
	return []Event{{Kind: MouseMove, Pos: to}}
}

// Press records button going down at the current position.
func (p *Pointer) Press(button int) []Event {
	if p.Held(button) {
		return nil
	}
	p.pressed = append(p.pressed, button)
	return []Event{{Kind: MouseDown, Button: button, Pos: p.pos}}
}

// Release records button going up at the current position.
func (p *Pointer) Release(button int) []Event {
	for i, b := range p.pressed {
		if b == button {
			p.pressed = append(p.pressed[:i], p.pressed[i+1:]...)
			return []Event{{Kind: MouseUp, Button: button, Pos: p.pos}}
		}
	}
	return nil
}
