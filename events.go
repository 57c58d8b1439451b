package easel

import (
	"fmt"

	"github.com/gogpu/easel/canvas"
)

// EventKind classifies input events.
type EventKind = canvas.EventKind

// Event kinds. Update dispatches them in this order, except that a
// KeyPress directly follows the KeyUp completing it and a MouseClick the
// MouseUp completing it.
const (
	KeyDown   = canvas.KeyDown
	KeyUp     = canvas.KeyUp
	MouseDown = canvas.MouseDown
	MouseUp   = canvas.MouseUp
	MouseDrag = canvas.MouseDrag
	MouseMove = canvas.MouseMove

	// KeyPress fires when a key that went down is released.
	KeyPress = canvas.KeyPress
	// MouseClick fires when a button is released without a drag since it
	// went down.
	MouseClick = canvas.MouseClick
)

// Key is a normalized key name such as "a", "7", "space", "up" or "shift".
type Key string

// Is reports whether k names the same key as name, ignoring case and
// backend spelling ("Up", "ArrowUp" and "up" are the same key).
func (k Key) Is(name string) bool { return string(k) == canvas.NormalizeKey(name) }

// Button is a mouse button.
type Button int

// Mouse buttons.
const (
	ButtonLeft   Button = canvas.ButtonLeft
	ButtonMiddle Button = canvas.ButtonMiddle
	ButtonRight  Button = canvas.ButtonRight
)

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	}
	return fmt.Sprintf("button%d", int(b))
}

// Event is one input occurrence delivered to listeners.
type Event struct {
	Kind     EventKind
	Key      Key      // key events
	Button   Button   // mouse down, up, drag and click
	Location Location // mouse events
}

// Listener handles an event. A non-nil error stops the current Update and
// is returned from it.
type Listener func(Event) error

func fromCanvas(e canvas.Event) Event {
	return Event{
		Kind:     e.Kind,
		Key:      Key(canvas.NormalizeKey(e.Key)),
		Button:   Button(e.Button),
		Location: e.Pos,
	}
}

// Listen registers l for events of kind. Listeners run in registration
// order.
func (scr *Screen) Listen(kind EventKind, l Listener) error {
	if err := scr.usable(); err != nil {
		return err
	}
	if kind > MouseMove && kind != KeyPress && kind != MouseClick {
		return argError("Listen", "kind", kind, "must be an input event kind")
	}
	if l == nil {
		return argError("Listen", "listener", nil, "must not be nil")
	}
	scr.listeners[kind] = append(scr.listeners[kind], l)
	return nil
}

// ClearListeners removes every listener.
func (scr *Screen) ClearListeners() {
	clear(scr.listeners)
}

// OnKeyDown registers fn for key presses.
func (scr *Screen) OnKeyDown(fn func(Key) error) error {
	return scr.Listen(KeyDown, keyListener(fn))
}

// OnKeyUp registers fn for key releases.
func (scr *Screen) OnKeyUp(fn func(Key) error) error {
	return scr.Listen(KeyUp, keyListener(fn))
}

// OnKeyPress registers fn for completed key presses.
func (scr *Screen) OnKeyPress(fn func(Key) error) error {
	return scr.Listen(KeyPress, keyListener(fn))
}

// OnMouseClick registers fn for clicks: a press and release of the same
// button with no drag between.
func (scr *Screen) OnMouseClick(fn func(Button, Location) error) error {
	return scr.Listen(MouseClick, buttonListener(fn))
}

// OnMouseDown registers fn for button presses.
func (scr *Screen) OnMouseDown(fn func(Button, Location) error) error {
	return scr.Listen(MouseDown, buttonListener(fn))
}

// OnMouseUp registers fn for button releases.
func (scr *Screen) OnMouseUp(fn func(Button, Location) error) error {
	return scr.Listen(MouseUp, buttonListener(fn))
}

// OnMouseDrag registers fn for motion with a button held.
func (scr *Screen) OnMouseDrag(fn func(Button, Location) error) error {
	return scr.Listen(MouseDrag, buttonListener(fn))
}

// OnMouseMove registers fn for motion without a button held.
func (scr *Screen) OnMouseMove(fn func(Location) error) error {
	if fn == nil {
		return scr.Listen(MouseMove, nil)
	}
	return scr.Listen(MouseMove, func(e Event) error { return fn(e.Location) })
}

func keyListener(fn func(Key) error) Listener {
	if fn == nil {
		return nil
	}
	return func(e Event) error { return fn(e.Key) }
}

func buttonListener(fn func(Button, Location) error) Listener {
	if fn == nil {
		return nil
	}
	return func(e Event) error { return fn(e.Button, e.Location) }
}

// derive inserts a KeyPress after each KeyUp whose key went down before,
// and a MouseClick after each MouseUp whose button went down with no drag
// since. It follows arrival order; the state carries over between frames.
func (scr *Screen) derive(in []canvas.Event) []canvas.Event {
	out := make([]canvas.Event, 0, len(in))
	for _, e := range in {
		if e.Kind == canvas.KeyPress || e.Kind == canvas.MouseClick {
			continue
		}
		out = append(out, e)
		switch e.Kind {
		case canvas.KeyDown:
			scr.keysDown[canvas.NormalizeKey(e.Key)] = true
		case canvas.KeyUp:
			k := canvas.NormalizeKey(e.Key)
			if scr.keysDown[k] {
				delete(scr.keysDown, k)
				out = append(out, canvas.Event{Kind: canvas.KeyPress, Key: e.Key})
			}
		case canvas.MouseDown:
			scr.clicks[e.Button] = true
		case canvas.MouseDrag:
			if _, ok := scr.clicks[e.Button]; ok {
				scr.clicks[e.Button] = false
			}
		case canvas.MouseUp:
			if scr.clicks[e.Button] {
				out = append(out, canvas.Event{Kind: canvas.MouseClick, Button: e.Button, Pos: e.Pos})
			}
			delete(scr.clicks, e.Button)
		}
	}
	return out
}

// dispatchRank orders event kinds within one Update. Derived kinds share
// the rank of the event completing them.
func dispatchRank(k EventKind) int {
	switch k {
	case canvas.KeyPress:
		return int(canvas.KeyUp)
	case canvas.MouseClick:
		return int(canvas.MouseUp)
	}
	return int(k)
}
