package canvas

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gogpu/easel/geom"
)

// EventKind classifies input events. The numeric order is the order in
// which a Screen dispatches kinds within one update.
type EventKind uint8

const (
	KeyDown EventKind = iota
	KeyUp
	MouseDown
	MouseUp
	MouseDrag
	MouseMove
	// Quit reports that the user closed the window or the device went away.
	Quit
	// KeyPress and MouseClick complete a press: a key up after its key
	// down, a button up after its down with no drag between. A Screen
	// derives them; canvases never report them.
	KeyPress
	MouseClick
)

var eventKindNames = [...]string{
	KeyDown:    "keydown",
	KeyUp:      "keyup",
	MouseDown:  "mousedown",
	MouseUp:    "mouseup",
	MouseDrag:  "mousedrag",
	MouseMove:  "mousemove",
	Quit:       "quit",
	KeyPress:   "keypress",
	MouseClick: "mouseclick",
}

func (k EventKind) String() string {
	if int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return "unknown"
}

// Mouse buttons.
const (
	ButtonLeft   = 1
	ButtonMiddle = 2
	ButtonRight  = 3
)

// Event is one input occurrence. Key is set for key events, Button for
// mouse down/up/drag, Pos for mouse events.
type Event struct {
	Kind   EventKind
	Key    string
	Button int
	Pos    geom.Point
}

var keyAliases = map[string]string{
	"arrowup":      "up",
	"arrowdown":    "down",
	"arrowleft":    "left",
	"arrowright":   "right",
	"return":       "enter",
	"esc":          "escape",
	"shift_l":      "shift",
	"shift_r":      "shift",
	"shiftleft":    "shift",
	"shiftright":   "shift",
	"leftshift":    "shift",
	"rightshift":   "shift",
	"control_l":    "control",
	"control_r":    "control",
	"controlleft":  "control",
	"controlright": "control",
	"ctrl":         "control",
	"leftctrl":     "control",
	"rightctrl":    "control",
	"alt_l":        "alt",
	"alt_r":        "alt",
	"altleft":      "alt",
	"altright":     "alt",
	"leftalt":      "alt",
	"rightalt":     "alt",
	"backspace":    "backspace",
	"delete":       "delete",
	" ":            "space",
}

// NormalizeKey maps a backend key name to the form listeners receive:
// lower case, no "Key"/"Digit" prefixes, arrows as up/down/left/right and
// modifier sides folded together.
func NormalizeKey(name string) string {
	k := cases.Lower(language.Und).String(strings.TrimSpace(name))
	if name == " " {
		k = " "
	}
	for _, prefix := range []string{"key", "digit", "numpad"} {
		if len(k) == len(prefix)+1 && strings.HasPrefix(k, prefix) {
			k = k[len(prefix):]
		}
	}
	if alias, ok := keyAliases[k]; ok {
		return alias
	}
	return k
}
