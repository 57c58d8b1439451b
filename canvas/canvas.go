// Package canvas defines the narrow drawing and input surface that an easel
// Screen talks to.
//
// A Canvas is retained: the screen creates one shape per renderable, updates
// it when the renderable changes, and asks the canvas to present a frame on
// Flush. Backends in sub-packages render to memory (soft), record calls
// (recording), open a desktop window (ebitencanvas) or write to a Linux
// framebuffer (fbcanvas).
package canvas

import (
	"image"
	"image/color"

	"github.com/gogpu/easel/geom"
)

// Handle identifies a shape created on a canvas. Zero is never a valid
// handle.
type Handle uint64

// Kind selects how a Primitive is drawn.
type Kind uint8

const (
	KindPolygon Kind = iota // closed outline, optionally filled
	KindLine                // open two-point segment
	KindText                // text laid out in a rotated box
	KindImage               // raster image stretched over a rotated box
)

var kindNames = [...]string{
	KindPolygon: "polygon",
	KindLine:    "line",
	KindText:    "text",
	KindImage:   "image",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// TextStyle carries the content and style of a KindText primitive.
type TextStyle struct {
	Text          string
	Size          float64 // font size in pixels
	Bold          bool
	Italic        bool
	Underline     bool
	Strikethrough bool
	Align         Align
}

// Align places each line of a text box horizontally.
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

var alignNames = [...]string{AlignLeft: "left", AlignCenter: "center", AlignRight: "right"}

func (a Align) String() string {
	if int(a) < len(alignNames) {
		return alignNames[a]
	}
	return "unknown"
}

// Offset returns the x offset of a line of width line in a box of width
// box.
func (a Align) Offset(box, line float64) float64 {
	switch a {
	case AlignCenter:
		return (box - line) / 2
	case AlignRight:
		return box - line
	}
	return 0
}

// Primitive is the complete description of one shape.
//
// For KindPolygon Points is the closed outline. For KindLine it holds the
// two endpoints. For KindText and KindImage it holds the corners of the
// rotated box in the order top-left, top-right, bottom-right, bottom-left.
type Primitive struct {
	Kind        Kind
	Points      []geom.Point
	Fill        color.Color // nil means no fill
	Stroke      color.Color // nil means no outline
	StrokeWidth float64
	Dashes      []float64 // on/off lengths for KindLine; nil draws solid
	Visible     bool
	Rotation    float64 // degrees, clockwise
	Text        *TextStyle
	Image       image.Image
}

// Canvas is the drawing surface behind a Screen. Implementations are used
// from a single goroutine.
type Canvas interface {
	// Open prepares a surface of the given size.
	Open(width, height int, title string) error
	// CreateShape adds a shape on top of all others.
	CreateShape(p Primitive) (Handle, error)
	// UpdateShape replaces the description of an existing shape.
	UpdateShape(h Handle, p Primitive) error
	// DeleteShape removes a shape. Unknown handles are ignored.
	DeleteShape(h Handle) error
	// Restack sets the paint order, back to front.
	Restack(order []Handle) error
	// Flush presents the current state.
	Flush() error
	// PollEvents returns the input received since the previous call.
	PollEvents() []Event
	// Close releases the surface. Further calls are undefined.
	Close() error
}

// BackgroundSetter is implemented by canvases that paint a background
// color. A nil color means the backend default.
type BackgroundSetter interface {
	SetBackground(c color.Color) error
}

// GridSetter is implemented by canvases that can draw a grid overlay.
type GridSetter interface {
	SetGrid(g Grid) error
}

// Grid describes the overlay. Cell is the spacing in pixels.
type Grid struct {
	Enabled bool
	Cell    float64
	Color   color.Color
}

// TitleSetter is implemented by canvases with a visible title.
type TitleSetter interface {
	SetTitle(title string) error
}

// PictureSetter is implemented by canvases that paint a background
// picture. The picture is centered at its natural size over the
// background color and under every shape. A nil image removes it.
type PictureSetter interface {
	SetPicture(img image.Image) error
}

// Resizer is implemented by canvases whose size can change after Open.
type Resizer interface {
	Resize(width, height int) error
}
