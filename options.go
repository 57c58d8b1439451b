package easel

import (
	"github.com/gogpu/easel/canvas"
	"github.com/gogpu/easel/canvas/soft"
	"github.com/gogpu/easel/geom"
	"github.com/gogpu/easel/imageio"
)

// Option configures a Screen during creation.
//
//	scr, err := easel.NewScreen(
//	    easel.WithSize(640, 480),
//	    easel.WithTitle("pong"),
//	    easel.WithBackground(easel.Black),
//	)
type Option func(*screenOptions)

type screenOptions struct {
	width, height int
	title         string
	background    Color
	canvas        canvas.Canvas
	backend       string
	grid          float64
	gridColor     Color
	images        ImageStore
}

func defaultScreenOptions() screenOptions {
	return screenOptions{
		width:      800,
		height:     600,
		title:      "easel",
		background: White,
		gridColor:  ColorNone,
		images:     imageio.FileStore{},
	}
}

// WithSize sets the screen size in pixels. The default is 800x600.
func WithSize(width, height int) Option {
	return func(o *screenOptions) {
		o.width, o.height = width, height
	}
}

// WithTitle sets the window title.
func WithTitle(title string) Option {
	return func(o *screenOptions) {
		o.title = title
	}
}

// WithBackground sets the background color. The default is white.
func WithBackground(c Color) Option {
	return func(o *screenOptions) {
		o.background = c
	}
}

// WithCanvas draws on c instead of the in-memory software canvas.
func WithCanvas(c canvas.Canvas) Option {
	return func(o *screenOptions) {
		o.canvas = c
	}
}

// WithBackend selects a canvas registered with canvas.Register by name.
// WithCanvas takes precedence.
func WithBackend(name string) Option {
	return func(o *screenOptions) {
		o.backend = name
	}
}

// WithGrid enables the grid overlay with the given cell size.
func WithGrid(cell float64) Option {
	return func(o *screenOptions) {
		o.grid = cell
	}
}

// WithGridColor sets the grid line color. ColorNone leaves the choice to
// the canvas.
func WithGridColor(c Color) Option {
	return func(o *screenOptions) {
		o.gridColor = c
	}
}

// WithImageStore replaces the file-system image store used by NewImage and
// Image.Save.
func WithImageStore(s ImageStore) Option {
	return func(o *screenOptions) {
		o.images = s
	}
}

func (o *screenOptions) openCanvas() (canvas.Canvas, error) {
	if o.canvas != nil {
		return o.canvas, nil
	}
	if o.backend != "" {
		return canvas.New(o.backend)
	}
	return soft.New(), nil
}

// ShapeOption configures a renderable during creation. Options that do not
// apply to a variant are ignored by it.
//
//	r, err := scr.NewRectangle(10, 10, 50, 30,
//	    easel.WithColor(easel.Red),
//	    easel.WithBorder(easel.Black),
//	    easel.WithRotation(45),
//	)
type ShapeOption func(*shapeOptions)

type shapeOptions struct {
	color       Color
	border      Color
	borderWidth float64
	fill        bool
	visible     bool
	rotation    float64
	rotatable   bool

	// text
	size          float64
	bold          bool
	italic        bool
	underline     bool
	strikethrough bool
	align         Align

	// line
	thickness float64
	dashes    []float64

	// oval
	wedges int
}

func defaultShapeOptions() shapeOptions {
	return shapeOptions{
		color:       Black,
		border:      ColorNone,
		borderWidth: 1,
		fill:        true,
		visible:     true,
		rotatable:   true,
		size:        DefaultFontSize,
		thickness:   1,
	}
}

func buildShapeOptions(op string, opts []ShapeOption) (shapeOptions, error) {
	o := defaultShapeOptions()
	for _, opt := range opts {
		opt(&o)
	}
	switch {
	case !finite(o.borderWidth) || o.borderWidth < 0:
		return o, argError(op, "borderWidth", o.borderWidth, "must be a finite number >= 0")
	case !finite(o.rotation):
		return o, argError(op, "rotation", o.rotation, "must be finite")
	case !o.rotatable && geom.NormalizeAngle(o.rotation) != 0:
		return o, argError(op, "rotation", o.rotation, "must be 0 for a shape created with NotRotatable")
	case !finite(o.size) || o.size <= 0:
		return o, argError(op, "size", o.size, "must be a finite number > 0")
	case !finite(o.thickness) || o.thickness <= 0:
		return o, argError(op, "thickness", o.thickness, "must be a finite number > 0")
	case o.align > AlignRight:
		return o, argError(op, "align", o.align, "must be AlignLeft, AlignCenter or AlignRight")
	case o.wedges != 0 && o.wedges < MinWedges:
		return o, argError(op, "wedges", o.wedges, "must be >= 20")
	}
	return o, nil
}

// WithColor sets the fill color (the stroke color for lines, the glyph
// color for text). The default is black.
func WithColor(c Color) ShapeOption {
	return func(o *shapeOptions) { o.color = c }
}

// WithBorder sets the outline color. The default is ColorNone.
func WithBorder(c Color) ShapeOption {
	return func(o *shapeOptions) { o.border = c }
}

// WithBorderWidth sets the outline width in pixels. The default is 1.
func WithBorderWidth(w float64) ShapeOption {
	return func(o *shapeOptions) { o.borderWidth = w }
}

// WithFill controls whether the interior is painted. The default is true.
func WithFill(fill bool) ShapeOption {
	return func(o *shapeOptions) { o.fill = fill }
}

// WithVisible controls initial visibility. The default is true.
func WithVisible(visible bool) ShapeOption {
	return func(o *shapeOptions) { o.visible = visible }
}

// WithRotation sets the initial rotation in degrees.
func WithRotation(deg float64) ShapeOption {
	return func(o *shapeOptions) { o.rotation = deg }
}

// WithFontSize sets the text size in pixels.
func WithFontSize(px float64) ShapeOption {
	return func(o *shapeOptions) { o.size = px }
}

// WithBold selects the bold face.
func WithBold() ShapeOption { return func(o *shapeOptions) { o.bold = true } }

// WithItalic selects the italic face.
func WithItalic() ShapeOption { return func(o *shapeOptions) { o.italic = true } }

// WithUnderline underlines text.
func WithUnderline() ShapeOption { return func(o *shapeOptions) { o.underline = true } }

// WithStrikethrough strikes text through.
func WithStrikethrough() ShapeOption { return func(o *shapeOptions) { o.strikethrough = true } }

// WithAlign places the lines of multi-line text. The default is
// AlignLeft.
func WithAlign(a Align) ShapeOption { return func(o *shapeOptions) { o.align = a } }

// WithThickness sets a line's width in pixels.
func WithThickness(px float64) ShapeOption {
	return func(o *shapeOptions) { o.thickness = px }
}

// WithDashes sets a line's on/off dash pattern in pixels.
func WithDashes(pattern ...float64) ShapeOption {
	return func(o *shapeOptions) { o.dashes = pattern }
}

// WithWedges fixes the number of points approximating an oval.
func WithWedges(n int) ShapeOption {
	return func(o *shapeOptions) { o.wedges = n }
}

// NotRotatable creates a shape whose Rotate methods fail. It is meant for
// custom renderables whose outline function cannot be rotated sensibly.
func NotRotatable() ShapeOption {
	return func(o *shapeOptions) { o.rotatable = false }
}
