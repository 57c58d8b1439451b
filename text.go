package easel

import (
	"slices"
	"strings"

	"github.com/gogpu/easel/canvas"
	"github.com/gogpu/easel/geom"
	"github.com/gogpu/easel/internal/fonts"
)

// DefaultFontSize is the text size used when none is given.
const DefaultFontSize = 16

// Align places each line of a Text within its box.
type Align = canvas.Align

// Text alignments.
const (
	AlignLeft   = canvas.AlignLeft
	AlignCenter = canvas.AlignCenter
	AlignRight  = canvas.AlignRight
)

// ParseAlign accepts "left", "center" or "right", in any case.
func ParseAlign(s string) (Align, error) {
	for _, a := range []Align{AlignLeft, AlignCenter, AlignRight} {
		if strings.EqualFold(strings.TrimSpace(s), a.String()) {
			return a, nil
		}
	}
	return AlignLeft, argError("ParseAlign", "align", s, "must be left, center or right")
}

// Text is a string drawn in the Go font family. Its box is sized by the
// font metrics, so width and height follow the content and cannot be set
// directly. The location is the top-left corner of the box.
type Text struct {
	shape
	style canvas.TextStyle
}

// NewText creates text with its top-left corner at (x, y). Lines are
// separated by '\n'.
func (scr *Screen) NewText(text string, x, y float64, opts ...ShapeOption) (*Text, error) {
	const op = "NewText"
	if err := scr.usable(); err != nil {
		return nil, err
	}
	if !finite(x) || !finite(y) {
		return nil, argError(op, "location", geom.Pt(x, y), "must be finite")
	}
	o, err := buildShapeOptions(op, opts)
	if err != nil {
		return nil, err
	}
	style := canvas.TextStyle{
		Text:          text,
		Size:          o.size,
		Bold:          o.bold,
		Italic:        o.italic,
		Underline:     o.underline,
		Strikethrough: o.strikethrough,
		Align:         o.align,
	}
	w, h, err := measure(style)
	if err != nil {
		return nil, err
	}
	t := &Text{shape: newShape(KindText, o), style: style}
	t.owner = t
	t.resizable = false
	t.initBox(x, y, w, h, geom.RectangleVertices)
	if err := scr.register(t); err != nil {
		return nil, err
	}
	return t, nil
}

func measure(s canvas.TextStyle) (w, h float64, err error) {
	return fonts.Measure(s.Text, s.Size, s.Bold, s.Italic)
}

// restyle applies a new style and re-measures the box, keeping the
// top-left corner.
func (t *Text) restyle(next canvas.TextStyle) error {
	if err := t.mutable(); err != nil {
		return err
	}
	w, h, err := measure(next)
	if err != nil {
		return err
	}
	t.style = next
	t.w, t.h = w, h
	t.recompute()
	return nil
}

// Text returns the content.
func (t *Text) Text() string { return t.style.Text }

// SetText replaces the content.
func (t *Text) SetText(s string) error {
	next := t.style
	next.Text = s
	return t.restyle(next)
}

// Size returns the font size in pixels.
func (t *Text) Size() float64 { return t.style.Size }

// SetSize sets the font size in pixels.
func (t *Text) SetSize(px float64) error {
	if !finite(px) || px <= 0 {
		return argError("SetSize", "size", px, "must be a finite number > 0")
	}
	next := t.style
	next.Size = px
	return t.restyle(next)
}

// Bold reports whether the bold face is used.
func (t *Text) Bold() bool { return t.style.Bold }

// SetBold selects the bold face.
func (t *Text) SetBold(b bool) error {
	next := t.style
	next.Bold = b
	return t.restyle(next)
}

// Italic reports whether the italic face is used.
func (t *Text) Italic() bool { return t.style.Italic }

// SetItalic selects the italic face.
func (t *Text) SetItalic(b bool) error {
	next := t.style
	next.Italic = b
	return t.restyle(next)
}

// Underline reports whether the text is underlined.
func (t *Text) Underline() bool { return t.style.Underline }

// SetUnderline underlines the text.
func (t *Text) SetUnderline(b bool) error {
	next := t.style
	next.Underline = b
	return t.restyle(next)
}

// Strikethrough reports whether the text is struck through.
func (t *Text) Strikethrough() bool { return t.style.Strikethrough }

// SetStrikethrough strikes the text through.
func (t *Text) SetStrikethrough(b bool) error {
	next := t.style
	next.Strikethrough = b
	return t.restyle(next)
}

// Align returns how lines are placed in the box.
func (t *Text) Align() Align { return t.style.Align }

// SetAlign places each line at the left, center or right of the box, which
// is as wide as the longest line.
func (t *Text) SetAlign(a Align) error {
	if a > AlignRight {
		return argError("SetAlign", "align", a, "must be AlignLeft, AlignCenter or AlignRight")
	}
	next := t.style
	next.Align = a
	return t.restyle(next)
}

func (t *Text) primitive() canvas.Primitive {
	style := t.style
	p := canvas.Primitive{
		Kind:     canvas.KindText,
		Points:   slices.Clone(t.verts),
		Fill:     t.color.ImageColor(),
		Visible:  t.visible,
		Rotation: t.rot,
		Text:     &style,
	}
	if t.borderWidth > 0 {
		p.Stroke = t.border.ImageColor()
		p.StrokeWidth = t.borderWidth
	}
	return p
}

// Clone returns a detached copy.
func (t *Text) Clone() *Text {
	c := &Text{shape: t.clone(), style: t.style}
	c.owner = c
	return c
}
