// Package soft implements canvas.Canvas in memory.
//
// Shapes are rasterized with golang.org/x/image/vector on Flush into an
// *image.RGBA that callers read with Frame or write out with SavePNG. Text
// is drawn with freetype using the Go fonts; images are resampled with
// golang.org/x/image/draw. Input never arrives on its own: tests and
// scripted demos queue it with Inject.
//
// The package registers itself as the "soft" backend.
package soft

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"slices"

	"golang.org/x/image/vector"

	"github.com/gogpu/easel/canvas"
	"github.com/gogpu/easel/imageio"
)

// DefaultBackground is painted when no background color is set.
var DefaultBackground color.Color = color.White

// DefaultGridColor is used for a grid without its own color.
var DefaultGridColor color.Color = color.NRGBA{R: 0xC0, G: 0xC0, B: 0xC0, A: 0xFF}

func init() {
	canvas.Register("soft", func() canvas.Canvas { return New() })
}

// Canvas is an in-memory canvas. It is not safe for concurrent use.
type Canvas struct {
	width, height int
	title         string
	background    color.Color
	picture       image.Image
	grid          canvas.Grid

	shapes map[canvas.Handle]canvas.Primitive
	order  []canvas.Handle
	next   canvas.Handle

	frame   *image.RGBA
	frames  int
	z       *vector.Rasterizer
	text    *textRenderer
	pending []canvas.Event
	log     *slog.Logger
	open    bool
}

// New returns an unopened canvas.
func New() *Canvas {
	return &Canvas{
		shapes: make(map[canvas.Handle]canvas.Primitive),
		text:   newTextRenderer(),
		log:    slog.New(slog.DiscardHandler),
	}
}

// SetLogger sets the logger used for diagnostics.
func (c *Canvas) SetLogger(l *slog.Logger) {
	if l != nil {
		c.log = l
	}
}

// Open implements canvas.Canvas.
func (c *Canvas) Open(width, height int, title string) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("soft: invalid size %dx%d", width, height)
	}
	c.width, c.height, c.title = width, height, title
	c.frame = image.NewRGBA(image.Rect(0, 0, width, height))
	c.z = vector.NewRasterizer(width, height)
	c.open = true
	return nil
}

// CreateShape implements canvas.Canvas.
func (c *Canvas) CreateShape(p canvas.Primitive) (canvas.Handle, error) {
	c.next++
	c.shapes[c.next] = p
	c.order = append(c.order, c.next)
	return c.next, nil
}

// UpdateShape implements canvas.Canvas.
func (c *Canvas) UpdateShape(h canvas.Handle, p canvas.Primitive) error {
	if _, ok := c.shapes[h]; !ok {
		return fmt.Errorf("soft: unknown shape %d", h)
	}
	c.shapes[h] = p
	return nil
}

// DeleteShape implements canvas.Canvas.
func (c *Canvas) DeleteShape(h canvas.Handle) error {
	delete(c.shapes, h)
	c.order = slices.DeleteFunc(c.order, func(x canvas.Handle) bool { return x == h })
	return nil
}

// Restack implements canvas.Canvas.
func (c *Canvas) Restack(order []canvas.Handle) error {
	next := make([]canvas.Handle, 0, len(order))
	for _, h := range order {
		if _, ok := c.shapes[h]; ok {
			next = append(next, h)
		}
	}
	c.order = next
	return nil
}

// Flush implements canvas.Canvas by rendering the current state into the
// frame.
func (c *Canvas) Flush() error {
	if !c.open {
		return fmt.Errorf("soft: flush before open")
	}
	c.Render(c.frame)
	c.frames++
	return nil
}

// PollEvents implements canvas.Canvas.
func (c *Canvas) PollEvents() []canvas.Event {
	ev := c.pending
	c.pending = nil
	return ev
}

// Close implements canvas.Canvas.
func (c *Canvas) Close() error {
	c.open = false
	c.shapes = make(map[canvas.Handle]canvas.Primitive)
	c.order = nil
	return nil
}

// SetBackground implements canvas.BackgroundSetter.
func (c *Canvas) SetBackground(col color.Color) error {
	c.background = col
	return nil
}

// SetPicture implements canvas.PictureSetter.
func (c *Canvas) SetPicture(img image.Image) error {
	c.picture = img
	return nil
}

// SetGrid implements canvas.GridSetter.
func (c *Canvas) SetGrid(g canvas.Grid) error {
	c.grid = g
	return nil
}

// SetTitle implements canvas.TitleSetter.
func (c *Canvas) SetTitle(title string) error {
	c.title = title
	return nil
}

// Resize implements canvas.Resizer. The frame is reallocated and redrawn
// on the next Flush.
func (c *Canvas) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("soft: invalid size %dx%d", width, height)
	}
	c.width, c.height = width, height
	c.frame = image.NewRGBA(image.Rect(0, 0, width, height))
	c.z = vector.NewRasterizer(width, height)
	return nil
}

// Inject queues input events for the next PollEvents.
func (c *Canvas) Inject(events ...canvas.Event) {
	c.pending = append(c.pending, events...)
}

// Title returns the current title.
func (c *Canvas) Title() string { return c.title }

// Size returns the canvas size in pixels.
func (c *Canvas) Size() (width, height int) { return c.width, c.height }

// Frame returns the most recently flushed frame. The image is reused by
// later flushes.
func (c *Canvas) Frame() *image.RGBA { return c.frame }

// Frames returns how many times Flush succeeded.
func (c *Canvas) Frames() int { return c.frames }

// SavePNG writes the last flushed frame to path.
func (c *Canvas) SavePNG(path string) error {
	if c.frame == nil {
		return fmt.Errorf("soft: no frame to save")
	}
	if err := imageio.Save(c.frame, path); err != nil {
		return err
	}
	c.log.Debug("soft: frame saved", "path", path, "frame", c.frames)
	return nil
}

// Render paints background, shapes back to front, and the grid into dst.
// dst must be at least as large as the canvas.
func (c *Canvas) Render(dst *image.RGBA) {
	bg := c.background
	if bg == nil {
		bg = DefaultBackground
	}
	fillRect(dst, dst.Bounds(), bg)
	if c.picture != nil {
		c.drawPicture(dst)
	}
	for _, h := range c.order {
		p := c.shapes[h]
		if !p.Visible {
			continue
		}
		if err := c.draw(dst, p); err != nil {
			c.log.Warn("soft: shape not drawn", "handle", h, "kind", p.Kind, "err", err)
		}
	}
	if c.grid.Enabled && c.grid.Cell > 0 {
		c.drawGrid(dst)
	}
}
