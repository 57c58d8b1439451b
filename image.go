package easel

import (
	"fmt"
	"image"
	"math"
	"slices"

	"github.com/gogpu/easel/canvas"
	"github.com/gogpu/easel/geom"
	"github.com/gogpu/easel/imageio"
)

// ImageStore loads and saves image files. The default store reads the
// local file system through package imageio.
type ImageStore interface {
	Load(path string) (image.Image, error)
	Save(img image.Image, path string) error
}

// FrameStore is an ImageStore that can also decode every frame of an
// animated file. NewImage prefers it when the screen's store implements
// it.
type FrameStore interface {
	ImageStore
	LoadFrames(path string) ([]image.Image, error)
}

// Flip axes for Image.Flip.
const (
	FlipHorizontal = imageio.Horizontal
	FlipVertical   = imageio.Vertical
)

// Image is a raster picture stretched over a box. It starts at its
// natural size and can be resized and rotated like a Rectangle.
//
// An image may hold several frames, such as the frames of an animated
// GIF. One frame is shown at a time; the box is sized by the first.
type Image struct {
	shape
	frames []image.Image
	frame  int
	pixels image.Image // frames[frame]
}

// NewImage loads the file at path through the screen's image store and
// places it with its top-left corner at (x, y). Every frame of an
// animated file is loaded when the store is a FrameStore.
func (scr *Screen) NewImage(path string, x, y float64, opts ...ShapeOption) (*Image, error) {
	if err := scr.usable(); err != nil {
		return nil, err
	}
	if fs, ok := scr.images.(FrameStore); ok {
		frames, err := fs.LoadFrames(path)
		if err != nil {
			return nil, err
		}
		return scr.NewImageFrames(frames, x, y, opts...)
	}
	img, err := scr.images.Load(path)
	if err != nil {
		return nil, err
	}
	return scr.NewImageFrom(img, x, y, opts...)
}

// NewImageFrom places an in-memory image with its top-left corner at
// (x, y).
func (scr *Screen) NewImageFrom(img image.Image, x, y float64, opts ...ShapeOption) (*Image, error) {
	return scr.NewImageFrames([]image.Image{img}, x, y, opts...)
}

// NewImageFrames places an in-memory animation with its top-left corner
// at (x, y), showing the first frame.
func (scr *Screen) NewImageFrames(frames []image.Image, x, y float64, opts ...ShapeOption) (*Image, error) {
	const op = "NewImage"
	if err := scr.usable(); err != nil {
		return nil, err
	}
	if len(frames) == 0 {
		return nil, argError(op, "frames", 0, "must hold at least one image")
	}
	rgba := make([]image.Image, len(frames))
	for i, f := range frames {
		if f == nil {
			return nil, argError(op, "image", nil, "must not be nil")
		}
		rgba[i] = imageio.RGBA(f)
	}
	b := rgba[0].Bounds()
	if err := checkBox(op, x, y, float64(b.Dx()), float64(b.Dy())); err != nil {
		return nil, err
	}
	o, err := buildShapeOptions(op, opts)
	if err != nil {
		return nil, err
	}
	im := &Image{shape: newShape(KindImage, o), frames: rgba, pixels: rgba[0]}
	im.owner = im
	im.initBox(x, y, float64(b.Dx()), float64(b.Dy()), geom.RectangleVertices)
	if err := scr.register(im); err != nil {
		return nil, err
	}
	return im, nil
}

// Pixels returns the shown frame at its natural size.
func (im *Image) Pixels() image.Image { return im.pixels }

// Frames returns the number of frames, 1 for a still image.
func (im *Image) Frames() int { return len(im.frames) }

// Frame returns the index of the shown frame.
func (im *Image) Frame() int { return im.frame }

// SetFrame shows frame i.
func (im *Image) SetFrame(i int) error {
	if err := im.mutable(); err != nil {
		return err
	}
	if i < 0 || i >= len(im.frames) {
		return argError("SetFrame", "frame", i, fmt.Sprintf("must be in [0, %d)", len(im.frames)))
	}
	if i != im.frame {
		im.frame = i
		im.pixels = im.frames[i]
		im.dirty = true
	}
	return nil
}

// NextFrame advances to the next frame, wrapping to the first after the
// last.
func (im *Image) NextFrame() error {
	return im.SetFrame((im.frame + 1) % len(im.frames))
}

// Flip mirrors every frame about the given axis.
func (im *Image) Flip(axis imageio.Axis) error {
	if err := im.mutable(); err != nil {
		return err
	}
	flipped := make([]image.Image, len(im.frames))
	for i, f := range im.frames {
		flipped[i] = imageio.Flip(f, axis)
	}
	im.frames = flipped
	im.pixels = flipped[im.frame]
	im.dirty = true
	return nil
}

// Save writes the shown frame at its current (unrotated) size through the
// screen's image store.
func (im *Image) Save(path string) error {
	if err := im.attached(); err != nil {
		return err
	}
	w, h := int(math.Round(im.w)), int(math.Round(im.h))
	out := im.pixels
	if b := out.Bounds(); (b.Dx() != w || b.Dy() != h) && w > 0 && h > 0 {
		out = imageio.Resize(out, w, h)
	}
	return im.screen.images.Save(out, path)
}

func (im *Image) primitive() canvas.Primitive {
	p := canvas.Primitive{
		Kind:     canvas.KindImage,
		Points:   slices.Clone(im.verts),
		Visible:  im.visible,
		Rotation: im.rot,
		Image:    im.pixels,
	}
	if im.borderWidth > 0 {
		p.Stroke = im.border.ImageColor()
		p.StrokeWidth = im.borderWidth
	}
	return p
}

// Clone returns a detached copy sharing the pixels.
func (im *Image) Clone() *Image {
	c := &Image{shape: im.clone(), frames: slices.Clone(im.frames), frame: im.frame, pixels: im.pixels}
	c.owner = c
	return c
}
