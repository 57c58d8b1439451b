// Package imageio loads, saves and transforms raster images for easel.
//
// Decoding covers PNG, JPEG, GIF, BMP, TIFF and WebP; animated GIFs can be
// decoded frame by frame. Encoding picks the format from the file
// extension. Flip and Resize use bild.
package imageio

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/transform"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register WebP decoder
)

// ErrUnknownFormat is returned when a file extension has no encoder.
var ErrUnknownFormat = errors.New("imageio: unknown image format")

// Axis selects the mirror line for Flip.
type Axis uint8

const (
	Horizontal Axis = iota // mirror left-right
	Vertical               // mirror top-bottom
)

// Load decodes the image file at path.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imageio: %w", err)
	}
	defer f.Close()
	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode %s: %w", path, err)
	}
	return img, nil
}

// Decode reads an image in any registered format.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	return img, err
}

// LoadFrames decodes every frame of the image file at path. Animated GIFs
// yield one fully composed frame per GIF frame; other files yield one.
func LoadFrames(path string) ([]image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imageio: %w", err)
	}
	defer f.Close()
	frames, err := DecodeFrames(f)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode %s: %w", path, err)
	}
	return frames, nil
}

// DecodeFrames reads the frames of an image in any registered format.
func DecodeFrames(r io.Reader) ([]image.Image, error) {
	br := bufio.NewReader(r)
	if magic, _ := br.Peek(4); !bytes.Equal(magic, []byte("GIF8")) {
		img, err := Decode(br)
		if err != nil {
			return nil, err
		}
		return []image.Image{img}, nil
	}
	g, err := gif.DecodeAll(br)
	if err != nil {
		return nil, err
	}
	return composeGIF(g), nil
}

// composeGIF paints each GIF frame over the frames before it, honoring the
// disposal methods, so every result stands alone.
func composeGIF(g *gif.GIF) []image.Image {
	bounds := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	if bounds.Empty() && len(g.Image) > 0 {
		bounds = image.Rect(0, 0, g.Image[0].Bounds().Max.X, g.Image[0].Bounds().Max.Y)
	}
	acc := image.NewRGBA(bounds)
	out := make([]image.Image, 0, len(g.Image))
	for i, p := range g.Image {
		var disposal byte
		if i < len(g.Disposal) {
			disposal = g.Disposal[i]
		}
		var prev *image.RGBA
		if disposal == gif.DisposalPrevious {
			prev = clone.AsRGBA(acc)
		}
		draw.Draw(acc, p.Bounds(), p, p.Bounds().Min, draw.Over)
		out = append(out, clone.AsRGBA(acc))
		switch disposal {
		case gif.DisposalBackground:
			draw.Draw(acc, p.Bounds(), image.Transparent, image.Point{}, draw.Src)
		case gif.DisposalPrevious:
			acc = prev
		}
	}
	return out
}

// Save encodes img to path in the format named by its extension.
func Save(img image.Image, path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageio: %w", err)
	}
	if err := Encode(f, img, ext); err != nil {
		f.Close()
		return fmt.Errorf("imageio: encode %s: %w", path, err)
	}
	return f.Close()
}

// Encode writes img in the format named by ext (".png", ".jpg", …).
func Encode(w io.Writer, img image.Image, ext string) error {
	switch strings.TrimPrefix(strings.ToLower(ext), ".") {
	case "png":
		return png.Encode(w, img)
	case "jpg", "jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 90})
	case "gif":
		return gif.Encode(w, img, nil)
	case "bmp":
		return bmp.Encode(w, img)
	case "tif", "tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
}

// Flip returns a mirrored copy of img.
func Flip(img image.Image, axis Axis) *image.RGBA {
	if axis == Vertical {
		return transform.FlipV(img)
	}
	return transform.FlipH(img)
}

// Resize returns img scaled to width x height with linear filtering.
func Resize(img image.Image, width, height int) *image.RGBA {
	return transform.Resize(img, width, height, transform.Linear)
}

// RGBA returns img as an *image.RGBA whose bounds start at the origin,
// copying only when needed.
func RGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	out := clone.AsRGBA(img)
	out.Rect = out.Rect.Sub(out.Rect.Min)
	return out
}

// FileStore loads and saves images on the local file system.
type FileStore struct{}

// Load implements the easel image store.
func (FileStore) Load(path string) (image.Image, error) { return Load(path) }

// Save implements the easel image store.
func (FileStore) Save(img image.Image, path string) error { return Save(img, path) }

// LoadFrames implements the easel frame store.
func (FileStore) LoadFrames(path string) ([]image.Image, error) { return LoadFrames(path) }
