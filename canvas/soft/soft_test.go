package soft

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/gogpu/easel/canvas"
	"github.com/gogpu/easel/geom"
	"github.com/gogpu/easel/imageio"
)

var red = color.NRGBA{R: 255, A: 255}

func opened(t *testing.T, w, h int) *Canvas {
	t.Helper()
	c := New()
	if err := c.Open(w, h, "test"); err != nil {
		t.Fatal(err)
	}
	return c
}

func rgbAt(c *Canvas, x, y int) (r, g, b uint8) {
	p := c.Frame().RGBAAt(x, y)
	return p.R, p.G, p.B
}

func TestFlush_FillsPolygon(t *testing.T) {
	c := opened(t, 40, 40)
	_, _ = c.CreateShape(canvas.Primitive{
		Kind:    canvas.KindPolygon,
		Points:  geom.RectangleVertices(10, 10, 20, 20),
		Fill:    red,
		Visible: true,
	})
	if err := c.Flush(); err != nil {
		t.Fatal(err)
	}
	if r, g, b := rgbAt(c, 20, 20); r != 255 || g != 0 || b != 0 {
		t.Errorf("center pixel = (%d,%d,%d), want red", r, g, b)
	}
	if r, g, b := rgbAt(c, 2, 2); r != 255 || g != 255 || b != 255 {
		t.Errorf("background pixel = (%d,%d,%d), want white", r, g, b)
	}
}

func TestFlush_StackingAndVisibility(t *testing.T) {
	c := opened(t, 20, 20)
	blue := color.NRGBA{B: 255, A: 255}
	a, _ := c.CreateShape(canvas.Primitive{Kind: canvas.KindPolygon, Points: geom.RectangleVertices(0, 0, 20, 20), Fill: red, Visible: true})
	b, _ := c.CreateShape(canvas.Primitive{Kind: canvas.KindPolygon, Points: geom.RectangleVertices(0, 0, 20, 20), Fill: blue, Visible: true})
	_ = c.Flush()
	if _, _, bl := rgbAt(c, 10, 10); bl != 255 {
		t.Error("later shape should paint on top")
	}

	_ = c.Restack([]canvas.Handle{b, a})
	_ = c.Flush()
	if r, _, _ := rgbAt(c, 10, 10); r != 255 {
		t.Error("restacked shape should paint on top")
	}

	_ = c.UpdateShape(a, canvas.Primitive{Kind: canvas.KindPolygon, Points: geom.RectangleVertices(0, 0, 20, 20), Fill: red})
	_ = c.Flush()
	if _, _, bl := rgbAt(c, 10, 10); bl != 255 {
		t.Error("hidden shape should not paint")
	}
}

func TestFlush_OffscreenPolygonIsClipped(t *testing.T) {
	c := opened(t, 20, 20)
	_, _ = c.CreateShape(canvas.Primitive{
		Kind:    canvas.KindPolygon,
		Points:  geom.RectangleVertices(-50, -50, 60, 60),
		Fill:    red,
		Visible: true,
	})
	if err := c.Flush(); err != nil {
		t.Fatal(err)
	}
	if r, g, _ := rgbAt(c, 5, 5); r != 255 || g != 0 {
		t.Errorf("clipped fill missing at (5,5)")
	}
	if _, g, _ := rgbAt(c, 15, 15); g != 255 {
		t.Errorf("fill leaked past the polygon at (15,15)")
	}
}

func TestFlush_Text(t *testing.T) {
	c := opened(t, 120, 40)
	_, _ = c.CreateShape(canvas.Primitive{
		Kind:    canvas.KindText,
		Points:  geom.RectangleVertices(0, 0, 100, 30),
		Fill:    color.Black,
		Visible: true,
		Text:    &canvas.TextStyle{Text: "Hello", Size: 24, Underline: true},
	})
	if err := c.Flush(); err != nil {
		t.Fatal(err)
	}
	dark := 0
	for y := range 40 {
		for x := range 120 {
			if r, _, _ := rgbAt(c, x, y); r < 128 {
				dark++
			}
		}
	}
	if dark == 0 {
		t.Error("no text pixels were drawn")
	}
}

// inkSpan returns the leftmost and rightmost columns holding dark pixels.
func inkSpan(c *Canvas) (left, right int) {
	left, right = -1, -1
	w, h := c.Size()
	for x := range w {
		for y := range h {
			if r, _, _ := rgbAt(c, x, y); r < 128 {
				if left < 0 {
					left = x
				}
				right = x
				break
			}
		}
	}
	return left, right
}

func TestFlush_TextAlign(t *testing.T) {
	tests := []struct {
		align     canvas.Align
		minLeft   int
		maxLeft   int
		wantRight int
	}{
		{canvas.AlignLeft, 0, 10, 100},
		{canvas.AlignCenter, 60, 110, 180},
		{canvas.AlignRight, 150, 200, 200},
	}
	for _, tt := range tests {
		t.Run(tt.align.String(), func(t *testing.T) {
			c := opened(t, 200, 30)
			_, _ = c.CreateShape(canvas.Primitive{
				Kind:    canvas.KindText,
				Points:  geom.RectangleVertices(0, 0, 200, 30),
				Fill:    color.Black,
				Visible: true,
				Text:    &canvas.TextStyle{Text: "Hi", Size: 20, Align: tt.align},
			})
			if err := c.Flush(); err != nil {
				t.Fatal(err)
			}
			left, right := inkSpan(c)
			if left < tt.minLeft || left > tt.maxLeft {
				t.Errorf("ink starts at x=%d, want in [%d, %d]", left, tt.minLeft, tt.maxLeft)
			}
			if right > tt.wantRight {
				t.Errorf("ink ends at x=%d, past %d", right, tt.wantRight)
			}
		})
	}
}

func TestFlush_Picture(t *testing.T) {
	c := opened(t, 20, 20)
	pic := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := range pic.Pix {
		pic.Pix[i] = 0xFF
		if i%4 == 1 || i%4 == 2 {
			pic.Pix[i] = 0
		}
	}
	if err := c.SetPicture(pic); err != nil {
		t.Fatal(err)
	}
	_, _ = c.CreateShape(canvas.Primitive{
		Kind:    canvas.KindPolygon,
		Points:  geom.RectangleVertices(10, 10, 10, 10),
		Fill:    color.Black,
		Visible: true,
	})
	if err := c.Flush(); err != nil {
		t.Fatal(err)
	}
	if r, g, b := rgbAt(c, 8, 8); r != 255 || g != 0 || b != 0 {
		t.Errorf("picture pixel = (%d,%d,%d), want red", r, g, b)
	}
	if r, _, _ := rgbAt(c, 11, 11); r != 0 {
		t.Errorf("shape must paint over the picture, got r=%d", r)
	}
	if r, g, b := rgbAt(c, 2, 2); r != 255 || g != 255 || b != 255 {
		t.Errorf("background pixel = (%d,%d,%d), want white", r, g, b)
	}

	_ = c.SetPicture(nil)
	_ = c.Flush()
	if _, g, _ := rgbAt(c, 8, 8); g != 255 {
		t.Error("removed picture is still drawn")
	}
}

func TestInjectAndSave(t *testing.T) {
	c := opened(t, 10, 10)
	c.Inject(canvas.Event{Kind: canvas.KeyDown, Key: "a"})
	if ev := c.PollEvents(); len(ev) != 1 || ev[0].Key != "a" {
		t.Errorf("PollEvents() = %v", ev)
	}
	_ = c.SetBackground(red)
	_ = c.Flush()

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := c.SavePNG(path); err != nil {
		t.Fatal(err)
	}
	img, err := imageio.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if r, g, b, _ := img.At(3, 3).RGBA(); r>>8 != 255 || g != 0 || b != 0 {
		t.Errorf("saved pixel = (%d,%d,%d), want red", r>>8, g>>8, b>>8)
	}
}
