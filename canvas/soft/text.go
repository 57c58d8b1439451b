package soft

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"strings"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"github.com/gogpu/easel/canvas"
	"github.com/gogpu/easel/internal/fonts"
)

// textRenderer rasterizes text boxes with freetype, caching parsed fonts
// per style.
type textRenderer struct {
	parsed map[[2]bool]*truetype.Font
}

func newTextRenderer() *textRenderer {
	return &textRenderer{parsed: make(map[[2]bool]*truetype.Font)}
}

func (t *textRenderer) font(bold, italic bool) (*fonts.Font, *truetype.Font, error) {
	f, err := fonts.Get(bold, italic)
	if err != nil {
		return nil, nil, err
	}
	key := [2]bool{bold, italic}
	if tt, ok := t.parsed[key]; ok {
		return f, tt, nil
	}
	tt, err := truetype.Parse(f.Data())
	if err != nil {
		return nil, nil, fmt.Errorf("soft: parse %s: %w", f.Name(), err)
	}
	t.parsed[key] = tt
	return f, tt, nil
}

// render draws the text unrotated into a transparent image of the box
// size, each line placed by s.Align.
func (t *textRenderer) render(s *canvas.TextStyle, col color.Color, w, h float64) (*image.RGBA, error) {
	if col == nil {
		col = color.Black
	}
	f, tt, err := t.font(s.Bold, s.Italic)
	if err != nil {
		return nil, err
	}
	m, err := f.Metrics(s.Size)
	if err != nil {
		return nil, err
	}
	img := image.NewRGBA(image.Rect(0, 0, max(1, int(math.Ceil(w))), max(1, int(math.Ceil(h)))))

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(tt)
	ctx.SetFontSize(s.Size)
	ctx.SetHinting(font.HintingFull)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetSrc(image.NewUniform(col))

	thickness := max(1, int(math.Round(s.Size/14)))
	baseline := m.Ascent
	for _, line := range strings.Split(s.Text, "\n") {
		adv := f.Advance(line, s.Size)
		x := int(math.Round(s.Align.Offset(w, adv)))
		if _, err := ctx.DrawString(line, freetype.Pt(x, int(math.Round(baseline)))); err != nil {
			return nil, fmt.Errorf("soft: draw text: %w", err)
		}
		end := x + int(math.Ceil(adv))
		if s.Underline {
			y := int(math.Round(baseline + m.Descent/2))
			rule(img, x, end, y, thickness, col)
		}
		if s.Strikethrough {
			y := int(math.Round(baseline - m.Ascent*0.3))
			rule(img, x, end, y, thickness, col)
		}
		baseline += m.LineHeight
	}
	return img, nil
}

func rule(img *image.RGBA, x0, x1, y, thickness int, col color.Color) {
	draw.Draw(img, image.Rect(x0, y, x1, y+thickness), image.NewUniform(col), image.Point{}, draw.Over)
}
