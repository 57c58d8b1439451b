// Package fonts provides the Go font family for text renderables: raw
// TrueType data for rasterizers, x/image faces, and text measurement.
//
// Widths come from HarfBuzz shaping (go-text/typesetting) so kerning is
// accounted for; vertical metrics come from the sfnt tables.
package fonts

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Font is one parsed member of the family. It is safe for concurrent use.
type Font struct {
	name  string
	data  []byte
	sfnt  *opentype.Font
	shape *gotext.Font
}

type style struct{ bold, italic bool }

var (
	loadMu sync.Mutex
	loaded = make(map[style]*Font)
)

var sources = map[style]struct {
	name string
	data []byte
}{
	{false, false}: {"Go Regular", goregular.TTF},
	{true, false}:  {"Go Bold", gobold.TTF},
	{false, true}:  {"Go Italic", goitalic.TTF},
	{true, true}:   {"Go Bold Italic", gobolditalic.TTF},
}

// Get returns the family member for the given style, parsing it on first
// use.
func Get(bold, italic bool) (*Font, error) {
	key := style{bold, italic}
	loadMu.Lock()
	defer loadMu.Unlock()
	if f, ok := loaded[key]; ok {
		return f, nil
	}
	src := sources[key]
	sf, err := opentype.Parse(src.data)
	if err != nil {
		return nil, fmt.Errorf("fonts: parse %s: %w", src.name, err)
	}
	gf, err := gotext.ParseTTF(bytes.NewReader(src.data))
	if err != nil {
		return nil, fmt.Errorf("fonts: load %s for shaping: %w", src.name, err)
	}
	f := &Font{name: src.name, data: src.data, sfnt: sf, shape: gf.Font}
	loaded[key] = f
	return f, nil
}

// Name returns the full font name.
func (f *Font) Name() string { return f.name }

// Data returns the TrueType bytes. Callers must not modify them.
func (f *Font) Data() []byte { return f.data }

// Face returns an x/image face at size pixels (72 DPI).
func (f *Font) Face(size float64) (font.Face, error) {
	return opentype.NewFace(f.sfnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// Metrics holds vertical metrics in pixels.
type Metrics struct {
	Ascent, Descent, LineHeight float64
}

// Metrics returns the vertical metrics at size pixels.
func (f *Font) Metrics(size float64) (Metrics, error) {
	var buf sfnt.Buffer
	m, err := f.sfnt.Metrics(&buf, toFixed(size), font.HintingFull)
	if err != nil {
		return Metrics{}, fmt.Errorf("fonts: metrics for %s: %w", f.name, err)
	}
	return Metrics{
		Ascent:     fromFixed(m.Ascent),
		Descent:    fromFixed(m.Descent),
		LineHeight: fromFixed(m.Height),
	}, nil
}

// Advance returns the shaped width of a single line of text at size
// pixels.
func (f *Font) Advance(line string, size float64) float64 {
	runes := []rune(line)
	if len(runes) == 0 {
		return 0
	}
	in := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      gotext.NewFace(f.shape),
		Size:      toFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}
	var hb shaping.HarfbuzzShaper
	out := hb.Shape(in)
	var w float64
	for _, g := range out.Glyphs {
		w += fromFixed(g.Advance)
	}
	return w
}

// Measure returns the size of the box that holds text at size pixels.
// Lines are separated by '\n'.
func Measure(text string, size float64, bold, italic bool) (width, height float64, err error) {
	f, err := Get(bold, italic)
	if err != nil {
		return 0, 0, err
	}
	m, err := f.Metrics(size)
	if err != nil {
		return 0, 0, err
	}
	lines := strings.Split(text, "\n")
	for _, l := range lines {
		width = max(width, f.Advance(l, size))
	}
	height = m.Ascent + m.Descent + float64(len(lines)-1)*m.LineHeight
	return width, height, nil
}

func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func toFixed(v float64) fixed.Int26_6   { return fixed.Int26_6(v * 64) }
func fromFixed(v fixed.Int26_6) float64 { return float64(v) / 64 }
