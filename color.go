package easel

import (
	"fmt"
	"image/color"
	"math/rand/v2"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Color is an immutable RGB color, or the NONE sentinel meaning "no fill"
// or "no border". Build one with RGB, ColorHex, ColorNamed or ParseColor.
// The zero value is black.
type Color struct {
	r, g, b uint8
	name    string
	none    bool
}

// ColorNone paints nothing.
var ColorNone = Color{none: true, name: "none"}

// Frequently used colors.
var (
	Black  = mustNamed("black")
	White  = mustNamed("white")
	Red    = mustNamed("red")
	Green  = mustNamed("green")
	Blue   = mustNamed("blue")
	Yellow = mustNamed("yellow")
	Orange = mustNamed("orange")
	Purple = mustNamed("purple")
	Gray   = mustNamed("gray")
)

func mustNamed(name string) Color {
	c, err := ColorNamed(name)
	if err != nil {
		panic(err)
	}
	return c
}

// MustColor returns c and panics if err is non-nil. It is intended for
// package-level color variables:
//
//	var accent = easel.MustColor(easel.ColorHex("#3cb"))
func MustColor(c Color, err error) Color {
	if err != nil {
		panic(err)
	}
	return c
}

// RGB returns the color with the given components, each in [0, 255].
func RGB(r, g, b int) (Color, error) {
	for _, v := range [...]struct {
		arg string
		val int
	}{{"r", r}, {"g", g}, {"b", b}} {
		if v.val < 0 || v.val > 255 {
			return Color{}, argError("RGB", v.arg, v.val, "must be in [0, 255]")
		}
	}
	return Color{r: uint8(r), g: uint8(g), b: uint8(b)}, nil
}

// ColorHex parses "#RRGGBB" or "#RGB". The leading '#' is optional and
// digits are case-insensitive.
func ColorHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return Color{}, argError("ColorHex", "hex", s, "must have 3 or 6 hex digits")
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, argError("ColorHex", "hex", s, "must have 3 or 6 hex digits")
	}
	return Color{r: uint8(v >> 16), g: uint8(v >> 8), b: uint8(v)}, nil
}

// ColorNamed looks up a palette name. Lookup ignores case and spaces, so
// "Light Blue" and "lightblue" are the same color. The palette is the
// CSS/SVG set, the numbered X11 shades such as "SteelBlue1".."SteelBlue4",
// "gray0".."gray100" (and "grey" spellings) and "none".
func ColorNamed(name string) (Color, error) {
	key := normalizeColorName(name)
	if key == "none" {
		return ColorNone, nil
	}
	if rgba, ok := colornames.Map[key]; ok {
		return Color{r: rgba.R, g: rgba.G, b: rgba.B, name: key}, nil
	}
	if c, ok := grayLevel(key); ok {
		return c, nil
	}
	if c, ok := x11Shade(key); ok {
		return c, nil
	}
	return Color{}, argError("ColorNamed", "name", name, "is not a known color name")
}

// ParseColor accepts a palette name or a hex string.
func ParseColor(s string) (Color, error) {
	if c, err := ColorNamed(s); err == nil {
		return c, nil
	}
	if c, err := ColorHex(s); err == nil {
		return c, nil
	}
	return Color{}, argError("ParseColor", "color", s, "must be a color name or a hex string")
}

// RandomColor returns a uniformly random opaque color.
func RandomColor() Color {
	v := rand.Uint32()
	return Color{r: uint8(v >> 16), g: uint8(v >> 8), b: uint8(v)}
}

// Colors returns every palette name accepted by ColorNamed except the
// numbered grays and shades, in alphabetical order.
func Colors() []string {
	out := make([]string, len(colornames.Names))
	copy(out, colornames.Names)
	return out
}

func normalizeColorName(s string) string {
	s = strings.Map(func(r rune) rune {
		if r == ' ' || r == '_' || r == '\t' {
			return -1
		}
		return r
	}, s)
	return cases.Lower(language.Und).String(s)
}

func grayLevel(key string) (Color, bool) {
	var digits string
	switch {
	case strings.HasPrefix(key, "gray"):
		digits = key[len("gray"):]
	case strings.HasPrefix(key, "grey"):
		digits = key[len("grey"):]
	default:
		return Color{}, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 0 || n > 100 {
		return Color{}, false
	}
	v := uint8((n*255 + 50) / 100)
	return Color{r: v, g: v, b: v, name: key}, true
}

// x11Shade resolves a numbered shade such as "green2".
func x11Shade(key string) (Color, bool) {
	n := len(key) - 1
	if n < 1 || key[n] < '1' || key[n] > '4' {
		return Color{}, false
	}
	shades, ok := x11Shades[key[:n]]
	if !ok {
		return Color{}, false
	}
	v := shades[key[n]-'1']
	return Color{r: uint8(v >> 16), g: uint8(v >> 8), b: uint8(v), name: key}, true
}

// R returns the red component.
func (c Color) R() uint8 { return c.r }

// G returns the green component.
func (c Color) G() uint8 { return c.g }

// B returns the blue component.
func (c Color) B() uint8 { return c.b }

// RGB returns all three components.
func (c Color) RGB() (r, g, b uint8) { return c.r, c.g, c.b }

// IsNone reports whether c is ColorNone.
func (c Color) IsNone() bool { return c.none }

// Equal reports whether both colors resolve to the same RGB triple, or
// are both NONE. The way a color was written does not matter.
func (c Color) Equal(o Color) bool {
	if c.none || o.none {
		return c.none == o.none
	}
	return c.r == o.r && c.g == o.g && c.b == o.b
}

// Hex returns "#rrggbb", or "none".
func (c Color) Hex() string {
	if c.none {
		return "none"
	}
	return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
}

// Name returns the palette name the color was created with, or the first
// palette name with the same RGB value, or the hex form.
func (c Color) Name() string {
	if c.name != "" {
		return c.name
	}
	if n, ok := reverseNames[[3]uint8{c.r, c.g, c.b}]; ok {
		return n
	}
	return c.Hex()
}

func (c Color) String() string { return c.Name() }

// ImageColor converts c for use with image/draw. ColorNone converts to
// nil.
func (c Color) ImageColor() color.Color {
	if c.none {
		return nil
	}
	return color.NRGBA{R: c.r, G: c.g, B: c.b, A: 0xFF}
}

var reverseNames = func() map[[3]uint8]string {
	m := make(map[[3]uint8]string, len(colornames.Names))
	for _, n := range colornames.Names {
		rgba := colornames.Map[n]
		key := [3]uint8{rgba.R, rgba.G, rgba.B}
		if _, dup := m[key]; !dup {
			m[key] = n
		}
	}
	return m
}()
