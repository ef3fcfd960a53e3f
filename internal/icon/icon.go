// Package icon renders the extension's toolbar icons.
//
// Two independent variants exist: Simple, a flat placeholder, and Fancy, a
// gradient design with a browser window, a tab and a forward arrow. Both are
// pure functions of the icon size; nothing is cached between renders.
package icon

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/Mavwarf/tabicons/internal/layout"
	"github.com/Mavwarf/tabicons/internal/paths"
	"github.com/Mavwarf/tabicons/internal/raster"
)

// Variant selects a renderer.
type Variant string

const (
	Simple Variant = "simple"
	Fancy  Variant = "fancy"
)

// ParseVariant maps a command-line name to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch Variant(s) {
	case Simple, Fancy:
		return Variant(s), nil
	}
	return "", fmt.Errorf("unknown variant %q (want simple or fancy)", s)
}

var (
	brandBlue = color.RGBA{0, 96, 223, 0xff}  // #0060df
	lightBlue = color.RGBA{0, 150, 255, 0xff} // gradient edge
	fgWhite   = color.RGBA{0xff, 0xff, 0xff, 0xff}
	accent    = color.RGBA{0, 200, 255, 0xff}
	highlight = color.NRGBA{0xff, 0xff, 0xff, 30}
)

// Render draws an icon of the given variant. Size is not validated.
func Render(v Variant, size int) *image.RGBA {
	if v == Simple {
		return DrawSimple(size)
	}
	return DrawFancy(size)
}

// DrawSimple draws the flat icon: a white window body with a handle on a
// solid blue background.
func DrawSimple(size int) *image.RGBA {
	l := layout.NewSimple(size)
	c := raster.New(size, brandBlue)
	c.FillRect(l.Body, fgWhite)
	c.FillRect(l.Handle, fgWhite)
	return c.Flatten()
}

// DrawFancy draws the gradient icon.
func DrawFancy(size int) *image.RGBA {
	l := layout.NewFancy(size)
	c := radialGradient(size, l.GradientCenter, l.GradientRadius, lightBlue, brandBlue)

	c.RoundedRect(l.Window, l.Radius, fgWhite)
	c.RoundedRect(l.Tab, l.Radius, fgWhite)

	c.FillRect(l.Shaft, accent)
	c.FillPolygon(l.Head[:], accent)

	glow := raster.NewTransparent(size)
	glow.FillEllipse(l.Highlight, highlight)
	c.Composite(glow)

	return c.Flatten()
}

// radialGradient approximates a radial gradient with concentric circles,
// largest first. The edge colour is outer and the centre tends to inner.
func radialGradient(size, center int, maxRadius float64, outer, inner color.RGBA) *raster.Canvas {
	c := raster.New(size, outer)
	for r := int(maxRadius); r > 0; r-- {
		t := float64(r) / maxRadius
		c.FillEllipse(layout.Rect{X1: center - r, Y1: center - r, X2: center + r, Y2: center + r}, lerp(outer, inner, t))
	}
	return c
}

// lerp returns a*t + b*(1-t) per channel, truncated.
func lerp(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x)*t + float64(y)*(1-t))
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), 0xff}
}

// Output describes a written icon file.
type Output struct {
	Path   string
	Bytes  int
	SHA256 string
}

// Encode returns img as PNG bytes. Opaque images are written as 8-bit RGB.
func Encode(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding png: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile encodes img and writes it to path, replacing any existing file.
func WriteFile(path string, img image.Image) (Output, error) {
	data, err := Encode(img)
	if err != nil {
		return Output{}, err
	}
	if err := paths.AtomicWrite(path, data); err != nil {
		return Output{}, err
	}
	sum := sha256.Sum256(data)
	return Output{Path: path, Bytes: len(data), SHA256: hex.EncodeToString(sum[:])}, nil
}
