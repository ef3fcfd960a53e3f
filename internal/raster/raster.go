// Package raster is a small immediate-mode drawing surface for square icons.
//
// Boxes are inclusive pixel rectangles (see layout.Rect). Rectangles are filled
// pixel-exact; ellipses, pie slices and polygons are anti-aliased through
// golang.org/x/image/vector. Every operation is deterministic.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/Mavwarf/tabicons/internal/layout"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// arcStep is the maximum angle, in degrees, covered by one segment of a
// flattened pie-slice arc.
const arcStep = 5.0

// kappa places cubic Bézier control points for a quarter ellipse.
const kappa = 0.5522847498

// Canvas is a square RGBA drawing surface.
type Canvas struct {
	img *image.RGBA
}

// New returns a size×size canvas filled with bg.
func New(size int, bg color.Color) *Canvas {
	c := NewTransparent(size)
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	return c
}

// NewTransparent returns a fully transparent size×size canvas.
func NewTransparent(size int) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, size, size))}
}

// Image returns the backing image. It is not a copy.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Size returns the edge length in pixels.
func (c *Canvas) Size() int {
	return c.img.Bounds().Dx()
}

// FillRect fills the inclusive box r. Inverted boxes draw nothing.
func (c *Canvas) FillRect(r layout.Rect, col color.Color) {
	if r.X2 < r.X1 || r.Y2 < r.Y1 {
		return
	}
	rect := image.Rect(r.X1, r.Y1, r.X2+1, r.Y2+1).Intersect(c.img.Bounds())
	if rect.Empty() {
		return
	}
	draw.Draw(c.img, rect, image.NewUniform(col), image.Point{}, draw.Over)
}

// FillEllipse fills the ellipse inscribed in the inclusive box r.
func (c *Canvas) FillEllipse(r layout.Rect, col color.Color) {
	if r.X2 < r.X1 || r.Y2 < r.Y1 {
		return
	}
	cx, cy, rx, ry := ellipseParams(r)
	k := float32(kappa)

	ras := c.rasterizer()
	ras.MoveTo(cx+rx, cy)
	ras.CubeTo(cx+rx, cy+k*ry, cx+k*rx, cy+ry, cx, cy+ry)
	ras.CubeTo(cx-k*rx, cy+ry, cx-rx, cy+k*ry, cx-rx, cy)
	ras.CubeTo(cx-rx, cy-k*ry, cx-k*rx, cy-ry, cx, cy-ry)
	ras.CubeTo(cx+k*rx, cy-ry, cx+rx, cy-k*ry, cx+rx, cy)
	ras.ClosePath()
	c.fill(ras, col)
}

// FillPieSlice fills the wedge of the ellipse inscribed in r between the
// start and end angles. Angles are in degrees, measured clockwise from the
// 3 o'clock position.
func (c *Canvas) FillPieSlice(r layout.Rect, start, end float64, col color.Color) {
	if r.X2 < r.X1 || r.Y2 < r.Y1 || end <= start {
		return
	}
	cx, cy, rx, ry := ellipseParams(r)
	n := int(math.Ceil((end - start) / arcStep))

	ras := c.rasterizer()
	ras.MoveTo(cx, cy)
	for i := 0; i <= n; i++ {
		theta := (start + (end-start)*float64(i)/float64(n)) * math.Pi / 180
		x := cx + rx*float32(math.Cos(theta))
		y := cy + ry*float32(math.Sin(theta))
		ras.LineTo(x, y)
	}
	ras.ClosePath()
	c.fill(ras, col)
}

// FillPolygon fills the polygon through the centres of the given pixels.
// Fewer than three points draw nothing.
func (c *Canvas) FillPolygon(pts []layout.Point, col color.Color) {
	if len(pts) < 3 {
		return
	}
	ras := c.rasterizer()
	ras.MoveTo(float32(pts[0].X)+0.5, float32(pts[0].Y)+0.5)
	for _, p := range pts[1:] {
		ras.LineTo(float32(p.X)+0.5, float32(p.Y)+0.5)
	}
	ras.ClosePath()
	c.fill(ras, col)
}

// RoundedRect fills r with corners of the given radius, built from two
// straight-edge rectangles and four quarter-circle pie slices.
func (c *Canvas) RoundedRect(r layout.Rect, radius int, col color.Color) {
	if radius <= 0 {
		c.FillRect(r, col)
		return
	}
	d := radius * 2
	c.FillRect(layout.Rect{X1: r.X1 + radius, Y1: r.Y1, X2: r.X2 - radius, Y2: r.Y2}, col)
	c.FillRect(layout.Rect{X1: r.X1, Y1: r.Y1 + radius, X2: r.X2, Y2: r.Y2 - radius}, col)

	c.FillPieSlice(layout.Rect{X1: r.X1, Y1: r.Y1, X2: r.X1 + d, Y2: r.Y1 + d}, 180, 270, col)
	c.FillPieSlice(layout.Rect{X1: r.X2 - d, Y1: r.Y1, X2: r.X2, Y2: r.Y1 + d}, 270, 360, col)
	c.FillPieSlice(layout.Rect{X1: r.X1, Y1: r.Y2 - d, X2: r.X1 + d, Y2: r.Y2}, 90, 180, col)
	c.FillPieSlice(layout.Rect{X1: r.X2 - d, Y1: r.Y2 - d, X2: r.X2, Y2: r.Y2}, 0, 90, col)
}

// Composite draws top over c using Porter-Duff "over".
func (c *Canvas) Composite(top *Canvas) {
	draw.Draw(c.img, c.img.Bounds(), top.img, image.Point{}, draw.Over)
}

// Flatten returns an opaque copy of the canvas. Alpha is dropped, keeping
// each pixel's straight (non-premultiplied) colour.
func (c *Canvas) Flatten() *image.RGBA {
	b := c.img.Bounds()
	out := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			n := color.NRGBAModel.Convert(c.img.RGBAAt(x, y)).(color.NRGBA)
			out.SetRGBA(x, y, color.RGBA{R: n.R, G: n.G, B: n.B, A: 0xff})
		}
	}
	return out
}

// Probe checks that the drawing backend can rasterize and encode an image.
func Probe() error {
	c := New(1, color.Black)
	c.FillEllipse(layout.Rect{X1: 0, Y1: 0, X2: 0, Y2: 0}, color.White)
	if c.img.RGBAAt(0, 0) == (color.RGBA{A: 0xff}) {
		return fmt.Errorf("raster: vector rasterizer produced no coverage")
	}
	if err := png.Encode(io.Discard, c.Flatten()); err != nil {
		return fmt.Errorf("raster: png encoder: %w", err)
	}
	return nil
}

func (c *Canvas) rasterizer() *vector.Rasterizer {
	size := c.img.Bounds().Size()
	ras := vector.NewRasterizer(size.X, size.Y)
	ras.DrawOp = draw.Over
	return ras
}

func (c *Canvas) fill(ras *vector.Rasterizer, col color.Color) {
	ras.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

// ellipseParams converts an inclusive box into centre and radii in
// continuous pixel coordinates.
func ellipseParams(r layout.Rect) (cx, cy, rx, ry float32) {
	x0, y0 := float32(r.X1), float32(r.Y1)
	x1, y1 := float32(r.X2+1), float32(r.Y2+1)
	return (x0 + x1) / 2, (y0 + y1) / 2, (x1 - x0) / 2, (y1 - y0) / 2
}
