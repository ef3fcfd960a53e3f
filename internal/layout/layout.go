// Package layout computes icon geometry as pure functions of the icon size.
// All values use integer (floor) division and inclusive pixel boxes, so a
// Rect{1, 1, 2, 2} covers four pixels.
package layout

// Point is a pixel coordinate.
type Point struct {
	X, Y int
}

// Rect is an inclusive pixel box from (X1, Y1) to (X2, Y2).
type Rect struct {
	X1, Y1, X2, Y2 int
}

// Valid reports whether r is non-inverted and lies within [0, size].
func (r Rect) Valid(size int) bool {
	if r.X2 < r.X1 || r.Y2 < r.Y1 {
		return false
	}
	return inside(r.X1, size) && inside(r.Y1, size) && inside(r.X2, size) && inside(r.Y2, size)
}

// Width returns the number of pixel columns covered by r.
func (r Rect) Width() int { return r.X2 - r.X1 + 1 }

// Height returns the number of pixel rows covered by r.
func (r Rect) Height() int { return r.Y2 - r.Y1 + 1 }

func inside(v, size int) bool {
	return v >= 0 && v <= size
}

// Fancy holds the geometry of the gradient icon.
type Fancy struct {
	Size    int
	Padding int
	Radius  int // corner radius shared by window and tab

	GradientCenter int
	GradientRadius float64

	Window    Rect
	Tab       Rect
	Shaft     Rect
	Head      [3]Point
	Highlight Rect
}

// NewFancy returns the gradient icon geometry for size.
func NewFancy(size int) Fancy {
	padding := size / 5
	f := Fancy{
		Size:           size,
		Padding:        padding,
		Radius:         size / 16,
		GradientCenter: size / 2,
		GradientRadius: float64(size) * 0.7,
	}

	f.Window = Rect{padding, padding + size/8, size - padding, size - padding}

	tabX := padding + size/8
	tabY := padding
	f.Tab = Rect{tabX, tabY, tabX + size/3, tabY + size/7}

	a := size / 6
	ax := size/2 - a/2
	ay := size/2 + size/10
	f.Shaft = Rect{ax, ay, ax + a - a/4, ay + a/8}
	f.Head = [3]Point{
		{ax + a - a/4, ay - a/8},
		{ax + a, ay + a/16},
		{ax + a - a/4, ay + a/4},
	}

	f.Highlight = Rect{size / 4, size / 4, size / 2, size / 2}
	return f
}

// Rects lists every box the fancy icon draws, for bounds checks.
func (f Fancy) Rects() []Rect {
	return []Rect{f.Window, f.Tab, f.Shaft, f.Highlight, f.headBounds()}
}

func (f Fancy) headBounds() Rect {
	r := Rect{f.Head[0].X, f.Head[0].Y, f.Head[0].X, f.Head[0].Y}
	for _, p := range f.Head[1:] {
		r.X1 = min(r.X1, p.X)
		r.Y1 = min(r.Y1, p.Y)
		r.X2 = max(r.X2, p.X)
		r.Y2 = max(r.Y2, p.Y)
	}
	return r
}

// Simple holds the geometry of the flat placeholder icon.
type Simple struct {
	Size    int
	Padding int
	Body    Rect
	Handle  Rect
}

// NewSimple returns the flat icon geometry for size.
func NewSimple(size int) Simple {
	padding := size / 4
	return Simple{
		Size:    size,
		Padding: padding,
		Body:    Rect{padding, padding + size/6, size - padding, size - padding},
		Handle:  Rect{padding + size/6, padding, padding + size/3, padding + size/6},
	}
}

// Rects lists every box the simple icon draws.
func (s Simple) Rects() []Rect {
	return []Rect{s.Body, s.Handle}
}
