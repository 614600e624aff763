package hdr2d

import (
	"fmt"
	"image"
)

// Buffer is the HDR pixel store: a row-major grid of float32 RGBA values.
//
// Channel c of pixel (x, y) lives at Data()[(y*Width()+x)*4+c]. Values are
// unbounded; only the tone mapper brings them into display range.
// A Buffer never changes size.
type Buffer struct {
	width  int
	height int
	data   []float32
}

// NewBuffer allocates a zero-initialized buffer.
func NewBuffer(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Buffer{
		width:  width,
		height: height,
		data:   make([]float32, width*height*4),
	}, nil
}

// Width returns the width of the buffer.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the height of the buffer.
func (b *Buffer) Height() int {
	return b.height
}

// Bounds returns the rectangle covering the buffer.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// Data returns the raw float storage.
func (b *Buffer) Data() []float32 {
	return b.data
}

// index returns the offset of pixel (x, y). No bounds check.
func (b *Buffer) index(x, y int) int {
	return (y*b.width + x) * 4
}

// At returns pixel (x, y). The caller guarantees the coordinates are in
// bounds; use Pixel for a checked read.
func (b *Buffer) At(x, y int) Color {
	i := b.index(x, y)
	d := b.data[i : i+4 : i+4]
	return Color{R: float64(d[0]), G: float64(d[1]), B: float64(d[2]), A: float64(d[3])}
}

// Set stores pixel (x, y). The caller guarantees the coordinates are in
// bounds; use SetPixel for a checked write.
func (b *Buffer) Set(x, y int, c Color) {
	i := b.index(x, y)
	d := b.data[i : i+4 : i+4]
	d[0], d[1], d[2], d[3] = float32(c.R), float32(c.G), float32(c.B), float32(c.A)
}

// Contains reports whether (x, y) is inside the buffer.
func (b *Buffer) Contains(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Pixel returns pixel (x, y) or ErrOutOfBounds.
func (b *Buffer) Pixel(x, y int) (Color, error) {
	if !b.Contains(x, y) {
		return Color{}, fmt.Errorf("%w: (%d, %d) in %dx%d", ErrOutOfBounds, x, y, b.width, b.height)
	}
	return b.At(x, y), nil
}

// SetPixel stores pixel (x, y) or returns ErrOutOfBounds without writing.
func (b *Buffer) SetPixel(x, y int, c Color) error {
	if !b.Contains(x, y) {
		return fmt.Errorf("%w: (%d, %d) in %dx%d", ErrOutOfBounds, x, y, b.width, b.height)
	}
	b.Set(x, y, c)
	return nil
}

// ExtractRegion returns the sub-rectangle at (x, y) of size w x h, clipped
// to the buffer. Negative sizes give an empty region.
//
// A request for exactly the whole buffer returns b itself rather than a
// copy; treat the result as read-only in that case.
func (b *Buffer) ExtractRegion(x, y, w, h int) *Buffer {
	if x == 0 && y == 0 && w == b.width && h == b.height {
		return b
	}

	r := image.Rect(x, y, x+max(w, 0), y+max(h, 0)).Intersect(b.Bounds())
	out := &Buffer{width: r.Dx(), height: r.Dy()}
	out.data = make([]float32, out.width*out.height*4)

	rowLen := out.width * 4
	for row := 0; row < out.height; row++ {
		src := b.index(r.Min.X, r.Min.Y+row)
		copy(out.data[row*rowLen:(row+1)*rowLen], b.data[src:src+rowLen])
	}
	return out
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	out := &Buffer{width: b.width, height: b.height, data: make([]float32, len(b.data))}
	copy(out.data, b.data)
	return out
}
