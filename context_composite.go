package hdr2d

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/hdr2d/internal/blend"
)

// composite merges one contribution into a stored pixel. d is the
// four-value slice of the pixel, (r, g, b) the un-premultiplied source
// color and as the source alpha fraction including global alpha.
func composite(d []float32, f blend.Funcs, r, g, b, as float64) {
	ad := float64(d[3]) / 255
	d[0] = float32(f.Component(r, float64(d[0]), as, ad))
	d[1] = float32(f.Component(g, float64(d[1]), as, ad))
	d[2] = float32(f.Component(b, float64(d[2]), as, ad))
	d[3] = float32(f.Alpha(as, ad) * 255)
}

// pixelCoords rounds (x, y) to the nearest pixel, halves rounding up, and
// checks it against the bounds.
func (c *Context) pixelCoords(x, y float64) (int, int, error) {
	rx, ry := math.Floor(x+0.5), math.Floor(y+0.5)
	if !(rx >= 0 && rx < float64(c.width) && ry >= 0 && ry < float64(c.height)) {
		return 0, 0, fmt.Errorf("%w: (%v, %v) in %dx%d", ErrOutOfBounds, x, y, c.width, c.height)
	}
	return int(rx), int(ry), nil
}

// clipRect converts a float rectangle into the pixel rectangle
// [floor(x), ceil(x+w)) x [floor(y), ceil(y+h)) clipped to the context.
// Negative or NaN sizes give an empty rectangle.
func (c *Context) clipRect(x, y, w, h float64) image.Rectangle {
	if !(w > 0) || !(h > 0) {
		return image.Rectangle{}
	}
	x0 := math.Max(0, math.Floor(x))
	y0 := math.Max(0, math.Floor(y))
	x1 := math.Min(float64(c.width), math.Ceil(x+w))
	y1 := math.Min(float64(c.height), math.Ceil(y+h))
	if !(x0 < x1 && y0 < y1) {
		return image.Rectangle{}
	}
	return image.Rect(int(x0), int(y0), int(x1), int(y1))
}

// row returns the HDR values of pixels [x0, x1) on row y.
func (c *Context) row(y, x0, x1 int) []float32 {
	return c.buf.data[c.buf.index(x0, y):c.buf.index(x1, y)]
}

// SetPixel composites col into the pixel nearest to (x, y) with the current
// blend mode and global alpha, then presents that pixel.
//
// Coordinates outside the context return ErrOutOfBounds and write nothing.
func (c *Context) SetPixel(x, y float64, col Color) error {
	if err := c.checkOpen(); err != nil {
		return err
	}
	px, py, err := c.pixelCoords(x, y)
	if err != nil {
		return err
	}

	as := col.A * c.globalAlpha / 255
	composite(c.row(py, px, px+1), c.funcs, col.R, col.G, col.B, as)
	return c.invalidate(image.Rect(px, py, px+1, py+1))
}

// GetPixel returns the stored HDR value of the pixel nearest to (x, y).
func (c *Context) GetPixel(x, y float64) (Color, error) {
	px, py, err := c.pixelCoords(x, y)
	if err != nil {
		return Color{}, err
	}
	return c.buf.At(px, py), nil
}

// FillRect composites the fill style into every pixel of the rectangle,
// clipped to the context, and presents the touched area.
func (c *Context) FillRect(x, y, w, h float64) error {
	if err := c.checkOpen(); err != nil {
		return err
	}
	col, err := c.FillStyle()
	if err != nil {
		return err
	}
	r := c.clipRect(x, y, w, h)
	if r.Empty() {
		return nil
	}

	as := col.A * c.globalAlpha / 255
	f := c.funcs
	c.pool.Rows(r.Min.Y, r.Max.Y, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			row := c.row(y, r.Min.X, r.Max.X)
			for i := 0; i < len(row); i += 4 {
				composite(row[i:i+4:i+4], f, col.R, col.G, col.B, as)
			}
		}
	})
	return c.invalidate(r)
}

// ClearRect sets every pixel of the rectangle, clipped to the context, to
// (0, 0, 0, 0). The blend mode and global alpha do not apply.
func (c *Context) ClearRect(x, y, w, h float64) error {
	if err := c.checkOpen(); err != nil {
		return err
	}
	r := c.clipRect(x, y, w, h)
	if r.Empty() {
		return nil
	}

	c.pool.Rows(r.Min.Y, r.Max.Y, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			clear(c.row(y, r.Min.X, r.Max.X))
		}
	})
	return c.invalidate(r)
}
