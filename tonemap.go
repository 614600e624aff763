package hdr2d

import (
	"fmt"
	"image"
)

// Invalidate tone-maps the whole buffer into the surface and presents it.
func (c *Context) Invalidate() error {
	if err := c.checkOpen(); err != nil {
		return err
	}
	return c.invalidate(c.buf.Bounds())
}

// InvalidateRect tone-maps the rectangle at (x, y) of size w x h, clipped
// to the context, and presents it. Empty rectangles present nothing.
func (c *Context) InvalidateRect(x, y, w, h int) error {
	if err := c.checkOpen(); err != nil {
		return err
	}
	r := image.Rect(x, y, x+max(w, 0), y+max(h, 0)).Intersect(c.buf.Bounds())
	if r.Empty() {
		return nil
	}
	return c.invalidate(r)
}

// Render is Invalidate under its older name.
func (c *Context) Render() error {
	return c.Invalidate()
}

// invalidate maps every channel of every pixel in r through its range:
//
//	out = (hdr - low) / (high - low) * 255
//
// The mapping itself does not clamp. Storing into the 8-bit surface clamps
// to [0, 255] and rounds half to even, like a clamped byte array.
func (c *Context) invalidate(r image.Rectangle) error {
	pix := c.surface.Pix()
	rs := c.ranges

	c.pool.Rows(r.Min.Y, r.Max.Y, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			start := c.buf.index(r.Min.X, y)
			src := c.buf.data[start:c.buf.index(r.Max.X, y)]
			dst := pix[start : start+len(src)]
			for i := 0; i < len(src); i += 4 {
				dst[i+0] = toByte(rs[ChannelR].Map(float64(src[i+0])))
				dst[i+1] = toByte(rs[ChannelG].Map(float64(src[i+1])))
				dst[i+2] = toByte(rs[ChannelB].Map(float64(src[i+2])))
				dst[i+3] = toByte(rs[ChannelA].Map(float64(src[i+3])))
			}
		}
	})

	if err := c.surface.Present(r); err != nil {
		Logger().Warn("hdr2d: present failed", "rect", r, "err", err)
		return fmt.Errorf("hdr2d: present %v: %w", r, err)
	}
	return nil
}
