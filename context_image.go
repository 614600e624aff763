package hdr2d

import (
	"fmt"
	"image"
	"math"
)

// DrawImageOptions specifies parameters for drawing an image.
type DrawImageOptions struct {
	// X, Y specify the top-left corner where the image will be drawn.
	X, Y float64

	// DstWidth and DstHeight specify the dimensions to scale the image to.
	// If zero, the source dimensions are used (possibly from SrcRect).
	DstWidth  float64
	DstHeight float64

	// SrcRect defines the source rectangle to sample from, clipped to the
	// image bounds. If nil, the entire source image is used.
	SrcRect *image.Rectangle
}

// DrawImage draws img at (dx, dy) at its natural size.
//
// Example:
//
//	f, _ := os.Open("photo.png")
//	img, _ := png.Decode(f)
//	dc.DrawImage(img, 100, 100)
func (c *Context) DrawImage(img image.Image, dx, dy float64) error {
	return c.DrawImageEx(img, DrawImageOptions{X: dx, Y: dy})
}

// DrawImageScaled draws img scaled to dw x dh at (dx, dy).
// A non-positive size draws nothing.
func (c *Context) DrawImageScaled(img image.Image, dx, dy, dw, dh float64) error {
	if img == nil {
		return ErrNilImage
	}
	return c.drawImage(img, img.Bounds(), dx, dy, dw, dh)
}

// DrawImageRect draws the source rectangle (sx, sy, sw, sh) of img scaled to
// dw x dh at (dx, dy). The source rectangle is widened to whole pixels and
// clipped to the image; an empty result draws nothing.
func (c *Context) DrawImageRect(img image.Image, sx, sy, sw, sh, dx, dy, dw, dh float64) error {
	if img == nil {
		return ErrNilImage
	}
	if !finite(sx, sy, sw, sh) || !(sw > 0) || !(sh > 0) {
		return nil
	}
	sr := image.Rect(
		int(math.Floor(sx)), int(math.Floor(sy)),
		int(math.Ceil(sx+sw)), int(math.Ceil(sy+sh)),
	)
	return c.drawImage(img, sr, dx, dy, dw, dh)
}

// DrawImageEx draws an image with explicit options.
//
// Example:
//
//	sr := image.Rect(0, 0, 64, 64)
//	dc.DrawImageEx(img, hdr2d.DrawImageOptions{
//	    X:         10,
//	    Y:         10,
//	    DstWidth:  128,
//	    DstHeight: 128,
//	    SrcRect:   &sr,
//	})
func (c *Context) DrawImageEx(img image.Image, opts DrawImageOptions) error {
	if img == nil {
		return ErrNilImage
	}

	sr := img.Bounds()
	if opts.SrcRect != nil {
		sr = opts.SrcRect.Intersect(sr)
	}
	dw, dh := opts.DstWidth, opts.DstHeight
	if dw == 0 {
		dw = float64(sr.Dx())
	}
	if dh == 0 {
		dh = float64(sr.Dy())
	}
	return c.drawImage(img, sr, opts.X, opts.Y, dw, dh)
}

// maxRasterSpan bounds the width and height of the conceptual raster so
// that its offsets stay exact in float64 and fit in an int.
const maxRasterSpan = 1 << 52

// drawImage stretches sr of img over the pixel span of the destination
// rectangle and merges every clipped destination pixel with the current
// blend mode. Pixel (px, py) takes its source from the raster at
// (px - floor(dx), py - floor(dy)); only the clipped window of the raster
// is rendered.
func (c *Context) drawImage(img image.Image, sr image.Rectangle, dx, dy, dw, dh float64) error {
	if err := c.checkOpen(); err != nil {
		return err
	}
	if !finite(dx, dy, dw, dh) {
		return nil
	}
	sr = sr.Intersect(img.Bounds())
	r := c.clipRect(dx, dy, dw, dh)
	if sr.Empty() || r.Empty() {
		return nil
	}

	ox, oy := math.Floor(dx), math.Floor(dy)
	spanW := math.Ceil(dx+dw) - ox
	spanH := math.Ceil(dy+dh) - oy
	if spanW > maxRasterSpan || spanH > maxRasterSpan {
		return fmt.Errorf("%w: draw image over %vx%v pixels", ErrInvalidDimensions, spanW, spanH)
	}
	rw, rh := int(spanW), int(spanH)
	win := r.Sub(image.Pt(int(ox), int(oy)))

	src, err := c.rasterizer.Rasterize(img, sr, rw, rh, win)
	if err != nil {
		return fmt.Errorf("hdr2d: draw image: %w", err)
	}
	Logger().Debug("hdr2d: draw image",
		"src", sr, "dst", r, "raster", fmt.Sprintf("%dx%d", rw, rh))

	ga := c.globalAlpha
	f := c.funcs

	c.pool.Rows(r.Min.Y, r.Max.Y, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			row := c.row(y, r.Min.X, r.Max.X)
			si := src.PixOffset(0, y-r.Min.Y)
			sp := src.Pix[si : si+len(row)]
			for i := 0; i < len(row); i += 4 {
				as := float64(sp[i+3]) * ga / 255
				composite(row[i:i+4:i+4], f,
					float64(sp[i+0]), float64(sp[i+1]), float64(sp[i+2]), as)
			}
		}
	})
	return c.invalidate(r)
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
