package hdr2d

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/nfnt/resize"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Rasterizer turns a source image into 8-bit non-premultiplied RGBA pixels.
//
// Conceptually the source rectangle sr (already clipped to src.Bounds()) is
// stretched over a w x h raster. Rasterize returns only the window dr of
// that raster; dr is non-empty and lies inside image.Rect(0, 0, w, h).
// The result has bounds image.Rect(0, 0, dr.Dx(), dr.Dy()), so the cost
// follows the window, not w x h.
type Rasterizer interface {
	Rasterize(src image.Image, sr image.Rectangle, w, h int, dr image.Rectangle) (*image.NRGBA, error)
}

func checkRaster(sr image.Rectangle, w, h int, dr image.Rectangle) error {
	if w <= 0 || h <= 0 || sr.Empty() || dr.Empty() || !dr.In(image.Rect(0, 0, w, h)) {
		return fmt.Errorf("%w: rasterize %v to %dx%d window %v", ErrInvalidDimensions, sr, w, h, dr)
	}
	return nil
}

// ScaleRasterizer rasterizes with golang.org/x/image/draw.
//
// The zero value uses bilinear filtering. Same-size NRGBA sources are
// copied byte for byte so no premultiply round trip touches the values.
type ScaleRasterizer struct {
	// Interpolator scales the source. Nil means xdraw.ApproxBiLinear.
	Interpolator xdraw.Interpolator
}

// Rasterize implements Rasterizer.
func (r ScaleRasterizer) Rasterize(src image.Image, sr image.Rectangle, w, h int, dr image.Rectangle) (*image.NRGBA, error) {
	if err := checkRaster(sr, w, h, dr); err != nil {
		return nil, err
	}
	dst := image.NewNRGBA(image.Rect(0, 0, dr.Dx(), dr.Dy()))

	if sr.Dx() == w && sr.Dy() == h {
		sp := sr.Min.Add(dr.Min)
		if n, ok := src.(*image.NRGBA); ok {
			rowLen := dr.Dx() * 4
			for y := 0; y < dr.Dy(); y++ {
				i := n.PixOffset(sp.X, sp.Y+y)
				copy(dst.Pix[y*dst.Stride:y*dst.Stride+rowLen], n.Pix[i:i+rowLen])
			}
			return dst, nil
		}
		draw.Draw(dst, dst.Bounds(), src, sp, draw.Src)
		return dst, nil
	}

	interp := r.Interpolator
	if interp == nil {
		interp = xdraw.ApproxBiLinear
	}
	// Source to window: x' = (x - sr.Min.X) * kx - dr.Min.X.
	kx := float64(w) / float64(sr.Dx())
	ky := float64(h) / float64(sr.Dy())
	s2d := f64.Aff3{
		kx, 0, -float64(sr.Min.X)*kx - float64(dr.Min.X),
		0, ky, -float64(sr.Min.Y)*ky - float64(dr.Min.Y),
	}
	interp.Transform(dst, s2d, src, sr, xdraw.Src, nil)
	return dst, nil
}

// maxResizePixels bounds the full raster ResizeRasterizer builds. Larger
// rasters go through x/image/draw, which only renders the window.
const maxResizePixels = 1 << 24

// ResizeRasterizer rasterizes with github.com/nfnt/resize. The zero value
// uses nearest neighbor sampling; NewResizeRasterizer picks Lanczos3.
//
// nfnt/resize always produces the whole w x h raster. When that exceeds
// maxResizePixels the closest x/image/draw kernel is used instead.
type ResizeRasterizer struct {
	Filter resize.InterpolationFunction
}

// NewResizeRasterizer returns a ResizeRasterizer using Lanczos3.
func NewResizeRasterizer() ResizeRasterizer {
	return ResizeRasterizer{Filter: resize.Lanczos3}
}

// Rasterize implements Rasterizer.
func (r ResizeRasterizer) Rasterize(src image.Image, sr image.Rectangle, w, h int, dr image.Rectangle) (*image.NRGBA, error) {
	if err := checkRaster(sr, w, h, dr); err != nil {
		return nil, err
	}
	if w > maxResizePixels/h {
		Logger().Debug("hdr2d: raster too large for resize, using x/image/draw",
			"w", w, "h", h, "filter", r.Filter)
		return ScaleRasterizer{Interpolator: r.kernel()}.Rasterize(src, sr, w, h, dr)
	}

	if sr != src.Bounds() {
		cropped := image.NewNRGBA(image.Rect(0, 0, sr.Dx(), sr.Dy()))
		draw.Draw(cropped, cropped.Bounds(), src, sr.Min, draw.Src)
		src = cropped
	}
	scaled := resize.Resize(uint(w), uint(h), src, r.Filter)

	dst := image.NewNRGBA(image.Rect(0, 0, dr.Dx(), dr.Dy()))
	draw.Draw(dst, dst.Bounds(), scaled, scaled.Bounds().Min.Add(dr.Min), draw.Src)
	return dst, nil
}

// kernel returns the x/image/draw interpolator closest to Filter.
func (r ResizeRasterizer) kernel() xdraw.Interpolator {
	switch r.Filter {
	case resize.NearestNeighbor:
		return xdraw.NearestNeighbor
	case resize.Bilinear:
		return xdraw.BiLinear
	default:
		return xdraw.CatmullRom
	}
}
