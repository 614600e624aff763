package hdr2d

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"

	xdraw "golang.org/x/image/draw"
)

func solidImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// patternImage gives every pixel a distinct opaque color.
func patternImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(10 * x), G: uint8(10 * y), B: uint8(x + y), A: 255})
		}
	}
	return img
}

// recordingRasterizer remembers its arguments and delegates to
// ScaleRasterizer.
type recordingRasterizer struct {
	calls int
	sr    image.Rectangle
	w, h  int
	dr    image.Rectangle
	err   error
}

func (r *recordingRasterizer) Rasterize(src image.Image, sr image.Rectangle, w, h int, dr image.Rectangle) (*image.NRGBA, error) {
	r.calls++
	r.sr, r.w, r.h, r.dr = sr, w, h, dr
	if r.err != nil {
		return nil, r.err
	}
	return ScaleRasterizer{}.Rasterize(src, sr, w, h, dr)
}

func TestDrawImageNaturalSize(t *testing.T) {
	dc, s := newTestContext(t, 4, 4)
	img := patternImage(2, 2)

	if err := dc.DrawImage(img, 1, 1); err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			got := mustPixel(t, dc, float64(x), float64(y))
			want := Color{}
			if x >= 1 && x < 3 && y >= 1 && y < 3 {
				want = FromColor(img.NRGBAAt(x-1, y-1))
			}
			if got != want {
				t.Errorf("GetPixel(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
	if got, want := s.Dirty(), image.Rect(1, 1, 3, 3); got != want {
		t.Errorf("presented %v, want %v", got, want)
	}
	if got, want := s.At(2, 2), img.NRGBAAt(1, 1); got != want {
		t.Errorf("surface At(2, 2) = %v, want %v", got, want)
	}
}

func TestDrawImageAlpha(t *testing.T) {
	dc, _ := newTestContext(t, 1, 1)
	dc.SetFillStyle(Black)
	_ = dc.FillRect(0, 0, 1, 1)
	dc.SetGlobalAlpha(0.5)

	img := solidImage(1, 1, color.NRGBA{R: 200, G: 100, B: 0, A: 128})
	if err := dc.DrawImage(img, 0, 0); err != nil {
		t.Fatal(err)
	}
	as := 128 * 0.5 / 255
	want := Color{R: 200 * as, G: 100 * as, B: 0, A: 255}
	if got := mustPixel(t, dc, 0, 0); !colorCloseTo(got, want) {
		t.Errorf("GetPixel = %v, want %v", got, want)
	}
}

func TestDrawImageClipped(t *testing.T) {
	dc, s := newTestContext(t, 3, 3)
	img := patternImage(2, 2)

	if err := dc.DrawImage(img, -1, -1); err != nil {
		t.Fatal(err)
	}
	if got, want := mustPixel(t, dc, 0, 0), FromColor(img.NRGBAAt(1, 1)); got != want {
		t.Errorf("GetPixel(0, 0) = %v, want %v", got, want)
	}
	if got := mustPixel(t, dc, 1, 0); got != (Color{}) {
		t.Errorf("GetPixel(1, 0) = %v, want transparent", got)
	}
	if got, want := s.Dirty(), image.Rect(0, 0, 1, 1); got != want {
		t.Errorf("presented %v, want %v", got, want)
	}

	s.ResetDirty()
	if err := dc.DrawImage(img, 3, 0); err != nil {
		t.Fatal(err)
	}
	if s.Dirty() != (image.Rectangle{}) {
		t.Errorf("off-canvas draw presented %v", s.Dirty())
	}
}

func TestDrawImageScaled(t *testing.T) {
	dc, _ := newTestContext(t, 4, 4, WithRasterizer(ScaleRasterizer{Interpolator: xdraw.NearestNeighbor}))
	red := color.NRGBA{R: 255, A: 255}

	if err := dc.DrawImageScaled(solidImage(1, 1, red), 0, 0, 3, 2); err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			got := mustPixel(t, dc, float64(x), float64(y))
			if x < 3 && y < 2 {
				if !colorCloseTo(got, Color{255, 0, 0, 255}) {
					t.Errorf("GetPixel(%d, %d) = %v, want red", x, y, got)
				}
			} else if got != (Color{}) {
				t.Errorf("GetPixel(%d, %d) = %v, want transparent", x, y, got)
			}
		}
	}
}

func TestDrawImageFractionalOrigin(t *testing.T) {
	rr := &recordingRasterizer{}
	dc, s := newTestContext(t, 4, 4, WithRasterizer(rr))

	img := solidImage(2, 2, color.NRGBA{G: 255, A: 255})
	if err := dc.DrawImage(img, 0.5, 1.25); err != nil {
		t.Fatal(err)
	}
	if rr.w != 3 || rr.h != 3 {
		t.Errorf("rasterized at %dx%d, want 3x3", rr.w, rr.h)
	}
	if want := image.Rect(0, 0, 3, 3); rr.dr != want {
		t.Errorf("raster window = %v, want %v", rr.dr, want)
	}
	if got, want := s.Dirty(), image.Rect(0, 1, 3, 4); got != want {
		t.Errorf("presented %v, want %v", got, want)
	}
}

func TestDrawImageRect(t *testing.T) {
	img := patternImage(4, 4)

	t.Run("crop", func(t *testing.T) {
		dc, _ := newTestContext(t, 2, 2)
		if err := dc.DrawImageRect(img, 2, 1, 2, 2, 0, 0, 2, 2); err != nil {
			t.Fatal(err)
		}
		for y := 0; y < 2; y++ {
			for x := 0; x < 2; x++ {
				want := FromColor(img.NRGBAAt(2+x, 1+y))
				if got := mustPixel(t, dc, float64(x), float64(y)); got != want {
					t.Errorf("GetPixel(%d, %d) = %v, want %v", x, y, got, want)
				}
			}
		}
	})

	t.Run("source clipped to image", func(t *testing.T) {
		rr := &recordingRasterizer{}
		dc, _ := newTestContext(t, 8, 8, WithRasterizer(rr))
		if err := dc.DrawImageRect(img, 3, -1, 5, 3, 0, 0, 4, 4); err != nil {
			t.Fatal(err)
		}
		if want := image.Rect(3, 0, 4, 2); rr.sr != want {
			t.Errorf("source rect = %v, want %v", rr.sr, want)
		}
	})

	t.Run("empty source", func(t *testing.T) {
		rr := &recordingRasterizer{}
		dc, s := newTestContext(t, 2, 2, WithRasterizer(rr))
		for _, sw := range []float64{0, -1, math.NaN()} {
			if err := dc.DrawImageRect(img, 0, 0, sw, 1, 0, 0, 2, 2); err != nil {
				t.Fatal(err)
			}
		}
		if err := dc.DrawImageRect(img, 10, 10, 2, 2, 0, 0, 2, 2); err != nil {
			t.Fatal(err)
		}
		if rr.calls != 0 || s.Presents() != 0 {
			t.Errorf("empty source drew: %d rasterizations, %d presents", rr.calls, s.Presents())
		}
	})
}

func TestDrawImageEx(t *testing.T) {
	rr := &recordingRasterizer{}
	dc, _ := newTestContext(t, 8, 8, WithRasterizer(rr))
	img := patternImage(6, 4)

	sr := image.Rect(1, 1, 4, 3)
	if err := dc.DrawImageEx(img, DrawImageOptions{X: 2, Y: 2, SrcRect: &sr}); err != nil {
		t.Fatal(err)
	}
	if rr.sr != sr || rr.w != 3 || rr.h != 2 {
		t.Errorf("rasterized %v at %dx%d, want %v at 3x2", rr.sr, rr.w, rr.h, sr)
	}
	if got, want := mustPixel(t, dc, 2, 2), FromColor(img.NRGBAAt(1, 1)); got != want {
		t.Errorf("GetPixel(2, 2) = %v, want %v", got, want)
	}

	if err := dc.DrawImageEx(img, DrawImageOptions{DstWidth: 5}); err != nil {
		t.Fatal(err)
	}
	if rr.w != 5 || rr.h != 4 {
		t.Errorf("rasterized at %dx%d, want 5x4", rr.w, rr.h)
	}
}

func TestDrawImageNoOp(t *testing.T) {
	rr := &recordingRasterizer{}
	dc, s := newTestContext(t, 4, 4, WithRasterizer(rr))
	img := patternImage(2, 2)

	cases := []func() error{
		func() error { return dc.DrawImage(img, math.NaN(), 0) },
		func() error { return dc.DrawImage(img, 0, math.Inf(-1)) },
		func() error { return dc.DrawImageScaled(img, 0, 0, -2, 2) },
		func() error { return dc.DrawImageScaled(img, 0, 0, 2, 0) },
		func() error { return dc.DrawImageScaled(img, 0, 0, math.Inf(1), 2) },
		func() error { return dc.DrawImage(image.NewNRGBA(image.Rectangle{}), 0, 0) },
	}
	for i, op := range cases {
		if err := op(); err != nil {
			t.Errorf("case %d: error = %v, want nil", i, err)
		}
	}
	if rr.calls != 0 || s.Presents() != 0 {
		t.Errorf("no-op draws made %d rasterizations, %d presents", rr.calls, s.Presents())
	}
}

func TestDrawImageErrors(t *testing.T) {
	errRaster := errors.New("decoder failed")
	dc, s := newTestContext(t, 2, 2, WithRasterizer(&recordingRasterizer{err: errRaster}))

	if err := dc.DrawImage(nil, 0, 0); !errors.Is(err, ErrNilImage) {
		t.Errorf("DrawImage(nil) error = %v, want ErrNilImage", err)
	}
	if err := dc.DrawImageScaled(nil, 0, 0, 1, 1); !errors.Is(err, ErrNilImage) {
		t.Errorf("DrawImageScaled(nil) error = %v, want ErrNilImage", err)
	}
	if err := dc.DrawImage(patternImage(2, 2), 0, 0); !errors.Is(err, errRaster) {
		t.Errorf("DrawImage error = %v, want %v", err, errRaster)
	}
	if s.Presents() != 0 {
		t.Errorf("failed draw presented %d times", s.Presents())
	}
}

func TestDrawImageBlendMode(t *testing.T) {
	dc, _ := newTestContext(t, 1, 1)
	dc.SetFillStyle(RGBA(100, 100, 100, 255))
	_ = dc.FillRect(0, 0, 1, 1)
	if err := dc.SetBlendMode(BlendAdd); err != nil {
		t.Fatal(err)
	}
	if err := dc.DrawImage(solidImage(1, 1, color.NRGBA{R: 200, G: 200, B: 200, A: 255}), 0, 0); err != nil {
		t.Fatal(err)
	}
	if got, want := mustPixel(t, dc, 0, 0), (Color{300, 300, 300, 255}); got != want {
		t.Errorf("GetPixel = %v, want %v", got, want)
	}
}

func TestDrawImageSrcRectPastImage(t *testing.T) {
	rr := &recordingRasterizer{}
	dc, _ := newTestContext(t, 8, 8, WithRasterizer(rr))
	img := patternImage(4, 4)

	sr := image.Rect(2, 1, 10, 9)
	if err := dc.DrawImageEx(img, DrawImageOptions{SrcRect: &sr}); err != nil {
		t.Fatal(err)
	}
	if want := image.Rect(2, 1, 4, 4); rr.sr != want {
		t.Errorf("source rect = %v, want %v", rr.sr, want)
	}
	if rr.w != 2 || rr.h != 3 {
		t.Errorf("rasterized at %dx%d, want the clipped source size 2x3", rr.w, rr.h)
	}
	if got, want := mustPixel(t, dc, 1, 2), FromColor(img.NRGBAAt(3, 3)); got != want {
		t.Errorf("GetPixel(1, 2) = %v, want %v", got, want)
	}
}

func TestDrawImageHugeDestination(t *testing.T) {
	rr := &recordingRasterizer{}
	dc, s := newTestContext(t, 4, 4, WithRasterizer(rr))
	img := solidImage(2, 2, color.NRGBA{R: 10, G: 20, B: 30, A: 255})

	if err := dc.DrawImageScaled(img, -5e9, -5e9, 1e10, 1e10); err != nil {
		t.Fatalf("DrawImageScaled: %v", err)
	}
	if got, want := rr.dr, image.Rect(5e9, 5e9, 5e9+4, 5e9+4); got != want {
		t.Errorf("raster window = %v, want %v", got, want)
	}
	if got, want := s.Dirty(), image.Rect(0, 0, 4, 4); got != want {
		t.Errorf("presented %v, want %v", got, want)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got, want := mustPixel(t, dc, float64(x), float64(y)), (Color{10, 20, 30, 255}); got != want {
				t.Errorf("GetPixel(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}

	if err := dc.DrawImageScaled(img, -1e300, 0, 2e300, 4); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("DrawImageScaled over 2e300 pixels error = %v, want ErrInvalidDimensions", err)
	}
}
