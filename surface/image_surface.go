// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"
)

// ImageSurface is an in-memory surface backed by an *image.NRGBA.
//
// Present does not display anything; it records how many times it was
// called and the union of presented rectangles, which makes the surface
// useful for offscreen rendering and tests.
//
// Example:
//
//	s := surface.NewImageSurface(320, 240)
//	defer s.Close()
//	// ... composite into s through an hdr2d.Context ...
//	_ = s.SavePNG("out.png")
type ImageSurface struct {
	width  int
	height int
	img    *image.NRGBA
	logger *slog.Logger

	presents int
	dirty    image.Rectangle

	// closed tracks if Close has been called
	closed bool
}

// NewImageSurface creates a surface with its own buffer, initialized to
// transparent black. Non-positive dimensions are raised to 1.
func NewImageSurface(width, height int) *ImageSurface {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	return &ImageSurface{
		width:  width,
		height: height,
		img:    image.NewNRGBA(image.Rect(0, 0, width, height)),
		logger: loggerOrDiscard(nil),
	}
}

// NewImageSurfaceFromImage creates a surface that writes directly into
// img. The image must start at the origin and have a packed stride; its
// existing contents are left as they are.
func NewImageSurfaceFromImage(img *image.NRGBA) (*ImageSurface, error) {
	b := img.Bounds()
	if b.Min != (image.Point{}) || b.Empty() || img.Stride != 4*b.Dx() {
		return nil, fmt.Errorf("%w: image bounds %v stride %d", ErrInvalidDimensions, b, img.Stride)
	}
	return &ImageSurface{
		width:  b.Dx(),
		height: b.Dy(),
		img:    img,
		logger: loggerOrDiscard(nil),
	}, nil
}

// SetLogger sets the logger used for presentation diagnostics.
func (s *ImageSurface) SetLogger(l *slog.Logger) {
	s.logger = loggerOrDiscard(l)
}

// Width returns the surface width.
func (s *ImageSurface) Width() int {
	return s.width
}

// Height returns the surface height.
func (s *ImageSurface) Height() int {
	return s.height
}

// Pix returns the live pixel buffer.
func (s *ImageSurface) Pix() []uint8 {
	return s.img.Pix
}

// Present records r as presented.
func (s *ImageSurface) Present(r image.Rectangle) error {
	if s.closed {
		return ErrClosed
	}
	r = r.Intersect(s.img.Bounds())
	s.presents++
	s.dirty = s.dirty.Union(r)
	s.logger.Debug("surface: present", "rect", r, "count", s.presents)
	return nil
}

// Presents returns the number of Present calls so far.
func (s *ImageSurface) Presents() int {
	return s.presents
}

// Dirty returns the union of all presented rectangles since the last
// ResetDirty.
func (s *ImageSurface) Dirty() image.Rectangle {
	return s.dirty
}

// ResetDirty clears the presented rectangle union.
func (s *ImageSurface) ResetDirty() {
	s.dirty = image.Rectangle{}
}

// Image returns the backing image. Writes to it are visible to the surface.
func (s *ImageSurface) Image() *image.NRGBA {
	return s.img
}

// Snapshot returns a copy of the current contents.
func (s *ImageSurface) Snapshot() *image.NRGBA {
	out := image.NewNRGBA(s.img.Bounds())
	copy(out.Pix, s.img.Pix)
	return out
}

// At returns the color of one pixel.
func (s *ImageSurface) At(x, y int) color.NRGBA {
	return s.img.NRGBAAt(x, y)
}

// Clear fills the whole buffer with c without presenting. NRGBA colors are
// stored unchanged, translucent ones included.
func (s *ImageSurface) Clear(c color.Color) {
	if s.closed {
		return
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	b := s.img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		i := s.img.PixOffset(b.Min.X, y)
		row := s.img.Pix[i : i+b.Dx()*4]
		for j := 0; j < len(row); j += 4 {
			row[j+0] = n.R
			row[j+1] = n.G
			row[j+2] = n.B
			row[j+3] = n.A
		}
	}
}

// SavePNG writes the current contents to a PNG file.
func (s *ImageSurface) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, s.img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Close releases the surface.
func (s *ImageSurface) Close() error {
	s.closed = true
	return nil
}

var _ Surface = (*ImageSurface)(nil)
