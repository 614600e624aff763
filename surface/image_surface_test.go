// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// TestNewImageSurface tests surface creation.
func TestNewImageSurface(t *testing.T) {
	s := NewImageSurface(100, 50)
	defer s.Close()

	if s.Width() != 100 {
		t.Errorf("Width() = %d, want 100", s.Width())
	}
	if s.Height() != 50 {
		t.Errorf("Height() = %d, want 50", s.Height())
	}
	if got := len(s.Pix()); got != 100*50*4 {
		t.Errorf("len(Pix()) = %d, want %d", got, 100*50*4)
	}
}

// TestNewImageSurfaceInvalidSize tests handling of invalid dimensions.
func TestNewImageSurfaceInvalidSize(t *testing.T) {
	s := NewImageSurface(0, -3)
	defer s.Close()

	if s.Width() != 1 || s.Height() != 1 {
		t.Errorf("expected 1x1, got %dx%d", s.Width(), s.Height())
	}
}

func TestNewImageSurfaceFromImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	s, err := NewImageSurfaceFromImage(img)
	if err != nil {
		t.Fatalf("NewImageSurfaceFromImage: %v", err)
	}

	s.Pix()[0] = 42
	if img.Pix[0] != 42 {
		t.Error("surface should write into the provided image")
	}

	sub := image.NewNRGBA(image.Rect(0, 0, 8, 8)).SubImage(image.Rect(2, 2, 4, 4)).(*image.NRGBA)
	if _, err := NewImageSurfaceFromImage(sub); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("sub-image error = %v, want ErrInvalidDimensions", err)
	}
}

func TestImageSurfacePresent(t *testing.T) {
	s := NewImageSurface(10, 10)
	defer s.Close()

	if err := s.Present(image.Rect(1, 1, 3, 3)); err != nil {
		t.Fatalf("Present: %v", err)
	}
	if err := s.Present(image.Rect(8, 8, 20, 20)); err != nil {
		t.Fatalf("Present: %v", err)
	}

	if s.Presents() != 2 {
		t.Errorf("Presents() = %d, want 2", s.Presents())
	}
	if want := image.Rect(1, 1, 10, 10); s.Dirty() != want {
		t.Errorf("Dirty() = %v, want %v", s.Dirty(), want)
	}

	s.ResetDirty()
	if !s.Dirty().Empty() {
		t.Errorf("Dirty() after reset = %v, want empty", s.Dirty())
	}
}

func TestImageSurfaceClosed(t *testing.T) {
	s := NewImageSurface(2, 2)
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if err := s.Present(image.Rect(0, 0, 1, 1)); !errors.Is(err, ErrClosed) {
		t.Errorf("Present after Close = %v, want ErrClosed", err)
	}
}

// TestImageSurfaceClear tests the Clear operation.
func TestImageSurfaceClear(t *testing.T) {
	s := NewImageSurface(4, 4)
	defer s.Close()

	s.Clear(color.NRGBA{R: 255, A: 255})

	snap := s.Snapshot()
	if got := snap.NRGBAAt(3, 3); got != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("pixel after Clear = %v, want opaque red", got)
	}

	// Snapshot is a copy.
	snap.Pix[0] = 0
	if s.At(0, 0).R != 255 {
		t.Error("modifying snapshot changed the surface")
	}
}

func TestImageSurfaceClearTranslucent(t *testing.T) {
	tests := []color.NRGBA{
		{R: 9, G: 9, B: 9, A: 9},
		{R: 200, G: 100, B: 50, A: 1},
		{R: 255, G: 255, B: 255, A: 0},
	}
	for _, c := range tests {
		s := NewImageSurface(3, 2)
		s.Clear(c)
		for y := 0; y < 2; y++ {
			for x := 0; x < 3; x++ {
				if got := s.At(x, y); got != c {
					t.Errorf("Clear(%v): pixel (%d, %d) = %v", c, x, y, got)
				}
			}
		}
		s.Close()
	}
}

func TestImageSurfaceSavePNG(t *testing.T) {
	s := NewImageSurface(3, 2)
	defer s.Close()
	s.Clear(color.NRGBA{G: 200, A: 255})

	path := filepath.Join(t.TempDir(), "out.png")
	if err := s.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Errorf("decoded bounds = %v, want 3x2", b)
	}
	_, g, _, _ := img.At(1, 1).RGBA()
	if g>>8 != 200 {
		t.Errorf("decoded green = %d, want 200", g>>8)
	}
}
