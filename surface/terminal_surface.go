// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"log/slog"

	"github.com/gdamore/tcell/v2"
)

// upperHalf is drawn in every cell: the foreground paints the upper pixel,
// the background the lower one.
const upperHalf = '▀'

// TerminalSurface presents pixels on a tcell screen, two pixel rows per
// character cell. Alpha is composited over black before display.
type TerminalSurface struct {
	screen     tcell.Screen
	ownsScreen bool
	width      int
	height     int
	pix        []uint8
	logger     *slog.Logger
	closed     bool
}

// NewTerminalSurface creates a surface of width x height pixels drawn on
// screen. The screen must already be initialized; it is not finalized by
// Close.
func NewTerminalSurface(screen tcell.Screen, width, height int) (*TerminalSurface, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &TerminalSurface{
		screen: screen,
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*4),
		logger: loggerOrDiscard(nil),
	}, nil
}

// openTerminalSurface is the registry factory. It opens and owns the
// screen when opts.Screen is nil. Zero dimensions take the terminal size.
func openTerminalSurface(opts Options) (Surface, error) {
	screen := opts.Screen
	owns := false
	if screen == nil {
		var err error
		if screen, err = tcell.NewScreen(); err != nil {
			return nil, err
		}
		if err := screen.Init(); err != nil {
			return nil, err
		}
		owns = true
	}

	w, h := opts.Width, opts.Height
	if w <= 0 || h <= 0 {
		cols, rows := screen.Size()
		w, h = cols, rows*2
	}

	s, err := NewTerminalSurface(screen, w, h)
	if err != nil {
		if owns {
			screen.Fini()
		}
		return nil, err
	}
	s.ownsScreen = owns
	s.logger = loggerOrDiscard(opts.Logger)
	return s, nil
}

// Width returns the surface width in pixels.
func (s *TerminalSurface) Width() int {
	return s.width
}

// Height returns the surface height in pixels.
func (s *TerminalSurface) Height() int {
	return s.height
}

// Pix returns the live pixel buffer.
func (s *TerminalSurface) Pix() []uint8 {
	return s.pix
}

// Screen returns the underlying tcell screen.
func (s *TerminalSurface) Screen() tcell.Screen {
	return s.screen
}

// Present redraws every cell that overlaps r and shows the screen.
func (s *TerminalSurface) Present(r image.Rectangle) error {
	if s.closed {
		return ErrClosed
	}
	r = r.Intersect(image.Rect(0, 0, s.width, s.height))
	if r.Empty() {
		return nil
	}

	for cy := r.Min.Y / 2; cy < (r.Max.Y+1)/2; cy++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			top := s.cellColor(x, cy*2)
			bottom := s.cellColor(x, cy*2+1)
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			s.screen.SetContent(x, cy, upperHalf, nil, style)
		}
	}
	s.screen.Show()
	s.logger.Debug("surface: terminal present", "rect", r)
	return nil
}

// cellColor returns pixel (x, y) composited over black. Rows past the
// bottom edge are black.
func (s *TerminalSurface) cellColor(x, y int) tcell.Color {
	if y >= s.height {
		return tcell.NewRGBColor(0, 0, 0)
	}
	i := (y*s.width + x) * 4
	a := int32(s.pix[i+3])
	return tcell.NewRGBColor(
		int32(s.pix[i])*a/255,
		int32(s.pix[i+1])*a/255,
		int32(s.pix[i+2])*a/255,
	)
}

// Close releases the surface and finalizes the screen if the surface
// opened it.
func (s *TerminalSurface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if s.ownsScreen {
		s.screen.Fini()
	}
	return nil
}

var _ Surface = (*TerminalSurface)(nil)
