// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"context"
	"errors"
	"image"
	"log/slog"

	"github.com/gdamore/tcell/v2"
)

// ErrClosed is returned by operations on a closed surface.
var ErrClosed = errors.New("surface: closed")

// ErrInvalidDimensions is returned when a surface cannot hold the
// requested size.
var ErrInvalidDimensions = errors.New("surface: invalid dimensions")

// Surface is a presentation target with a native 8-bit RGBA buffer.
//
// Surfaces are NOT thread-safe. Each surface should be used from a single
// goroutine.
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// Pix returns the live pixel buffer: non-premultiplied RGBA, 4 bytes per
	// pixel, row-major, stride 4*Width.
	Pix() []uint8

	// Present shows the pixels inside r. Callers pass the rectangle they
	// changed; r is clipped to the surface bounds.
	Present(r image.Rectangle) error

	// Close releases the surface. Close is idempotent.
	Close() error
}

// Options configures surface creation through the registry.
type Options struct {
	// Width is the surface width in pixels.
	Width int

	// Height is the surface height in pixels.
	Height int

	// Screen is used by the terminal backend. If nil, the backend opens
	// the controlling terminal.
	Screen tcell.Screen

	// Logger receives debug output. Nil discards it.
	Logger *slog.Logger
}

// Bounds returns the rectangle covering a surface.
func Bounds(s Surface) image.Rectangle {
	return image.Rect(0, 0, s.Width(), s.Height())
}

func loggerOrDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.New(discardHandler{})
	}
	return l
}

// discardHandler discards all log records; Enabled reports false.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }
