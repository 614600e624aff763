// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides the 8-bit presentation targets of hdr2d.
//
// A Surface owns a row-major RGBA byte buffer. The compositing context
// tone-maps HDR values into that buffer and then asks the surface to
// present the rectangle it touched. The context never owns the buffer; it
// only writes into it.
//
// # Surface Types
//
//   - ImageSurface: in-memory *image.NRGBA, used for offscreen rendering,
//     tests and PNG output
//   - TerminalSurface: draws two pixel rows per character cell on a
//     tcell screen
//
// # Registry
//
// Backends register a factory under a name and a priority:
//
//	func init() {
//	    surface.Register("mybackend", 50, factory, available)
//	}
//
// and callers pick one by name or let the registry choose:
//
//	s, err := surface.NewSurfaceByName("terminal", surface.Options{Width: 80, Height: 48})
//	s, err := surface.NewSurface(surface.Options{Width: 320, Height: 240})
package surface
