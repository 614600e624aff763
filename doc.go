// Package hdr2d provides a high dynamic range compositing context for 2D
// raster images.
//
// # Overview
//
// A Context keeps a float32 RGBA buffer whose values are not limited to
// 0-255. Pixel, rectangle and image operations merge into that buffer with
// one of twenty Porter-Duff style blend modes. After every mutation the
// touched rectangle is tone-mapped into the 8-bit buffer of a
// [surface.Surface] and presented.
//
// # Quick Start
//
//	import "github.com/gogpu/hdr2d"
//
//	// Create a context (dc = drawing context convention)
//	dc, err := hdr2d.NewContext(256, 256)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer dc.Close()
//
//	// Additive light: overlapping areas go above 255
//	dc.SetBlendMode(hdr2d.BlendAdd)
//	dc.SetFillStyleString("rgb(255, 128, 0)")
//	dc.FillRect(0, 0, 160, 160)
//	dc.FillRect(96, 96, 160, 160)
//
//	// Bring the doubled values back into display range
//	rs := hdr2d.DefaultRanges()
//	rs[hdr2d.ChannelR] = hdr2d.Range{Low: 0, High: 510}
//	dc.SetRanges(rs)
//	dc.Invalidate()
//
//	dc.Surface().(*surface.ImageSurface).SavePNG("out.png")
//
// # Color Scale
//
// Colors, buffer values and ranges use the 0-255 scale for every channel,
// alpha included. Blend functions see alphas as fractions in [0, 1]:
// the source alpha is Color.A * GlobalAlpha / 255 and the destination
// alpha is the stored A / 255.
//
// # Tone Mapping
//
// Each channel has a [Range]. A stored value v is displayed as
//
//	(v - Low) / (High - Low) * 255
//
// clamped to a byte. Changing a range never touches stored values; call
// [Context.Invalidate] to redisplay.
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down.
// SetPixel and GetPixel round to the nearest pixel. Rectangles cover
// [floor(x), ceil(x+w)) and are clipped to the context.
//
// # Concurrency
//
// A Context is not safe for concurrent use. [WithWorkers] splits region
// operations into row bands run on a worker pool; the results are
// identical to the single goroutine path.
package hdr2d
