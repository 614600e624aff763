package hdr2d

import (
	"fmt"
	"io"
	"math"

	"github.com/gogpu/hdr2d/internal/blend"
	"github.com/gogpu/hdr2d/internal/csscolor"
	"github.com/gogpu/hdr2d/internal/parallel"
	"github.com/gogpu/hdr2d/surface"
)

// Context is an HDR compositing context.
//
// It owns a float Buffer and composites into it with the current blend
// mode and global alpha. After every mutation it tone-maps the touched
// rectangle into its surface's 8-bit buffer and presents it.
//
// A Context is not safe for concurrent use.
type Context struct {
	width  int
	height int
	buf    *Buffer

	surface     surface.Surface
	ownsSurface bool

	// Compositing state
	globalAlpha float64
	mode        BlendMode
	funcs       blend.Funcs
	ranges      Ranges

	// Fill style. When fillString is set and fillReady is false, the
	// string is parsed on the next FillRect.
	fill       Color
	fillString string
	fillReady  bool

	rasterizer Rasterizer
	pool       *parallel.Pool

	// Lifecycle
	closed bool
}

// Ensure Context implements io.Closer
var _ io.Closer = (*Context)(nil)

// NewContext creates a context with an in-memory surface.
// The HDR buffer and the surface start as transparent black.
//
//	dc, err := hdr2d.NewContext(320, 240)
//	if err != nil { ... }
//	defer dc.Close()
//	img := dc.Surface().(*surface.ImageSurface).Image()
func NewContext(width, height int, opts ...ContextOption) (*Context, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	c, err := NewContextForSurface(surface.NewImageSurface(width, height), opts...)
	if err != nil {
		return nil, err
	}
	c.ownsSurface = true
	return c, nil
}

// NewContextForSurface creates a context that presents to s. The HDR
// buffer takes the surface size. The surface stays owned by the caller;
// its current pixels are left untouched until the first operation.
func NewContextForSurface(s surface.Surface, opts ...ContextOption) (*Context, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	w, h := s.Width(), s.Height()
	if len(s.Pix()) != w*h*4 {
		return nil, fmt.Errorf("%w: surface %dx%d has %d bytes", ErrInvalidDimensions, w, h, len(s.Pix()))
	}
	buf, err := NewBuffer(w, h)
	if err != nil {
		return nil, err
	}
	if err := options.ranges.Validate(); err != nil {
		return nil, err
	}
	funcs, err := blend.Lookup(options.mode)
	if err != nil {
		return nil, err
	}

	c := &Context{
		width:       w,
		height:      h,
		buf:         buf,
		surface:     s,
		globalAlpha: 1,
		mode:        options.mode,
		funcs:       funcs,
		ranges:      options.ranges,
		fill:        Black,
		fillReady:   true,
		rasterizer:  options.rasterizer,
	}
	if options.workers != 1 {
		c.pool = parallel.NewPool(options.workers)
	}

	Logger().Debug("hdr2d: context created",
		"width", w, "height", h,
		"mode", c.mode.String(),
		"workers", c.pool.Workers(),
		"rasterizer", fmt.Sprintf("%T", c.rasterizer))
	return c, nil
}

// Close releases the worker pool and, for contexts made by NewContext, the
// surface. Close is idempotent.
func (c *Context) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.pool.Close()
	if c.ownsSurface {
		return c.surface.Close()
	}
	return nil
}

// Width returns the width of the context in pixels.
func (c *Context) Width() int {
	return c.width
}

// Height returns the height of the context in pixels.
func (c *Context) Height() int {
	return c.height
}

// Surface returns the presentation surface.
func (c *Context) Surface() surface.Surface {
	return c.surface
}

// Buffer returns the live HDR buffer. Writes to it are not presented until
// the next Invalidate.
func (c *Context) Buffer() *Buffer {
	return c.buf
}

// ImageDataHDR returns a copy of the HDR region at (x, y) of size w x h,
// clipped to the context. Requesting the whole context returns the live
// buffer; treat it as read-only.
func (c *Context) ImageDataHDR(x, y, w, h int) *Buffer {
	return c.buf.ExtractRegion(x, y, w, h)
}

// GlobalAlpha returns the alpha multiplier applied to every operation.
func (c *Context) GlobalAlpha() float64 {
	return c.globalAlpha
}

// SetGlobalAlpha sets the alpha multiplier. Values outside [0, 1] and NaN
// are ignored, leaving the previous value in place.
func (c *Context) SetGlobalAlpha(a float64) {
	if math.IsNaN(a) || a < 0 || a > 1 {
		Logger().Debug("hdr2d: ignoring global alpha", "value", a)
		return
	}
	c.globalAlpha = a
}

// BlendMode returns the current blend mode.
func (c *Context) BlendMode() BlendMode {
	return c.mode
}

// SetBlendMode selects the blend mode for subsequent operations.
func (c *Context) SetBlendMode(m BlendMode) error {
	funcs, err := blend.Lookup(m)
	if err != nil {
		return err
	}
	c.mode = m
	c.funcs = funcs
	return nil
}

// SetBlendModeName selects a blend mode by name, e.g. "source-over".
func (c *Context) SetBlendModeName(name string) error {
	m, err := ParseBlendMode(name)
	if err != nil {
		return err
	}
	return c.SetBlendMode(m)
}

// Range returns the tone map range of one channel. Like indexing Ranges,
// it panics if ch is not a valid Channel.
func (c *Context) Range(ch Channel) Range {
	return c.ranges[ch]
}

// SetRange sets the tone map range of one channel. Stored HDR values are
// not touched; only the next tone map pass sees the change.
func (c *Context) SetRange(ch Channel, r Range) error {
	if !ch.valid() {
		return fmt.Errorf("hdr2d: unknown channel %v", ch)
	}
	if err := r.Validate(); err != nil {
		return fmt.Errorf("channel %v: %w", ch, err)
	}
	c.ranges[ch] = r
	return nil
}

// Ranges returns a copy of all four tone map ranges.
func (c *Context) Ranges() Ranges {
	return c.ranges
}

// SetRanges replaces all four ranges, or none if any is degenerate.
func (c *Context) SetRanges(rs Ranges) error {
	if err := rs.Validate(); err != nil {
		return err
	}
	c.ranges = rs
	return nil
}

// SetFillStyle sets the color used by FillRect.
func (c *Context) SetFillStyle(col Color) {
	c.fill = col
	c.fillString = ""
	c.fillReady = true
}

// SetFillStyleString sets a CSS color string used by FillRect. The string
// is parsed on first use; an invalid string makes FillRect fail with
// ErrInvalidColor.
func (c *Context) SetFillStyleString(s string) {
	c.fillString = s
	c.fillReady = false
}

// FillStyle returns the resolved fill color, parsing a pending string.
func (c *Context) FillStyle() (Color, error) {
	if c.fillReady {
		return c.fill, nil
	}
	p, err := csscolor.Parse(c.fillString)
	if err != nil {
		return Color{}, err
	}
	Logger().Debug("hdr2d: parsed fill style", "style", c.fillString)
	c.fill = Color{R: p.R, G: p.G, B: p.B, A: p.A}
	c.fillReady = true
	return c.fill, nil
}

func (c *Context) checkOpen() error {
	if c.closed {
		return ErrClosed
	}
	return nil
}

