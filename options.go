package hdr2d

// ContextOption configures a Context during creation.
//
// Example:
//
//	// Defaults: bilinear rasterizer, single goroutine, {0, 255} ranges
//	dc, err := hdr2d.NewContext(800, 600)
//
//	// Row-parallel region operations and a custom alpha range
//	rs := hdr2d.DefaultRanges()
//	rs[hdr2d.ChannelA] = hdr2d.Range{Low: 0, High: 510}
//	dc, err := hdr2d.NewContext(800, 600, hdr2d.WithWorkers(0), hdr2d.WithRanges(rs))
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	rasterizer Rasterizer
	workers    int
	ranges     Ranges
	mode       BlendMode
}

// defaultOptions returns the default context options.
func defaultOptions() contextOptions {
	return contextOptions{
		rasterizer: ScaleRasterizer{},
		workers:    1,
		ranges:     DefaultRanges(),
		mode:       BlendSourceOver,
	}
}

// WithRasterizer sets the rasterizer DrawImage uses to bring source images
// to destination size. A nil rasterizer keeps the default.
func WithRasterizer(r Rasterizer) ContextOption {
	return func(o *contextOptions) {
		if r != nil {
			o.rasterizer = r
		}
	}
}

// WithWorkers splits FillRect, ClearRect, DrawImage and tone mapping into
// row bands processed by n goroutines. n == 0 uses GOMAXPROCS; n == 1
// (the default) keeps all work on the calling goroutine.
func WithWorkers(n int) ContextOption {
	return func(o *contextOptions) {
		o.workers = n
	}
}

// WithRanges sets the initial tone map ranges. NewContext fails with
// ErrDegenerateRange if any of them is degenerate.
func WithRanges(rs Ranges) ContextOption {
	return func(o *contextOptions) {
		o.ranges = rs
	}
}

// WithBlendMode sets the initial blend mode. NewContext fails with
// ErrUnknownBlendMode if the mode is not in the table.
func WithBlendMode(m BlendMode) ContextOption {
	return func(o *contextOptions) {
		o.mode = m
	}
}
