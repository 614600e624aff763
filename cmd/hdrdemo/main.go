// Command hdrdemo composites a small HDR scene and presents it on a surface
// backend.
package main

import (
	"flag"
	"image"
	"image/color"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gogpu/hdr2d"
	"github.com/gogpu/hdr2d/surface"
)

func main() {
	var (
		width     = flag.Int("width", 320, "surface width (0 = terminal size)")
		height    = flag.Int("height", 240, "surface height (0 = terminal size)")
		backend   = flag.String("backend", "image", "surface backend: image or terminal")
		output    = flag.String("output", "hdr.png", "output file for the image backend")
		workers   = flag.Int("workers", 1, "row-band workers (0 = GOMAXPROCS)")
		resampler = flag.String("rasterizer", "scale", "image rasterizer: scale or resize")
		exposure  = flag.Float64("high", 510, "upper bound of the RGB tone map range")
		hold      = flag.Duration("hold", 3*time.Second, "how long the terminal backend shows the result")
		verbose   = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		hdr2d.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	s, err := surface.NewSurfaceByName(*backend, surface.Options{
		Width:  *width,
		Height: *height,
		Logger: hdr2d.Logger(),
	})
	if err != nil {
		log.Fatalf("Failed to open surface: %v", err)
	}
	defer s.Close()

	opts := []hdr2d.ContextOption{hdr2d.WithWorkers(*workers)}
	if *resampler == "resize" {
		opts = append(opts, hdr2d.WithRasterizer(hdr2d.NewResizeRasterizer()))
	}
	dc, err := hdr2d.NewContextForSurface(s, opts...)
	if err != nil {
		log.Fatalf("Failed to create context: %v", err)
	}
	defer dc.Close()

	rs := hdr2d.DefaultRanges()
	for _, ch := range []hdr2d.Channel{hdr2d.ChannelR, hdr2d.ChannelG, hdr2d.ChannelB} {
		rs[ch] = hdr2d.Range{Low: 0, High: *exposure}
	}
	if err := dc.SetRanges(rs); err != nil {
		log.Fatalf("Invalid range: %v", err)
	}

	if err := drawScene(dc); err != nil {
		log.Fatalf("Failed to draw: %v", err)
	}

	switch s := s.(type) {
	case *surface.ImageSurface:
		if err := s.SavePNG(*output); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
		log.Printf("Demo saved to %s (%dx%d)\n", *output, s.Width(), s.Height())
	default:
		time.Sleep(*hold)
	}
}

// drawScene layers additive light over a gradient. Overlapping lights
// exceed 255 and are only brought back into range by the tone map.
func drawScene(dc *hdr2d.Context) error {
	w, h := float64(dc.Width()), float64(dc.Height())

	steps := 32
	for i := 0; i < steps; i++ {
		t := float64(i) / float64(steps)
		dc.SetFillStyle(hdr2d.RGB(20+t*60, 30+t*40, 80+t*40))
		if err := dc.FillRect(0, h*t, w, h/float64(steps)+1); err != nil {
			return err
		}
	}

	if err := dc.SetBlendMode(hdr2d.BlendAdd); err != nil {
		return err
	}
	lights := []string{"rgba(255, 80, 40, 0.9)", "hsl(120, 80%, 50%)", "#3060ff"}
	for i, style := range lights {
		dc.SetFillStyleString(style)
		x := w * (0.15 + 0.2*float64(i))
		if err := dc.FillRect(x, h*0.2, w*0.4, h*0.5); err != nil {
			return err
		}
	}

	if err := dc.SetBlendModeName("screen"); err != nil {
		return err
	}
	dc.SetGlobalAlpha(0.75)
	if err := dc.DrawImageScaled(checkerboard(8, 8), w*0.6, h*0.6, w*0.35, h*0.35); err != nil {
		return err
	}
	dc.SetGlobalAlpha(1)

	if err := dc.SetBlendMode(hdr2d.BlendSourceOver); err != nil {
		return err
	}
	return dc.ClearRect(0, 0, w*0.1, h*0.1)
}

func checkerboard(cols, rows int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, cols, rows))
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			c := color.NRGBA{R: 240, G: 240, B: 240, A: 255}
			if (x+y)%2 == 1 {
				c = color.NRGBA{R: 40, G: 40, B: 40, A: 200}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}
