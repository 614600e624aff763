package blend

import "testing"

func TestArithmeticComponents(t *testing.T) {
	tests := []struct {
		name     string
		mode     Mode
		src, dst float64
		as, ad   float64
		want     float64
	}{
		{"add opaque", Add, 200, 100, 1, 1, 300},
		{"add half source", Add, 200, 100, 0.5, 1, 200},
		{"subtract goes negative", Subtract, 200, 100, 1, 1, -100},
		{"subtract weighted", Subtract, 100, 200, 0.5, 0.5, 50},
		{"multiply opaque", Multiply, 255, 128, 1, 1, 128},
		{"multiply half", Multiply, 102, 255, 0.5, 1, 51 + 127.5},
		{"average opaque", Average, 100, 200, 1, 1, 150},
		{"average transparent source", Average, 100, 200, 0, 1, 200},
		{"screen black source", Screen, 0, 100, 1, 1, 100},
		{"screen white source", Screen, 255, 100, 1, 1, 255},
		{"screen mid", Screen, 51, 51, 1, 1, 255 - 204.0*204.0/255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Lookup(tt.mode)
			if err != nil {
				t.Fatalf("Lookup(%v): %v", tt.mode, err)
			}
			if got := f.Component(tt.src, tt.dst, tt.as, tt.ad); !near(got, tt.want) {
				t.Errorf("%v.Component(%v, %v, %v, %v) = %v, want %v",
					tt.mode, tt.src, tt.dst, tt.as, tt.ad, got, tt.want)
			}
		})
	}
}

func TestPiecewiseComponents(t *testing.T) {
	tests := []struct {
		name     string
		mode     Mode
		src, dst float64
		want     float64
	}{
		// overlay switches above 128
		{"overlay low", Overlay, 128, 100, 2 * 128 * 100 / 255.0},
		{"overlay high", Overlay, 200, 100, 255 - 2*55*155/255.0},
		// hard-light switches below 128
		{"hard-light low", HardLight, 100, 200, 2 * 100 * 200 / 255.0},
		{"hard-light boundary", HardLight, 128, 200, 255 - 2*127*55/255.0},
		// soft-light maps src to src/2+64 and switches on dst
		{"soft-light dark dst", SoftLight, 128, 100, 2 * 128 * 100 / 255.0},
		{"soft-light bright dst", SoftLight, 0, 200, 255 - 2*191*55/255.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, _ := Lookup(tt.mode)
			// Opaque source: the weighting reduces to the blended value.
			if got := f.Component(tt.src, tt.dst, 1, 1); !near(got, tt.want) {
				t.Errorf("%v.Component(%v, %v) = %v, want %v", tt.mode, tt.src, tt.dst, got, tt.want)
			}
		})
	}
}

// TestOverlayHardLightBoundary documents the single input on which the two
// piecewise modes disagree.
func TestOverlayHardLightBoundary(t *testing.T) {
	ov, _ := Lookup(Overlay)
	hl, _ := Lookup(HardLight)
	for _, src := range []float64{0, 64, 127, 129, 200, 255} {
		if a, b := ov.Component(src, 90, 1, 1), hl.Component(src, 90, 1, 1); !near(a, b) {
			t.Errorf("src=%v: overlay = %v, hard-light = %v", src, a, b)
		}
	}
	if a, b := ov.Component(128, 90, 1, 1), hl.Component(128, 90, 1, 1); near(a, b) {
		t.Errorf("src=128: overlay and hard-light both %v, want different branches", a)
	}
}

func TestWeightedTransparentSourceKeepsDestination(t *testing.T) {
	for _, m := range []Mode{Multiply, Average, Screen, Overlay, HardLight, SoftLight} {
		f, _ := Lookup(m)
		if got := f.Component(37, 90, 0, 1); !near(got, 90) {
			t.Errorf("%v.Component with As=0 = %v, want 90", m, got)
		}
	}
}
