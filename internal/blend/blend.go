// Package blend provides the blend mode table used by the HDR compositor.
//
// A mode selects a pair of pure functions. Component merges one color
// channel of an incoming source contribution into the stored destination
// value; Alpha merges the two coverage fractions. Components are on the
// 0-255 scale and are not clamped, so results may leave that range.
// Alphas are fractions in [0, 1].
//
// The table is built once at package initialization and lookups never
// allocate.
package blend

import (
	"errors"
	"fmt"

	"golang.org/x/text/cases"
)

// ErrUnknownMode is returned when a mode identifier or name is not in the table.
var ErrUnknownMode = errors.New("blend: unknown blend mode")

// Mode identifies a blend mode.
type Mode uint8

const (
	// Porter-Duff operators
	SourceOver      Mode = iota // S*As + D*Ad*(1-As) [default]
	Source                      // S*As
	Destination                 // D*Ad
	Clear                       // 0
	Xor                         // S*As*(1-Ad) + D*Ad*(1-As)
	SourceIn                    // S*As*Ad
	SourceOut                   // S*As*(1-Ad)
	SourceAtop                  // S*As*Ad + D*Ad*(1-As)
	DestinationOver             // D*Ad + S*As*(1-Ad)
	DestinationIn               // D*Ad*As
	DestinationOut              // D*Ad*(1-As)
	DestinationAtop             // D*Ad*As + S*As*(1-Ad)

	// Arithmetic and separable modes, all weighted as B*As + D*Ad*(1-As)
	// except Add and Subtract.
	Add       // D*Ad + S*As
	Subtract  // D*Ad - S*As
	Multiply  // S*D/255
	Average   // (S+D)/2
	Screen    // 255 - (255-S)*(255-D)/255
	Overlay   // piecewise on S > 128
	HardLight // piecewise on S < 128
	SoftLight // piecewise on D < 128, S mapped to S/2+64

	numModes
)

var modeNames = [numModes]string{
	SourceOver:      "source-over",
	Source:          "source",
	Destination:     "destination",
	Clear:           "clear",
	Xor:             "xor",
	SourceIn:        "source-in",
	SourceOut:       "source-out",
	SourceAtop:      "source-atop",
	DestinationOver: "destination-over",
	DestinationIn:   "destination-in",
	DestinationOut:  "destination-out",
	DestinationAtop: "destination-atop",
	Add:             "add",
	Subtract:        "subtract",
	Multiply:        "multiply",
	Average:         "average",
	Screen:          "screen",
	Overlay:         "overlay",
	HardLight:       "hard-light",
	SoftLight:       "soft-light",
}

// byName is the reverse of modeNames, keyed by case-folded name.
var byName = func() map[string]Mode {
	m := make(map[string]Mode, numModes)
	for i, name := range modeNames {
		m[name] = Mode(i)
	}
	return m
}()

// String returns the canonical name of the mode, as used by
// globalCompositeOperation-style APIs.
func (m Mode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Mode(%d)", m)
	}
	return modeNames[m]
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m < numModes
}

// Modes returns every known mode in declaration order.
func Modes() []Mode {
	out := make([]Mode, numModes)
	for i := range out {
		out[i] = Mode(i)
	}
	return out
}

// Parse resolves a mode name. Matching ignores case.
func Parse(name string) (Mode, error) {
	if m, ok := byName[cases.Fold().String(name)]; ok {
		return m, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// ComponentFunc merges one color channel. src and dst are on the 0-255
// scale; as and ad are the source and destination alpha fractions.
type ComponentFunc func(src, dst, as, ad float64) float64

// AlphaFunc merges the source and destination alpha fractions.
type AlphaFunc func(as, ad float64) float64

// Funcs is the function pair a mode selects.
type Funcs struct {
	Component ComponentFunc
	Alpha     AlphaFunc
}

var table = [numModes]Funcs{
	SourceOver:      {componentSourceOver, alphaUnion},
	Source:          {componentSource, alphaSource},
	Destination:     {componentDestination, alphaDestination},
	Clear:           {componentClear, alphaClear},
	Xor:             {componentXor, alphaXor},
	SourceIn:        {componentSourceIn, alphaIntersect},
	SourceOut:       {componentSourceOut, alphaSourceOut},
	SourceAtop:      {componentSourceAtop, alphaDestination},
	DestinationOver: {componentDestinationOver, alphaUnion},
	DestinationIn:   {componentDestinationIn, alphaIntersect},
	DestinationOut:  {componentDestinationOut, alphaDestinationOut},
	DestinationAtop: {componentDestinationAtop, alphaSource},
	Add:             {componentAdd, alphaUnion},
	Subtract:        {componentSubtract, alphaUnion},
	Multiply:        {componentMultiply, alphaUnion},
	Average:         {componentAverage, alphaUnion},
	Screen:          {componentScreen, alphaUnion},
	Overlay:         {componentOverlay, alphaUnion},
	HardLight:       {componentHardLight, alphaUnion},
	SoftLight:       {componentSoftLight, alphaUnion},
}

// Lookup returns the function pair for mode.
func Lookup(mode Mode) (Funcs, error) {
	if !mode.Valid() {
		return Funcs{}, fmt.Errorf("%w: %d", ErrUnknownMode, mode)
	}
	return table[mode], nil
}
