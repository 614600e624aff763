package hdr2d

import "github.com/gogpu/hdr2d/internal/blend"

// BlendMode selects how new color contributions merge with stored pixels.
type BlendMode = blend.Mode

// Blend modes. Names in parentheses are accepted by ParseBlendMode.
const (
	// BlendSourceOver draws the source over the destination (source-over). Default.
	BlendSourceOver = blend.SourceOver
	// BlendSource replaces the destination (source).
	BlendSource = blend.Source
	// BlendDestination keeps the destination (destination).
	BlendDestination = blend.Destination
	// BlendClear clears to zero (clear).
	BlendClear = blend.Clear
	// BlendXor keeps the non-overlapping parts (xor).
	BlendXor = blend.Xor
	// BlendSourceIn shows the source where the destination is (source-in).
	BlendSourceIn = blend.SourceIn
	// BlendSourceOut shows the source where the destination is not (source-out).
	BlendSourceOut = blend.SourceOut
	// BlendSourceAtop draws the source over the destination, keeping destination alpha (source-atop).
	BlendSourceAtop = blend.SourceAtop
	// BlendDestinationOver draws the destination over the source (destination-over).
	BlendDestinationOver = blend.DestinationOver
	// BlendDestinationIn keeps the destination where the source is (destination-in).
	BlendDestinationIn = blend.DestinationIn
	// BlendDestinationOut keeps the destination where the source is not (destination-out).
	BlendDestinationOut = blend.DestinationOut
	// BlendDestinationAtop draws the destination over the source, keeping source alpha (destination-atop).
	BlendDestinationAtop = blend.DestinationAtop
	// BlendAdd adds weighted source and destination, unclamped (add).
	BlendAdd = blend.Add
	// BlendSubtract subtracts the weighted source, unclamped (subtract).
	BlendSubtract = blend.Subtract
	// BlendMultiply multiplies (multiply).
	BlendMultiply = blend.Multiply
	// BlendAverage averages (average).
	BlendAverage = blend.Average
	// BlendScreen screens (screen).
	BlendScreen = blend.Screen
	// BlendOverlay overlays (overlay).
	BlendOverlay = blend.Overlay
	// BlendHardLight applies hard light (hard-light).
	BlendHardLight = blend.HardLight
	// BlendSoftLight applies soft light (soft-light).
	BlendSoftLight = blend.SoftLight
)

// ParseBlendMode resolves a blend mode name such as "source-over" or
// "hard-light". Matching ignores case. Unknown names return
// ErrUnknownBlendMode.
func ParseBlendMode(name string) (BlendMode, error) {
	return blend.Parse(name)
}

// BlendModes lists every supported mode.
func BlendModes() []BlendMode {
	return blend.Modes()
}
