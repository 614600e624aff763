package hdr2d

import (
	"fmt"
	"math"
)

// Channel selects one of the four color channels.
type Channel int

// Channels in storage order.
const (
	ChannelR Channel = iota
	ChannelG
	ChannelB
	ChannelA
)

// String returns the single-letter channel name.
func (c Channel) String() string {
	switch c {
	case ChannelR:
		return "R"
	case ChannelG:
		return "G"
	case ChannelB:
		return "B"
	case ChannelA:
		return "A"
	default:
		return fmt.Sprintf("Channel(%d)", int(c))
	}
}

func (c Channel) valid() bool {
	return c >= ChannelR && c <= ChannelA
}

// Range is the HDR input interval that the tone mapper stretches onto
// 0-255 for one channel.
type Range struct {
	Low, High float64
}

// DefaultRange maps HDR values one to one onto display values.
var DefaultRange = Range{Low: 0, High: 255}

// Validate returns ErrDegenerateRange when High == Low or either bound is
// NaN or infinite.
func (r Range) Validate() error {
	if math.IsNaN(r.Low) || math.IsNaN(r.High) || math.IsInf(r.Low, 0) || math.IsInf(r.High, 0) {
		return fmt.Errorf("%w: bounds [%v, %v] are not finite", ErrDegenerateRange, r.Low, r.High)
	}
	if r.High == r.Low {
		return fmt.Errorf("%w: low and high are both %v", ErrDegenerateRange, r.Low)
	}
	return nil
}

// Map returns (v - Low) / (High - Low) * 255 without clamping.
func (r Range) Map(v float64) float64 {
	return (v - r.Low) / (r.High - r.Low) * 255
}

// Ranges holds one Range per channel, indexed by Channel.
// It is a value type; copies never share state.
type Ranges [4]Range

// DefaultRanges returns {0, 255} for every channel.
func DefaultRanges() Ranges {
	return Ranges{DefaultRange, DefaultRange, DefaultRange, DefaultRange}
}

// Validate checks every channel.
func (rs Ranges) Validate() error {
	for i, r := range rs {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("channel %v: %w", Channel(i), err)
		}
	}
	return nil
}

// Map tone-maps a color channel by channel. The result is not clamped.
func (rs Ranges) Map(c Color) Color {
	return Color{
		R: rs[ChannelR].Map(c.R),
		G: rs[ChannelG].Map(c.G),
		B: rs[ChannelB].Map(c.B),
		A: rs[ChannelA].Map(c.A),
	}
}
