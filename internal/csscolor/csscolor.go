// Package csscolor parses CSS color strings into 0-255 scale RGBA values.
//
// Supported forms: named colors, "transparent", #rgb, #rgba, #rrggbb,
// #rrggbbaa, rgb(), rgba(), hsl() and hsla(). Components of rgb() may be
// numbers or percentages. Alpha may be a number in [0, 1] or a percentage.
package csscolor

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

// ErrSyntax is returned for strings that are not valid CSS colors.
var ErrSyntax = errors.New("csscolor: invalid color")

// RGBA is a parsed color. R, G, B and A are on the 0-255 scale.
type RGBA struct {
	R, G, B, A float64
}

// Parse parses a CSS color string.
func Parse(s string) (RGBA, error) {
	s = cases.Fold().String(strings.TrimSpace(s))
	if s == "" {
		return RGBA{}, fmt.Errorf("%w: empty string", ErrSyntax)
	}

	switch {
	case s == "transparent":
		return RGBA{}, nil
	case s[0] == '#':
		return parseHex(s)
	case strings.HasSuffix(s, ")"):
		return parseFunc(s)
	}

	if c, ok := colornames.Map[s]; ok {
		return RGBA{R: float64(c.R), G: float64(c.G), B: float64(c.B), A: float64(c.A)}, nil
	}
	return RGBA{}, fmt.Errorf("%w: %q", ErrSyntax, s)
}

func parseHex(s string) (RGBA, error) {
	digits := s[1:]
	alpha := 255.0

	// colorful.Hex handles #rgb and #rrggbb; the alpha forms are split off.
	switch len(digits) {
	case 4:
		a, err := strconv.ParseUint(digits[3:], 16, 8)
		if err != nil {
			return RGBA{}, fmt.Errorf("%w: %q", ErrSyntax, s)
		}
		alpha = float64(a * 17)
		digits = digits[:3]
	case 8:
		a, err := strconv.ParseUint(digits[6:], 16, 8)
		if err != nil {
			return RGBA{}, fmt.Errorf("%w: %q", ErrSyntax, s)
		}
		alpha = float64(a)
		digits = digits[:6]
	case 3, 6:
	default:
		return RGBA{}, fmt.Errorf("%w: %q", ErrSyntax, s)
	}

	c, err := colorful.Hex("#" + digits)
	if err != nil {
		return RGBA{}, fmt.Errorf("%w: %q: %v", ErrSyntax, s, err)
	}
	r, g, b := c.RGB255()
	return RGBA{R: float64(r), G: float64(g), B: float64(b), A: alpha}, nil
}

func parseFunc(s string) (RGBA, error) {
	open := strings.IndexByte(s, '(')
	if open < 0 {
		return RGBA{}, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	name := strings.TrimSpace(s[:open])
	args := splitArgs(s[open+1 : len(s)-1])

	switch name {
	case "rgb", "rgba":
		return parseRGB(s, args)
	case "hsl", "hsla":
		return parseHSL(s, args)
	default:
		return RGBA{}, fmt.Errorf("%w: unknown function %q", ErrSyntax, name)
	}
}

// splitArgs accepts both the comma form and the space form with an
// optional "/ alpha" suffix.
func splitArgs(body string) []string {
	body = strings.ReplaceAll(body, "/", " ")
	body = strings.ReplaceAll(body, ",", " ")
	return strings.Fields(body)
}

func parseRGB(s string, args []string) (RGBA, error) {
	if len(args) != 3 && len(args) != 4 {
		return RGBA{}, fmt.Errorf("%w: %q: want 3 or 4 arguments", ErrSyntax, s)
	}
	var out [3]float64
	for i := range out {
		v, pct, err := number(args[i])
		if err != nil {
			return RGBA{}, fmt.Errorf("%w: %q: %v", ErrSyntax, s, err)
		}
		if pct {
			v = v * 255 / 100
		}
		out[i] = clamp(v, 0, 255)
	}
	a, err := alphaArg(args)
	if err != nil {
		return RGBA{}, fmt.Errorf("%w: %q: %v", ErrSyntax, s, err)
	}
	return RGBA{R: out[0], G: out[1], B: out[2], A: a}, nil
}

func parseHSL(s string, args []string) (RGBA, error) {
	if len(args) != 3 && len(args) != 4 {
		return RGBA{}, fmt.Errorf("%w: %q: want 3 or 4 arguments", ErrSyntax, s)
	}
	h, _, err := number(strings.TrimSuffix(args[0], "deg"))
	if err != nil {
		return RGBA{}, fmt.Errorf("%w: %q: %v", ErrSyntax, s, err)
	}
	sat, pct, err := number(args[1])
	if err != nil || !pct {
		return RGBA{}, fmt.Errorf("%w: %q: saturation must be a percentage", ErrSyntax, s)
	}
	light, pct, err := number(args[2])
	if err != nil || !pct {
		return RGBA{}, fmt.Errorf("%w: %q: lightness must be a percentage", ErrSyntax, s)
	}
	a, err := alphaArg(args)
	if err != nil {
		return RGBA{}, fmt.Errorf("%w: %q: %v", ErrSyntax, s, err)
	}

	h = mod360(h)
	c := colorful.Hsl(h, clamp(sat/100, 0, 1), clamp(light/100, 0, 1)).Clamped()
	return RGBA{R: c.R * 255, G: c.G * 255, B: c.B * 255, A: a}, nil
}

// alphaArg returns the optional fourth argument on the 0-255 scale.
func alphaArg(args []string) (float64, error) {
	if len(args) < 4 {
		return 255, nil
	}
	v, pct, err := number(args[3])
	if err != nil {
		return 0, err
	}
	if pct {
		v /= 100
	}
	return clamp(v, 0, 1) * 255, nil
}

// number parses a float with an optional trailing percent sign.
func number(s string) (v float64, pct bool, err error) {
	if strings.HasSuffix(s, "%") {
		pct = true
		s = s[:len(s)-1]
	}
	v, err = strconv.ParseFloat(s, 64)
	return v, pct, err
}

func mod360(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
