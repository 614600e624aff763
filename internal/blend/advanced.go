package blend

// Arithmetic and separable blend modes.
//
// Except for Add and Subtract, each mode computes a blended value B from
// the raw components and weights it like source-over:
//
//	B*As + D*Ad*(1-As)
//
// Add and Subtract are intentionally unclamped so HDR values survive until
// tone mapping.

// weighted applies the source-over weighting to a blended value.
func weighted(b, dst, as, ad float64) float64 {
	return b*as + dst*ad*(1-as)
}

func componentAdd(src, dst, as, ad float64) float64 {
	return dst*ad + src*as
}

func componentSubtract(src, dst, as, ad float64) float64 {
	return dst*ad - src*as
}

func componentMultiply(src, dst, as, ad float64) float64 {
	return weighted(src*dst/255, dst, as, ad)
}

func componentAverage(src, dst, as, ad float64) float64 {
	return weighted((src+dst)/2, dst, as, ad)
}

func componentScreen(src, dst, as, ad float64) float64 {
	return weighted(screen(src, dst), dst, as, ad)
}

func componentOverlay(src, dst, as, ad float64) float64 {
	var b float64
	if src > 128 {
		b = screen2(src, dst)
	} else {
		b = multiply2(src, dst)
	}
	return weighted(b, dst, as, ad)
}

func componentHardLight(src, dst, as, ad float64) float64 {
	var b float64
	if src < 128 {
		b = multiply2(src, dst)
	} else {
		b = screen2(src, dst)
	}
	return weighted(b, dst, as, ad)
}

func componentSoftLight(src, dst, as, ad float64) float64 {
	s := src/2 + 64
	var b float64
	if dst < 128 {
		b = multiply2(s, dst)
	} else {
		b = screen2(s, dst)
	}
	return weighted(b, dst, as, ad)
}

// screen is 255 - (255-a)*(255-b)/255.
func screen(a, b float64) float64 {
	return 255 - (255-a)*(255-b)/255
}

// screen2 is the doubled screen term used by the piecewise modes.
func screen2(a, b float64) float64 {
	return 255 - 2*(255-a)*(255-b)/255
}

// multiply2 is the doubled multiply term used by the piecewise modes.
func multiply2(a, b float64) float64 {
	return 2 * a * b / 255
}
