package blend

// Porter-Duff operators with the alpha weighting folded into the result.
// src is an un-premultiplied incoming component, dst is the raw stored
// value. Nothing is clamped.

func componentSource(src, _, as, _ float64) float64 {
	return src * as
}

func componentDestination(_, dst, _, ad float64) float64 {
	return dst * ad
}

func componentClear(_, _, _, _ float64) float64 {
	return 0
}

func componentXor(src, dst, as, ad float64) float64 {
	return src*as*(1-ad) + dst*ad*(1-as)
}

func componentSourceOver(src, dst, as, ad float64) float64 {
	return src*as + dst*ad*(1-as)
}

func componentSourceIn(src, _, as, ad float64) float64 {
	return src * as * ad
}

func componentSourceOut(src, _, as, ad float64) float64 {
	return src * as * (1 - ad)
}

func componentSourceAtop(src, dst, as, ad float64) float64 {
	return src*as*ad + dst*ad*(1-as)
}

func componentDestinationOver(src, dst, as, ad float64) float64 {
	return dst*ad + src*as*(1-ad)
}

func componentDestinationIn(_, dst, as, ad float64) float64 {
	return dst * ad * as
}

func componentDestinationOut(_, dst, as, ad float64) float64 {
	return dst * ad * (1 - as)
}

func componentDestinationAtop(src, dst, as, ad float64) float64 {
	return dst*ad*as + src*as*(1-ad)
}

// Alpha formulas. Several modes share one.

// alphaUnion is As + Ad - As*Ad.
func alphaUnion(as, ad float64) float64 {
	return as + ad - as*ad
}

func alphaSource(as, _ float64) float64 {
	return as
}

func alphaDestination(_, ad float64) float64 {
	return ad
}

func alphaClear(_, _ float64) float64 {
	return 0
}

func alphaXor(as, ad float64) float64 {
	return as + ad - 2*as*ad
}

// alphaIntersect is As*Ad.
func alphaIntersect(as, ad float64) float64 {
	return as * ad
}

func alphaSourceOut(as, ad float64) float64 {
	return as * (1 - ad)
}

func alphaDestinationOut(as, ad float64) float64 {
	return ad * (1 - as)
}
