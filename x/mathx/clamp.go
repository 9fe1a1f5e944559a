package mathx

import "golang.org/x/exp/constraints"

// Clamp limits v to [lo, hi]. If lo > hi, the bounds are swapped.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if hi < lo {
		lo, hi = hi, lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Between reports lo <= v && v <= hi (order-insensitive).
func Between[T constraints.Ordered](v, lo, hi T) bool {
	if hi < lo {
		lo, hi = hi, lo
	}
	return v >= lo && v <= hi
}

// Scale maps x in [inLo,inHi] onto [outLo,outHi] using int64 intermediates.
// Input outside the range is clamped first; an empty input range yields outLo.
func Scale[T constraints.Integer](x, inLo, inHi, outLo, outHi T) T {
	if inHi == inLo {
		return outLo
	}
	x = Clamp(x, inLo, inHi)
	num := (int64(x) - int64(inLo)) * (int64(outHi) - int64(outLo))
	return T(int64(outLo) + num/(int64(inHi)-int64(inLo)))
}
