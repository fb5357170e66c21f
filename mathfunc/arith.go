package mathfunc

import "math"

// Power is a**b. Apart from NaN arguments, the special cases are those of
// math.Pow; in particular Power(0, -1) is +Inf.
func Power(a, b float64) float64 {
	if anyNaN(a, b) {
		return math.NaN()
	}
	return math.Pow(a, b)
}

// Mod is the floating-point remainder of a/b with the sign of a, as for
// math.Mod.
func Mod(a, b float64) float64 {
	if anyNaN(a, b) {
		return math.NaN()
	}
	return math.Mod(a, b)
}

// Div is a/b, except that it is NaN when b is zero rather than infinite.
func Div(a, b float64) float64 {
	if anyNaN(a, b) || b == 0 {
		return math.NaN()
	}
	return a / b
}

// Min is the lesser of a and b.
func Min(a, b float64) float64 {
	if anyNaN(a, b) {
		return math.NaN()
	}
	return math.Min(a, b)
}

// Max is the greater of a and b.
func Max(a, b float64) float64 {
	if anyNaN(a, b) {
		return math.NaN()
	}
	return math.Max(a, b)
}

// MinN is the least of xs. With no arguments, the result is +Inf.
func MinN(xs ...float64) float64 {
	r := math.Inf(1)
	for _, x := range xs {
		if math.IsNaN(x) {
			return math.NaN()
		}
		if x < r {
			r = x
		}
	}
	return r
}

// MaxN is the greatest of xs. With no arguments, the result is -Inf.
func MaxN(xs ...float64) float64 {
	r := math.Inf(-1)
	for _, x := range xs {
		if math.IsNaN(x) {
			return math.NaN()
		}
		if x > r {
			r = x
		}
	}
	return r
}

// indicator converts a membership test to 1 or 0.
func indicator(in bool) float64 {
	if in {
		return 1
	}
	return 0
}

// Chi is the characteristic function of the open interval (a, b).
func Chi(x, a, b float64) float64 {
	if anyNaN(x, a, b) {
		return math.NaN()
	}
	return indicator(x > a && x < b)
}

// ChiLR is the characteristic function of the closed interval [a, b].
func ChiLR(x, a, b float64) float64 {
	if anyNaN(x, a, b) {
		return math.NaN()
	}
	return indicator(x >= a && x <= b)
}

// ChiL is the characteristic function of the half-open interval [a, b).
func ChiL(x, a, b float64) float64 {
	if anyNaN(x, a, b) {
		return math.NaN()
	}
	return indicator(x >= a && x < b)
}

// ChiR is the characteristic function of the half-open interval (a, b].
func ChiR(x, a, b float64) float64 {
	if anyNaN(x, a, b) {
		return math.NaN()
	}
	return indicator(x > a && x <= b)
}

// KroneckerDelta is 1 if i == j and 0 otherwise.
func KroneckerDelta(i, j float64) float64 {
	if anyNaN(i, j) {
		return math.NaN()
	}
	return indicator(i == j)
}

// KroneckerDeltaInt is 1 if i == j and 0 otherwise. It is never NaN.
func KroneckerDeltaInt(i, j int) float64 {
	return indicator(i == j)
}
