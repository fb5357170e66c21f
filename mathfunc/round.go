package mathfunc

import "math"

// RoundLimit is the largest magnitude Round returns. Every float64 at least
// this large is already an integer.
const RoundLimit = min(1<<53, math.MaxInt)

// Round rounds x to the nearest integer, with ties going to the even
// integer, and converts the result to int. Values beyond ±RoundLimit,
// including infinities, saturate to ±RoundLimit. NaN gives 0; the adapters
// below never pass it.
func Round(x float64) int {
	switch {
	case math.IsNaN(x):
		return 0
	case x >= RoundLimit:
		return RoundLimit
	case x <= -RoundLimit:
		return -RoundLimit
	}
	return int(math.RoundToEven(x))
}

// anyNaN reports whether any of xs is NaN.
func anyNaN(xs ...float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) {
			return true
		}
	}
	return false
}

// Rounded1 adapts a function of one int to a function of one float64. The
// result is NaN if the argument is NaN; otherwise the argument is rounded
// with Round and passed to f.
func Rounded1(f func(int) float64) func(float64) float64 {
	return func(n float64) float64 {
		if math.IsNaN(n) {
			return math.NaN()
		}
		return f(Round(n))
	}
}

// Rounded2 adapts a function of two ints to a function of two float64s. The
// result is NaN if either argument is NaN.
func Rounded2(f func(int, int) float64) func(float64, float64) float64 {
	return func(a, b float64) float64 {
		if anyNaN(a, b) {
			return math.NaN()
		}
		return f(Round(a), Round(b))
	}
}

// RoundedK adapts a function of a real and an int to a function of two
// float64s. Only the second argument is rounded.
func RoundedK(f func(float64, int) float64) func(float64, float64) float64 {
	return func(x, k float64) float64 {
		if anyNaN(x, k) {
			return math.NaN()
		}
		return f(x, Round(k))
	}
}

// RoundedM adapts a function of an int and a real to a function of two
// float64s. Only the first argument is rounded.
func RoundedM(f func(int, float64) float64) func(float64, float64) float64 {
	return func(m, x float64) float64 {
		if anyNaN(m, x) {
			return math.NaN()
		}
		return f(Round(m), x)
	}
}

// RoundedN adapts a variadic function of ints to a variadic function of
// float64s. The result is NaN if any argument is NaN.
func RoundedN(f func(...int) float64) func(...float64) float64 {
	return func(xs ...float64) float64 {
		v := make([]int, len(xs))
		for i, x := range xs {
			if math.IsNaN(x) {
				return math.NaN()
			}
			v[i] = Round(x)
		}
		return f(v...)
	}
}
