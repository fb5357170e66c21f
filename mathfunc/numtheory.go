package mathfunc

import "math"

func iabs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

// Gcd is the greatest common divisor of |a| and |b|. Gcd(0, 0) is 0.
func Gcd(a, b int) float64 {
	return float64(gcd(a, b))
}

// gcd is Euclid's algorithm on the absolute values.
func gcd(a, b int) int {
	a, b = iabs(a), iabs(b)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// GcdN folds Gcd over numbers from left to right. A single number is
// returned as given, without taking its absolute value. With no numbers the
// result is NaN.
func GcdN(numbers ...int) float64 {
	switch len(numbers) {
	case 0:
		return math.NaN()
	case 1:
		return float64(numbers[0])
	}
	r := numbers[0]
	for _, n := range numbers[1:] {
		r = gcd(r, n)
	}
	return float64(r)
}

// Lcm is the least common multiple of |a| and |b|. It is 0 if either is 0.
func Lcm(a, b int) float64 {
	return float64(lcm(a, b))
}

func lcm(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return iabs(a) / gcd(a, b) * iabs(b)
}

// LcmN folds Lcm over numbers from left to right. A single number is
// returned as given. Any zero makes the result 0. With no numbers the result
// is NaN.
func LcmN(numbers ...int) float64 {
	switch len(numbers) {
	case 0:
		return math.NaN()
	case 1:
		return float64(numbers[0])
	}
	r := numbers[0]
	for _, n := range numbers[1:] {
		r = lcm(r, n)
	}
	return float64(r)
}
