package mathfunc

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// Gamma is the gamma function Γ(x).
func Gamma(x float64) float64 {
	if math.IsNaN(x) {
		return math.NaN()
	}
	return math.Gamma(x)
}

// Lgamma is ln|Γ(x)|.
func Lgamma(x float64) float64 {
	if math.IsNaN(x) {
		return math.NaN()
	}
	r, _ := math.Lgamma(x)
	return r
}

// Beta is the beta function B(a, b) = Γ(a)Γ(b)/Γ(a+b).
func Beta(a, b float64) float64 {
	if anyNaN(a, b) {
		return math.NaN()
	}
	return mathext.Beta(a, b)
}

// Lbeta is ln|B(a, b)|.
func Lbeta(a, b float64) float64 {
	if anyNaN(a, b) {
		return math.NaN()
	}
	return mathext.Lbeta(a, b)
}

// Digamma is the logarithmic derivative of the gamma function, Γ'(x)/Γ(x).
func Digamma(x float64) float64 {
	if math.IsNaN(x) {
		return math.NaN()
	}
	return mathext.Digamma(x)
}
