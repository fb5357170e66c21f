package numexpr

import "math"

// Sum computes the sum of f over index from from to to in steps of delta.
// With to >= from and delta > 0, f is evaluated at from, from+delta, ... for
// every point strictly below to, and then once more exactly at to, so that
// the upper bound always contributes one term. Descending ranges with
// delta < 0 work symmetrically. If from == to otherwise, the result is the
// single term at from. Any other combination is an empty sum, 0.
//
// If any of from, to, or delta is NaN, the result is NaN and index is not
// touched. Otherwise index is left holding the last value it was bound to;
// Sum does not restore it.
func Sum(f Expression, index Binding, from, to, delta float64) float64 {
	if anyNaN(from, to, delta) {
		return math.NaN()
	}
	r := 0.0
	switch {
	case to >= from && delta > 0:
		for i := from; i < to; i += delta {
			r += FunctionValue(f, index, i)
		}
		r += FunctionValue(f, index, to)
	case to <= from && delta < 0:
		for i := from; i > to; i += delta {
			r += FunctionValue(f, index, i)
		}
		r += FunctionValue(f, index, to)
	case from == to:
		r += FunctionValue(f, index, from)
	}
	return r
}

// Prod computes the product of f over index from from to to in steps of
// delta. The evaluation points and the treatment of index are the same as
// for Sum. An empty product is 1.
func Prod(f Expression, index Binding, from, to, delta float64) float64 {
	if anyNaN(from, to, delta) {
		return math.NaN()
	}
	r := 1.0
	switch {
	case to >= from && delta > 0:
		for i := from; i < to; i += delta {
			r *= FunctionValue(f, index, i)
		}
		r *= FunctionValue(f, index, to)
	case to <= from && delta < 0:
		for i := from; i > to; i += delta {
			r *= FunctionValue(f, index, i)
		}
		r *= FunctionValue(f, index, to)
	case from == to:
		r *= FunctionValue(f, index, from)
	}
	return r
}

// The finite difference operators all save the value of x on entry and
// restore it before returning, whichever way they return. A NaN step h is
// not checked; it reaches f through x.

// ForwardDiff is f(x+1) - f(x) at the current value of x.
func ForwardDiff(f Expression, x Binding) float64 {
	return ForwardDiffStep(f, 1, x)
}

// ForwardDiffAt is f(x0+1) - f(x0).
func ForwardDiffAt(f Expression, x Binding, x0 float64) float64 {
	return ForwardDiffStepAt(f, 1, x, x0)
}

// ForwardDiffStep is f(x+h) - f(x) at the current value of x.
func ForwardDiffStep(f Expression, h float64, x Binding) float64 {
	xb := x.Value()
	if math.IsNaN(xb) {
		return math.NaN()
	}
	defer x.SetValue(xb)
	fv := f.Calculate()
	x.SetValue(xb + h)
	return f.Calculate() - fv
}

// ForwardDiffStepAt is f(x0+h) - f(x0).
func ForwardDiffStepAt(f Expression, h float64, x Binding, x0 float64) float64 {
	if math.IsNaN(x0) {
		return math.NaN()
	}
	defer x.SetValue(x.Value())
	return FunctionValue(f, x, x0+h) - FunctionValue(f, x, x0)
}

// BackwardDiff is f(x) - f(x-1) at the current value of x.
func BackwardDiff(f Expression, x Binding) float64 {
	return BackwardDiffStep(f, 1, x)
}

// BackwardDiffAt is f(x0) - f(x0-1).
func BackwardDiffAt(f Expression, x Binding, x0 float64) float64 {
	return BackwardDiffStepAt(f, 1, x, x0)
}

// BackwardDiffStep is f(x) - f(x-h) at the current value of x.
func BackwardDiffStep(f Expression, h float64, x Binding) float64 {
	xb := x.Value()
	if math.IsNaN(xb) {
		return math.NaN()
	}
	defer x.SetValue(xb)
	fv := f.Calculate()
	x.SetValue(xb - h)
	return fv - f.Calculate()
}

// BackwardDiffStepAt is f(x0) - f(x0-h).
func BackwardDiffStepAt(f Expression, h float64, x Binding, x0 float64) float64 {
	if math.IsNaN(x0) {
		return math.NaN()
	}
	defer x.SetValue(x.Value())
	return FunctionValue(f, x, x0) - FunctionValue(f, x, x0-h)
}

func anyNaN(xs ...float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) {
			return true
		}
	}
	return false
}
