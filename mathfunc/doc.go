// Package mathfunc is a library of special functions on float64 values:
// trigonometric and hyperbolic wrappers, combinatorial and number-theoretic
// sequences, and a few indicator functions.
//
// Every function returns NaN if any of its arguments is NaN. NaN is also the
// result of any evaluation outside a function's domain; nothing in this
// package panics or returns an error. Division by an exact zero is reported
// as NaN wherever a function guards it (Div, Ctan, Sec, Cosec, Coth, Sech,
// Csch, the inverse hyperbolic functions, ContinuedFraction), whereas Mod and
// Power pass through whatever the underlying math primitive produces.
//
// Functions of integer parameters take ints. The adapters Rounded1, Rounded2,
// RoundedK, RoundedM, and RoundedN turn them into functions of float64
// parameters by rounding each argument half to even.
//
// The recursive sequences (EulerNumber, Stirling1Number, Stirling2Number,
// FibonacciNumber, LucasNumber, ContinuedPolynomial) recurse to a depth equal
// to their parameter and take exponential time in it. Callers should bound
// the parameters themselves.
package mathfunc
