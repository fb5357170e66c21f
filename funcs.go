package numexpr

import (
	"math"

	"github.com/zephyrtronium/numexpr/mathfunc"
)

// Func is a function from reals to reals.
type Func interface {
	// Call evaluates the function. The function arguments are passed in invoc.
	// semis is the indices of arguments which are preceded by semicolons.
	// The function may but generally should not look up variables. invoc has
	// a length for which CanCall returned true. Call may modify the elements
	// of invoc. Results outside the function's domain should be NaN rather
	// than an error; an error stops evaluation of the whole expression.
	Call(ctx *Context, invoc []float64, semis []int) (float64, error)

	// CanCall returns whether the function can be called with n arguments.
	// This controls how the expression parser handles instances of this
	// function:
	//
	// 	1.	If a bracketed list of n > 0 expressions follows a function, the
	//		parser treats it as an argument list if CanCall(n). (If n is 1 and
	//		!CanCall(1) and CanCall(0), then the list is a multiplication;
	//		otherwise, it is rejected.)
	//
	// 	2.	If a bare term follows a function and CanCall(1), then the parser
	//		treats the term as an argument to the function. E.g., "exp x" is
	//		parsed as "exp(x)". (If !CanCall(1), then it is a multiplication.)
	CanCall(n int) bool
}

var globalfuncs = map[string]Func{
	// trigonometric
	"sin":    Monadic(mathfunc.Sin),
	"cos":    Monadic(mathfunc.Cos),
	"tan":    Monadic(mathfunc.Tan),
	"tg":     Monadic(mathfunc.Tan),
	"ctan":   Monadic(mathfunc.Ctan),
	"ctg":    Monadic(mathfunc.Ctan),
	"cot":    Monadic(mathfunc.Ctan),
	"sec":    Monadic(mathfunc.Sec),
	"cosec":  Monadic(mathfunc.Cosec),
	"csc":    Monadic(mathfunc.Cosec),
	"asin":   Monadic(mathfunc.Asin),
	"arcsin": Monadic(mathfunc.Asin),
	"acos":   Monadic(mathfunc.Acos),
	"arccos": Monadic(mathfunc.Acos),
	"atan":   Monadic(mathfunc.Atan),
	"arctan": Monadic(mathfunc.Atan),
	"arctg":  Monadic(mathfunc.Atan),
	"actan":  Monadic(mathfunc.Actan),
	"arcctg": Monadic(mathfunc.Actan),
	"acot":   Monadic(mathfunc.Actan),
	"rad":    Monadic(mathfunc.Rad),
	"deg":    Monadic(mathfunc.Deg),
	"sa":     Monadic(mathfunc.Sa),
	"sinc":   Monadic(mathfunc.Sinc),

	// hyperbolic
	"sinh":   Monadic(mathfunc.Sinh),
	"cosh":   Monadic(mathfunc.Cosh),
	"tanh":   Monadic(mathfunc.Tanh),
	"tgh":    Monadic(mathfunc.Tanh),
	"coth":   Monadic(mathfunc.Coth),
	"ctgh":   Monadic(mathfunc.Coth),
	"sech":   Monadic(mathfunc.Sech),
	"csch":   Monadic(mathfunc.Csch),
	"cosech": Monadic(mathfunc.Csch),
	"arsinh": Monadic(mathfunc.Arsinh),
	"asinh":  Monadic(mathfunc.Arsinh),
	"arcosh": Monadic(mathfunc.Arcosh),
	"acosh":  Monadic(mathfunc.Arcosh),
	"artanh": Monadic(mathfunc.Artanh),
	"atanh":  Monadic(mathfunc.Artanh),
	"artgh":  Monadic(mathfunc.Artanh),
	"arcoth": Monadic(mathfunc.Arcoth),
	"acoth":  Monadic(mathfunc.Arcoth),
	"arsech": Monadic(mathfunc.Arsech),
	"asech":  Monadic(mathfunc.Arsech),
	"arcsch": Monadic(mathfunc.Arcsch),
	"acsch":  Monadic(mathfunc.Arcsch),

	// exponentials and logarithms
	"exp":   Monadic(mathfunc.Exp),
	"sqrt":  Monadic(mathfunc.Sqrt),
	"ln":    Monadic(mathfunc.Ln),
	"log2":  Monadic(mathfunc.Log2),
	"lg":    Monadic(mathfunc.Log10),
	"log10": Monadic(mathfunc.Log10),
	// log x is the common log; log(x, b) is the base b log.
	"log": Overload(Monadic(mathfunc.Log10), Dyadic(mathfunc.Log)),

	// rounding and sign
	"abs":   Monadic(mathfunc.Abs),
	"sgn":   Monadic(mathfunc.Sgn),
	"floor": Monadic(mathfunc.Floor),
	"ceil":  Monadic(mathfunc.Ceil),

	// arithmetic
	"mod": Dyadic(mathfunc.Mod),
	"div": Dyadic(mathfunc.Div),
	"pow": Dyadic(mathfunc.Power),
	"min": Variadic(1, mathfunc.MinN),
	"max": Variadic(1, mathfunc.MaxN),
	"gcd": Variadic(1, mathfunc.RoundedN(mathfunc.GcdN)),
	"lcm": Variadic(1, mathfunc.RoundedN(mathfunc.LcmN)),

	// indicators
	"chi":    Triadic(mathfunc.Chi),
	"chi_LR": Triadic(mathfunc.ChiLR),
	"chi_L":  Triadic(mathfunc.ChiL),
	"chi_R":  Triadic(mathfunc.ChiR),
	"delta":  Dyadic(mathfunc.KroneckerDelta),

	// combinatorics and number sequences
	"fact":     Monadic(mathfunc.Rounded1(mathfunc.Factorial)),
	"binom":    Dyadic(mathfunc.RoundedK(mathfunc.BinomCoeff)),
	"C":        Dyadic(mathfunc.RoundedK(mathfunc.BinomCoeff)),
	"Bell":     Monadic(mathfunc.Rounded1(mathfunc.BellNumber)),
	"Euler":    Dyadic(mathfunc.Rounded2(mathfunc.EulerNumber)),
	"Stirl1":   Dyadic(mathfunc.Rounded2(mathfunc.Stirling1Number)),
	"Stirl2":   Dyadic(mathfunc.Rounded2(mathfunc.Stirling2Number)),
	"Worp":     Dyadic(mathfunc.Rounded2(mathfunc.WorpitzkyNumber)),
	"Bern":     Dyadic(mathfunc.Rounded2(mathfunc.BernoulliNumber)),
	"harm":     Overload(Monadic(mathfunc.Rounded1(mathfunc.HarmonicNumber)), Dyadic(mathfunc.RoundedK(mathfunc.GeneralizedHarmonicNumber))),
	"Catalan":  Monadic(mathfunc.Rounded1(mathfunc.CatalanNumber)),
	"fib":      Monadic(mathfunc.Rounded1(mathfunc.FibonacciNumber)),
	"luc":      Monadic(mathfunc.Rounded1(mathfunc.LucasNumber)),
	"contfrac": Variadic(1, mathfunc.ContinuedFraction),
	"contpoly": Variadic(1, mathfunc.ContinuedPolynomial),
	"EulerPol": Dyadic(mathfunc.Rounded2(mathfunc.EulerPolynomialInt)),

	// gamma family
	"gamma":   Monadic(mathfunc.Gamma),
	"lgamma":  Monadic(mathfunc.Lgamma),
	"beta":    Dyadic(mathfunc.Beta),
	"lbeta":   Dyadic(mathfunc.Lbeta),
	"digamma": Monadic(mathfunc.Digamma),

	// constants
	"pi": Constant(math.Pi),
	"π":  Constant(math.Pi),
	"e":  Constant(math.E),
}

type monadic struct {
	f func(float64) float64
}

func (m monadic) Call(ctx *Context, invoc []float64, semis []int) (float64, error) {
	return m.f(invoc[0]), nil
}

func (m monadic) CanCall(n int) bool {
	return n == 1
}

// Monadic wraps a function of one variable into a Func.
func Monadic(f func(float64) float64) Func {
	return monadic{f}
}

type dyadic struct {
	f func(a, b float64) float64
}

func (d dyadic) Call(ctx *Context, invoc []float64, semis []int) (float64, error) {
	return d.f(invoc[0], invoc[1]), nil
}

func (d dyadic) CanCall(n int) bool {
	return n == 2
}

// Dyadic wraps a function of two variables into a Func.
func Dyadic(f func(a, b float64) float64) Func {
	return dyadic{f}
}

type triadic struct {
	f func(a, b, c float64) float64
}

func (t triadic) Call(ctx *Context, invoc []float64, semis []int) (float64, error) {
	return t.f(invoc[0], invoc[1], invoc[2]), nil
}

func (t triadic) CanCall(n int) bool {
	return n == 3
}

// Triadic wraps a function of three variables into a Func.
func Triadic(f func(a, b, c float64) float64) Func {
	return triadic{f}
}

type variadic struct {
	min int
	f   func(...float64) float64
}

func (v variadic) Call(ctx *Context, invoc []float64, semis []int) (float64, error) {
	return v.f(invoc...), nil
}

func (v variadic) CanCall(n int) bool {
	return n >= v.min
}

// Variadic wraps a function of any number of variables, at least min, into a
// Func. f may modify its arguments.
func Variadic(min int, f func(...float64) float64) Func {
	return variadic{min, f}
}

type niladic struct {
	f func() float64
}

func (n niladic) Call(ctx *Context, invoc []float64, semis []int) (float64, error) {
	return n.f(), nil
}

func (n niladic) CanCall(k int) bool {
	return k == 0
}

// Niladic wraps a function of zero variables, generally a function which
// computes a constant, into a Func.
func Niladic(f func() float64) Func {
	return niladic{f}
}

// Constant creates a niladic Func that always gives v.
func Constant(v float64) Func {
	return Niladic(func() float64 { return v })
}

type overload []Func

func (o overload) Call(ctx *Context, invoc []float64, semis []int) (float64, error) {
	for _, f := range o {
		if f.CanCall(len(invoc)) {
			return f.Call(ctx, invoc, semis)
		}
	}
	panic("numexpr: overload called with unsupported argument count")
}

func (o overload) CanCall(n int) bool {
	for _, f := range o {
		if f.CanCall(n) {
			return true
		}
	}
	return false
}

// Overload combines Funcs accepting different numbers of arguments into one.
// A call goes to the first of fs that can accept its argument count.
func Overload(fs ...Func) Func {
	return overload(append([]Func(nil), fs...))
}
