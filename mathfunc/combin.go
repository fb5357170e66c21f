package mathfunc

import "math"

// Factorial is n!, accumulated in float64 so that it overflows to +Inf for
// n > 170. It is NaN for negative n.
func Factorial(n int) float64 {
	if n < 0 {
		return math.NaN()
	}
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}
	return f
}

// BinomCoeff is the generalized binomial coefficient n choose k, the falling
// factorial n(n-1)...(n-k+1) divided by k!. n may be any real. It is NaN for
// negative k.
func BinomCoeff(n float64, k int) float64 {
	if math.IsNaN(n) || k < 0 {
		return math.NaN()
	}
	num := 1.0
	for i := 0; i < k; i++ {
		num *= n - float64(i)
	}
	den := 1.0
	for i := 2; i <= k; i++ {
		den *= float64(i)
	}
	return num / den
}

// BellNumber is the number of partitions of a set of n elements, computed
// with the Bell triangle in int64 arithmetic. It is NaN for negative n.
func BellNumber(n int) float64 {
	switch {
	case n < 0:
		return math.NaN()
	case n < 2:
		return 1
	}
	n--
	tri := make([][]int64, n+1)
	for r := range tri {
		tri[r] = make([]int64, n+1)
	}
	tri[0][0] = 1
	tri[1][0] = 1
	for r := 1; r <= n; r++ {
		for k := 0; k < r; k++ {
			tri[r][k+1] = tri[r-1][k] + tri[r][k]
		}
		if r < n {
			tri[r+1][0] = tri[r][r]
		}
	}
	return float64(tri[n][n])
}

// EulerNumber is the Eulerian number A(n, k), the number of permutations
// of 1..n with exactly k ascents. It is NaN for negative n and 0 for
// negative k.
func EulerNumber(n, k int) float64 {
	switch {
	case n < 0:
		return math.NaN()
	case k < 0:
		return 0
	case n == 0:
		return KroneckerDeltaInt(k, 0)
	}
	return float64(k+1)*EulerNumber(n-1, k) + float64(n-k)*EulerNumber(n-1, k-1)
}

// Stirling1Number is the unsigned Stirling number of the first kind
// [n k], the number of permutations of n elements with k cycles.
func Stirling1Number(n, k int) float64 {
	switch {
	case k > n:
		return 0
	case k == n:
		return 1
	case n == 0, k == 0:
		return KroneckerDeltaInt(n, k)
	}
	return float64(n-1)*Stirling1Number(n-1, k) + Stirling1Number(n-1, k-1)
}

// Stirling2Number is the Stirling number of the second kind {n k}, the
// number of partitions of n elements into k non-empty subsets.
func Stirling2Number(n, k int) float64 {
	switch {
	case k > n:
		return 0
	case k == n:
		return 1
	case n == 0, k == 0:
		return KroneckerDeltaInt(n, k)
	}
	return float64(k)*Stirling2Number(n-1, k) + Stirling2Number(n-1, k-1)
}

// BernoulliNumber is the value at n of the Bernoulli polynomial of degree m,
// so that BernoulliNumber(m, 0) is the Bernoulli number B(m) with
// B(1) = -1/2. It is NaN if m or n is negative.
func BernoulliNumber(m, n int) float64 {
	if m < 0 || n < 0 {
		return math.NaN()
	}
	r := 0.0
	for k := 0; k <= m; k++ {
		for v := 0; v <= k; v++ {
			r += math.Pow(-1, float64(v)) * BinomCoeff(float64(k), v) *
				(math.Pow(float64(n+v), float64(m)) / float64(k+1))
		}
	}
	return r
}

// WorpitzkyNumber is the Worpitzky number W(n, k). It is NaN outside
// 0 <= k <= n.
func WorpitzkyNumber(n, k int) float64 {
	if n < 0 || k < 0 || k > n {
		return math.NaN()
	}
	r := 0.0
	for v := 0; v <= k; v++ {
		r += math.Pow(-1, float64(v+k)) * math.Pow(float64(v+1), float64(n)) * BinomCoeff(float64(k), v)
	}
	return r
}

// HarmonicNumber is the n-th harmonic number 1 + 1/2 + ... + 1/n. It is 0
// for n <= 0.
func HarmonicNumber(n int) float64 {
	if n <= 0 {
		return 0
	}
	h := 1.0
	for k := 2; k <= n; k++ {
		h += 1 / float64(k)
	}
	return h
}

// GeneralizedHarmonicNumber is 1 + 1/2**x + ... + 1/n**x. It is NaN for
// negative x and 0 for n <= 0. For n == 1 the result is x.
func GeneralizedHarmonicNumber(x float64, n int) float64 {
	if math.IsNaN(x) || x < 0 {
		return math.NaN()
	}
	switch {
	case n <= 0:
		return 0
	case n == 1:
		return x
	}
	h := 1.0
	for k := 2; k <= n; k++ {
		h += 1 / Power(float64(k), x)
	}
	return h
}

// CatalanNumber is the n-th Catalan number C(2n, n)/(n+1).
func CatalanNumber(n int) float64 {
	return BinomCoeff(float64(2*n), n) * Div(1, float64(n+1))
}

// FibonacciNumber is F(n) with F(0) = 0 and F(1) = 1. It is NaN for negative
// n.
func FibonacciNumber(n int) float64 {
	switch {
	case n < 0:
		return math.NaN()
	case n < 2:
		return float64(n)
	}
	return FibonacciNumber(n-1) + FibonacciNumber(n-2)
}

// LucasNumber is L(n) with L(0) = 2 and L(1) = 1. It is NaN for negative n.
func LucasNumber(n int) float64 {
	switch {
	case n < 0:
		return math.NaN()
	case n == 0:
		return 2
	case n == 1:
		return 1
	}
	return LucasNumber(n-1) + LucasNumber(n-2)
}

// ContinuedFraction evaluates the simple continued fraction
// a0 + 1/(a1 + 1/(a2 + ...)) from the last term backward. It is NaN if any
// term is NaN, if some partial value is zero before its reciprocal is taken,
// or if there are no terms.
func ContinuedFraction(seq ...float64) float64 {
	switch len(seq) {
	case 0:
		return math.NaN()
	case 1:
		return seq[0]
	}
	last := len(seq) - 1
	cf := 0.0
	for i := last; i >= 0; i-- {
		a := seq[i]
		if math.IsNaN(a) {
			return math.NaN()
		}
		if i == last {
			cf = a
			continue
		}
		if cf == 0 {
			return math.NaN()
		}
		cf = a + 1/cf
	}
	return cf
}

// ContinuedPolynomial is the continuant K(x...) given by K() = 1,
// K(x0) = x0, and K(x0...xn) = xn K(x0...xn-1) + K(x0...xn-2).
func ContinuedPolynomial(x ...float64) float64 {
	if anyNaN(x...) {
		return math.NaN()
	}
	return continuant(len(x), x)
}

func continuant(n int, x []float64) float64 {
	switch n {
	case 0:
		return 1
	case 1:
		return x[0]
	}
	return x[n-1]*continuant(n-1, x) + continuant(n-2, x)
}

// EulerPolynomial evaluates the Euler polynomial recurrence of degree m at
// x. For each n from 0 to m it adds sum for k in 0..n of
// (-1)**k C(n, k) (x+k)**m to a running total and then divides the whole
// total by 2**n. It is NaN for negative m.
//
// The division applies to the running total, not to each inner sum, so for
// m > 0 the result differs from the textbook E_m(x); e.g.
// EulerPolynomial(2, 0) is 0.375.
func EulerPolynomial(m int, x float64) float64 {
	if math.IsNaN(x) || m < 0 {
		return math.NaN()
	}
	r := 0.0
	for n := 0; n <= m; n++ {
		for k := 0; k <= n; k++ {
			r += math.Pow(-1, float64(k)) * BinomCoeff(float64(n), k) * math.Pow(x+float64(k), float64(m))
		}
		r /= math.Pow(2, float64(n))
	}
	return r
}

// EulerPolynomialInt is EulerPolynomial at an integer point. With Rounded2 it
// gives the float64 form, which rounds both m and x.
func EulerPolynomialInt(m, x int) float64 {
	return EulerPolynomial(m, float64(x))
}
