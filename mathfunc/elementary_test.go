package mathfunc_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/zephyrtronium/bigfloat"
	"github.com/zephyrtronium/numexpr/mathfunc"
)

func TestZeroDenominators(t *testing.T) {
	cases := []struct {
		name string
		r    float64
	}{
		{"ctan", mathfunc.Ctan(0)},
		{"cosec", mathfunc.Cosec(0)},
		{"coth", mathfunc.Coth(0)},
		{"csch", mathfunc.Csch(0)},
		{"artanh", mathfunc.Artanh(1)},
		{"arcoth", mathfunc.Arcoth(1)},
		{"arsech", mathfunc.Arsech(0)},
		{"arcsch", mathfunc.Arcsch(0)},
		{"sa", mathfunc.Sa(0)},
		{"sinc", mathfunc.Sinc(0)},
		{"div", mathfunc.Div(1, 0)},
		{"div-zero", mathfunc.Div(0, 0)},
		{"div-negzero", mathfunc.Div(-1, math.Copysign(0, -1))},
		{"log-base-1", mathfunc.Log(8, 1)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if !math.IsNaN(c.r) {
				t.Errorf("want NaN, got %g", c.r)
			}
		})
	}
}

func TestNativeEdges(t *testing.T) {
	cases := []struct {
		name string
		got  float64
		want float64
	}{
		{"pow-zero-neg", mathfunc.Power(0, -1), math.Inf(1)},
		{"pow-neg-half", mathfunc.Power(-1, 0.5), nan},
		{"pow-2-10", mathfunc.Power(2, 10), 1024},
		{"mod-zero", mathfunc.Mod(1, 0), nan},
		{"mod", mathfunc.Mod(5, 3), 2},
		{"mod-neg", mathfunc.Mod(-5, 3), -2},
		{"mod-inf", mathfunc.Mod(5, math.Inf(1)), 5},
		{"actan-zero", mathfunc.Actan(0), math.Pi / 2},
		{"div", mathfunc.Div(1, 4), 0.25},
		{"div-inf", mathfunc.Div(1, math.Inf(1)), 0},
		{"log-base", mathfunc.Log(8, 2), 3},
		{"log2", mathfunc.Log2(1024), 10},
		{"log10", mathfunc.Log10(1000), 3},
		{"sec-zero", mathfunc.Sec(0), 1},
		{"sech-zero", mathfunc.Sech(0), 1},
		{"sgn-neg", mathfunc.Sgn(-3), -1},
		{"sgn-zero", mathfunc.Sgn(0), 0},
		{"sgn-pos", mathfunc.Sgn(0.1), 1},
		{"arsinh", mathfunc.Arsinh(0), 0},
		{"arcosh", mathfunc.Arcosh(1), 0},
		{"artanh", mathfunc.Artanh(0.5), math.Atanh(0.5)},
		{"arcoth", mathfunc.Arcoth(2), math.Atanh(0.5)},
		{"sa-one", mathfunc.Sa(1), math.Sin(math.Pi) / math.Pi},
		{"sinc", mathfunc.Sinc(math.Pi / 2), 2 / math.Pi},
		{"deg", mathfunc.Deg(math.Pi), 180},
		{"rad", mathfunc.Rad(90), math.Pi / 2},
		{"min", mathfunc.Min(1, 2), 1},
		{"max", mathfunc.Max(1, 2), 2},
		{"minn", mathfunc.MinN(3, -1, 2), -1},
		{"maxn", mathfunc.MaxN(3, -1, 2), 3},
		{"minn-empty", mathfunc.MinN(), math.Inf(1)},
		{"maxn-empty", mathfunc.MaxN(), math.Inf(-1)},
		{"chi-open", mathfunc.Chi(0, 0, 1), 0},
		{"chi-in", mathfunc.Chi(0.5, 0, 1), 1},
		{"chilr-left", mathfunc.ChiLR(0, 0, 1), 1},
		{"chilr-right", mathfunc.ChiLR(1, 0, 1), 1},
		{"chil-left", mathfunc.ChiL(0, 0, 1), 1},
		{"chil-right", mathfunc.ChiL(1, 0, 1), 0},
		{"chir-left", mathfunc.ChiR(0, 0, 1), 0},
		{"chir-right", mathfunc.ChiR(1, 0, 1), 1},
		{"delta-eq", mathfunc.KroneckerDelta(2, 2), 1},
		{"delta-ne", mathfunc.KroneckerDelta(2, 3), 0},
		{"delta-int", mathfunc.KroneckerDeltaInt(-4, -4), 1},
		{"gamma", mathfunc.Gamma(5), 24},
		{"lgamma", mathfunc.Lgamma(5), math.Log(24)},
		{"beta", mathfunc.Beta(2, 3), 1.0 / 12},
		{"lbeta", mathfunc.Lbeta(2, 3), math.Log(1.0 / 12)},
		{"digamma", mathfunc.Digamma(1), -0.5772156649015329},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if !near(c.got, c.want) {
				t.Errorf("want %g, got %g", c.want, c.got)
			}
		})
	}
}

// bigref computes a reference value at 256 bits of precision.
func bigref(f func(z *big.Float) *big.Float) float64 {
	z := new(big.Float).SetPrec(256)
	r, _ := f(z).Float64()
	return r
}

func bf(x float64) *big.Float {
	return new(big.Float).SetPrec(256).SetFloat64(x)
}

func TestAgainstBigfloat(t *testing.T) {
	cases := []struct {
		name string
		got  float64
		want float64
	}{
		{"exp", mathfunc.Exp(1.5), bigref(func(z *big.Float) *big.Float { return bigfloat.Exp(z, bf(1.5)) })},
		{"exp-neg", mathfunc.Exp(-3), bigref(func(z *big.Float) *big.Float { return bigfloat.Exp(z, bf(-3)) })},
		{"ln", mathfunc.Ln(7), bigref(func(z *big.Float) *big.Float { return bigfloat.Log(z, bf(7)) })},
		{"ln-small", mathfunc.Ln(0.125), bigref(func(z *big.Float) *big.Float { return bigfloat.Log(z, bf(0.125)) })},
		{"pow", mathfunc.Power(2, 0.5), bigref(func(z *big.Float) *big.Float { return bigfloat.Pow(z, bf(2), bf(0.5)) })},
		{"pow-frac", mathfunc.Power(10, 1.25), bigref(func(z *big.Float) *big.Float { return bigfloat.Pow(z, bf(10), bf(1.25)) })},
		{"deg", mathfunc.Deg(1), bigref(func(z *big.Float) *big.Float {
			pi := bigfloat.Pi(new(big.Float).SetPrec(256))
			return z.Quo(bf(180), pi)
		})},
		{"log-base", mathfunc.Log(100, 3), bigref(func(z *big.Float) *big.Float {
			d := bigfloat.Log(new(big.Float).SetPrec(256), bf(3))
			return z.Quo(bigfloat.Log(z, bf(100)), d)
		})},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if !near(c.got, c.want) {
				t.Errorf("want %.17g, got %.17g", c.want, c.got)
			}
		})
	}
}
