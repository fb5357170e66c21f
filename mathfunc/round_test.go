package mathfunc_test

import (
	"math"
	"testing"

	"github.com/zephyrtronium/numexpr/mathfunc"
)

func TestRound(t *testing.T) {
	cases := []struct {
		x float64
		n int
	}{
		{0, 0},
		{0.4, 0},
		{0.5, 0},
		{0.6, 1},
		{1.5, 2},
		{2.5, 2},
		{3.5, 4},
		{-0.5, 0},
		{-1.5, -2},
		{-2.5, -2},
		{-2.6, -3},
		{1 << 52, 1 << 52},
		{mathfunc.RoundLimit, mathfunc.RoundLimit},
		{1e30, mathfunc.RoundLimit},
		{-1e300, -mathfunc.RoundLimit},
		{math.Inf(1), mathfunc.RoundLimit},
		{math.Inf(-1), -mathfunc.RoundLimit},
		{math.NaN(), 0},
	}
	for _, c := range cases {
		if n := mathfunc.Round(c.x); n != c.n {
			t.Errorf("Round(%g): want %d, got %d", c.x, c.n, n)
		}
	}
}

func TestRoundedHuge(t *testing.T) {
	s1 := mathfunc.Rounded2(mathfunc.Stirling1Number)
	s2 := mathfunc.Rounded2(mathfunc.Stirling2Number)
	cases := []struct {
		name string
		got  float64
		want float64
	}{
		{"stirl1-diag", s1(1e30, 1e30), 1},
		{"stirl2-diag", s2(math.Inf(1), math.Inf(1)), 1},
		{"stirl1-over", s1(5, 1e30), 0},
		{"stirl2-under", s2(-1e30, 3), 0},
		{"gcd-inf", mathfunc.RoundedN(mathfunc.GcdN)(math.Inf(1), 6), 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if c.got != c.want {
				t.Errorf("want %g, got %g", c.want, c.got)
			}
		})
	}
}

func TestRoundedAdapters(t *testing.T) {
	// Record the arguments that reach the integer cores.
	var got []int
	var gotx float64
	one := mathfunc.Rounded1(func(n int) float64 { got = []int{n}; return 1 })
	two := mathfunc.Rounded2(func(a, b int) float64 { got = []int{a, b}; return 2 })
	k := mathfunc.RoundedK(func(x float64, n int) float64 { gotx, got = x, []int{n}; return 3 })
	m := mathfunc.RoundedM(func(n int, x float64) float64 { gotx, got = x, []int{n}; return 4 })
	all := mathfunc.RoundedN(func(v ...int) float64 { got = v; return 5 })
	same := func(v ...int) bool {
		if len(v) != len(got) {
			return false
		}
		for i := range v {
			if v[i] != got[i] {
				return false
			}
		}
		return true
	}

	if r := one(2.5); r != 1 || !same(2) {
		t.Errorf("Rounded1: got %g from %v", r, got)
	}
	if r := two(2.5, 3.5); r != 2 || !same(2, 4) {
		t.Errorf("Rounded2: got %g from %v", r, got)
	}
	if r := k(2.5, 2.5); r != 3 || !same(2) || gotx != 2.5 {
		t.Errorf("RoundedK: got %g from %v, %g", r, got, gotx)
	}
	if r := m(2.5, 2.5); r != 4 || !same(2) || gotx != 2.5 {
		t.Errorf("RoundedM: got %g from %v, %g", r, got, gotx)
	}
	if r := all(0.5, 1.5, -1.5); r != 5 || !same(0, 2, -2) {
		t.Errorf("RoundedN: got %g from %v", r, got)
	}

	// NaN arguments never reach the core.
	got = nil
	for _, r := range []float64{one(nan), two(1, nan), k(nan, 1), m(1, nan), all(1, nan)} {
		if !math.IsNaN(r) {
			t.Errorf("adapter gave %g for NaN argument", r)
		}
	}
	if got != nil {
		t.Errorf("core called with %v on NaN argument", got)
	}
}

func TestRoundedFunctions(t *testing.T) {
	fact := mathfunc.Rounded1(mathfunc.Factorial)
	binom := mathfunc.RoundedK(mathfunc.BinomCoeff)
	gcd := mathfunc.RoundedN(mathfunc.GcdN)
	cases := []struct {
		name string
		got  float64
		want float64
	}{
		{"fact-4.4", fact(4.4), 24},
		{"fact-4.5", fact(4.5), 24},
		{"fact-5.5", fact(5.5), 720},
		{"binom-real-n", binom(2.5, 1.6), 2.5 * 1.5 / 2},
		{"gcd", gcd(11.9, 18.2, 6.4), 6},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if !near(c.got, c.want) {
				t.Errorf("want %g, got %g", c.want, c.got)
			}
		})
	}
}
