package mathfunc_test

import (
	"math"
	"os"
	"testing"

	"gopkg.in/yaml.v3"
)

// near checks whether a and b agree to a relative tolerance, or an absolute
// one near zero. Two NaNs and two equal infinities agree.
func near(a, b float64) bool {
	switch {
	case math.IsNaN(a) || math.IsNaN(b):
		return math.IsNaN(a) && math.IsNaN(b)
	case a == b:
		return true
	case math.IsInf(a, 0) || math.IsInf(b, 0):
		return false
	}
	return math.Abs(a-b) <= 1e-12*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

// loadYAML decodes a file from testdata into v.
func loadYAML(t *testing.T, name string, v interface{}) {
	t.Helper()
	b, err := os.ReadFile("testdata/" + name)
	if err != nil {
		t.Fatal(err)
	}
	if err := yaml.Unmarshal(b, v); err != nil {
		t.Fatalf("decoding %s: %v", name, err)
	}
}

var nan = math.NaN()
