//go:build go1.18
// +build go1.18

package numexpr_test

import (
	"strings"
	"testing"

	"github.com/zephyrtronium/numexpr"
)

func FuzzParse(f *testing.F) {
	f.Add("x")
	f.Add("y")
	f.Add("1×2")
	f.Add("prod[k; 1; n; k]")
	f.Fuzz(func(t *testing.T, s string) {
		numexpr.Parse(strings.NewReader(s))
	})
}
