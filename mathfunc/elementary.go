package mathfunc

import "math"

// recip returns 1/v, or NaN if v is exactly zero.
func recip(v float64) float64 {
	if v == 0 {
		return math.NaN()
	}
	return 1 / v
}

// Sin is the sine of a.
func Sin(a float64) float64 { return math.Sin(a) }

// Cos is the cosine of a.
func Cos(a float64) float64 { return math.Cos(a) }

// Tan is the tangent of a.
func Tan(a float64) float64 { return math.Tan(a) }

// Ctan is the cotangent of a. It is NaN where tan a is exactly zero.
func Ctan(a float64) float64 {
	if math.IsNaN(a) {
		return math.NaN()
	}
	return recip(math.Tan(a))
}

// Sec is the secant of a. It is NaN where cos a is exactly zero.
func Sec(a float64) float64 {
	if math.IsNaN(a) {
		return math.NaN()
	}
	return recip(math.Cos(a))
}

// Cosec is the cosecant of a. It is NaN where sin a is exactly zero.
func Cosec(a float64) float64 {
	if math.IsNaN(a) {
		return math.NaN()
	}
	return recip(math.Sin(a))
}

// Asin is the inverse sine of a.
func Asin(a float64) float64 { return math.Asin(a) }

// Acos is the inverse cosine of a.
func Acos(a float64) float64 { return math.Acos(a) }

// Atan is the inverse tangent of a.
func Atan(a float64) float64 { return math.Atan(a) }

// Actan is the inverse cotangent of a, computed as atan(1/a). Division by
// zero is not guarded; Actan(0) is π/2.
func Actan(a float64) float64 { return math.Atan(1 / a) }

// Ln is the natural logarithm of a.
func Ln(a float64) float64 { return math.Log(a) }

// Log2 is the base-2 logarithm of a.
func Log2(a float64) float64 {
	if math.IsNaN(a) {
		return math.NaN()
	}
	return math.Log(a) / math.Ln2
}

// Log10 is the base-10 logarithm of a.
func Log10(a float64) float64 { return math.Log10(a) }

// Log is the base-b logarithm of a. It is NaN when ln b is exactly zero.
func Log(a, b float64) float64 {
	if anyNaN(a, b) {
		return math.NaN()
	}
	lb := math.Log(b)
	if lb == 0 {
		return math.NaN()
	}
	return math.Log(a) / lb
}

// Rad converts degrees to radians.
func Rad(a float64) float64 { return a * (math.Pi / 180) }

// Deg converts radians to degrees.
func Deg(a float64) float64 { return a * (180 / math.Pi) }

// Exp is e**a.
func Exp(a float64) float64 { return math.Exp(a) }

// Sqrt is the square root of a.
func Sqrt(a float64) float64 { return math.Sqrt(a) }

// Sinh is the hyperbolic sine of a.
func Sinh(a float64) float64 { return math.Sinh(a) }

// Cosh is the hyperbolic cosine of a.
func Cosh(a float64) float64 { return math.Cosh(a) }

// Tanh is the hyperbolic tangent of a.
func Tanh(a float64) float64 { return math.Tanh(a) }

// Coth is the hyperbolic cotangent of a. It is NaN at zero.
func Coth(a float64) float64 {
	if math.IsNaN(a) {
		return math.NaN()
	}
	return recip(math.Tanh(a))
}

// Sech is the hyperbolic secant of a.
func Sech(a float64) float64 {
	if math.IsNaN(a) {
		return math.NaN()
	}
	return recip(math.Cosh(a))
}

// Csch is the hyperbolic cosecant of a. It is NaN at zero.
func Csch(a float64) float64 {
	if math.IsNaN(a) {
		return math.NaN()
	}
	return recip(math.Sinh(a))
}

// Arsinh is the inverse hyperbolic sine, ln(a + sqrt(a²+1)).
func Arsinh(a float64) float64 {
	if math.IsNaN(a) {
		return math.NaN()
	}
	return math.Log(a + math.Sqrt(a*a+1))
}

// Arcosh is the inverse hyperbolic cosine, ln(a + sqrt(a²-1)).
func Arcosh(a float64) float64 {
	if math.IsNaN(a) {
		return math.NaN()
	}
	return math.Log(a + math.Sqrt(a*a-1))
}

// Artanh is the inverse hyperbolic tangent. It is NaN at a = 1.
func Artanh(a float64) float64 {
	if math.IsNaN(a) || 1-a == 0 {
		return math.NaN()
	}
	return 0.5 * math.Log((1+a)/(1-a))
}

// Arcoth is the inverse hyperbolic cotangent. It is NaN at a = 1.
func Arcoth(a float64) float64 {
	if math.IsNaN(a) || a-1 == 0 {
		return math.NaN()
	}
	return 0.5 * math.Log((a+1)/(a-1))
}

// Arsech is the inverse hyperbolic secant. It is NaN at zero.
func Arsech(a float64) float64 {
	if math.IsNaN(a) || a == 0 {
		return math.NaN()
	}
	return math.Log((1 + math.Sqrt(1-a*a)) / a)
}

// Arcsch is the inverse hyperbolic cosecant. It is NaN at zero.
func Arcsch(a float64) float64 {
	if math.IsNaN(a) || a == 0 {
		return math.NaN()
	}
	return math.Log(1/a + math.Sqrt(1+a*a)/math.Abs(a))
}

// Sa is the normalized sinc function sin(πa)/(πa). It is NaN at zero.
func Sa(a float64) float64 {
	if math.IsNaN(a) {
		return math.NaN()
	}
	x := math.Pi * a
	if x == 0 {
		return math.NaN()
	}
	return math.Sin(x) / x
}

// Sinc is sin(a)/a. It is NaN at zero.
func Sinc(a float64) float64 {
	if math.IsNaN(a) || a == 0 {
		return math.NaN()
	}
	return math.Sin(a) / a
}

// Abs is the absolute value of a.
func Abs(a float64) float64 { return math.Abs(a) }

// Sgn is the sign of a: -1, 0, or 1.
func Sgn(a float64) float64 {
	switch {
	case math.IsNaN(a):
		return math.NaN()
	case a < 0:
		return -1
	case a > 0:
		return 1
	}
	return 0
}

// Floor is the greatest integer not greater than a.
func Floor(a float64) float64 { return math.Floor(a) }

// Ceil is the least integer not less than a.
func Ceil(a float64) float64 { return math.Ceil(a) }
