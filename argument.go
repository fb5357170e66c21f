package numexpr

import "strconv"

// Binding is a mutable numeric cell that expressions read during
// evaluation. A value set with SetValue must be visible to the next
// evaluation of any expression that reads the binding.
type Binding interface {
	Value() float64
	SetValue(v float64)
}

// Argument is a named Binding. The zero value is an unnamed argument with
// value 0. It is not safe to use an Argument concurrently.
type Argument struct {
	name string
	val  float64
}

// NewArgument creates an argument with an initial value.
func NewArgument(name string, val float64) *Argument {
	return &Argument{name: name, val: val}
}

// Name returns the argument's name.
func (a *Argument) Name() string {
	return a.name
}

// Value returns the argument's current value, which may be NaN.
func (a *Argument) Value() float64 {
	return a.val
}

// SetValue overwrites the argument's value.
func (a *Argument) SetValue(v float64) {
	a.val = v
}

func (a *Argument) String() string {
	return a.name + " = " + strconv.FormatFloat(a.val, 'g', -1, 64)
}

// Expression is a formula that can be recomputed from the current values of
// the bindings it reads.
type Expression interface {
	Calculate() float64
}

// ExpressionFunc adapts an ordinary function to an Expression.
type ExpressionFunc func() float64

// Calculate calls f.
func (f ExpressionFunc) Calculate() float64 {
	return f()
}

// FunctionValue binds x to x0 and calculates f. x keeps the value x0
// afterward.
func FunctionValue(f Expression, x Binding, x0 float64) float64 {
	x.SetValue(x0)
	return f.Calculate()
}
