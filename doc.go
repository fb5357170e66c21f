// Package numexpr implements a floating-point calculator over named
// arguments, with summation, product, and finite difference operators.
//
// The syntax of expressions is intended to be similar to math you'd write in
// your notes, with maybe a few more spaces. "2 x y" is a multiplication of
// three terms. So is "{2}[x](y)" (although not "2 xy"). "-2^2^n" is the same
// as "-(2^(2^n))", where "a^b" is exponentiation.
//
// The reserved forms sum(i, from, to, f) and prod(i, from, to, f), each with
// an optional fifth step argument, rebind the local variable i over the range
// and combine the values of f. The upper bound always contributes a term.
// forw(f, x) and back(f, x), with an optional step h defaulting to 1, give
// the forward and backward differences of f with respect to the variable x
// at its current value.
//
// Numeric failures, like division by zero or a function argument outside its
// domain, give NaN rather than an error. Errors are reserved for parsing and
// for undefined variables.
//
// The operators are also available directly over any Expression and Binding,
// so a caller can sum or difference its own Go functions, or an Expr bound
// to a Context with Bind.
package numexpr
