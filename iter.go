package numexpr

import (
	"math"
	"strconv"
)

// iterOp is an operator that evaluates its body expression repeatedly with
// one variable rebound each time.
type iterOp int8

const (
	iterNone iterOp = iota
	iterSum         // sum(i, from, to, f[, delta])
	iterProd        // prod(i, from, to, f[, delta])
	iterForw        // forw(f, x[, h])
	iterBack        // back(f, x[, h])
)

// iterops maps the reserved names of iterated operators. Unless parsing
// with DisableIterOps, these names are never functions or variables.
var iterops = map[string]iterOp{
	"sum":  iterSum,
	"prod": iterProd,
	"forw": iterForw,
	"back": iterBack,
}

func (op iterOp) String() string {
	for k, v := range iterops {
		if v == op {
			return k
		}
	}
	return "iterOp(" + strconv.Itoa(int(op)) + ")"
}

// CanCall returns whether the operator accepts n arguments.
func (op iterOp) CanCall(n int) bool {
	switch op {
	case iterSum, iterProd:
		return n == 4 || n == 5
	case iterForw, iterBack:
		return n == 2 || n == 3
	}
	return false
}

// arity describes the argument counts CanCall accepts.
func (op iterOp) arity() string {
	switch op {
	case iterSum, iterProd:
		return "4 or 5"
	case iterForw, iterBack:
		return "2 or 3"
	}
	return "no"
}

// index is the position of the argument naming the rebound variable.
func (op iterOp) index() int {
	switch op {
	case iterForw, iterBack:
		return 1
	}
	return 0
}

// body is the position of the argument evaluated repeatedly.
func (op iterOp) body() int {
	switch op {
	case iterForw, iterBack:
		return 0
	}
	return 3
}

// local reports whether the index variable exists only inside the operator.
func (op iterOp) local() bool {
	return op == iterSum || op == iterProd
}

// subexpr is an Expression evaluating a subtree on a context's stack. After
// the first evaluation error, it stops evaluating and calculates NaN.
type subexpr struct {
	ctx *Context
	n   *node
	err error
}

func (s *subexpr) Calculate() float64 {
	if s.err != nil {
		return math.NaN()
	}
	v, err := s.ctx.value(s.n)
	if err != nil {
		s.err = err
		return math.NaN()
	}
	return v
}

// evaliter pushes the value of an iterated operator node.
func (n *node) evaliter(ctx *Context) error {
	v := n.args()
	body := &subexpr{ctx: ctx, n: v[n.op.body()]}
	idx := v[n.op.index()].name
	var r float64
	switch n.op {
	case iterSum, iterProd:
		from, err := ctx.value(v[1])
		if err != nil {
			return err
		}
		to, err := ctx.value(v[2])
		if err != nil {
			return err
		}
		delta := 1.0
		if len(v) == 5 {
			delta, err = ctx.value(v[4])
			if err != nil {
				return err
			}
		}
		i := NewArgument(idx, from)
		old, shadow := ctx.args[idx]
		ctx.args[idx] = i
		if n.op == iterSum {
			r = Sum(body, i, from, to, delta)
		} else {
			r = Prod(body, i, from, to, delta)
		}
		if shadow {
			ctx.args[idx] = old
		} else {
			delete(ctx.args, idx)
		}
	case iterForw, iterBack:
		x := ctx.args[idx]
		if x == nil {
			return &NameError{Name: idx}
		}
		h := 1.0
		if len(v) == 3 {
			var err error
			h, err = ctx.value(v[2])
			if err != nil {
				return err
			}
		}
		if n.op == iterForw {
			r = ForwardDiffStep(body, h, x)
		} else {
			r = BackwardDiffStep(body, h, x)
		}
	default:
		panic("numexpr: invalid iterated operator " + n.op.String())
	}
	if body.err != nil {
		return body.err
	}
	ctx.push(r)
	return nil
}
