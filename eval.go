package numexpr

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/zephyrtronium/numexpr/mathfunc"
)

// Context is a context for evaluating expressions. It holds the arguments
// that expressions read by name. It is not safe to use a Context
// concurrently.
type Context struct {
	stack []float64
	args  map[string]*Argument
	err   error
	busy  bool
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type (
	varopt struct {
		name string
		val  float64
	}
	varsopt map[string]float64
	argopt  struct {
		arg *Argument
	}
)

func (varopt) ctxOption()  {}
func (varsopt) ctxOption() {}
func (argopt) ctxOption()  {}

// SetVar sets the value of a variable in the context.
func SetVar(name string, val float64) ContextOption {
	return varopt{name, val}
}

// SetVars sets the values of any number of variables in the context.
func SetVars(vars map[string]float64) ContextOption {
	return varsopt(vars)
}

// ShareArg makes the context read the variable named by arg from arg itself
// rather than from a copy. Values set through arg.SetValue are visible to the
// next evaluation, and evaluations that rebind the variable do so through
// arg.
func ShareArg(arg *Argument) ContextOption {
	return argopt{arg}
}

// NewContext creates a new evaluation context.
func NewContext(opts ...ContextOption) *Context {
	var ctx Context
	return ctx.Clone(opts...)
}

// Eval evaluates an expression and returns the result. If an error occurs,
// e.g. a missing variable definition, then the result is NaN and ctx.Err
// returns the error. A NaN result with a nil error is an ordinary numeric
// result, such as division by zero.
//
// Eval panics if ctx is already evaluating an expression.
func (ctx *Context) Eval(e *Expr) float64 {
	if ctx.busy {
		panic("numexpr: Eval during Eval")
	}
	ctx.busy = true
	defer func() { ctx.busy = false }()
	ctx.stack = ctx.stack[:0]
	err := e.n.eval(ctx)
	ctx.err = err
	if err != nil {
		ctx.stack = ctx.stack[:0]
		return math.NaN()
	}
	return ctx.Result()
}

// Result returns the result obtained after evaluating an expression. Panics if
// ctx has not been used to evaluate an expression. Returns NaN if an error
// occurred during evaluation.
func (ctx *Context) Result() float64 {
	if ctx.err != nil {
		return math.NaN()
	}
	switch len(ctx.stack) {
	case 0:
		panic("numexpr: Context.Result called before evaluating any expression")
	case 1:
		return ctx.stack[0]
	default:
		panic("numexpr: inconsistent stack: " + strconv.Itoa(len(ctx.stack)) + " items (bad AST?)")
	}
}

// Err returns the first error that occurred while evaluating an expression
// with ctx, if any.
func (ctx *Context) Err() error {
	return ctx.err
}

// Set sets the value of a variable. If the variable already exists, its
// Argument is updated in place. Returns ctx for chaining. Calling Set while
// the context is being used to evaluate an expression panics.
func (ctx *Context) Set(name string, value float64) *Context {
	if ctx.busy {
		panic("numexpr: Set on in-use context")
	}
	if a := ctx.args[name]; a != nil {
		a.SetValue(value)
		return ctx
	}
	ctx.args[name] = NewArgument(name, value)
	return ctx
}

// Lookup returns the value of a variable and whether it exists.
func (ctx *Context) Lookup(name string) (float64, bool) {
	a := ctx.args[name]
	if a == nil {
		return 0, false
	}
	return a.Value(), true
}

// Arg returns the Argument the context reads for a variable, or nil if there
// is no such variable. Setting the argument's value changes the variable.
func (ctx *Context) Arg(name string) *Argument {
	return ctx.args[name]
}

// Clone creates a copy of a context and applies options to it. Arguments are
// copied, so the new context does not see later changes to ctx's variables,
// except for arguments shared through options. The returned context has no
// Result and is safe to use to evaluate an expression.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	n := Context{
		stack: make([]float64, 0, cap(ctx.stack)),
		args:  make(map[string]*Argument, len(ctx.args)),
	}
	for name, a := range ctx.args {
		n.args[name] = NewArgument(name, a.Value())
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case varopt:
			n.args[opt.name] = NewArgument(opt.name, opt.val)
		case varsopt:
			for k, v := range opt {
				n.args[k] = NewArgument(k, v)
			}
		case argopt:
			n.args[opt.arg.Name()] = opt.arg
		default:
			panic("numexpr: unknown option type")
		}
	}
	return &n
}

// Bind creates an Expression that evaluates e with ctx. Each Calculate reads
// the current values of ctx's arguments, so the result can be passed to Sum,
// Prod, and the difference operators along with ctx.Arg.
func (ctx *Context) Bind(e *Expr) *Bound {
	return &Bound{ctx: ctx, e: e}
}

// Bound is an expression bound to a context.
type Bound struct {
	ctx *Context
	e   *Expr
}

// Calculate evaluates the expression. It is NaN if evaluation fails; Err
// gives the reason.
func (b *Bound) Calculate() float64 {
	return b.ctx.Eval(b.e)
}

// Err returns the error from the most recent evaluation, if any.
func (b *Bound) Err() error {
	return b.ctx.Err()
}

var _ Expression = (*Bound)(nil)

// push pushes a value onto the stack.
func (ctx *Context) push(v float64) {
	ctx.stack = append(ctx.stack, v)
}

// pop removes the top from the stack and returns it.
func (ctx *Context) pop() float64 {
	r := ctx.stack[len(ctx.stack)-1]
	ctx.stack = ctx.stack[:len(ctx.stack)-1]
	return r
}

// value evaluates a subtree and removes its result from the stack. On error,
// the stack is restored to its height on entry.
func (ctx *Context) value(n *node) (float64, error) {
	k := len(ctx.stack)
	if err := n.eval(ctx); err != nil {
		ctx.stack = ctx.stack[:k]
		return math.NaN(), err
	}
	return ctx.pop(), nil
}

// binary evaluates both operands of a binary node and replaces them with
// f applied to them.
func (n *node) binary(ctx *Context, f func(a, b float64) float64) error {
	if err := n.left.eval(ctx); err != nil {
		return err
	}
	if err := n.right.eval(ctx); err != nil {
		return err
	}
	r := ctx.pop()
	l := &ctx.stack[len(ctx.stack)-1]
	*l = f(*l, r)
	return nil
}

// eval pushes the node's value to the context's stack.
func (n *node) eval(ctx *Context) error {
	switch n.kind {
	case nodeNum:
		ctx.push(n.val)
	case nodeName:
		a := ctx.args[n.name]
		if a == nil {
			return &NameError{Name: n.name}
		}
		ctx.push(a.Value())
	case nodeCall:
		k := len(ctx.stack)
		var semis []int
		i := 0
		for l := n.right; l != nil; l = l.right {
			if err := l.left.eval(ctx); err != nil {
				return err
			}
			if l.name == ";" {
				semis = append(semis, i)
			}
			i++
		}
		invoc := ctx.stack[k:len(ctx.stack):len(ctx.stack)]
		r, err := n.fn.Call(ctx, invoc, semis)
		if err != nil {
			return err
		}
		ctx.stack = ctx.stack[:k]
		ctx.push(r)
	case nodeIter:
		return n.evaliter(ctx)
	case nodeArg:
		panic("numexpr: eval on nodeArg")
	case nodeNeg:
		if err := n.left.eval(ctx); err != nil {
			return err
		}
		ctx.stack[len(ctx.stack)-1] = -ctx.stack[len(ctx.stack)-1]
	case nodeAdd:
		return n.binary(ctx, add)
	case nodeSub:
		return n.binary(ctx, sub)
	case nodeMul:
		return n.binary(ctx, mul)
	case nodeDiv:
		return n.binary(ctx, mathfunc.Div)
	case nodeMod:
		return n.binary(ctx, mathfunc.Mod)
	case nodePow:
		return n.binary(ctx, mathfunc.Power)
	case nodeNop:
		if err := n.left.eval(ctx); err != nil {
			return err
		}
	default:
		panic("numexpr: invalid AST node " + n.kind.String())
	}
	return nil
}

func add(a, b float64) float64 { return a + b }
func sub(a, b float64) float64 { return a - b }
func mul(a, b float64) float64 { return a * b }

// Eval is a shortcut to parse an expression and return its result using the
// default functions.
func Eval(src io.RuneScanner, opts ...ContextOption) (float64, error) {
	ctx := NewContext(opts...)
	a, err := Parse(src)
	if err != nil {
		return math.NaN(), err
	}
	ctx.Eval(a)
	return ctx.Result(), ctx.Err()
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string, opts ...ContextOption) (float64, error) {
	return Eval(strings.NewReader(src), opts...)
}

// NameError is an error from a lookup for a variable that is missing from the
// evaluation context.
type NameError struct {
	// Name is the name that was missing.
	Name string
}

func (err *NameError) Error() string {
	return "undefined variable: " + strconv.Quote(err.Name)
}
