package numexpr

import (
	"strconv"
	"strings"
)

// node is a node in the abstract syntax tree of an expression.
type node struct {
	kind nodeKind

	// name is the source text of a number, variable, or function.
	name string
	// val is the value of a number.
	val float64
	fn  Func
	op  iterOp

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum  // push val
	nodeName // push lookup(name)

	nodeCall // fn is Func to call, right is link to nodeArg unless niladic
	nodeIter // op is operator to apply, right is link to nodeArg
	nodeArg  // name is "" or "," or ";", eval left, right is link to next arg

	nodeNeg // evaluate left, then negate
	nodeAdd // evaluate left, add right
	nodeSub // evaluate left, sub right
	nodeMul // evaluate left, mul right
	nodeDiv // evaluate left, div by right
	nodeMod // evaluate left, mod by right
	nodePow // evaluate left, exp by right
	nodeNop // evaluate left
)

var nodeKindNames = [...]string{
	nodeNone: "None",
	nodeNum:  "Num",
	nodeName: "Name",
	nodeCall: "Call",
	nodeIter: "Iter",
	nodeArg:  "Arg",
	nodeNeg:  "Neg",
	nodeAdd:  "Add",
	nodeSub:  "Sub",
	nodeMul:  "Mul",
	nodeDiv:  "Div",
	nodeMod:  "Mod",
	nodePow:  "Pow",
	nodeNop:  "Nop",
}

func (k nodeKind) String() string {
	if k < 0 || int(k) >= len(nodeKindNames) {
		return "nodeKind(" + strconv.Itoa(int(k)) + ")"
	}
	return nodeKindNames[k]
}

// args collects the argument expressions of a call or iterated operator.
func (n *node) args() []*node {
	var v []*node
	for l := n.right; l != nil; l = l.right {
		v = append(v, l.left)
	}
	return v
}

// uses reports whether the variable name appears anywhere under n.
func (n *node) uses(name string) bool {
	if n == nil {
		return false
	}
	if n.kind == nodeName && n.name == name {
		return true
	}
	return n.left.uses(name) || n.right.uses(name)
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b, false, false)
	return b.String()
}

func (n *node) fmt(b *strings.Builder, square, alt bool) {
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	switch n.kind {
	case nodeNone:
		// Invalid nodes use invalid characters.
		b.WriteByte('$')
		if n.left != nil {
			n.left.fmt(b, square, alt)
		}
		b.WriteByte('#')
		if n.right != nil {
			n.right.fmt(b, square, alt)
		}
		b.WriteByte('$')
	case nodeNum, nodeName:
		b.WriteString(n.name)
	case nodeCall, nodeIter:
		b.WriteString(n.name)
		n.fmtargs(b, !square, alt)
	case nodeArg:
		// Args usually only appear inside calls, which are handled by fmtargs.
		b.WriteByte(':')
		n.left.fmt(b, !square, alt)
		if n.right != nil {
			n.right.fmt(b, !square, alt)
		}
	case nodeNeg:
		b.WriteByte('-')
		n.left.fmt(b, !square, alt)
	case nodeNop:
		b.WriteByte('+')
		n.left.fmt(b, !square, alt)
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodeMod, nodePow:
		n.left.fmt(b, !square, alt)
		b.WriteString(binsym(n.kind, alt))
		n.right.fmt(b, !square, alt)
	default:
		panic("numexpr: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

// binsym is the spaced operator symbol for a binary node kind.
func binsym(k nodeKind, alt bool) string {
	switch k {
	case nodeAdd:
		return " + "
	case nodeSub:
		return " - "
	case nodeMul:
		if alt {
			return " × "
		}
		return " * "
	case nodeDiv:
		if alt {
			return " ÷ "
		}
		return " / "
	case nodeMod:
		return " % "
	case nodePow:
		return " ^ "
	}
	panic("numexpr: no operator symbol for " + k.String())
}

func (n *node) fmtargs(b *strings.Builder, square, alt bool) {
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	if n.right == nil {
		// Niladic call.
		return
	}
	for a := n.right; a != nil; a = a.right {
		if a.kind != nodeArg {
			b.WriteString("***")
			a.fmt(b, !square, alt)
			return
		}
		if a != n.right {
			b.WriteString(", ")
		}
		a.left.fmt(b, !square, alt)
	}
}
