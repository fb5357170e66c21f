package numexpr

import "strconv"

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*SeparatorError)(nil)
	_ InputError = (*CallError)(nil)
	_ InputError = (*IndexError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
)

// errpos formats an error message at a column.
func errpos(col int, msg string) string {
	return "col " + strconv.Itoa(col) + ": " + msg
}

// nargs formats a count of arguments.
func nargs(n int) string {
	if n == 1 {
		return "1 argument"
	}
	return strconv.Itoa(n) + " arguments"
}

// OperatorError is an operator token in a position where the parser cannot
// use it.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the token that was not understood.
	Operator string
	// Unary is whether the parser expected a unary operator at the time.
	Unary bool
}

func (err *OperatorError) Pos() int { return err.Col }

func (err *OperatorError) Error() string {
	if err.Unary {
		return errpos(err.Col, strconv.Quote(err.Operator)+" is not a unary operator")
	}
	return errpos(err.Col, strconv.Quote(err.Operator)+" is not a binary operator")
}

// BracketError is an unmatched or mismatched bracket. At most one of Left and
// Right is empty.
type BracketError struct {
	// Col is the position of the bracket that could not be matched.
	Col int
	// Left is the opening bracket, if any.
	Left string
	// Right is the closing bracket, if any.
	Right string
}

func (err *BracketError) Pos() int { return err.Col }

func (err *BracketError) Error() string {
	switch {
	case err.Left == "":
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	case err.Right == "":
		return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
	}
	return errpos(err.Col, "mismatched bracket: "+err.Left+"expr"+err.Right)
}

// SeparatorError is a comma or semicolon outside an argument list, when the
// parser was not told to stop on it.
type SeparatorError struct {
	// Col is the position of the separator.
	Col int
	// Sep is the separator.
	Sep string
}

func (err *SeparatorError) Pos() int { return err.Col }

func (err *SeparatorError) Error() string {
	return errpos(err.Col, "unexpected separator "+strconv.Quote(err.Sep))
}

// CallError is a function call or iterated operator with an argument count
// that the callee does not accept.
type CallError struct {
	// Col is the position of the end of the call expression.
	Col int
	// Func is the function name that was called.
	Func string
	// Len is the number of arguments the function call tried to imply.
	Len int
	// Want describes the accepted argument counts when Func is an iterated
	// operator such as sum or forw. It is empty for ordinary functions.
	Want string
	// Bare is set when an iterated operator is not followed by a bracketed
	// argument list.
	Bare bool
}

func (err *CallError) Pos() int { return err.Col }

func (err *CallError) Error() string {
	switch {
	case err.Bare:
		return errpos(err.Col, "cannot call "+err.Func+" without a bracketed list of "+err.Want+" arguments")
	case err.Want != "":
		return errpos(err.Col, "cannot call "+err.Func+" with "+nargs(err.Len)+"; it takes "+err.Want)
	}
	return errpos(err.Col, "cannot call "+err.Func+" with "+nargs(err.Len))
}

// IndexError is an index argument of an iterated operator such as sum or
// forw which is not a variable name.
type IndexError struct {
	// Col is the position of the operator's argument list.
	Col int
	// Func is the operator name.
	Func string
	// Arg is the 1-based position of the index argument.
	Arg int
}

func (err *IndexError) Pos() int { return err.Col }

func (err *IndexError) Error() string {
	return errpos(err.Col, "argument "+strconv.Itoa(err.Arg)+" of "+err.Func+" must be a variable name")
}

// EmptyExpressionError is a missing subexpression, e.g. nothing between an
// operator and a closing bracket.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression.
	Col int
	// End is the token that ended the subexpression, or empty at EOF.
	End string
}

func (err *EmptyExpressionError) Pos() int { return err.Col }

func (err *EmptyExpressionError) Error() string {
	switch {
	case err.End != "":
		return errpos(err.Col, "no expression before "+strconv.Quote(err.End))
	case err.Col <= 1:
		return errpos(err.Col, "no expression")
	}
	return errpos(err.Col, "no expression at end")
}
