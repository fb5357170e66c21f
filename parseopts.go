package numexpr

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

// parsectx holds general data for parsing. It is also a ParseOption; that is
// how presets are applied.
type parsectx struct {
	// names is the set of variable names that have been seen this parse.
	names map[string]bool
	// funcs maps identifiers to the functions they call. A nil entry makes
	// the identifier a variable even if it names a default function.
	funcs map[string]Func
	// owned is whether funcs may be modified. Maps that come from presets or
	// the default registry are copied before the first write.
	owned bool
	// resv is a reserved parsed node. parsearglist sets this when it parses a
	// single parenthesized term so that the parser can back it out to an
	// implicit multiplication if the function is niladic.
	resv *node
	// wseof is a string containing the whitespace characters that trigger an
	// EOF token from the lexer.
	wseof string
	// ceof and seof indicate whether commas and semicolons, respectively, are
	// allowed at the end of an expression.
	ceof, seof bool
	// nodefaults indicates that funcs has an entry for every default function.
	nodefaults bool
	// noiter disables sum, prod, forw, and back.
	noiter bool
}

// optfunc is a ParseOption that edits the parse context in place.
type optfunc func(p *parsectx)

func (f optfunc) parseOption(p parsectx) parsectx {
	f(&p)
	return p
}

// own makes funcs safe to modify.
func (p *parsectx) own() {
	if p.owned {
		return
	}
	m := make(map[string]Func, len(p.funcs)+1)
	for k, v := range p.funcs {
		m[k] = v
	}
	p.funcs = m
	p.owned = true
}

func (p *parsectx) setfunc(name string, fn Func) {
	p.own()
	p.funcs[name] = fn
}

// checkdefaults sets nodefaults if every default function has an entry.
func (p *parsectx) checkdefaults() {
	if p.nodefaults {
		return
	}
	for k := range globalfuncs {
		if _, ok := p.funcs[k]; !ok {
			return
		}
	}
	p.nodefaults = true
}

// resolve fills in the default functions that no option has set.
func (p *parsectx) resolve() {
	switch {
	case p.funcs == nil:
		p.funcs = globalfuncs
		p.nodefaults = true
	case !p.nodefaults:
		p.own()
		for k, v := range globalfuncs {
			if _, ok := p.funcs[k]; !ok {
				p.funcs[k] = v
			}
		}
		p.nodefaults = true
	}
}

// ParseFunc sets a function for parsing. To disable parsing a function, pass
// nil for fn.
func ParseFunc(name string, fn Func) ParseOption {
	return optfunc(func(p *parsectx) { p.setfunc(name, fn) })
}

// ParseFuncs sets a group of functions for parsing. To disable parsing any
// function, set it to nil. fns is copied.
func ParseFuncs(fns map[string]Func) ParseOption {
	return optfunc(func(p *parsectx) {
		for k, v := range fns {
			p.setfunc(k, v)
		}
		p.checkdefaults()
	})
}

// ParseConst makes name parse as a constant with value v.
func ParseConst(name string, v float64) ParseOption {
	return ParseFunc(name, Constant(v))
}

// ParseVars makes each name parse as a variable, even if it names a default
// function or constant. E.g. ParseVars("e") lets an expression use e as an
// ordinary variable.
func ParseVars(names ...string) ParseOption {
	return optfunc(func(p *parsectx) {
		for _, name := range names {
			p.setfunc(name, nil)
		}
	})
}

// DisableDefaultFuncs disables all default functions during parsing. Their
// names will be parsed as variables instead. The iterated operators sum,
// prod, forw, and back are unaffected; see DisableIterOps.
func DisableDefaultFuncs() ParseOption {
	return optfunc(func(p *parsectx) {
		p.own()
		for k := range globalfuncs {
			p.funcs[k] = nil
		}
		p.nodefaults = true
	})
}

// DisableIterOps makes sum, prod, forw, and back parse like any other
// identifier: as functions if set with ParseFunc, otherwise as variables.
func DisableIterOps() ParseOption {
	return optfunc(func(p *parsectx) { p.noiter = true })
}

// StopOn tells the parser to treat a list of characters as ending the
// expression. Each rune must be a comma, semicolon, or whitespace codepoint.
// Whitespace does not end an expression where a term is expected, e.g. at the
// beginning of an expression or following an operator or bracket. Commas and
// semicolons do not end expressions inside bracketed function argument lists.
//
// StopOn overrides the effect of any previous StopOn in the parsing options,
// including in presets. With no arguments, StopOn produces the default
// termination behavior, which is to parse to EOF.
func StopOn(chars ...rune) ParseOption {
	var ceof, seof bool
	var ws strings.Builder
	for _, r := range chars {
		switch {
		case r == ',':
			ceof = true
		case r == ';':
			seof = true
		case unicode.IsSpace(r):
			if !strings.ContainsRune(ws.String(), r) {
				ws.WriteRune(r)
			}
		default:
			panic("numexpr: cannot stop on " + strconv.QuoteRune(r))
		}
	}
	wseof := ws.String()
	return optfunc(func(p *parsectx) {
		p.ceof, p.seof, p.wseof = ceof, seof, wseof
	})
}

// ParsingPreset creates a parsing preset that may be more efficient when using
// the same non-default parsing options for many calls to Parse. A preset
// panics when it would change any option from the default, but it is safe to
// apply other options after a preset.
func ParsingPreset(opts ...ParseOption) ParseOption {
	var p parsectx
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	if p.funcs != nil {
		p.resolve()
	}
	p.owned = false
	return &p
}

func (o *parsectx) parseOption(p parsectx) parsectx {
	if p.funcs != nil || p.wseof != "" || p.ceof || p.seof || p.noiter {
		panic("numexpr: preset applied to non-default parse config")
	}
	p.funcs, p.owned, p.nodefaults = o.funcs, false, o.nodefaults
	p.wseof, p.ceof, p.seof = o.wseof, o.ceof, o.seof
	p.noiter = o.noiter
	return p
}
