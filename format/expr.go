package format

import (
	"awali.dev/awali/algo"
	"awali.dev/awali/awerr"
	"awali.dev/awali/ctx"
	"awali.dev/awali/label"
	"awali.dev/awali/rational"
	"awali.dev/awali/weightset"
)

// AnyExpr is the type-erased handle for a rational expression, the
// expression-side counterpart of AnyAutomaton. Every exprBinding shares
// the rune letterset, so only the weightset varies across registrations
// (derived_term.go is specialized to rune labels already, for the reasons
// noted in that file).
type AnyExpr interface {
	String() string
	ExpToAut(variant string) (AnyAutomaton, error)
	DerivedTerm() AnyAutomaton
}

type anyExpr[W any] struct {
	c *ctx.Context[rune, W]
	e *rational.Expr[rune, W]
}

func (h anyExpr[W]) String() string {
	return rational.Print(h.e, h.c.Labels, h.c.Weights)
}

func (h anyExpr[W]) ExpToAut(variant string) (AnyAutomaton, error) {
	opts := algo.DefaultOptions()
	opts.Thompson = variant
	a, err := algo.ThompsonFrom(h.c, h.e, opts)
	if err != nil {
		return nil, err
	}
	return anyAutomaton[rune, W]{a, defaultAlphabet}, nil
}

func (h anyExpr[W]) DerivedTerm() AnyAutomaton {
	a := algo.DerivedTerm(h.c, h.e, h.c.Labels)
	return anyAutomaton[rune, W]{a, defaultAlphabet}
}

type exprBinding struct {
	name   string
	decode func(text string) (AnyExpr, error)
}

func makeExprBinding[W any](name string, weights weightset.Semiring[W]) exprBinding {
	labels := label.NewLetterSet(defaultAlphabet)
	c, err := ctx.New[rune, W](labels, weights)
	return exprBinding{
		name: name,
		decode: func(text string) (AnyExpr, error) {
			if err != nil {
				return nil, err
			}
			e, perr := rational.Parse[rune, W](text, labels, weights)
			if perr != nil {
				return nil, perr
			}
			return anyExpr[W]{c, e}, nil
		},
	}
}

var exprRegistry = buildExprRegistry()

func buildExprRegistry() map[string]exprBinding {
	reg := map[string]exprBinding{}
	add := func(b exprBinding) { reg[b.name] = b }
	add(makeExprBinding("lal_char_b", weightset.BSemiring{}))
	add(makeExprBinding("lal_char_z", weightset.ZSemiring{}))
	add(makeExprBinding("lal_char_q", weightset.QSemiring{}))
	add(makeExprBinding("lal_char_r", weightset.RSemiring{}))
	add(makeExprBinding("lal_char_c", weightset.CSemiring{}))
	add(makeExprBinding("lal_char_f2", weightset.F2Semiring{}))
	return reg
}

// ParseExpr parses text as a rational expression over the named context
// (a "lal_char_<weightset>" entry — exactly the contexts that actually
// support expressions, parsing and derivation both being rune-letterset
// operations).
func ParseExpr(name, text string) (AnyExpr, error) {
	b, ok := exprRegistry[name]
	if !ok {
		return nil, awerr.Unsupported("parse expression", name)
	}
	return b.decode(text)
}
