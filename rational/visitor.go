package rational

import (
	"strings"

	"awali.dev/awali/weightset"
)

// Visitor is the double-dispatch protocol algorithms (derived-term,
// constant-term, state elimination's inverse) traverse an Expr with,
// mirroring the original engine's visitor-based ExpVisitor without
// needing a virtual-dispatch hierarchy: a type switch on Op stands in for
// the visitor's per-operator overloads.
type Visitor[L, W any, R any] interface {
	VisitZero() R
	VisitOne() R
	VisitAtom(l L) R
	VisitSum(kids []*Expr[L, W]) R
	VisitProd(kids []*Expr[L, W]) R
	VisitStar(sub *Expr[L, W]) R
	VisitPlus(sub *Expr[L, W]) R
	VisitMaybe(sub *Expr[L, W]) R
	VisitComplement(sub *Expr[L, W]) R
	VisitConjunction(kids []*Expr[L, W]) R
	VisitShuffle(kids []*Expr[L, W]) R
	VisitLDiv(lhs, rhs *Expr[L, W]) R
	VisitTransposition(sub *Expr[L, W]) R
	VisitLWeight(w W, sub *Expr[L, W]) R
	VisitRWeight(sub *Expr[L, W], w W) R
}

// Visit dispatches e to the matching method of v.
func Visit[L, W any, R any](e *Expr[L, W], v Visitor[L, W, R]) R {
	switch e.Op {
	case Zero:
		return v.VisitZero()
	case One:
		return v.VisitOne()
	case Atom:
		return v.VisitAtom(e.Label)
	case Sum:
		return v.VisitSum(e.Kids)
	case Prod:
		return v.VisitProd(e.Kids)
	case Star:
		return v.VisitStar(e.Sub)
	case Plus:
		return v.VisitPlus(e.Sub)
	case Maybe:
		return v.VisitMaybe(e.Sub)
	case Complement:
		return v.VisitComplement(e.Sub)
	case Conjunction:
		return v.VisitConjunction(e.Kids)
	case Shuffle:
		return v.VisitShuffle(e.Kids)
	case LDiv:
		return v.VisitLDiv(e.LHS, e.RHS)
	case Transposition:
		return v.VisitTransposition(e.Sub)
	case LWeight:
		return v.VisitLWeight(e.Weight, e.Sub)
	case RWeight:
		return v.VisitRWeight(e.Sub, e.Weight)
	default:
		panic("rational: unreachable op " + e.Op.String())
	}
}

// precedence levels for parenthesization when printing, lowest binds
// loosest: sum < shuffle < conjunction < ldiv < prod < postfix-unary.
func precedence(op Op) int {
	switch op {
	case Sum:
		return 0
	case Shuffle:
		return 1
	case Conjunction:
		return 2
	case LDiv:
		return 3
	case Prod:
		return 4
	case Star, Plus, Maybe, Complement, Transposition, LWeight, RWeight:
		return 5
	default:
		return 6
	}
}

func printRec[L, W any](e *Expr[L, W], labels atomLabels[L], weights weightset.Semiring[W], minPrec int) string {
	var s string
	switch e.Op {
	case Zero:
		s = "\\z"
	case One:
		s = "\\e"
	case Atom:
		s = labels.Print(e.Label)
	case Sum:
		parts := make([]string, len(e.Kids))
		for i, k := range e.Kids {
			parts[i] = printRec(k, labels, weights, precedence(Sum)+1)
		}
		s = strings.Join(parts, "+")
	case Prod:
		parts := make([]string, len(e.Kids))
		for i, k := range e.Kids {
			parts[i] = printRec(k, labels, weights, precedence(Prod)+1)
		}
		s = strings.Join(parts, ".")
	case Conjunction:
		parts := make([]string, len(e.Kids))
		for i, k := range e.Kids {
			parts[i] = printRec(k, labels, weights, precedence(Conjunction)+1)
		}
		s = strings.Join(parts, "&")
	case Shuffle:
		parts := make([]string, len(e.Kids))
		for i, k := range e.Kids {
			parts[i] = printRec(k, labels, weights, precedence(Shuffle)+1)
		}
		s = strings.Join(parts, ":")
	case LDiv:
		s = printRec(e.LHS, labels, weights, precedence(LDiv)+1) + "{\\}" +
			printRec(e.RHS, labels, weights, precedence(LDiv)+1)
	case Star:
		s = printRec(e.Sub, labels, weights, precedence(Star)) + "*"
	case Plus:
		s = printRec(e.Sub, labels, weights, precedence(Plus)) + "{+}"
	case Maybe:
		s = printRec(e.Sub, labels, weights, precedence(Maybe)) + "?"
	case Complement:
		s = printRec(e.Sub, labels, weights, precedence(Complement)) + "{c}"
	case Transposition:
		s = printRec(e.Sub, labels, weights, precedence(Transposition)) + "{T}"
	case LWeight:
		s = "<" + weights.Print(e.Weight) + ">" + printRec(e.Sub, labels, weights, precedence(LWeight))
	case RWeight:
		s = printRec(e.Sub, labels, weights, precedence(RWeight)) + "<" + weights.Print(e.Weight) + ">"
	default:
		panic("rational: unreachable op " + e.Op.String())
	}
	if precedence(e.Op) < minPrec {
		return "(" + s + ")"
	}
	return s
}
