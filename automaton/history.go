package automaton

// HistoryKind discriminates the shape of a state's History: which
// provenance tag was attached to a state.
type HistoryKind int

const (
	NoHistory HistoryKind = iota
	SingleHistory
	PartitionHistory
	PairHistory
	TupleHistory
	StringHistory
	RatexpHistory
)

// History is a tagged union recording where a derived state came from:
// a single origin state (proper, standardisation), a partition of origin
// states (minimization), a pair of origin states (product/shuffle/
// composition), a tuple of origin states (n-ary product), a free-form
// string tag (state elimination, naming), or a rational expression
// (derived-term construction). Histories are attached only through
// Automaton.SetHistory; the algorithms in package algo do not attach them.
type History struct {
	Kind HistoryKind

	Single StateID
	Pair   [2]StateID
	Tuple  []StateID
	Part   []StateID
	Text   string
	// Expr holds an opaque pointer to the originating rational expression
	// node; it is typed as any to avoid a label<->rational<->automaton
	// import cycle, and is type-asserted back to *rational.Expr[L, W] by
	// code that knows the concrete context.
	Expr any
}

func NewSingleHistory(q StateID) History { return History{Kind: SingleHistory, Single: q} }
func NewPairHistory(p, q StateID) History {
	return History{Kind: PairHistory, Pair: [2]StateID{p, q}}
}
func NewTupleHistory(qs ...StateID) History {
	return History{Kind: TupleHistory, Tuple: append([]StateID{}, qs...)}
}
func NewPartitionHistory(qs ...StateID) History {
	return History{Kind: PartitionHistory, Part: append([]StateID{}, qs...)}
}
func NewStringHistory(s string) History { return History{Kind: StringHistory, Text: s} }
func NewRatexpHistory(expr any) History { return History{Kind: RatexpHistory, Expr: expr} }
