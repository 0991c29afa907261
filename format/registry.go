package format

import (
	"io"

	"awali.dev/awali/algo"
	"awali.dev/awali/automaton"
	"awali.dev/awali/awerr"
	"awali.dev/awali/ctx"
	"awali.dev/awali/jsonfmt"
	"awali.dev/awali/label"
	"awali.dev/awali/rational"
	"awali.dev/awali/weightset"
)

// defaultAlphabet is the letter alphabet every registered letterset/
// nullableset/wordset context uses: lowercase ASCII, enough for every
// worked example (evena, count-b, bb, etc) and every registry test
// fixture. A registry entry over a different alphabet is simply a
// different, additionally-registered name; there is no per-document
// alphabet negotiation across the type-erased JSON boundary.
var defaultAlphabet = []rune("abcdefghijklmnopqrstuvwxyz")

// AnyAutomaton is the type-erased handle format.ParseAutomaton returns: an
// automaton whose label/weight types are known only to the registry entry
// that built it, exposing the operations a document-level caller
// (cmd/cora) needs without reaching back into the concrete generic type.
// Binary operations (Product, Sum) fail with an InvalidArgument
// error if the other operand was not built from the same registry entry.
type AnyAutomaton interface {
	EncodeJSON() *jsonfmt.Node
	WriteDot(w io.Writer) error
	String() string
	ContextName() string

	IsDeterministic() bool
	Determinize() AnyAutomaton
	Minimize() AnyAutomaton
	Trim() AnyAutomaton
	Proper() error
	Standardize() AnyAutomaton
	Accepts(letters []rune) bool
	Enumerate(n int) []string
	ShortestWords(limit, maxLen int) []string
	Product(other AnyAutomaton) (AnyAutomaton, error)
	Sum(other AnyAutomaton) (AnyAutomaton, error)
	LinearReduce() AnyAutomaton
	AutToExp() string
}

type anyAutomaton[L comparable, W any] struct {
	a        *automaton.Automaton[L, W]
	alphabet []L
}

func (h anyAutomaton[L, W]) EncodeJSON() *jsonfmt.Node  { return h.a.EncodeJSON() }
func (h anyAutomaton[L, W]) WriteDot(w io.Writer) error { return WriteDot(w, h.a) }
func (h anyAutomaton[L, W]) String() string             { return h.a.String() }
func (h anyAutomaton[L, W]) ContextName() string        { return h.a.Ctx.Name() }

func (h anyAutomaton[L, W]) IsDeterministic() bool {
	return algo.IsDeterministic(h.a)
}

func (h anyAutomaton[L, W]) Determinize() AnyAutomaton {
	d := algo.Determinize[L, W](h.a, h.alphabet, algo.DefaultOptions())
	return anyAutomaton[L, W]{d, h.alphabet}
}

func (h anyAutomaton[L, W]) Minimize() AnyAutomaton {
	m := algo.Minimize[L, W](h.a, h.alphabet)
	return anyAutomaton[L, W]{m, h.alphabet}
}

func (h anyAutomaton[L, W]) Trim() AnyAutomaton {
	algo.Trim(h.a)
	return h
}

func (h anyAutomaton[L, W]) Proper() error {
	return algo.Proper(h.a, algo.Forward)
}

func (h anyAutomaton[L, W]) Standardize() AnyAutomaton {
	return anyAutomaton[L, W]{algo.Standardize(h.a), h.alphabet}
}

func (h anyAutomaton[L, W]) Accepts(letters []rune) bool {
	ls, ok := any(letters).([]L)
	if !ok {
		return false
	}
	return algo.Accepts(h.a, ls)
}

func (h anyAutomaton[L, W]) Enumerate(n int) []string {
	words := algo.Enumerate[L, W](h.a, n)
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = w.Text
	}
	return out
}

func (h anyAutomaton[L, W]) ShortestWords(limit, maxLen int) []string {
	words := algo.ShortestWords[L, W](h.a, limit, maxLen)
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = w.Text
	}
	return out
}

func (h anyAutomaton[L, W]) Product(other AnyAutomaton) (AnyAutomaton, error) {
	o, ok := other.(anyAutomaton[L, W])
	if !ok {
		return nil, awerr.InvalidArg("context", "product requires two automata over the same context")
	}
	return anyAutomaton[L, W]{algo.Product(h.a, o.a), h.alphabet}, nil
}

func (h anyAutomaton[L, W]) Sum(other AnyAutomaton) (AnyAutomaton, error) {
	o, ok := other.(anyAutomaton[L, W])
	if !ok {
		return nil, awerr.InvalidArg("context", "sum requires two automata over the same context")
	}
	return anyAutomaton[L, W]{algo.Sum(h.a, o.a), h.alphabet}, nil
}

func (h anyAutomaton[L, W]) LinearReduce() AnyAutomaton {
	return anyAutomaton[L, W]{algo.LinearReduce(h.a), h.alphabet}
}

func (h anyAutomaton[L, W]) AutToExp() string {
	e := algo.ExpressionFrom(h.a)
	return rational.Print(e, h.a.Ctx.Labels, h.a.Ctx.Weights)
}

// binding is one registry entry: a name plus the ability to decode a JSON
// automaton document into that name's concrete (L, W) instantiation,
// wrapped back up as an AnyAutomaton.
type binding struct {
	name   string
	decode func(n *jsonfmt.Node) (AnyAutomaton, error)
}

func makeBinding[L comparable, W any](name string, labels label.Set[L], weights weightset.Semiring[W], alphabet []L) binding {
	return binding{
		name: name,
		decode: func(n *jsonfmt.Node) (AnyAutomaton, error) {
			c, err := ctx.New(labels, weights)
			if err != nil {
				return nil, err
			}
			a := automaton.New(c)
			if err := automaton.DecodeInto(a, n); err != nil {
				return nil, err
			}
			return anyAutomaton[L, W]{a, alphabet}, nil
		},
	}
}

var registry = buildRegistry()

// nullableAlphabet/wordAlphabet restate defaultAlphabet in each labelset's
// own label type: Nullable{Letter: r} for lan, single-rune strings for
// law. label.Set.Alphabet() always returns []rune regardless of L (see
// label/label.go), so a generic alphabet cannot be derived from the
// labelset value itself here and each kind restates it by hand.
func nullableAlphabet() []label.Nullable {
	out := make([]label.Nullable, len(defaultAlphabet))
	for i, r := range defaultAlphabet {
		out[i] = label.Nullable{Letter: r}
	}
	return out
}

func wordAlphabet() []string {
	out := make([]string, len(defaultAlphabet))
	for i, r := range defaultAlphabet {
		out[i] = string(r)
	}
	return out
}

func buildRegistry() map[string]binding {
	lal := label.NewLetterSet(defaultAlphabet)
	lan := label.NewNullableSet(defaultAlphabet)
	law := label.NewWordSet(defaultAlphabet)
	lao := label.OneSet{}

	reg := map[string]binding{}
	add := func(b binding) { reg[b.name] = b }

	add(makeBinding("lal_char_b", lal, weightset.BSemiring{}, defaultAlphabet))
	add(makeBinding("lal_char_z", lal, weightset.ZSemiring{}, defaultAlphabet))
	add(makeBinding("lal_char_n", lal, weightset.NSemiring{}, defaultAlphabet))
	add(makeBinding("lal_char_q", lal, weightset.QSemiring{}, defaultAlphabet))
	add(makeBinding("lal_char_r", lal, weightset.RSemiring{}, defaultAlphabet))
	add(makeBinding("lal_char_c", lal, weightset.CSemiring{}, defaultAlphabet))
	add(makeBinding("lal_char_f2", lal, weightset.F2Semiring{}, defaultAlphabet))
	add(makeBinding("lal_char_zmin", lal, weightset.TropicalMinPlusSemiring{}, defaultAlphabet))
	add(makeBinding("lal_char_zmax", lal, weightset.TropicalMaxPlusSemiring{}, defaultAlphabet))
	add(makeBinding("lal_char_maxprod", lal, weightset.MaxProdSemiring{}, defaultAlphabet))
	add(makeBinding("lal_char_fuzzy", lal, weightset.FuzzySemiring{}, defaultAlphabet))

	add(makeBinding("lan_char_b", lan, weightset.BSemiring{}, nullableAlphabet()))
	add(makeBinding("lan_char_z", lan, weightset.ZSemiring{}, nullableAlphabet()))
	add(makeBinding("lan_char_q", lan, weightset.QSemiring{}, nullableAlphabet()))

	add(makeBinding("law_char_b", law, weightset.BSemiring{}, wordAlphabet()))
	add(makeBinding("law_char_z", law, weightset.ZSemiring{}, wordAlphabet()))

	add(makeBinding("lao_b", lao, weightset.BSemiring{}, nil))

	return reg
}

// ParseAutomaton reads a JSON automaton document, resolves its "context"
// field against the registry, and decodes the rest of the document into
// the matching concrete instantiation.
func ParseAutomaton(n *jsonfmt.Node) (AnyAutomaton, error) {
	name, _ := n.Child("context").AsString()
	b, ok := registry[name]
	if !ok {
		return nil, awerr.Unsupported("parse automaton", name)
	}
	return b.decode(n)
}

// RegisteredContexts lists every context name the registry can decode,
// in no particular order.
func RegisteredContexts() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	return names
}
