package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strconv"

	"awali.dev/awali/awerr"
	"awali.dev/awali/format"
)

// verb is one cora command: a one-line summary (for usage/list/help) and
// the function that runs it against the trailing argv, returning an exit
// code (exitOK/exitFalse/exitInvalidInput/exitUnsupported).
type verb struct {
	summary string
	run     func(args []string) int
}

// cliFlags collects cora's common flag set. -W doubles as the full
// registered context name (e.g. "lal_char_z"), rather than a separate
// label-kind/alphabet/weightset combination: format's registry already
// exposes a closed, named menu of concrete contexts, so re-deriving a
// context name from separate flags would just reimplement that menu's
// keys by hand.
type cliFlags struct {
	fs      *flag.FlagSet
	weight  *string // -W: registered context name
	inFmt   *string // -I
	outFmt  *string // -O
	algo    *string // -M
	name    *string // -N
	caption *string // -C
	history *bool   // -H
	script  *bool   // -S
	verbose *bool   // -V
}

func newCLIFlags(verbName string) *cliFlags {
	fs := flag.NewFlagSet(verbName, flag.ContinueOnError)
	f := &cliFlags{fs: fs}
	f.weight = fs.String("W", "lal_char_b", "registered context name, e.g. lal_char_z")
	f.inFmt = fs.String("I", "json", "input format: json, fado, grail")
	f.outFmt = fs.String("O", "json", "output format: json, fado, grail, dot, text")
	f.algo = fs.String("M", "", "algorithm variant, verb-dependent")
	f.name = fs.String("N", "", "automaton/expression name metadata")
	f.caption = fs.String("C", "", "caption metadata")
	f.history = fs.Bool("H", false, "print state/transition history")
	f.script = fs.Bool("S", false, "script mode: terse boolean output")
	f.verbose = fs.Bool("V", false, "verbose diagnostics")
	return f
}

func readText(path string) (string, error) {
	if path == "" || path == "-" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(path)
	return string(b), err
}

func readAutomaton(f *cliFlags, path string) (format.AnyAutomaton, error) {
	text, err := readText(path)
	if err != nil {
		return nil, err
	}
	switch *f.inFmt {
	case "json":
		return format.ParseAutomatonText(text)
	case "fado":
		return format.ParseFadoText(text, defaultAlphabet)
	case "grail":
		return format.ParseGrailText(text, defaultAlphabet)
	default:
		return nil, fmt.Errorf("unknown input format %q", *f.inFmt)
	}
}

// defaultAlphabet is the letter alphabet fado/grail documents are decoded
// against, since neither line format carries its own alphabet.
var defaultAlphabet = []rune("abcdefghijklmnopqrstuvwxyz")

func writeAutomaton(f *cliFlags, a format.AnyAutomaton) int {
	switch *f.outFmt {
	case "json":
		fmt.Println(format.EncodeAutomatonText(a, 80))
	case "dot":
		if err := a.WriteDot(os.Stdout); err != nil {
			log.Print(err)
			return exitInvalidInput
		}
	case "fado":
		text, err := format.EncodeFadoText(a)
		if err != nil {
			return fail(err)
		}
		fmt.Print(text)
	case "grail":
		text, err := format.EncodeGrailText(a)
		if err != nil {
			return fail(err)
		}
		fmt.Print(text)
	default:
		log.Printf("cora: unknown output format %q", *f.outFmt)
		return exitInvalidInput
	}
	return exitOK
}

func fail(err error) int {
	log.Print(err)
	var unsupported *awerr.UnsupportedErr
	var notImpl *awerr.NotImplementedErr
	if errors.As(err, &unsupported) || errors.As(err, &notImpl) {
		return exitUnsupported
	}
	return exitInvalidInput
}

var verbs map[string]verb

func init() {
	verbs = map[string]verb{
	"cat": {"print an automaton back out unchanged", func(args []string) int {
		f := newCLIFlags("cat")
		if err := f.fs.Parse(args); err != nil {
			return exitInvalidInput
		}
		a, err := readAutomaton(f, f.fs.Arg(0))
		if err != nil {
			return fail(err)
		}
		return writeAutomaton(f, a)
	}},
	"info": {"print a one-line summary of an automaton", func(args []string) int {
		f := newCLIFlags("info")
		if err := f.fs.Parse(args); err != nil {
			return exitInvalidInput
		}
		a, err := readAutomaton(f, f.fs.Arg(0))
		if err != nil {
			return fail(err)
		}
		fmt.Printf("context: %s\ndeterministic: %v\n", a.ContextName(), a.IsDeterministic())
		return exitOK
	}},
	"display": {"print an automaton's tree dump", func(args []string) int {
		f := newCLIFlags("display")
		if err := f.fs.Parse(args); err != nil {
			return exitInvalidInput
		}
		a, err := readAutomaton(f, f.fs.Arg(0))
		if err != nil {
			return fail(err)
		}
		fmt.Println(a.String())
		return exitOK
	}},
	"dot": {"render an automaton in Graphviz DOT", func(args []string) int {
		f := newCLIFlags("dot")
		if err := f.fs.Parse(args); err != nil {
			return exitInvalidInput
		}
		a, err := readAutomaton(f, f.fs.Arg(0))
		if err != nil {
			return fail(err)
		}
		if err := a.WriteDot(os.Stdout); err != nil {
			log.Print(err)
			return exitInvalidInput
		}
		return exitOK
	}},
	"json": {"re-encode an automaton as JSON", func(args []string) int {
		f := newCLIFlags("json")
		if err := f.fs.Parse(args); err != nil {
			return exitInvalidInput
		}
		a, err := readAutomaton(f, f.fs.Arg(0))
		if err != nil {
			return fail(err)
		}
		fmt.Println(format.EncodeAutomatonText(a, 80))
		return exitOK
	}},
	"fado": {"render an automaton in the FAdo line format", func(args []string) int {
		f := newCLIFlags("fado")
		if err := f.fs.Parse(args); err != nil {
			return exitInvalidInput
		}
		a, err := readAutomaton(f, f.fs.Arg(0))
		if err != nil {
			return fail(err)
		}
		text, err := format.EncodeFadoText(a)
		if err != nil {
			return fail(err)
		}
		fmt.Print(text)
		return exitOK
	}},
	"grail": {"render an automaton in the Grail/MERL line format", func(args []string) int {
		f := newCLIFlags("grail")
		if err := f.fs.Parse(args); err != nil {
			return exitInvalidInput
		}
		a, err := readAutomaton(f, f.fs.Arg(0))
		if err != nil {
			return fail(err)
		}
		text, err := format.EncodeGrailText(a)
		if err != nil {
			return fail(err)
		}
		fmt.Print(text)
		return exitOK
	}},
	"trim": {"keep only accessible and coaccessible states", func(args []string) int {
		return unaryAutomatonVerb(args, "trim", func(a format.AnyAutomaton) format.AnyAutomaton { return a.Trim() })
	}},
	"standard": {"rewrite an automaton into standard form", func(args []string) int {
		return unaryAutomatonVerb(args, "standard", func(a format.AnyAutomaton) format.AnyAutomaton { return a.Standardize() })
	}},
	"determinize": {"weighted subset construction", func(args []string) int {
		return unaryAutomatonVerb(args, "determinize", func(a format.AnyAutomaton) format.AnyAutomaton { return a.Determinize() })
	}},
	"minimize": {"Moore-style partition refinement", func(args []string) int {
		return unaryAutomatonVerb(args, "minimize", func(a format.AnyAutomaton) format.AnyAutomaton { return a.Minimize() })
	}},
	"reduce": {"merge states with identical signatures", func(args []string) int {
		return unaryAutomatonVerb(args, "reduce", func(a format.AnyAutomaton) format.AnyAutomaton { return a.LinearReduce() })
	}},
	"is-deterministic": {"test whether an automaton is deterministic", func(args []string) int {
		f := newCLIFlags("is-deterministic")
		if err := f.fs.Parse(args); err != nil {
			return exitInvalidInput
		}
		a, err := readAutomaton(f, f.fs.Arg(0))
		if err != nil {
			return fail(err)
		}
		return boolResult(f, a.IsDeterministic())
	}},
	"proper": {"remove epsilon transitions", func(args []string) int {
		f := newCLIFlags("proper")
		if err := f.fs.Parse(args); err != nil {
			return exitInvalidInput
		}
		a, err := readAutomaton(f, f.fs.Arg(0))
		if err != nil {
			return fail(err)
		}
		if err := a.Proper(); err != nil {
			return fail(err)
		}
		return writeAutomaton(f, a)
	}},
	"eval": {"evaluate an automaton on a word", func(args []string) int {
		f := newCLIFlags("eval")
		if err := f.fs.Parse(args); err != nil {
			return exitInvalidInput
		}
		a, err := readAutomaton(f, f.fs.Arg(0))
		if err != nil {
			return fail(err)
		}
		word := f.fs.Arg(1)
		return boolResult(f, a.Accepts([]rune(word)))
	}},
	"enumerate": {"list the accepted words up to a length", func(args []string) int {
		f := newCLIFlags("enumerate")
		if err := f.fs.Parse(args); err != nil {
			return exitInvalidInput
		}
		a, err := readAutomaton(f, f.fs.Arg(0))
		if err != nil {
			return fail(err)
		}
		n, _ := strconv.Atoi(f.fs.Arg(1))
		for _, w := range a.Enumerate(n) {
			fmt.Println(w)
		}
		return exitOK
	}},
	"shortest": {"list the shortest accepted words", func(args []string) int {
		f := newCLIFlags("shortest")
		if err := f.fs.Parse(args); err != nil {
			return exitInvalidInput
		}
		a, err := readAutomaton(f, f.fs.Arg(0))
		if err != nil {
			return fail(err)
		}
		limit, _ := strconv.Atoi(f.fs.Arg(1))
		for _, w := range a.ShortestWords(limit, 4*limit+16) {
			fmt.Println(w)
		}
		return exitOK
	}},
	"product": {"Hadamard product of two automata", func(args []string) int {
		return binaryAutomatonVerb(args, "product", func(a, b format.AnyAutomaton) (format.AnyAutomaton, error) { return a.Product(b) })
	}},
	"sum": {"disjoint union of two automata", func(args []string) int {
		return binaryAutomatonVerb(args, "sum", func(a, b format.AnyAutomaton) (format.AnyAutomaton, error) { return a.Sum(b) })
	}},
	"aut-to-exp": {"state elimination: automaton to rational expression", func(args []string) int {
		f := newCLIFlags("aut-to-exp")
		if err := f.fs.Parse(args); err != nil {
			return exitInvalidInput
		}
		a, err := readAutomaton(f, f.fs.Arg(0))
		if err != nil {
			return fail(err)
		}
		fmt.Println(a.AutToExp())
		return exitOK
	}},
	"exp-to-aut": {"Thompson-style construction: expression to automaton", func(args []string) int {
		f := newCLIFlags("exp-to-aut")
		if err := f.fs.Parse(args); err != nil {
			return exitInvalidInput
		}
		text, err := readText(f.fs.Arg(0))
		if err != nil {
			return fail(err)
		}
		e, err := format.ParseExpr(*f.weight, text)
		if err != nil {
			return fail(err)
		}
		variant := *f.algo
		if variant == "" {
			variant = "canonical"
		}
		a, err := e.ExpToAut(variant)
		if err != nil {
			return fail(err)
		}
		return writeAutomaton(f, a)
	}},
	"derived-term": {"Antimirov/Brzozowski derived-term construction", func(args []string) int {
		f := newCLIFlags("derived-term")
		if err := f.fs.Parse(args); err != nil {
			return exitInvalidInput
		}
		text, err := readText(f.fs.Arg(0))
		if err != nil {
			return fail(err)
		}
		e, err := format.ParseExpr(*f.weight, text)
		if err != nil {
			return fail(err)
		}
		return writeAutomaton(f, e.DerivedTerm())
	}},
	"list": {"list recognised verbs", func(args []string) int {
		for _, name := range verbNames() {
			fmt.Printf("%-18s %s\n", name, verbs[name].summary)
		}
		return exitOK
	}},
	"help": {"print usage for a verb", func(args []string) int {
		if len(args) == 0 {
			usage()
			return exitOK
		}
		v, ok := verbs[args[0]]
		if !ok {
			log.Printf("cora: unrecognised verb %q", args[0])
			return exitInvalidInput
		}
		fmt.Printf("%s: %s\n", args[0], v.summary)
		return exitOK
	}},
}
}

func verbNames() []string {
	names := make([]string, 0, len(verbs))
	for n := range verbs {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func unaryAutomatonVerb(args []string, name string, op func(format.AnyAutomaton) format.AnyAutomaton) int {
	f := newCLIFlags(name)
	if err := f.fs.Parse(args); err != nil {
		return exitInvalidInput
	}
	a, err := readAutomaton(f, f.fs.Arg(0))
	if err != nil {
		return fail(err)
	}
	return writeAutomaton(f, op(a))
}

func binaryAutomatonVerb(args []string, name string, op func(a, b format.AnyAutomaton) (format.AnyAutomaton, error)) int {
	f := newCLIFlags(name)
	if err := f.fs.Parse(args); err != nil {
		return exitInvalidInput
	}
	a, err := readAutomaton(f, f.fs.Arg(0))
	if err != nil {
		return fail(err)
	}
	b, err := readAutomaton(f, f.fs.Arg(1))
	if err != nil {
		return fail(err)
	}
	r, err := op(a, b)
	if err != nil {
		return fail(err)
	}
	return writeAutomaton(f, r)
}

func boolResult(f *cliFlags, ok bool) int {
	if *f.script {
		fmt.Println(ok)
	} else if ok {
		fmt.Println("true")
	} else {
		fmt.Println("false")
	}
	if ok {
		return exitOK
	}
	return exitFalse
}
