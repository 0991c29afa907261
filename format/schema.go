package format

import (
	"awali.dev/awali/jsonfmt"
)

// ParseAutomatonText parses and decodes a JSON automaton document from
// its textual form in one step.
func ParseAutomatonText(text string) (AnyAutomaton, error) {
	n, err := jsonfmt.Parse(text)
	if err != nil {
		return nil, err
	}
	return ParseAutomaton(n)
}

// EncodeAutomatonText renders a into its JSON document form, pretty-
// printed at the given line width.
func EncodeAutomatonText(a AnyAutomaton, width int) string {
	return jsonfmt.Print(a.EncodeJSON(), jsonfmt.PrintOptions{Width: width})
}
