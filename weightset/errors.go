package weightset

import "awali.dev/awali/awerr"

func errExpected(pos int, what string) error {
	return awerr.Parse(pos, "expected %s", what)
}

func errNonStarrable(value string) error {
	return awerr.NonStarrable(value)
}
