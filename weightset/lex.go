package weightset

import (
	"unicode/utf8"

	"awali.dev/awali/awerr"
)

// lexer scans numeric weight literals: integers, signed fractions "a/b",
// decimals, complex "a+bi", and the special literals "oo"/"-oo". Its
// shape — a position/width cursor with next/back and a sticky first
// error — is adapted from util/semver/lex.go's rune scanner.
type lexer struct {
	str string
	pos int
	wid int
	err error
}

const eof = -1

func newLexer(s string, pos int) *lexer {
	return &lexer{str: s, pos: pos}
}

func (l *lexer) setErr(msg string) {
	if l.err == nil {
		l.err = awerr.Parse(l.pos, "%s", msg)
	}
}

func (l *lexer) next() rune {
	if l.pos >= len(l.str) {
		l.wid = 0
		return eof
	}
	r, wid := utf8.DecodeRuneInString(l.str[l.pos:])
	l.pos += wid
	l.wid = wid
	return r
}

func (l *lexer) back() {
	l.pos -= l.wid
	l.wid = 0
}

func (l *lexer) peek() rune {
	r := l.next()
	l.back()
	return r
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// scanDigits consumes a (possibly empty) run of ASCII digits.
func (l *lexer) scanDigits() string {
	start := l.pos
	for isDigit(l.peek()) {
		l.next()
	}
	return l.str[start:l.pos]
}

// scanSign consumes an optional leading '+' or '-'.
func (l *lexer) scanSign() (neg bool) {
	switch l.peek() {
	case '-':
		l.next()
		return true
	case '+':
		l.next()
		return false
	}
	return false
}

// scanInfinity consumes "oo" (any sign already consumed by the caller),
// used by N-bounded, the tropical semirings, and R to parse "oo"/"-oo".
func (l *lexer) scanInfinity() bool {
	save := l.pos
	if l.next() == 'o' && l.next() == 'o' {
		return true
	}
	l.pos = save
	return false
}
