package jsonfmt

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"awali.dev/awali/awerr"
)

// Options configures ParseWithOptions. EarlyStopAfterMetadata, when
// true, makes it abort (returning what it built so
// far, with no error) immediately after the top-level object's "metadata"
// member has been consumed. This is used by callers that only need an
// automaton or expression's metadata block, e.g. a fast "cora info"
// listing that must not pay for parsing a large transition table.
type Options struct {
	EarlyStopAfterMetadata bool
}

// parser is a hand-rolled recursive-descent JSON reader. It follows the
// same shape as the rest of this module's textual parsers: a single
// mutable cursor over the input, one rune of lookahead, and a sticky
// first error plus a breadcrumb path used to localize it.
type parser struct {
	s    string
	pos  int
	path awerr.Path
	err  error

	opts   Options
	stopped bool
}

// Parse reads a single JSON value from s.
func Parse(s string) (*Node, error) {
	return ParseWithOptions(s, Options{})
}

// ParseWithOptions reads a single JSON value from s, honoring opts.
func ParseWithOptions(s string, opts Options) (*Node, error) {
	p := &parser{s: s, opts: opts}
	p.skipSpace()
	n := p.value()
	if p.err != nil {
		return nil, p.err
	}
	if !p.stopped {
		p.skipSpace()
		if p.pos != len(p.s) {
			return nil, p.errorf("trailing content after top-level value")
		}
	}
	return n, nil
}

func (p *parser) errorf(format string, args ...any) error {
	if p.err == nil {
		p.err = awerr.ParseAt(append(awerr.Path{}, p.path...), p.pos, format, args...)
	}
	return p.err
}

func (p *parser) push(step string) { p.path = append(p.path, step) }
func (p *parser) pop()             { p.path = p.path[:len(p.path)-1] }

func (p *parser) peek() byte {
	if p.pos >= len(p.s) {
		return 0
	}
	return p.s[p.pos]
}

func (p *parser) skipSpace() {
	for p.pos < len(p.s) {
		switch p.s[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) expect(c byte) bool {
	if p.err != nil {
		return false
	}
	if p.peek() != c {
		p.errorf("expected %q, got %q", c, p.peekDesc())
		return false
	}
	p.pos++
	return true
}

func (p *parser) peekDesc() string {
	if p.pos >= len(p.s) {
		return "<eof>"
	}
	return string(p.s[p.pos])
}

// value parses any JSON value at the current position.
func (p *parser) value() *Node {
	if p.err != nil {
		return nil
	}
	p.skipSpace()
	switch c := p.peek(); {
	case c == '{':
		return p.object()
	case c == '[':
		return p.array()
	case c == '"':
		return &Node{Kind: String, Str: p.stringLit()}
	case c == 't' || c == 'f':
		return p.boolLit()
	case c == 'n':
		return p.nullLit()
	case c == '-' || (c >= '0' && c <= '9'):
		return p.number()
	default:
		p.errorf("unexpected character %q", p.peekDesc())
		return nil
	}
}

func (p *parser) object() *Node {
	n := &Node{Kind: Object}
	p.pos++ // '{'
	p.skipSpace()
	if p.peek() == '}' {
		p.pos++
		return n
	}
	for {
		p.skipSpace()
		if p.peek() != '"' {
			p.errorf("expected object key, got %q", p.peekDesc())
			return n
		}
		key := p.stringLit()
		if p.err != nil {
			return n
		}
		p.push(key)
		p.skipSpace()
		p.expect(':')
		v := p.value()
		p.pop()
		if p.err != nil {
			return n
		}
		n.Props = append(n.Props, Member{Key: key, Value: v})

		if p.opts.EarlyStopAfterMetadata && key == "metadata" {
			p.stopped = true
			return n
		}

		p.skipSpace()
		switch p.peek() {
		case ',':
			p.pos++
			continue
		case '}':
			p.pos++
			return n
		default:
			p.errorf("expected ',' or '}' in object, got %q", p.peekDesc())
			return n
		}
	}
}

func (p *parser) array() *Node {
	n := &Node{Kind: Array}
	p.pos++ // '['
	p.skipSpace()
	if p.peek() == ']' {
		p.pos++
		return n
	}
	for i := 0; ; i++ {
		p.push(strconv.Itoa(i))
		v := p.value()
		p.pop()
		if p.err != nil {
			return n
		}
		n.Elems = append(n.Elems, v)
		p.skipSpace()
		switch p.peek() {
		case ',':
			p.pos++
			continue
		case ']':
			p.pos++
			return n
		default:
			p.errorf("expected ',' or ']' in array, got %q", p.peekDesc())
			return n
		}
	}
}

func (p *parser) boolLit() *Node {
	if strings.HasPrefix(p.s[p.pos:], "true") {
		p.pos += 4
		return &Node{Kind: Bool, Bool: true}
	}
	if strings.HasPrefix(p.s[p.pos:], "false") {
		p.pos += 5
		return &Node{Kind: Bool, Bool: false}
	}
	p.errorf("invalid literal")
	return nil
}

func (p *parser) nullLit() *Node {
	if strings.HasPrefix(p.s[p.pos:], "null") {
		p.pos += 4
		return &Node{Kind: Null}
	}
	p.errorf("invalid literal")
	return nil
}

// number scans a JSON number and classifies it as Int or Float.
//
// The format distinguishes the two not by the presence of '.' or 'e' in
// the source alone, but by whether the scanned digit run parses
// identically as an int64 and as a float64: a literal like "100" is an
// Int, but "1e2", despite denoting the same mathematical value, is kept
// as a Float because its own text does not round-trip through ParseInt.
func (p *parser) number() *Node {
	start := p.pos
	if p.peek() == '-' {
		p.pos++
	}
	if p.peek() == '0' {
		p.pos++
	} else if p.peek() >= '1' && p.peek() <= '9' {
		for p.peek() >= '0' && p.peek() <= '9' {
			p.pos++
		}
	} else {
		p.errorf("invalid number")
		return nil
	}
	if p.peek() == '.' {
		p.pos++
		if !(p.peek() >= '0' && p.peek() <= '9') {
			p.errorf("invalid number: missing fraction digits")
			return nil
		}
		for p.peek() >= '0' && p.peek() <= '9' {
			p.pos++
		}
	}
	if p.peek() == 'e' || p.peek() == 'E' {
		p.pos++
		if p.peek() == '+' || p.peek() == '-' {
			p.pos++
		}
		if !(p.peek() >= '0' && p.peek() <= '9') {
			p.errorf("invalid number: missing exponent digits")
			return nil
		}
		for p.peek() >= '0' && p.peek() <= '9' {
			p.pos++
		}
	}
	raw := p.s[start:p.pos]

	if iv, err := strconv.ParseInt(raw, 10, 64); err == nil {
		if fv, ferr := strconv.ParseFloat(raw, 64); ferr == nil && float64(iv) == fv {
			return &Node{Kind: Int, Int: iv}
		}
	}
	fv, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		p.errorf("invalid number %q", raw)
		return nil
	}
	return &Node{Kind: Float, Float: fv}
}

// stringLit scans a double-quoted JSON string, interpreting the escapes
// \b \f \n \r \t \" \\ \/ and \uXXXX with XX <= 0x1F (the only escaped
// control characters the format defines; higher code points pass through
// a \uXXXX escape as a literal rune, same as standard JSON).
func (p *parser) stringLit() string {
	p.pos++ // opening quote
	var b strings.Builder
	for {
		if p.pos >= len(p.s) {
			p.errorf("unterminated string")
			return b.String()
		}
		c := p.s[p.pos]
		if c == '"' {
			p.pos++
			return b.String()
		}
		if c == '\\' {
			p.pos++
			if p.pos >= len(p.s) {
				p.errorf("unterminated escape")
				return b.String()
			}
			switch e := p.s[p.pos]; e {
			case 'b':
				b.WriteByte('\b')
				p.pos++
			case 'f':
				b.WriteByte('\f')
				p.pos++
			case 'n':
				b.WriteByte('\n')
				p.pos++
			case 'r':
				b.WriteByte('\r')
				p.pos++
			case 't':
				b.WriteByte('\t')
				p.pos++
			case '"', '\\', '/':
				b.WriteByte(e)
				p.pos++
			case 'u':
				p.pos++
				if p.pos+4 > len(p.s) {
					p.errorf("invalid \\u escape")
					return b.String()
				}
				hex := p.s[p.pos : p.pos+4]
				v, err := strconv.ParseUint(hex, 16, 32)
				if err != nil {
					p.errorf("invalid \\u escape %q", hex)
					return b.String()
				}
				p.pos += 4
				b.WriteRune(rune(v))
			default:
				p.errorf("invalid escape \\%c", e)
				return b.String()
			}
			continue
		}
		r, size := utf8.DecodeRuneInString(p.s[p.pos:])
		if r == utf8.RuneError && size <= 1 {
			p.errorf("invalid utf-8 in string")
			return b.String()
		}
		b.WriteRune(r)
		p.pos += size
	}
}
