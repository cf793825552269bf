package console

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// dottedCall is a parsed "Class.verb(args)" line.
type dottedCall struct {
	class string
	verb  string
	id    string
	rest  string // text after `"id", `; empty when absent
}

// parseDottedCall recognises lines shaped exactly like Class.verb(args). The
// class may be empty, the verb may not, and args may not contain ')'.
func parseDottedCall(line string) (dottedCall, bool) {
	p := &parser{src: line}
	var call dottedCall
	call.class = p.ident()
	if !p.consume('.') {
		return dottedCall{}, false
	}
	if call.verb = p.ident(); call.verb == "" {
		return dottedCall{}, false
	}
	if !p.consume('(') {
		return dottedCall{}, false
	}
	args := p.until(')')
	if !p.consume(')') || !p.done() {
		return dottedCall{}, false
	}
	call.id, call.rest = splitCallArgs(args)
	return call, true
}

// splitCallArgs reads `"id"` optionally followed by `, rest`. Anything else is
// taken whole as the id.
func splitCallArgs(args string) (id, rest string) {
	p := &parser{src: args}
	quoted, ok := p.quoted()
	if !ok {
		return args, ""
	}
	if p.done() {
		return quoted, ""
	}
	if p.prefix(", ") {
		return quoted, p.remainder()
	}
	return args, ""
}

// isDictLiteral reports whether rest is brace delimited.
func isDictLiteral(rest string) bool {
	return strings.HasPrefix(rest, "{") && strings.HasSuffix(rest, "}")
}

// attrAndValue turns the rest of a dotted update into the tail of the
// canonical command: an optional `"attr"` then an optional `, value`, joined by
// a space. A rest of any other shape contributes nothing.
func attrAndValue(rest string) string {
	p := &parser{src: rest}
	attr := ""
	if p.peek() == '"' {
		var ok bool
		if attr, ok = p.quoted(); !ok {
			return ""
		}
	}
	value := ""
	if !p.done() {
		if !p.prefix(", ") {
			return ""
		}
		value = p.remainder()
	}
	return attr + " " + value
}

// canonical rewrites the call into "verb Class id [attr value]".
func (c dottedCall) canonical() string {
	tail := ""
	if c.verb == "update" && c.rest != "" {
		tail = attrAndValue(c.rest)
	}
	return c.verb + " " + c.class + " " + c.id + " " + tail
}

// parser is a cursor over one line.
type parser struct {
	src string
	pos int
}

func (p *parser) done() bool { return p.pos >= len(p.src) }

func (p *parser) peek() byte {
	if p.done() {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) consume(c byte) bool {
	if p.done() || p.src[p.pos] != c {
		return false
	}
	p.pos++
	return true
}

func (p *parser) prefix(s string) bool {
	if !strings.HasPrefix(p.src[p.pos:], s) {
		return false
	}
	p.pos += len(s)
	return true
}

func (p *parser) remainder() string {
	s := p.src[p.pos:]
	p.pos = len(p.src)
	return s
}

// ident reads a possibly empty run of letters, digits and underscores.
func (p *parser) ident() string {
	start := p.pos
	for !p.done() {
		r, size := utf8.DecodeRuneInString(p.src[p.pos:])
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		p.pos += size
	}
	return p.src[start:p.pos]
}

// until reads up to, not including, the next c or the end of input.
func (p *parser) until(c byte) string {
	start := p.pos
	if i := strings.IndexByte(p.src[p.pos:], c); i >= 0 {
		p.pos += i
	} else {
		p.pos = len(p.src)
	}
	return p.src[start:p.pos]
}

// quoted reads a double-quoted string without escapes and returns its body.
// The cursor does not move when there is no complete quoted string.
func (p *parser) quoted() (string, bool) {
	if p.peek() != '"' {
		return "", false
	}
	end := strings.IndexByte(p.src[p.pos+1:], '"')
	if end < 0 {
		return "", false
	}
	body := p.src[p.pos+1 : p.pos+1+end]
	p.pos += end + 2
	return body, true
}
