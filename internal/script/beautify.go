package script

import (
	"strings"
	"unicode"
)

const indentUnit = "    "

// Beautify re-indents script source for display. It breaks lines after
// statements and braces, collapses runs of whitespace outside literals and
// comments and leaves string, template and regular expression literals
// untouched. Formatting an already formatted script is a no-op.
func Beautify(source string) string {
	f := &formatter{src: []rune(source)}
	f.run()
	return strings.Join(f.lines, "\n")
}

type formatter struct {
	src    []rune
	pos    int
	lines  []string
	cur    strings.Builder
	indent int
	space  bool

	// parens counts open parentheses and brackets inside the innermost brace
	// block; statements only end lines at depth zero.
	parens     int
	parenStack []int
}

func (f *formatter) run() {
	for f.pos < len(f.src) {
		r := f.src[f.pos]

		switch {
		case r == '\n':
			f.pos++
			if f.parens == 0 {
				f.flush()
			} else {
				f.space = true
			}
		case unicode.IsSpace(r):
			f.pos++
			f.space = true
		case r == '"' || r == '\'' || r == '`':
			f.copyLiteral(r)
		case r == '/' && f.peek(1) == '/':
			f.copyUntilNewline()
			f.flush()
		case r == '/' && f.peek(1) == '*':
			f.copyBlockComment()
		case r == '/' && f.regexAllowed():
			f.copyRegex()
		case r == '{':
			f.space = true
			f.write("{")
			f.pos++
			f.flush()
			f.indent++
			f.parenStack = append(f.parenStack, f.parens)
			f.parens = 0
		case r == '}':
			f.pos++
			f.flush()
			if f.indent > 0 {
				f.indent--
			}
			if n := len(f.parenStack); n > 0 {
				f.parens = f.parenStack[n-1]
				f.parenStack = f.parenStack[:n-1]
			}
			f.write("}")
			if !f.continuesAfterClose() {
				f.flush()
			}
		case r == ';':
			f.writeTight(";")
			f.pos++
			if f.parens == 0 {
				f.flush()
			}
		case r == '(' || r == '[':
			f.write(string(r))
			f.pos++
			f.parens++
			f.space = false
		case r == ')' || r == ']':
			f.writeTight(string(r))
			f.pos++
			if f.parens > 0 {
				f.parens--
			}
		case r == ',':
			f.writeTight(",")
			f.pos++
		default:
			f.write(string(r))
			f.pos++
		}
	}
	f.flush()
}

func (f *formatter) peek(offset int) rune {
	if f.pos+offset < len(f.src) {
		return f.src[f.pos+offset]
	}
	return 0
}

// write appends text, emitting a single separating space when whitespace was
// skipped since the last write.
func (f *formatter) write(text string) {
	if f.space && f.cur.Len() > 0 && !strings.HasSuffix(f.cur.String(), "(") &&
		!strings.HasSuffix(f.cur.String(), "[") {
		f.cur.WriteByte(' ')
	}
	f.space = false
	f.cur.WriteString(text)
}

// writeTight appends punctuation that never takes a leading space.
func (f *formatter) writeTight(text string) {
	f.space = false
	f.cur.WriteString(text)
}

func (f *formatter) flush() {
	line := strings.TrimSpace(f.cur.String())
	f.cur.Reset()
	f.space = false
	if len(line) == 0 {
		return
	}
	f.lines = append(f.lines, strings.Repeat(indentUnit, f.indent)+line)
}

func (f *formatter) nextSignificant() int {
	i := f.pos
	for i < len(f.src) && unicode.IsSpace(f.src[i]) {
		i++
	}
	return i
}

// continuesAfterClose reports whether the token following a closing brace
// belongs on the same line, as in "};", "})", "} else {".
func (f *formatter) continuesAfterClose() bool {
	i := f.nextSignificant()
	if i >= len(f.src) {
		return false
	}

	switch f.src[i] {
	case ';', ',', ')', ']', '.':
		return true
	}

	rest := string(f.src[i:])
	for _, keyword := range []string{"else", "catch", "finally", "while"} {
		if strings.HasPrefix(rest, keyword) {
			end := i + len(keyword)
			if end >= len(f.src) || !isIdentRune(f.src[end]) {
				f.space = true
				return true
			}
		}
	}

	return false
}

func (f *formatter) copyLiteral(quote rune) {
	start := f.pos
	f.pos++
	for f.pos < len(f.src) {
		r := f.src[f.pos]
		if r == '\\' {
			f.pos += 2
			continue
		}
		f.pos++
		if r == quote {
			break
		}
		if r == '\n' && quote != '`' {
			// Unterminated literal, keep the rest of the line intact.
			break
		}
	}
	f.write(string(f.src[start:min(f.pos, len(f.src))]))
}

func (f *formatter) copyUntilNewline() {
	start := f.pos
	for f.pos < len(f.src) && f.src[f.pos] != '\n' {
		f.pos++
	}
	f.write(strings.TrimRightFunc(string(f.src[start:f.pos]), unicode.IsSpace))
}

func (f *formatter) copyBlockComment() {
	start := f.pos
	f.pos += 2
	for f.pos < len(f.src) {
		if f.src[f.pos] == '*' && f.peek(1) == '/' {
			f.pos += 2
			break
		}
		f.pos++
	}
	f.write(string(f.src[start:min(f.pos, len(f.src))]))
}

// regexAllowed decides whether a slash starts a regular expression literal
// from the previous significant token on the current line: an operator or
// opening punctuation, or a keyword that takes an expression.
func (f *formatter) regexAllowed() bool {
	line := strings.TrimRightFunc(f.cur.String(), unicode.IsSpace)
	if len(line) == 0 {
		return true
	}
	last := line[len(line)-1]
	if strings.IndexByte("(,=:[!&|?{};+-*%<>~^", last) >= 0 {
		return true
	}
	return regexKeywords[lastWord(line)]
}

// regexKeywords are followed by an expression, never by a division.
var regexKeywords = map[string]bool{
	"return":     true,
	"typeof":     true,
	"case":       true,
	"in":         true,
	"of":         true,
	"instanceof": true,
	"new":        true,
	"delete":     true,
	"void":       true,
	"throw":      true,
	"do":         true,
	"else":       true,
	"yield":      true,
	"await":      true,
}

// lastWord returns the identifier line ends with, or "" when it ends with
// anything else. Property names such as "x.return" do not count.
func lastWord(line string) string {
	runes := []rune(line)
	end := len(runes)
	start := end
	for start > 0 && isIdentRune(runes[start-1]) {
		start--
	}
	if start == end || (start > 0 && runes[start-1] == '.') {
		return ""
	}
	return string(runes[start:end])
}

func (f *formatter) copyRegex() {
	start := f.pos
	f.pos++
	inClass := false
	for f.pos < len(f.src) {
		r := f.src[f.pos]
		if r == '\\' {
			f.pos += 2
			continue
		}
		if r == '\n' {
			break
		}
		f.pos++
		if r == '[' {
			inClass = true
		} else if r == ']' {
			inClass = false
		} else if r == '/' && !inClass {
			for f.pos < len(f.src) && unicode.IsLetter(f.src[f.pos]) {
				f.pos++
			}
			break
		}
	}
	f.write(string(f.src[start:min(f.pos, len(f.src))]))
}

func isIdentRune(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
