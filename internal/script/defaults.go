package script

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode"
)

const (
	scriptHeader = "var onLoginRequest = function(context) {"
	scriptFooter = "};"
	stepIndent   = "    "
)

// EmptyFlowScript returns the script shown when the sequence has no steps yet.
func EmptyFlowScript() string {
	return strings.Join([]string{
		scriptHeader,
		stepIndent + "executeStep(1);",
		scriptFooter,
	}, "\n")
}

// GenerateScript returns the canonical script that executes steps 1 to
// steps-1. Callers pass the configured step count plus one so the generated
// script covers every configured step.
func GenerateScript(steps int) string {
	lines := []string{scriptHeader}
	for i := 1; i < steps; i++ {
		lines = append(lines, fmt.Sprintf("%sexecuteStep(%d);", stepIndent, i))
	}
	lines = append(lines, scriptFooter)
	return strings.Join(lines, "\n")
}

// DefaultScriptFor returns the default script for a sequence with the given
// number of configured steps.
func DefaultScriptFor(stepCount int) string {
	return GenerateScript(stepCount + 1)
}

// IsDefaultScript reports whether script equals the default script for
// stepCount, ignoring whitespace.
func IsDefaultScript(script string, stepCount int) bool {
	minified := Minify(script)
	if minified == Minify(DefaultScriptFor(stepCount)) {
		return true
	}
	return stepCount == 0 && minified == Minify(EmptyFlowScript())
}

// Minify strips all whitespace so scripts can be compared regardless of
// formatting.
func Minify(script string) string {
	var b strings.Builder
	b.Grow(len(script))
	for _, r := range script {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// StripSlashes removes one level of backslash escaping. Control escapes
// (\b \f \n \r \t \v \0), \xHH, \uHHHH and \u{H...} become the characters
// they name and any other escaped character stands for itself. A trailing
// lone backslash and malformed hex escapes are kept as written.
func StripSlashes(script string) string {
	if !strings.ContainsRune(script, '\\') {
		return script
	}

	runes := []rune(script)
	var b strings.Builder
	b.Grow(len(script))

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '\\' || i+1 == len(runes) {
			b.WriteRune(r)
			continue
		}

		i++
		next := runes[i]

		if control, ok := controlEscapes[next]; ok {
			b.WriteRune(control)
			continue
		}

		switch next {
		case 'x':
			if code, ok := parseHex(runes[i+1:], 2); ok {
				b.WriteRune(code)
				i += 2
				continue
			}
		case 'u':
			if code, width, ok := unicodeEscape(runes[i+1:]); ok {
				b.WriteRune(code)
				i += width
				continue
			}
		default:
			b.WriteRune(next)
			continue
		}

		// Malformed \x or \u escape
		b.WriteRune('\\')
		b.WriteRune(next)
	}

	return b.String()
}

var controlEscapes = map[rune]rune{
	'b': '\b',
	'f': '\f',
	'n': '\n',
	'r': '\r',
	't': '\t',
	'v': '\v',
	'0': 0,
}

// unicodeEscape parses the part of a \u escape after the "u", either four
// hex digits or a braced code point. width is the number of runes consumed.
func unicodeEscape(runes []rune) (rune, int, bool) {
	if len(runes) > 0 && runes[0] == '{' {
		end := slices.Index(runes, '}')
		if end < 2 {
			return 0, 0, false
		}
		code, ok := parseHex(runes[1:end], end-1)
		if !ok || code > unicode.MaxRune {
			return 0, 0, false
		}
		return code, end + 1, true
	}

	code, ok := parseHex(runes, 4)
	return code, 4, ok
}

// parseHex reads exactly n hex digits from the start of runes.
func parseHex(runes []rune, n int) (rune, bool) {
	if len(runes) < n || n > 6 {
		return 0, false
	}
	code, err := strconv.ParseUint(string(runes[:n]), 16, 32)
	if err != nil {
		return 0, false
	}
	return rune(code), true
}

// DecodeTemplateScript unwraps the template wire shape, a JSON array holding
// exactly one string. The second return value is false for anything else,
// including input that is not JSON at all.
func DecodeTemplateScript(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "[") {
		return "", false
	}

	var values []string
	if err := json.Unmarshal([]byte(trimmed), &values); err != nil {
		return "", false
	}

	if len(values) != 1 {
		return "", false
	}

	return values[0], true
}

// EncodeTemplateScript wraps script in the template wire shape.
func EncodeTemplateScript(script string) string {
	data, err := json.Marshal([]string{script})
	if err != nil {
		// Marshalling a string slice cannot fail
		return "[]"
	}
	return string(data)
}
