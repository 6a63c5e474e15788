package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateScript(t *testing.T) {
	assert.Equal(t, "var onLoginRequest = function(context) {\n};", GenerateScript(1))
	assert.Equal(t,
		"var onLoginRequest = function(context) {\n    executeStep(1);\n    executeStep(2);\n};",
		GenerateScript(3))
	assert.Equal(t, GenerateScript(3), DefaultScriptFor(2))
}

func TestIsDefaultScript(t *testing.T) {
	tests := []struct {
		name      string
		script    string
		stepCount int
		expected  bool
	}{
		{"generated default", DefaultScriptFor(2), 2, true},
		{"compact formatting", "var onLoginRequest=function(context){executeStep(1);};", 1, true},
		{"wrong step count", DefaultScriptFor(2), 3, false},
		{"empty flow default for zero steps", EmptyFlowScript(), 0, true},
		{"empty flow default for one step", EmptyFlowScript(), 1, true},
		{"custom script", "var onLoginRequest = function(context) { executeStep(2); };", 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsDefaultScript(tt.script, tt.stepCount))
		})
	}
}

func TestMinify(t *testing.T) {
	assert.Equal(t, "vara=1;", Minify(" var  a =\n\t1;\r\n"))
	assert.Equal(t, "", Minify(""))
}

func TestStripSlashes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"no escapes", "var a = 1;", "var a = 1;"},
		{"forward slashes", `https:\/\/x\/y`, "https://x/y"},
		{"quotes", `\"x\" + \'y\'`, `"x" + 'y'`},
		{"backslash", `a\\b`, `a\b`},
		{"control characters", `a\nb\tc\rd`, "a\nb\tc\rd"},
		{"nul", `a\0b`, "a\x00b"},
		{"hex escape", `\x41\x62`, "Ab"},
		{"unicode escape", `caf\u00e9`, "café"},
		{"braced unicode escape", `\u{1F600}!`, "\U0001F600!"},
		{"other characters stand for themselves", `\q\$`, "q$"},
		{"one level only", `\\n`, `\n`},
		{"malformed hex", `\xZZ`, `\xZZ`},
		{"short unicode", `\u12`, `\u12`},
		{"trailing backslash", `end\`, `end\`},
		{"json escaped script", `var s = \"a\\/b\";\nexecuteStep(1);`, "var s = \"a\\/b\";\nexecuteStep(1);"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripSlashes(tt.input))
		})
	}
}

func TestDecodeTemplateScript(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
		ok       bool
	}{
		{"single string", `["X"]`, "X", true},
		{"surrounding whitespace", "  [\"var a;\"]\n", "var a;", true},
		{"escaped newline", `["a\nb"]`, "a\nb", true},
		{"two strings", `["a","b"]`, "", false},
		{"empty array", `[]`, "", false},
		{"number array", `[1]`, "", false},
		{"plain string", `var a = [1];`, "", false},
		{"json string", `"X"`, "", false},
		{"broken json", `["X"`, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, ok := DecodeTemplateScript(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, decoded)
		})
	}
}

func TestEncodeTemplateScript(t *testing.T) {
	encoded := EncodeTemplateScript("var a = \"<b>\";\n")

	decoded, ok := DecodeTemplateScript(encoded)
	assert.True(t, ok)
	assert.Equal(t, "var a = \"<b>\";\n", decoded)
}
