package argon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsWhitespace(t *testing.T) {
	for _, c := range []rune{0x20, 0x9, 0xd, 0xa} {
		assert.True(t, IsWhitespace(c), "%#x is whitespace", c)
	}
	for _, c := range []rune{0x0, 0xb, 0xc, 'a', 0xa0, 0x2028} {
		assert.False(t, IsWhitespace(c), "%#x is not whitespace", c)
	}
}

func TestIsChar(t *testing.T) {
	valid := []rune{0x9, 0xa, 0xd, 0x20, 'a', 0xd7ff, 0xe000, 0xfffd, 0x10000, 0x10ffff}
	for _, c := range valid {
		assert.True(t, IsChar(c), "%#x is a Char", c)
	}
	invalid := []rune{0x0, 0x8, 0xb, 0x1f, 0xd800, 0xdfff, 0xfffe, 0xffff, 0x110000}
	for _, c := range invalid {
		assert.False(t, IsChar(c), "%#x is not a Char", c)
	}
}

func TestNameCharClasses(t *testing.T) {
	starts := []rune{'a', 'Z', '_', ':', 0xc0, 0xd8, 0x370, 0x2070, 0x10000}
	for _, c := range starts {
		assert.True(t, IsNameStartChar(c), "%#x starts a name", c)
	}
	nonStarts := []rune{'-', '.', '7', 0xb7, 0xd7, 0x2000, ' '}
	for _, c := range nonStarts {
		assert.False(t, IsNameStartChar(c), "%#x does not start a name", c)
	}

	follows := []rune{'-', '.', '0', '9', 0xb7, 0x300, 0x203f}
	for _, c := range follows {
		assert.True(t, IsNameChar(c), "%#x may continue a name", c)
	}
	assert.False(t, IsNameChar(' '), "whitespace never in a name")
	assert.False(t, IsNameChar(0xd7), "multiplication sign never in a name")
}

func TestIsValidName(t *testing.T) {
	inputs := map[string]bool{
		"":         false,
		"a":        true,
		"_x":       true,
		":ns":      true,
		"a-b.c":    true,
		"0abc":     false,
		"-abc":     false,
		"tag name": false,
		"日本語": true,
	}
	for input, expected := range inputs {
		assert.Equal(t, expected, IsValidName(input), "IsValidName(%q)", input)
	}
}

func TestIsValidPITarget(t *testing.T) {
	inputs := map[string]bool{
		"pitarget":       true,
		"xml-stylesheet": true,
		"xml":            false,
		"XML":            false,
		"xMl":            false,
		"":               false,
		"1bad":           false,
	}
	for input, expected := range inputs {
		assert.Equal(t, expected, IsValidPITarget(input), "IsValidPITarget(%q)", input)
	}
}

func TestIsValidVersionNum(t *testing.T) {
	inputs := map[string]bool{
		"1.0":  true,
		"1.1":  true,
		"1.10": true,
		"1.":   false,
		"2.0":  false,
		"1.x":  false,
		"":     false,
	}
	for input, expected := range inputs {
		assert.Equal(t, expected, IsValidVersionNum(input), "IsValidVersionNum(%q)", input)
	}
}

func TestIsValidEncName(t *testing.T) {
	inputs := map[string]bool{
		"UTF-8":      true,
		"utf8":       true,
		"ISO_8859-1": true,
		"8859":       false,
		"-utf":       false,
		"":           false,
		"euc jp":     false,
	}
	for input, expected := range inputs {
		assert.Equal(t, expected, IsValidEncName(input), "IsValidEncName(%q)", input)
	}
}

func TestIsValidAttValue(t *testing.T) {
	inputs := map[string]bool{
		"":                  true,
		"plain":             true,
		"a &amp; b":         true,
		"&#65;&#x41;":       true,
		"a < b":             false,
		"a & b":             false,
		"trailing &amp":     false,
		"&unknown;":         true, // shape only; resolution happens at expansion
		"&;":                false,
	}
	for input, expected := range inputs {
		assert.Equal(t, expected, IsValidAttValue(input), "IsValidAttValue(%q)", input)
	}
}

func TestIsValidCommentText(t *testing.T) {
	inputs := map[string]bool{
		"":            true,
		"plain text":  true,
		"a - b":       true,
		"a -- b":      false,
		"ends with -": false,
		"-starts":     true,
	}
	for input, expected := range inputs {
		assert.Equal(t, expected, IsValidCommentText(input), "IsValidCommentText(%q)", input)
	}
}

func TestIsValidTextNode(t *testing.T) {
	inputs := map[string]bool{
		"plain":      true,
		"a &gt; b":   true,
		"a ]] b":     true,
		"a ]]> b":    false,
		"a < b":      false,
		"a & b":      false,
	}
	for input, expected := range inputs {
		assert.Equal(t, expected, IsValidTextNode(input), "IsValidTextNode(%q)", input)
	}
}
