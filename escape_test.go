package argon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandReferences(t *testing.T) {
	inputs := map[string]string{
		"no references":              "no references",
		"&amp;&lt;&gt;&apos;&quot;":  `&<>'"`,
		"a &amp; b":                  "a & b",
		"&#65;":                      "A",
		"&#x41;":                     "A",
		"&#x3042;":                   "あ",
		"mixed &lt;tag&gt; &#33;":    "mixed <tag> !",
	}
	for input, expected := range inputs {
		got, err := ExpandReferences(input)
		require.NoError(t, err, "ExpandReferences(%q)", input)
		assert.Equal(t, expected, got, "ExpandReferences(%q)", input)
	}
}

func TestExpandReferencesErrors(t *testing.T) {
	inputs := []string{
		"a & b",        // bare ampersand
		"&amp",         // missing semicolon
		"&nosuch;",     // undefined entity
		"&#x;",         // empty charref
		"&#xD800;",     // surrogate via charref
		"&#2;",         // control char via charref
	}
	for _, input := range inputs {
		_, err := ExpandReferences(input)
		assert.Error(t, err, "ExpandReferences(%q) should fail", input)
	}
}

func TestEscapeAttValueRoundTrip(t *testing.T) {
	values := []string{
		"plain",
		`a & b < c`,
		`quoted "text" and 'more'`,
		"tab\tand\nnewline",
		"unicode あ",
	}
	for _, v := range values {
		for _, q := range []QuotationMark{Quote, Apostrophe} {
			escaped := EscapeAttValue(v, q)
			require.True(t, IsValidAttValue(escaped), "escaped form %q is a valid AttValue", escaped)
			got, err := ExpandReferences(escaped)
			require.NoError(t, err, "expanding %q", escaped)
			assert.Equal(t, v, got, "round trip %q with quotation %d", v, q)
		}
	}
}

func TestEscapeAttValueQuotationAware(t *testing.T) {
	assert.Equal(t, `&quot;a&quot; 'b'`, EscapeAttValue(`"a" 'b'`, Quote),
		"only the active quote is escaped")
	assert.Equal(t, `"a" &apos;b&apos;`, EscapeAttValue(`"a" 'b'`, Apostrophe),
		"only the active quote is escaped")
}

func TestEscapeText(t *testing.T) {
	assert.Equal(t, "a &amp; b &lt;c&gt;", EscapeText("a & b <c>"))
}

func TestNormalizeLineEndings(t *testing.T) {
	inputs := map[string]string{
		"a\r\nb": "a\nb",
		"a\rb":   "a\nb",
		"a\nb":   "a\nb",
		"\r\r\n": "\n\n",
	}
	for input, expected := range inputs {
		assert.Equal(t, expected, normalizeLineEndings(input), "normalize %q", input)
	}
}
