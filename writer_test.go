package argon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterBuildsDocument(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.SetXMLDeclaration())
	require.NoError(t, w.SetDocumentType("root"))
	require.NoError(t, w.AddComment(" generated "))
	require.NoError(t, w.StartElement("root"))
	require.NoError(t, w.AddAttribute("a", "1", Quote))
	require.NoError(t, w.AddAttribute("b", `two & "three"`, Apostrophe))
	require.NoError(t, w.AddTextNode("x < y"))
	require.NoError(t, w.StartElement("child"))
	require.NoError(t, w.EndElement())
	require.NoError(t, w.AddCDATA("<raw>"))
	require.NoError(t, w.EndElement())

	want := `<?xml version="1.0" encoding="UTF-8"?>` +
		`<!DOCTYPE root>` +
		`<!-- generated -->` +
		`<root a="1" b='two &amp; "three"'>x &lt; y<child/><![CDATA[<raw>]]></root>`
	assert.Equal(t, want, w.XMLString())
}

func TestWriterIncompleteDocumentYieldsNothing(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.StartElement("root"))
	assert.Equal(t, "", w.XMLString(), "open root yields no document")

	require.NoError(t, w.EndElement())
	assert.Equal(t, "<root/>", w.XMLString(), "untouched element self-closes")
}

func TestWriterStateErrors(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.StartElement("root"))
	require.NoError(t, w.AddTextNode("content"))

	assert.Error(t, w.AddAttribute("late", "v", Quote),
		"attributes only while the start tag is open")
	assert.Error(t, w.SetXMLDeclaration(), "declaration only into an empty document")
	assert.Error(t, w.SetDocumentType("root"), "doctype only before the root element")

	require.NoError(t, w.EndElement())
	assert.Error(t, w.EndElement(), "no element left to end")
	assert.Error(t, w.AddTextNode("trailing"), "no text outside the root")
}

func TestWriterRejectsInvalidPieces(t *testing.T) {
	w := NewWriter()
	assert.Error(t, w.AddComment("a -- b"), "double hyphen in comment")
	assert.Error(t, w.AddProcessingInstruction("xml", "data"), "reserved target")
	assert.Error(t, w.AddProcessingInstruction("pi", "a ?> b"), "terminator in data")
	assert.Error(t, w.StartElement("1bad"), "invalid element name")

	require.NoError(t, w.StartElement("root"))
	assert.Error(t, w.AddAttribute("1bad", "v", Quote), "invalid attribute name")
	require.NoError(t, w.AddAttribute("a", "1", Quote))
	assert.Error(t, w.AddAttribute("a", "2", Quote), "duplicate attribute name")
}

func TestWriterDoctypeConstrainsRoot(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.SetDocumentType("html"))
	assert.Error(t, w.StartElement("body"), "root must match the doctype name")
	require.NoError(t, w.StartElement("html"))
}

// property 6: what the writer escapes, the reader expands back.
func TestWriterReaderRoundTrip(t *testing.T) {
	values := []string{
		"plain",
		`a & b < c > d`,
		`"quotes" and 'apostrophes'`,
		"unicode あ",
	}

	for _, v := range values {
		w := NewWriter()
		require.NoError(t, w.StartElement("r"))
		require.NoError(t, w.AddAttribute("v", v, Quote))
		require.NoError(t, w.AddTextNode(v))
		require.NoError(t, w.EndElement())
		doc := w.XMLString()

		r := NewReader()
		require.Equal(t, len(doc), r.WriteData([]byte(doc)), "document fits the sink")

		require.Equal(t, ResultStartOfElement, r.Parse(), "doc %q", doc)
		got, ok := r.StartOfElement().Attr("v")
		require.True(t, ok)
		assert.Equal(t, v, got, "attribute round trip via %q", doc)

		require.Equal(t, ResultTextNode, r.Parse(), "doc %q", doc)
		assert.Equal(t, v, r.Text(), "text round trip via %q", doc)

		require.Equal(t, ResultEndOfElement, r.Parse())
		require.Equal(t, ResultEndOfDocument, r.Parse())
	}
}
