package argon

import "strings"

// Writer builds an XML document as a string, validating every piece
// against the same character-class contract the reader enforces. It is
// a state machine over the document structure; each method reports an
// error instead of emitting markup that the reader would reject.
type Writer struct {
	state       writerState
	declSet     bool
	doctype     string
	open        []string
	currentOpen bool
	attrNames   map[string]struct{}
	sb          strings.Builder
}

type writerState int

const (
	writerEmpty writerState = iota
	writerDocumentStarted
	writerElementStarted
	writerInElement
	writerDocumentEnded
)

// NewWriter returns an empty document writer.
func NewWriter() *Writer {
	return &Writer{attrNames: make(map[string]struct{})}
}

// ClearDocument drops everything and starts over.
func (w *Writer) ClearDocument() {
	w.state = writerEmpty
	w.declSet = false
	w.doctype = ""
	w.open = w.open[:0]
	w.currentOpen = false
	w.attrNames = make(map[string]struct{})
	w.sb.Reset()
}

// XMLString returns the document once it has been fully completed (the
// root element ended), and an empty string before that.
func (w *Writer) XMLString() string {
	if w.state != writerDocumentEnded {
		return ""
	}
	return w.sb.String()
}

// SetXMLDeclaration emits the XML declaration. Only a version 1.0,
// UTF-8 declaration is produced, and only into an empty document.
func (w *Writer) SetXMLDeclaration() error {
	if w.state != writerEmpty {
		return ErrInvalidXMLDecl
	}
	w.sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	w.declSet = true
	w.state = writerDocumentStarted
	return nil
}

// SetDocumentType emits '<!DOCTYPE name>'. When set, the root element
// name must match it.
func (w *Writer) SetDocumentType(name string) error {
	if w.doctype != "" {
		return ErrUnexpectedDocumentType
	}
	if w.state != writerEmpty && w.state != writerDocumentStarted {
		return ErrUnexpectedDocumentType
	}
	if !IsValidName(name) {
		return ErrInvalidName
	}
	w.sb.WriteString("<!DOCTYPE ")
	w.sb.WriteString(name)
	w.sb.WriteString(">")
	w.doctype = name
	w.state = writerDocumentStarted
	return nil
}

// AddComment emits a comment. Allowed anywhere except inside a start
// tag, which it implicitly closes.
func (w *Writer) AddComment(text string) error {
	if !IsValidCommentText(text) {
		return ErrHyphenInComment
	}
	switch w.state {
	case writerEmpty:
		w.state = writerDocumentStarted
	case writerElementStarted:
		w.closeStartTag()
	case writerDocumentStarted, writerInElement, writerDocumentEnded:
	}
	w.sb.WriteString("<!--")
	w.sb.WriteString(text)
	w.sb.WriteString("-->")
	return nil
}

// AddProcessingInstruction emits '<?target data?>'.
func (w *Writer) AddProcessingInstruction(target, data string) error {
	if !IsValidPITarget(target) {
		return ErrReservedPITarget
	}
	if strings.Contains(data, "?>") {
		return ErrPINotFinished
	}
	for _, c := range data {
		if !IsChar(c) {
			return ErrInvalidChar
		}
	}
	switch w.state {
	case writerEmpty:
		w.state = writerDocumentStarted
	case writerElementStarted:
		w.closeStartTag()
	case writerDocumentStarted, writerInElement, writerDocumentEnded:
	}
	w.sb.WriteString("<?")
	w.sb.WriteString(target)
	if data != "" {
		w.sb.WriteString(" ")
		w.sb.WriteString(data)
	}
	w.sb.WriteString("?>")
	return nil
}

// StartElement opens a new element. If a document type was set, the
// root element name must match it.
func (w *Writer) StartElement(name string) error {
	if !IsValidName(name) {
		return ErrInvalidName
	}
	switch w.state {
	case writerEmpty, writerDocumentStarted:
		if w.doctype != "" && name != w.doctype {
			return ErrTagNameMismatch
		}
	case writerElementStarted:
		w.closeStartTag()
	case writerInElement:
	default:
		return ErrDocumentEnd
	}
	w.sb.WriteString("<")
	w.sb.WriteString(name)
	w.open = append(w.open, name)
	w.currentOpen = true
	w.attrNames = make(map[string]struct{})
	w.state = writerElementStarted
	return nil
}

// AddAttribute adds name="value" to the element whose start tag is
// still open. Attribute names must be unique within one start tag.
func (w *Writer) AddAttribute(name, value string, q QuotationMark) error {
	if w.state != writerElementStarted {
		return ErrOperationNotAllowed
	}
	if !IsValidName(name) {
		return ErrInvalidName
	}
	if _, dup := w.attrNames[name]; dup {
		return ErrDuplicateAttribute
	}
	escaped := EscapeAttValue(value, q)
	if !IsValidAttValue(escaped) {
		return ErrInvalidChar
	}
	mark := `"`
	if q == Apostrophe {
		mark = `'`
	}
	w.attrNames[name] = struct{}{}
	w.sb.WriteString(" ")
	w.sb.WriteString(name)
	w.sb.WriteString("=")
	w.sb.WriteString(mark)
	w.sb.WriteString(escaped)
	w.sb.WriteString(mark)
	return nil
}

// AddTextNode emits escaped character data inside the current element.
func (w *Writer) AddTextNode(text string) error {
	switch w.state {
	case writerElementStarted:
		w.closeStartTag()
	case writerInElement:
	default:
		return ErrOperationNotAllowed
	}
	escaped := EscapeText(text)
	if !IsValidTextNode(escaped) {
		return ErrInvalidChar
	}
	w.sb.WriteString(escaped)
	return nil
}

// AddCDATA emits a CDATA section inside the current element.
func (w *Writer) AddCDATA(text string) error {
	if strings.Contains(text, "]]>") {
		return ErrMisplacedCDATAEnd
	}
	for _, c := range text {
		if !IsChar(c) {
			return ErrInvalidChar
		}
	}
	switch w.state {
	case writerElementStarted:
		w.closeStartTag()
	case writerInElement:
	default:
		return ErrOperationNotAllowed
	}
	w.sb.WriteString("<![CDATA[")
	w.sb.WriteString(text)
	w.sb.WriteString("]]>")
	return nil
}

// EndElement closes the innermost open element: as a self-closing tag
// when its start tag is still open and nothing was written into it, or
// with an end tag otherwise.
func (w *Writer) EndElement() error {
	if len(w.open) == 0 {
		return ErrUnexpectedEndOfElement
	}
	name := w.open[len(w.open)-1]
	w.open = w.open[:len(w.open)-1]

	if w.state == writerElementStarted && w.currentOpen {
		w.sb.WriteString("/>")
	} else {
		w.sb.WriteString("</")
		w.sb.WriteString(name)
		w.sb.WriteString(">")
	}
	w.currentOpen = false
	w.attrNames = make(map[string]struct{})

	if len(w.open) == 0 {
		w.state = writerDocumentEnded
	} else {
		w.state = writerInElement
	}
	return nil
}

func (w *Writer) closeStartTag() {
	w.sb.WriteString(">")
	w.currentOpen = false
	w.attrNames = make(map[string]struct{})
	w.state = writerInElement
}
