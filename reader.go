package argon

import (
	"github.com/lestrrat-go/pdebug"

	"github.com/argon-xml/argon/internal/debug"
)

// DefaultCapacity is the construction default for both the byte sink
// (bytes) and the parsing buffer (scalars). 256 scalars is the floor
// that fits every XML 1.0 prolog production without the host having to
// coordinate chunk boundaries; the default leaves generous headroom for
// attribute-heavy start tags.
const DefaultCapacity = 1024

// Reader is a streaming pull-style XML 1.0 reader. Bytes are pushed in
// with WriteData; Parse drives the document to the next syntactic event
// or to a NeedMoreData suspension. The reader never blocks, never
// spawns work and never invokes callbacks; all suspension is expressed
// through the returned ParsingResult.
//
// A Reader must be used from one goroutine at a time.
type Reader struct {
	sink *ByteSink
	buf  *ParsingBuffer

	item itemParser
	tok  *tokenTypeParser
	pip  *processingInstructionParser
	dtp  *doctypeParser
	cmp  *commentParser
	cdp  *cdataParser
	sep  *startElementParser
	eep  *endElementParser
	txp  *textNodeParser

	state parsingState
	phase documentPhase
	last  ParsingResult
	err   *ParseError

	open       []string
	pendingEnd bool
	bomChecked bool

	decl      XMLDeclaration
	pi        ProcessingInstruction
	doctype   DocumentType
	comment   string
	cdata     string
	text      string
	startElem StartElement
	endElem   EndElement
}

// NewReader returns a reader with DefaultCapacity buffers.
func NewReader() *Reader {
	return NewReaderSize(DefaultCapacity)
}

// NewReaderSize returns a reader whose byte sink holds capacity bytes
// and whose parsing buffer holds capacity scalars. The capacity bounds
// the largest indivisible token the reader can recognize; anything
// larger surfaces as CapacityExceeded.
func NewReaderSize(capacity int) *Reader {
	sink := NewByteSink(capacity)
	r := &Reader{
		sink: sink,
		buf:  NewParsingBuffer(NewUnicodeDecoder(sink), capacity),
	}
	r.reset()
	return r
}

func (r *Reader) reset() {
	r.item = nil
	r.tok = nil
	r.pip = nil
	r.dtp = nil
	r.cmp = nil
	r.cdp = nil
	r.sep = nil
	r.eep = nil
	r.txp = nil
	r.state = stateIdle
	r.phase = phasePrologWaitForXMLDeclaration
	r.last = ResultNone
	r.err = nil
	r.open = r.open[:0]
	r.pendingEnd = false
	r.bomChecked = false
	r.decl = XMLDeclaration{}
	r.pi = ProcessingInstruction{}
	r.doctype = DocumentType{}
	r.comment = ""
	r.cdata = ""
	r.text = ""
	r.startElem = StartElement{}
	r.endElem = EndElement{}
}

// Clear drops all buffered data and parser state and reinitializes the
// reader for a new document.
func (r *Reader) Clear() {
	r.sink.Clear()
	r.buf.Clear()
	r.reset()
}

// WriteData pushes document bytes into the byte sink and returns how
// many were accepted. A short count means the sink is full; call Parse
// to drain it, then push the remainder.
func (r *Reader) WriteData(data []byte) int {
	return r.sink.WriteData(data)
}

// LastParsingResult returns the last value Parse reported, without
// driving the state machine.
func (r *Reader) LastParsingResult() ParsingResult {
	return r.last
}

// Err returns the classifying error after Parse has reported
// ResultError, and nil otherwise.
func (r *Reader) Err() error {
	if r.err == nil {
		return nil
	}
	return r.err
}

// XMLDeclaration is valid immediately after a ResultXMLDeclaration.
func (r *Reader) XMLDeclaration() XMLDeclaration { return r.decl }

// ProcessingInstruction is valid immediately after a
// ResultProcessingInstruction.
func (r *Reader) ProcessingInstruction() ProcessingInstruction { return r.pi }

// DocumentType is valid immediately after a ResultDocumentType.
func (r *Reader) DocumentType() DocumentType { return r.doctype }

// Comment is valid immediately after a ResultComment.
func (r *Reader) Comment() string { return r.comment }

// CData is valid immediately after a ResultCData.
func (r *Reader) CData() string { return r.cdata }

// Text is valid immediately after a ResultTextNode.
func (r *Reader) Text() string { return r.text }

// StartOfElement is valid immediately after a ResultStartOfElement.
func (r *Reader) StartOfElement() StartElement { return r.startElem }

// EndOfElement is valid immediately after a ResultEndOfElement.
func (r *Reader) EndOfElement() EndElement { return r.endElem }

// Depth returns how many elements are currently open.
func (r *Reader) Depth() int { return len(r.open) }

// Parse drives the state machine to the next event. It returns one
// event per call; ResultNeedMoreData is idempotent until more bytes are
// pushed, and ResultError is terminal until Clear.
func (r *Reader) Parse() ParsingResult {
	if pdebug.Enabled {
		g := pdebug.Marker("Reader.Parse")
		defer g.End()
	}

	if r.state == stateError {
		r.last = ResultError
		return ResultError
	}

	// an empty-element tag emits StartOfElement first and holds the
	// synthesized end until the next call
	if r.pendingEnd {
		r.pendingEnd = false
		name := r.open[len(r.open)-1]
		r.popElement()
		r.endElem = EndElement{Name: name}
		r.last = ResultEndOfElement
		return ResultEndOfElement
	}

	if err := r.buf.Pump(); err != nil {
		r.failNow(InvalidEncoding, err)
		r.last = ResultError
		return ResultError
	}
	r.stripBOM()

	result := ResultNone
	for finished := false; !finished; {
		finished = true
		next := stateError

		switch r.state {
		case stateIdle:
			r.installTokenType(Option(0))
			next = stateReadingTokenType
			finished = false

		case stateTokenRead, stateEndOfDocument:
			opts := Option(0)
			if r.phase != phaseElement {
				opts.Set(OptionIgnoreLeadingWhitespace)
			}
			r.installTokenType(opts)
			next = stateReadingTokenType
			finished = false

		case stateReadingTokenType:
			next = r.execReadingTokenType()
			switch next {
			case stateReadingTokenType:
				result = ResultNeedMoreData
			case stateEndOfDocument:
				result = ResultEndOfDocument
			case stateError:
			default:
				finished = false
			}

		case stateReadingProcessingInstruction:
			next, result = r.execReadingProcessingInstruction()

		case stateReadingDocumentType:
			next, result = r.execReadingDocumentType()

		case stateReadingComment:
			next, result = r.execReadingComment()

		case stateReadingCData:
			next, result = r.execReadingCData()

		case stateReadingStartOfElement:
			next, result = r.execReadingStartOfElement()

		case stateReadingEndOfElement:
			next, result = r.execReadingEndOfElement()

		case stateReadingTextNode:
			next, result = r.execReadingTextNode()
		}

		if next == stateError {
			if r.err == nil {
				r.failNow(SyntaxError, ErrMarkupRequired)
			}
			result = ResultError
		}
		r.state = next
	}

	r.last = result
	return result
}

// stripBOM discards a byte order mark at document offset 0. It does not
// demote the document phase; an XML declaration may follow the BOM.
func (r *Reader) stripBOM() {
	if r.bomChecked {
		return
	}
	if r.buf.ReadAhead() == 0 {
		return
	}
	if r.buf.DocumentOffset() == 0 && r.buf.At(0) == 0xfeff {
		r.buf.Advance(1)
		r.buf.EraseToCurrentPosition()
	}
	r.bomChecked = true
}

// installTokenType swaps in a fresh token type parser. Installation is
// also where the erase-at-swap invariant is enforced: no scalars from a
// recognized token may survive into the next one.
func (r *Reader) installTokenType(opts Option) {
	r.buf.EraseToCurrentPosition()
	r.tok = newTokenTypeParser(r.buf, opts, r.phase == phaseElement)
	r.item = r.tok
}

func (r *Reader) install(p itemParser) bool {
	if p == nil || !p.isValid() {
		r.failNow(SyntaxError, ErrInvalidParserConfig)
		return false
	}
	r.buf.EraseToCurrentPosition()
	r.item = p
	return true
}

func (r *Reader) failNow(kind ErrorKind, cause error) {
	if debug.Enabled {
		debug.Printf("parse failure: %s: %s", kind, cause)
	}
	r.err = &ParseError{Kind: kind, Err: cause, Offset: r.buf.DocumentOffset()}
}

func (r *Reader) failParser(p itemParser) parsingState {
	kind, cause := p.failure()
	if cause == nil {
		kind, cause = SyntaxError, ErrMarkupRequired
	}
	r.failNow(kind, cause)
	return stateError
}

// needMore decides whether a suspended parser can ever make progress:
// a full window with nothing erasable means the token is larger than
// the parsing buffer.
func (r *Reader) needMore(resume parsingState) parsingState {
	if r.buf.Full() && r.buf.Position() == 0 {
		r.failNow(CapacityExceeded, ErrTokenTooLarge)
		return stateError
	}
	return resume
}

// popElement closes the innermost open element and flips the phase to
// Epilog when the root closes.
func (r *Reader) popElement() {
	r.open = r.open[:len(r.open)-1]
	if len(r.open) == 0 {
		r.phase = phaseEpilog
	}
}

// execReadingTokenType classifies the next token and installs the item
// parser that will recognize it.
func (r *Reader) execReadingTokenType() parsingState {
	for {
		switch r.tok.parse() {
		case parseNeedMoreData:
			if r.phase == phaseEpilog && r.buf.ReadAhead() == 0 && r.sink.Used() == 0 {
				return stateEndOfDocument
			}
			return r.needMore(stateReadingTokenType)
		case parseError:
			return r.failParser(r.tok)
		}

		switch token := r.tok.tokenFound(); token {
		case TokenWhitespace:
			// whitespace outside markup in the prolog and epilog is
			// consumed silently
			if r.phase == phasePrologWaitForXMLDeclaration {
				r.phase = phasePrologWaitForDocumentType
			}
			r.tok.setOption(OptionIgnoreLeadingWhitespace)
			// go around again with the option set

		case TokenProcessingInstruction:
			allowDecl := r.phase == phasePrologWaitForXMLDeclaration
			r.pip = newProcessingInstructionParser(r.buf, allowDecl)
			if !r.install(r.pip) {
				return stateError
			}
			return stateReadingProcessingInstruction

		case TokenDocumentType:
			if r.phase == phasePrologWaitForXMLDeclaration {
				r.phase = phasePrologWaitForDocumentType
			}
			if r.phase != phasePrologWaitForDocumentType {
				r.failNow(UnexpectedToken, ErrUnexpectedDocumentType)
				return stateError
			}
			r.dtp = newDoctypeParser(r.buf)
			if !r.install(r.dtp) {
				return stateError
			}
			return stateReadingDocumentType

		case TokenComment:
			if r.phase == phasePrologWaitForXMLDeclaration {
				r.phase = phasePrologWaitForDocumentType
			}
			r.cmp = newCommentParser(r.buf)
			if !r.install(r.cmp) {
				return stateError
			}
			return stateReadingComment

		case TokenCData:
			if r.phase != phaseElement {
				r.failNow(UnexpectedToken, ErrUnexpectedCDATA)
				return stateError
			}
			r.cdp = newCDATAParser(r.buf)
			if !r.install(r.cdp) {
				return stateError
			}
			return stateReadingCData

		case TokenStartOfElement:
			if r.phase == phaseEpilog {
				r.failNow(WellFormednessError, ErrDocumentEnd)
				return stateError
			}
			r.sep = newStartElementParser(r.buf)
			if !r.install(r.sep) {
				return stateError
			}
			return stateReadingStartOfElement

		case TokenEndOfElement:
			if r.phase != phaseElement {
				r.failNow(UnexpectedToken, ErrUnexpectedEndOfElement)
				return stateError
			}
			r.eep = newEndElementParser(r.buf)
			if !r.install(r.eep) {
				return stateError
			}
			return stateReadingEndOfElement

		case TokenTextNode:
			r.txp = newTextNodeParser(r.buf)
			if !r.install(r.txp) {
				return stateError
			}
			return stateReadingTextNode

		default:
			r.failNow(UnexpectedToken, ErrMarkupRequired)
			return stateError
		}
	}
}

func (r *Reader) execReadingProcessingInstruction() (parsingState, ParsingResult) {
	switch r.pip.parse() {
	case parseNeedMoreData:
		return r.needMore(stateReadingProcessingInstruction), ResultNeedMoreData
	case parseError:
		return r.failParser(r.pip), ResultError
	}

	switch r.pip.tokenFound() {
	case TokenXMLDeclaration:
		if r.phase != phasePrologWaitForXMLDeclaration {
			r.failNow(WellFormednessError, ErrXMLDeclNotAtStart)
			return stateError, ResultError
		}
		decl := r.pip.xmlDeclaration()
		if !decl.IsValid() {
			r.failNow(SyntaxError, ErrInvalidXMLDecl)
			return stateError, ResultError
		}
		r.decl = decl
		r.phase = phasePrologWaitForDocumentType
		return stateTokenRead, ResultXMLDeclaration

	case TokenProcessingInstruction:
		pi := r.pip.processingInstruction()
		if !pi.IsValid() {
			r.failNow(WellFormednessError, ErrReservedPITarget)
			return stateError, ResultError
		}
		r.pi = pi
		if r.phase == phasePrologWaitForXMLDeclaration {
			r.phase = phasePrologWaitForDocumentType
		}
		return stateTokenRead, ResultProcessingInstruction
	}

	r.failNow(SyntaxError, ErrInvalidParserConfig)
	return stateError, ResultError
}

func (r *Reader) execReadingDocumentType() (parsingState, ParsingResult) {
	switch r.dtp.parse() {
	case parseNeedMoreData:
		return r.needMore(stateReadingDocumentType), ResultNeedMoreData
	case parseError:
		return r.failParser(r.dtp), ResultError
	}
	r.doctype = r.dtp.documentType()
	return stateTokenRead, ResultDocumentType
}

func (r *Reader) execReadingComment() (parsingState, ParsingResult) {
	switch r.cmp.parse() {
	case parseNeedMoreData:
		return r.needMore(stateReadingComment), ResultNeedMoreData
	case parseError:
		return r.failParser(r.cmp), ResultError
	}
	r.comment = r.cmp.comment()
	return stateTokenRead, ResultComment
}

func (r *Reader) execReadingCData() (parsingState, ParsingResult) {
	switch r.cdp.parse() {
	case parseNeedMoreData:
		return r.needMore(stateReadingCData), ResultNeedMoreData
	case parseError:
		return r.failParser(r.cdp), ResultError
	}
	r.cdata = r.cdp.cdata()
	return stateTokenRead, ResultCData
}

func (r *Reader) execReadingStartOfElement() (parsingState, ParsingResult) {
	switch r.sep.parse() {
	case parseNeedMoreData:
		return r.needMore(stateReadingStartOfElement), ResultNeedMoreData
	case parseError:
		return r.failParser(r.sep), ResultError
	}

	elem := r.sep.startElement()
	r.startElem = elem
	r.open = append(r.open, elem.Name)
	r.phase = phaseElement
	r.pendingEnd = elem.selfClosing
	return stateTokenRead, ResultStartOfElement
}

func (r *Reader) execReadingEndOfElement() (parsingState, ParsingResult) {
	switch r.eep.parse() {
	case parseNeedMoreData:
		return r.needMore(stateReadingEndOfElement), ResultNeedMoreData
	case parseError:
		return r.failParser(r.eep), ResultError
	}

	elem := r.eep.endElement()
	if len(r.open) == 0 || r.open[len(r.open)-1] != elem.Name {
		r.failNow(WellFormednessError, ErrTagNameMismatch)
		return stateError, ResultError
	}
	r.popElement()
	r.endElem = elem
	return stateTokenRead, ResultEndOfElement
}

func (r *Reader) execReadingTextNode() (parsingState, ParsingResult) {
	switch r.txp.parse() {
	case parseNeedMoreData:
		return r.needMore(stateReadingTextNode), ResultNeedMoreData
	case parseError:
		return r.failParser(r.txp), ResultError
	}
	r.text = r.txp.textNode()
	return stateTokenRead, ResultTextNode
}
