package argon

// doctypeParser recognizes a document type declaration following a
// consumed '<!DOCTYPE': whitespace, the doctype name, optional
// whitespace, '>'. External identifiers and internal subsets are not
// processed; an internal subset is rejected outright rather than
// skipped.
//
// [28] doctypedecl ::= '<!DOCTYPE' S Name (S ExternalID)? S?
//                      ('[' intSubset ']' S?)? '>'
type doctypeParser struct {
	parserCore

	state dtState
	name  nameReader

	doctype DocumentType
}

type dtState int

const (
	dtReadingSpace dtState = iota
	dtReadingName
	dtReadingTerminator
)

func newDoctypeParser(pb *ParsingBuffer) *doctypeParser {
	return &doctypeParser{parserCore: parserCore{pb: pb}, name: nameReader{pb: pb}}
}

func (p *doctypeParser) tokenFound() TokenType {
	return TokenDocumentType
}

// documentType returns the recognized declaration. Valid only after
// parseSuccess.
func (p *doctypeParser) documentType() DocumentType {
	return p.doctype
}

func (p *doctypeParser) parse() parseResult {
	pb := p.pb
	for {
		switch p.state {
		case dtReadingSpace:
			if pb.ReadAhead() == 0 {
				return parseNeedMoreData
			}
			if !IsWhitespace(pb.At(0)) {
				return p.fail(SyntaxError, ErrSpaceRequired)
			}
			p.state = dtReadingName

		case dtReadingName:
			for pb.ReadAhead() > 0 && IsWhitespace(pb.At(0)) {
				pb.Advance(1)
			}
			pb.EraseToCurrentPosition()
			if pb.ReadAhead() == 0 {
				return parseNeedMoreData
			}
			name, res := p.name.read()
			switch res {
			case parseNeedMoreData:
				return parseNeedMoreData
			case parseError:
				return p.fail(SyntaxError, ErrDocTypeNameRequired)
			}
			pb.EraseToCurrentPosition()
			p.doctype.Name = name
			p.state = dtReadingTerminator

		case dtReadingTerminator:
			for pb.ReadAhead() > 0 && IsWhitespace(pb.At(0)) {
				pb.Advance(1)
			}
			pb.EraseToCurrentPosition()
			if pb.ReadAhead() == 0 {
				return parseNeedMoreData
			}
			switch pb.At(0) {
			case '>':
				pb.Advance(1)
				pb.EraseToCurrentPosition()
				return parseSuccess
			case '[':
				return p.fail(SyntaxError, ErrInternalSubset)
			default:
				return p.fail(SyntaxError, ErrDocTypeNotFinished)
			}
		}
	}
}
