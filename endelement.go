package argon

// endElementParser recognizes an end tag following a consumed '</':
// the Name, optional whitespace, and '>'. Matching the name against the
// open element is the reader's job; the parser only recognizes the
// production.
//
// [42] ETag ::= '</' Name S? '>'
type endElementParser struct {
	parserCore

	state eeState
	name  nameReader

	elem EndElement
}

type eeState int

const (
	eeReadingName eeState = iota
	eeReadingTerminator
)

func newEndElementParser(pb *ParsingBuffer) *endElementParser {
	return &endElementParser{parserCore: parserCore{pb: pb}, name: nameReader{pb: pb}}
}

func (p *endElementParser) tokenFound() TokenType {
	return TokenEndOfElement
}

// endElement returns the recognized end tag. Valid only after
// parseSuccess.
func (p *endElementParser) endElement() EndElement {
	return p.elem
}

func (p *endElementParser) parse() parseResult {
	pb := p.pb
	for {
		switch p.state {
		case eeReadingName:
			name, res := p.name.read()
			switch res {
			case parseNeedMoreData:
				return parseNeedMoreData
			case parseError:
				return p.fail(SyntaxError, ErrInvalidName)
			}
			pb.EraseToCurrentPosition()
			p.elem.Name = name
			p.state = eeReadingTerminator

		case eeReadingTerminator:
			for pb.ReadAhead() > 0 && IsWhitespace(pb.At(0)) {
				pb.Advance(1)
			}
			pb.EraseToCurrentPosition()
			if pb.ReadAhead() == 0 {
				return parseNeedMoreData
			}
			if pb.At(0) != '>' {
				return p.fail(SyntaxError, ErrGtRequired)
			}
			pb.Advance(1)
			pb.EraseToCurrentPosition()
			return parseSuccess
		}
	}
}
