package argon

// attributeValueParser recognizes Eq S? followed by a quoted AttValue.
// It is the sub-machine the start-of-element parser delegates to after
// an attribute name. The delimiting quote is remembered; the logical
// value has entity and character references expanded, while the raw
// escaped form is retained for writer reuse.
//
// [25] Eq ::= S? '=' S?
// [10] AttValue ::= '"' ([^<&"] | Reference)* '"'
//                 | "'" ([^<&'] | Reference)* "'"
type attributeValueParser struct {
	parserCore

	state avState
	quote rune
	scan  int

	quotation QuotationMark
	raw       string
	value     string
}

type avState int

const (
	avReadingEqual avState = iota
	avReadingQuote
	avReadingValue
)

func newAttributeValueParser(pb *ParsingBuffer) *attributeValueParser {
	return &attributeValueParser{parserCore: parserCore{pb: pb}}
}

func (p *attributeValueParser) tokenFound() TokenType {
	return TokenNone
}

func (p *attributeValueParser) parse() parseResult {
	pb := p.pb
	for {
		switch p.state {
		case avReadingEqual:
			p.skipBlanks()
			if pb.ReadAhead() == 0 {
				return parseNeedMoreData
			}
			if pb.At(0) != '=' {
				return p.fail(SyntaxError, ErrEqualSignRequired)
			}
			pb.Advance(1)
			pb.EraseToCurrentPosition()
			p.state = avReadingQuote

		case avReadingQuote:
			p.skipBlanks()
			if pb.ReadAhead() == 0 {
				return parseNeedMoreData
			}
			switch pb.At(0) {
			case '"':
				p.quotation = Quote
			case '\'':
				p.quotation = Apostrophe
			default:
				return p.fail(SyntaxError, ErrQuoteRequired)
			}
			p.quote = pb.At(0)
			pb.Advance(1)
			pb.EraseToCurrentPosition()
			p.state = avReadingValue

		case avReadingValue:
			for {
				if pb.ReadAhead() <= p.scan {
					return parseNeedMoreData
				}
				c := pb.At(p.scan)
				if c == p.quote {
					break
				}
				if c == '<' {
					return p.fail(WellFormednessError, ErrLtInAttValue)
				}
				if !IsChar(c) {
					return p.fail(IllegalCharacter, ErrInvalidChar)
				}
				p.scan++
			}
			pos := pb.Position()
			p.raw = pb.Text(pos, pos+p.scan)
			pb.Advance(p.scan + 1)
			pb.EraseToCurrentPosition()

			expanded, err := ExpandReferences(normalizeLineEndings(p.raw))
			if err != nil {
				if err == ErrEntityNotFound {
					return p.fail(WellFormednessError, err)
				}
				return p.fail(SyntaxError, err)
			}
			p.value = expanded
			return parseSuccess
		}
	}
}

func (p *attributeValueParser) skipBlanks() {
	pb := p.pb
	for pb.ReadAhead() > 0 && IsWhitespace(pb.At(0)) {
		pb.Advance(1)
	}
	pb.EraseToCurrentPosition()
}
