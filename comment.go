package argon

// commentParser recognizes comment text following a consumed '<!--' up
// to and including '-->'. A '--' anywhere inside is a well-formedness
// error, which the 3-scalar sliding test below reports as soon as the
// second hyphen is not followed by '>'.
//
// [15] Comment ::= '<!--' ((Char - '-') | ('-' (Char - '-')))* '-->'
type commentParser struct {
	parserCore

	scan int
	text string
}

func newCommentParser(pb *ParsingBuffer) *commentParser {
	return &commentParser{parserCore: parserCore{pb: pb}}
}

func (p *commentParser) tokenFound() TokenType {
	return TokenComment
}

// comment returns the recognized comment text. Valid only after
// parseSuccess.
func (p *commentParser) comment() string {
	return p.text
}

func (p *commentParser) parse() parseResult {
	pb := p.pb
	for {
		if pb.ReadAhead() < p.scan+2 {
			return parseNeedMoreData
		}
		c := pb.At(p.scan)
		if c == '-' && pb.At(p.scan+1) == '-' {
			if pb.ReadAhead() < p.scan+3 {
				return parseNeedMoreData
			}
			if pb.At(p.scan+2) != '>' {
				return p.fail(WellFormednessError, ErrHyphenInComment)
			}
			break
		}
		if !IsChar(c) {
			return p.fail(IllegalCharacter, ErrInvalidChar)
		}
		p.scan++
	}

	pos := pb.Position()
	p.text = normalizeLineEndings(pb.Text(pos, pos+p.scan))
	pb.Advance(p.scan + 3)
	pb.EraseToCurrentPosition()
	return parseSuccess
}
