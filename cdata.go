package argon

// cdataParser recognizes CDATA content following a consumed '<![CDATA['
// up to and including ']]>'. The content is reported verbatim; no
// reference expansion happens inside a CDATA section.
//
// [18] CDSect ::= CDStart CData CDEnd
// [20] CData ::= (Char* - (Char* ']]>' Char*))
type cdataParser struct {
	parserCore

	scan int
	text string
}

func newCDATAParser(pb *ParsingBuffer) *cdataParser {
	return &cdataParser{parserCore: parserCore{pb: pb}}
}

func (p *cdataParser) tokenFound() TokenType {
	return TokenCData
}

// cdata returns the recognized section content. Valid only after
// parseSuccess.
func (p *cdataParser) cdata() string {
	return p.text
}

func (p *cdataParser) parse() parseResult {
	pb := p.pb
	for {
		if pb.ReadAhead() < p.scan+3 {
			return parseNeedMoreData
		}
		c := pb.At(p.scan)
		if c == ']' && pb.At(p.scan+1) == ']' && pb.At(p.scan+2) == '>' {
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
