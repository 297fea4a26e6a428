package argon

// textNodeParser recognizes character data in element content: every
// scalar up to but excluding the next '<'. References are expanded in
// the reported value; a literal ']]>' in content is a well-formedness
// error.
//
// [14] CharData ::= [^<&]* - ([^<&]* ']]>' [^<&]*)
type textNodeParser struct {
	parserCore

	scan int
	text string
}

func newTextNodeParser(pb *ParsingBuffer) *textNodeParser {
	return &textNodeParser{parserCore: parserCore{pb: pb}}
}

func (p *textNodeParser) tokenFound() TokenType {
	return TokenTextNode
}

// textNode returns the recognized character data with references
// expanded. Valid only after parseSuccess.
func (p *textNodeParser) textNode() string {
	return p.text
}

func (p *textNodeParser) parse() parseResult {
	pb := p.pb
	for {
		if pb.ReadAhead() <= p.scan {
			return parseNeedMoreData
		}
		c := pb.At(p.scan)
		if c == '<' {
			break
		}
		if !IsChar(c) {
			return p.fail(IllegalCharacter, ErrInvalidChar)
		}
		if c == ']' {
			// hold only while the lookahead could still form ']]>'
			if pb.ReadAhead() < p.scan+2 {
				return parseNeedMoreData
			}
			if pb.At(p.scan+1) == ']' {
				if pb.ReadAhead() < p.scan+3 {
					return parseNeedMoreData
				}
				if pb.At(p.scan+2) == '>' {
					return p.fail(WellFormednessError, ErrMisplacedCDATAEnd)
				}
			}
		}
		p.scan++
	}

	pos := pb.Position()
	raw := pb.Text(pos, pos+p.scan)
	pb.Advance(p.scan)
	pb.EraseToCurrentPosition()

	expanded, err := ExpandReferences(normalizeLineEndings(raw))
	if err != nil {
		if err == ErrEntityNotFound {
			return p.fail(WellFormednessError, err)
		}
		return p.fail(SyntaxError, err)
	}
	p.text = expanded
	return parseSuccess
}
