package argon

import (
	"github.com/argon-xml/argon/internal/debug"
	"github.com/argon-xml/argon/internal/orderedmap"
)

// startElementParser recognizes a start tag (or empty-element tag)
// following a consumed '<': Name, whitespace-separated attributes, and
// the '>' or '/>' terminator. Attribute order is preserved and duplicate
// names are a well-formedness error.
//
// [40] STag ::= '<' Name (S Attribute)* S? '>'
// [44] EmptyElemTag ::= '<' Name (S Attribute)* S? '/>'
// [41] Attribute ::= Name Eq AttValue
type startElementParser struct {
	parserCore

	state    seState
	name     nameReader
	attrName string
	attrs    *orderedmap.Map[string, Attribute]
	value    *attributeValueParser
	wsSeen   bool

	elem StartElement
}

type seState int

const (
	seReadingName seState = iota
	seDispatch
	seReadingAttrName
	seReadingAttrValue
)

func newStartElementParser(pb *ParsingBuffer) *startElementParser {
	return &startElementParser{
		parserCore: parserCore{pb: pb},
		name:       nameReader{pb: pb},
		attrs:      orderedmap.New[string, Attribute](),
	}
}

func (p *startElementParser) tokenFound() TokenType {
	return TokenStartOfElement
}

// startElement returns the recognized start tag. Valid only after
// parseSuccess.
func (p *startElementParser) startElement() StartElement {
	return p.elem
}

func (p *startElementParser) parse() parseResult {
	pb := p.pb
	for {
		switch p.state {
		case seReadingName:
			name, res := p.name.read()
			switch res {
			case parseNeedMoreData:
				return parseNeedMoreData
			case parseError:
				return p.fail(SyntaxError, ErrInvalidName)
			}
			pb.EraseToCurrentPosition()
			p.elem.Name = name
			if debug.Enabled {
				debug.Printf("start tag %q", name)
			}
			p.state = seDispatch

		case seDispatch:
			if pb.ReadAhead() == 0 {
				return parseNeedMoreData
			}
			switch c := pb.At(0); {
			case IsWhitespace(c):
				pb.Advance(1)
				pb.EraseToCurrentPosition()
				p.wsSeen = true
			case c == '>':
				pb.Advance(1)
				pb.EraseToCurrentPosition()
				return p.finish(false)
			case c == '/':
				if pb.ReadAhead() < 2 {
					return parseNeedMoreData
				}
				if pb.At(1) != '>' {
					return p.fail(SyntaxError, ErrGtRequired)
				}
				pb.Advance(2)
				pb.EraseToCurrentPosition()
				return p.finish(true)
			case IsNameStartChar(c):
				if !p.wsSeen {
					return p.fail(SyntaxError, ErrSpaceRequired)
				}
				p.name.reset()
				p.state = seReadingAttrName
			default:
				return p.fail(SyntaxError, ErrInvalidName)
			}

		case seReadingAttrName:
			name, res := p.name.read()
			switch res {
			case parseNeedMoreData:
				return parseNeedMoreData
			case parseError:
				return p.fail(SyntaxError, ErrInvalidName)
			}
			pb.EraseToCurrentPosition()
			p.attrName = name
			p.value = newAttributeValueParser(pb)
			p.state = seReadingAttrValue

		case seReadingAttrValue:
			res := p.value.parse()
			switch res {
			case parseNeedMoreData:
				return parseNeedMoreData
			case parseError:
				return p.fail(p.value.failure())
			}
			attr := Attribute{
				Name:      p.attrName,
				Value:     p.value.value,
				RawValue:  p.value.raw,
				Quotation: p.value.quotation,
			}
			if err := p.attrs.Set(attr.Name, attr); err != nil {
				return p.fail(WellFormednessError, ErrDuplicateAttribute)
			}
			p.value = nil
			p.wsSeen = false
			p.state = seDispatch
		}
	}
}

// finish assembles the StartElement once the tag terminator has been
// consumed.
func (p *startElementParser) finish(selfClosing bool) parseResult {
	if n := p.attrs.Len(); n > 0 {
		p.elem.Attributes = make([]Attribute, 0, n)
		for _, a := range p.attrs.Range() {
			p.elem.Attributes = append(p.elem.Attributes, a)
		}
	}
	p.elem.selfClosing = selfClosing
	return parseSuccess
}
