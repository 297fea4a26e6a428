package argon

import (
	"strings"

	"github.com/argon-xml/argon/internal/debug"
)

// processingInstructionParser recognizes everything following a '<?'
// prefix: the target Name, the optional whitespace-separated data, and
// the '?>' terminator. When the parser was installed at document offset
// zero, a case-sensitive 'xml' target switches it into XML declaration
// mode and the data is parsed as the XMLDecl pseudo-attributes instead.
//
// [16] PI ::= '<?' PITarget (S (Char* - (Char* '?>' Char*)))? '?>'
// [23] XMLDecl ::= '<?xml' VersionInfo EncodingDecl? SDDecl? S? '?>'
type processingInstructionParser struct {
	parserCore
	allowXMLDecl bool

	state  piState
	name   nameReader
	target string
	isDecl bool
	scan   int

	found TokenType
	pi    ProcessingInstruction
	decl  XMLDeclaration
}

type piState int

const (
	piReadingTarget piState = iota
	piAfterTarget
	piSkippingSeparator
	piReadingData
)

func newProcessingInstructionParser(pb *ParsingBuffer, allowXMLDecl bool) *processingInstructionParser {
	return &processingInstructionParser{
		parserCore:   parserCore{pb: pb},
		name:         nameReader{pb: pb},
		allowXMLDecl: allowXMLDecl,
	}
}

func (p *processingInstructionParser) tokenFound() TokenType {
	return p.found
}

// processingInstruction returns the recognized instruction. Valid only
// when tokenFound reported TokenProcessingInstruction.
func (p *processingInstructionParser) processingInstruction() ProcessingInstruction {
	return p.pi
}

// xmlDeclaration returns the recognized declaration. Valid only when
// tokenFound reported TokenXMLDeclaration.
func (p *processingInstructionParser) xmlDeclaration() XMLDeclaration {
	return p.decl
}

func (p *processingInstructionParser) parse() parseResult {
	pb := p.pb
	for {
		switch p.state {
		case piReadingTarget:
			name, res := p.name.read()
			switch res {
			case parseNeedMoreData:
				return parseNeedMoreData
			case parseError:
				return p.fail(SyntaxError, ErrInvalidName)
			}
			p.target = name
			if p.allowXMLDecl && name == "xml" {
				p.isDecl = true
			} else if strings.EqualFold(name, "xml") {
				// reserved in any casing anywhere but document offset 0
				return p.fail(WellFormednessError, ErrReservedPITarget)
			}
			if debug.Enabled {
				debug.Printf("pi target %q (decl=%t)", name, p.isDecl)
			}
			p.state = piAfterTarget

		case piAfterTarget:
			if pb.ReadAhead() == 0 {
				return parseNeedMoreData
			}
			switch c := pb.At(0); {
			case c == '?':
				if pb.ReadAhead() < 2 {
					return parseNeedMoreData
				}
				if pb.At(1) != '>' {
					return p.fail(SyntaxError, ErrSpaceRequired)
				}
				pb.Advance(2)
				pb.EraseToCurrentPosition()
				return p.finish("")
			case IsWhitespace(c):
				p.state = piSkippingSeparator
			default:
				return p.fail(SyntaxError, ErrSpaceRequired)
			}

		case piSkippingSeparator:
			for pb.ReadAhead() > 0 && IsWhitespace(pb.At(0)) {
				pb.Advance(1)
			}
			pb.EraseToCurrentPosition()
			if pb.ReadAhead() == 0 {
				return parseNeedMoreData
			}
			p.state = piReadingData

		case piReadingData:
			for {
				if pb.ReadAhead() < p.scan+2 {
					return parseNeedMoreData
				}
				c := pb.At(p.scan)
				if c == '?' && pb.At(p.scan+1) == '>' {
					break
				}
				if !IsChar(c) {
					return p.fail(IllegalCharacter, ErrInvalidChar)
				}
				p.scan++
			}
			pos := pb.Position()
			data := pb.Text(pos, pos+p.scan)
			pb.Advance(p.scan + 2)
			pb.EraseToCurrentPosition()
			return p.finish(data)
		}
	}
}

// finish builds the recognized product once '?>' has been consumed.
func (p *processingInstructionParser) finish(data string) parseResult {
	if p.isDecl {
		decl, err := parseXMLDeclContent(data)
		if err != nil {
			return p.fail(SyntaxError, err)
		}
		p.decl = decl
		p.found = TokenXMLDeclaration
		return parseSuccess
	}
	p.pi = ProcessingInstruction{
		Target: p.target,
		Data:   normalizeLineEndings(data),
	}
	p.found = TokenProcessingInstruction
	return parseSuccess
}

// parseXMLDeclContent parses the pseudo-attributes of an XML
// declaration from the already-recognized PI data.
//
// [24] VersionInfo ::= S 'version' Eq ("'" VersionNum "'" | '"' VersionNum '"')
// [80] EncodingDecl ::= S 'encoding' Eq ('"' EncName '"' | "'" EncName "'")
// [32] SDDecl ::= S 'standalone' Eq (("'" ('yes'|'no') "'") | ('"' ('yes'|'no') '"'))
func parseXMLDeclContent(data string) (XMLDeclaration, error) {
	decl := XMLDeclaration{}
	s := declScanner{src: []rune(data)}

	v, err := s.pseudoAttribute("version", false)
	if err != nil {
		return decl, err
	}
	if !IsValidVersionNum(v) {
		return decl, ErrInvalidVersionNum
	}
	decl.Version = v

	if s.done() {
		return decl, nil
	}

	enc, err := s.pseudoAttribute("encoding", true)
	if err != nil {
		return decl, err
	}
	if enc != "" {
		if !IsValidEncName(enc) {
			return decl, ErrInvalidEncodingName
		}
		decl.Encoding = enc
		if s.done() {
			return decl, nil
		}
	}

	sd, err := s.pseudoAttribute("standalone", true)
	if err != nil {
		return decl, err
	}
	switch sd {
	case "yes":
		decl.Standalone = StandaloneYes
	case "no":
		decl.Standalone = StandaloneNo
	case "":
		// absent
	default:
		return decl, ErrInvalidStandalone
	}
	if !s.done() {
		return decl, ErrInvalidXMLDecl
	}
	return decl, nil
}

// declScanner is a cursor over the XML declaration's pseudo-attribute
// text. The whole declaration is in memory by the time it runs, so it
// does not need to be resumable. The ws flag accumulates whether any
// separator whitespace has been seen since the previous attribute; each
// attribute consumes it.
type declScanner struct {
	src []rune
	pos int
	ws  bool
}

func (s *declScanner) skipBlanks() {
	for s.pos < len(s.src) && IsWhitespace(s.src[s.pos]) {
		s.pos++
		s.ws = true
	}
}

func (s *declScanner) done() bool {
	s.skipBlanks()
	return s.pos >= len(s.src)
}

// pseudoAttribute matches name Eq quoted-value. The separator S before
// the name was either the PI target separator (for the first attribute)
// or whitespace demanded between attributes. Optional attributes report
// an empty value when the name does not match.
func (s *declScanner) pseudoAttribute(name string, optional bool) (string, error) {
	s.skipBlanks()
	if !s.hasPrefix(name) {
		if optional {
			return "", nil
		}
		return "", ErrInvalidXMLDecl
	}
	if s.pos != 0 && !s.ws {
		return "", ErrSpaceRequired
	}
	s.ws = false
	s.pos += len(name)

	s.skipBlanks()
	if s.pos >= len(s.src) || s.src[s.pos] != '=' {
		return "", ErrEqualSignRequired
	}
	s.pos++
	s.skipBlanks()

	if s.pos >= len(s.src) {
		return "", ErrQuoteRequired
	}
	q := s.src[s.pos]
	if q != '"' && q != '\'' {
		return "", ErrQuoteRequired
	}
	s.pos++
	from := s.pos
	for s.pos < len(s.src) && s.src[s.pos] != q {
		s.pos++
	}
	if s.pos >= len(s.src) {
		return "", ErrQuoteRequired
	}
	v := string(s.src[from:s.pos])
	s.pos++
	// whitespace inside Eq must not count as the next separator
	s.ws = false
	return v, nil
}

func (s *declScanner) hasPrefix(name string) bool {
	if len(s.src)-s.pos < len(name) {
		return false
	}
	return string(s.src[s.pos:s.pos+len(name)]) == name
}
