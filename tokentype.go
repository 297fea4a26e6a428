package argon

import "github.com/argon-xml/argon/internal/debug"

// tokenTypeParser peeks a short lookahead to classify the next token
// without committing to a sub-parser. The markup prefix of a recognized
// token ('<?', '<!--', '<![CDATA[', '<!DOCTYPE', '</', or the bare '<'
// of a start tag) is consumed and erased; the sub-parser picks up right
// after it.
type tokenTypeParser struct {
	parserCore
	opts        Option
	textAllowed bool
	found       TokenType
}

// The '<!' constructs share a first scalar; classification keeps every
// candidate alive until the lookahead disambiguates.
var bangPrefixes = []struct {
	prefix []rune
	token  TokenType
}{
	{[]rune("<!--"), TokenComment},
	{[]rune("<![CDATA["), TokenCData},
	{[]rune("<!DOCTYPE"), TokenDocumentType},
}

func newTokenTypeParser(pb *ParsingBuffer, opts Option, textAllowed bool) *tokenTypeParser {
	return &tokenTypeParser{
		parserCore:  parserCore{pb: pb},
		opts:        opts,
		textAllowed: textAllowed,
	}
}

func (p *tokenTypeParser) tokenFound() TokenType {
	return p.found
}

func (p *tokenTypeParser) setOption(o Option) bool {
	if o != OptionIgnoreLeadingWhitespace {
		return false
	}
	p.opts.Set(o)
	return true
}

func (p *tokenTypeParser) parse() parseResult {
	pb := p.pb
	for {
		if pb.ReadAhead() == 0 {
			return parseNeedMoreData
		}

		c := pb.At(0)
		if c != '<' && p.textAllowed {
			// inside element content anything that is not markup is
			// character data, whitespace included
			p.found = TokenTextNode
			return parseSuccess
		}

		if IsWhitespace(c) {
			if !p.opts.IsSet(OptionIgnoreLeadingWhitespace) {
				p.found = TokenWhitespace
				return parseSuccess
			}
			n := 0
			for n < pb.ReadAhead() && IsWhitespace(pb.At(n)) {
				n++
			}
			pb.Advance(n)
			pb.EraseToCurrentPosition()
			continue
		}

		if c != '<' {
			if !IsChar(c) {
				return p.fail(IllegalCharacter, ErrInvalidChar)
			}
			return p.fail(SyntaxError, ErrMarkupRequired)
		}

		if pb.ReadAhead() < 2 {
			return parseNeedMoreData
		}

		switch pb.At(1) {
		case '?':
			return p.accept(TokenProcessingInstruction, 2)
		case '/':
			return p.accept(TokenEndOfElement, 2)
		case '!':
			return p.classifyBang()
		default:
			if !IsNameStartChar(pb.At(1)) {
				return p.fail(SyntaxError, ErrMarkupRequired)
			}
			return p.accept(TokenStartOfElement, 1)
		}
	}
}

// classifyBang disambiguates '<!--', '<![CDATA[' and '<!DOCTYPE'.
func (p *tokenTypeParser) classifyBang() parseResult {
	pb := p.pb
	alive := false
	for _, cand := range bangPrefixes {
		i := 2
		for ; i < len(cand.prefix) && i < pb.ReadAhead(); i++ {
			if pb.At(i) != cand.prefix[i] {
				break
			}
		}
		if i == len(cand.prefix) {
			return p.accept(cand.token, len(cand.prefix))
		}
		if i == pb.ReadAhead() {
			alive = true
		}
	}
	if alive {
		return parseNeedMoreData
	}
	return p.fail(SyntaxError, ErrMarkupRequired)
}

func (p *tokenTypeParser) accept(t TokenType, prefixLen int) parseResult {
	if debug.Enabled {
		debug.Printf("token type %s", t)
	}
	p.pb.Advance(prefixLen)
	p.pb.EraseToCurrentPosition()
	p.found = t
	return parseSuccess
}
