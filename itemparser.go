package argon

// itemParser is the capability set shared by all token recognizers. A
// parser is a resumable state machine over the parsing buffer: parse may
// be called any number of times, and a parseNeedMoreData return leaves
// the internal sub-state ready to resume without replaying.
//
// Exactly one item parser is active at a time; the reader owns it and
// replaces it once its token has been recognized.
type itemParser interface {
	// parse drives the recognizer over the currently available scalars.
	parse() parseResult

	// tokenFound identifies the recognized token. Valid only after parse
	// returned parseSuccess.
	tokenFound() TokenType

	// setOption reconfigures a running parser. Returns false when the
	// parser does not support the option.
	setOption(o Option) bool

	// isValid reports post-construction sanity.
	isValid() bool

	// failure returns the classification and cause after parseError.
	failure() (ErrorKind, error)
}

// parserCore carries the state every item parser shares: the borrowed
// parsing buffer and the error slot.
type parserCore struct {
	pb    *ParsingBuffer
	kind  ErrorKind
	cause error
}

func (p *parserCore) isValid() bool {
	return p.pb != nil
}

func (p *parserCore) setOption(Option) bool {
	return false
}

func (p *parserCore) failure() (ErrorKind, error) {
	return p.kind, p.cause
}

func (p *parserCore) fail(kind ErrorKind, cause error) parseResult {
	p.kind = kind
	p.cause = cause
	return parseError
}
