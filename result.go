package argon

// ParsingResult is what a single Parse call reports back to the host.
type ParsingResult int

const (
	ResultNone ParsingResult = iota
	ResultNeedMoreData
	ResultXMLDeclaration
	ResultProcessingInstruction
	ResultDocumentType
	ResultComment
	ResultCData
	ResultStartOfElement
	ResultEndOfElement
	ResultTextNode
	ResultEndOfDocument
	ResultError
)

func (r ParsingResult) String() string {
	switch r {
	case ResultNone:
		return "None"
	case ResultNeedMoreData:
		return "NeedMoreData"
	case ResultXMLDeclaration:
		return "XmlDeclaration"
	case ResultProcessingInstruction:
		return "ProcessingInstruction"
	case ResultDocumentType:
		return "DocumentType"
	case ResultComment:
		return "Comment"
	case ResultCData:
		return "CData"
	case ResultStartOfElement:
		return "StartOfElement"
	case ResultEndOfElement:
		return "EndOfElement"
	case ResultTextNode:
		return "TextNode"
	case ResultEndOfDocument:
		return "EndOfDocument"
	case ResultError:
		return "Error"
	}
	return "Unknown"
}

// documentPhase tracks where in the document grammar the reader is.
// It only ever advances, except for the Element <-> Epilog boundary
// which is crossed when the root element closes.
type documentPhase int

const (
	phasePrologWaitForXMLDeclaration documentPhase = iota
	phasePrologWaitForDocumentType
	phaseElement
	phaseEpilog
)

// parsingState is the reader's top-level state machine state. One item
// parser is active in every state except idle, the terminal error state,
// and the *Read states that bridge one emitted event to the next token.
type parsingState int

const (
	stateIdle parsingState = iota
	stateReadingTokenType
	stateReadingProcessingInstruction
	stateReadingDocumentType
	stateReadingComment
	stateReadingCData
	stateReadingStartOfElement
	stateReadingEndOfElement
	stateReadingTextNode
	stateTokenRead
	stateEndOfDocument
	stateError
)

// parseResult is the tri-state outcome of driving an item parser.
type parseResult int

const (
	parseNeedMoreData parseResult = iota
	parseSuccess
	parseError
)

// TokenType identifies the syntactic item an item parser recognized.
type TokenType int

const (
	TokenNone TokenType = iota
	TokenWhitespace
	TokenProcessingInstruction
	TokenXMLDeclaration
	TokenDocumentType
	TokenComment
	TokenCData
	TokenStartOfElement
	TokenEndOfElement
	TokenTextNode
)

func (t TokenType) String() string {
	switch t {
	case TokenNone:
		return "None"
	case TokenWhitespace:
		return "Whitespace"
	case TokenProcessingInstruction:
		return "ProcessingInstruction"
	case TokenXMLDeclaration:
		return "XmlDeclaration"
	case TokenDocumentType:
		return "DocumentType"
	case TokenComment:
		return "Comment"
	case TokenCData:
		return "CData"
	case TokenStartOfElement:
		return "StartOfElement"
	case TokenEndOfElement:
		return "EndOfElement"
	case TokenTextNode:
		return "TextNode"
	}
	return "Unknown"
}

// Option is a bitmask reconfiguring a running item parser.
type Option int

const (
	// OptionIgnoreLeadingWhitespace makes the token type parser consume
	// any whitespace run silently before classifying the next token.
	OptionIgnoreLeadingWhitespace Option = 1 << iota
)

func (o *Option) Set(n Option) {
	*o = *o | n
}

func (o Option) IsSet(n Option) bool {
	return o&n != 0
}
