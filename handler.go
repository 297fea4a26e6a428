package argon

import (
	"errors"
	"io"
)

// Handler receives document events in order. It is the push-style
// complement to the pull API: ParseReader drives a Reader over an
// io.Reader and dispatches each event to the handler.
type Handler interface {
	XMLDeclaration(XMLDeclaration) error
	ProcessingInstruction(ProcessingInstruction) error
	DocumentType(DocumentType) error
	Comment(string) error
	StartElement(StartElement) error
	EndElement(EndElement) error
	Text(string) error
	CData(string) error
	EndDocument() error
}

// EventFuncs is a Handler assembled from optional callbacks; nil
// callbacks ignore their event.
type EventFuncs struct {
	XMLDeclarationFunc        func(XMLDeclaration) error
	ProcessingInstructionFunc func(ProcessingInstruction) error
	DocumentTypeFunc          func(DocumentType) error
	CommentFunc               func(string) error
	StartElementFunc          func(StartElement) error
	EndElementFunc            func(EndElement) error
	TextFunc                  func(string) error
	CDataFunc                 func(string) error
	EndDocumentFunc           func() error
}

func (f *EventFuncs) XMLDeclaration(d XMLDeclaration) error {
	if f.XMLDeclarationFunc == nil {
		return nil
	}
	return f.XMLDeclarationFunc(d)
}

func (f *EventFuncs) ProcessingInstruction(pi ProcessingInstruction) error {
	if f.ProcessingInstructionFunc == nil {
		return nil
	}
	return f.ProcessingInstructionFunc(pi)
}

func (f *EventFuncs) DocumentType(dt DocumentType) error {
	if f.DocumentTypeFunc == nil {
		return nil
	}
	return f.DocumentTypeFunc(dt)
}

func (f *EventFuncs) Comment(s string) error {
	if f.CommentFunc == nil {
		return nil
	}
	return f.CommentFunc(s)
}

func (f *EventFuncs) StartElement(e StartElement) error {
	if f.StartElementFunc == nil {
		return nil
	}
	return f.StartElementFunc(e)
}

func (f *EventFuncs) EndElement(e EndElement) error {
	if f.EndElementFunc == nil {
		return nil
	}
	return f.EndElementFunc(e)
}

func (f *EventFuncs) Text(s string) error {
	if f.TextFunc == nil {
		return nil
	}
	return f.TextFunc(s)
}

func (f *EventFuncs) CData(s string) error {
	if f.CDataFunc == nil {
		return nil
	}
	return f.CDataFunc(s)
}

func (f *EventFuncs) EndDocument() error {
	if f.EndDocumentFunc == nil {
		return nil
	}
	return f.EndDocumentFunc()
}

// ErrDocumentIncomplete is reported by ParseReader when the source
// drains while the reader still wants more data.
var ErrDocumentIncomplete = errors.New("document incomplete at end of input")

// ParseReader feeds src through a Reader chunk by chunk, respecting the
// sink's backpressure, and dispatches every event to h. It returns nil
// once the document completes.
func ParseReader(src io.Reader, h Handler) error {
	r := NewReader()
	chunk := make([]byte, 512)
	pending := []byte(nil)
	eof := false

	for {
		for len(pending) > 0 {
			n := r.WriteData(pending)
			if n == 0 {
				break
			}
			pending = pending[n:]
		}
		if len(pending) == 0 && !eof {
			n, err := src.Read(chunk)
			if n > 0 {
				accepted := r.WriteData(chunk[:n])
				pending = append(pending, chunk[accepted:n]...)
			}
			if err == io.EOF {
				eof = true
			} else if err != nil {
				return err
			}
		}

		for {
			res := r.Parse()
			if res == ResultNeedMoreData {
				break
			}
			if err := dispatch(r, h, res); err != nil {
				return err
			}
			if res == ResultEndOfDocument {
				return h.EndDocument()
			}
		}

		if eof && len(pending) == 0 {
			// no more bytes are coming; a suspended document cannot
			// complete
			return ErrDocumentIncomplete
		}
	}
}

func dispatch(r *Reader, h Handler, res ParsingResult) error {
	switch res {
	case ResultXMLDeclaration:
		return h.XMLDeclaration(r.XMLDeclaration())
	case ResultProcessingInstruction:
		return h.ProcessingInstruction(r.ProcessingInstruction())
	case ResultDocumentType:
		return h.DocumentType(r.DocumentType())
	case ResultComment:
		return h.Comment(r.Comment())
	case ResultStartOfElement:
		return h.StartElement(r.StartOfElement())
	case ResultEndOfElement:
		return h.EndElement(r.EndOfElement())
	case ResultTextNode:
		return h.Text(r.Text())
	case ResultCData:
		return h.CData(r.CData())
	case ResultEndOfDocument:
		return nil
	case ResultError:
		return r.Err()
	}
	return nil
}
