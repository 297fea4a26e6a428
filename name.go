package argon

// nameReader recognizes one Name from the buffer cursor. It is the
// building block the processing instruction, element and doctype parsers
// share. The scan never advances the cursor until the full Name and its
// terminating scalar are visible, so a suspension mid-name resumes by
// extending the match instead of replaying it.
//
// [5] Name ::= NameStartChar (NameChar)*
type nameReader struct {
	pb *ParsingBuffer
	n  int
}

// read extends the match over the available scalars. On parseSuccess the
// Name has been consumed and is returned; the terminating scalar is left
// at the cursor.
func (nr *nameReader) read() (string, parseResult) {
	pb := nr.pb
	if nr.n == 0 {
		if pb.ReadAhead() == 0 {
			return "", parseNeedMoreData
		}
		if !IsNameStartChar(pb.At(0)) {
			return "", parseError
		}
		nr.n = 1
	}
	for {
		if pb.ReadAhead() <= nr.n {
			// cannot tell yet whether the name continues
			return "", parseNeedMoreData
		}
		if !IsNameChar(pb.At(nr.n)) {
			break
		}
		nr.n++
	}
	pos := pb.Position()
	name := pb.Text(pos, pos+nr.n)
	pb.Advance(nr.n)
	return name, parseSuccess
}

// reset readies the reader for another Name.
func (nr *nameReader) reset() {
	nr.n = 0
}
