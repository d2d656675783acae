package xrv

// Tokenizer states. The scanner is always in exactly one of these:
// scanning a name (expectMid), scanning a value (expectEnd), between
// fields (expectStart), or inside a quoted value (expectBracket).
type tokenState int

const (
	expectMid tokenState = iota
	expectEnd
	expectStart
	expectBracket
)

const (
	colon   = ':'
	quote   = '"'
	space   = ' '
	cr      = '\r'
	newline = '\n'
)

// Tokenize scans one physical line into its ordered name:value fields.
// The buffer may include the trailing CR/NL; spans in the result index
// into buf. lineNum is only used for error positions.
//
// A bare value ends at a space or at the line terminator; a quoted value
// runs from just after the opening quote to just before the closing one,
// and spaces and colons inside it are literal content. A quote is legal
// only directly after a colon or to close a quote already open. A field
// whose value is still empty at the line terminator is rejected; an empty
// value closed by a space is allowed, which is how the kind field of a
// jump line ("j: jumps:...") tokenizes.
func Tokenize(buf []byte, lineNum int) ([]Field, error) {
	var fields []Field
	var cur Field
	state := expectMid
	seek := 0

	for i := 0; i < len(buf); i++ {
		switch buf[i] {
		case colon:
			switch state {
			case expectMid:
				cur = Field{Name: Span{Start: seek, Len: i - seek}}
				seek = i + 1
				state = expectEnd
			case expectBracket:
				// literal content
			default:
				return nil, &SyntaxError{Line: lineNum, Byte: i, Code: CodeUnexpectedColon}
			}

		case quote:
			switch state {
			case expectEnd:
				if i != seek {
					return nil, &SyntaxError{Line: lineNum, Byte: i, Code: CodeUnexpectedQuote}
				}
				seek = i + 1
				state = expectBracket
			case expectBracket:
				cur.Value = Span{Start: seek, Len: i - seek}
				cur.Quoted = true
				fields = append(fields, cur)
				seek = i + 1
				state = expectStart
			default:
				return nil, &SyntaxError{Line: lineNum, Byte: i, Code: CodeUnexpectedQuote}
			}

		case space:
			switch state {
			case expectEnd:
				cur.Value = Span{Start: seek, Len: i - seek}
				cur.Quoted = false
				fields = append(fields, cur)
				seek = i + 1
				state = expectStart
			case expectStart:
				// inter-field whitespace
			case expectBracket:
				// literal content
			case expectMid:
				return nil, &SyntaxError{Line: lineNum, Byte: i, Code: CodeSpaceInName}
			}

		case cr, newline:
			return endOfLine(fields, cur, state, seek, lineNum, i)

		default:
			if state == expectStart {
				seek = i
				state = expectMid
			}
		}
	}

	// A final line may arrive without its newline; treat the end of the
	// buffer like one.
	return endOfLine(fields, cur, state, seek, lineNum, len(buf))
}

func endOfLine(fields []Field, cur Field, state tokenState, seek, lineNum, i int) ([]Field, error) {
	switch state {
	case expectEnd:
		if i == seek {
			return nil, &SyntaxError{Line: lineNum, Byte: i, Code: CodeEmptyValue}
		}
		cur.Value = Span{Start: seek, Len: i - seek}
		cur.Quoted = false
		return append(fields, cur), nil
	case expectStart:
		return fields, nil
	default:
		// unterminated name or quote
		return nil, &SyntaxError{Line: lineNum, Byte: i, Code: CodeUnexpectedNewline}
	}
}
