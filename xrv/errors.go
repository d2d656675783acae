package xrv

import (
	"errors"
	"fmt"
)

// ErrNotFound reports a jump-index lookup miss. It is a normal outcome:
// callers asking for a region that the index does not name get this, not a
// parse failure.
var ErrNotFound = errors.New("xrv: name not in jump index")

// SyntaxCode identifies the grammar rule a line violated during
// tokenization.
type SyntaxCode int

const (
	// CodeUnexpectedColon: a colon outside a name and outside quotes.
	CodeUnexpectedColon SyntaxCode = iota
	// CodeUnexpectedQuote: a quote that neither follows a colon directly
	// nor closes an open quote.
	CodeUnexpectedQuote
	// CodeSpaceInName: a space while scanning a field name.
	CodeSpaceInName
	// CodeUnexpectedNewline: the line ended inside a name or inside an
	// unterminated quote.
	CodeUnexpectedNewline
	// CodeEmptyValue: a field ended at the line terminator with no value
	// bytes after its colon.
	CodeEmptyValue
)

var syntaxCodeNames = map[SyntaxCode]string{
	CodeUnexpectedColon:   "unexpected colon",
	CodeUnexpectedQuote:   "unexpected quote",
	CodeSpaceInName:       "space in field name",
	CodeUnexpectedNewline: "unexpected end of line",
	CodeEmptyValue:        "empty field value",
}

func (c SyntaxCode) String() string {
	if name, ok := syntaxCodeNames[c]; ok {
		return name
	}
	return "unknown"
}

// SyntaxError is a tokenizer grammar error. Byte is the zero-based offset
// of the offending byte within the line.
type SyntaxError struct {
	Line int
	Byte int
	Code SyntaxCode
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: byte %d: %s", e.Line, e.Byte, e.Code)
}

// FieldCode identifies the structural rule a line violated during
// classification or assembly.
type FieldCode int

const (
	// CodeEmptyLine: the line holds nothing but its terminator.
	CodeEmptyLine FieldCode = iota
	// CodeUnknownKind: the kind tag is not exactly one of j, t, s, r.
	CodeUnknownKind
	// CodeMissingID: the kind field carries no id value.
	CodeMissingID
	// CodeMissingField: the line ends before its fixed fields.
	CodeMissingField
	// CodeJumpLabel: a jump line whose first field is not named "jumps".
	CodeJumpLabel
	// CodeJumpRange: a jump entry value that is not two dash-separated
	// decimal integers.
	CodeJumpRange
	// CodeTableName: a table line whose second field is not name:.
	CodeTableName
	// CodeTablePos: a table line whose third field is not pos: with a
	// decimal value.
	CodeTablePos
	// CodeTableLen: a table line whose fourth field is not len: with a
	// decimal value.
	CodeTableLen
	// CodeColumnType: a column definition with a type tag outside the
	// recognized set.
	CodeColumnType
)

var fieldCodeNames = map[FieldCode]string{
	CodeEmptyLine:    "empty line",
	CodeUnknownKind:  "unknown line kind",
	CodeMissingID:    "missing id",
	CodeMissingField: "missing field",
	CodeJumpLabel:    `first jump field must be named "jumps"`,
	CodeJumpRange:    "jump entry must be <seek>-<length>",
	CodeTableName:    "second table field must be name:",
	CodeTablePos:     "third table field must be pos: with a decimal value",
	CodeTableLen:     "fourth table field must be len: with a decimal value",
	CodeColumnType:   "unrecognized column type tag",
}

func (c FieldCode) String() string {
	if name, ok := fieldCodeNames[c]; ok {
		return name
	}
	return "unknown"
}

// LineError is a structural error from the classifier or one of the kind
// assemblers. Field is the zero-based index of the offending field,
// counting the fields after the kind field; it is -1 when the error is
// about the line as a whole.
type LineError struct {
	Line   int
	Field  int
	Code   FieldCode
	Detail string
}

func (e *LineError) Error() string {
	msg := fmt.Sprintf("line %d", e.Line)
	if e.Field >= 0 {
		msg += fmt.Sprintf(": field %d", e.Field)
	}
	msg += ": " + e.Code.String()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}
