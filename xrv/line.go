package xrv

import (
	"bytes"
	"fmt"
	"strconv"
)

// LineKind names a line's role, derived from its one-byte kind tag.
type LineKind int

const (
	KindJump LineKind = iota
	KindTable
	KindStyle
	KindRecord
)

var lineKindNames = map[LineKind]string{
	KindJump:   "jump",
	KindTable:  "table",
	KindStyle:  "style",
	KindRecord: "record",
}

func (k LineKind) String() string {
	if name, ok := lineKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Kind tag bytes.
const (
	jumpTag   = 'j'
	tableTag  = 't'
	styleTag  = 's'
	recordTag = 'r'
)

// JumpEntry maps a logical name to a byte region in the file's data
// section. Seek and Length address file content, not a line offset.
type JumpEntry struct {
	Name   string
	Seek   uint64
	Length uint64
}

// ColumnType is a table column's type tag. The set is closed: record
// decoding downstream depends on every tag being known.
type ColumnType int

const (
	TypeString ColumnType = iota
	TypeI32
)

var columnTypeNames = map[ColumnType]string{
	TypeString: "string",
	TypeI32:    "i32",
}

func (t ColumnType) String() string {
	if name, ok := columnTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

func columnTypeFromTag(tag string) (ColumnType, bool) {
	for t, name := range columnTypeNames {
		if name == tag {
			return t, true
		}
	}
	return 0, false
}

// Column is one (name, type tag) pair of a table schema.
type Column struct {
	Name string
	Type ColumnType
}

// TableSchema describes a named table: where its data region lives and
// which typed columns its records carry, in order.
type TableSchema struct {
	ID      string
	Name    string
	DataPos uint64
	DataLen uint64
	Columns []Column
}

// StyleEntry is opaque presentation metadata keyed by id. Props are spans
// into the retained Line, preserved verbatim with no type checking.
type StyleEntry struct {
	ID    string
	Line  *Line
	Props []Field
}

// RecordRow is one undecoded data row. Values are spans into the retained
// Line; resolving them against a table's columns is the caller's business.
type RecordRow struct {
	TableID string
	Line    *Line
	Values  []Field
}

// Pair returns the i-th value's name and raw bytes.
func (r *RecordRow) Pair(i int) (name, value []byte) {
	f := r.Values[i]
	return r.Line.Bytes(f.Name), r.Line.Bytes(f.Value)
}

// TypedValue is a record value paired with its column's name and type
// tag. Raw stays an undecoded byte span; nothing here interprets it.
type TypedValue struct {
	Column string
	Type   ColumnType
	Raw    []byte
}

// Resolve pairs a record's values with the schema's columns positionally.
// A record may carry fewer values than the schema has columns; more is an
// error.
func (s *TableSchema) Resolve(row *RecordRow) ([]TypedValue, error) {
	if len(row.Values) > len(s.Columns) {
		return nil, fmt.Errorf("record for table %q has %d values, schema defines %d columns",
			s.ID, len(row.Values), len(s.Columns))
	}
	resolved := make([]TypedValue, len(row.Values))
	for i, f := range row.Values {
		resolved[i] = TypedValue{
			Column: s.Columns[i].Name,
			Type:   s.Columns[i].Type,
			Raw:    row.Line.Bytes(f.Value),
		}
	}
	return resolved, nil
}

// Classify picks the line kind from the first field's kind tag, which
// must be exactly one byte. It runs before any assembler; nothing
// kind-specific sees a line with an unrecognized tag.
func Classify(line *Line, fields []Field, lineNum int) (LineKind, error) {
	if len(fields) == 0 {
		return 0, &LineError{Line: lineNum, Field: -1, Code: CodeUnknownKind, Detail: "no fields"}
	}
	tag := line.Bytes(fields[0].Name)
	if len(tag) == 1 {
		switch tag[0] {
		case jumpTag:
			return KindJump, nil
		case tableTag:
			return KindTable, nil
		case styleTag:
			return KindStyle, nil
		case recordTag:
			return KindRecord, nil
		}
	}
	return 0, &LineError{Line: lineNum, Field: -1, Code: CodeUnknownKind, Detail: strconv.Quote(string(tag))}
}

// parsedLine is the typed result of running one line through the
// tokenizer, the classifier and its kind assembler.
type parsedLine struct {
	kind   LineKind
	jumps  []JumpEntry
	table  *TableSchema
	style  *StyleEntry
	record *RecordRow
}

// parseLine tokenizes, classifies and assembles one line. The line either
// parses completely or fails; there is no partial result.
func parseLine(line *Line, lineNum int) (*parsedLine, error) {
	if isBlank(line.Buf) {
		return nil, &LineError{Line: lineNum, Field: -1, Code: CodeEmptyLine}
	}
	fields, err := Tokenize(line.Buf, lineNum)
	if err != nil {
		return nil, err
	}
	kind, err := Classify(line, fields, lineNum)
	if err != nil {
		return nil, err
	}

	// The kind field's value carries the line id; the remaining fields
	// are the kind-specific payload.
	id := line.Text(fields[0].Value)
	payload := fields[1:]

	switch kind {
	case KindJump:
		jumps, err := assembleJump(line, payload, lineNum)
		if err != nil {
			return nil, err
		}
		return &parsedLine{kind: kind, jumps: jumps}, nil
	case KindTable:
		table, err := assembleTable(line, id, payload, lineNum)
		if err != nil {
			return nil, err
		}
		return &parsedLine{kind: kind, table: table}, nil
	case KindStyle:
		style, err := assembleStyle(line, id, payload, lineNum)
		if err != nil {
			return nil, err
		}
		return &parsedLine{kind: kind, style: style}, nil
	default:
		record, err := assembleRecord(line, id, payload, lineNum)
		if err != nil {
			return nil, err
		}
		return &parsedLine{kind: kind, record: record}, nil
	}
}

func isBlank(buf []byte) bool {
	for _, b := range buf {
		if b != cr && b != newline {
			return false
		}
	}
	return true
}

// assembleJump builds the index entries of a jump line. The first payload
// field must be named "jumps" (its value is ignored); every following
// field maps a name to <seek>-<length>, two independently parsed decimal
// integers.
func assembleJump(line *Line, payload []Field, lineNum int) ([]JumpEntry, error) {
	if len(payload) == 0 {
		return nil, &LineError{Line: lineNum, Field: 0, Code: CodeMissingField}
	}
	if !bytes.Equal(line.Bytes(payload[0].Name), []byte("jumps")) {
		return nil, &LineError{Line: lineNum, Field: 0, Code: CodeJumpLabel,
			Detail: strconv.Quote(line.Text(payload[0].Name))}
	}

	entries := make([]JumpEntry, 0, len(payload)-1)
	for i, f := range payload[1:] {
		value := line.Bytes(f.Value)
		dash := bytes.IndexByte(value, '-')
		if dash < 0 {
			return nil, &LineError{Line: lineNum, Field: i + 1, Code: CodeJumpRange,
				Detail: strconv.Quote(string(value))}
		}
		seek, err := strconv.ParseUint(string(value[:dash]), 10, 64)
		if err != nil {
			return nil, &LineError{Line: lineNum, Field: i + 1, Code: CodeJumpRange,
				Detail: strconv.Quote(string(value[:dash]))}
		}
		length, err := strconv.ParseUint(string(value[dash+1:]), 10, 64)
		if err != nil {
			return nil, &LineError{Line: lineNum, Field: i + 1, Code: CodeJumpRange,
				Detail: strconv.Quote(string(value[dash+1:]))}
		}
		entries = append(entries, JumpEntry{
			Name:   line.Text(f.Name),
			Seek:   seek,
			Length: length,
		})
	}
	return entries, nil
}

// assembleTable builds a TableSchema. The fixed prefix is rigid: the kind
// field's value is the table id, then name:, pos: and len: in that order.
// Everything after is column definitions.
func assembleTable(line *Line, id string, payload []Field, lineNum int) (*TableSchema, error) {
	if id == "" {
		return nil, &LineError{Line: lineNum, Field: -1, Code: CodeMissingID}
	}
	if len(payload) < 3 {
		return nil, &LineError{Line: lineNum, Field: len(payload), Code: CodeMissingField}
	}

	if !bytes.Equal(line.Bytes(payload[0].Name), []byte("name")) {
		return nil, &LineError{Line: lineNum, Field: 0, Code: CodeTableName,
			Detail: strconv.Quote(line.Text(payload[0].Name))}
	}
	name := line.Text(payload[0].Value)

	pos, err := decimalField(line, payload[1], "pos")
	if err != nil {
		return nil, &LineError{Line: lineNum, Field: 1, Code: CodeTablePos, Detail: err.Error()}
	}
	length, err := decimalField(line, payload[2], "len")
	if err != nil {
		return nil, &LineError{Line: lineNum, Field: 2, Code: CodeTableLen, Detail: err.Error()}
	}

	columns := make([]Column, 0, len(payload)-3)
	for i, f := range payload[3:] {
		tag := line.Text(f.Value)
		typ, ok := columnTypeFromTag(tag)
		if !ok {
			return nil, &LineError{Line: lineNum, Field: i + 3, Code: CodeColumnType,
				Detail: strconv.Quote(tag)}
		}
		columns = append(columns, Column{Name: line.Text(f.Name), Type: typ})
	}

	return &TableSchema{
		ID:      id,
		Name:    name,
		DataPos: pos,
		DataLen: length,
		Columns: columns,
	}, nil
}

func decimalField(line *Line, f Field, wantName string) (uint64, error) {
	got := line.Bytes(f.Name)
	if !bytes.Equal(got, []byte(wantName)) {
		return 0, fmt.Errorf("field is named %q", got)
	}
	n, err := strconv.ParseUint(line.Text(f.Value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("value %q is not a decimal integer", line.Text(f.Value))
	}
	return n, nil
}

// assembleStyle keeps a style line's properties verbatim.
func assembleStyle(line *Line, id string, payload []Field, lineNum int) (*StyleEntry, error) {
	if id == "" {
		return nil, &LineError{Line: lineNum, Field: -1, Code: CodeMissingID}
	}
	return &StyleEntry{ID: id, Line: line, Props: payload}, nil
}

// assembleRecord keeps a record line's values raw. Records are never
// checked against the registry here; whether the table id is known is the
// caller's concern.
func assembleRecord(line *Line, id string, payload []Field, lineNum int) (*RecordRow, error) {
	if id == "" {
		return nil, &LineError{Line: lineNum, Field: -1, Code: CodeMissingID}
	}
	return &RecordRow{TableID: id, Line: line, Values: payload}, nil
}
