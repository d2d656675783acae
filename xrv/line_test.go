package xrv

import (
	"errors"
	"testing"
)

func mustParseLine(t *testing.T, input string) *parsedLine {
	t.Helper()
	parsed, err := parseLine(&Line{Buf: []byte(input)}, 1)
	if err != nil {
		t.Fatalf("parseLine(%q) error: %v", input, err)
	}
	return parsed
}

func parseLineErr(t *testing.T, input string) *LineError {
	t.Helper()
	_, err := parseLine(&Line{Buf: []byte(input)}, 1)
	if err == nil {
		t.Fatalf("parseLine(%q) succeeded, want error", input)
	}
	var lineErr *LineError
	if !errors.As(err, &lineErr) {
		t.Fatalf("error = %v, want *LineError", err)
	}
	return lineErr
}

func TestClassify(t *testing.T) {
	tests := []struct {
		input string
		kind  LineKind
	}{
		{"j: jumps:x\n", KindJump},
		{"t:a name:\"T\" pos:0 len:0\n", KindTable},
		{"s:st color:red\n", KindStyle},
		{"r:a x:1\n", KindRecord},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			parsed := mustParseLine(t, tt.input)
			if parsed.kind != tt.kind {
				t.Errorf("kind = %s, want %s", parsed.kind, tt.kind)
			}
		})
	}
}

func TestClassifyUnknownKind(t *testing.T) {
	for _, input := range []string{
		"x:a f:1\n",  // unrecognized tag byte
		"js:a f:1\n", // multi-byte tag
		"T:a f:1\n",  // tags are case-sensitive
	} {
		t.Run(input, func(t *testing.T) {
			lineErr := parseLineErr(t, input)
			if lineErr.Code != CodeUnknownKind {
				t.Errorf("Code = %s, want %s", lineErr.Code, CodeUnknownKind)
			}
		})
	}
}

func TestAssembleJump(t *testing.T) {
	parsed := mustParseLine(t, "j: jumps:x entryA:100-42 entryB:9-7\n")
	if parsed.kind != KindJump {
		t.Fatalf("kind = %s, want %s", parsed.kind, KindJump)
	}
	want := []JumpEntry{
		{Name: "entryA", Seek: 100, Length: 42},
		{Name: "entryB", Seek: 9, Length: 7},
	}
	if len(parsed.jumps) != len(want) {
		t.Fatalf("got %d entries, want %d", len(parsed.jumps), len(want))
	}
	for i, e := range parsed.jumps {
		if e != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, e, want[i])
		}
	}
}

// Seek and length must come from independent parses of the two halves of
// the value, so asymmetric entries must not collapse to one number.
func TestAssembleJumpIndependentSeekAndLength(t *testing.T) {
	parsed := mustParseLine(t, "j: jumps:x e:12345-6\n")
	e := parsed.jumps[0]
	if e.Seek != 12345 {
		t.Errorf("Seek = %d, want 12345", e.Seek)
	}
	if e.Length != 6 {
		t.Errorf("Length = %d, want 6", e.Length)
	}
}

func TestAssembleJumpErrors(t *testing.T) {
	tests := []struct {
		input string
		code  FieldCode
		field int
	}{
		{"j: other:x e:1-2\n", CodeJumpLabel, 0},
		{"j: \n", CodeMissingField, 0},
		{"j: jumps:x e:100\n", CodeJumpRange, 1},
		{"j: jumps:x e:abc-2\n", CodeJumpRange, 1},
		{"j: jumps:x e:1-xyz\n", CodeJumpRange, 1},
		{"j: jumps:x a:1-2 e:--\n", CodeJumpRange, 2},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lineErr := parseLineErr(t, tt.input)
			if lineErr.Code != tt.code {
				t.Errorf("Code = %s, want %s", lineErr.Code, tt.code)
			}
			if lineErr.Field != tt.field {
				t.Errorf("Field = %d, want %d", lineErr.Field, tt.field)
			}
		})
	}
}

func TestAssembleTable(t *testing.T) {
	parsed := mustParseLine(t, "t:tbl1 name:\"My Table\" pos:10 len:20 Header:string Position:i32\n")
	if parsed.kind != KindTable {
		t.Fatalf("kind = %s, want %s", parsed.kind, KindTable)
	}
	table := parsed.table
	if table.ID != "tbl1" {
		t.Errorf("ID = %q, want %q", table.ID, "tbl1")
	}
	if table.Name != "My Table" {
		t.Errorf("Name = %q, want %q", table.Name, "My Table")
	}
	if table.DataPos != 10 || table.DataLen != 20 {
		t.Errorf("DataPos/DataLen = %d/%d, want 10/20", table.DataPos, table.DataLen)
	}
	wantCols := []Column{
		{Name: "Header", Type: TypeString},
		{Name: "Position", Type: TypeI32},
	}
	if len(table.Columns) != len(wantCols) {
		t.Fatalf("got %d columns, want %d", len(table.Columns), len(wantCols))
	}
	for i, c := range table.Columns {
		if c != wantCols[i] {
			t.Errorf("column %d = %+v, want %+v", i, c, wantCols[i])
		}
	}
}

func TestAssembleTableNoColumns(t *testing.T) {
	parsed := mustParseLine(t, "t:tbl1 name:\"T\" pos:0 len:0\n")
	if len(parsed.table.Columns) != 0 {
		t.Errorf("got %d columns, want 0", len(parsed.table.Columns))
	}
}

func TestAssembleTableErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  FieldCode
	}{
		{"missing id", "t: name:\"T\" pos:0 len:0\n", CodeMissingID},
		{"truncated prefix", "t:tbl1 name:\"T\" pos:0\n", CodeMissingField},
		{"wrong second field", "t:tbl1 title:\"T\" pos:0 len:0\n", CodeTableName},
		{"pos out of order", "t:tbl1 name:\"T\" len:0 pos:0\n", CodeTablePos},
		{"pos not a number", "t:tbl1 name:\"T\" pos:ten len:0\n", CodeTablePos},
		{"len not a number", "t:tbl1 name:\"T\" pos:0 len:x\n", CodeTableLen},
		{"unknown type tag", "t:tbl1 name:\"T\" pos:0 len:0 Col:f64\n", CodeColumnType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lineErr := parseLineErr(t, tt.input)
			if lineErr.Code != tt.code {
				t.Errorf("Code = %s, want %s", lineErr.Code, tt.code)
			}
		})
	}
}

func TestAssembleStyle(t *testing.T) {
	parsed := mustParseLine(t, "s:st1 color:\"dark red\" weight:bold\n")
	style := parsed.style
	if style.ID != "st1" {
		t.Errorf("ID = %q, want %q", style.ID, "st1")
	}
	if len(style.Props) != 2 {
		t.Fatalf("got %d props, want 2", len(style.Props))
	}
	// properties are opaque: no type checking, spans preserved verbatim
	if got := style.Line.Text(style.Props[0].Value); got != "dark red" {
		t.Errorf("prop 0 value = %q, want %q", got, "dark red")
	}
	if got := style.Line.Text(style.Props[1].Name); got != "weight" {
		t.Errorf("prop 1 name = %q, want %q", got, "weight")
	}
}

func TestAssembleRecord(t *testing.T) {
	parsed := mustParseLine(t, "r:tbl1 a:\"1\" b:2\n")
	record := parsed.record
	if record.TableID != "tbl1" {
		t.Errorf("TableID = %q, want %q", record.TableID, "tbl1")
	}
	if len(record.Values) != 2 {
		t.Fatalf("got %d values, want 2", len(record.Values))
	}
	name, value := record.Pair(0)
	if string(name) != "a" || string(value) != "1" {
		t.Errorf("pair 0 = %q:%q, want a:1", name, value)
	}
	name, value = record.Pair(1)
	if string(name) != "b" || string(value) != "2" {
		t.Errorf("pair 1 = %q:%q, want b:2", name, value)
	}
}

func TestResolve(t *testing.T) {
	schema := mustParseLine(t, "t:tbl1 name:\"T\" pos:0 len:0 Header:string Position:i32\n").table
	record := mustParseLine(t, "r:tbl1 a:\"first\" b:17\n").record

	values, err := schema.Resolve(record)
	if err != nil {
		t.Fatal(err)
	}
	if len(values) != 2 {
		t.Fatalf("got %d values, want 2", len(values))
	}
	if values[0].Column != "Header" || values[0].Type != TypeString || string(values[0].Raw) != "first" {
		t.Errorf("value 0 = %+v", values[0])
	}
	if values[1].Column != "Position" || values[1].Type != TypeI32 || string(values[1].Raw) != "17" {
		t.Errorf("value 1 = %+v", values[1])
	}
}

func TestResolveTooManyValues(t *testing.T) {
	schema := mustParseLine(t, "t:tbl1 name:\"T\" pos:0 len:0 Header:string\n").table
	record := mustParseLine(t, "r:tbl1 a:1 b:2\n").record
	if _, err := schema.Resolve(record); err == nil {
		t.Error("Resolve accepted a record with more values than columns")
	}
}

func TestResolveFewerValuesThanColumns(t *testing.T) {
	schema := mustParseLine(t, "t:tbl1 name:\"T\" pos:0 len:0 Header:string Position:i32\n").table
	record := mustParseLine(t, "r:tbl1 a:1\n").record
	values, err := schema.Resolve(record)
	if err != nil {
		t.Fatal(err)
	}
	if len(values) != 1 {
		t.Errorf("got %d values, want 1", len(values))
	}
}

func TestEmptyLineIsError(t *testing.T) {
	for _, input := range []string{"\n", "\r\n"} {
		lineErr := parseLineErr(t, input)
		if lineErr.Code != CodeEmptyLine {
			t.Errorf("parseLine(%q) code = %s, want %s", input, lineErr.Code, CodeEmptyLine)
		}
	}
}
