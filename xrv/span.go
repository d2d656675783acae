package xrv

// Span is a byte range into a Line's buffer. Spans never own bytes; they
// are only meaningful together with the Line they were produced from.
type Span struct {
	Start int
	Len   int
}

// End returns the index one past the last byte of the span.
func (s Span) End() int {
	return s.Start + s.Len
}

// Field is one decoded name:value pair. Quoted marks a value that was
// delimited by double quotes; the spans always exclude the quotes
// themselves.
type Field struct {
	Name   Span
	Value  Span
	Quoted bool
}

// Line owns the bytes of one physical line and remembers its absolute
// position in the file. All spans produced from tokenizing a line index
// into that line's buffer and no other.
type Line struct {
	Buf    []byte
	Offset uint64
}

// Bytes returns the raw bytes the span refers to.
func (l *Line) Bytes(s Span) []byte {
	return l.Buf[s.Start:s.End()]
}

// Text returns the span's bytes as a string.
func (l *Line) Text(s Span) string {
	return string(l.Buf[s.Start:s.End()])
}
