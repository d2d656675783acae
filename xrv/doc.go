// Package xrv reads the XRV line-oriented, self-indexing tabular text
// format.
//
// An XRV file is a sequence of newline-terminated lines. Each line starts
// with a one-character kind tag (j, t, s or r) and carries colon-separated
// name:value fields. Values are either bare tokens or double-quote-delimited
// tokens that may contain spaces and colons:
//
//	j: jumps:x header:0-120 body:120-4096
//	t:tbl1 name:"My Table" pos:10 len:20 Header:string Position:i32
//	s:st1 color:"dark red" weight:bold
//	r:tbl1 Header:"first row" Position:1
//
// Jump lines embed an index mapping names to byte regions elsewhere in the
// file, so a Reader can seek directly to a named region without scanning
// the lines in between. Table lines declare a named table's data region and
// its ordered, typed column list. Style lines carry opaque presentation
// metadata. Record lines are raw row payloads keyed by a table id.
//
// A Reader consumes lines one at a time from a Source. Jump, table and
// style lines update the Reader's registry; record lines are returned to
// the caller undecoded, as byte spans into the line's own buffer.
package xrv
