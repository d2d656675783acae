package xrv

import (
	"bytes"
	"errors"
)

// Issue is one diagnostic from Check. Byte is the zero-based offset of
// the offending byte within its line, or -1 when the error is positioned
// by field rather than by byte.
type Issue struct {
	Line    int
	Byte    int
	Message string
}

// Check lints a whole buffer line by line. Unlike a Reader, which stops
// at the first error because a misparsed line can invalidate later
// offsets, Check recovers at every newline and collects one issue per
// bad line. This is what the check command and the LSP diagnostics run.
func Check(data []byte) []Issue {
	var issues []Issue
	lineNum := 0
	for start := 0; start < len(data); {
		end := len(data)
		if nl := bytes.IndexByte(data[start:], '\n'); nl >= 0 {
			end = start + nl + 1
		}
		lineNum++
		line := &Line{Buf: data[start:end], Offset: uint64(start)}
		if _, err := parseLine(line, lineNum); err != nil {
			issues = append(issues, toIssue(err, lineNum))
		}
		start = end
	}
	return issues
}

func toIssue(err error, lineNum int) Issue {
	var syntaxErr *SyntaxError
	if errors.As(err, &syntaxErr) {
		return Issue{Line: syntaxErr.Line, Byte: syntaxErr.Byte, Message: syntaxErr.Code.String()}
	}
	var lineErr *LineError
	if errors.As(err, &lineErr) {
		msg := lineErr.Code.String()
		if lineErr.Detail != "" {
			msg += ": " + lineErr.Detail
		}
		return Issue{Line: lineErr.Line, Byte: -1, Message: msg}
	}
	return Issue{Line: lineNum, Byte: -1, Message: err.Error()}
}
