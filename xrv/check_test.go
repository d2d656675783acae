package xrv

import (
	"strings"
	"testing"
)

func TestCheckCleanDocument(t *testing.T) {
	input := "j: jumps:x body:10-5\n" +
		"t:tbl1 name:\"T\" pos:0 len:0 Col:string\n" +
		"r:tbl1 Col:\"v\"\n"
	if issues := Check([]byte(input)); len(issues) != 0 {
		t.Errorf("Check() = %v, want no issues", issues)
	}
}

func TestCheckRecoversPerLine(t *testing.T) {
	// one bad line must not hide errors on later lines
	input := "s:st1 ok:1\n" +
		"s:st2 bad\n" + // value never closed before newline
		"r:tbl1 ok:1\n" +
		"x:nope f:1\n" // unknown kind tag
	issues := Check([]byte(input))
	if len(issues) != 2 {
		t.Fatalf("Check() = %v, want 2 issues", issues)
	}
	if issues[0].Line != 2 {
		t.Errorf("issue 0 line = %d, want 2", issues[0].Line)
	}
	if issues[0].Byte != len("s:st2 bad") {
		t.Errorf("issue 0 byte = %d, want %d", issues[0].Byte, len("s:st2 bad"))
	}
	if issues[1].Line != 4 {
		t.Errorf("issue 1 line = %d, want 4", issues[1].Line)
	}
	if issues[1].Byte != -1 {
		t.Errorf("issue 1 byte = %d, want -1 (field-positioned)", issues[1].Byte)
	}
	if !strings.Contains(issues[1].Message, "unknown line kind") {
		t.Errorf("issue 1 message = %q", issues[1].Message)
	}
}

func TestCheckBlankLine(t *testing.T) {
	issues := Check([]byte("s:st1 a:1\n\ns:st2 b:2\n"))
	if len(issues) != 1 {
		t.Fatalf("Check() = %v, want 1 issue", issues)
	}
	if issues[0].Line != 2 {
		t.Errorf("line = %d, want 2", issues[0].Line)
	}
	if !strings.Contains(issues[0].Message, "empty line") {
		t.Errorf("message = %q", issues[0].Message)
	}
}

func TestCheckEmptyBuffer(t *testing.T) {
	if issues := Check(nil); issues != nil {
		t.Errorf("Check(nil) = %v, want nil", issues)
	}
}
