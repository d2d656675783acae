package xrv

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestBytesSourceReadLine(t *testing.T) {
	src := NewBytesSource([]byte("one:1\ntwo:2\nthree:3"))

	wants := []struct {
		line   string
		offset uint64
	}{
		{"one:1\n", 0},
		{"two:2\n", 6},
		{"three:3", 12}, // last line has no newline
	}
	for i, want := range wants {
		buf, offset, err := src.ReadLine()
		if err != nil {
			t.Fatalf("ReadLine() %d error: %v", i, err)
		}
		if string(buf) != want.line {
			t.Errorf("ReadLine() %d = %q, want %q", i, buf, want.line)
		}
		if offset != want.offset {
			t.Errorf("ReadLine() %d offset = %d, want %d", i, offset, want.offset)
		}
	}
	if _, _, err := src.ReadLine(); err != io.EOF {
		t.Errorf("ReadLine() at end = %v, want io.EOF", err)
	}
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.xrv")
	content := "s:st1 a:1\nr:tbl1 b:2\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	src, err := OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer src.Close()

	buf, offset, err := src.ReadLine()
	if err != nil {
		t.Fatal(err)
	}
	if string(buf) != "s:st1 a:1\n" || offset != 0 {
		t.Errorf("first line = %q at %d", buf, offset)
	}

	buf, offset, err = src.ReadLine()
	if err != nil {
		t.Fatal(err)
	}
	if string(buf) != "r:tbl1 b:2\n" || offset != 10 {
		t.Errorf("second line = %q at %d", buf, offset)
	}

	if _, _, err := src.ReadLine(); err != io.EOF {
		t.Errorf("ReadLine() at end = %v, want io.EOF", err)
	}

	// positioned reads are independent of the line position
	region := make([]byte, 4)
	if _, err := src.ReadAt(region, 2); err != nil {
		t.Fatal(err)
	}
	if string(region) != "st1 " {
		t.Errorf("ReadAt(2, 4) = %q, want %q", region, "st1 ")
	}
}

func TestOpenFileMissing(t *testing.T) {
	if _, err := OpenFile(filepath.Join(t.TempDir(), "missing.xrv")); err == nil {
		t.Error("OpenFile succeeded on a missing file")
	}
}
