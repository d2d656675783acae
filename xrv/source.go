package xrv

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
)

// Source is the byte source a Reader pulls from: sequential line reads
// plus positioned reads for the jump index's random access. ReadLine
// returns one physical line including its trailing newline byte (if
// present) together with the line's absolute offset in the file, and
// io.EOF once the input is exhausted.
type Source interface {
	ReadLine() ([]byte, uint64, error)
	io.ReaderAt
}

// FileSource reads lines from a file through a buffer. Positioned reads
// go straight to the file and do not disturb the sequential position.
type FileSource struct {
	f      *os.File
	br     *bufio.Reader
	offset uint64
}

// OpenFile opens path as a line source.
func OpenFile(path string) (*FileSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open xrv file: %w", err)
	}
	return &FileSource{f: f, br: bufio.NewReader(f)}, nil
}

func (s *FileSource) ReadLine() ([]byte, uint64, error) {
	buf, err := s.br.ReadBytes('\n')
	if len(buf) == 0 {
		if err == nil || err == io.EOF {
			return nil, s.offset, io.EOF
		}
		return nil, s.offset, err
	}
	if err != nil && err != io.EOF {
		return nil, s.offset, err
	}
	start := s.offset
	s.offset += uint64(len(buf))
	return buf, start, nil
}

func (s *FileSource) ReadAt(p []byte, off int64) (int, error) {
	return s.f.ReadAt(p, off)
}

func (s *FileSource) Close() error {
	return s.f.Close()
}

// BytesSource reads lines from an in-memory buffer.
type BytesSource struct {
	data   []byte
	offset int
}

func NewBytesSource(data []byte) *BytesSource {
	return &BytesSource{data: data}
}

func (s *BytesSource) ReadLine() ([]byte, uint64, error) {
	if s.offset >= len(s.data) {
		return nil, uint64(s.offset), io.EOF
	}
	start := s.offset
	rest := s.data[start:]
	if nl := bytes.IndexByte(rest, '\n'); nl >= 0 {
		s.offset = start + nl + 1
	} else {
		s.offset = len(s.data)
	}
	return s.data[start:s.offset], uint64(start), nil
}

func (s *BytesSource) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 {
		return 0, fmt.Errorf("negative offset %d", off)
	}
	if off >= int64(len(s.data)) {
		return 0, io.EOF
	}
	n := copy(p, s.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}
