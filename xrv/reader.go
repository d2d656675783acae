package xrv

import (
	"errors"
	"fmt"
	"io"
)

type readerState int

const (
	stateNotStarted readerState = iota
	stateScanning
	stateDone
	stateErrored
)

// Reader drives the parse pipeline over one Source: pull a line, tokenize,
// classify, assemble, then either fold the result into the registry (jump,
// table, style) or hand the record back to the caller. A Reader is not
// safe for concurrent use; concurrent readers of one file need independent
// Sources.
type Reader struct {
	src   Source
	reg   *Registry
	line  int
	state readerState
	err   error
}

// NewReader wraps a Source. The registry starts empty; it fills in as
// lines are parsed, so a record can only be resolved against tables and
// styles from lines before it.
func NewReader(src Source) *Reader {
	return &Reader{src: src, reg: newRegistry()}
}

// Open opens path and wraps it in a Reader. Close the Reader when done.
func Open(path string) (*Reader, error) {
	src, err := OpenFile(path)
	if err != nil {
		return nil, err
	}
	return NewReader(src), nil
}

// Close releases the underlying source if it holds resources.
func (r *Reader) Close() error {
	if c, ok := r.src.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Parsed is the outcome of one Next call. Record is non-nil exactly when
// Kind is KindRecord; for the other kinds the registry was updated in
// place.
type Parsed struct {
	Kind   LineKind
	Record *RecordRow
}

// Next reads and parses one line. End of input is io.EOF, never an error
// state: the Reader stays usable for Locate and registry lookups.
//
// Structural errors (a LineError from the classifier or an assembler) are
// fatal to that line only; the next call moves on to the following line.
// Grammar and I/O errors are fatal to the whole parse, because a
// misaligned byte offset can invalidate every later length-based read;
// after one of those, every call returns the same error. Each successful
// or failed parse advances the line counter by exactly one.
func (r *Reader) Next() (*Parsed, error) {
	switch r.state {
	case stateDone:
		return nil, io.EOF
	case stateErrored:
		return nil, r.err
	}

	buf, offset, err := r.src.ReadLine()
	if err == io.EOF {
		r.state = stateDone
		return nil, io.EOF
	}
	if err != nil {
		return nil, r.fail(fmt.Errorf("read line %d: %w", r.line+1, err))
	}

	r.state = stateScanning
	r.line++

	line := &Line{Buf: buf, Offset: offset}
	parsed, err := parseLine(line, r.line)
	if err != nil {
		var lineErr *LineError
		if errors.As(err, &lineErr) {
			return nil, err
		}
		return nil, r.fail(err)
	}

	switch parsed.kind {
	case KindJump:
		for _, e := range parsed.jumps {
			r.reg.addJump(e)
		}
	case KindTable:
		r.reg.addTable(parsed.table)
	case KindStyle:
		r.reg.addStyle(parsed.style)
	case KindRecord:
		return &Parsed{Kind: KindRecord, Record: parsed.record}, nil
	}
	return &Parsed{Kind: parsed.kind}, nil
}

func (r *Reader) fail(err error) error {
	r.state = stateErrored
	r.err = err
	return err
}

// Line reports the number of the last line handed out by Next, starting
// at 1 for the first line.
func (r *Reader) Line() int {
	return r.line
}

// Registry exposes the accumulated jump/table/style state.
func (r *Reader) Registry() *Registry {
	return r.reg
}

// Locate looks up name in the jump index parsed so far. A miss is a
// normal outcome, not an error.
func (r *Reader) Locate(name string) (JumpEntry, bool) {
	return r.reg.Jump(name)
}

// ReadRegion resolves name through the jump index and reads the
// addressed region directly from the source, skipping the lines in
// between. This is the index's payoff over sequential scanning.
func (r *Reader) ReadRegion(name string) ([]byte, error) {
	entry, ok := r.Locate(name)
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	buf := make([]byte, entry.Length)
	if _, err := r.src.ReadAt(buf, int64(entry.Seek)); err != nil {
		return nil, fmt.Errorf("read region %q at %d+%d: %w", name, entry.Seek, entry.Length, err)
	}
	return buf, nil
}
