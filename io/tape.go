package io

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Tape provides sequential I/O of decimal integers.
// Input values are separated by commas or whitespace; each output value is
// written on its own line.
type Tape struct {
	Input  io.Reader
	Output io.Writer

	Last  int64 // Most recently sent value.
	Count int   // Number of values sent.

	scanner *bufio.Scanner
	err     error
}

var _ Channel = (*Tape)(nil)

// Rewind forgets the output statistics. Input cannot be rewound on a tape.
func (tc *Tape) Rewind() {
	tc.Last = 0
	tc.Count = 0
}

// Err returns the first input error seen by Receive.
func (tc *Tape) Err() error {
	return tc.err
}

// Receive returns an iterator that yields values parsed from the input stream.
func (tc *Tape) Receive() iter.Seq[int64] {
	return func(yield func(value int64) bool) {
		if tc.Input == nil || tc.err != nil {
			return
		}
		if tc.scanner == nil {
			tc.scanner = bufio.NewScanner(tc.Input)
			tc.scanner.Split(scanFields)
		}
		for tc.scanner.Scan() {
			field := tc.scanner.Text()
			value, err := strconv.ParseInt(field, 10, 64)
			if err != nil {
				tc.err = fmt.Errorf("%w: %q", ErrTapeValue, field)
				return
			}
			if !yield(value) {
				return
			}
		}
		tc.err = tc.scanner.Err()
	}
}

// Send writes a value to the output stream.
func (tc *Tape) Send(value int64) (err error) {
	tc.Last = value
	tc.Count++

	if tc.Output == nil {
		return
	}

	_, err = fmt.Fprintln(tc.Output, value)

	return
}

// LastOutput returns the final value sent, or ErrTapeOutput if there was none.
func (tc *Tape) LastOutput() (value int64, err error) {
	if tc.Count == 0 {
		err = ErrTapeOutput
		return
	}

	value = tc.Last
	return
}

func isSeparator(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}

// scanFields is a bufio.SplitFunc for comma or space separated fields.
func scanFields(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) {
		r, width := utf8.DecodeRune(data[start:])
		if !isSeparator(r) {
			break
		}
		start += width
	}

	for i := start; i < len(data); {
		r, width := utf8.DecodeRune(data[i:])
		if isSeparator(r) {
			return i + width, data[start:i], nil
		}
		i += width
	}

	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}

	return start, nil, nil
}
