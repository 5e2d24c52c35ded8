package cpu

import (
	"fmt"
	"io"
	"iter"
	"os"
	"slices"
	"strconv"
	"strings"
)

// Program is an Intcode memory image.
type Program []int64

// ParseProgram reads a program of comma-separated signed decimal integers.
func ParseProgram(r io.Reader) (prog Program, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return
	}

	text := strings.TrimSpace(string(data))
	if len(text) == 0 {
		err = ErrProgramEmpty
		return
	}

	for n, field := range strings.Split(text, ",") {
		field = strings.TrimSpace(field)
		var value int64
		value, err = strconv.ParseInt(field, 10, 64)
		if err != nil {
			err = ErrSyntax{Index: n, Field: field, Err: ErrParseNumber(field)}
			return
		}
		prog = append(prog, value)
	}

	return
}

// LoadProgram reads a program from a file.
func LoadProgram(path string) (prog Program, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	prog, err = ParseProgram(inf)
	if err != nil {
		err = fmt.Errorf("%v: %w", path, err)
	}

	return
}

// Clone returns a deep copy of the program.
func (prog Program) Clone() Program {
	return slices.Clone(prog)
}

// String returns the program in its file representation.
func (prog Program) String() string {
	fields := make([]string, len(prog))
	for n, value := range prog {
		fields[n] = strconv.FormatInt(value, 10)
	}
	return strings.Join(fields, ",")
}

// Disassembly walks the program from address 0, yielding the address and text
// of each instruction. Words that do not decode are yielded as data.
func (prog Program) Disassembly() iter.Seq2[int, string] {
	return func(yield func(pc int, text string) bool) {
		for pc := 0; pc < len(prog); {
			text, err := Disassemble(prog[pc:])
			width := 1
			if err == nil {
				code, _ := Decode(prog[pc])
				width = code.Op.Width()
			} else {
				text = fmt.Sprintf(".data %d", prog[pc])
			}
			if !yield(pc, text) {
				return
			}
			pc += width
		}
	}
}
