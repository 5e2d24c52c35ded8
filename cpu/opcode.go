package cpu

import (
	"fmt"
	"strings"
)

// Opcode is the low two decimal digits of an instruction word.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_ADD = Opcode(1)  // add
	OP_MUL = Opcode(2)  // mul
	OP_IN  = Opcode(3)  // in
	OP_OUT = Opcode(4)  // out
	OP_JT  = Opcode(5)  // jt
	OP_JF  = Opcode(6)  // jf
	OP_LT  = Opcode(7)  // lt
	OP_EQ  = Opcode(8)  // eq
	OP_HLT = Opcode(99) // hlt
)

// Mode is a parameter addressing mode.
type Mode int

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_POSITION = Mode(0) // pos
	MODE_VALUE    = Mode(1) // imm
)

const (
	OPCODE_RADIX = 100 // Opcode occupies the two low decimal digits.
	MODE_RADIX   = 10  // Each mode occupies one decimal digit.
	MODE_MAX     = 2   // Most parameters any opcode reads through a mode.
)

// opcodeInfo describes the shape of an instruction in memory.
type opcodeInfo struct {
	Width  int  // Cells occupied, opcode word included.
	Params int  // Parameters read through a Mode.
	Store  bool // Last parameter is a positional destination.
}

var _opcodes = map[Opcode]opcodeInfo{
	OP_ADD: {Width: 4, Params: 2, Store: true},
	OP_MUL: {Width: 4, Params: 2, Store: true},
	OP_IN:  {Width: 2, Params: 0, Store: true},
	OP_OUT: {Width: 2, Params: 0, Store: true},
	OP_JT:  {Width: 3, Params: 2},
	OP_JF:  {Width: 3, Params: 2},
	OP_LT:  {Width: 4, Params: 2, Store: true},
	OP_EQ:  {Width: 4, Params: 2, Store: true},
	OP_HLT: {Width: 1},
}

// Valid returns true if the opcode is part of the instruction set.
func (op Opcode) Valid() bool {
	_, ok := _opcodes[op]
	return ok
}

// Width returns the number of memory cells the instruction occupies.
func (op Opcode) Width() int {
	return _opcodes[op].Width
}

// Params returns the number of mode-interpreted parameters.
func (op Opcode) Params() int {
	return _opcodes[op].Params
}

// Store returns true if the final parameter is a destination address.
// Output reuses its destination slot as the address to read from.
func (op Opcode) Store() bool {
	return _opcodes[op].Store
}

// Code is a decoded instruction word.
type Code struct {
	Op    Opcode
	Modes [MODE_MAX]Mode
}

// MakeCode creates an instruction with the specified parameter modes.
func MakeCode(op Opcode, modes ...Mode) (code Code) {
	code.Op = op
	copy(code.Modes[:], modes)
	return
}

// Word encodes the instruction back into its memory representation.
func (code Code) Word() (word int64) {
	scale := int64(OPCODE_RADIX)
	word = int64(code.Op)
	for n := range code.Op.Params() {
		word += int64(code.Modes[n]) * scale
		scale *= MODE_RADIX
	}
	return
}

// Decode splits an instruction word into its opcode and parameter modes.
// Mode digits beyond those the opcode reads are ignored.
func Decode(word int64) (code Code, err error) {
	op := Opcode(word % OPCODE_RADIX)
	if word < 0 || !op.Valid() {
		err = ErrOpcode(word)
		return
	}

	decoded := Code{Op: op}
	modes := word / OPCODE_RADIX
	for n := range op.Params() {
		digit := modes % MODE_RADIX
		switch Mode(digit) {
		case MODE_POSITION, MODE_VALUE:
			decoded.Modes[n] = Mode(digit)
		default:
			err = ErrMode{Word: word, Param: n}
			return
		}
		modes /= MODE_RADIX
	}

	code = decoded
	return
}

// String returns the disassembly of the instruction.
func (code Code) String() string {
	parts := []string{code.Op.String()}
	for n := range code.Op.Params() {
		parts = append(parts, code.Modes[n].String())
	}
	return strings.Join(parts, ".")
}

// Disassemble renders the instruction at the start of cells, with its raw parameters.
func Disassemble(cells []int64) (text string, err error) {
	if len(cells) == 0 {
		err = ErrAddressRange
		return
	}

	code, err := Decode(cells[0])
	if err != nil {
		return
	}

	width := code.Op.Width()
	if width > len(cells) {
		width = len(cells)
	}

	text = code.String()
	for _, param := range cells[1:width] {
		text += fmt.Sprintf(" %d", param)
	}

	return
}
