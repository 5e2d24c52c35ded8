package cpu

import (
	"errors"

	"github.com/Thegaram/advent-of-code-2019/translate"
)

var f = translate.From

var (
	// Machine errors
	ErrHalted          = errors.New(f("machine halted"))
	ErrAddressNegative = errors.New(f("negative address"))
	ErrAddressRange    = errors.New(f("address out of range"))

	// Instruction decode errors
	ErrOpcodeInvalid = errors.New(f("opcode invalid"))
	ErrModeInvalid   = errors.New(f("mode invalid"))

	// Program load errors
	ErrProgramEmpty = errors.New(f("program empty"))
)

// ErrOpcode is an instruction word whose opcode is not in the instruction set.
type ErrOpcode int64

func (eo ErrOpcode) Error() string {
	return f("bad opcode %v in word %v", int64(eo)%OPCODE_RADIX, int64(eo))
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

func (eo ErrOpcode) Unwrap() error {
	return ErrOpcodeInvalid
}

// ErrMode is an instruction word with an unknown mode digit.
type ErrMode struct {
	Word  int64
	Param int
}

func (em ErrMode) Error() string {
	return f("bad mode for parameter %v in word %v", em.Param, em.Word)
}

func (em ErrMode) Unwrap() error {
	return ErrModeInvalid
}

// ErrAddress is an address outside of memory.
type ErrAddress int64

func (ea ErrAddress) Error() string {
	return f("address %v %v", int64(ea), ea.Unwrap())
}

func (ea ErrAddress) Unwrap() error {
	if ea < 0 {
		return ErrAddressNegative
	}
	return ErrAddressRange
}

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Pc   int
	Code Code
	Err  error
}

func (err *ErrRuntime) Error() string {
	if !err.Code.Op.Valid() {
		return f("pc %v: %v", err.Pc, err.Err)
	}
	return f("pc %v %v: %v", err.Pc, err.Code, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrSyntax indicates a program field that could not be parsed.
type ErrSyntax struct {
	Index int
	Field string
	Err   error
}

func (err ErrSyntax) Error() string {
	return f("field %d '%v' %v", err.Index, err.Field, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}
