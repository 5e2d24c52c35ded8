package emulator

import (
	"errors"

	"github.com/Thegaram/advent-of-code-2019/translate"
)

var f = translate.From

var (
	ErrNoOutput       = errors.New(f("no output"))
	ErrInputExhausted = errors.New(f("input exhausted"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Pc  int
	Err error
}

func (err *ErrRuntime) Error() string {
	return f("pc %04d %v", err.Pc, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrDiagnostic indicates the system ID of a failed diagnostic run.
type ErrDiagnostic struct {
	Id  int64
	Err error
}

func (err *ErrDiagnostic) Error() string {
	return f("system id %v: %v", err.Id, err.Err)
}

func (err *ErrDiagnostic) Unwrap() error {
	return err.Err
}
