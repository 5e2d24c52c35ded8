package amplifier

import (
	"errors"

	"github.com/Thegaram/advent-of-code-2019/translate"
)

var f = translate.From

var (
	// Network errors
	ErrPhaseCount     = errors.New(f("phase setting count invalid"))
	ErrPhaseDuplicate = errors.New(f("phase setting duplicated"))
	ErrTopology       = errors.New(f("topology invalid"))
	ErrNoOutput       = errors.New(f("no output signal"))
	ErrStalled        = errors.New(f("network stalled"))
	ErrProtocol       = errors.New(f("amplifier halted before the last amplifier"))
)

// ErrAmplifier indicates the amplifier that failed.
type ErrAmplifier struct {
	Index int
	Phase int64
	Err   error
}

func (err *ErrAmplifier) Error() string {
	return f("amplifier %c (phase %v) %v", rune('A'+err.Index), err.Phase, err.Err)
}

func (err *ErrAmplifier) Unwrap() error {
	return err.Err
}

// ErrSetting indicates the phase setting sequence of a failed network.
type ErrSetting struct {
	Phases []int64
	Err    error
}

func (err *ErrSetting) Error() string {
	return f("phases %v %v", err.Phases, err.Err)
}

func (err *ErrSetting) Unwrap() error {
	return err.Err
}
