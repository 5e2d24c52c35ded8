// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"log"

	"github.com/Thegaram/advent-of-code-2019/cpu"
	"github.com/Thegaram/advent-of-code-2019/io"
)

// Emulator state. One machine attached to a tape.
type Emulator struct {
	Verbose      bool        // If set, enables verbose logging.
	*cpu.Machine             // Reference to the machine simulation.
	Program      cpu.Program // Currently loaded program.

	Tape io.Tape // Tape IO channel, used for both input and output.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Machine: cpu.NewMachine(nil),
	}

	return
}

// Reset the machine to a fresh copy of the program.
func (emu *Emulator) Reset() (err error) {
	if len(emu.Program) == 0 {
		err = cpu.ErrProgramEmpty
		return
	}

	emu.Machine = cpu.NewMachine(emu.Program)
	emu.Machine.Verbose = emu.Verbose
	emu.Tape.Rewind()

	if emu.Verbose {
		log.Printf("emulator: reset, %d words", len(emu.Program))
	}

	return
}

// Code returns the instruction at the program counter, or the zero Code if
// it cannot be decoded.
func (emu *Emulator) Code() (code cpu.Code) {
	code, _ = emu.Machine.Fetch()
	return
}

// Tick performs a single instruction of the emulator.
// Returns done once the machine halts, or suspends because the tape has no
// more input.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Machine.Verbose = emu.Verbose

	pc := emu.Machine.Pc
	defer func() {
		if err != nil {
			err = &ErrRuntime{Pc: pc, Err: err}
		}
	}()

	if emu.Machine.Halted() {
		done = true
		return
	}

	err = emu.Machine.Tick(&emu.Tape, &emu.Tape)
	if err != nil {
		return
	}

	err = emu.Tape.Err()
	if err != nil {
		return
	}

	done = emu.Machine.Halted() || emu.Machine.Awaiting()

	return
}

// Run ticks the emulator until done.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}

// Diagnose runs the program once per system ID, each on a fresh machine
// whose only input is the ID, and returns the final output of every run.
func (emu *Emulator) Diagnose(ids ...int64) (codes []int64, err error) {
	for _, id := range ids {
		m := cpu.NewMachine(emu.Program)
		m.Verbose = emu.Verbose

		in := &io.Queue{}
		err = in.Send(id)
		if err != nil {
			return
		}

		var last int64
		var count int
		for value, step_err := range m.Outputs(in) {
			if step_err != nil {
				err = &ErrDiagnostic{Id: id, Err: step_err}
				return
			}
			if emu.Verbose {
				log.Printf("emulator: id %d output %d", id, value)
			}
			last = value
			count++
		}

		if !m.Halted() {
			err = &ErrDiagnostic{Id: id, Err: ErrInputExhausted}
			return
		}

		if count == 0 {
			err = &ErrDiagnostic{Id: id, Err: ErrNoOutput}
			return
		}

		codes = append(codes, last)
	}

	return
}
