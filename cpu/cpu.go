package cpu

import (
	"fmt"
	"iter"
	"log"

	"github.com/Thegaram/advent-of-code-2019/io"
)

// Channel is a value channel interface.
type Channel io.Channel

// State is the execution state of a Machine.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_RUNNING        = State(0) // running
	STATE_AWAITING_INPUT = State(1) // awaiting-input
	STATE_HALTED         = State(2) // halted
)

var _alu = map[Opcode]func(a, b int64) int64{
	OP_ADD: func(a, b int64) int64 { return a + b },
	OP_MUL: func(a, b int64) int64 { return a * b },
	OP_LT:  func(a, b int64) int64 { return boolValue(a < b) },
	OP_EQ:  func(a, b int64) int64 { return boolValue(a == b) },
}

var _jump = map[Opcode]func(test int64) bool{
	OP_JT: func(test int64) bool { return test != 0 },
	OP_JF: func(test int64) bool { return test == 0 },
}

func boolValue(cond bool) int64 {
	if cond {
		return 1
	}
	return 0
}

// Machine is the simulation context for a single Intcode computer.
//
// A machine owns its memory. It is resumable: Step runs until an output is
// produced, until an input instruction finds no value (STATE_AWAITING_INPUT),
// or until the program halts (STATE_HALTED). A suspended machine continues
// from the same instruction on the next Step.
type Machine struct {
	Verbose bool // Set to enable instruction tracing.

	Memory []int64 // Program memory, never extended.
	Pc     int     // Address of the next instruction.
	State  State   // Execution state.

	Ticks int // Instructions executed.
}

// NewMachine creates a machine running a private copy of the program.
func NewMachine(prog Program) (m *Machine) {
	m = &Machine{
		Memory: prog.Clone(),
	}

	return
}

// Halted returns true once the machine has executed a halt instruction.
func (m *Machine) Halted() bool {
	return m.State == STATE_HALTED
}

// Awaiting returns true if the machine is suspended on an input instruction.
func (m *Machine) Awaiting() bool {
	return m.State == STATE_AWAITING_INPUT
}

// String returns the current machine state as a string.
func (m *Machine) String() (text string) {
	text += fmt.Sprintf("% 6s: %04d\n", "pc", m.Pc)
	text += fmt.Sprintf("% 6s: %v\n", "state", m.State)
	text += fmt.Sprintf("% 6s: %d\n", "ticks", m.Ticks)
	text += fmt.Sprintf("% 6s: %d\n", "memory", len(m.Memory))

	return
}

// load reads the memory cell at addr.
func (m *Machine) load(addr int64) (value int64, err error) {
	if addr < 0 || addr >= int64(len(m.Memory)) {
		err = ErrAddress(addr)
		return
	}

	value = m.Memory[addr]
	return
}

// store writes the memory cell at addr.
func (m *Machine) store(addr int64, value int64) (err error) {
	if addr < 0 || addr >= int64(len(m.Memory)) {
		err = ErrAddress(addr)
		return
	}

	m.Memory[addr] = value
	return
}

// param returns the raw parameter at offset n from the instruction.
func (m *Machine) param(n int) (value int64, err error) {
	return m.load(int64(m.Pc + n))
}

// resolve returns the value of mode parameter n, as selected by its mode.
func (m *Machine) resolve(code Code, n int) (value int64, err error) {
	value, err = m.param(n + 1)
	if err != nil {
		return
	}

	switch code.Modes[n] {
	case MODE_VALUE:
		// literal
	case MODE_POSITION:
		value, err = m.load(value)
	default:
		err = ErrMode{Word: code.Word(), Param: n}
	}

	return
}

// Fetch decodes the instruction at the program counter.
func (m *Machine) Fetch() (code Code, err error) {
	word, err := m.load(int64(m.Pc))
	if err != nil {
		return
	}

	code, err = Decode(word)
	return
}

// Execute executes a single decoded instruction.
//
// An output instruction returns its value with output set. An input
// instruction that receives nothing from in leaves the program counter in
// place and moves the machine to STATE_AWAITING_INPUT.
func (m *Machine) Execute(code Code, in Channel) (value int64, output bool, err error) {
	defer func() {
		if err != nil {
			err = &ErrRuntime{Pc: m.Pc, Code: code, Err: err}
		}
	}()

	if m.State == STATE_HALTED {
		err = ErrHalted
		return
	}

	if m.Verbose {
		log.Printf("%04d: %v", m.Pc, code)
	}

	m.State = STATE_RUNNING
	next_pc := m.Pc + code.Op.Width()

	switch code.Op {
	case OP_ADD, OP_MUL, OP_LT, OP_EQ:
		var a, b, dst int64
		a, err = m.resolve(code, 0)
		if err != nil {
			return
		}
		b, err = m.resolve(code, 1)
		if err != nil {
			return
		}
		dst, err = m.param(3)
		if err != nil {
			return
		}
		err = m.store(dst, _alu[code.Op](a, b))
		if err != nil {
			return
		}
	case OP_IN:
		var dst int64
		dst, err = m.param(1)
		if err != nil {
			return
		}
		var input int64
		var ok bool
		if in != nil {
			for v := range in.Receive() {
				input, ok = v, true
				break
			}
		}
		if !ok {
			if m.Verbose {
				log.Printf("%04d: awaiting input", m.Pc)
			}
			m.State = STATE_AWAITING_INPUT
			return
		}
		err = m.store(dst, input)
		if err != nil {
			return
		}
	case OP_OUT:
		var src int64
		src, err = m.param(1)
		if err != nil {
			return
		}
		value, err = m.load(src)
		if err != nil {
			return
		}
		output = true
	case OP_JT, OP_JF:
		var test, target int64
		test, err = m.resolve(code, 0)
		if err != nil {
			return
		}
		target, err = m.resolve(code, 1)
		if err != nil {
			return
		}
		if _jump[code.Op](test) {
			if target < 0 || target >= int64(len(m.Memory)) {
				err = ErrAddress(target)
				return
			}
			next_pc = int(target)
		}
	case OP_HLT:
		if m.Verbose {
			log.Printf("%04d: halted after %d ticks", m.Pc, m.Ticks)
		}
		m.State = STATE_HALTED
		next_pc = m.Pc
	default:
		err = ErrOpcode(code.Word())
		return
	}

	m.Pc = next_pc
	m.Ticks++

	return
}

// Tick executes a single instruction, sending any output to out.
func (m *Machine) Tick(in, out Channel) (err error) {
	if m.Halted() {
		err = ErrHalted
		return
	}

	code, err := m.Fetch()
	if err != nil {
		err = &ErrRuntime{Pc: m.Pc, Err: err}
		return
	}

	value, output, err := m.Execute(code, in)
	if err != nil || !output || out == nil {
		return
	}

	err = out.Send(value)
	return
}

// Step resumes execution until the machine produces an output value
// (ok is true), suspends for input, or halts.
func (m *Machine) Step(in Channel) (value int64, ok bool, err error) {
	if m.Halted() {
		err = ErrHalted
		return
	}

	for {
		var code Code
		code, err = m.Fetch()
		if err != nil {
			err = &ErrRuntime{Pc: m.Pc, Err: err}
			return
		}

		value, ok, err = m.Execute(code, in)
		if err != nil || ok || m.State != STATE_RUNNING {
			return
		}
	}
}

// Run resumes execution, sending every output to out, until the machine
// suspends for input or halts.
func (m *Machine) Run(in, out Channel) (err error) {
	for {
		var value int64
		var ok bool
		value, ok, err = m.Step(in)
		if err != nil || !ok {
			return
		}
		err = out.Send(value)
		if err != nil {
			return
		}
	}
}

// Outputs returns the demand-driven output sequence of the machine.
// Each value pulled from the sequence resumes the machine; the sequence ends
// when the machine halts or suspends for input, and yields a final error if
// execution fails.
func (m *Machine) Outputs(in Channel) iter.Seq2[int64, error] {
	return func(yield func(value int64, err error) bool) {
		for {
			value, ok, err := m.Step(in)
			if err != nil {
				yield(0, err)
				return
			}
			if !ok {
				return
			}
			if !yield(value, nil) {
				return
			}
		}
	}
}
