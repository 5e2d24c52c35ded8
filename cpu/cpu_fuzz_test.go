package cpu

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Thegaram/advent-of-code-2019/io"
)

const fuzzMemory = 12

func FuzzExecute(f *testing.F) {
	for _, word := range []int64{1, 2, 3, 4, 5, 6, 7, 8, 99, 1002, 1101, 1105, 1106, 1107, 1008, 201} {
		f.Add(word, uint8(4), uint8(9), uint8(10), true)
		f.Add(word, uint8(0), uint8(0), uint8(200), false)
	}

	f.Fuzz(func(t *testing.T, word int64, p1 uint8, p2 uint8, p3 uint8, inputs bool) {
		assert := assert.New(t)

		prog := make(Program, fuzzMemory)
		prog[0] = word
		prog[1] = int64(p1)
		prog[2] = int64(p2)
		prog[3] = int64(p3)
		for n := 4; n < fuzzMemory; n++ {
			prog[n] = int64(n * 10)
		}

		m := NewMachine(prog)

		in := &io.Queue{}
		const input = int64(-77)
		if inputs {
			assert.NoError(in.Send(input))
		}

		pre_memory := slices.Clone(m.Memory)

		code, decode_err := Decode(word)
		value, output, err := m.Execute(code, in)

		code_str := fmt.Sprintf("%d (%v) params:%v,%v,%v inputs:%v\n%v",
			word, code, p1, p2, p3, inputs, m.String())

		if decode_err != nil {
			// The zero Code is not an instruction.
			assert.ErrorIs(err, ErrOpcodeInvalid, code_str)
			return
		}

		inRange := func(addr int64) bool {
			return addr >= 0 && addr < fuzzMemory
		}

		get_value := func(n int) (value int64, ok bool) {
			raw := pre_memory[n+1]
			if code.Modes[n] == MODE_VALUE {
				return raw, true
			}
			if !inRange(raw) {
				return
			}
			return pre_memory[raw], true
		}

		expect_memory := slices.Clone(pre_memory)
		expect_pc := code.Op.Width()
		expect_state := STATE_RUNNING
		var expect_value int64
		var expect_output bool
		expect_fail := false

		switch code.Op {
		case OP_ADD, OP_MUL, OP_LT, OP_EQ:
			a, ok_a := get_value(0)
			b, ok_b := get_value(1)
			dst := pre_memory[3]
			if !ok_a || !ok_b || !inRange(dst) {
				expect_fail = true
				break
			}
			expect_memory[dst] = _alu[code.Op](a, b)
		case OP_IN:
			dst := pre_memory[1]
			switch {
			case !inputs:
				expect_pc = 0
				expect_state = STATE_AWAITING_INPUT
			case !inRange(dst):
				expect_fail = true
			default:
				expect_memory[dst] = input
			}
		case OP_OUT:
			src := pre_memory[1]
			if !inRange(src) {
				expect_fail = true
				break
			}
			expect_value = pre_memory[src]
			expect_output = true
		case OP_JT, OP_JF:
			test, ok_test := get_value(0)
			target, ok_target := get_value(1)
			if !ok_test || !ok_target {
				expect_fail = true
				break
			}
			if _jump[code.Op](test) {
				if !inRange(target) {
					expect_fail = true
					break
				}
				expect_pc = int(target)
			}
		case OP_HLT:
			expect_pc = 0
			expect_state = STATE_HALTED
		default:
			panic(ErrOpcode(word))
		}

		if expect_fail {
			assert.ErrorIs(err, ErrAddressRange, code_str)
			var rt *ErrRuntime
			if assert.True(errors.As(err, &rt), code_str) {
				assert.Equal(0, rt.Pc, code_str)
				assert.Equal(code, rt.Code, code_str)
			}
			assert.Equal(0, m.Ticks, code_str)
			return
		}

		assert.NoError(err, code_str)
		assert.Equal(expect_value, value, code_str)
		assert.Equal(expect_output, output, code_str)
		assert.Equal(expect_pc, m.Pc, code_str)
		assert.Equal(expect_state, m.State, code_str)
		assert.Equal([]int64(expect_memory), m.Memory, code_str)
	})
}
