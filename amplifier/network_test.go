package amplifier

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Thegaram/advent-of-code-2019/cpu"
)

var (
	linearPrograms = []struct {
		prog   cpu.Program
		phases []int64
		expect int64
	}{
		{
			prog:   cpu.Program{3, 15, 3, 16, 1002, 16, 10, 16, 1, 16, 15, 15, 4, 15, 99, 0, 0},
			phases: []int64{4, 3, 2, 1, 0},
			expect: 43210,
		},
		{
			prog: cpu.Program{3, 23, 3, 24, 1002, 24, 10, 24, 1002, 23, -1, 23,
				101, 5, 23, 23, 1, 24, 23, 23, 4, 23, 99, 0, 0},
			phases: []int64{0, 1, 2, 3, 4},
			expect: 54321,
		},
		{
			prog: cpu.Program{3, 31, 3, 32, 1002, 32, 10, 32, 1001, 31, -2, 31, 1007, 31, 0, 33,
				1002, 33, 7, 33, 1, 33, 31, 31, 1, 32, 31, 31, 4, 31, 99, 0, 0, 0},
			phases: []int64{1, 0, 4, 3, 2},
			expect: 65210,
		},
	}

	feedbackPrograms = []struct {
		prog   cpu.Program
		phases []int64
		expect int64
		passes int
	}{
		{
			prog: cpu.Program{3, 26, 1001, 26, -4, 26, 3, 27, 1002, 27, 2, 27, 1, 27, 26,
				27, 4, 27, 1001, 28, -1, 28, 1005, 28, 6, 99, 0, 0, 5},
			phases: []int64{9, 8, 7, 6, 5},
			expect: 139629729,
			passes: 5,
		},
		{
			prog: cpu.Program{3, 52, 1001, 52, -5, 52, 3, 53, 1, 52, 56, 54, 1007, 54, 5, 55, 1005, 55, 26, 1001, 54,
				-5, 54, 1105, 1, 12, 1, 53, 54, 53, 1008, 54, 0, 55, 1001, 55, 1, 55, 2, 53, 55, 53, 4,
				53, 1001, 56, -1, 56, 1005, 56, 6, 99, 0, 0, 0, 0, 10},
			phases: []int64{9, 7, 8, 5, 6},
			expect: 18216,
			passes: 10,
		},
	}
)

func TestNewNetwork(t *testing.T) {
	assert := assert.New(t)

	prog := linearPrograms[0].prog
	net, err := NewNetwork(prog, []int64{4, 3, 2, 1, 0})
	assert.NoError(err)
	assert.False(net.Verbose)
	assert.Equal([AMPLIFIER_COUNT]int64{4, 3, 2, 1, 0}, net.Phases)
	assert.Equal([]int64{4, SEED_SIGNAL}, net.Pending(0))
	for n := 1; n < AMPLIFIER_COUNT; n++ {
		assert.Equal([]int64{net.Phases[n]}, net.Pending(n))
	}
	assert.Empty(net.Pending(AMPLIFIER_COUNT))

	for n, m := range net.Machines {
		assert.NotNil(m, "%d", n)
		assert.Equal([]int64(prog), m.Memory)
	}
	assert.NotSame(net.Machines[0], net.Machines[1])

	net.Machines[0].Memory[0] = 42
	assert.Equal(int64(3), net.Machines[1].Memory[0])
	assert.Equal(int64(3), prog[0])
}

func TestNewNetwork_Phases(t *testing.T) {
	assert := assert.New(t)

	prog := linearPrograms[0].prog

	_, err := NewNetwork(prog, []int64{0, 1, 2, 3})
	assert.ErrorIs(err, ErrPhaseCount)

	_, err = NewNetwork(prog, []int64{0, 1, 2, 3, 4, 5})
	assert.ErrorIs(err, ErrPhaseCount)

	_, err = NewNetwork(prog, []int64{0, 1, 2, 3, 0})
	assert.ErrorIs(err, ErrPhaseDuplicate)
}

func TestNetwork_Linear(t *testing.T) {
	for _, tc := range linearPrograms {
		assert := assert.New(t)

		net, err := NewNetwork(tc.prog, tc.phases)
		assert.NoError(err)

		signal, err := net.Linear()
		assert.NoError(err)
		assert.Equal(tc.expect, signal)
		assert.Equal(1, net.Passes)
		for _, m := range net.Machines {
			assert.True(m.Halted())
		}
	}
}

func TestNetwork_LinearPhases(t *testing.T) {
	assert := assert.New(t)

	net, err := NewNetwork(linearPrograms[0].prog, []int64{0, 1, 2, 3, 4})
	assert.NoError(err)
	signal, err := net.Run(TOPOLOGY_LINEAR)
	assert.NoError(err)
	assert.Equal(int64(1234), signal)

	net, err = NewNetwork(linearPrograms[1].prog, []int64{4, 3, 2, 1, 0})
	assert.NoError(err)
	signal, err = net.Run(TOPOLOGY_LINEAR)
	assert.NoError(err)
	assert.Equal(int64(12345), signal)
}

func TestNetwork_Feedback(t *testing.T) {
	for _, tc := range feedbackPrograms {
		assert := assert.New(t)

		net, err := NewNetwork(tc.prog, tc.phases)
		assert.NoError(err)

		signal, err := net.Feedback()
		assert.NoError(err)
		assert.Equal(tc.expect, signal)
		assert.Equal(tc.passes, net.Passes)
		for _, m := range net.Machines {
			assert.True(m.Halted())
		}

		// Run resets the network before starting over.
		signal, err = net.Run(TOPOLOGY_FEEDBACK)
		assert.NoError(err)
		assert.Equal(tc.expect, signal)
		assert.Equal(tc.passes, net.Passes)
	}
}

func TestNetwork_FeedbackSuspends(t *testing.T) {
	assert := assert.New(t)

	tc := feedbackPrograms[0]
	net, err := NewNetwork(tc.prog, tc.phases)
	assert.NoError(err)

	out, err := net.Pass()
	assert.NoError(err)
	assert.Len(out, 1)
	for _, m := range net.Machines {
		assert.True(m.Awaiting())
	}

	// The phase settings are consumed exactly once.
	for n := range AMPLIFIER_COUNT + 1 {
		assert.Empty(net.Pending(n))
	}
}

func TestNetwork_Protocol(t *testing.T) {
	assert := assert.New(t)

	// Echo the signal, halting after one echo when the phase is 5.
	prog := cpu.Program{
		3, 20, // in P
		3, 21, // in S
		4, 21, // out S
		1008, 20, 5, 22, // eq P 5
		1006, 22, 2, // jf -> in S
		99,
		0, 0, 0, 0, 0, 0, 0, 0, 0,
	}

	net, err := NewNetwork(prog, []int64{5, 6, 7, 8, 9})
	assert.NoError(err)

	_, err = net.Feedback()
	assert.ErrorIs(err, ErrProtocol)
	var amp *ErrAmplifier
	if assert.ErrorAs(err, &amp) {
		assert.Equal(0, amp.Index)
		assert.Equal(int64(5), amp.Phase)
	}

	// Halting in the last machine first is fine.
	net, err = NewNetwork(prog, []int64{6, 7, 8, 9, 5})
	assert.NoError(err)
	signal, err := net.Feedback()
	assert.NoError(err)
	assert.Equal(int64(0), signal)
}

func TestNetwork_Stalled(t *testing.T) {
	assert := assert.New(t)

	prog := cpu.Program{3, 7, 3, 7, 3, 7, 99, 0}

	net, err := NewNetwork(prog, []int64{0, 1, 2, 3, 4})
	assert.NoError(err)

	_, err = net.Feedback()
	assert.ErrorIs(err, ErrStalled)

	_, err = net.Run(TOPOLOGY_LINEAR)
	assert.ErrorIs(err, ErrNoOutput)
}

func TestNetwork_Errors(t *testing.T) {
	assert := assert.New(t)

	prog := cpu.Program{3, 9, 1, 100, 0, 0, 99, 0, 0, 0}

	net, err := NewNetwork(prog, []int64{0, 1, 2, 3, 4})
	assert.NoError(err)

	_, err = net.Run(TOPOLOGY_FEEDBACK)
	assert.ErrorIs(err, cpu.ErrAddressRange)
	var amp *ErrAmplifier
	if assert.ErrorAs(err, &amp) {
		assert.Equal(0, amp.Index)
	}

	_, err = net.Run(Topology(7))
	assert.ErrorIs(err, ErrTopology)
	assert.Equal("Topology(7)", Topology(7).String())
	assert.Equal("feedback", TOPOLOGY_FEEDBACK.String())
}
