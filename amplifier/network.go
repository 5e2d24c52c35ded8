package amplifier

import (
	"log"
	"slices"

	"github.com/Thegaram/advent-of-code-2019/cpu"
	"github.com/Thegaram/advent-of-code-2019/internal"
	"github.com/Thegaram/advent-of-code-2019/io"
)

const (
	AMPLIFIER_COUNT = 5 // Machines in a network.
	SEED_SIGNAL     = 0 // Input signal of the first machine.
)

// Topology is the way the network's edges are connected.
type Topology int

//go:generate go tool stringer -linecomment -type=Topology
const (
	TOPOLOGY_LINEAR   = Topology(0) // linear
	TOPOLOGY_FEEDBACK = Topology(1) // feedback
)

// Network state. Five machines and the queues between them.
type Network struct {
	Verbose bool        // If set, enables verbose logging.
	Program cpu.Program // Program every machine starts from.

	Machines [AMPLIFIER_COUNT]*cpu.Machine
	Phases   [AMPLIFIER_COUNT]int64

	Passes int // Passes since the last reset.

	// edge[n] feeds machine n; edge[AMPLIFIER_COUNT] collects the output.
	edge [AMPLIFIER_COUNT + 1]io.Queue
}

// NewNetwork creates a network running prog with one phase setting per machine.
func NewNetwork(prog cpu.Program, phases []int64) (net *Network, err error) {
	if len(phases) != AMPLIFIER_COUNT {
		err = ErrPhaseCount
		return
	}

	for n, phase := range phases {
		if slices.Contains(phases[:n], phase) {
			err = ErrPhaseDuplicate
			return
		}
	}

	net = &Network{
		Program: prog,
	}
	copy(net.Phases[:], phases)

	err = net.Reset()
	if err != nil {
		net = nil
	}

	return
}

// Reset the network state.
// - Creates every machine from a fresh copy of the program.
// - Empties every edge, then queues each machine's phase setting.
// - Queues the seed signal after the first machine's phase setting.
func (net *Network) Reset() (err error) {
	if net.Verbose {
		log.Printf("amplifier: reset phases %v", net.Phases)
	}

	net.Passes = 0

	for n := range net.edge {
		net.edge[n].Rewind()
	}

	for n, phase := range net.Phases {
		net.Machines[n] = cpu.NewMachine(net.Program)

		var seed []int64
		if n == 0 {
			seed = []int64{SEED_SIGNAL}
		}
		for value := range internal.IterSeqConcat(slices.Values([]int64{phase}), slices.Values(seed)) {
			err = net.edge[n].Send(value)
			if err != nil {
				return
			}
		}
	}

	return
}

// Pending returns the values waiting on the input edge of machine n.
func (net *Network) Pending(n int) []int64 {
	return net.edge[n].Values()
}

// Pass runs each machine in order until it suspends for input or halts,
// and returns everything the last machine produced.
// Halted machines are skipped.
func (net *Network) Pass() (out []int64, err error) {
	net.Passes++

	for n, m := range net.Machines {
		m.Verbose = net.Verbose
		if m.Halted() {
			continue
		}

		err = m.Run(&net.edge[n], &net.edge[n+1])
		if err != nil {
			err = &ErrAmplifier{Index: n, Phase: net.Phases[n], Err: err}
			return
		}
	}

	out = net.edge[AMPLIFIER_COUNT].Drain()

	if net.Verbose {
		log.Printf("amplifier: pass %d output %v", net.Passes, out)
	}

	return
}

// Linear performs a single pass, returning the first signal the last machine
// produced.
func (net *Network) Linear() (signal int64, err error) {
	out, err := net.Pass()
	if err != nil {
		return
	}

	if len(out) == 0 {
		err = ErrNoOutput
		return
	}

	signal = out[0]
	return
}

// Feedback performs passes, feeding the output of the last machine back to
// the first one, until the last machine halts. It returns the last signal of
// the terminal pass.
//
// Every machine is expected to halt on the same pass as the last one. A
// machine that halts earlier is a protocol violation.
func (net *Network) Feedback() (signal int64, err error) {
	last := net.Machines[AMPLIFIER_COUNT-1]

	for {
		var out []int64
		out, err = net.Pass()
		if err != nil {
			return
		}

		if last.Halted() {
			if len(out) == 0 {
				err = ErrNoOutput
				return
			}
			signal = out[len(out)-1]
			return
		}

		for n, m := range net.Machines[:AMPLIFIER_COUNT-1] {
			if m.Halted() {
				err = &ErrAmplifier{Index: n, Phase: net.Phases[n], Err: ErrProtocol}
				return
			}
		}

		if len(out) == 0 {
			err = ErrStalled
			return
		}

		for _, value := range out {
			err = net.edge[0].Send(value)
			if err != nil {
				return
			}
		}
	}
}

// Run resets the network, then computes its output signal in the given topology.
func (net *Network) Run(topology Topology) (signal int64, err error) {
	err = net.Reset()
	if err != nil {
		return
	}

	switch topology {
	case TOPOLOGY_LINEAR:
		signal, err = net.Linear()
	case TOPOLOGY_FEEDBACK:
		signal, err = net.Feedback()
	default:
		err = ErrTopology
	}

	return
}
