package amplifier

import (
	"log"
	"slices"

	"github.com/Thegaram/advent-of-code-2019/cpu"
	"github.com/Thegaram/advent-of-code-2019/internal"
)

// Search looks for the phase setting sequence with the largest output signal.
type Search struct {
	Verbose  bool     // If set, enables verbose logging.
	Topology Topology // Network topology to evaluate.
	Phases   []int64  // Phase settings to permute.
}

// Max runs a network for every ordering of the phase settings.
// Any failing network aborts the search.
func (s *Search) Max(prog cpu.Program) (best int64, setting []int64, err error) {
	if len(s.Phases) != AMPLIFIER_COUNT {
		err = ErrPhaseCount
		return
	}

	for phases := range internal.Permutations(s.Phases) {
		var net *Network
		net, err = NewNetwork(prog, phases)
		if err != nil {
			return
		}
		net.Verbose = s.Verbose

		var signal int64
		signal, err = net.Run(s.Topology)
		if err != nil {
			err = &ErrSetting{Phases: phases, Err: err}
			return
		}

		if setting == nil || signal > best {
			best = signal
			setting = slices.Clone(phases)
			if s.Verbose {
				log.Printf("amplifier: %v phases %v signal %v", s.Topology, setting, best)
			}
		}
	}

	return
}

// MaxSignal returns the largest output signal over every ordering of phases.
func MaxSignal(prog cpu.Program, phases []int64, topology Topology) (best int64, setting []int64, err error) {
	search := &Search{
		Topology: topology,
		Phases:   phases,
	}

	return search.Max(prog)
}
