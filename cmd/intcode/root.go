package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/Thegaram/advent-of-code-2019/amplifier"
	"github.com/Thegaram/advent-of-code-2019/cpu"
	"github.com/Thegaram/advent-of-code-2019/internal"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "text" | "yaml"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "yaml"}

var _phase_defines = map[string]int64{
	"AMPLIFIER_COUNT": amplifier.AMPLIFIER_COUNT,
}

// AmplifyOptions holds flags for the amplifier search.
type AmplifyOptions struct {
	*RootOptions
	Phases         string
	FeedbackPhases string
}

// NewRootCommand creates the command tree. Without a subcommand, the
// amplifier search is run.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}
	amp := &AmplifyOptions{RootOptions: opts}

	cmd := &cobra.Command{
		Use:   "intcode FILE",
		Short: "Intcode machine and amplifier network",
		Long: `Run Intcode programs.

Without a subcommand, FILE is searched for the highest amplifier signal,
first with the linear network (part-1), then with the feedback network (part-2).

Example:
  intcode input.txt
  intcode --phases '[0, 1, 2, 3, 4]' input.txt`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAmplify(amp, args[0], cmd)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "trace execution")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|yaml)")

	cmd.Flags().StringVar(&amp.Phases, "phases", "range(0, 5)", "linear network phase settings")
	cmd.Flags().StringVar(&amp.FeedbackPhases, "feedback-phases", "range(5, 10)", "feedback network phase settings")

	cmd.AddCommand(NewDiagnoseCommand(opts))
	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewDumpCommand(opts))

	return cmd
}

func runAmplify(opts *AmplifyOptions, path string, cmd *cobra.Command) (err error) {
	prog, err := cpu.LoadProgram(path)
	if err != nil {
		return
	}

	parts := []struct {
		expr     string
		topology amplifier.Topology
	}{
		{opts.Phases, amplifier.TOPOLOGY_LINEAR},
		{opts.FeedbackPhases, amplifier.TOPOLOGY_FEEDBACK},
	}

	var answers []Answer
	for n, part := range parts {
		var phases []int64
		phases, err = internal.EvalInts(part.expr, _phase_defines)
		if err != nil {
			return
		}

		search := &amplifier.Search{
			Verbose:  opts.Verbose,
			Topology: part.topology,
			Phases:   phases,
		}

		var best int64
		var setting []int64
		best, setting, err = search.Max(prog)
		if err != nil {
			err = fmt.Errorf("%v: %v: %w", path, part.topology, err)
			return
		}

		answers = append(answers, Answer{
			Name:   fmt.Sprintf("part-%d", n+1),
			Value:  best,
			Phases: setting,
		})
	}

	err = writeAnswers(cmd.OutOrStdout(), opts.Format, answers)
	return
}
