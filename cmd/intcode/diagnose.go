package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Thegaram/advent-of-code-2019/cpu"
	"github.com/Thegaram/advent-of-code-2019/emulator"
)

// DiagnoseOptions holds flags for the diagnose command.
type DiagnoseOptions struct {
	*RootOptions
	Ids []int64
}

// NewDiagnoseCommand creates the diagnose command.
func NewDiagnoseCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DiagnoseOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "diagnose FILE",
		Short: "Run a diagnostic program once per system ID",
		Long: `Run a diagnostic program once per system ID.

Each run gets a fresh machine whose only input is the system ID. The last
value the program outputs is reported.

Example:
  intcode diagnose input.txt
  intcode diagnose --id 8 input.txt`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiagnose(opts, args[0], cmd)
		},
	}

	cmd.Flags().Int64SliceVar(&opts.Ids, "id", []int64{1, 5}, "system IDs")

	return cmd
}

func runDiagnose(opts *DiagnoseOptions, path string, cmd *cobra.Command) (err error) {
	prog, err := cpu.LoadProgram(path)
	if err != nil {
		return
	}

	emu := emulator.NewEmulator()
	emu.Verbose = opts.Verbose
	emu.Program = prog

	codes, err := emu.Diagnose(opts.Ids...)
	if err != nil {
		err = fmt.Errorf("%v: %w", path, err)
		return
	}

	var answers []Answer
	for n, code := range codes {
		answers = append(answers, Answer{
			Name:  fmt.Sprintf("part-%d", n+1),
			Value: code,
			Id:    &opts.Ids[n],
		})
	}

	err = writeAnswers(cmd.OutOrStdout(), opts.Format, answers)
	return
}
