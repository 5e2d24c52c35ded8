package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Thegaram/advent-of-code-2019/cpu"
	"github.com/Thegaram/advent-of-code-2019/emulator"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Input  string
	Output string
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run FILE",
		Short: "Run a program on a single machine attached to a tape",
		Long: `Run a program on a single machine attached to a tape.

Input values are read from the input tape, separated by commas or whitespace.
Each output value is written to the output tape on its own line.

Example:
  echo 5 | intcode run input.txt
  intcode run -i values.txt -o out.txt input.txt`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTape(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Input, "input", "i", "-", "tape input")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "-", "tape output")

	return cmd
}

func runTape(opts *RunOptions, path string, cmd *cobra.Command) (err error) {
	prog, err := cpu.LoadProgram(path)
	if err != nil {
		return
	}

	emu := emulator.NewEmulator()
	emu.Verbose = opts.Verbose
	emu.Program = prog

	err = emu.Reset()
	if err != nil {
		return
	}

	if opts.Input == "-" {
		emu.Tape.Input = cmd.InOrStdin()
	} else {
		inf, err := os.Open(opts.Input)
		if err != nil {
			return err
		}
		defer inf.Close()
		emu.Tape.Input = inf
	}

	if opts.Output == "-" {
		emu.Tape.Output = cmd.OutOrStdout()
	} else {
		ouf, err := os.Create(opts.Output)
		if err != nil {
			return err
		}
		defer ouf.Close()
		emu.Tape.Output = ouf
	}

	err = emu.Run()
	if err != nil {
		err = fmt.Errorf("%v: %w", path, err)
		return
	}

	if !emu.Halted() {
		err = fmt.Errorf("%v: %w", path, emulator.ErrInputExhausted)
		return
	}

	return
}
