package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Thegaram/advent-of-code-2019/cpu"
)

// NewDumpCommand creates the dump command.
func NewDumpCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "dump FILE",
		Short:         "Disassemble a program",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args[0], cmd)
		},
	}

	return cmd
}

func runDump(path string, cmd *cobra.Command) (err error) {
	prog, err := cpu.LoadProgram(path)
	if err != nil {
		return
	}

	for pc, text := range prog.Disassembly() {
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "%04d: %v\n", pc, text)
		if err != nil {
			return
		}
	}

	return
}
