package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newDumpCmd())
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show free space of a window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := windowInfo{}
			if err := call("GET", windowPath(), nil, &w); err != nil {
				return err
			}
			if jsonOut {
				return printJSON(w)
			}
			printInfo("Window:     %s\n", w.Name)
			printInfo("Range:      0x%08X - 0x%08X\n", w.Base, w.Base+w.Total)
			printInfo("Total:      %d bytes\n", w.Total)
			printInfo("Available:  %d bytes\n", w.Available)
			printInfo("Max block:  %d bytes\n", w.MaxFreeRun)
			printInfo("Blocks:     %d\n", w.Blocks)
			return nil
		},
	}
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print the block layout of a window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return call("GET", windowPath()+"/dump", nil, cmd.OutOrStdout())
		},
	}
}
