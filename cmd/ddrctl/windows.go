package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newWindowsCmd())
	rootCmd.AddCommand(newCreateCmd())
}

func newWindowsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "windows",
		Short: "List memory windows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			windows := []windowInfo{}
			if err := call("GET", "/v1/windows", nil, &windows); err != nil {
				return err
			}
			if jsonOut {
				return printJSON(windows)
			}
			for _, w := range windows {
				printInfo("%-12s 0x%08X %d bytes, %d blocks, %d bytes available\n",
					w.Name, w.Base, w.Total, w.Blocks, w.Available)
			}
			return nil
		},
	}
}

func newCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <name> <base> <total>",
		Short: "Create a memory window",
		Long: `Create a new memory window. Base and total accept decimal or 0x
prefixed hexadecimal values.

Example:
  ddrctl create aux 0x30000000 0x4000000`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := strconv.ParseUint(args[1], 0, 64)
			if err != nil {
				return fmt.Errorf("bad base: %w", err)
			}
			total, err := strconv.ParseUint(args[2], 0, 64)
			if err != nil {
				return fmt.Errorf("bad total: %w", err)
			}

			w := windowInfo{}
			err = call("POST", "/v1/windows", map[string]any{
				"name":  args[0],
				"base":  base,
				"total": total,
			}, &w)
			if err != nil {
				return err
			}
			if jsonOut {
				return printJSON(w)
			}
			printInfo("created %s: 0x%08X, %d bytes\n", w.Name, w.Base, w.Total)
			return nil
		},
	}
}
