package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	allocStrict bool
	allocLabel  string
	listFilter  string
)

func init() {
	alloc := newAllocCmd()
	alloc.Flags().BoolVarP(&allocStrict, "p2p", "p", false, "Align for peer to peer transfers (32 MiB windows)")
	alloc.Flags().StringVarP(&allocLabel, "label", "l", "", "Label stored with the reservation")
	rootCmd.AddCommand(alloc)

	rootCmd.AddCommand(newFreeCmd())

	blocks := newBlocksCmd()
	blocks.Flags().StringVar(&listFilter, "label", "", "Only blocks with this label")
	rootCmd.AddCommand(blocks)
}

func newAllocCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "alloc <size>",
		Short: "Allocate a block",
		Long: `Allocate a block in the selected window. The size is rounded up to
8 bytes.

Example:
  ddrctl alloc 100000 --p2p --label waveform`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := strconv.ParseUint(args[0], 0, 64)
			if err != nil {
				return fmt.Errorf("bad size: %w", err)
			}

			r := reservation{}
			err = call("POST", windowPath()+":allocate", map[string]any{
				"size":   size,
				"strict": allocStrict,
				"label":  allocLabel,
			}, &r)
			if err != nil {
				return err
			}
			if jsonOut {
				return printJSON(r)
			}
			printInfo("0x%08X - 0x%08X (%d bytes) id=%s\n", r.Address, r.End, r.Size, r.ID)
			return nil
		},
	}
}

func newFreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "free <address>",
		Short: "Free the block starting at address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			address, err := strconv.ParseUint(args[0], 0, 64)
			if err != nil {
				return fmt.Errorf("bad address: %w", err)
			}

			r := reservation{}
			err = call("POST", windowPath()+":free", map[string]any{"address": address}, &r)
			if err != nil {
				return err
			}
			if jsonOut {
				return printJSON(r)
			}
			printInfo("freed 0x%08X (%d bytes)\n", r.Address, r.Size)
			return nil
		},
	}
}

func newBlocksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "blocks",
		Short: "List live blocks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]any{}
			if listFilter != "" {
				body["filter"] = map[string]any{"label": listFilter}
			}
			return call("POST", windowPath()+":find", body, cmd.OutOrStdout())
		},
	}
}
