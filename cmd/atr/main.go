// Command atr computes the exact All-Terminal Reliability of a graph
// described in Trivial Graph Format.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/atrgraph/atr"
	"github.com/katalvlaran/atrgraph/tgf"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "atr",
		Short: "Compute exact All-Terminal Reliability for TGF graphs",
	}
	root.AddCommand(computeCmd())
	return root
}

func computeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compute <graph.tgf>",
		Short: "Compute the All-Terminal Reliability of a TGF graph file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := tgf.ParseFile(args[0])
			if err != nil {
				return err
			}

			r, err := atr.CalculateATR(m)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "ATR: %v\n", r)
			return nil
		},
	}
}
