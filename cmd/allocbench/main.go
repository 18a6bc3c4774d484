// Command allocbench issues randomized allocate/free sequences against
// bumppool.Allocator and, for comparison, the same schedule against the
// host Go allocator, then prints the comparative timing and the
// allocator's own statistics table.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := benchOptions{}
	cmd := &cobra.Command{
		Use:   "allocbench",
		Short: "Benchmark the pooled bump-plus-reclaim allocator against the host allocator",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}
	cmd.Flags().Uint64Var(&opts.Capacity, "capacity", 10*1<<20, "pool capacity in bytes")
	cmd.Flags().IntVar(&opts.MaxLen, "max-len", 100, "maximum request size in bytes")
	cmd.Flags().IntVar(&opts.DeallocPercent, "dealloc-percent", 95, "probability (0-100) of a deallocation after each allocation")
	cmd.Flags().IntVar(&opts.Repeats, "repeats", 250000, "number of allocation rounds to simulate")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 1, "random seed for the request-size sequence")
	return cmd
}
