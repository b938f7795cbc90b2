package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/slabforge/slabkit/slab"
)

var (
	insertN       int
	insertIters   int
	insertWidth   string
	insertChecked bool
)

func init() {
	cmd := newInsertCmd()
	cmd.Flags().IntVar(&insertN, "n", 10000, "Inserts per fresh slab")
	cmd.Flags().IntVar(&insertIters, "iters", 100, "Fresh slabs to fill")
	cmd.Flags().
		StringVar(&insertWidth, "width", "32", "Key width: 8, 16, 32 or native")
	cmd.Flags().
		BoolVar(&insertChecked, "checked", false, "Use the occupancy-validated path")
	rootCmd.AddCommand(cmd)
}

func newInsertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "insert",
		Short: "Measure fresh-slab fill throughput",
		Long: `The insert command repeatedly constructs an empty slab, fills it with
--n inserts, and discards it. Every insert before the first remove takes the
virgin-slot path, so this measures raw allocation throughput including
growth events.

Example:
  slabbench insert --n 10000 --iters 1000
  slabbench insert --width 16 --n 50000 --checked --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInsert()
		},
	}
}

func runInsert() error {
	if err := checkWidthFits(insertWidth, insertN); err != nil {
		return err
	}

	var elapsed time.Duration
	var err error
	switch insertWidth {
	case width8:
		elapsed, err = fill[uint8](insertChecked, insertN, insertIters)
	case width16:
		elapsed, err = fill[uint16](insertChecked, insertN, insertIters)
	case width32:
		elapsed, err = fill[uint32](insertChecked, insertN, insertIters)
	case widthNative:
		elapsed, err = fill[uintptr](insertChecked, insertN, insertIters)
	}
	if err != nil {
		return err
	}

	ops := int64(insertN) * int64(insertIters)
	return emit(newBenchReport("insert", insertWidth, insertChecked, ops, elapsed))
}

// fill is the canonical harness loop: fill a fresh slab with n inserts
// and drop it, iters times over.
func fill[K slab.Key](checked bool, n, iters int) (time.Duration, error) {
	if checked {
		start := time.Now()
		for range iters {
			c := slab.NewChecked[int, K]()
			for i := range n {
				if _, err := c.Insert(i + 1); err != nil {
					return 0, err
				}
			}
		}
		return time.Since(start), nil
	}

	start := time.Now()
	for range iters {
		s := slab.New[int, K]()
		for i := range n {
			s.Insert(i + 1)
		}
	}
	return time.Since(start), nil
}
