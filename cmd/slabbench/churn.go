package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/slabforge/slabkit/slab"
)

var (
	churnLive    int
	churnOps     int
	churnWidth   string
	churnChecked bool
)

func init() {
	cmd := newChurnCmd()
	cmd.Flags().IntVar(&churnLive, "live", 1024, "Steady-state live-set size")
	cmd.Flags().IntVar(&churnOps, "ops", 1_000_000, "Remove+insert pairs to run")
	cmd.Flags().
		StringVar(&churnWidth, "width", "32", "Key width: 8, 16, 32 or native")
	cmd.Flags().
		BoolVar(&churnChecked, "checked", false, "Use the occupancy-validated path")
	rootCmd.AddCommand(cmd)
}

func newChurnCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "churn",
		Short: "Measure steady-state remove+insert throughput",
		Long: `The churn command prefills a slab to --live elements and then runs
--ops remove+insert pairs against it. Every operation after the prefill
rides the intrusive free list, so this measures the LIFO reuse fast path
with no growth events.

Example:
  slabbench churn --live 4096 --ops 5000000
  slabbench churn --width 8 --live 200 --checked`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChurn()
		},
	}
}

func runChurn() error {
	if churnLive <= 0 {
		return fmt.Errorf("--live must be positive, got %d", churnLive)
	}
	if err := checkWidthFits(churnWidth, churnLive); err != nil {
		return err
	}

	var elapsed time.Duration
	var err error
	switch churnWidth {
	case width8:
		elapsed, err = churn[uint8](churnChecked, churnLive, churnOps)
	case width16:
		elapsed, err = churn[uint16](churnChecked, churnLive, churnOps)
	case width32:
		elapsed, err = churn[uint32](churnChecked, churnLive, churnOps)
	case widthNative:
		elapsed, err = churn[uintptr](churnChecked, churnLive, churnOps)
	}
	if err != nil {
		return err
	}

	// Each pair is two operations.
	ops := 2 * int64(churnOps)
	return emit(newBenchReport("churn", churnWidth, churnChecked, ops, elapsed))
}

// churn runs remove+insert pairs at a fixed live-set size. The prefill
// is excluded from the measurement.
func churn[K slab.Key](checked bool, live, ops int) (time.Duration, error) {
	if checked {
		c := slab.NewChecked[int, K]()
		keys := make([]K, live)
		for i := range keys {
			k, err := c.Insert(i)
			if err != nil {
				return 0, err
			}
			keys[i] = k
		}

		start := time.Now()
		for i := range ops {
			j := i % live
			if _, err := c.Remove(keys[j]); err != nil {
				return 0, err
			}
			k, err := c.Insert(i)
			if err != nil {
				return 0, err
			}
			keys[j] = k
		}
		return time.Since(start), nil
	}

	s := slab.New[int, K]()
	keys := make([]K, live)
	for i := range keys {
		keys[i] = s.Insert(i)
	}

	start := time.Now()
	for i := range ops {
		j := i % live
		s.Remove(keys[j])
		keys[j] = s.Insert(i)
	}
	return time.Since(start), nil
}
