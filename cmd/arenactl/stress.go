package main

import (
	"fmt"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/stagekit/arenax"
)

var (
	stressWorkers int
	stressOps     int
	stressZero    bool
)

var stressCmd = &cobra.Command{
	Use:   "stress",
	Short: "Hammer an arena with concurrent alloc/free traffic",
	Long: `Runs the configured number of workers, each doing a mixed
allocate/free workload against one shared arena with the big lock enabled.
Reports throughput, how often the arena was exhausted, and the final stats.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := arenax.BigLock
		if stressZero {
			flags |= arenax.ZeroOnAlloc
		}

		a := newArena(flags)

		var exhausted atomic.Int64
		start := time.Now()

		var g errgroup.Group
		for w := 0; w < stressWorkers; w++ {
			seed := int64(w + 1)
			g.Go(func() error {
				rng := rand.New(rand.NewSource(seed))
				live := make([]arenax.Handle, 0, 1024)

				for i := 0; i < stressOps; i++ {
					if len(live) > 0 && rng.Intn(3) == 0 {
						h := live[len(live)-1]
						live = live[:len(live)-1]
						a.Free(h)
						continue
					}

					h := a.Alloc()
					if h == arenax.NullHandle {
						exhausted.Add(1)
						continue
					}
					live = append(live, h)
				}

				for _, h := range live {
					a.Free(h)
				}
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return err
		}

		elapsed := time.Since(start)
		total := stressWorkers * stressOps

		fmt.Printf("%d ops across %d workers in %v (%.0f ops/s)\n",
			total, stressWorkers, elapsed, float64(total)/elapsed.Seconds())
		fmt.Printf("exhausted allocations: %d\n\n", exhausted.Load())
		printStats(a.Stats())

		return nil
	},
}

func init() {
	stressCmd.Flags().IntVar(&stressWorkers, "workers", 8, "concurrent workers")
	stressCmd.Flags().IntVar(&stressOps, "ops", 100000, "operations per worker")
	stressCmd.Flags().BoolVar(&stressZero, "zero", false, "enable zero-on-alloc")

	rootCmd.AddCommand(stressCmd)
}
