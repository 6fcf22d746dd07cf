package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stagekit/arenax/shm"
)

var rmStages uint32

var rmCmd = &cobra.Command{
	Use:   "rm",
	Short: "Remove the shared memory segments of an arena",
	Long: `Marks the stage segments for the configured key range for kernel
reclamation. Stages that were never created are reported and skipped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := shm.Provider{}

		removed := 0
		for i := uint32(0); i < rmStages; i++ {
			key := shmKey + int32(i)
			if err := p.Remove(key); err != nil {
				fmt.Printf("stage %d (key %#x): %v\n", i, key, err)
				continue
			}
			removed++
		}

		fmt.Printf("removed %d of %d stage segments\n", removed, rmStages)
		return nil
	},
}

func init() {
	rmCmd.Flags().Uint32Var(&rmStages, "stages", 8, "number of stage keys to remove, starting at --key")

	rootCmd.AddCommand(rmCmd)
}
