package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stagekit/arenax"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Initialize an arena and print its configuration and occupancy",
	Long: `Initializes an arena over the configured stage provider and prints
its stats. Against shared memory this attaches (or creates) the first stage
segment for the given key.`,
	Run: func(cmd *cobra.Command, args []string) {
		a := newArena(arenax.BigLock)

		fmt.Printf("arena state size: %d bytes\n", arenax.Sizeof())
		printStats(a.Stats())
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
