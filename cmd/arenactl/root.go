package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/stagekit/arenax"
	"github.com/stagekit/arenax/shm"
)

var (
	// Global flags
	shmKey      int32
	elementSize uint32
	stageCap    uint32
	maxStages   uint32
	useHeap     bool
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "arenactl",
	Short: "Inspect and exercise staged shared-memory arenas",
	Long: `arenactl drives an arenax arena backed by System V shared memory
segments. It can report arena configuration and occupancy, hammer an arena
with concurrent allocation traffic, and remove the shared memory segments an
arena left behind.`,
	Version: "0.1.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.Int32Var(&shmKey, "key", 0x41780000, "base System V IPC key; stage i uses key+i")
	pf.Uint32Var(&elementSize, "element-size", 64, "bytes per element")
	pf.Uint32Var(&stageCap, "stage-capacity", 1<<16, "elements per stage")
	pf.Uint32Var(&maxStages, "max-stages", 8, "stage count ceiling")
	pf.BoolVar(&useHeap, "heap", false, "back stages with process heap instead of shared memory")
	pf.BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// provider returns the stage provider selected by the global flags.
func provider() arenax.StageProvider {
	if useHeap {
		return arenax.HeapProvider{}
	}
	return shm.Provider{}
}

// newArena initializes an arena from the global flags.
func newArena(flags uint32) *arenax.Arena {
	a := new(arenax.Arena)
	a.Init(provider(), shmKey, elementSize, stageCap, maxStages, flags)
	return a
}

func printStats(s arenax.ArenaStats) {
	fmt.Printf("stages:         %d / %d\n", s.StageCount, s.MaxStages)
	fmt.Printf("stage capacity: %d elements\n", s.StageCapacity)
	fmt.Printf("element size:   %d bytes\n", s.ElementSize)
	fmt.Printf("capacity:       %d elements\n", s.Capacity)
	fmt.Printf("used:           %d elements\n", s.Used)
	fmt.Printf("free list:      %d elements\n", s.FreeListLen)
	fmt.Printf("big lock:       %v\n", s.Locked)
	fmt.Printf("zero on alloc:  %v\n", s.ZeroOnAlloc)
}
