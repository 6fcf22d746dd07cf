package arenax

// ArenaStats is a point-in-time snapshot of an arena's configuration and
// occupancy.
type ArenaStats struct {
	StageCount    uint32 // stages currently attached
	MaxStages     uint32 // stage count ceiling
	StageCapacity uint32 // elements per stage
	ElementSize   uint32 // bytes per element
	Capacity      uint64 // element slots across all attached stages
	Used          uint64 // live elements: allocated and not on the free list
	FreeListLen   uint32 // reclaimed elements awaiting reuse
	Locked        bool   // BigLock set
	ZeroOnAlloc   bool   // ZeroOnAlloc set
}

// StageCount returns the number of attached stages. Safe to call while other
// goroutines allocate; it pairs with addStage's publication store.
func (a *Arena) StageCount() uint32 {
	return a.stageCount.Load()
}

// ElementSize returns the fixed byte size of every element.
func (a *Arena) ElementSize() uint32 {
	return a.elementSize
}

// StageCapacity returns the number of elements per stage.
func (a *Arena) StageCapacity() uint32 {
	return a.stageCapacity
}

// Stats returns a snapshot of the arena. It takes the big lock when enabled
// so the occupancy counters are mutually consistent.
func (a *Arena) Stats() ArenaStats {
	if a.flags&BigLock != 0 {
		a.lock.Lock()
		defer a.lock.Unlock()
	}

	n := a.stageCount.Load()

	// Elements carved out so far, including the reserved null element.
	highWater := uint64(a.atStageID)*uint64(a.stageCapacity) + uint64(a.atElementID)

	return ArenaStats{
		StageCount:    n,
		MaxStages:     a.maxStages,
		StageCapacity: a.stageCapacity,
		ElementSize:   a.elementSize,
		Capacity:      uint64(n) * uint64(a.stageCapacity),
		Used:          highWater - 1 - uint64(a.freeN),
		FreeListLen:   a.freeN,
		Locked:        a.flags&BigLock != 0,
		ZeroOnAlloc:   a.flags&ZeroOnAlloc != 0,
	}
}
