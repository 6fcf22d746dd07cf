package arenax

import (
	"sync"
	"sync/atomic"
	"unsafe"
)

// Arena configuration flags.
const (
	// BigLock serializes Alloc and Free with an internal mutex. Without it
	// the caller guarantees external serialization of mutating calls;
	// Resolve is lock-free either way.
	BigLock uint32 = 1 << 0

	// ZeroOnAlloc zeroes an element's storage before Alloc returns its
	// handle. The zeroing happens outside the lock.
	ZeroOnAlloc uint32 = 1 << 1
)

// Limit so stageSize fits in 32 bits.
const maxStageSize = 0xFFFFffff

// Arena is a fixed-element-size allocator that grows in discrete stages,
// each one provider-backed memory segment holding stageCapacity elements
// packed contiguously with no header. Elements are referred to by Handle,
// never by pointer.
//
// The caller allocates the Arena object itself (reserving Sizeof bytes when
// placing it in externally managed memory) and calls Init exactly once.
type Arena struct {
	keyBase       int32
	elementSize   uint32
	stageCapacity uint32
	maxStages     uint32
	flags         uint32

	stageSize uint32

	// Head of the LIFO free list, threaded through the elements' own
	// storage. NullHandle when empty. freeN tracks its length for Stats.
	freeH Handle
	freeN uint32

	// High-water mark of never-yet-allocated space: the next slot to hand
	// out once the free list runs dry.
	atStageID   uint32
	atElementID uint32

	// stages is append-only and never shrunk. addStage stores a base before
	// the release-store on stageCount, so a lock-free reader that observes
	// the new count also observes the base.
	stageCount atomic.Uint32
	stages     [][]byte

	lock sync.Mutex // used only when BigLock is set

	provider StageProvider
	fault    FaultReporter
}

// Sizeof returns the size of the Arena state object itself, excluding stage
// payload, for callers that must reserve backing storage for it.
func Sizeof() uintptr {
	return unsafe.Sizeof(Arena{})
}

// SetFault overrides the fault reporter. Call it before Init; the default
// reporter logs through slog and panics on Crashf.
func (a *Arena) SetFault(f FaultReporter) {
	a.fault = f
}

// Init configures the arena and attaches its first stage. A stageCapacity or
// maxStages of 0 means "use the system maximum"; values beyond the maxima,
// an elementSize too small for the free-list overlay, a stage byte size
// exceeding 32 bits, and a first-stage failure are all unrecoverable and go
// through the fault reporter. Init is one-way and not re-entrant.
func (a *Arena) Init(p StageProvider, keyBase int32, elementSize, stageCapacity, maxStages, flags uint32) {
	if a.fault == nil {
		a.fault = slogFault{}
	}

	if stageCapacity == 0 {
		stageCapacity = MaxStageCapacity
	} else if stageCapacity > MaxStageCapacity {
		a.fault.Crashf("stage capacity %d too large", stageCapacity)
	}

	if maxStages == 0 {
		maxStages = MaxStages
	} else if maxStages > MaxStages {
		a.fault.Crashf("max stages %d too large", maxStages)
	}

	if elementSize < freeElementSize {
		a.fault.Crashf("element size %d too small for free-list overlay", elementSize)
	}

	stageSize := uint64(stageCapacity) * uint64(elementSize)

	if stageSize > maxStageSize {
		a.fault.Crashf("stage size %d too large", stageSize)
	}

	a.provider = p
	a.keyBase = keyBase
	a.elementSize = elementSize
	a.stageCapacity = stageCapacity
	a.maxStages = maxStages
	a.flags = flags

	a.stageSize = uint32(stageSize)

	a.freeH = NullHandle
	a.freeN = 0

	// Skip 0:0 so the null handle is never issued.
	a.atStageID = 0
	a.atElementID = 1

	a.stageCount.Store(0)
	a.stages = make([][]byte, maxStages)

	if err := a.addStage(); err != ErrOK {
		a.fault.Crashf("failed to add first stage: %s", ErrStr(err))
	}

	// Clear the null element - allocation skips it, but it may be read.
	clear(a.Resolve(NullHandle))
}
