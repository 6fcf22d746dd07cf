package arenax

// Handle bit layout: stage index in the high 8 bits, in-stage element index
// in the low elementIDBits. Both maxima below exist so the pair always fits
// one 32-bit handle.
const (
	elementIDBits = 24
	elementIDMask = (1 << elementIDBits) - 1

	// MaxStageCapacity is the most elements a single stage can hold, so an
	// in-stage element index fits elementIDBits.
	MaxStageCapacity = 1 << elementIDBits

	// MaxStages caps the stage table, so a stage index fits the bits left
	// above the element index.
	MaxStages = 1 << (32 - elementIDBits)
)

// Handle is an opaque reference to one element in an arena. It packs a stage
// index and an in-stage element index, so it stays meaningful in shared or
// persistent memory where a raw pointer would not. The only way back to an
// address is Resolve, which is process-local.
//
// The zero value is NullHandle and is never issued by Alloc.
type Handle uint32

// NullHandle is the reserved "no element" handle. Alloc returns it to signal
// arena exhaustion.
const NullHandle Handle = 0

// makeHandle packs a (stage, element) pair. No bounds checks: Init clamps
// stageCapacity and maxStages to the system maxima, so every pair the
// allocator produces fits.
func makeHandle(stageID, elementID uint32) Handle {
	return Handle(stageID<<elementIDBits | elementID)
}

func (h Handle) stageID() uint32 { return uint32(h) >> elementIDBits }

func (h Handle) elementID() uint32 { return uint32(h) & elementIDMask }
