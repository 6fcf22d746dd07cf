package arenax

// StageProvider creates and attaches one backing memory segment per stage.
// Implementations derive segment identity from the key alone, so a process
// attaching with the same key later sees the same bytes where the provider
// supports that (shared or persistent memory).
type StageProvider interface {
	// CreateAndAttach returns a writable segment of exactly size bytes,
	// ErrStageCreate if the segment cannot be created, or ErrStageAttach if
	// it was created but could not be mapped.
	CreateAndAttach(key int32, size uint32) ([]byte, ArenaErr)
}

// HeapProvider backs stages with ordinary process-heap slices. Stages are
// neither shared nor persistent; it exists for tests and for hosts without
// System V IPC.
type HeapProvider struct{}

func (HeapProvider) CreateAndAttach(key int32, size uint32) ([]byte, ArenaErr) {
	return make([]byte, size), ErrOK
}
