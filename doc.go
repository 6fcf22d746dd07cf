// Package arenax implements a fixed-element-size memory arena that grows in
// discrete stages and hands out opaque integer handles instead of pointers.
//
// # Overview
//
// An arenax arena is the allocation substrate for a record store: every
// element has the same configured size, storage grows one provider-backed
// stage at a time, and an allocated element is identified by a Handle that
// packs its stage index and in-stage offset into a single 32-bit integer.
// Because a handle carries no address, it stays valid when the backing
// stages live in shared memory attached at different addresses by different
// processes, or are reattached after a restart.
//
// # Basic Usage
//
//	a := new(arenax.Arena)
//	a.Init(shm.Provider{}, keyBase, 64, 1<<16, 8, arenax.BigLock)
//
//	h := a.Alloc()
//	if h == arenax.NullHandle {
//		// arena exhausted - apply backpressure
//	}
//
//	copy(a.Resolve(h), record)
//
//	a.Free(h)
//
// # Handles
//
// Handle 0 is reserved as NullHandle and never issued; Alloc returns it only
// to signal exhaustion. The element at stage 0, offset 0 is skipped to keep
// that guarantee, though it is still resolvable and zero-filled.
//
// # Stages
//
// Each stage is one contiguous segment of stageCapacity * elementSize bytes
// with no header, created on demand through a StageProvider keyed by
// keyBase + stage index. The stage table is append-only: nothing is ever
// unmapped or shrunk by this package. That packed layout is the de facto
// wire format for any process that later reattaches the same segments.
//
// # Free List
//
// Freed elements form a LIFO list threaded through their own storage, so
// reclamation needs no auxiliary allocation. Free performs no validation:
// double-free and use-after-free are caller contract violations with
// undefined downstream effects.
//
// # Thread Safety
//
// With the BigLock flag set, Alloc and Free serialize on an internal mutex;
// without it the caller serializes them externally. Resolve never locks and
// is safe to call concurrently with anything, including stage growth.
//
// # Failure Model
//
// Static misconfiguration at Init (oversized capacity, oversized stage byte
// size, a failed first stage) is unrecoverable and goes through the
// FaultReporter. Running out of stages at Alloc is recoverable and surfaces
// as NullHandle.
package arenax
