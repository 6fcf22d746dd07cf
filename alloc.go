package arenax

import "unsafe"

const freeMagic = 0xff2b1f96

// freeElement overlays the head of a reclaimed element's storage while the
// element sits on the free list. The layout is part of each stage's byte
// contract: magic then next handle, at element offset 0. Callers never see
// it because a handle is never resolved while on the free list.
type freeElement struct {
	magic uint32
	nextH Handle
}

const freeElementSize = uint32(unsafe.Sizeof(freeElement{}))

func (a *Arena) overlay(h Handle) *freeElement {
	return (*freeElement)(unsafe.Pointer(&a.Resolve(h)[0]))
}

// Alloc returns a handle to an unused element, reusing the most recently
// freed element first. It returns NullHandle when every stage is full and
// another cannot be added - the one recoverable allocation failure, left to
// the caller as backpressure.
func (a *Arena) Alloc() Handle {
	if a.flags&BigLock != 0 {
		a.lock.Lock()
	}

	var h Handle

	// Check the free list first.
	if a.freeH != NullHandle {
		h = a.freeH
		a.freeH = a.overlay(h).nextH
		a.freeN--
	} else {
		// Otherwise keep end-allocating.
		if a.atElementID >= a.stageCapacity {
			if err := a.addStage(); err != ErrOK {
				if a.flags&BigLock != 0 {
					a.lock.Unlock()
				}

				return NullHandle
			}

			a.atStageID++
			a.atElementID = 0
		}

		h = makeHandle(a.atStageID, a.atElementID)

		a.atElementID++
	}

	if a.flags&BigLock != 0 {
		a.lock.Unlock()
	}

	// Zeroing is not atomic with the slot assignment; only the assignment
	// itself is serialized.
	if a.flags&ZeroOnAlloc != 0 {
		clear(a.Resolve(h))
	}

	return h
}

// Free pushes an element onto the free list. The handle must have come from
// Alloc and must not be freed twice or used afterward; neither is detected,
// and a violation corrupts the list.
func (a *Arena) Free(h Handle) {
	e := a.overlay(h)

	if a.flags&BigLock != 0 {
		a.lock.Lock()
	}

	e.magic = freeMagic
	e.nextH = a.freeH
	a.freeH = h
	a.freeN++

	if a.flags&BigLock != 0 {
		a.lock.Unlock()
	}
}

// Resolve converts a handle to the element's storage: the elementSize bytes
// at its fixed offset within its stage, stable for the life of the process.
// Lock-free and total; the result is undefined for a handle that was never
// allocated.
func (a *Arena) Resolve(h Handle) []byte {
	off := h.elementID() * a.elementSize

	return a.stages[h.stageID()][off : off+a.elementSize]
}
