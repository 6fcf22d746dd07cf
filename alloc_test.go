package arenax

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestAllocFirstNeverNull(t *testing.T) {
	a, _ := newTestArena(t, 8, 8, 2, 0)

	h := a.Alloc()
	require.NotEqual(t, NullHandle, h)
	assert.Equal(t, makeHandle(0, 1), h)
}

func TestAllocLIFOReuse(t *testing.T) {
	a, _ := newTestArena(t, 16, 16, 1, 0)

	h1 := a.Alloc()
	h2 := a.Alloc()
	h3 := a.Alloc()

	// The most recently freed element comes back first.
	a.Free(h2)
	assert.Equal(t, h2, a.Alloc())

	a.Free(h3)
	a.Free(h1)
	assert.Equal(t, h1, a.Alloc())
	assert.Equal(t, h3, a.Alloc())
}

func TestAllocExhaustion(t *testing.T) {
	const capacity = 8

	a, _ := newTestArena(t, 8, capacity, 1, 0)

	// One slot is reserved for the null handle.
	for i := 0; i < capacity-1; i++ {
		require.NotEqual(t, NullHandle, a.Alloc(), "allocation %d", i)
	}

	// Exhausted: null handle, not a crash, and repeatable.
	assert.Equal(t, NullHandle, a.Alloc())
	assert.Equal(t, NullHandle, a.Alloc())

	// Freeing makes the arena usable again.
	h := makeHandle(0, 3)
	a.Free(h)
	assert.Equal(t, h, a.Alloc())
	assert.Equal(t, NullHandle, a.Alloc())
}

func TestAllocGrowsStages(t *testing.T) {
	a, p := newTestArena(t, 8, 4, 2, 0)
	require.Equal(t, uint32(1), a.StageCount())

	// Fill stage 0: elements 1..3.
	for i := 0; i < 3; i++ {
		require.NotEqual(t, NullHandle, a.Alloc())
	}
	assert.Equal(t, uint32(1), a.StageCount())

	// Next allocation lands at the start of a fresh stage.
	h := a.Alloc()
	assert.Equal(t, makeHandle(1, 0), h)
	assert.Equal(t, uint32(2), a.StageCount())
	assert.Len(t, p.created, 2)
}

func TestStageCapacityOne(t *testing.T) {
	// A one-element stage holds nothing but the reserved null slot, so the
	// very first allocation must already grow to stage 1.
	a, _ := newTestArena(t, 8, 1, 3, 0)

	h := a.Alloc()
	assert.Equal(t, makeHandle(1, 0), h)
	assert.Equal(t, uint32(2), a.StageCount())

	assert.Equal(t, makeHandle(2, 0), a.Alloc())
	assert.Equal(t, NullHandle, a.Alloc())
}

func TestZeroOnAlloc(t *testing.T) {
	p := &stubProvider{fill: 0xCD}
	a := new(Arena)
	a.Init(p, 0, 32, 8, 2, ZeroOnAlloc)

	zeros := make([]byte, 32)

	// Bump-allocated elements come back clean despite dirty segments.
	h := a.Alloc()
	assert.Equal(t, zeros, a.Resolve(h))

	// So do reused elements, whose bytes held the free-list overlay.
	copy(a.Resolve(h), "scribbled over")
	a.Free(h)
	h2 := a.Alloc()
	require.Equal(t, h, h2)
	assert.Equal(t, zeros, a.Resolve(h2))
}

func TestFreeOverlayWrite(t *testing.T) {
	a, _ := newTestArena(t, 16, 16, 1, 0)

	h1 := a.Alloc()
	h2 := a.Alloc()

	a.Free(h1)
	a.Free(h2)

	// h2 heads the list and links back to h1.
	e := a.overlay(h2)
	assert.Equal(t, uint32(freeMagic), e.magic)
	assert.Equal(t, h1, e.nextH)
	assert.Equal(t, NullHandle, a.overlay(h1).nextH)
}

func TestResolveStableAndDisjoint(t *testing.T) {
	const elementSize = 8

	a, _ := newTestArena(t, elementSize, 4, 4, 0)

	// Allocate across several stages and tag every element.
	handles := make([]Handle, 0, 12)
	for i := 0; i < 12; i++ {
		h := a.Alloc()
		require.NotEqual(t, NullHandle, h)
		a.Resolve(h)[0] = byte(i)
		handles = append(handles, h)
	}

	// Every element still holds its own tag: no two live handles share
	// bytes, and re-resolving returns the same storage.
	for i, h := range handles {
		b := a.Resolve(h)
		assert.Equal(t, byte(i), b[0], "handle %v", h)
		assert.Equal(t, elementSize, len(b))
		assert.Same(t, &b[0], &a.Resolve(h)[0])
	}
}

func TestFreeListDrain(t *testing.T) {
	const n = 10

	a, _ := newTestArena(t, 8, 16, 1, 0)

	handles := make(map[Handle]bool, n)
	for i := 0; i < n; i++ {
		handles[a.Alloc()] = true
	}
	for h := range handles {
		a.Free(h)
	}
	require.Equal(t, uint32(n), a.Stats().FreeListLen)

	// Draining the list returns exactly the freed handles, no growth.
	for i := 0; i < n; i++ {
		h := a.Alloc()
		assert.True(t, handles[h], "unexpected handle %v", h)
		delete(handles, h)
	}
	assert.Empty(t, handles)
	assert.Equal(t, uint32(1), a.StageCount())
}

func TestConcurrentAllocFree(t *testing.T) {
	const (
		workers = 8
		ops     = 2000
	)

	a, _ := newTestArena(t, 16, 1024, 8, BigLock)

	var (
		mu   sync.Mutex
		live = make(map[Handle]int)
	)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			local := make([]Handle, 0, ops)

			for i := 0; i < ops; i++ {
				if i%3 == 2 && len(local) > 0 {
					h := local[len(local)-1]
					local = local[:len(local)-1]

					mu.Lock()
					delete(live, h)
					mu.Unlock()

					a.Free(h)
					continue
				}

				h := a.Alloc()
				if h == NullHandle {
					return fmt.Errorf("worker %d: arena exhausted at op %d", w, i)
				}

				mu.Lock()
				prev, dup := live[h]
				live[h] = w
				mu.Unlock()

				if dup {
					return fmt.Errorf("handle %v live in workers %d and %d", h, prev, w)
				}
				local = append(local, h)
			}

			for _, h := range local {
				mu.Lock()
				delete(live, h)
				mu.Unlock()
				a.Free(h)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	// Everything was freed; the free list is intact and fully drainable.
	s := a.Stats()
	assert.Empty(t, live)
	assert.Equal(t, uint64(0), s.Used)

	drained := make(map[Handle]bool)
	for i := uint32(0); i < s.FreeListLen; i++ {
		h := a.Alloc()
		require.NotEqual(t, NullHandle, h)
		require.False(t, drained[h], "handle %v drained twice", h)
		drained[h] = true
	}
	assert.Equal(t, int(s.FreeListLen), len(drained))
}
