//go:build (darwin && !ios) || linux

package shm

import (
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/stagekit/arenax"
)

// CreateAndAttach creates (or opens, if it already exists) the segment for
// key at exactly size bytes and maps it into this process.
func (p Provider) CreateAndAttach(key int32, size uint32) ([]byte, arenax.ArenaErr) {
	id, err := unix.SysvShmGet(int(key), int(size), p.mode()|unix.IPC_CREAT)
	if err != nil {
		return nil, arenax.ErrStageCreate
	}

	seg, err := unix.SysvShmAttach(id, 0, 0)
	if err != nil {
		return nil, arenax.ErrStageAttach
	}

	return seg, arenax.ErrOK
}

// Detach unmaps a segment previously returned by CreateAndAttach. The
// segment itself survives until Remove. Not used by the arena core; it
// exists for segment lifecycle management around it.
func (p Provider) Detach(seg []byte) arenax.ArenaErr {
	if err := unix.SysvShmDetach(seg); err != nil {
		return arenax.ErrStageDetach
	}

	return arenax.ErrOK
}

// Remove marks the segment identified by key for destruction. The kernel
// reclaims it once the last attachment goes away.
func (p Provider) Remove(key int32) error {
	id, err := unix.SysvShmGet(int(key), 0, 0)
	if err != nil {
		return fmt.Errorf("shm: lookup key %#x: %w", key, err)
	}

	if _, err := unix.SysvShmCtl(id, unix.IPC_RMID, nil); err != nil {
		return fmt.Errorf("shm: remove key %#x: %w", key, err)
	}

	return nil
}
