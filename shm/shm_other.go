//go:build !((darwin && !ios) || linux)

package shm

import (
	"errors"

	"github.com/stagekit/arenax"
)

// ErrUnsupported reports that this platform has no System V shared memory.
var ErrUnsupported = errors.New("shm: System V shared memory is not supported on this platform")

func (p Provider) CreateAndAttach(key int32, size uint32) ([]byte, arenax.ArenaErr) {
	return nil, arenax.ErrStageCreate
}

func (p Provider) Detach(seg []byte) arenax.ArenaErr {
	return arenax.ErrStageDetach
}

func (p Provider) Remove(key int32) error {
	return ErrUnsupported
}
