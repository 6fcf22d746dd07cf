// Package shm backs arena stages with System V shared memory segments, so
// stages outlive the process that created them and can be attached by more
// than one process at once. Segment identity is the System V IPC key the
// arena derives from its key base.
package shm

// Provider implements arenax.StageProvider over System V shared memory.
// The zero value creates segments with mode 0600.
type Provider struct {
	// Mode is the permission bits for newly created segments. 0 means 0600.
	Mode uint32
}

const defaultMode = 0o600

func (p Provider) mode() int {
	if p.Mode == 0 {
		return defaultMode
	}
	return int(p.Mode)
}
