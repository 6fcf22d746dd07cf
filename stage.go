package arenax

// addStage attaches one more provider segment to the stage table. Only Init
// and Alloc's growth path call it; both hold the big lock or are otherwise
// exclusive, so at most one grower runs at a time.
func (a *Arena) addStage() ArenaErr {
	n := a.stageCount.Load()

	if n >= a.maxStages {
		return ErrBadParam
	}

	base, err := a.provider.CreateAndAttach(a.keyBase+int32(n), a.stageSize)
	if err != ErrOK {
		return err
	}

	// Store the base before the count, so a lock-free reader that sees the
	// incremented count also sees the base.
	a.stages[n] = base
	a.stageCount.Store(n + 1)

	return ErrOK
}
