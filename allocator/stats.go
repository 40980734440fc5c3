package allocator

// Available returns the free bytes in the window.
func (a *Allocator) Available() uint64 {
	a.refreshStats()
	return a.available
}

// MaxFreeRun returns the largest contiguous free gap in bytes.
func (a *Allocator) MaxFreeRun() uint64 {
	a.refreshStats()
	return a.maxFreeRun
}

func (a *Allocator) refreshStats() {

	if !a.statsDirty {
		return
	}

	var available, maxFreeRun uint64
	account := func(gap uint64) {
		available += gap
		if gap > maxFreeRun {
			maxFreeRun = gap
		}
	}

	cursor := a.base
	a.blocks.Ascend(func(b *Block) bool {
		account(b.address - cursor)
		cursor = b.next()
		return true
	})
	account(a.limit() - cursor)

	a.available = available
	a.maxFreeRun = maxFreeRun
	a.statsDirty = false
}
