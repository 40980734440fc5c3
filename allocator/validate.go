package allocator

import "fmt"

// Validate walks the live set and checks bounds, alignment and overlap. It
// also verifies the cached stats when they are clean.
func (a *Allocator) Validate() error {

	var err error
	var used uint64
	var prev *Block

	a.blocks.Ascend(func(b *Block) bool {
		switch {
		case b.size == 0 || b.size%MinAlignment != 0:
			err = fmt.Errorf("%w: block 0x%X has size %d", ErrCorrupted, b.address, b.size)
		case b.address%MinAlignment != 0:
			err = fmt.Errorf("%w: block 0x%X is not %d-byte aligned", ErrCorrupted, b.address, MinAlignment)
		case b.strict && b.address != a.base && b.address%StrictAlignment != 0:
			err = fmt.Errorf("%w: strict block 0x%X is not window aligned", ErrCorrupted, b.address)
		case b.address < a.base || !fits(b.address, b.size, a.limit()):
			err = fmt.Errorf("%w: block 0x%X+%d is out of range", ErrCorrupted, b.address, b.size)
		case prev != nil && prev.next() > b.address:
			err = fmt.Errorf("%w: block 0x%X overlaps 0x%X", ErrCorrupted, prev.address, b.address)
		}
		if err != nil {
			return false
		}
		used += b.size
		prev = b
		return true
	})
	if err != nil {
		return err
	}

	if !a.statsDirty && a.available+used != a.total {
		return fmt.Errorf("%w: %d available + %d used != %d", ErrCorrupted, a.available, used, a.total)
	}

	return nil
}
