package allocator

// A Block is one allocated region of the managed address range. Only the
// allocator creates blocks; callers get read access plus the Tag slot.
type Block struct {
	address uint64
	size    uint64
	strict  bool

	// Tag is reserved for the caller. The allocator never reads it.
	Tag any
}

// Address is the start offset in the device address space, in bytes.
func (b *Block) Address() uint64 {
	return b.address
}

// Size is the allocated length in bytes, always a multiple of MinAlignment.
func (b *Block) Size() uint64 {
	return b.size
}

// End returns the last address covered by the block (inclusive).
func (b *Block) End() uint64 {
	return b.address + b.size - 1
}

// IsStrictAligned is true when the block was allocated for peer to peer
// transfers.
func (b *Block) IsStrictAligned() bool {
	return b.strict
}

// next is the first address after the block.
func (b *Block) next() uint64 {
	return b.address + b.size
}

func lessByAddress(a, b *Block) bool {
	return a.address < b.address
}
