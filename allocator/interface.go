package allocator

import "io"

// Manager is the contract the transfer layer programs against.
type Manager interface {
	Allocate(size uint64, strict bool) (*Block, error)
	Free(address uint64) error
	Available() uint64
	MaxFreeRun() uint64
	Blocks() []*Block
	Get(address uint64) (*Block, bool)
	Len() int
	Dump(w io.Writer) error
	Validate() error
}

var _ Manager = (*Allocator)(nil)
