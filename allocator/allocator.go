// Package allocator hands out non-overlapping regions of a device memory
// window. Placement is first fit in ascending address order; free space is
// never stored, it is whatever lies between live blocks.
package allocator

import (
	"fmt"
	"log"
	"os"

	"github.com/google/btree"
)

const (
	// MinAlignment applies to every block start and size.
	MinAlignment uint64 = 8

	// StrictAlignment is the DRAM window granularity for peer to peer
	// transfers (32 MiB).
	StrictAlignment uint64 = 0x02000000
)

var logger = log.New(os.Stderr, "allocator: ", log.LstdFlags)

// SetLogger replaces the logger used for configuration warnings.
func SetLogger(l *log.Logger) {
	logger = l
}

// Allocator is not safe for concurrent use. Callers must serialize access.
type Allocator struct {
	base  uint64
	total uint64

	blocks *btree.BTreeG[*Block]

	statsDirty bool
	available  uint64
	maxFreeRun uint64
}

func New(base, total uint64) (*Allocator, error) {

	if base%MinAlignment != 0 {
		return nil, fmt.Errorf("%w: base address 0x%X must be %d-byte aligned", ErrConfiguration, base, MinAlignment)
	}

	if base+total < base {
		return nil, fmt.Errorf("%w: range 0x%X+0x%X overflows the address space", ErrConfiguration, base, total)
	}

	if base%StrictAlignment != 0 {
		// The leading gap is never re-aligned, so the first strict block
		// lands on base as is.
		logger.Printf("WARNING: base address 0x%X is not aligned to 0x%X, strict blocks placed at base will not be window aligned", base, StrictAlignment)
	}

	return &Allocator{
		base:       base,
		total:      total,
		blocks:     btree.NewG(32, lessByAddress),
		available:  total,
		maxFreeRun: total,
	}, nil
}

func (a *Allocator) Base() uint64 {
	return a.base
}

func (a *Allocator) Total() uint64 {
	return a.total
}

// BaseStrictAligned reports whether blocks placed at base satisfy
// StrictAlignment.
func (a *Allocator) BaseStrictAligned() bool {
	return a.base%StrictAlignment == 0
}

func (a *Allocator) Len() int {
	return a.blocks.Len()
}

// Allocate reserves size bytes (rounded up to MinAlignment). With strict set,
// blocks placed after another block start on a StrictAlignment boundary.
func (a *Allocator) Allocate(size uint64, strict bool) (*Block, error) {

	if size == 0 {
		return nil, fmt.Errorf("%w: size must be greater than zero", ErrInvalidArgument)
	}

	rounded, ok := alignUp(size, MinAlignment)
	if !ok || rounded > a.total {
		return nil, fmt.Errorf("%w: %d bytes requested, window is %d bytes", ErrOutOfSpace, size, a.total)
	}

	address, found := a.findGap(rounded, strict)
	if !found {
		return nil, fmt.Errorf("%w: no gap for %d bytes (strict=%t)", ErrOutOfSpace, rounded, strict)
	}

	block := &Block{
		address: address,
		size:    rounded,
		strict:  strict,
	}
	a.blocks.ReplaceOrInsert(block)
	a.statsDirty = true

	return block, nil
}

// Free releases the block that starts exactly at address.
func (a *Allocator) Free(address uint64) error {

	_, removed := a.blocks.Delete(&Block{address: address})
	if !removed {
		return fmt.Errorf("%w: 0x%X", ErrNotFound, address)
	}
	a.statsDirty = true

	return nil
}

func (a *Allocator) Get(address uint64) (*Block, bool) {
	return a.blocks.Get(&Block{address: address})
}

// Blocks returns the live blocks in ascending address order.
func (a *Allocator) Blocks() []*Block {
	result := make([]*Block, 0, a.blocks.Len())
	a.blocks.Ascend(func(b *Block) bool {
		result = append(result, b)
		return true
	})
	return result
}

func (a *Allocator) limit() uint64 {
	return a.base + a.total
}

func (a *Allocator) findGap(size uint64, strict bool) (uint64, bool) {

	// Leading gap: placed at base without strict re-alignment.
	first, exists := a.blocks.Min()
	if !exists {
		return a.base, fits(a.base, size, a.limit())
	}
	if fits(a.base, size, first.address) {
		return a.base, true
	}

	var (
		address uint64
		found   bool
		prev    *Block
	)
	a.blocks.Ascend(func(b *Block) bool {
		if prev != nil {
			start, ok := candidateAfter(prev, strict)
			if ok && fits(start, size, b.address) {
				address, found = start, true
				return false
			}
		}
		prev = b
		return true
	})
	if found {
		return address, true
	}

	// Trailing gap after the last block.
	start, ok := candidateAfter(prev, strict)
	if ok && fits(start, size, a.limit()) {
		return start, true
	}

	return 0, false
}

func candidateAfter(prev *Block, strict bool) (uint64, bool) {
	start := prev.next()
	if !strict {
		return start, true
	}
	return alignUp(start, StrictAlignment)
}

// fits reports whether [start, start+size) ends at or before limit.
func fits(start, size, limit uint64) bool {
	return start <= limit && size <= limit-start
}

// alignUp rounds x up to a multiple of alignment. ok is false on overflow.
func alignUp(x, alignment uint64) (uint64, bool) {
	remainder := x % alignment
	if remainder == 0 {
		return x, true
	}
	aligned := x + (alignment - remainder)
	return aligned, aligned > x
}
