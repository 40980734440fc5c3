package session

import (
	"fmt"
	"io"
	"testing"

	"github.com/fulldump/biff"

	"github.com/fulldump/ddrmem/allocator"
)

// recorder stands in for the allocator and only keeps track of calls.
type recorder struct {
	calls []string
	block *allocator.Block
}

func (r *recorder) Allocate(size uint64, strict bool) (*allocator.Block, error) {
	r.calls = append(r.calls, fmt.Sprintf("Allocate(%d,%t)", size, strict))
	return r.block, nil
}

func (r *recorder) Free(address uint64) error {
	r.calls = append(r.calls, fmt.Sprintf("Free(0x%X)", address))
	return nil
}

func (r *recorder) Available() uint64 {
	r.calls = append(r.calls, "Available")
	return 100
}

func (r *recorder) MaxFreeRun() uint64 {
	r.calls = append(r.calls, "MaxFreeRun")
	return 50
}

func (r *recorder) Blocks() []*allocator.Block {
	r.calls = append(r.calls, "Blocks")
	return nil
}

func (r *recorder) Get(address uint64) (*allocator.Block, bool) {
	r.calls = append(r.calls, fmt.Sprintf("Get(0x%X)", address))
	return r.block, true
}

func (r *recorder) Len() int {
	r.calls = append(r.calls, "Len")
	return 3
}

func (r *recorder) Dump(w io.Writer) error {
	r.calls = append(r.calls, "Dump")
	return nil
}

func (r *recorder) Validate() error {
	r.calls = append(r.calls, "Validate")
	return nil
}

func TestWindow_DelegatesToManager(t *testing.T) {

	r := &recorder{block: &allocator.Block{}}
	w := newWindowWithManager("ddr", 0x1000, 0x2000, r)

	b, err := w.Allocate(24, true, "label")
	biff.AssertNil(err)
	biff.AssertEqual(b.Tag, "label")

	_, err = w.Free(0x1000)
	biff.AssertNil(err)

	biff.AssertEqual(w.Stats(), WindowStats{
		Base:       0x1000,
		Total:      0x2000,
		Available:  100,
		MaxFreeRun: 50,
		Blocks:     3,
	})

	biff.AssertNil(w.Dump(io.Discard))

	biff.AssertEqual(r.calls, []string{
		"Allocate(24,true)",
		"Get(0x1000)",
		"Free(0x1000)",
		"Available",
		"MaxFreeRun",
		"Len",
		"Dump",
	})
}
