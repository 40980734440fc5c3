package session

import (
	"io"
	"sync"
	"time"

	"github.com/fulldump/ddrmem/allocator"
)

// Window is one named device memory window. It serializes every call into
// its allocator.
type Window struct {
	Name      string
	CreatedAt time.Time

	base  uint64
	total uint64

	mutex     sync.Mutex
	allocator allocator.Manager
}

type WindowStats struct {
	Base       uint64 `json:"base"`
	Total      uint64 `json:"total"`
	Available  uint64 `json:"available"`
	MaxFreeRun uint64 `json:"max_free_run"`
	Blocks     int    `json:"blocks"`
}

func newWindow(name string, base, total uint64) (*Window, error) {
	a, err := allocator.New(base, total)
	if err != nil {
		return nil, err
	}
	return newWindowWithManager(name, base, total, a), nil
}

func newWindowWithManager(name string, base, total uint64, m allocator.Manager) *Window {
	return &Window{
		Name:      name,
		CreatedAt: time.Now(),
		base:      base,
		total:     total,
		allocator: m,
	}
}

func (w *Window) Allocate(size uint64, strict bool, tag any) (*allocator.Block, error) {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	b, err := w.allocator.Allocate(size, strict)
	if err != nil {
		return nil, err
	}
	b.Tag = tag

	return b, nil
}

func (w *Window) Free(address uint64) (*allocator.Block, error) {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	b, found := w.allocator.Get(address)
	if !found {
		// Let the allocator report it.
		return nil, w.allocator.Free(address)
	}

	return b, w.allocator.Free(address)
}

func (w *Window) Stats() WindowStats {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	return WindowStats{
		Base:       w.base,
		Total:      w.total,
		Available:  w.allocator.Available(),
		MaxFreeRun: w.allocator.MaxFreeRun(),
		Blocks:     w.allocator.Len(),
	}
}

func (w *Window) Blocks() []*allocator.Block {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	return w.allocator.Blocks()
}

func (w *Window) Dump(out io.Writer) error {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	return w.allocator.Dump(out)
}

// Validate checks the window's block list for corruption.
func (w *Window) Validate() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	return w.allocator.Validate()
}

func (w *Window) Len() int {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	return w.allocator.Len()
}
