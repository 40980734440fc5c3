package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/fulldump/ddrmem/allocator"
)

// ticket is what the service keeps in Block.Tag.
type ticket struct {
	ID        string
	Label     string
	CreatedAt time.Time
}

func newTicket(label string) *ticket {
	return &ticket{
		ID:        uuid.New().String(),
		Label:     label,
		CreatedAt: time.Now().UTC(),
	}
}

// Reservation is the caller view of an allocated block.
type Reservation struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	Window    string    `json:"window"`
	Address   uint64    `json:"address"`
	End       uint64    `json:"end"`
	Size      uint64    `json:"size"`
	Strict    bool      `json:"strict"`
	CreatedAt time.Time `json:"created_at"`
}

func newReservation(window string, b *allocator.Block) *Reservation {
	r := &Reservation{
		Window:  window,
		Address: b.Address(),
		End:     b.End(),
		Size:    b.Size(),
		Strict:  b.IsStrictAligned(),
	}
	if t, ok := b.Tag.(*ticket); ok {
		r.ID = t.ID
		r.Label = t.Label
		r.CreatedAt = t.CreatedAt
	}
	return r
}
