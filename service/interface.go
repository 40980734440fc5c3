package service

import (
	"errors"
	"io"
)

var ErrInvalidRequest = errors.New("invalid request")

type Servicer interface { // todo: review naming
	CreateWindow(name string, base, total uint64) (*Window, error)
	GetWindow(name string) (*Window, error)
	ListWindows() ([]*Window, error)
	DeleteWindow(name string, force bool) error

	Allocate(window string, size uint64, strict bool, label string) (*Reservation, error)
	Free(window string, address uint64) (*Reservation, error)
	Blocks(window string) ([]*Reservation, error)
	Dump(window string, w io.Writer) error
}
