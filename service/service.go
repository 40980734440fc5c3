package service

import (
	"io"
	"time"

	"github.com/fulldump/ddrmem/session"
)

type Service struct {
	session *session.Session
}

func NewService(s *session.Session) *Service {
	return &Service{
		session: s,
	}
}

type Window struct {
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	session.WindowStats
}

func newWindow(w *session.Window) *Window {
	return &Window{
		Name:        w.Name,
		CreatedAt:   w.CreatedAt,
		WindowStats: w.Stats(),
	}
}

func (s *Service) CreateWindow(name string, base, total uint64) (*Window, error) {

	w, err := s.session.CreateWindow(name, base, total)
	if err != nil {
		return nil, err
	}

	return newWindow(w), nil
}

func (s *Service) GetWindow(name string) (*Window, error) {

	w, err := s.session.GetWindow(name)
	if err != nil {
		return nil, err
	}

	return newWindow(w), nil
}

func (s *Service) ListWindows() ([]*Window, error) {
	result := []*Window{}

	for _, w := range s.session.ListWindows() {
		result = append(result, newWindow(w))
	}

	return result, nil
}

func (s *Service) DeleteWindow(name string, force bool) error {
	return s.session.DeleteWindow(name, force)
}

func (s *Service) Allocate(window string, size uint64, strict bool, label string) (*Reservation, error) {

	w, err := s.session.GetWindow(window)
	if err != nil {
		return nil, err
	}

	b, err := w.Allocate(size, strict, newTicket(label))
	if err != nil {
		return nil, err
	}

	return newReservation(window, b), nil
}

func (s *Service) Free(window string, address uint64) (*Reservation, error) {

	w, err := s.session.GetWindow(window)
	if err != nil {
		return nil, err
	}

	b, err := w.Free(address)
	if err != nil {
		return nil, err
	}

	return newReservation(window, b), nil
}

func (s *Service) Blocks(window string) ([]*Reservation, error) {

	w, err := s.session.GetWindow(window)
	if err != nil {
		return nil, err
	}

	result := []*Reservation{}
	for _, b := range w.Blocks() {
		result = append(result, newReservation(window, b))
	}

	return result, nil
}

func (s *Service) Dump(window string, out io.Writer) error {

	w, err := s.session.GetWindow(window)
	if err != nil {
		return err
	}

	return w.Dump(out)
}
