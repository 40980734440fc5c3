package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/fulldump/ddrmem/utils"
)

const (
	StatusOpening   = "opening"
	StatusOperating = "operating"
	StatusClosing   = "closing"
)

var (
	ErrWindowNotFound      = errors.New("window not found")
	ErrWindowAlreadyExists = errors.New("window already exists")
	ErrWindowBusy          = errors.New("window has live blocks")
	ErrSessionClosed       = errors.New("session closed")
)

type WindowConfig struct {
	Name  string `json:"name"`
	Base  uint64 `json:"base"`
	Total uint64 `json:"total"`
}

type Config struct {
	Windows []WindowConfig
}

// Session owns the memory windows of one device for the lifetime of the
// process. Nothing survives Stop.
type Session struct {
	config *Config
	status string

	mutex   sync.RWMutex
	windows map[string]*Window

	exit chan struct{}
	once sync.Once
}

func NewSession(config *Config) *Session {
	return &Session{
		config:  config,
		status:  StatusOpening,
		windows: map[string]*Window{},
		exit:    make(chan struct{}),
	}
}

func (s *Session) GetStatus() string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.status
}

func (s *Session) setStatus(status string) {
	s.mutex.Lock()
	s.status = status
	s.mutex.Unlock()
}

func (s *Session) CreateWindow(name string, base, total uint64) (*Window, error) {

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.windows[name]; exists {
		return nil, fmt.Errorf("%w: '%s'", ErrWindowAlreadyExists, name)
	}

	w, err := newWindow(name, base, total)
	if err != nil {
		return nil, err
	}
	s.windows[name] = w

	return w, nil
}

func (s *Session) GetWindow(name string) (*Window, error) {

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	w, exists := s.windows[name]
	if !exists {
		return nil, fmt.Errorf("%w: '%s'", ErrWindowNotFound, name)
	}

	return w, nil
}

// DeleteWindow drops a window. Unless force is set, windows with live blocks
// are kept.
func (s *Session) DeleteWindow(name string, force bool) error {

	s.mutex.Lock()
	defer s.mutex.Unlock()

	w, exists := s.windows[name]
	if !exists {
		return fmt.Errorf("%w: '%s'", ErrWindowNotFound, name)
	}

	if n := w.Len(); n > 0 && !force {
		return fmt.Errorf("%w: '%s' has %d blocks", ErrWindowBusy, name, n)
	}

	delete(s.windows, name)

	return nil
}

// ListWindows returns the windows sorted by name.
func (s *Session) ListWindows() []*Window {

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	result := make([]*Window, 0, len(s.windows))
	for _, name := range utils.GetKeys(s.windows) {
		result = append(result, s.windows[name])
	}

	return result
}

// Load opens the configured windows. A failed or stopped Load leaves the
// session closing with no windows.
func (s *Session) Load() error {

	if s.GetStatus() == StatusClosing {
		return ErrSessionClosed
	}

	fmt.Printf("Opening %d windows...\n", len(s.config.Windows)) // todo: move to logger
	for _, wc := range s.config.Windows {
		_, err := s.CreateWindow(wc.Name, wc.Base, wc.Total)
		if err != nil {
			fmt.Printf("ERROR: open window '%s': %s\n", wc.Name, err.Error())
			s.mutex.Lock()
			s.status = StatusClosing
			s.windows = map[string]*Window{}
			s.mutex.Unlock()
			return err
		}
		fmt.Printf("%s 0x%X +%d bytes\n", wc.Name, wc.Base, wc.Total)
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	// Stop may have run while the windows were being opened.
	if s.status == StatusClosing {
		s.windows = map[string]*Window{}
		return ErrSessionClosed
	}
	s.status = StatusOperating

	return nil
}

func (s *Session) Start() error {

	err := s.Load()
	if err != nil {
		return err
	}

	<-s.exit

	return nil
}

func (s *Session) Stop() error {

	s.once.Do(func() {
		s.setStatus(StatusClosing)

		s.mutex.Lock()
		for name, w := range s.windows {
			fmt.Printf("Releasing '%s' (%d blocks)...\n", name, w.Len())
		}
		s.windows = map[string]*Window{}
		s.mutex.Unlock()

		close(s.exit)
	})

	return nil
}
