package persistence

import (
	"errors"
	"fmt"
	"sync"

	"github.com/quasilyte/gdata/v2"
)

// ErrStoreUnavailable is returned when the backing store cannot be opened, read or written
var ErrStoreUnavailable = errors.New("store unavailable")

// Store is a flat object/property blob store
type Store interface {
	Load(object, property string) ([]byte, bool, error)
	Save(object, property string, data []byte) error
}

// GdataStore persists blobs in the per-user application data directory
type GdataStore struct {
	m *gdata.Manager
}

// OpenGdata opens the data directory namespaced by appName
func OpenGdata(appName string) (*GdataStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrStoreUnavailable, appName, err)
	}
	return &GdataStore{m: m}, nil
}

// Load returns false without error when the property was never saved
func (s *GdataStore) Load(object, property string) ([]byte, bool, error) {
	if !s.m.ObjectPropExists(object, property) {
		return nil, false, nil
	}
	data, err := s.m.LoadObjectProp(object, property)
	if err != nil {
		return nil, false, fmt.Errorf("%w: load %s/%s: %v", ErrStoreUnavailable, object, property, err)
	}
	return data, true, nil
}

func (s *GdataStore) Save(object, property string, data []byte) error {
	if err := s.m.SaveObjectProp(object, property, data); err != nil {
		return fmt.Errorf("%w: save %s/%s: %v", ErrStoreUnavailable, object, property, err)
	}
	return nil
}

// MemoryStore keeps blobs in process memory; used when no data directory is available and in tests
type MemoryStore struct {
	mu   sync.Mutex
	data map[string][]byte
	fail bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

// SetFailing makes every subsequent call return ErrStoreUnavailable
func (s *MemoryStore) SetFailing(fail bool) {
	s.mu.Lock()
	s.fail = fail
	s.mu.Unlock()
}

func (s *MemoryStore) Load(object, property string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return nil, false, ErrStoreUnavailable
	}
	data, ok := s.data[object+"/"+property]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), data...), true, nil
}

func (s *MemoryStore) Save(object, property string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return ErrStoreUnavailable
	}
	s.data[object+"/"+property] = append([]byte(nil), data...)
	return nil
}
