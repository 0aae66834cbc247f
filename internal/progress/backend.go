package progress

import (
	"fmt"
	"sync"

	"github.com/quasilyte/gdata/v2"
)

// Storage slot names inside the gdata namespace.
const (
	saveObject   = "saves"
	saveProperty = "player"
)

// Backend abstracts where snapshot bytes live. The store owns the schema;
// backends move opaque bytes.
type Backend interface {
	Exists() bool
	Load() ([]byte, error)
	Save(data []byte) error
}

// GdataBackend persists snapshots through gdata, which places them in the
// platform's per-app data directory.
type GdataBackend struct {
	manager *gdata.Manager
}

// NewGdataBackend opens the app's storage namespace.
func NewGdataBackend(appName string) (*GdataBackend, error) {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("failed to open save storage: %w", err)
	}
	return &GdataBackend{manager: manager}, nil
}

// Exists reports whether a snapshot has ever been written.
func (b *GdataBackend) Exists() bool {
	return b.manager.ObjectPropExists(saveObject, saveProperty)
}

// Load reads the persisted snapshot bytes.
func (b *GdataBackend) Load() ([]byte, error) {
	data, err := b.manager.LoadObjectProp(saveObject, saveProperty)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	return data, nil
}

// Save writes the snapshot bytes.
func (b *GdataBackend) Save(data []byte) error {
	if err := b.manager.SaveObjectProp(saveObject, saveProperty, data); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// MemoryBackend keeps the snapshot in memory. Used by tests and as a
// degraded mode when platform storage cannot be opened.
type MemoryBackend struct {
	mu   sync.Mutex
	data []byte
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

// Exists reports whether Save has been called.
func (b *MemoryBackend) Exists() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.data != nil
}

// Load returns the last saved bytes.
func (b *MemoryBackend) Load() ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.data == nil {
		return nil, fmt.Errorf("no snapshot saved")
	}
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out, nil
}

// Save stores a copy of the bytes.
func (b *MemoryBackend) Save(data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data = make([]byte, len(data))
	copy(b.data, data)
	return nil
}
