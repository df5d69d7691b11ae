package cart

import (
	"context"
	"sync"
)

const keyPrefix = "cart-storage:"

// Key is the fixed storage key for one client's cart document.
func Key(clientID string) string {
	return keyPrefix + clientID
}

// Store persists one serialized cart document per client. Load returns an
// empty cart when nothing is stored yet.
type Store interface {
	Load(ctx context.Context, clientID string) (*Cart, error)
	Save(ctx context.Context, clientID string, c *Cart) error
}

// MemoryStore keeps documents in process memory. Used by tests and as the
// dev fallback when no Redis address is configured.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string][]byte)}
}

func (s *MemoryStore) Load(ctx context.Context, clientID string) (*Cart, error) {
	s.mu.RLock()
	raw, ok := s.docs[Key(clientID)]
	s.mu.RUnlock()
	if !ok {
		return New(), nil
	}
	return Decode(raw)
}

func (s *MemoryStore) Save(ctx context.Context, clientID string, c *Cart) error {
	raw, err := c.Encode()
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.docs[Key(clientID)] = raw
	s.mu.Unlock()
	return nil
}

// Seed stores a raw document directly, bypassing Encode. Lets tests plant
// outdated schema versions the way an old client would have left them.
func (s *MemoryStore) Seed(clientID string, raw []byte) {
	s.mu.Lock()
	s.docs[Key(clientID)] = raw
	s.mu.Unlock()
}
