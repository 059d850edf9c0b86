package sessionstore

import (
	"context"
	"encoding/json"
	"sync"

	"hotelcart/internal/domain/cart"
	"hotelcart/internal/infra"

	"github.com/google/uuid"
)

// MemoryStore keeps serialized carts in a process-local map. It round-trips
// through JSON like the redis store so tests exercise the same
// serialization path.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[uuid.UUID][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		carts: make(map[uuid.UUID][]byte),
	}
}

func (s *MemoryStore) Load(_ context.Context, sessionID uuid.UUID) (*cart.Cart, error) {
	s.mu.RLock()
	data, ok := s.carts[sessionID]
	s.mu.RUnlock()

	if !ok {
		return cart.New(), nil
	}

	var c cart.Cart
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, infra.WrapRepoErr("failed to unmarshal stored cart", err)
	}
	return &c, nil
}

func (s *MemoryStore) Save(_ context.Context, sessionID uuid.UUID, c *cart.Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return infra.WrapRepoErr("failed to marshal cart", err)
	}

	s.mu.Lock()
	s.carts[sessionID] = data
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, sessionID uuid.UUID) error {
	s.mu.Lock()
	delete(s.carts, sessionID)
	s.mu.Unlock()
	return nil
}
