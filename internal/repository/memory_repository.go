package repository

import (
	"context"
	"sync"

	"github.com/nikolayk812/commerce-core/internal/domain"
	"github.com/nikolayk812/commerce-core/internal/port"
)

// Memory is an in-memory CartRepository for tests and prototyping. It is
// thread-safe and keeps the implementation deliberately simple.
type Memory struct {
	mu    sync.RWMutex
	items []domain.CartItem
	saved bool
}

var _ port.CartRepository = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Load(_ context.Context) (domain.Cart, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return domain.Cart{Items: cloneItems(m.items)}, nil
}

func (m *Memory) Save(_ context.Context, cart domain.Cart) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items = cloneItems(cart.Items)
	m.saved = true
	return nil
}

func (m *Memory) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items = nil
	m.saved = false
	return nil
}

// Saved reports whether Save has been called since construction or the last
// Clear; test assertions use it to prove an operation did not persist.
func (m *Memory) Saved() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.saved
}

func cloneItems(items []domain.CartItem) []domain.CartItem {
	if items == nil {
		return nil
	}
	cloned := make([]domain.CartItem, len(items))
	copy(cloned, items)
	return cloned
}
