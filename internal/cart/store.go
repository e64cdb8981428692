package cart

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/nikolayk812/commerce-core/internal/domain"
	"github.com/nikolayk812/commerce-core/internal/port"
	"go.uber.org/zap"
)

// Store owns the cart state: all mutations pass through it. Every mutation
// persists the new state through the injected repository; persistence failures
// are logged and swallowed so the in-memory cart stays authoritative.
type Store struct {
	mu     sync.Mutex
	items  []domain.CartItem
	isOpen bool

	repo   port.CartRepository
	events port.EventSink
	logger *zap.Logger
}

type Option func(*Store)

// WithEventSink subscribes a sink to the mutation events the store emits.
func WithEventSink(sink port.EventSink) Option {
	return func(s *Store) {
		s.events = sink
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// NewStore loads prior cart state through the repository. A load failure
// degrades to an empty cart rather than failing construction.
func NewStore(ctx context.Context, repo port.CartRepository, opts ...Option) (*Store, error) {
	if repo == nil {
		return nil, fmt.Errorf("repo is nil")
	}

	s := &Store{
		repo:   repo,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	loaded, err := repo.Load(ctx)
	if err != nil {
		s.logger.Warn("load cart state, starting empty", zap.Error(err))
	}
	s.items = loaded.Items

	return s, nil
}

// AddItem merges the item into an existing line with the same
// (productId, variantId, size) key, or appends a new line. The item's quantity
// is taken as given; quantity validation belongs to UpdateQuantity.
func (s *Store) AddItem(ctx context.Context, item domain.CartItem) {
	s.mu.Lock()

	merged := false
	key := item.Key()
	for i := range s.items {
		if s.items[i].Key() == key {
			s.items[i].Quantity += item.Quantity
			item = s.items[i]
			merged = true
			break
		}
	}
	if !merged {
		if item.ID == uuid.Nil {
			item.ID = uuid.New()
		}
		s.items = append(s.items, item)
	}

	snapshot := s.cartLocked()
	s.mu.Unlock()

	s.persist(ctx, snapshot)
	s.publish(domain.ItemAdded{Item: item, Merged: merged})
}

// RemoveItem deletes the line with the given id. Unknown ids are a no-op:
// nothing is persisted and no event is emitted.
func (s *Store) RemoveItem(ctx context.Context, id uuid.UUID) {
	s.mu.Lock()

	idx := -1
	for i := range s.items {
		if s.items[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return
	}

	removed := s.items[idx]
	s.items = append(s.items[:idx], s.items[idx+1:]...)

	snapshot := s.cartLocked()
	s.mu.Unlock()

	s.persist(ctx, snapshot)
	s.publish(domain.ItemRemoved{Item: removed})
}

// UpdateQuantity sets the line's quantity. A non-positive quantity removes the
// line entirely, keeping the quantity >= 1 invariant. Unknown ids are a no-op.
func (s *Store) UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(ctx, id)
		return
	}

	s.mu.Lock()

	var updated domain.CartItem
	found := false
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = quantity
			updated = s.items[i]
			found = true
			break
		}
	}
	if !found {
		s.mu.Unlock()
		return
	}

	snapshot := s.cartLocked()
	s.mu.Unlock()

	s.persist(ctx, snapshot)
	s.publish(domain.ItemAdded{Item: updated, Merged: true})
}

// Clear empties the cart and emits CartCleared unconditionally, even when the
// cart was already empty.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()

	s.persist(ctx, domain.Cart{})
	s.publish(domain.CartCleared{})
}

// Open and Close toggle the transient visibility flag; it is never persisted.

func (s *Store) Open() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isOpen = true
}

func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isOpen = false
}

func (s *Store) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isOpen
}

// Items returns a copy of the cart lines in insertion order.
func (s *Store) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartLocked().Items
}

// Subtotal sums effective price times quantity over all lines.
func (s *Store) Subtotal() domain.Money {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.Cart{Items: s.items}.Subtotal()
}

func (s *Store) cartLocked() domain.Cart {
	items := make([]domain.CartItem, len(s.items))
	copy(items, s.items)
	return domain.Cart{Items: items}
}

func (s *Store) persist(ctx context.Context, cart domain.Cart) {
	if err := s.repo.Save(ctx, cart); err != nil {
		s.logger.Warn("save cart state", zap.Error(err))
	}
}

func (s *Store) publish(event domain.Event) {
	if s.events != nil {
		s.events.Publish(event)
	}
}
