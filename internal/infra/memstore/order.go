package memstore

import (
	"context"
	"log/slog"
	"sync"

	"bakery-orders/internal/domain/order"
	"bakery-orders/internal/infra"
	"bakery-orders/internal/pkg/clock"
	"bakery-orders/internal/usecase/shared"

	"github.com/google/uuid"
)

// OrderStore is a process-local document collection used when no database is configured.
type OrderStore struct {
	mu     sync.RWMutex
	docs   map[string]order.Order
	seq    []string
	clock  clock.Clock
	logger *slog.Logger
}

var _ shared.OrderDocumentStore = (*OrderStore)(nil)

func NewOrderStore(clk clock.Clock, logger *slog.Logger) *OrderStore {
	return &OrderStore{
		docs:   make(map[string]order.Order),
		clock:  clk,
		logger: logger,
	}
}

func (s *OrderStore) Insert(ctx context.Context, o order.Order) (order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindTimeout, "insert order", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	now := s.clock.Now()
	stored := order.WithIdentity(o, id, now, now)
	s.docs[id] = stored
	s.seq = append(s.seq, id)
	return stored, nil
}

func (s *OrderStore) Update(ctx context.Context, id string, p order.Patch) (order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindTimeout, "update order", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.docs[id]
	if !ok {
		return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "order "+id, nil)
	}
	merged, err := p.Apply(existing)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindInvalidData, "merge order "+id, err)
	}
	stored := order.Touch(merged, s.clock.Now())
	s.docs[id] = stored
	return stored, nil
}

func (s *OrderStore) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindTimeout, "delete order", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[id]; !ok {
		return infra.WrapRepoErr(s.logger, infra.KindNotFound, "order "+id, nil)
	}
	delete(s.docs, id)
	for i, seqID := range s.seq {
		if seqID == id {
			s.seq = append(s.seq[:i], s.seq[i+1:]...)
			break
		}
	}
	return nil
}

// List returns documents in insertion order.
func (s *OrderStore) List(ctx context.Context) ([]order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindTimeout, "list orders", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]order.Order, 0, len(s.seq))
	for _, id := range s.seq {
		out = append(out, s.docs[id])
	}
	return out, nil
}

func (s *OrderStore) DeleteAll(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindTimeout, "delete all orders", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.docs = make(map[string]order.Order)
	s.seq = nil
	return nil
}

func (s *OrderStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}
