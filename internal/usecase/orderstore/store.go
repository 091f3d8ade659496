package orderstore

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"bakery-orders/internal/domain/order"
	"bakery-orders/internal/pkg/clock"
	"bakery-orders/internal/pkg/errs"
	"bakery-orders/internal/usecase/shared"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

const DefaultTimeout = 5 * time.Second

// Store owns the in-memory mirror of the order collection.
// Mutations persist first and are reflected in memory only on success.
type Store struct {
	docs     shared.OrderDocumentStore
	notifier shared.ChangeNotifier
	clock    clock.Clock
	logger   *slog.Logger
	timeout  time.Duration
	origin   string

	// writeMu serializes persist-then-reflect sequences
	writeMu sync.Mutex

	mu       sync.RWMutex
	orders   []order.Order
	revision uint64
	loadedAt time.Time

	loads singleflight.Group
}

type Option func(*Store)

func WithTimeout(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.timeout = d
		}
	}
}

func WithNotifier(n shared.ChangeNotifier) Option {
	return func(s *Store) {
		if n != nil {
			s.notifier = n
		}
	}
}

func New(docs shared.OrderDocumentStore, clk clock.Clock, logger *slog.Logger, opts ...Option) *Store {
	s := &Store{
		docs:     docs,
		notifier: noopNotifier{},
		clock:    clk,
		logger:   logger,
		timeout:  DefaultTimeout,
		origin:   uuid.NewString(),
		orders:   []order.Order{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Origin identifies this store in published change events.
func (s *Store) Origin() string {
	return s.origin
}

// Load replaces the mirror with the full persisted collection.
// Concurrent calls share one round trip.
func (s *Store) Load(ctx context.Context) error {
	_, err, _ := s.loads.Do("load", func() (any, error) {
		return nil, s.load(ctx)
	})
	return err
}

func (s *Store) load(ctx context.Context) error {
	// a write landing between List and the swap would vanish from the mirror
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	orders, err := s.docs.List(ctx)
	if err != nil {
		return persistenceErr(err, "list orders")
	}
	orders = dedupe(orders)

	s.mu.Lock()
	s.orders = orders
	s.revision++
	s.loadedAt = s.clock.Now()
	rev := s.revision
	s.mu.Unlock()

	s.logger.Info("Orders loaded", slog.Int("count", len(orders)), slog.Uint64("revision", rev))
	return nil
}

func (s *Store) Add(ctx context.Context, draft order.Draft) (order.Order, error) {
	o, err := draft.Build()
	if err != nil {
		return nil, err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	created, err := s.insert(ctx, o)
	if err != nil {
		return nil, err
	}

	rev := s.reflect(func(orders []order.Order) []order.Order {
		return append(orders, created)
	})
	s.publish(ctx, shared.OpAdded, created.ID(), rev)
	return created, nil
}

// Import adds drafts in sequence. Orders inserted before a failure stay in the store.
func (s *Store) Import(ctx context.Context, drafts []order.Draft) ([]order.Order, error) {
	built := make([]order.Order, 0, len(drafts))
	for _, d := range drafts {
		o, err := d.Build()
		if err != nil {
			return nil, err
		}
		built = append(built, o)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	created := make([]order.Order, 0, len(built))
	var insertErr error
	for _, o := range built {
		c, err := s.insert(ctx, o)
		if err != nil {
			insertErr = err
			break
		}
		created = append(created, c)
	}

	if len(created) > 0 {
		rev := s.reflect(func(orders []order.Order) []order.Order {
			return append(orders, created...)
		})
		s.publish(ctx, shared.OpSeeded, "", rev)
	}
	return created, insertErr
}

func (s *Store) insert(ctx context.Context, o order.Order) (order.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	created, err := s.docs.Insert(ctx, o)
	if err != nil {
		return nil, persistenceErr(err, "insert order")
	}
	if _, exists := s.Get(created.ID()); exists {
		return nil, errs.Mark(errs.Newf("duplicate order id %s", created.ID()), errs.ErrPersistence)
	}
	return created, nil
}

// Update merges p into the order with the given id.
func (s *Store) Update(ctx context.Context, id string, p order.Patch) (order.Order, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	existing, ok := s.Get(id)
	if !ok {
		return nil, errs.ErrOrderNotFound
	}
	// validate against the mirror before touching persistence
	if _, err := p.Apply(existing); err != nil {
		return nil, err
	}
	if p.IsEmpty() {
		return existing, nil
	}

	tctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	updated, err := s.docs.Update(tctx, id, p)
	if err != nil {
		if errs.Is(err, shared.ErrDocumentNotFound) {
			return nil, errs.Wrap(errs.ErrOrderNotFound, "order vanished from persistence")
		}
		return nil, persistenceErr(err, "update order")
	}

	rev := s.reflect(func(orders []order.Order) []order.Order {
		for i, o := range orders {
			if o.ID() == id {
				orders[i] = updated
			}
		}
		return orders
	})
	s.publish(ctx, shared.OpUpdated, id, rev)
	return updated, nil
}

// Delete removes the order with the given id. Deleting an absent id is not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	tctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.docs.Delete(tctx, id); err != nil && !errs.Is(err, shared.ErrDocumentNotFound) {
		return persistenceErr(err, "delete order")
	}

	if _, ok := s.Get(id); !ok {
		return nil
	}
	rev := s.reflect(func(orders []order.Order) []order.Order {
		kept := orders[:0]
		for _, o := range orders {
			if o.ID() != id {
				kept = append(kept, o)
			}
		}
		return kept
	})
	s.publish(ctx, shared.OpDeleted, id, rev)
	return nil
}

// Reset deletes every order.
func (s *Store) Reset(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	tctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.docs.DeleteAll(tctx); err != nil {
		return persistenceErr(err, "delete all orders")
	}

	rev := s.reflect(func([]order.Order) []order.Order {
		return []order.Order{}
	})
	s.publish(ctx, shared.OpReset, "", rev)
	return nil
}

// List returns a snapshot; callers may reorder it freely.
func (s *Store) List() []order.Order {
	orders, _ := s.Snapshot()
	return orders
}

// Snapshot returns the orders together with the revision they belong to.
func (s *Store) Snapshot() ([]order.Order, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]order.Order, len(s.orders))
	copy(out, s.orders)
	return out, s.revision
}

func (s *Store) Get(id string) (order.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return order.FindByID(s.orders, id)
}

// Revision is the last-changed marker. It increases on every reload and effective mutation.
func (s *Store) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}

func (s *Store) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

// reflect applies change to a copy of the mirror and bumps the revision.
func (s *Store) reflect(change func([]order.Order) []order.Order) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]order.Order, len(s.orders), len(s.orders)+1)
	copy(next, s.orders)
	s.orders = change(next)
	s.revision++
	return s.revision
}

func (s *Store) publish(ctx context.Context, op shared.ChangeOp, id string, rev uint64) {
	ev := shared.ChangeEvent{Origin: s.origin, Revision: rev, Op: op, OrderID: id}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()

	if err := s.notifier.Publish(ctx, ev); err != nil {
		s.logger.Warn("Failed to publish order change",
			slog.String("op", string(op)),
			slog.String("order_id", id),
			slog.Any("error", err))
	}
}

func persistenceErr(err error, msg string) error {
	return errs.Mark(errs.Wrap(err, msg), errs.ErrPersistence)
}

// dedupe keeps the first occurrence of each id.
func dedupe(orders []order.Order) []order.Order {
	seen := make(map[string]struct{}, len(orders))
	out := make([]order.Order, 0, len(orders))
	for _, o := range orders {
		if _, dup := seen[o.ID()]; dup {
			continue
		}
		seen[o.ID()] = struct{}{}
		out = append(out, o)
	}
	return out
}

type noopNotifier struct{}

func (noopNotifier) Publish(context.Context, shared.ChangeEvent) error { return nil }
func (noopNotifier) Close() error                                      { return nil }

func (noopNotifier) Subscribe(ctx context.Context) (<-chan shared.ChangeEvent, error) {
	ch := make(chan shared.ChangeEvent)
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch, nil
}
