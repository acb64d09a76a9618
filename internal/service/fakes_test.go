package service_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/SergeyBogomolovv/perfume-shop/internal/entities"
	"github.com/SergeyBogomolovv/perfume-shop/pkg/trm"

	"github.com/shopspring/decimal"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memStore is an in-memory catalog and order store. Its transaction manager
// serializes units of work and restores a snapshot when the callback fails.
type memStore struct {
	txMu sync.Mutex
	mu   sync.Mutex

	products map[string]entities.Product
	orders   map[string]entities.Order

	lookups      []string
	reserveCalls int
	restoreCalls int
	createErr    error
}

func newMemStore(products ...entities.Product) *memStore {
	s := &memStore{
		products: make(map[string]entities.Product),
		orders:   make(map[string]entities.Order),
	}
	for _, p := range products {
		s.products[p.ID] = p
	}
	return s
}

type memTxKey struct{}

type memTx struct{}

func (memTx) Commit() error   { return nil }
func (memTx) Rollback() error { return nil }

func (s *memStore) BeginTx(ctx context.Context) (context.Context, trm.Transaction, error) {
	return context.WithValue(ctx, memTxKey{}, true), memTx{}, nil
}

func (s *memStore) Do(ctx context.Context, callback func(ctx context.Context) error) error {
	if ctx.Value(memTxKey{}) != nil {
		return callback(ctx)
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	products, orders := s.snapshot()
	if err := callback(context.WithValue(ctx, memTxKey{}, true)); err != nil {
		s.mu.Lock()
		s.products, s.orders = products, orders
		s.mu.Unlock()
		return err
	}
	return nil
}

func (s *memStore) snapshot() (map[string]entities.Product, map[string]entities.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := make(map[string]entities.Product, len(s.products))
	for k, v := range s.products {
		products[k] = v
	}
	orders := make(map[string]entities.Order, len(s.orders))
	for k, v := range s.orders {
		orders[k] = cloneOrder(v)
	}
	return products, orders
}

func (s *memStore) FindProduct(_ context.Context, id string) (entities.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lookups = append(s.lookups, id)
	p, ok := s.products[id]
	if !ok {
		return entities.Product{}, entities.ErrProductNotFound
	}
	return p, nil
}

func (s *memStore) ReserveStock(_ context.Context, id string, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reserveCalls++
	p, ok := s.products[id]
	if !ok {
		return entities.ErrProductNotFound
	}
	if p.Stock < qty {
		return entities.ErrInsufficientStock
	}
	p.Stock -= qty
	s.products[id] = p
	return nil
}

func (s *memStore) RestoreStock(_ context.Context, id string, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.restoreCalls++
	p, ok := s.products[id]
	if !ok {
		return entities.ErrProductNotFound
	}
	p.Stock += qty
	s.products[id] = p
	return nil
}

func (s *memStore) CreateOrder(_ context.Context, o entities.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.createErr != nil {
		return s.createErr
	}
	if _, ok := s.orders[o.ID]; ok {
		return fmt.Errorf("duplicate order %s", o.ID)
	}
	s.orders[o.ID] = cloneOrder(o)
	return nil
}

func (s *memStore) UpdateOrder(_ context.Context, o entities.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[o.ID]; !ok {
		return entities.ErrOrderNotFound
	}
	s.orders[o.ID] = cloneOrder(o)
	return nil
}

func (s *memStore) GetOrderByID(_ context.Context, id string) (entities.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return cloneOrder(o), nil
}

func (s *memStore) GetOrderByReference(_ context.Context, ref string) (entities.Order, error) {
	return s.findOrder(func(o entities.Order) bool { return o.Provider.ThirdPartyReference == ref })
}

func (s *memStore) GetOrderByTrackingID(_ context.Context, trackingID string) (entities.Order, error) {
	return s.findOrder(func(o entities.Order) bool { return o.TrackingID == trackingID })
}

func (s *memStore) findOrder(match func(entities.Order) bool) (entities.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.orders {
		if match(o) {
			return cloneOrder(o), nil
		}
	}
	return entities.Order{}, entities.ErrOrderNotFound
}

func (s *memStore) stock(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products[id].Stock
}

func (s *memStore) orderCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}

func (s *memStore) order(id string) entities.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneOrder(s.orders[id])
}

func cloneOrder(o entities.Order) entities.Order {
	o.Items = append([]entities.LineItem(nil), o.Items...)
	return o
}

type fakeGateway struct {
	mu       sync.Mutex
	requests []entities.PaymentRequest
	ack      entities.PaymentAck
	err      error
	// block until the context is done, to exercise the provider timeout
	hang bool
}

func (g *fakeGateway) Initiate(ctx context.Context, req entities.PaymentRequest) (entities.PaymentAck, error) {
	g.mu.Lock()
	g.requests = append(g.requests, req)
	g.mu.Unlock()

	if g.hang {
		<-ctx.Done()
		return entities.PaymentAck{}, ctx.Err()
	}
	if g.err != nil {
		return entities.PaymentAck{}, g.err
	}
	return g.ack, nil
}

type sentMessage struct {
	To   string
	Text string
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []sentMessage
	err  error
}

func (n *fakeNotifier) Send(_ context.Context, to, text string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, sentMessage{To: to, Text: text})
	return nil
}

func (n *fakeNotifier) messages() []sentMessage {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]sentMessage(nil), n.sent...)
}

type seqIDs struct {
	mu sync.Mutex
	n  int
}

func (g *seqIDs) next() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return g.n
}

func (g *seqIDs) OrderID() string    { return fmt.Sprintf("order-%d", g.next()) }
func (g *seqIDs) TrackingID() string { return fmt.Sprintf("PF-%d", g.next()) }
func (g *seqIDs) Reference() string  { return fmt.Sprintf("PERF%d", g.next()) }

type mapCache struct {
	mu      sync.Mutex
	data    map[string][]byte
	deleted []string
}

func newMapCache() *mapCache {
	return &mapCache{data: make(map[string][]byte)}
}

func (c *mapCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	return v, ok
}

func (c *mapCache) Set(key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
}

func (c *mapCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	c.deleted = append(c.deleted, key)
}

var errNotifyDown = errors.New("messaging gateway unavailable")

func price(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}
