package checkout

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"
)

// fakeStore: Store in-memory buat test orchestrator. Begin megang lock
// sampai Commit/Rollback, jadi transaksi ter-serialize seperti row lock
// di Postgres; Rollback tinggal buang working copy.

type fakeCustomer struct {
	Name, Phone, Address, City, Province, District, PostalCode string
}

type fakeState struct {
	customers map[int64]fakeCustomer
	products  map[int64]Product
	carts     []CartLine
	orders    []Order
	shipping  []ShippingDetail
	details   []OrderDetail
	counters  map[string]int
	nextID    int64
}

func (s fakeState) clone() fakeState {
	return fakeState{
		customers: maps.Clone(s.customers),
		products:  maps.Clone(s.products),
		carts:     slices.Clone(s.carts),
		orders:    slices.Clone(s.orders),
		shipping:  slices.Clone(s.shipping),
		details:   slices.Clone(s.details),
		counters:  maps.Clone(s.counters),
		nextID:    s.nextID,
	}
}

type fakeStore struct {
	mu sync.Mutex
	fakeState

	failCustomerUpdate bool
	failShipping       bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{fakeState: fakeState{
		customers: map[int64]fakeCustomer{},
		products:  map[int64]Product{},
		counters:  map[string]int{},
	}}
}

func (f *fakeStore) Begin(ctx context.Context) (Tx, error) {
	f.mu.Lock()
	return &fakeTx{store: f, work: f.fakeState.clone()}, nil
}

type fakeTx struct {
	store *fakeStore
	work  fakeState
	done  bool
}

func (t *fakeTx) UpdateCustomer(ctx context.Context, customerID int64, in CheckoutInput) error {
	if t.store.failCustomerUpdate {
		return errors.New("customer db down")
	}
	c, ok := t.work.customers[customerID]
	if !ok {
		return fmt.Errorf("customer not found: %d", customerID)
	}
	c.Name, c.Phone, c.Address = in.Name, in.Phone, in.Address
	c.City, c.Province, c.District, c.PostalCode = in.CityName, in.ProvinceName, in.DistrictName, in.PostalCode
	t.work.customers[customerID] = c
	return nil
}

func (t *fakeTx) NextOrderSeq(ctx context.Context, day time.Time) (int, error) {
	key := day.Format("060102")
	t.work.counters[key]++
	return t.work.counters[key], nil
}

func (t *fakeTx) InsertOrder(ctx context.Context, o *Order) error {
	t.work.nextID++
	o.ID = t.work.nextID
	t.work.orders = append(t.work.orders, *o)
	return nil
}

func (t *fakeTx) InsertShippingDetail(ctx context.Context, d *ShippingDetail) error {
	if t.store.failShipping {
		return errors.New("shipping_details insert failed")
	}
	t.work.nextID++
	d.ID = t.work.nextID
	t.work.shipping = append(t.work.shipping, *d)
	return nil
}

func (t *fakeTx) CartLines(ctx context.Context, customerID int64) ([]CartLine, error) {
	var out []CartLine
	for _, l := range t.work.carts {
		if l.CustomerID != customerID {
			continue
		}
		p, ok := t.work.products[l.ProductID]
		if ok {
			l.UnitPrice, l.Discount = p.Price, p.Discount
		}
		out = append(out, l)
	}
	return out, nil
}

func (t *fakeTx) DecrementStock(ctx context.Context, productID int64, qty int) error {
	p, ok := t.work.products[productID]
	if !ok {
		return fmt.Errorf("%w: product_id=%d", ErrProductNotFound, productID)
	}
	if p.Stock < qty {
		return fmt.Errorf("%w: product_id=%d need=%d have=%d",
			ErrInsufficientStock, productID, qty, p.Stock)
	}
	p.Stock -= qty
	t.work.products[productID] = p
	return nil
}

func (t *fakeTx) InsertOrderDetail(ctx context.Context, d *OrderDetail) error {
	t.work.nextID++
	d.ID = t.work.nextID
	t.work.details = append(t.work.details, *d)
	return nil
}

func (t *fakeTx) DeleteCartLine(ctx context.Context, cartID int64) error {
	t.work.carts = slices.DeleteFunc(t.work.carts, func(l CartLine) bool {
		return l.ID == cartID
	})
	return nil
}

func (t *fakeTx) Commit(ctx context.Context) error {
	t.store.fakeState = t.work
	t.done = true
	t.store.mu.Unlock()
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	if t.done {
		return nil
	}
	t.done = true
	t.store.mu.Unlock()
	return nil
}
