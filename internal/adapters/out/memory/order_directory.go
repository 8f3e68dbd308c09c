package memory

import (
	"context"
	"sync"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/core/ports"
	"tracking/internal/pkg/errs"
)

var _ ports.OrderDirectory = (*OrderDirectory)(nil)

// OrderDirectory is a fixed order pool, filled by whoever plays the
// order-management service.
type OrderDirectory struct {
	mu     sync.RWMutex
	orders map[kernel.UUID]*order.Order
	ids    []kernel.UUID
}

func NewOrderDirectory(orders ...*order.Order) *OrderDirectory {
	d := &OrderDirectory{orders: make(map[kernel.UUID]*order.Order)}
	for _, o := range orders {
		d.Put(o)
	}
	return d
}

// Put adds or replaces an order.
func (d *OrderDirectory) Put(o *order.Order) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.orders[o.ID()]; !ok {
		d.ids = append(d.ids, o.ID())
	}
	d.orders[o.ID()] = o
}

func (d *OrderDirectory) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	o, ok := d.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderId", id)
	}
	return o, nil
}

func (d *OrderDirectory) All(_ context.Context) ([]*order.Order, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	all := make([]*order.Order, 0, len(d.ids))
	for _, id := range d.ids {
		all = append(all, d.orders[id])
	}
	return all, nil
}
