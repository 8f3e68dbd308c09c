package orderrepo

import (
	"context"
	"errors"

	"tracking/internal/adapters/out/postgres/pgerr"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/core/ports"
	"tracking/internal/pkg/errs"

	"gorm.io/gorm"
)

const resource = "order directory"

var _ ports.OrderDirectory = (*GormOrderDirectory)(nil)

// GormOrderDirectory implements ports.OrderDirectory over the orders table.
type GormOrderDirectory struct {
	db *gorm.DB
}

func NewGormOrderDirectory(db *gorm.DB) *GormOrderDirectory {
	return &GormOrderDirectory{db: db}
}

// Get returns errs.ObjectNotFoundError for unknown orders.
func (d *GormOrderDirectory) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := d.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id)
		}
		return nil, pgerr.Translate(err, resource)
	}

	return toDomain(dto)
}

// All returns every order ordered by id, which keeps matcher output stable.
func (d *GormOrderDirectory) All(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := d.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, pgerr.Translate(err, resource)
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// Save upserts an order. The service never writes orders on its own; Save
// exists for seeding fixtures and local environments.
func (d *GormOrderDirectory) Save(ctx context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	dto := fromDomain(o)
	return pgerr.Translate(d.db.WithContext(ctx).Save(&dto).Error, resource)
}
