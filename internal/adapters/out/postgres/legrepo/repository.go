package legrepo

import (
	"context"
	"errors"
	"time"

	"tracking/internal/adapters/out/postgres/pgerr"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/leg"
	"tracking/internal/core/ports"
	"tracking/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const resource = "leg store"

var _ ports.LegRepository = (*GormLegRepository)(nil)

// GormLegRepository implements ports.LegRepository using GORM.
type GormLegRepository struct {
	db *gorm.DB
}

// NewGormLegRepository creates a repository on db, which may be a transaction.
func NewGormLegRepository(db *gorm.DB) *GormLegRepository {
	return &GormLegRepository{db: db}
}

// Add inserts the leg row and its events. A second leg of the same type for
// the same order violates ux_delivery_legs_order_type and is reported as a conflict.
func (r *GormLegRepository) Add(ctx context.Context, l *leg.Leg) error {
	if err := l.Validate(); err != nil {
		return err
	}

	dto := fromDomain(l)
	if err := r.db.WithContext(ctx).Omit("Events").Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err) {
			return errs.NewConflictErrorWithCause("leg", l.ID(), err)
		}
		return pgerr.Translate(err, resource)
	}

	return r.insertEvents(ctx, dto.ID, l.PendingEvents())
}

// Update writes the leg only if the stored version is still the one it was
// loaded with, then appends the pending events.
func (r *GormLegRepository) Update(ctx context.Context, l *leg.Leg) error {
	if err := l.Validate(); err != nil {
		return err
	}

	dto := fromDomain(l)
	result := r.db.WithContext(ctx).
		Model(&LegDTO{}).
		Where("id = ? AND version = ?", dto.ID, l.LoadedVersion()).
		Updates(map[string]any{
			"status":          dto.Status,
			"courier_name":    dto.CourierName,
			"tracking_id":     dto.TrackingID,
			"delivery_method": dto.DeliveryMethod,
			"ready_at":        dto.ReadyAt,
			"dispatched_at":   dto.DispatchedAt,
			"delivered_at":    dto.DeliveredAt,
			"version":         dto.Version,
		})
	if result.Error != nil {
		return pgerr.Translate(result.Error, resource)
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&LegDTO{}).Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return pgerr.Translate(err, resource)
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("legId", l.ID())
		}
		return errs.NewConflictError("leg", l.ID())
	}

	return r.insertEvents(ctx, dto.ID, l.PendingEvents())
}

// Get retrieves a leg with its events.
func (r *GormLegRepository) Get(ctx context.Context, id kernel.UUID) (*leg.Leg, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LegDTO
	if err := r.withEvents(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("legId", id)
		}
		return nil, pgerr.Translate(err, resource)
	}

	return toDomain(dto)
}

func (r *GormLegRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*leg.Leg, error) {
	var dtos []LegDTO
	err := r.withEvents(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("leg_type").
		Find(&dtos).Error
	if err != nil {
		return nil, pgerr.Translate(err, resource)
	}

	return toDomainList(dtos)
}

func (r *GormLegRepository) ListByOrders(ctx context.Context, orderIDs []kernel.UUID, legType leg.Type) ([]*leg.Leg, error) {
	if len(orderIDs) == 0 {
		return []*leg.Leg{}, nil
	}

	ids := make([]uuid.UUID, 0, len(orderIDs))
	for _, id := range orderIDs {
		ids = append(ids, id.Bytes())
	}

	var dtos []LegDTO
	err := r.withEvents(ctx).
		Where("order_id IN ? AND leg_type = ?", ids, legType.String()).
		Order("order_id").
		Find(&dtos).Error
	if err != nil {
		return nil, pgerr.Translate(err, resource)
	}

	return toDomainList(dtos)
}

func (r *GormLegRepository) ListDispatchedBefore(ctx context.Context, cutoff time.Time) ([]*leg.Leg, error) {
	var dtos []LegDTO
	err := r.withEvents(ctx).
		Where("status = ? AND dispatched_at < ?", leg.Dispatched.String(), cutoff.UTC()).
		Order("dispatched_at").
		Find(&dtos).Error
	if err != nil {
		return nil, pgerr.Translate(err, resource)
	}

	return toDomainList(dtos)
}

func (r *GormLegRepository) withEvents(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Events", func(db *gorm.DB) *gorm.DB {
		return db.Order("sequence")
	})
}

func (r *GormLegRepository) insertEvents(ctx context.Context, legID uuid.UUID, events []leg.Event) error {
	if len(events) == 0 {
		return nil
	}

	dtos := eventsFromDomain(legID, events)
	if err := r.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		if pgerr.IsUniqueViolation(err) {
			return errs.NewConflictErrorWithCause("leg events", legID, err)
		}
		return pgerr.Translate(err, resource)
	}
	return nil
}

func toDomainList(dtos []LegDTO) ([]*leg.Leg, error) {
	legs := make([]*leg.Leg, 0, len(dtos))
	for _, dto := range dtos {
		l, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		legs = append(legs, l)
	}
	return legs, nil
}
