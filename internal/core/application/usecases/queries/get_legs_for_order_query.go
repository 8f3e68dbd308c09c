package queries

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/leg"
	"tracking/internal/pkg/guard"
)

var (
	ErrGetLegsForOrderQueryIsNotConstructed = errors.New(
		"GetLegsForOrderQuery must be created via NewGetLegsForOrderQuery constructor",
	)
)

// GetLegsForOrderQuery lists the legs of one order, optionally of one type.
type GetLegsForOrderQuery struct {
	orderID kernel.UUID
	legType *leg.Type

	guard guard.ConstructorGuard
}

// NewGetLegsForOrderQuery creates the query. legType nil means both types.
func NewGetLegsForOrderQuery(orderID kernel.UUID, legType *leg.Type) (GetLegsForOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetLegsForOrderQuery{}, err
	}
	if legType != nil {
		if err := legType.Validate(); err != nil {
			return GetLegsForOrderQuery{}, err
		}
	}
	return GetLegsForOrderQuery{orderID: orderID, legType: legType, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLegsForOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetLegsForOrderQueryIsNotConstructed)
}

func (q GetLegsForOrderQuery) OrderID() kernel.UUID { return q.orderID }
func (q GetLegsForOrderQuery) LegType() *leg.Type   { return q.legType }
