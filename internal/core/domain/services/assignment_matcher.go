package services

import (
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/leg"
	"tracking/internal/core/domain/model/order"
)

// AssignmentMatcher decides which orders an actor may act on for a given leg type.
//
// Business rules:
//   - FABRIC legs belong to the seller named in the order's fabric details;
//     tailor bookings never have a fabric owner
//   - GARMENT legs belong to the tailor assigned to the order
//   - a mismatch is not an error: the order is silently left out, so a caller
//     learns nothing about orders owned by somebody else
//
// Identifiers are compared as kernel.ActorID values, which are normalized when
// they are built at the adapter boundary.
//
// Example usage:
//
//	matcher := services.NewAssignmentMatcher()
//	owned := matcher.OrdersOwnedBy(sellerID, leg.Fabric, pool)
type AssignmentMatcher struct{}

// NewAssignmentMatcher creates a new AssignmentMatcher instance.
func NewAssignmentMatcher() AssignmentMatcher {
	return AssignmentMatcher{}
}

// OrdersOwnedBy returns the orders of pool the actor owns for legType, keeping
// the pool order. Invalid actors, unknown leg types and unconstructed orders
// yield no matches.
func (m AssignmentMatcher) OrdersOwnedBy(actor kernel.ActorID, legType leg.Type, pool []*order.Order) []*order.Order {
	owned := make([]*order.Order, 0)
	for _, o := range pool {
		if m.Owns(actor, legType, o) {
			owned = append(owned, o)
		}
	}
	return owned
}

// Owns reports whether actor owns the legType leg of o.
func (m AssignmentMatcher) Owns(actor kernel.ActorID, legType leg.Type, o *order.Order) bool {
	if actor.Validate() != nil || o.Validate() != nil {
		return false
	}

	switch legType {
	case leg.Fabric:
		if o.BookingType() == order.TailorBooking || o.Fabric() == nil {
			return false
		}
		return o.Fabric().SellerID().IsEqual(actor)
	case leg.Garment:
		if o.TailorID() == nil {
			return false
		}
		return o.TailorID().IsEqual(actor)
	case leg.UnknownType:
	}

	return false
}
