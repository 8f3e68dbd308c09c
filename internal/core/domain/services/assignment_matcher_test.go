package services_test

import (
	"testing"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/leg"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustOrder(t *testing.T, booking order.BookingType, seller, tailor string) *order.Order {
	t.Helper()

	var fabric *order.FabricDetails
	if seller != "" {
		details, err := order.NewFabricDetails(kernel.MustNewActorID(seller), "cotton")
		require.NoError(t, err)
		fabric = &details
	}

	var tailorID *kernel.ActorID
	if tailor != "" {
		id := kernel.MustNewActorID(tailor)
		tailorID = &id
	}

	o, err := order.RestoreOrder(kernel.NewUUID(), booking, kernel.MustNewActorID("customer-1"), kernel.Address{}, fabric, tailorID)
	require.NoError(t, err)
	return o
}

func TestAssignmentMatcher_OrdersOwnedBy(t *testing.T) {
	seller := kernel.MustNewActorID("seller-1")
	tailor := kernel.MustNewActorID("tailor-1")

	completeOrder := mustOrder(t, order.CompleteBooking, "seller-1", "tailor-1")
	fabricOrder := mustOrder(t, order.FabricBooking, "SELLER-1 ", "")
	otherSellerOrder := mustOrder(t, order.CompleteBooking, "seller-2", "tailor-1")
	tailorOrder := mustOrder(t, order.TailorBooking, "seller-1", "tailor-1")
	noFabricOrder := mustOrder(t, order.CompleteBooking, "", "tailor-2")

	pool := []*order.Order{completeOrder, fabricOrder, otherSellerOrder, tailorOrder, noFabricOrder, nil}
	matcher := services.NewAssignmentMatcher()

	t.Run("should return seller's fabric orders in pool order", func(t *testing.T) {
		owned := matcher.OrdersOwnedBy(seller, leg.Fabric, pool)

		require.Len(t, owned, 2)
		assert.Equal(t, completeOrder.ID(), owned[0].ID())
		assert.Equal(t, fabricOrder.ID(), owned[1].ID())
	})

	t.Run("should never return a tailor booking for FABRIC", func(t *testing.T) {
		for _, actor := range []string{"seller-1", "seller-2", "tailor-1", "customer-1"} {
			for _, o := range matcher.OrdersOwnedBy(kernel.MustNewActorID(actor), leg.Fabric, pool) {
				assert.NotEqual(t, order.TailorBooking, o.BookingType())
			}
		}
	})

	t.Run("should match garment legs by tailor assignment", func(t *testing.T) {
		owned := matcher.OrdersOwnedBy(tailor, leg.Garment, pool)

		require.Len(t, owned, 3)
		assert.Equal(t, completeOrder.ID(), owned[0].ID())
		assert.Equal(t, otherSellerOrder.ID(), owned[1].ID())
		assert.Equal(t, tailorOrder.ID(), owned[2].ID())
	})

	t.Run("mismatch yields an empty result", func(t *testing.T) {
		assert.Empty(t, matcher.OrdersOwnedBy(kernel.MustNewActorID("stranger"), leg.Fabric, pool))
		assert.Empty(t, matcher.OrdersOwnedBy(seller, leg.Garment, pool))
		assert.Empty(t, matcher.OrdersOwnedBy(kernel.ActorID{}, leg.Fabric, pool))
		assert.Empty(t, matcher.OrdersOwnedBy(seller, leg.UnknownType, pool))
		assert.Empty(t, matcher.OrdersOwnedBy(seller, leg.Fabric, nil))
	})
}

func TestAssignmentMatcher_Owns(t *testing.T) {
	matcher := services.NewAssignmentMatcher()
	o := mustOrder(t, order.CompleteBooking, "Seller-9", "tailor-9")

	assert.True(t, matcher.Owns(kernel.MustNewActorID(" seller-9"), leg.Fabric, o))
	assert.False(t, matcher.Owns(kernel.MustNewActorID("seller-9"), leg.Garment, o))
	assert.True(t, matcher.Owns(kernel.MustNewActorID("TAILOR-9"), leg.Garment, o))
	assert.False(t, matcher.Owns(kernel.MustNewActorID("tailor-9"), leg.Garment, &order.Order{}))
}
