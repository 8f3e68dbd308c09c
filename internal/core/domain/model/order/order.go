package order

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via RestoreOrder constructor")
)

// FabricDetails describes the fabric part of a booking.
type FabricDetails struct {
	sellerID   kernel.ActorID
	fabricName string
}

// NewFabricDetails requires the seller reference; the fabric name is informational.
func NewFabricDetails(sellerID kernel.ActorID, fabricName string) (FabricDetails, error) {
	if err := sellerID.Validate(); err != nil {
		return FabricDetails{}, err
	}
	return FabricDetails{sellerID: sellerID, fabricName: fabricName}, nil
}

func (f FabricDetails) SellerID() kernel.ActorID { return f.sellerID }
func (f FabricDetails) FabricName() string       { return f.fabricName }

// Order is the read-only view of an order owned by the order-management service.
type Order struct {
	id          kernel.UUID
	bookingType BookingType
	customerID  kernel.ActorID
	address     kernel.Address
	fabric      *FabricDetails
	tailorID    *kernel.ActorID

	isConstructed bool
}

// RestoreOrder rebuilds an order from the order service's data.
//
// fabric and tailorID are optional: an order may carry no fabric details (tailor
// bookings) or may not have a tailor assigned yet.
func RestoreOrder(
	id kernel.UUID,
	bookingType BookingType,
	customerID kernel.ActorID,
	address kernel.Address,
	fabric *FabricDetails,
	tailorID *kernel.ActorID,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		bookingType.Validate(),
		customerID.Validate(),
	); err != nil {
		return nil, err
	}

	if tailorID != nil {
		if err := tailorID.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		id:            id,
		bookingType:   bookingType,
		customerID:    customerID,
		address:       address,
		fabric:        fabric,
		tailorID:      tailorID,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was built through RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() kernel.UUID            { return o.id }
func (o *Order) BookingType() BookingType   { return o.bookingType }
func (o *Order) CustomerID() kernel.ActorID { return o.customerID }
func (o *Order) Address() kernel.Address    { return o.address }
func (o *Order) Fabric() *FabricDetails     { return o.fabric }
func (o *Order) TailorID() *kernel.ActorID  { return o.tailorID }
