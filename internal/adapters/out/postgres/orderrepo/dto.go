// Package orderrepo reads the orders table owned by the order-management
// service and maps its rows to the read-only order.Order view.
package orderrepo

import (
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO mirrors the columns of the orders table this service relies on.
// Fabric details are present only when SellerID is set.
type OrderDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	BookingType string     `gorm:"type:varchar(32);not null"`
	CustomerID  string     `gorm:"type:varchar(255);not null"`
	SellerID    *string    `gorm:"type:varchar(255);index"`
	FabricName  string     `gorm:"type:varchar(255)"`
	TailorID    *string    `gorm:"type:varchar(255);index"`
	Address     AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
}

// TableName overrides GORM's default naming.
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO is the delivery address embedded into the orders row.
type AddressDTO struct {
	Recipient  string `gorm:"type:varchar(255)"`
	Phone      string `gorm:"type:varchar(64)"`
	Line1      string `gorm:"type:varchar(255)"`
	Line2      string `gorm:"type:varchar(255)"`
	City       string `gorm:"type:varchar(128)"`
	State      string `gorm:"type:varchar(128)"`
	PostalCode string `gorm:"type:varchar(32)"`
	Country    string `gorm:"type:varchar(64)"`
}

func fromDomain(o *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:          o.ID().Bytes(),
		BookingType: o.BookingType().String(),
		CustomerID:  o.CustomerID().String(),
		Address:     AddressDTO(o.Address().Fields()),
	}

	if f := o.Fabric(); f != nil {
		sellerID := f.SellerID().String()
		dto.SellerID = &sellerID
		dto.FabricName = f.FabricName()
	}

	if t := o.TailorID(); t != nil {
		tailorID := t.String()
		dto.TailorID = &tailorID
	}

	return dto
}

// toDomain rebuilds the order. The address is restored as stored, partial or not.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	bookingType, err := order.ParseBookingType(dto.BookingType)
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.NewActorID(dto.CustomerID)
	if err != nil {
		return nil, err
	}

	address := kernel.RestoreAddress(kernel.AddressFields(dto.Address))

	var fabric *order.FabricDetails
	if dto.SellerID != nil {
		sellerID, err := kernel.NewActorID(*dto.SellerID)
		if err != nil {
			return nil, err
		}
		details, err := order.NewFabricDetails(sellerID, dto.FabricName)
		if err != nil {
			return nil, err
		}
		fabric = &details
	}

	var tailorID *kernel.ActorID
	if dto.TailorID != nil {
		t, err := kernel.NewActorID(*dto.TailorID)
		if err != nil {
			return nil, err
		}
		tailorID = &t
	}

	return order.RestoreOrder(id, bookingType, customerID, address, fabric, tailorID)
}
