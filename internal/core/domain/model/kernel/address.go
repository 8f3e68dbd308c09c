package kernel

import (
	"errors"
	"strings"

	"tracking/internal/pkg/errs"
)

// Address is the delivery destination of an order.
type Address struct {
	recipient  string
	phone      string
	line1      string
	line2      string
	city       string
	state      string
	postalCode string
	country    string
}

// AddressFields carries the raw parts of an address into NewAddress.
type AddressFields struct {
	Recipient  string
	Phone      string
	Line1      string
	Line2      string
	City       string
	State      string
	PostalCode string
	Country    string
}

// NewAddress requires at least a street line and a city.
func NewAddress(f AddressFields) (Address, error) {
	a := RestoreAddress(f)

	var errLine1, errCity error
	if a.line1 == "" {
		errLine1 = errs.NewValueIsRequiredError("address.line1")
	}
	if a.city == "" {
		errCity = errs.NewValueIsRequiredError("address.city")
	}
	if err := errors.Join(errLine1, errCity); err != nil {
		return Address{}, err
	}

	return a, nil
}

// RestoreAddress rebuilds an address that was already stored. Stored
// addresses may be partial, so nothing is required; every field is kept.
func RestoreAddress(f AddressFields) Address {
	return Address{
		recipient:  strings.TrimSpace(f.Recipient),
		phone:      strings.TrimSpace(f.Phone),
		line1:      strings.TrimSpace(f.Line1),
		line2:      strings.TrimSpace(f.Line2),
		city:       strings.TrimSpace(f.City),
		state:      strings.TrimSpace(f.State),
		postalCode: strings.TrimSpace(f.PostalCode),
		country:    strings.TrimSpace(f.Country),
	}
}

// Fields returns the parts of the address for mapping to DTOs.
func (a Address) Fields() AddressFields {
	return AddressFields{
		Recipient:  a.recipient,
		Phone:      a.phone,
		Line1:      a.line1,
		Line2:      a.line2,
		City:       a.city,
		State:      a.state,
		PostalCode: a.postalCode,
		Country:    a.country,
	}
}

func (a Address) IsZero() bool {
	return a == Address{}
}
