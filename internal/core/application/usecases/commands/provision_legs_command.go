package commands

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

var ErrProvisionLegsCommandIsNotConstructed = errors.New(
	"ProvisionLegsCommand must be created via NewProvisionLegsCommand constructor",
)

// ProvisionLegsCommand is issued once an order is confirmed. It creates the
// legs the order's booking type requires.
type ProvisionLegsCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewProvisionLegsCommand(orderID kernel.UUID) (ProvisionLegsCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ProvisionLegsCommand{}, err
	}

	return ProvisionLegsCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ProvisionLegsCommand) Validate() error {
	return c.guard.Validate(ErrProvisionLegsCommandIsNotConstructed)
}

func (c ProvisionLegsCommand) OrderID() kernel.UUID { return c.orderID }
