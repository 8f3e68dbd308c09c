package commands

import (
	"errors"
	"strings"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var ErrMarkLegReadyCommandIsNotConstructed = errors.New(
	"MarkLegReadyCommand must be created via NewMarkLegReadyCommand constructor",
)

// MarkLegReadyCommand records that a garment is packed and names how it will
// reach the customer.
type MarkLegReadyCommand struct { //nolint:recvcheck //using for validation
	legID          kernel.UUID
	deliveryMethod string
	actor          *kernel.ActorID

	guard guard.ConstructorGuard
}

func NewMarkLegReadyCommand(legID kernel.UUID, deliveryMethod string, actor *kernel.ActorID) (MarkLegReadyCommand, error) {
	deliveryMethod = strings.TrimSpace(deliveryMethod)

	var errMethod error
	if deliveryMethod == "" {
		errMethod = errs.NewValueIsRequiredError("deliveryMethod")
	}
	if err := errors.Join(legID.Validate(), errMethod); err != nil {
		return MarkLegReadyCommand{}, err
	}

	return MarkLegReadyCommand{
		legID:          legID,
		deliveryMethod: deliveryMethod,
		actor:          actor,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkLegReadyCommand) Validate() error {
	return c.guard.Validate(ErrMarkLegReadyCommandIsNotConstructed)
}

func (c MarkLegReadyCommand) LegID() kernel.UUID     { return c.legID }
func (c MarkLegReadyCommand) DeliveryMethod() string { return c.deliveryMethod }
func (c MarkLegReadyCommand) Actor() *kernel.ActorID { return c.actor }
