package commands

import (
	"errors"
	"strings"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var ErrDispatchLegCommandIsNotConstructed = errors.New(
	"DispatchLegCommand must be created via NewDispatchLegCommand constructor",
)

// DispatchLegCommand hands a leg to a courier.
//
// Example:
//
//	cmd, err := NewDispatchLegCommand(legID, "BlueDart", "BD123", &sellerID)
//	if err != nil {
//	    return err // validation error, nothing was loaded
//	}
//	l, err := handler.Handle(ctx, cmd)
type DispatchLegCommand struct { //nolint:recvcheck //using for validation
	legID       kernel.UUID
	courierName string
	trackingID  string
	actor       *kernel.ActorID

	guard guard.ConstructorGuard
}

// NewDispatchLegCommand validates all fields up front. actor is optional; when
// set the leg must belong to that seller or tailor.
func NewDispatchLegCommand(legID kernel.UUID, courierName, trackingID string, actor *kernel.ActorID) (DispatchLegCommand, error) {
	cmd := DispatchLegCommand{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLegID(legID),
		cmd.setCourierName(courierName),
		cmd.setTrackingID(trackingID),
	); err != nil {
		return DispatchLegCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchLegCommand) Validate() error {
	return c.guard.Validate(ErrDispatchLegCommandIsNotConstructed)
}

func (c DispatchLegCommand) LegID() kernel.UUID     { return c.legID }
func (c DispatchLegCommand) CourierName() string    { return c.courierName }
func (c DispatchLegCommand) TrackingID() string     { return c.trackingID }
func (c DispatchLegCommand) Actor() *kernel.ActorID { return c.actor }

func (c *DispatchLegCommand) setLegID(legID kernel.UUID) error {
	if err := legID.Validate(); err != nil {
		return err
	}
	c.legID = legID
	return nil
}

func (c *DispatchLegCommand) setCourierName(courierName string) error {
	courierName = strings.TrimSpace(courierName)
	if courierName == "" {
		return errs.NewValueIsRequiredError("courierName")
	}
	c.courierName = courierName
	return nil
}

func (c *DispatchLegCommand) setTrackingID(trackingID string) error {
	trackingID = strings.TrimSpace(trackingID)
	if trackingID == "" {
		return errs.NewValueIsRequiredError("trackingId")
	}
	c.trackingID = trackingID
	return nil
}
