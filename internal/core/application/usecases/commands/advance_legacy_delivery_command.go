package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/tracking"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var ErrAdvanceLegacyDeliveryCommandIsNotConstructed = errors.New(
	"AdvanceLegacyDeliveryCommand must be created via NewAdvanceLegacyDeliveryCommand constructor",
)

// LegacyDeliveryFields are the optional attributes that accompany a legacy
// status change. Empty fields keep the values already stored.
type LegacyDeliveryFields struct {
	TrackingNumber    string
	CourierName       string
	DeliveryMethod    string
	EstimatedDelivery *time.Time
	Notes             string
}

// AdvanceLegacyDeliveryCommand moves one sub-state of a legacy record forward.
// phase selects the sub-state ("fabric" for vendor dispatch, "garment" for
// tailor delivery) and status is parsed against that sub-state's vocabulary.
// actor is optional; when set it must own the sub-state.
type AdvanceLegacyDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	phase         tracking.LegKind
	fabricStatus  tracking.FabricPhase
	garmentStatus tracking.GarmentPhase
	fields        LegacyDeliveryFields
	actor         *kernel.ActorID

	guard guard.ConstructorGuard
}

func NewAdvanceLegacyDeliveryCommand(
	orderID kernel.UUID,
	phase string,
	status string,
	fields LegacyDeliveryFields,
	actor *kernel.ActorID,
) (AdvanceLegacyDeliveryCommand, error) {
	cmd := AdvanceLegacyDeliveryCommand{
		fields: fields,
		actor:  actor,
		guard:  guard.NewConstructorGuard(),
	}

	if actor != nil {
		if err := actor.Validate(); err != nil {
			return AdvanceLegacyDeliveryCommand{}, err
		}
	}

	if err := orderID.Validate(); err != nil {
		return AdvanceLegacyDeliveryCommand{}, err
	}
	cmd.orderID = orderID

	status = strings.ToLower(strings.TrimSpace(status))
	var err error
	switch tracking.LegKind(strings.ToLower(strings.TrimSpace(phase))) {
	case tracking.LegKindFabric:
		cmd.phase = tracking.LegKindFabric
		cmd.fabricStatus, err = tracking.ParseFabricPhase(status)
	case tracking.LegKindGarment:
		cmd.phase = tracking.LegKindGarment
		cmd.garmentStatus, err = tracking.ParseGarmentPhase(status)
	default:
		err = errs.NewValueIsInvalidErrorWithCause("phase", fmt.Errorf("%q is not fabric or garment", phase))
	}
	if err != nil {
		return AdvanceLegacyDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceLegacyDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceLegacyDeliveryCommandIsNotConstructed)
}

func (c AdvanceLegacyDeliveryCommand) OrderID() kernel.UUID                 { return c.orderID }
func (c AdvanceLegacyDeliveryCommand) Phase() tracking.LegKind              { return c.phase }
func (c AdvanceLegacyDeliveryCommand) FabricStatus() tracking.FabricPhase   { return c.fabricStatus }
func (c AdvanceLegacyDeliveryCommand) GarmentStatus() tracking.GarmentPhase { return c.garmentStatus }
func (c AdvanceLegacyDeliveryCommand) Fields() LegacyDeliveryFields         { return c.fields }
func (c AdvanceLegacyDeliveryCommand) Actor() *kernel.ActorID               { return c.actor }
