package tracking

import (
	"fmt"

	"tracking/internal/pkg/errs"
)

// FabricPhase is the progress of the fabric shipment from seller to tailor.
type FabricPhase int

const (
	FabricPending FabricPhase = iota
	FabricDispatched
	FabricInTransit
	FabricDeliveredToTailor
)

var fabricPhaseNames = map[FabricPhase]string{
	FabricPending:           "pending",
	FabricDispatched:        "dispatched",
	FabricInTransit:         "in_transit",
	FabricDeliveredToTailor: "delivered_to_tailor",
}

func (p FabricPhase) String() string {
	if s, ok := fabricPhaseNames[p]; ok {
		return s
	}
	return "unknown"
}

func (p FabricPhase) Validate() error {
	if _, ok := fabricPhaseNames[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("fabric phase", fmt.Errorf("%d is not a fabric phase", p))
	}
	return nil
}

// ParseFabricPhase accepts the wire names used by the legacy schema.
func ParseFabricPhase(s string) (FabricPhase, error) {
	for p, name := range fabricPhaseNames {
		if name == s {
			return p, nil
		}
	}
	return 0, errs.NewValueIsInvalidErrorWithCause("fabric phase", fmt.Errorf("%q is not a fabric phase", s))
}

// GarmentPhase is the progress of the finished garment from tailor to customer.
type GarmentPhase int

const (
	GarmentPending GarmentPhase = iota
	GarmentReadyForDelivery
	GarmentOutForDelivery
	GarmentDelivered
)

var garmentPhaseNames = map[GarmentPhase]string{
	GarmentPending:          "pending",
	GarmentReadyForDelivery: "ready_for_delivery",
	GarmentOutForDelivery:   "out_for_delivery",
	GarmentDelivered:        "delivered",
}

func (p GarmentPhase) String() string {
	if s, ok := garmentPhaseNames[p]; ok {
		return s
	}
	return "unknown"
}

func (p GarmentPhase) Validate() error {
	if _, ok := garmentPhaseNames[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("garment phase", fmt.Errorf("%d is not a garment phase", p))
	}
	return nil
}

// ParseGarmentPhase accepts the wire names used by the legacy schema.
func ParseGarmentPhase(s string) (GarmentPhase, error) {
	for p, name := range garmentPhaseNames {
		if name == s {
			return p, nil
		}
	}
	return 0, errs.NewValueIsInvalidErrorWithCause("garment phase", fmt.Errorf("%q is not a garment phase", s))
}
