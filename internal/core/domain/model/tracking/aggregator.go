package tracking

// OverallStatus is the order-level status. It is always derived from leg
// phases and never stored on its own authority.
type OverallStatus string

const (
	OverallPending    OverallStatus = "pending"
	OverallInProgress OverallStatus = "in_progress"
	OverallDelivered  OverallStatus = "delivered"
	// OverallFailed is part of the UI vocabulary. No leg phase currently maps to it.
	OverallFailed OverallStatus = "failed"
)

// Signals are the leg phases relevant to one order. Fabric is nil when the
// order has no fabric leg (tailor-only bookings). A missing garment leg is
// reported as GarmentPending.
type Signals struct {
	Fabric  *FabricPhase
	Garment GarmentPhase
}

// Summary is the derived view of an order's delivery progress.
type Summary struct {
	Overall         OverallStatus
	ProgressPercent int
}

// Aggregate applies the progress table top-down, first match wins, so that a
// fabric-only signal never overrides a more advanced garment signal:
//
//	garment delivered            100
//	garment out for delivery      80
//	garment ready for delivery    60
//	fabric delivered to tailor    50
//	fabric in transit             30
//	fabric dispatched             20
//	otherwise                     10
//
// The thresholds mirror what the storefront has always displayed; extending the
// table to new leg types needs a product decision, not just a new row.
func Aggregate(s Signals) Summary {
	return Summary{
		Overall:         overall(s),
		ProgressPercent: progress(s),
	}
}

func progress(s Signals) int {
	switch s.Garment {
	case GarmentDelivered:
		return 100
	case GarmentOutForDelivery:
		return 80
	case GarmentReadyForDelivery:
		return 60
	case GarmentPending:
	}

	if s.Fabric == nil {
		return 10
	}

	switch *s.Fabric {
	case FabricDeliveredToTailor:
		return 50
	case FabricInTransit:
		return 30
	case FabricDispatched:
		return 20
	case FabricPending:
	}

	return 10
}

func overall(s Signals) OverallStatus {
	if s.Garment == GarmentDelivered {
		return OverallDelivered
	}
	if s.Garment != GarmentPending || (s.Fabric != nil && *s.Fabric != FabricPending) {
		return OverallInProgress
	}
	return OverallPending
}
