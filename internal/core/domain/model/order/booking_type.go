package order

import (
	"fmt"
	"strings"

	"tracking/internal/pkg/errs"
)

// BookingType describes what the customer booked and therefore which legs exist.
//
//	tailor   - customer supplies the fabric; only the garment leg
//	fabric   - fabric purchase only; the fabric leg, no garment leg until fulfillment
//	complete - fabric bought from a seller and stitched by a tailor; both legs
type BookingType int

const (
	UnknownBooking BookingType = iota
	TailorBooking
	FabricBooking
	CompleteBooking
)

func getBookingTypeStrings() map[BookingType]string {
	return map[BookingType]string{
		UnknownBooking:  "unknown",
		TailorBooking:   "tailor",
		FabricBooking:   "fabric",
		CompleteBooking: "complete",
	}
}

func (b BookingType) String() string {
	if s, ok := getBookingTypeStrings()[b]; ok {
		return s
	}
	return "unknown"
}

// ParseBookingType accepts the lower-case names used by the order service.
func ParseBookingType(s string) (BookingType, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for b, name := range getBookingTypeStrings() {
		if b != UnknownBooking && name == normalized {
			return b, nil
		}
	}
	return UnknownBooking, errs.NewValueIsInvalidErrorWithCause("bookingType", fmt.Errorf("%q is not a valid booking type", s))
}

func (b BookingType) Validate() error {
	if b < TailorBooking || b > CompleteBooking {
		return errs.NewValueIsInvalidErrorWithCause("bookingType", fmt.Errorf("%d is not a valid booking type", b))
	}
	return nil
}

// RequiresFabricLeg reports whether a seller ships fabric for this booking.
func (b BookingType) RequiresFabricLeg() bool {
	return b == FabricBooking || b == CompleteBooking
}

// RequiresGarmentLeg reports whether a tailor ships a garment for this booking.
func (b BookingType) RequiresGarmentLeg() bool {
	return b == TailorBooking || b == CompleteBooking
}
