package legacy

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/tracking"
	"tracking/internal/pkg/errs"
)

var (
	// ErrRecordIsNotConstructed is returned when a Record was not created via NewRecord or RestoreRecord.
	ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord or RestoreRecord")
)

// VendorDispatch is the fabric sub-state of a legacy record.
type VendorDispatch struct {
	Status            tracking.FabricPhase
	TrackingNumber    string
	CourierName       string
	EstimatedDelivery *time.Time
	Notes             string
}

// TailorDelivery is the garment sub-state of a legacy record.
type TailorDelivery struct {
	Status         tracking.GarmentPhase
	DeliveryMethod string
	TrackingNumber string
	CourierName    string
	Notes          string
}

// HistoryEntry is one immutable line of the status history.
type HistoryEntry struct {
	Status string
	Phase  tracking.LegKind
	At     time.Time
	Notes  string
}

// Record is the legacy delivery aggregate, keyed by order id.
type Record struct {
	orderID    kernel.UUID
	customerID kernel.ActorID
	address    kernel.Address
	vendor     VendorDispatch
	tailor     TailorDelivery
	overall    tracking.OverallStatus

	// history is stored chronologically.
	history          []HistoryEntry
	loadedHistoryLen int

	isConstructed bool
}

// NewRecord creates a record with both sub-states pending and an empty history.
func NewRecord(orderID kernel.UUID, customerID kernel.ActorID, address kernel.Address) (*Record, error) {
	if err := errors.Join(orderID.Validate(), customerID.Validate()); err != nil {
		return nil, err
	}

	r := &Record{
		orderID:       orderID,
		customerID:    customerID,
		address:       address,
		vendor:        VendorDispatch{Status: tracking.FabricPending},
		tailor:        TailorDelivery{Status: tracking.GarmentPending},
		isConstructed: true,
	}
	r.derive()
	return r, nil
}

// RecordState is the persisted form of a record.
type RecordState struct {
	OrderID    kernel.UUID
	CustomerID kernel.ActorID
	Address    kernel.Address
	Vendor     VendorDispatch
	Tailor     TailorDelivery
	History    []HistoryEntry
}

// RestoreRecord rebuilds a record. The overall status is re-derived from the
// sub-states; whatever the store held for it is not trusted.
func RestoreRecord(s RecordState) (*Record, error) {
	if err := errors.Join(s.OrderID.Validate(), s.CustomerID.Validate()); err != nil {
		return nil, err
	}

	r := &Record{
		orderID:          s.OrderID,
		customerID:       s.CustomerID,
		address:          s.Address,
		vendor:           s.Vendor,
		tailor:           s.Tailor,
		history:          append([]HistoryEntry(nil), s.History...),
		loadedHistoryLen: len(s.History),
		isConstructed:    true,
	}
	r.derive()
	return r, nil
}

// Validate ensures the record was built through a constructor.
func (r *Record) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecordIsNotConstructed
	}
	return nil
}

func (r *Record) OrderID() kernel.UUID            { return r.orderID }
func (r *Record) CustomerID() kernel.ActorID      { return r.customerID }
func (r *Record) Address() kernel.Address         { return r.address }
func (r *Record) Vendor() VendorDispatch          { return r.vendor }
func (r *Record) Tailor() TailorDelivery          { return r.tailor }
func (r *Record) Overall() tracking.OverallStatus { return r.overall }
func (r *Record) LoadedHistoryLen() int           { return r.loadedHistoryLen }

// History returns the status history in chronological (storage) order.
func (r *Record) History() []HistoryEntry {
	return append([]HistoryEntry(nil), r.history...)
}

// PendingHistory returns entries appended since the record was loaded.
func (r *Record) PendingHistory() []HistoryEntry {
	return append([]HistoryEntry(nil), r.history[r.loadedHistoryLen:]...)
}

// Signals exposes the sub-states as aggregator input.
func (r *Record) Signals() tracking.Signals {
	fabric := r.vendor.Status
	return tracking.Signals{Fabric: &fabric, Garment: r.tailor.Status}
}

// VendorUpdate advances the vendor dispatch sub-state.
type VendorUpdate struct {
	Status            tracking.FabricPhase
	TrackingNumber    string
	CourierName       string
	EstimatedDelivery *time.Time
	Notes             string
}

// AdvanceVendor moves the vendor dispatch strictly forward. Leaving pending needs
// a courier name and tracking number, supplied now or earlier. Missing fields are
// reported before the direction of the move is checked.
func (r *Record) AdvanceVendor(u VendorUpdate, at time.Time) error {
	if err := u.Status.Validate(); err != nil {
		return err
	}

	next := r.vendor
	next.Status = u.Status
	next.TrackingNumber = firstNonEmpty(u.TrackingNumber, next.TrackingNumber)
	next.CourierName = firstNonEmpty(u.CourierName, next.CourierName)
	if u.EstimatedDelivery != nil {
		eta := u.EstimatedDelivery.UTC()
		next.EstimatedDelivery = &eta
	}
	next.Notes = firstNonEmpty(u.Notes, next.Notes)

	var errCourier, errTracking error
	if next.CourierName == "" {
		errCourier = errs.NewValueIsRequiredError("courierName")
	}
	if next.TrackingNumber == "" {
		errTracking = errs.NewValueIsRequiredError("trackingNumber")
	}
	if err := errors.Join(errCourier, errTracking); err != nil {
		return err
	}

	if u.Status <= r.vendor.Status {
		return errs.NewConflictErrorWithCause("legacy record", r.orderID.String(),
			fmt.Errorf("vendor dispatch cannot move from %s to %s", r.vendor.Status, u.Status))
	}

	r.vendor = next
	r.append(u.Status.String(), tracking.LegKindFabric, u.Notes, at)
	return nil
}

// TailorUpdate advances the tailor delivery sub-state.
type TailorUpdate struct {
	Status         tracking.GarmentPhase
	DeliveryMethod string
	TrackingNumber string
	CourierName    string
	Notes          string
}

// AdvanceTailor moves the tailor delivery strictly forward. Leaving pending needs
// a delivery method, supplied now or earlier.
func (r *Record) AdvanceTailor(u TailorUpdate, at time.Time) error {
	if err := u.Status.Validate(); err != nil {
		return err
	}

	next := r.tailor
	next.Status = u.Status
	next.DeliveryMethod = firstNonEmpty(u.DeliveryMethod, next.DeliveryMethod)
	next.TrackingNumber = firstNonEmpty(u.TrackingNumber, next.TrackingNumber)
	next.CourierName = firstNonEmpty(u.CourierName, next.CourierName)
	next.Notes = firstNonEmpty(u.Notes, next.Notes)

	if next.DeliveryMethod == "" {
		return errs.NewValueIsRequiredError("deliveryMethod")
	}

	if u.Status <= r.tailor.Status {
		return errs.NewConflictErrorWithCause("legacy record", r.orderID.String(),
			fmt.Errorf("tailor delivery cannot move from %s to %s", r.tailor.Status, u.Status))
	}

	r.tailor = next
	r.append(u.Status.String(), tracking.LegKindGarment, u.Notes, at)
	return nil
}

func (r *Record) append(status string, phase tracking.LegKind, notes string, at time.Time) {
	r.history = append(r.history, HistoryEntry{
		Status: status,
		Phase:  phase,
		At:     at.UTC(),
		Notes:  notes,
	})
	r.derive()
}

func (r *Record) derive() {
	r.overall = tracking.Aggregate(r.Signals()).Overall
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
