package leg

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"
)

var (
	// ErrLegIsNotConstructed is returned when a Leg was not created via NewLeg or Restore.
	ErrLegIsNotConstructed = errors.New("Leg must be created via NewLeg or Restore")
)

// Leg is the DeliveryLeg aggregate root.
//
// Leg follows these invariants:
//   - id and orderID are valid identifiers
//   - dispatchedAt is set iff status is Dispatched or Delivered
//   - deliveredAt is set iff status is Delivered
//   - events are append-only; their sequence equals the version they were produced at
type Leg struct {
	id      kernel.UUID
	orderID kernel.UUID
	legType Type
	status  Status

	courierName    string
	trackingID     string
	deliveryMethod string

	readyAt      *time.Time
	dispatchedAt *time.Time
	deliveredAt  *time.Time

	// version is incremented on every state change.
	version int
	// loadedVersion is the version the leg had when read from its store, 0 for new legs.
	loadedVersion int

	events []Event

	isConstructed bool
}

// NewLeg creates a leg in Created status and records the creation event.
//
// Example:
//
//	l, err := leg.NewLeg(kernel.NewUUID(), orderID, leg.Fabric, time.Now())
func NewLeg(id, orderID kernel.UUID, legType Type, at time.Time) (*Leg, error) {
	l := &Leg{
		status:        Created,
		isConstructed: true,
	}

	if err := errors.Join(
		l.setID(id),
		l.setOrderID(orderID),
		l.setType(legType),
	); err != nil {
		return nil, err
	}

	l.record(Created, "leg created", at)
	return l, nil
}

// State is the full persisted state of a leg, used to rebuild the aggregate.
type State struct {
	ID             kernel.UUID
	OrderID        kernel.UUID
	Type           Type
	Status         Status
	CourierName    string
	TrackingID     string
	DeliveryMethod string
	ReadyAt        *time.Time
	DispatchedAt   *time.Time
	DeliveredAt    *time.Time
	Version        int
	Events         []Event
}

// Restore rebuilds a leg from persistence and checks the timestamp invariants.
func Restore(s State) (*Leg, error) {
	l := &Leg{
		courierName:    s.CourierName,
		trackingID:     s.TrackingID,
		deliveryMethod: s.DeliveryMethod,
		readyAt:        s.ReadyAt,
		dispatchedAt:   s.DispatchedAt,
		deliveredAt:    s.DeliveredAt,
		version:        s.Version,
		loadedVersion:  s.Version,
		events:         append([]Event(nil), s.Events...),
		isConstructed:  true,
	}

	if err := errors.Join(
		l.setID(s.ID),
		l.setOrderID(s.OrderID),
		l.setType(s.Type),
		l.setStatus(s.Status),
	); err != nil {
		return nil, err
	}

	if (s.Status == Created) != (s.DispatchedAt == nil) {
		return nil, errs.NewValueIsInvalidErrorWithCause("dispatchedAt",
			fmt.Errorf("dispatchedAt does not match status %s", s.Status))
	}
	if (s.Status == Delivered) != (s.DeliveredAt != nil) {
		return nil, errs.NewValueIsInvalidErrorWithCause("deliveredAt",
			fmt.Errorf("deliveredAt does not match status %s", s.Status))
	}

	// A restored history ends at the stored version.
	if len(l.events) > 0 {
		last := 0
		for _, e := range l.events {
			last = max(last, e.sequence)
		}
		if last != s.Version {
			return nil, errs.NewValueIsInvalidErrorWithCause("events",
				fmt.Errorf("last event sequence %d does not match version %d", last, s.Version))
		}
	}

	return l, nil
}

// Validate ensures the leg was built through NewLeg or Restore.
func (l *Leg) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLegIsNotConstructed
	}
	return nil
}

func (l *Leg) ID() kernel.UUID          { return l.id }
func (l *Leg) OrderID() kernel.UUID     { return l.orderID }
func (l *Leg) Type() Type               { return l.legType }
func (l *Leg) Status() Status           { return l.status }
func (l *Leg) CourierName() string      { return l.courierName }
func (l *Leg) TrackingID() string       { return l.trackingID }
func (l *Leg) DeliveryMethod() string   { return l.deliveryMethod }
func (l *Leg) ReadyAt() *time.Time      { return l.readyAt }
func (l *Leg) DispatchedAt() *time.Time { return l.dispatchedAt }
func (l *Leg) DeliveredAt() *time.Time  { return l.deliveredAt }
func (l *Leg) Version() int             { return l.version }
func (l *Leg) LoadedVersion() int       { return l.loadedVersion }

// Events returns a copy of the full history in chronological order.
func (l *Leg) Events() []Event {
	return append([]Event(nil), l.events...)
}

// PendingEvents returns the events appended since the leg was loaded.
func (l *Leg) PendingEvents() []Event {
	pending := make([]Event, 0, 1)
	for _, e := range l.events {
		if e.sequence > l.loadedVersion {
			pending = append(pending, e)
		}
	}
	return pending
}

// IsReady reports whether a garment leg has been prepared for hand-over.
func (l *Leg) IsReady() bool {
	return l.deliveryMethod != ""
}

// Dispatch hands the leg to a courier.
//
// Both courierName and trackingID are validated before the state is looked at,
// so a malformed request is reported as a validation error even on a leg that
// could not be dispatched anyway.
func (l *Leg) Dispatch(courierName, trackingID string, at time.Time) error {
	courierName = strings.TrimSpace(courierName)
	trackingID = strings.TrimSpace(trackingID)

	var errCourier, errTracking error
	if courierName == "" {
		errCourier = errs.NewValueIsRequiredError("courierName")
	}
	if trackingID == "" {
		errTracking = errs.NewValueIsRequiredError("trackingId")
	}
	if err := errors.Join(errCourier, errTracking); err != nil {
		return err
	}

	newStatus, err := l.status.Dispatch()
	if err != nil {
		return l.conflict(err)
	}

	at = at.UTC()
	l.status = newStatus
	l.courierName = courierName
	l.trackingID = trackingID
	l.dispatchedAt = &at
	l.record(newStatus, fmt.Sprintf("dispatched via %s (%s)", courierName, trackingID), at)
	return nil
}

// MarkReady records that a garment is packed and waiting for pick-up. The status
// stays Created; only the delivery method and a history event are added.
func (l *Leg) MarkReady(deliveryMethod string, at time.Time) error {
	deliveryMethod = strings.TrimSpace(deliveryMethod)
	if deliveryMethod == "" {
		return errs.NewValueIsRequiredError("deliveryMethod")
	}
	if l.legType != Garment {
		return errs.NewValueIsInvalidErrorWithCause("legType",
			fmt.Errorf("%s legs cannot be marked ready", l.legType))
	}
	if l.status != Created || l.IsReady() {
		return l.conflict(errs.NewConflictErrorWithCause("status", l.status.String(),
			fmt.Errorf("%s is not a valid status to mark ready", l.readinessLabel())))
	}

	at = at.UTC()
	l.deliveryMethod = deliveryMethod
	l.readyAt = &at
	l.record(l.status, "ready for delivery via "+deliveryMethod, at)
	return nil
}

// Complete marks the leg delivered. Delivered is terminal.
func (l *Leg) Complete(at time.Time) error {
	newStatus, err := l.status.Complete()
	if err != nil {
		return l.conflict(err)
	}

	at = at.UTC()
	l.status = newStatus
	l.deliveredAt = &at
	l.record(newStatus, "delivered", at)
	return nil
}

func (l *Leg) readinessLabel() string {
	if l.status == Created && l.IsReady() {
		return "READY"
	}
	return l.status.String()
}

// conflict re-labels a status-level conflict with the leg identity.
func (l *Leg) conflict(cause error) error {
	var statusConflict *errs.ConflictError
	if errors.As(cause, &statusConflict) && statusConflict.Cause != nil {
		cause = statusConflict.Cause
	}
	return errs.NewConflictErrorWithCause("leg", l.id.String(), cause)
}

func (l *Leg) record(status Status, note string, at time.Time) {
	l.version++
	l.events = append(l.events, Event{
		sequence: l.version,
		status:   status,
		note:     note,
		at:       at.UTC(),
	})
}

func (l *Leg) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Leg) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	l.orderID = orderID
	return nil
}

func (l *Leg) setType(legType Type) error {
	if err := legType.Validate(); err != nil {
		return err
	}
	l.legType = legType
	return nil
}

func (l *Leg) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	l.status = status
	return nil
}
