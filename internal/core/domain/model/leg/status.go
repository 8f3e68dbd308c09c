package leg

import (
	"fmt"

	"tracking/internal/pkg/errs"
)

// Status represents the lifecycle state of a leg.
//
//	Created ──> Dispatched ──> Delivered
//
// No other transitions exist. Delivered is terminal.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	Created
	Dispatched
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Created:    "CREATED",
		Dispatched: "DISPATCHED",
		Delivered:  "DELIVERED",
	}
}

// Validate checks the value is one of Created, Dispatched, Delivered.
func (s Status) Validate() error {
	if s < Created || s > Delivered {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// ParseStatus maps the persisted/wire name back to a Status.
func ParseStatus(str string) (Status, error) {
	for s, name := range getStatusStrings() {
		if s != Unknown && name == str {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", str))
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// Dispatch transitions Created -> Dispatched.
func (s Status) Dispatch() (Status, error) {
	if s != Created {
		return Unknown, errs.NewConflictErrorWithCause(
			"status", s.String(),
			fmt.Errorf("%s is not a valid status to dispatch", s.String()),
		)
	}

	return Dispatched, nil
}

// Complete transitions Dispatched -> Delivered.
func (s Status) Complete() (Status, error) {
	if s != Dispatched {
		return Unknown, errs.NewConflictErrorWithCause(
			"status", s.String(),
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Delivered, nil
}
