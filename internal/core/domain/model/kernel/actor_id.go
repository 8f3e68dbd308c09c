package kernel

import (
	"strings"

	"tracking/internal/pkg/errs"
)

// ErrActorIDIsNotConstructed is returned when a zero ActorID is used.
var ErrActorIDIsNotConstructed = errs.NewValueIsRequiredError("ActorID must be created via NewActorID")

// ActorID identifies a seller or tailor. Upstream systems hand out these references
// in assorted spellings (padded, upper-case hex, numeric), so the raw value is
// normalized once here and every comparison afterwards is plain equality.
type ActorID struct {
	value string
}

// NewActorID trims surrounding whitespace and lower-cases the reference.
func NewActorID(raw string) (ActorID, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return ActorID{}, errs.NewValueIsRequiredError("actorId")
	}
	return ActorID{value: normalized}, nil
}

// MustNewActorID is NewActorID for literals known to be valid.
func MustNewActorID(raw string) ActorID {
	id, err := NewActorID(raw)
	if err != nil {
		panic(err)
	}
	return id
}

func (a ActorID) String() string {
	return a.value
}

// IsEqual compares two normalized identifiers. Zero values never match anything.
func (a ActorID) IsEqual(other ActorID) bool {
	return a.value != "" && a.value == other.value
}

func (a ActorID) Validate() error {
	if a.value == "" {
		return ErrActorIDIsNotConstructed
	}
	return nil
}
