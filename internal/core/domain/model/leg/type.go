package leg

import (
	"fmt"
	"strings"

	"tracking/internal/pkg/errs"
)

// Type distinguishes the fabric leg from the garment leg.
type Type int

const (
	UnknownType Type = iota
	Fabric
	Garment
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		UnknownType: "UNKNOWN",
		Fabric:      "FABRIC",
		Garment:     "GARMENT",
	}
}

func (t Type) String() string {
	if s, ok := getTypeStrings()[t]; ok {
		return s
	}
	return "UNKNOWN"
}

// Validate rejects UnknownType and out-of-range values.
func (t Type) Validate() error {
	if t != Fabric && t != Garment {
		return errs.NewValueIsInvalidErrorWithCause("legType", fmt.Errorf("%d is not a valid leg type", t))
	}
	return nil
}

// ParseType accepts "FABRIC" or "GARMENT" in any case.
func ParseType(s string) (Type, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "FABRIC":
		return Fabric, nil
	case "GARMENT":
		return Garment, nil
	}
	return UnknownType, errs.NewValueIsInvalidErrorWithCause("legType", fmt.Errorf("%q is not a valid leg type", s))
}
