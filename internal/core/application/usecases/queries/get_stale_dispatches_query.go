package queries

import (
	"errors"
	"time"

	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var (
	ErrGetStaleDispatchesQueryIsNotConstructed = errors.New(
		"GetStaleDispatchesQuery must be created via NewGetStaleDispatchesQuery constructor",
	)
)

// GetStaleDispatchesQuery finds legs still DISPATCHED after olderThan has
// passed since dispatch, as of now.
type GetStaleDispatchesQuery struct {
	cutoff time.Time

	guard guard.ConstructorGuard
}

func NewGetStaleDispatchesQuery(now time.Time, olderThan time.Duration) (GetStaleDispatchesQuery, error) {
	if olderThan <= 0 {
		return GetStaleDispatchesQuery{}, errs.NewValueIsOutOfRangeError("olderThan", olderThan, time.Nanosecond, "unbounded")
	}
	return GetStaleDispatchesQuery{cutoff: now.Add(-olderThan).UTC(), guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStaleDispatchesQuery) Validate() error {
	return q.guard.Validate(ErrGetStaleDispatchesQueryIsNotConstructed)
}

func (q GetStaleDispatchesQuery) Cutoff() time.Time { return q.cutoff }
