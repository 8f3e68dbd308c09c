package queries

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/leg"
	"tracking/internal/pkg/guard"
)

var (
	ErrGetLegsForActorQueryIsNotConstructed = errors.New(
		"GetLegsForActorQuery must be created via NewGetLegsForActorQuery constructor",
	)
)

// GetLegsForActorQuery lists the legs a seller (FABRIC) or tailor (GARMENT) owns.
// The actor is always explicit; nothing is read from session state.
type GetLegsForActorQuery struct {
	actorID kernel.ActorID
	legType leg.Type

	guard guard.ConstructorGuard
}

func NewGetLegsForActorQuery(actorID kernel.ActorID, legType leg.Type) (GetLegsForActorQuery, error) {
	if err := errors.Join(actorID.Validate(), legType.Validate()); err != nil {
		return GetLegsForActorQuery{}, err
	}
	return GetLegsForActorQuery{actorID: actorID, legType: legType, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLegsForActorQuery) Validate() error {
	return q.guard.Validate(ErrGetLegsForActorQueryIsNotConstructed)
}

func (q GetLegsForActorQuery) ActorID() kernel.ActorID { return q.actorID }
func (q GetLegsForActorQuery) LegType() leg.Type       { return q.legType }
