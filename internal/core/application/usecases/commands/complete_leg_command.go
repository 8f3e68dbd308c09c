package commands

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

var ErrCompleteLegCommandIsNotConstructed = errors.New(
	"CompleteLegCommand must be created via NewCompleteLegCommand constructor",
)

// CompleteLegCommand marks a dispatched leg delivered.
type CompleteLegCommand struct { //nolint:recvcheck //using for validation
	legID kernel.UUID
	actor *kernel.ActorID

	guard guard.ConstructorGuard
}

// NewCompleteLegCommand creates the command; actor is optional.
func NewCompleteLegCommand(legID kernel.UUID, actor *kernel.ActorID) (CompleteLegCommand, error) {
	if err := legID.Validate(); err != nil {
		return CompleteLegCommand{}, err
	}

	return CompleteLegCommand{
		legID: legID,
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteLegCommand) Validate() error {
	return c.guard.Validate(ErrCompleteLegCommandIsNotConstructed)
}

func (c CompleteLegCommand) LegID() kernel.UUID     { return c.legID }
func (c CompleteLegCommand) Actor() *kernel.ActorID { return c.actor }
