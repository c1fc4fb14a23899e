package interfaces

import (
	"context"

	"learnhub_checkout/internal/domain/entities"
)

// ISideEffectFailureRepository keeps fulfillment steps that need a manual retry.
type ISideEffectFailureRepository interface {
	Record(ctx context.Context, f entities.SideEffectFailure) error
	List(ctx context.Context) ([]entities.SideEffectFailure, error)
	// Get returns a zero SideEffectFailure (empty IntentID) when none is open.
	Get(ctx context.Context, intentID string) (entities.SideEffectFailure, error)
	Resolve(ctx context.Context, intentID string) error
}
