package interfaces

import (
	"context"

	"learnhub_checkout/internal/domain/entities"
)

// IAccessGrantRepository persists grants under a (buyer, course) uniqueness constraint.
type IAccessGrantRepository interface {
	// GetGrant returns a zero AccessGrant (empty IntentID) when none exists.
	GetGrant(ctx context.Context, buyerID, courseID string) (entities.AccessGrant, error)
	// InsertGrantIfAbsent is atomic w.r.t. the uniqueness constraint: a conflict is
	// reported as created=false with a nil error.
	InsertGrantIfAbsent(ctx context.Context, grant entities.AccessGrant) (created bool, err error)
	ListByBuyer(ctx context.Context, buyerID string) ([]entities.AccessGrant, error)
}
