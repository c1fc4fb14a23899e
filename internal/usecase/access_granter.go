package usecase

import (
	"context"
	"log/slog"
	"time"

	"learnhub_checkout/internal/domain/entities"
	"learnhub_checkout/internal/infrastructure/metrics"
	"learnhub_checkout/internal/usecase/interfaces"
)

type GrantResult struct {
	Created bool
	Grant   entities.AccessGrant
}

// AccessGranter turns a confirmed payment into a course-access grant.
type AccessGranter struct {
	grants     interfaces.IAccessGrantRepository
	dispatcher IFulfillmentDispatcher
	logger     *slog.Logger
	now        func() time.Time
}

func NewAccessGranter(grants interfaces.IAccessGrantRepository, dispatcher IFulfillmentDispatcher, logger *slog.Logger) *AccessGranter {
	return &AccessGranter{
		grants:     grants,
		dispatcher: dispatcher,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Grant creates the (buyer, course) grant unless one already exists. The existence
// check and the insert are a single conditional write in the store. Side effects are
// dispatched only for a newly created grant.
func (g *AccessGranter) Grant(ctx context.Context, buyerID, courseID, intentID string) (GrantResult, error) {
	grant := entities.AccessGrant{
		BuyerID:   buyerID,
		CourseID:  courseID,
		IntentID:  intentID,
		GrantedAt: g.now(),
	}

	created, err := g.grants.InsertGrantIfAbsent(ctx, grant)
	if err != nil {
		g.logger.ErrorContext(ctx, "[checkout][granter] insert grant failed", "buyer_id", buyerID, "course_id", courseID, "err", err)
		return GrantResult{}, err
	}
	metrics.GrantAttempt(created)

	if !created {
		g.logger.InfoContext(ctx, "[checkout][granter] grant already exists", "buyer_id", buyerID, "course_id", courseID)
		return GrantResult{Created: false}, nil
	}

	g.logger.InfoContext(ctx, "[checkout][granter] grant created", "buyer_id", buyerID, "course_id", courseID)
	if g.dispatcher != nil {
		g.dispatcher.Dispatch(FulfillmentTask{
			IntentID:  intentID,
			BuyerID:   buyerID,
			CourseID:  courseID,
			GrantedAt: grant.GrantedAt,
		})
	}
	return GrantResult{Created: true, Grant: grant}, nil
}
