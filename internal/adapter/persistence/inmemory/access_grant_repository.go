package inmemory

import (
	"context"
	"sort"
	"sync"

	"learnhub_checkout/internal/domain/entities"
	"learnhub_checkout/internal/usecase/interfaces"
)

type AccessGrantRepository struct {
	mu     sync.RWMutex
	grants map[string]entities.AccessGrant
}

var _ interfaces.IAccessGrantRepository = (*AccessGrantRepository)(nil)

func NewAccessGrantRepository() *AccessGrantRepository {
	return &AccessGrantRepository{
		grants: make(map[string]entities.AccessGrant),
	}
}

func (r *AccessGrantRepository) GetGrant(_ context.Context, buyerID, courseID string) (entities.AccessGrant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.grants[entities.GrantKey(buyerID, courseID)], nil
}

func (r *AccessGrantRepository) InsertGrantIfAbsent(_ context.Context, grant entities.AccessGrant) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := entities.GrantKey(grant.BuyerID, grant.CourseID)
	if _, exists := r.grants[key]; exists {
		return false, nil
	}
	r.grants[key] = grant
	return true, nil
}

func (r *AccessGrantRepository) ListByBuyer(_ context.Context, buyerID string) ([]entities.AccessGrant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.AccessGrant, 0)
	for _, g := range r.grants {
		if g.BuyerID == buyerID {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].GrantedAt.Before(out[j].GrantedAt) })
	return out, nil
}
