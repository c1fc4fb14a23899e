package inmemory

import (
	"context"
	"sort"
	"sync"

	"learnhub_checkout/internal/domain/entities"
	"learnhub_checkout/internal/usecase/interfaces"
)

type SideEffectFailureRepository struct {
	mu       sync.RWMutex
	failures map[string]entities.SideEffectFailure
}

var _ interfaces.ISideEffectFailureRepository = (*SideEffectFailureRepository)(nil)

func NewSideEffectFailureRepository() *SideEffectFailureRepository {
	return &SideEffectFailureRepository{
		failures: make(map[string]entities.SideEffectFailure),
	}
}

func (r *SideEffectFailureRepository) Record(_ context.Context, f entities.SideEffectFailure) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.failures[f.IntentID] = f
	return nil
}

func (r *SideEffectFailureRepository) List(_ context.Context) ([]entities.SideEffectFailure, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.SideEffectFailure, 0, len(r.failures))
	for _, f := range r.failures {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FailedAt.Before(out[j].FailedAt) })
	return out, nil
}

func (r *SideEffectFailureRepository) Get(_ context.Context, intentID string) (entities.SideEffectFailure, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.failures[intentID], nil
}

func (r *SideEffectFailureRepository) Resolve(_ context.Context, intentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.failures, intentID)
	return nil
}
