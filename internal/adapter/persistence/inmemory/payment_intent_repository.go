package inmemory

import (
	"context"
	"sort"
	"sync"
	"time"

	"learnhub_checkout/internal/domain/entities"
	"learnhub_checkout/internal/usecase/interfaces"
)

// PaymentIntentRepository is the ledger used by storage.driver=memory and by tests.
// The mutex makes CompareAndTransition atomic, matching the conditional writes of the
// persistent stores.
type PaymentIntentRepository struct {
	mu      sync.RWMutex
	intents map[string]entities.PaymentIntent
}

var _ interfaces.IPaymentIntentRepository = (*PaymentIntentRepository)(nil)

func NewPaymentIntentRepository() *PaymentIntentRepository {
	return &PaymentIntentRepository{
		intents: make(map[string]entities.PaymentIntent),
	}
}

func (r *PaymentIntentRepository) Insert(_ context.Context, intent entities.PaymentIntent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.intents[intent.ID]; exists {
		return interfaces.ErrIntentAlreadyExists
	}
	r.intents[intent.ID] = intent
	return nil
}

func (r *PaymentIntentRepository) GetByID(_ context.Context, id string) (entities.PaymentIntent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.intents[id], nil
}

func (r *PaymentIntentRepository) CompareAndTransition(_ context.Context, id string, from, to entities.PaymentStatus, externalRef string) (entities.PaymentIntent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.intents[id]
	if !ok {
		return entities.PaymentIntent{}, interfaces.ErrIntentNotFound
	}
	if current.Status != from {
		if current.Status.Terminal() {
			return current, interfaces.ErrIntentAlreadyTerminal
		}
		return current, interfaces.ErrIntentStatusConflict
	}

	current.Status = to
	if externalRef != "" {
		current.ExternalRef = externalRef
	}
	current.UpdatedAt = time.Now().UTC()
	r.intents[id] = current
	return current, nil
}

func (r *PaymentIntentRepository) ListByStatus(_ context.Context, status entities.PaymentStatus) ([]entities.PaymentIntent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.PaymentIntent, 0)
	for _, intent := range r.intents {
		if intent.Status == status {
			out = append(out, intent)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}
