package inmemory

import (
	"context"
	"sync"
	"time"

	"learnhub_checkout/internal/domain/entities"
	"learnhub_checkout/internal/usecase/interfaces"
)

type CourseRepository struct {
	mu      sync.RWMutex
	courses map[string]entities.Course
}

var _ interfaces.ICourseRepository = (*CourseRepository)(nil)

func NewCourseRepository() *CourseRepository {
	return &CourseRepository{
		courses: make(map[string]entities.Course),
	}
}

func (r *CourseRepository) Create(_ context.Context, c entities.Course) (entities.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.courses[c.ID]; exists {
		return entities.Course{}, interfaces.ErrCourseAlreadyExists
	}
	r.courses[c.ID] = c
	return c, nil
}

func (r *CourseRepository) GetByID(_ context.Context, id string) (entities.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.courses[id], nil
}

func (r *CourseRepository) UpdateStatusByID(_ context.Context, id string, status entities.CourseStatus) (entities.Course, error) {
	return r.update(id, func(c *entities.Course) { c.Status = status })
}

func (r *CourseRepository) UpdatePriceByID(_ context.Context, id string, price int64, currency string) (entities.Course, error) {
	return r.update(id, func(c *entities.Course) {
		c.Price = price
		c.Currency = currency
	})
}

func (r *CourseRepository) update(id string, apply func(*entities.Course)) (entities.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.courses[id]
	if !ok {
		return entities.Course{}, nil
	}
	apply(&c)
	c.UpdatedAt = time.Now().UTC()
	r.courses[id] = c
	return c, nil
}
