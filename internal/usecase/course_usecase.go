package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"learnhub_checkout/internal/domain/entities"
	"learnhub_checkout/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrCourseNotFound    = errors.New("course not found")
	ErrInvalidCourseVal  = errors.New("invalid course price")
	ErrInvalidCourseName = errors.New("invalid course title")
	ErrInvalidCurrency   = errors.New("invalid currency")
)

// ICourseUseCase exposes the course catalog operations.
//
// Only published courses with a positive price can be bought; archiving a course
// blocks new intents but leaves existing grants untouched.
type ICourseUseCase interface {
	CreateCourse(ctx context.Context, title string, price int64, currency string) (entities.Course, error)
	Publish(ctx context.Context, id string) (entities.Course, error)
	Unpublish(ctx context.Context, id string) (entities.Course, error)
	UpdatePrice(ctx context.Context, id string, price int64, currency string) (entities.Course, error)
	GetByID(ctx context.Context, id string) (entities.Course, error)
}

type CourseUseCase struct {
	repo interfaces.ICourseRepository
}

var _ ICourseUseCase = (*CourseUseCase)(nil)

func NewCourseUseCase(repo interfaces.ICourseRepository) *CourseUseCase {
	return &CourseUseCase{repo: repo}
}

func (u *CourseUseCase) CreateCourse(ctx context.Context, title string, price int64, currency string) (entities.Course, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return entities.Course{}, ErrInvalidCourseName
	}
	if price <= 0 {
		return entities.Course{}, ErrInvalidCourseVal
	}
	currency, ok := normalizeCurrency(currency)
	if !ok {
		return entities.Course{}, ErrInvalidCurrency
	}

	now := time.Now().UTC()
	c := entities.Course{
		ID:        uuid.NewString(),
		Title:     title,
		Price:     price,
		Currency:  currency,
		Status:    entities.CourseStatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, c)
}

func (u *CourseUseCase) Publish(ctx context.Context, id string) (entities.Course, error) {
	return u.updateStatus(ctx, id, entities.CourseStatusPublished)
}

func (u *CourseUseCase) Unpublish(ctx context.Context, id string) (entities.Course, error) {
	return u.updateStatus(ctx, id, entities.CourseStatusArchived)
}

func (u *CourseUseCase) updateStatus(ctx context.Context, id string, status entities.CourseStatus) (entities.Course, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Course{}, ErrInvalidCourseID
	}

	updated, err := u.repo.UpdateStatusByID(ctx, id, status)
	if err != nil {
		return entities.Course{}, err
	}
	if updated.ID == "" {
		return entities.Course{}, ErrCourseNotFound
	}
	return updated, nil
}

// UpdatePrice only affects intents created afterwards; open intents keep the amount
// they were created with.
func (u *CourseUseCase) UpdatePrice(ctx context.Context, id string, price int64, currency string) (entities.Course, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Course{}, ErrInvalidCourseID
	}
	if price <= 0 {
		return entities.Course{}, ErrInvalidCourseVal
	}
	currency, ok := normalizeCurrency(currency)
	if !ok {
		return entities.Course{}, ErrInvalidCurrency
	}

	updated, err := u.repo.UpdatePriceByID(ctx, id, price, currency)
	if err != nil {
		return entities.Course{}, err
	}
	if updated.ID == "" {
		return entities.Course{}, ErrCourseNotFound
	}
	return updated, nil
}

func (u *CourseUseCase) GetByID(ctx context.Context, id string) (entities.Course, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Course{}, ErrInvalidCourseID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Course{}, err
	}
	if c.ID == "" {
		return entities.Course{}, ErrCourseNotFound
	}
	return c, nil
}

// normalizeCurrency accepts three-letter ISO 4217 style codes.
func normalizeCurrency(code string) (string, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 3 {
		return "", false
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return "", false
		}
	}
	return code, true
}
