package interfaces

import (
	"context"
	"errors"

	"learnhub_checkout/internal/domain/entities"
)

var ErrCourseAlreadyExists = errors.New("course already exists")

// ICourseRepository abstracts persistence for the course catalog.
//
// Lookups and updates return a zero Course (empty ID) when the course does not exist.
type ICourseRepository interface {
	Create(ctx context.Context, c entities.Course) (entities.Course, error)
	GetByID(ctx context.Context, id string) (entities.Course, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.CourseStatus) (entities.Course, error)
	UpdatePriceByID(ctx context.Context, id string, price int64, currency string) (entities.Course, error)
}
