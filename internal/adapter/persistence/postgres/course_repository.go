package postgres

import (
	"context"
	"time"

	"learnhub_checkout/internal/domain/entities"
	"learnhub_checkout/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

const courseColumns = `id, title, price, currency, status, created_at, updated_at`

type CourseRepository struct {
	db DBTX
}

var _ interfaces.ICourseRepository = (*CourseRepository)(nil)

func NewCourseRepository(db DBTX) *CourseRepository {
	return &CourseRepository{db: db}
}

func (r *CourseRepository) Create(ctx context.Context, c entities.Course) (entities.Course, error) {
	_, err := r.db.Exec(ctx, `INSERT INTO courses (`+courseColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.ID, c.Title, c.Price, c.Currency, string(c.Status), c.CreatedAt.UTC(), c.UpdatedAt.UTC())
	if err != nil {
		if isUniqueViolation(err) {
			return entities.Course{}, interfaces.ErrCourseAlreadyExists
		}
		return entities.Course{}, errors.Wrap(err, "insert course")
	}
	return c, nil
}

func (r *CourseRepository) GetByID(ctx context.Context, id string) (entities.Course, error) {
	return r.one(r.db.QueryRow(ctx, `SELECT `+courseColumns+` FROM courses WHERE id = $1`, id), "get course")
}

func (r *CourseRepository) UpdateStatusByID(ctx context.Context, id string, status entities.CourseStatus) (entities.Course, error) {
	row := r.db.QueryRow(ctx, `UPDATE courses SET status = $2, updated_at = $3 WHERE id = $1 RETURNING `+courseColumns,
		id, string(status), time.Now().UTC())
	return r.one(row, "update course status")
}

func (r *CourseRepository) UpdatePriceByID(ctx context.Context, id string, price int64, currency string) (entities.Course, error) {
	row := r.db.QueryRow(ctx, `UPDATE courses SET price = $2, currency = $3, updated_at = $4 WHERE id = $1 RETURNING `+courseColumns,
		id, price, currency, time.Now().UTC())
	return r.one(row, "update course price")
}

// one scans a single course; a missing row yields a zero Course.
func (r *CourseRepository) one(row pgx.Row, op string) (entities.Course, error) {
	var (
		c      entities.Course
		status string
	)
	err := row.Scan(&c.ID, &c.Title, &c.Price, &c.Currency, &status, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.Course{}, nil
	}
	if err != nil {
		return entities.Course{}, errors.Wrap(err, op)
	}
	c.Status = entities.CourseStatus(status)
	c.CreatedAt = c.CreatedAt.UTC()
	c.UpdatedAt = c.UpdatedAt.UTC()
	return c, nil
}
