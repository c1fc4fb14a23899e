package postgres

import (
	"context"

	"learnhub_checkout/internal/domain/entities"
	"learnhub_checkout/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

type AccessGrantRepository struct {
	db DBTX
}

var _ interfaces.IAccessGrantRepository = (*AccessGrantRepository)(nil)

func NewAccessGrantRepository(db DBTX) *AccessGrantRepository {
	return &AccessGrantRepository{db: db}
}

func (r *AccessGrantRepository) GetGrant(ctx context.Context, buyerID, courseID string) (entities.AccessGrant, error) {
	var g entities.AccessGrant
	err := r.db.QueryRow(ctx, `SELECT buyer_id, course_id, intent_id, granted_at
		FROM access_grants WHERE buyer_id = $1 AND course_id = $2`, buyerID, courseID).
		Scan(&g.BuyerID, &g.CourseID, &g.IntentID, &g.GrantedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.AccessGrant{}, nil
	}
	if err != nil {
		return entities.AccessGrant{}, errors.Wrap(err, "get access grant")
	}
	g.GrantedAt = g.GrantedAt.UTC()
	return g, nil
}

// InsertGrantIfAbsent relies on the (buyer_id, course_id) primary key.
func (r *AccessGrantRepository) InsertGrantIfAbsent(ctx context.Context, grant entities.AccessGrant) (bool, error) {
	tag, err := r.db.Exec(ctx, `INSERT INTO access_grants (buyer_id, course_id, intent_id, granted_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (buyer_id, course_id) DO NOTHING`,
		grant.BuyerID, grant.CourseID, grant.IntentID, grant.GrantedAt.UTC())
	if err != nil {
		return false, errors.Wrap(err, "insert access grant")
	}
	return tag.RowsAffected() == 1, nil
}

func (r *AccessGrantRepository) ListByBuyer(ctx context.Context, buyerID string) ([]entities.AccessGrant, error) {
	rows, err := r.db.Query(ctx, `SELECT buyer_id, course_id, intent_id, granted_at
		FROM access_grants WHERE buyer_id = $1 ORDER BY granted_at`, buyerID)
	if err != nil {
		return nil, errors.Wrap(err, "list access grants")
	}
	defer rows.Close()

	out := make([]entities.AccessGrant, 0)
	for rows.Next() {
		var g entities.AccessGrant
		if err := rows.Scan(&g.BuyerID, &g.CourseID, &g.IntentID, &g.GrantedAt); err != nil {
			return nil, errors.Wrap(err, "scan access grant")
		}
		g.GrantedAt = g.GrantedAt.UTC()
		out = append(out, g)
	}
	return out, errors.Wrap(rows.Err(), "list access grants")
}
