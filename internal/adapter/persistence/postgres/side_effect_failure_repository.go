package postgres

import (
	"context"

	"learnhub_checkout/internal/domain/entities"
	"learnhub_checkout/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

const failureColumns = `intent_id, buyer_id, course_id, stage, error, attempts, failed_at, invoice_id`

type SideEffectFailureRepository struct {
	db DBTX
}

var _ interfaces.ISideEffectFailureRepository = (*SideEffectFailureRepository)(nil)

func NewSideEffectFailureRepository(db DBTX) *SideEffectFailureRepository {
	return &SideEffectFailureRepository{db: db}
}

func (r *SideEffectFailureRepository) Record(ctx context.Context, f entities.SideEffectFailure) error {
	_, err := r.db.Exec(ctx, `INSERT INTO side_effect_failures (`+failureColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (intent_id) DO UPDATE SET
			stage = EXCLUDED.stage,
			error = EXCLUDED.error,
			attempts = EXCLUDED.attempts,
			failed_at = EXCLUDED.failed_at,
			invoice_id = EXCLUDED.invoice_id`,
		f.IntentID, f.BuyerID, f.CourseID, string(f.Stage), f.Error, f.Attempts, f.FailedAt.UTC(), f.InvoiceID)
	return errors.Wrap(err, "record side effect failure")
}

func (r *SideEffectFailureRepository) List(ctx context.Context) ([]entities.SideEffectFailure, error) {
	rows, err := r.db.Query(ctx, `SELECT `+failureColumns+` FROM side_effect_failures ORDER BY failed_at`)
	if err != nil {
		return nil, errors.Wrap(err, "list side effect failures")
	}
	defer rows.Close()

	out := make([]entities.SideEffectFailure, 0)
	for rows.Next() {
		f, err := scanFailure(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scan side effect failure")
		}
		out = append(out, f)
	}
	return out, errors.Wrap(rows.Err(), "list side effect failures")
}

func (r *SideEffectFailureRepository) Get(ctx context.Context, intentID string) (entities.SideEffectFailure, error) {
	f, err := scanFailure(r.db.QueryRow(ctx, `SELECT `+failureColumns+` FROM side_effect_failures WHERE intent_id = $1`, intentID))
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.SideEffectFailure{}, nil
	}
	if err != nil {
		return entities.SideEffectFailure{}, errors.Wrap(err, "get side effect failure")
	}
	return f, nil
}

func (r *SideEffectFailureRepository) Resolve(ctx context.Context, intentID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM side_effect_failures WHERE intent_id = $1`, intentID)
	return errors.Wrap(err, "resolve side effect failure")
}

func scanFailure(row pgx.Row) (entities.SideEffectFailure, error) {
	var (
		f     entities.SideEffectFailure
		stage string
	)
	if err := row.Scan(&f.IntentID, &f.BuyerID, &f.CourseID, &stage, &f.Error, &f.Attempts, &f.FailedAt, &f.InvoiceID); err != nil {
		return entities.SideEffectFailure{}, err
	}
	f.Stage = entities.SideEffectStage(stage)
	f.FailedAt = f.FailedAt.UTC()
	return f, nil
}
