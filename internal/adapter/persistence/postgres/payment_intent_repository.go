package postgres

import (
	"context"
	"time"

	"learnhub_checkout/internal/domain/entities"
	"learnhub_checkout/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

const intentColumns = `id, buyer_id, course_id, amount, currency, settlement_amount, settlement_currency,
	gateway, status, external_ref, checkout_session_id, created_at, updated_at`

type PaymentIntentRepository struct {
	db DBTX
}

var _ interfaces.IPaymentIntentRepository = (*PaymentIntentRepository)(nil)

func NewPaymentIntentRepository(db DBTX) *PaymentIntentRepository {
	return &PaymentIntentRepository{db: db}
}

func (r *PaymentIntentRepository) Insert(ctx context.Context, p entities.PaymentIntent) error {
	_, err := r.db.Exec(ctx, `INSERT INTO payment_intents (`+intentColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		p.ID, p.BuyerID, p.CourseID, p.Amount, p.Currency, p.SettlementAmount, p.SettlementCurrency,
		string(p.Gateway), string(p.Status), p.ExternalRef, p.CheckoutSessionID, p.CreatedAt.UTC(), p.UpdatedAt.UTC())
	if err != nil {
		if isUniqueViolation(err) {
			return interfaces.ErrIntentAlreadyExists
		}
		return errors.Wrap(err, "insert payment intent")
	}
	return nil
}

func (r *PaymentIntentRepository) GetByID(ctx context.Context, id string) (entities.PaymentIntent, error) {
	row := r.db.QueryRow(ctx, `SELECT `+intentColumns+` FROM payment_intents WHERE id = $1`, id)
	p, err := scanPaymentIntent(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.PaymentIntent{}, nil
	}
	if err != nil {
		return entities.PaymentIntent{}, errors.Wrap(err, "get payment intent")
	}
	return p, nil
}

// CompareAndTransition is one UPDATE guarded by the expected status. When no row
// matches, the current row is read to tell "missing" from "already moved".
func (r *PaymentIntentRepository) CompareAndTransition(ctx context.Context, id string, from, to entities.PaymentStatus, externalRef string) (entities.PaymentIntent, error) {
	row := r.db.QueryRow(ctx, `UPDATE payment_intents
		SET status = $3,
		    external_ref = CASE WHEN $4::text = '' THEN external_ref ELSE $4::text END,
		    updated_at = $5
		WHERE id = $1 AND status = $2
		RETURNING `+intentColumns,
		id, string(from), string(to), externalRef, time.Now().UTC())
	updated, err := scanPaymentIntent(row)
	if err == nil {
		return updated, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return entities.PaymentIntent{}, errors.Wrap(err, "transition payment intent")
	}

	current, err := r.GetByID(ctx, id)
	if err != nil {
		return entities.PaymentIntent{}, err
	}
	switch {
	case current.ID == "":
		return entities.PaymentIntent{}, interfaces.ErrIntentNotFound
	case current.Status.Terminal():
		return current, interfaces.ErrIntentAlreadyTerminal
	default:
		return current, interfaces.ErrIntentStatusConflict
	}
}

func (r *PaymentIntentRepository) ListByStatus(ctx context.Context, status entities.PaymentStatus) ([]entities.PaymentIntent, error) {
	rows, err := r.db.Query(ctx, `SELECT `+intentColumns+` FROM payment_intents WHERE status = $1 ORDER BY created_at`, string(status))
	if err != nil {
		return nil, errors.Wrap(err, "list payment intents")
	}
	defer rows.Close()

	out := make([]entities.PaymentIntent, 0)
	for rows.Next() {
		p, err := scanPaymentIntent(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scan payment intent")
		}
		out = append(out, p)
	}
	return out, errors.Wrap(rows.Err(), "list payment intents")
}

func scanPaymentIntent(row pgx.Row) (entities.PaymentIntent, error) {
	var (
		p       entities.PaymentIntent
		gateway string
		status  string
	)
	err := row.Scan(&p.ID, &p.BuyerID, &p.CourseID, &p.Amount, &p.Currency, &p.SettlementAmount, &p.SettlementCurrency,
		&gateway, &status, &p.ExternalRef, &p.CheckoutSessionID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return entities.PaymentIntent{}, err
	}
	p.Gateway = entities.Gateway(gateway)
	p.Status = entities.PaymentStatus(status)
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	return p, nil
}
