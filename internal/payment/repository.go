package payment

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Record(ctx context.Context, bookingID, userID int, amountCents int64) (*Payment, error) {
	query := `
		INSERT INTO payments (booking_id, user_id, amount_cents)
		VALUES ($1, $2, $3)
		RETURNING id, booking_id, user_id, amount_cents, created_at
	`

	var p Payment
	err := r.db.GetContext(ctx, &p, query, bookingID, userID, amountCents)
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *repository) ListByUser(ctx context.Context, userID int) ([]Payment, error) {
	query := `
		SELECT id, booking_id, user_id, amount_cents, created_at
		FROM payments
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	var payments []Payment
	err := r.db.SelectContext(ctx, &payments, query, userID)
	if err != nil {
		return nil, err
	}

	return payments, nil
}
