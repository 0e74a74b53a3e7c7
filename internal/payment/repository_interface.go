package payment

import "context"

type Repository interface {
	Record(ctx context.Context, bookingID, userID int, amountCents int64) (*Payment, error)
	ListByUser(ctx context.Context, userID int) ([]Payment, error)
}
