package payment

import "time"

// Payment is a simulated receipt written when a booking succeeds. No real
// payment processing happens anywhere in this service.
type Payment struct {
	ID          int       `db:"id" json:"id"`
	BookingID   int       `db:"booking_id" json:"bookingId"`
	UserID      int       `db:"user_id" json:"userId"`
	AmountCents int64     `db:"amount_cents" json:"amountCents"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}
