package booking

import (
	"context"
	"time"
)

type Repository interface {
	// Reserve atomically flips the slot from free to booked and inserts
	// the booking row. Exactly one of any set of concurrent calls for the
	// same slot succeeds; the rest get ErrSlotAlreadyBooked.
	Reserve(ctx context.Context, userID, slotID int) (*Booking, error)

	GetDetailsByID(ctx context.Context, id int) (*BookingDetails, error)
	ListByUser(ctx context.Context, userID int) ([]BookingDetails, error)
	ListAll(ctx context.Context) ([]BookingDetails, error)
	CountBySlot(ctx context.Context, slotID int) (int, error)

	StatsByDay(ctx context.Context, from, to time.Time) ([]DayStat, error)
	StatsByLocation(ctx context.Context, from, to time.Time) ([]LocationStat, error)
}
