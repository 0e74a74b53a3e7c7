package slot

import "time"

// Slot is a bookable interval on a court. IsBooked only ever moves from
// false to true; there is no cancellation flow that reverts it.
type Slot struct {
	ID        int       `db:"id" json:"id"`
	CourtID   int       `db:"court_id" json:"courtId"`
	Start     time.Time `db:"start_time" json:"start"`
	End       time.Time `db:"end_time" json:"end"`
	IsBooked  bool      `db:"is_booked" json:"isBooked"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

type NewSlot struct {
	CourtID int       `json:"courtId" validate:"required"`
	Start   time.Time `json:"start" validate:"required"`
	End     time.Time `json:"end" validate:"required,gtfield=Start"`
}

type BulkCreateRequest struct {
	Slots []NewSlot `json:"slots" binding:"required,min=1"`
}

type GenerateResponse struct {
	Message string `json:"message" example:"Slots generated successfully"`
	Count   int    `json:"count" example:"112"`
}
