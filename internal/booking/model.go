package booking

import "time"

type Booking struct {
	ID        int       `db:"id" json:"id"`
	UserID    int       `db:"user_id" json:"userId"`
	SlotID    int       `db:"slot_id" json:"slotId"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

type LocationDetails struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

type CourtDetails struct {
	ID         int              `json:"id"`
	Name       string           `json:"name"`
	Sport      string           `json:"sport"`
	PriceCents int64            `json:"priceCents"`
	Location   *LocationDetails `json:"location,omitempty"`
}

type SlotDetails struct {
	ID    int           `json:"id"`
	Start time.Time     `json:"start"`
	End   time.Time     `json:"end"`
	Court *CourtDetails `json:"court,omitempty"`
}

type UserDetails struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// BookingDetails is a booking expanded with slot, court and location data
// for display. Court and location are optional: a slot whose court or
// location is missing still renders with whatever exists.
type BookingDetails struct {
	Booking
	Slot SlotDetails  `json:"slot"`
	User *UserDetails `json:"user,omitempty"`
}

type CreateBookingRequest struct {
	UserID int `json:"userId" binding:"required"`
	SlotID int `json:"slotId" binding:"required"`
}

type DayStat struct {
	Day   time.Time `db:"day" json:"day"`
	Count int       `db:"count" json:"count"`
}

type LocationStat struct {
	LocationID   int    `db:"location_id" json:"locationId"`
	LocationName string `db:"location_name" json:"locationName"`
	Count        int    `db:"count" json:"count"`
}
