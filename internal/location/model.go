package location

import (
	"time"

	"gopkg.in/guregu/null.v4"
)

type Location struct {
	ID        int       `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Address   string    `db:"address" json:"address"`
	OwnerID   int       `db:"owner_id" json:"ownerId"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// CourtInfo is the court row embedded in location listings.
type CourtInfo struct {
	ID          int         `db:"id" json:"id"`
	Name        string      `db:"name" json:"name"`
	Sport       string      `db:"sport" json:"sport"`
	Description null.String `db:"description" json:"description"`
	MaxPlayers  int         `db:"max_players" json:"maxPlayers"`
	PriceCents  int64       `db:"price_cents" json:"priceCents"`
}

type LocationWithCourts struct {
	Location
	Courts []CourtInfo `json:"courts"`
}

type CreateLocationRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
	OwnerID int    `json:"ownerId" binding:"required"`
}
