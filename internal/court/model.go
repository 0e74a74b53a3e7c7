package court

import (
	"time"

	"gopkg.in/guregu/null.v4"
)

type Court struct {
	ID          int         `db:"id" json:"id"`
	Name        string      `db:"name" json:"name"`
	Sport       string      `db:"sport" json:"sport"`
	Description null.String `db:"description" json:"description"`
	MaxPlayers  int         `db:"max_players" json:"maxPlayers"`
	PriceCents  int64       `db:"price_cents" json:"priceCents"`
	LocationID  int         `db:"location_id" json:"locationId"`
	CreatedAt   time.Time   `db:"created_at" json:"createdAt"`
}

type CourtWithLocation struct {
	Court
	LocationName    string `db:"location_name" json:"locationName"`
	LocationAddress string `db:"location_address" json:"locationAddress"`
}

type CreateCourtRequest struct {
	Name        string `json:"name" binding:"required"`
	Sport       string `json:"sport" binding:"required"`
	Description string `json:"description"`
	MaxPlayers  int    `json:"maxPlayers" binding:"required,min=1"`
	PriceCents  int64  `json:"priceCents" binding:"required,min=0"`
	LocationID  int    `json:"locationId" binding:"required"`
}
