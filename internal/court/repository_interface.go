package court

import (
	"context"

	"gopkg.in/guregu/null.v4"
)

type Repository interface {
	Create(ctx context.Context, name, sport string, description null.String, maxPlayers int, priceCents int64, locationID int) (*Court, error)
	GetByID(ctx context.Context, id int) (*Court, error)
	ListWithLocation(ctx context.Context) ([]CourtWithLocation, error)
	ListByLocation(ctx context.Context, locationID int) ([]Court, error)
}
