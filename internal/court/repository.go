package court

import (
	"context"

	"github.com/jmoiron/sqlx"
	"gopkg.in/guregu/null.v4"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, name, sport string, description null.String, maxPlayers int, priceCents int64, locationID int) (*Court, error) {
	query := `
		INSERT INTO courts (name, sport, description, max_players, price_cents, location_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, sport, description, max_players, price_cents, location_id, created_at
	`

	var court Court
	err := r.db.GetContext(ctx, &court, query, name, sport, description, maxPlayers, priceCents, locationID)
	if err != nil {
		return nil, err
	}

	return &court, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Court, error) {
	query := `
		SELECT id, name, sport, description, max_players, price_cents, location_id, created_at
		FROM courts
		WHERE id = $1
	`

	var court Court
	err := r.db.GetContext(ctx, &court, query, id)
	if err != nil {
		return nil, err
	}

	return &court, nil
}

func (r *repository) ListWithLocation(ctx context.Context) ([]CourtWithLocation, error) {
	query := `
		SELECT
			c.id,
			c.name,
			c.sport,
			c.description,
			c.max_players,
			c.price_cents,
			c.location_id,
			c.created_at,
			l.name AS location_name,
			l.address AS location_address
		FROM courts c
		JOIN locations l ON c.location_id = l.id
		ORDER BY c.created_at DESC
	`

	var courts []CourtWithLocation
	err := r.db.SelectContext(ctx, &courts, query)
	if err != nil {
		return nil, err
	}

	return courts, nil
}

func (r *repository) ListByLocation(ctx context.Context, locationID int) ([]Court, error) {
	query := `
		SELECT id, name, sport, description, max_players, price_cents, location_id, created_at
		FROM courts
		WHERE location_id = $1
		ORDER BY created_at DESC
	`

	var courts []Court
	err := r.db.SelectContext(ctx, &courts, query, locationID)
	if err != nil {
		return nil, err
	}

	return courts, nil
}
