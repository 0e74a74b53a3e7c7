package location

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

func (r *repository) Create(ctx context.Context, name, address string, ownerID int) (*Location, error) {
	query := `
		INSERT INTO locations (name, address, owner_id)
		VALUES ($1, $2, $3)
		RETURNING id, name, address, owner_id, created_at
	`

	var loc Location
	err := r.db.GetContext(ctx, &loc, query, name, address, ownerID)
	if err != nil {
		return nil, err
	}

	return &loc, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Location, error) {
	query := `
		SELECT id, name, address, owner_id, created_at
		FROM locations
		WHERE id = $1
	`

	var loc Location
	err := r.db.GetContext(ctx, &loc, query, id)
	if err != nil {
		return nil, err
	}

	return &loc, nil
}

// locationCourtRow is the flat LEFT JOIN row; court columns are null for
// locations that have no courts yet.
type locationCourtRow struct {
	Location
	CourtID     null.Int    `db:"court_id"`
	CourtName   null.String `db:"court_name"`
	Sport       null.String `db:"sport"`
	Description null.String `db:"description"`
	MaxPlayers  null.Int    `db:"max_players"`
	PriceCents  null.Int    `db:"price_cents"`
}

const listWithCourtsQuery = `
	SELECT
		l.id,
		l.name,
		l.address,
		l.owner_id,
		l.created_at,
		c.id AS court_id,
		c.name AS court_name,
		c.sport,
		c.description,
		c.max_players,
		c.price_cents
	FROM locations l
	LEFT JOIN courts c ON c.location_id = l.id
`

func (r *repository) ListWithCourts(ctx context.Context) ([]LocationWithCourts, error) {
	var rows []locationCourtRow
	err := r.db.SelectContext(ctx, &rows, listWithCourtsQuery+` ORDER BY l.created_at DESC, c.id ASC`)
	if err != nil {
		return nil, err
	}

	return groupRows(rows), nil
}

func (r *repository) ListByOwner(ctx context.Context, ownerID int) ([]LocationWithCourts, error) {
	var rows []locationCourtRow
	err := r.db.SelectContext(ctx, &rows,
		listWithCourtsQuery+` WHERE l.owner_id = $1 ORDER BY l.created_at DESC, c.id ASC`,
		ownerID,
	)
	if err != nil {
		return nil, err
	}

	return groupRows(rows), nil
}

func groupRows(rows []locationCourtRow) []LocationWithCourts {
	result := make([]LocationWithCourts, 0)
	index := make(map[int]int)

	for _, row := range rows {
		i, seen := index[row.ID]
		if !seen {
			result = append(result, LocationWithCourts{
				Location: row.Location,
				Courts:   []CourtInfo{},
			})
			i = len(result) - 1
			index[row.ID] = i
		}

		if row.CourtID.Valid {
			result[i].Courts = append(result[i].Courts, CourtInfo{
				ID:          int(row.CourtID.Int64),
				Name:        row.CourtName.String,
				Sport:       row.Sport.String,
				Description: row.Description,
				MaxPlayers:  int(row.MaxPlayers.Int64),
				PriceCents:  row.PriceCents.Int64,
			})
		}
	}

	return result
}
