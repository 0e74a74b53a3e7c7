package slot

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

const (
	gridDays      = 7
	gridOpenHour  = 6
	gridCloseHour = 22
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateBatch(ctx context.Context, slots []NewSlot) (int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	for _, s := range slots {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO slots (court_id, start_time, end_time) VALUES ($1, $2, $3)`,
			s.CourtID, s.Start, s.End,
		)
		if err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	return len(slots), nil
}

// GenerateForCourt fills the next gridDays days with one-hour slots on the
// gridOpenHour..gridCloseHour grid, starting from the day of `from`.
func (r *repository) GenerateForCourt(ctx context.Context, courtID int, from time.Time) (int, error) {
	var slots []NewSlot
	for day := 0; day < gridDays; day++ {
		date := from.AddDate(0, 0, day)
		for hour := gridOpenHour; hour < gridCloseHour; hour++ {
			start := time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, from.Location())
			slots = append(slots, NewSlot{
				CourtID: courtID,
				Start:   start,
				End:     start.Add(time.Hour),
			})
		}
	}

	return r.CreateBatch(ctx, slots)
}

func (r *repository) GetByID(ctx context.Context, id int) (*Slot, error) {
	query := `
		SELECT id, court_id, start_time, end_time, is_booked, created_at
		FROM slots
		WHERE id = $1
	`

	var s Slot
	err := r.db.GetContext(ctx, &s, query, id)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *repository) ListByCourt(ctx context.Context, courtID int) ([]Slot, error) {
	query := `
		SELECT id, court_id, start_time, end_time, is_booked, created_at
		FROM slots
		WHERE court_id = $1
		ORDER BY start_time ASC
	`

	var slots []Slot
	err := r.db.SelectContext(ctx, &slots, query, courtID)
	if err != nil {
		return nil, err
	}

	return slots, nil
}
