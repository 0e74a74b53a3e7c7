package booking

import (
	"context"
	"time"
)

func (r *repository) StatsByDay(ctx context.Context, from, to time.Time) ([]DayStat, error) {
	query := `
		SELECT
			date_trunc('day', b.created_at) AS day,
			COUNT(*) AS count
		FROM bookings b
		WHERE b.created_at >= $1 AND b.created_at < $2
		GROUP BY 1
		ORDER BY 1
	`

	var stats []DayStat
	err := r.db.SelectContext(ctx, &stats, query, from, to)
	if err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *repository) StatsByLocation(ctx context.Context, from, to time.Time) ([]LocationStat, error) {
	query := `
		SELECT
			l.id AS location_id,
			l.name AS location_name,
			COUNT(*) AS count
		FROM bookings b
		JOIN slots s ON b.slot_id = s.id
		JOIN courts c ON s.court_id = c.id
		JOIN locations l ON c.location_id = l.id
		WHERE b.created_at >= $1 AND b.created_at < $2
		GROUP BY l.id, l.name
		ORDER BY count DESC
	`

	var stats []LocationStat
	err := r.db.SelectContext(ctx, &stats, query, from, to)
	if err != nil {
		return nil, err
	}

	return stats, nil
}
