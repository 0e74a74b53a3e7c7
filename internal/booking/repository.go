package booking

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
	"gopkg.in/guregu/null.v4"
)

var (
	ErrSlotNotFound      = errors.New("slot not found")
	ErrSlotAlreadyBooked = errors.New("slot already booked")
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// Reserve performs the free-to-booked transition and the booking insert in
// one transaction. The transition itself is a single conditional UPDATE
// keyed on the still-false flag, so the store serializes racing callers:
// one matches the row, the rest match nothing and are told the slot is
// taken. No in-process locking; this works across processes sharing the
// database.
func (r *repository) Reserve(ctx context.Context, userID, slotID int) (*Booking, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`UPDATE slots SET is_booked = TRUE WHERE id = $1 AND is_booked = FALSE`,
		slotID,
	)
	if err != nil {
		return nil, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}

	if rowsAffected == 0 {
		// Either the slot never existed or someone else won it. Slots are
		// never deleted, so the probe distinguishes the two reliably.
		var exists bool
		if err := tx.GetContext(ctx, &exists,
			`SELECT EXISTS(SELECT 1 FROM slots WHERE id = $1)`, slotID,
		); err != nil {
			return nil, err
		}
		if !exists {
			return nil, ErrSlotNotFound
		}
		return nil, ErrSlotAlreadyBooked
	}

	var b Booking
	err = tx.GetContext(ctx, &b,
		`INSERT INTO bookings (user_id, slot_id)
		 VALUES ($1, $2)
		 RETURNING id, user_id, slot_id, created_at`,
		userID, slotID,
	)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &b, nil
}

// bookingRow is the flat join row behind BookingDetails. Court and location
// columns come from LEFT JOINs and may be null.
type bookingRow struct {
	Booking
	SlotStart       null.Time   `db:"slot_start"`
	SlotEnd         null.Time   `db:"slot_end"`
	CourtID         null.Int    `db:"court_id"`
	CourtName       null.String `db:"court_name"`
	Sport           null.String `db:"sport"`
	PriceCents      null.Int    `db:"price_cents"`
	LocationID      null.Int    `db:"b_location_id"`
	LocationName    null.String `db:"location_name"`
	LocationAddress null.String `db:"location_address"`
	UserName        null.String `db:"user_name"`
	UserEmail       null.String `db:"user_email"`
}

const detailsQuery = `
	SELECT
		b.id,
		b.user_id,
		b.slot_id,
		b.created_at,
		s.start_time AS slot_start,
		s.end_time AS slot_end,
		c.id AS court_id,
		c.name AS court_name,
		c.sport,
		c.price_cents,
		l.id AS b_location_id,
		l.name AS location_name,
		l.address AS location_address,
		u.name AS user_name,
		u.email AS user_email
	FROM bookings b
	JOIN slots s ON b.slot_id = s.id
	LEFT JOIN courts c ON s.court_id = c.id
	LEFT JOIN locations l ON c.location_id = l.id
	LEFT JOIN users u ON b.user_id = u.id
`

func (row bookingRow) toDetails(includeUser bool) BookingDetails {
	d := BookingDetails{
		Booking: row.Booking,
		Slot: SlotDetails{
			ID:    row.SlotID,
			Start: row.SlotStart.Time,
			End:   row.SlotEnd.Time,
		},
	}

	if row.CourtID.Valid {
		court := &CourtDetails{
			ID:         int(row.CourtID.Int64),
			Name:       row.CourtName.String,
			Sport:      row.Sport.String,
			PriceCents: row.PriceCents.Int64,
		}
		if row.LocationID.Valid {
			court.Location = &LocationDetails{
				ID:      int(row.LocationID.Int64),
				Name:    row.LocationName.String,
				Address: row.LocationAddress.String,
			}
		}
		d.Slot.Court = court
	}

	if includeUser && row.UserName.Valid {
		d.User = &UserDetails{
			ID:    row.UserID,
			Name:  row.UserName.String,
			Email: row.UserEmail.String,
		}
	}

	return d
}

func (r *repository) GetDetailsByID(ctx context.Context, id int) (*BookingDetails, error) {
	var row bookingRow
	err := r.db.GetContext(ctx, &row, detailsQuery+` WHERE b.id = $1`, id)
	if err != nil {
		return nil, err
	}

	details := row.toDetails(false)
	return &details, nil
}

func (r *repository) ListByUser(ctx context.Context, userID int) ([]BookingDetails, error) {
	var rows []bookingRow
	err := r.db.SelectContext(ctx, &rows,
		detailsQuery+` WHERE b.user_id = $1 ORDER BY b.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}

	details := make([]BookingDetails, 0, len(rows))
	for _, row := range rows {
		details = append(details, row.toDetails(false))
	}
	return details, nil
}

func (r *repository) ListAll(ctx context.Context) ([]BookingDetails, error) {
	var rows []bookingRow
	err := r.db.SelectContext(ctx, &rows, detailsQuery+` ORDER BY b.created_at DESC`)
	if err != nil {
		return nil, err
	}

	details := make([]BookingDetails, 0, len(rows))
	for _, row := range rows {
		details = append(details, row.toDetails(true))
	}
	return details, nil
}

func (r *repository) CountBySlot(ctx context.Context, slotID int) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM bookings WHERE slot_id = $1`, slotID,
	)
	if err != nil {
		return 0, err
	}

	return count, nil
}
