package repository

import (
	"context"
	"database/sql"
	"strconv"

	"github.com/oceanview/resort-api/internal/model"
)

// ReservationRepo provides persistence for reservations.  Reference IDs
// are numeric strings assigned by the repository at insert time,
// starting at 1001 and increasing by one per booking; once assigned they
// never change.  All timestamp fields are stored in UTC.
type ReservationRepo struct {
	db *sql.DB
}

// NewReservationRepo returns a new ReservationRepo bound to the given database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

const firstReferenceID = 1001

// Create inserts a reservation, assigning the next reference ID.  The
// insert and the reference computation run inside one transaction so two
// concurrent bookings cannot claim the same reference.  The assigned
// reference and row ID are written back onto res.
func (r *ReservationRepo) Create(ctx context.Context, res *model.Reservation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	// Lock the current maximum so concurrent creates serialize here.
	var maxRef sql.NullInt64
	err = tx.QueryRowContext(ctx,
		`SELECT MAX(CAST(reference_id AS UNSIGNED)) FROM reservations FOR UPDATE`,
	).Scan(&maxRef)
	if err != nil {
		return err
	}
	next := int64(firstReferenceID)
	if maxRef.Valid {
		next = maxRef.Int64 + 1
	}
	res.ReferenceID = strconv.FormatInt(next, 10)

	result, err := tx.ExecContext(ctx,
		`INSERT INTO reservations
		   (reference_id, guest_name, address, phone, room_type, board_type,
		    check_in_date, check_out_date, total_bill)
		 VALUES (?,?,?,?,?,?,?,?,?)`,
		res.ReferenceID, res.GuestName, res.Address, res.Phone,
		res.RoomType, res.BoardType, res.CheckInDate, res.CheckOutDate, res.TotalBill)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	res.ID = uint64(id)

	return tx.Commit()
}

const reservationCols = `id, reference_id, guest_name, address, phone,
	room_type, board_type,
	DATE_FORMAT(check_in_date, '%Y-%m-%d'), DATE_FORMAT(check_out_date, '%Y-%m-%d'),
	total_bill, created_at`

func scanReservation(row interface{ Scan(...interface{}) error }) (model.Reservation, error) {
	var res model.Reservation
	var bill sql.NullInt64
	err := row.Scan(&res.ID, &res.ReferenceID, &res.GuestName, &res.Address, &res.Phone,
		&res.RoomType, &res.BoardType, &res.CheckInDate, &res.CheckOutDate,
		&bill, &res.CreatedAt)
	if err != nil {
		return model.Reservation{}, err
	}
	if bill.Valid {
		b := bill.Int64
		res.TotalBill = &b
	}
	return res, nil
}

// List returns all reservations, newest first.  When none exist an
// empty slice is returned rather than nil so the JSON encoding is
// always an array.
func (r *ReservationRepo) List(ctx context.Context) ([]model.Reservation, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+reservationCols+` FROM reservations ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByReferenceID fetches a single reservation for invoice lookup.
// ErrNotFound is returned when no booking carries the reference.
func (r *ReservationRepo) GetByReferenceID(ctx context.Context, refID string) (model.Reservation, error) {
	res, err := scanReservation(r.db.QueryRowContext(ctx,
		`SELECT `+reservationCols+` FROM reservations WHERE reference_id = ? LIMIT 1`, refID))
	if err == sql.ErrNoRows {
		return model.Reservation{}, ErrNotFound
	}
	return res, err
}

// Stats aggregates the dashboard numbers: total bookings, total revenue
// and how many rooms are occupied tonight.  today is a YYYY-MM-DD
// string; a reservation occupies a room on every night of
// [check_in_date, check_out_date).
func (r *ReservationRepo) Stats(ctx context.Context, today string) (bookings, revenue, occupiedTonight int64, err error) {
	err = r.db.QueryRowContext(ctx,
		`SELECT COUNT(*),
		        COALESCE(SUM(total_bill), 0),
		        COALESCE(SUM(check_in_date <= ? AND check_out_date > ?), 0)
		 FROM reservations`,
		today, today).Scan(&bookings, &revenue, &occupiedTonight)
	return bookings, revenue, occupiedTonight, err
}
