package repository

import (
	"context"
	"errors"
	"fmt"

	"seat-reservation/internal/data/entity"
	"seat-reservation/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// BookingFilter narrows FindAll results. Nil fields are ignored.
type BookingFilter struct {
	EventID *uuid.UUID
	Status  *entity.BookingStatus
}

type BookingRepository interface {
	// ReserveSeat runs the atomic check-then-insert for one seat. On return
	// the booking either fully exists with status confirmed, or nothing was
	// written. Returns ErrNotFound when the event does not exist and
	// ErrSeatTaken when a confirmed booking already holds the seat.
	ReserveSeat(ctx context.Context, booking *entity.Booking) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindAll(ctx context.Context, filter BookingFilter) ([]*entity.Booking, error)
	OccupiedSeats(ctx context.Context, eventID uuid.UUID) ([]int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, event_id, seat_number, full_name, email, phone, price, status, created_at, updated_at`

func (r *bookingRepository) ReserveSeat(ctx context.Context, booking *entity.Booking) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin reserve transaction", zap.Error(err))
		return fmt.Errorf("begin reserve transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Lock the event row. This serializes concurrent reserves per event and
	// doubles as the existence check.
	var eventID uuid.UUID
	err = tx.QueryRow(ctx, `SELECT id FROM events WHERE id = $1 FOR UPDATE`, booking.EventID).Scan(&eventID)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("event %s: %w", booking.EventID.String(), ErrNotFound)
	}
	if err != nil {
		r.log.Error("Failed to lock event row",
			zap.Error(err),
			zap.String("event_id", booking.EventID.String()),
		)
		return fmt.Errorf("lock event %s: %w", booking.EventID.String(), err)
	}

	var taken bool
	err = tx.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM bookings
			WHERE event_id = $1 AND seat_number = $2 AND status = 'confirmed'
		)
	`, booking.EventID, booking.SeatNumber).Scan(&taken)
	if err != nil {
		r.log.Error("Failed to check seat occupancy",
			zap.Error(err),
			zap.String("event_id", booking.EventID.String()),
			zap.Int("seat_number", booking.SeatNumber),
		)
		return fmt.Errorf("check seat %d: %w", booking.SeatNumber, err)
	}
	if taken {
		return fmt.Errorf("seat %d: %w", booking.SeatNumber, ErrSeatTaken)
	}

	// Timestamps are store-assigned so ordering follows commit order.
	err = tx.QueryRow(ctx, `
		INSERT INTO bookings (id, event_id, seat_number, full_name, email, phone, price, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 'confirmed', NOW(), NOW())
		RETURNING created_at, updated_at
	`,
		booking.ID,
		booking.EventID,
		booking.SeatNumber,
		booking.FullName,
		booking.Email,
		booking.Phone,
		booking.Price,
	).Scan(&booking.CreatedAt, &booking.UpdatedAt)

	if err != nil {
		// The partial unique index on (event_id, seat_number) for confirmed
		// rows is the backstop for reserves racing on different connections.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("seat %d: %w", booking.SeatNumber, ErrSeatTaken)
		}
		r.log.Error("Failed to insert booking",
			zap.Error(err),
			zap.String("event_id", booking.EventID.String()),
			zap.Int("seat_number", booking.SeatNumber),
		)
		return fmt.Errorf("insert booking: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit reserve transaction", zap.Error(err))
		return fmt.Errorf("commit reserve transaction: %w", err)
	}

	booking.Status = entity.BookingStatusConfirmed
	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	var booking entity.Booking
	err := r.db.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.EventID,
		&booking.SeatNumber,
		&booking.FullName,
		&booking.Email,
		&booking.Phone,
		&booking.Price,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return &booking, nil
}

func (r *bookingRepository) FindAll(ctx context.Context, filter BookingFilter) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings`
	args := []any{}
	where := ""

	if filter.EventID != nil {
		args = append(args, *filter.EventID)
		where = fmt.Sprintf(" WHERE event_id = $%d", len(args))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		if where == "" {
			where = fmt.Sprintf(" WHERE status = $%d", len(args))
		} else {
			where += fmt.Sprintf(" AND status = $%d", len(args))
		}
	}

	query += where + ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find bookings", zap.Error(err))
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		var booking entity.Booking
		err := rows.Scan(
			&booking.ID,
			&booking.EventID,
			&booking.SeatNumber,
			&booking.FullName,
			&booking.Email,
			&booking.Phone,
			&booking.Price,
			&booking.Status,
			&booking.CreatedAt,
			&booking.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &booking)
	}

	return bookings, nil
}

func (r *bookingRepository) OccupiedSeats(ctx context.Context, eventID uuid.UUID) ([]int, error) {
	query := `
		SELECT seat_number FROM bookings
		WHERE event_id = $1 AND status = 'confirmed'
		ORDER BY seat_number
	`

	rows, err := r.db.Query(ctx, query, eventID)
	if err != nil {
		r.log.Error("Failed to query occupied seats",
			zap.Error(err),
			zap.String("event_id", eventID.String()),
		)
		return nil, fmt.Errorf("occupied seats for event %s: %w", eventID.String(), err)
	}
	defer rows.Close()

	var seats []int
	for rows.Next() {
		var seat int
		if err := rows.Scan(&seat); err != nil {
			r.log.Error("Failed to scan seat number", zap.Error(err))
			return nil, fmt.Errorf("scan seat number: %w", err)
		}
		seats = append(seats, seat)
	}

	return seats, nil
}

// UpdateStatus flips a booking's status. The WHERE clause matches on id only,
// so setting an already-cancelled booking to cancelled is a no-op success.
func (r *bookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error {
	query := `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %s status to %s: %w", id.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s: %w", id.String(), ErrNotFound)
	}

	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM bookings WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return fmt.Errorf("delete booking %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s: %w", id.String(), ErrNotFound)
	}

	r.log.Info("Booking deleted", zap.String("booking_id", id.String()))
	return nil
}
