package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"gotix-api/core/database"
	"gotix-api/core/logger"
	"gotix-api/core/params"
	"gotix-api/modules/booking/entity"
)

type BookingRepositoryInterface interface {
	Create(ctx context.Context, booking *entity.Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	GetByUserID(ctx context.Context, userID uuid.UUID, params params.QueryParams) (*entity.PaginatedBookingEntity, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	SumQuantityForEvent(ctx context.Context, eventID uuid.UUID) (int, error)
	CancelStalePending(ctx context.Context, olderThan time.Time) (int, error)
}

type BookingRepository struct {
	db database.Database
}

func NewBookingRepository(db database.Database) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (reference, event_id, user_id, quantity, status, created_at, updated_at)
		VALUES (:reference, :event_id, :user_id, :quantity, :status, :created_at, :updated_at)
		RETURNING id
	`
	rows, err := r.db.NamedQueryContext(ctx, query, booking)
	if err != nil {
		logger.Error("BookingRepository:Create:Error", "error", err)
		return err
	}
	defer rows.Close()

	if rows.Next() {
		return rows.Scan(&booking.ID)
	}
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	var booking entity.Booking
	err := r.db.GetContext(ctx, &booking, `SELECT * FROM bookings WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Error("BookingRepository:GetByID:Error", "error", err)
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepository) GetByUserID(ctx context.Context, userID uuid.UUID, params params.QueryParams) (*entity.PaginatedBookingEntity, error) {
	offset := (params.PageNumber - 1) * params.PageSize

	baseQuery := `FROM bookings WHERE user_id = $1`

	var totalItems int
	err := r.db.GetContext(ctx, &totalItems, "SELECT COUNT(*) "+baseQuery, userID)
	if err != nil {
		logger.Error("BookingRepository:GetByUserID:Count:Error", "error", err)
		return nil, err
	}

	query := `
		SELECT * ` + baseQuery + `
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	var bookings []entity.Booking
	err = r.db.SelectContext(ctx, &bookings, query, userID, params.PageSize, offset)
	if err != nil {
		logger.Error("BookingRepository:GetByUserID:Select:Error", "error", err)
		return nil, err
	}

	return &entity.PaginatedBookingEntity{
		Items:      bookings,
		TotalItems: totalItems,
		PageNumber: params.PageNumber,
		PageSize:   params.PageSize,
	}, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	err := r.db.ExecContext(ctx,
		`UPDATE bookings SET status = $1, updated_at = now() WHERE id = $2`, status, id)
	if err != nil {
		logger.Error("BookingRepository:UpdateStatus:Error", "error", err)
		return err
	}
	return nil
}

// SumQuantityForEvent counts tickets already taken by non-cancelled bookings.
func (r *BookingRepository) SumQuantityForEvent(ctx context.Context, eventID uuid.UUID) (int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		`SELECT COALESCE(SUM(quantity), 0) FROM bookings WHERE event_id = $1 AND status != $2`,
		eventID, entity.BookingStatusCancelled)
	if err != nil {
		logger.Error("BookingRepository:SumQuantityForEvent:Error", "error", err)
		return 0, err
	}
	return total, nil
}

// CancelStalePending cancels pending bookings created before the cutoff and
// returns how many were affected.
func (r *BookingRepository) CancelStalePending(ctx context.Context, olderThan time.Time) (int, error) {
	var ids []uuid.UUID
	err := r.db.SelectContext(ctx, &ids,
		`UPDATE bookings SET status = $1, updated_at = now()
		 WHERE status = $2 AND created_at < $3
		 RETURNING id`,
		entity.BookingStatusCancelled, entity.BookingStatusPending, olderThan)
	if err != nil {
		logger.Error("BookingRepository:CancelStalePending:Error", "error", err)
		return 0, err
	}
	return len(ids), nil
}
