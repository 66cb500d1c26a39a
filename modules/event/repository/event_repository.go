package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/google/uuid"

	"gotix-api/core/database"
	"gotix-api/core/logger"
	"gotix-api/modules/event/entity"
)

const eventsTable = "events"

var dialect = goqu.Dialect("postgres")

type EventRepositoryInterface interface {
	Count(ctx context.Context, predicate goqu.Expression) (int, error)
	Find(ctx context.Context, predicate goqu.Expression, offset, limit int) ([]entity.Event, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	Create(ctx context.Context, event *entity.Event) error
	Update(ctx context.Context, event *entity.Event) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type EventRepository struct {
	db database.Database
}

func NewEventRepository(db database.Database) *EventRepository {
	return &EventRepository{db: db}
}

// Count returns the number of catalog rows matching the predicate.
func (r *EventRepository) Count(ctx context.Context, predicate goqu.Expression) (int, error) {
	query, args, err := dialect.From(eventsTable).
		Select(goqu.COUNT("*")).
		Where(predicate).
		Prepared(true).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, query, args...); err != nil {
		logger.Error("EventRepository:Count:Error", "error", err)
		return 0, err
	}
	return total, nil
}

// Find returns one page of matching rows, newest created first.
func (r *EventRepository) Find(ctx context.Context, predicate goqu.Expression, offset, limit int) ([]entity.Event, error) {
	query, args, err := dialect.From(eventsTable).
		Where(predicate).
		Order(goqu.C("created_at").Desc()).
		Offset(uint(offset)).
		Limit(uint(limit)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	events := make([]entity.Event, 0, limit)
	if err := r.db.SelectContext(ctx, &events, query, args...); err != nil {
		logger.Error("EventRepository:Find:Error", "error", err)
		return nil, err
	}
	return events, nil
}

func (r *EventRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	var event entity.Event
	err := r.db.GetContext(ctx, &event, `SELECT * FROM events WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Error("EventRepository:GetByID:Error", "error", err)
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) Create(ctx context.Context, event *entity.Event) error {
	query := `
		INSERT INTO events (title, slug, description, category, location, image_url,
			price, capacity, start_date, end_date, created_by, created_at, updated_at)
		VALUES (:title, :slug, :description, :category, :location, :image_url,
			:price, :capacity, :start_date, :end_date, :created_by, :created_at, :updated_at)
		RETURNING id
	`
	rows, err := r.db.NamedQueryContext(ctx, query, event)
	if err != nil {
		logger.Error("EventRepository:Create:Error", "error", err)
		return err
	}
	defer rows.Close()

	if rows.Next() {
		return rows.Scan(&event.ID)
	}
	return nil
}

func (r *EventRepository) Update(ctx context.Context, event *entity.Event) error {
	query := `
		UPDATE events
		SET title = :title, slug = :slug, description = :description, category = :category,
			location = :location, image_url = :image_url, price = :price, capacity = :capacity,
			start_date = :start_date, end_date = :end_date, updated_at = :updated_at
		WHERE id = :id
	`
	if _, err := r.db.NamedExecContext(ctx, query, event); err != nil {
		logger.Error("EventRepository:Update:Error", "error", err)
		return err
	}
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id); err != nil {
		logger.Error("EventRepository:Delete:Error", "error", err)
		return err
	}
	return nil
}
