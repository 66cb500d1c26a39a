package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"gotix-api/core/constants"
	coreEntity "gotix-api/core/entity"
	"gotix-api/core/errors"
	"gotix-api/core/logger"
	"gotix-api/core/pagination"
	"gotix-api/core/utils"
	"gotix-api/modules/event/dto"
	"gotix-api/modules/event/entity"
	"gotix-api/modules/event/repository"
)

type EventServiceInterface interface {
	List(ctx context.Context, q *dto.EventQuery) (*dto.EventListResponse, *errors.AppError)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, *errors.AppError)
	Create(ctx context.Context, userID uuid.UUID, req *dto.CreateEventRequest) (*entity.Event, *errors.AppError)
	Update(ctx context.Context, userID, eventID uuid.UUID, req *dto.UpdateEventRequest) (*entity.Event, *errors.AppError)
	Delete(ctx context.Context, userID, eventID uuid.UUID) *errors.AppError
}

type EventService struct {
	repo repository.EventRepositoryInterface
	now  func() time.Time
}

func NewEventService(repo repository.EventRepositoryInterface) *EventService {
	return &EventService{repo: repo, now: time.Now}
}

// List runs the discovery query: it resolves the symbolic day filters against
// a single "now" captured at the start of the call, builds the predicate,
// counts and fetches one page, and assembles the envelope. Storage failures
// surface as a generic internal error with no partial results.
func (s *EventService) List(ctx context.Context, q *dto.EventQuery) (*dto.EventListResponse, *errors.AppError) {
	now := s.now()
	filter := EventFilter{
		Category:    q.Category,
		DayTokens:   q.DayTokens,
		CustomStart: q.CustomStart,
		CustomEnd:   q.CustomEnd,
		Now:         now,
	}
	predicate := filter.Expression()

	total, err := s.repo.Count(ctx, predicate)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to query events", err)
	}

	meta := pagination.Plan(q.Page, total, constants.EventsPageSize)
	events, err := s.repo.Find(ctx, predicate,
		pagination.Offset(q.Page, constants.EventsPageSize), constants.EventsPageSize)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to query events", err)
	}

	logger.Info("EventService:List",
		"total", total,
		"page", q.Page,
		"day", q.RawDay,
		"category", q.Category,
	)

	return &dto.EventListResponse{
		Events: events,
		Pagination: dto.PaginationInfo{
			CurrentPage:     meta.CurrentPage,
			TotalPages:      meta.TotalPages,
			TotalEvents:     meta.TotalItems,
			HasNextPage:     meta.HasNextPage,
			HasPreviousPage: meta.HasPreviousPage,
		},
		Filters: dto.AppliedFilters{
			Category:        q.Category,
			Day:             q.RawDay,
			CustomStartDate: q.RawCustomStart,
			CustomEndDate:   q.RawCustomEnd,
		},
	}, nil
}

func (s *EventService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, *errors.AppError) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "event not found", nil)
	}
	return event, nil
}

func (s *EventService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateEventRequest) (*entity.Event, *errors.AppError) {
	if appErr := validateCreate(req); appErr != nil {
		return nil, appErr
	}
	start, end, appErr := parseDatePair(req.StartDate, req.EndDate)
	if appErr != nil {
		return nil, appErr
	}

	now := s.now()
	event := &entity.Event{
		Title:       strings.TrimSpace(req.Title),
		Slug:        slug.Make(req.Title) + "-" + strings.ToLower(utils.GenerateID()),
		Description: req.Description,
		Category:    slug.Make(req.Category),
		Location:    req.Location,
		Price:       req.Price,
		Capacity:    req.Capacity,
		StartDate:   start,
		EndDate:     end,
		CreatedBy:   userID,
		BaseEntity: coreEntity.BaseEntity{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if req.ImageURL != "" {
		event.ImageURL = &req.ImageURL
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to create event", err)
	}

	logger.Info("EventService:Create:Success", "event_id", event.ID, "slug", event.Slug)
	return event, nil
}

func (s *EventService) Update(ctx context.Context, userID, eventID uuid.UUID, req *dto.UpdateEventRequest) (*entity.Event, *errors.AppError) {
	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "event not found", nil)
	}
	if event.CreatedBy != userID {
		return nil, errors.NewAppError(errors.ErrForbidden, "only the event owner can update it", nil)
	}

	if req.Title != nil && strings.TrimSpace(*req.Title) != "" {
		event.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Category != nil && *req.Category != "" {
		event.Category = slug.Make(*req.Category)
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.Price != nil {
		event.Price = *req.Price
	}
	if req.Capacity != nil {
		event.Capacity = *req.Capacity
	}
	if req.ImageURL != nil && *req.ImageURL != "" {
		event.ImageURL = req.ImageURL
	}

	startStr := event.StartDate.Format(dateLayout)
	endStr := event.EndDate.Format(dateLayout)
	if req.StartDate != nil {
		startStr = *req.StartDate
	}
	if req.EndDate != nil {
		endStr = *req.EndDate
	}
	start, end, appErr := parseDatePair(startStr, endStr)
	if appErr != nil {
		return nil, appErr
	}
	event.StartDate = start
	event.EndDate = end
	event.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, event); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to update event", err)
	}
	return event, nil
}

func (s *EventService) Delete(ctx context.Context, userID, eventID uuid.UUID) *errors.AppError {
	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to load event", err)
	}
	if event == nil {
		return errors.NewAppError(errors.ErrNotFound, "event not found", nil)
	}
	if event.CreatedBy != userID {
		return errors.NewAppError(errors.ErrForbidden, "only the event owner can delete it", nil)
	}
	if err := s.repo.Delete(ctx, eventID); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to delete event", err)
	}
	return nil
}

const dateLayout = "2006-01-02"

func validateCreate(req *dto.CreateEventRequest) *errors.AppError {
	switch {
	case strings.TrimSpace(req.Title) == "":
		return errors.NewAppError(errors.ErrInvalidInput, "title is required", nil)
	case strings.TrimSpace(req.Category) == "":
		return errors.NewAppError(errors.ErrInvalidInput, "category is required", nil)
	case req.Capacity <= 0:
		return errors.NewAppError(errors.ErrInvalidInput, "capacity must be positive", nil)
	case req.Price < 0:
		return errors.NewAppError(errors.ErrInvalidInput, "price cannot be negative", nil)
	}
	return nil
}

func parseDatePair(startStr, endStr string) (time.Time, time.Time, *errors.AppError) {
	start, err := time.Parse(dateLayout, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrInvalidInput, "start_date must be YYYY-MM-DD", err)
	}
	end, err := time.Parse(dateLayout, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrInvalidInput, "end_date must be YYYY-MM-DD", err)
	}
	end = endOfDay(end)
	if end.Before(start) {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrInvalidInput, "end_date must not be before start_date", nil)
	}
	return start, end, nil
}
