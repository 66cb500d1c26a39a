package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gotix-api/core/constants"
	coreEntity "gotix-api/core/entity"
	"gotix-api/core/errors"
	"gotix-api/core/logger"
	"gotix-api/core/params"
	"gotix-api/core/queue"
	"gotix-api/core/utils"
	"gotix-api/modules/booking/dto"
	"gotix-api/modules/booking/entity"
	"gotix-api/modules/booking/repository"
	eventRepository "gotix-api/modules/event/repository"
	"gotix-api/modules/notification/tasks"
)

type BookingServiceInterface interface {
	Create(ctx context.Context, userID uuid.UUID, req *dto.CreateBookingRequest) (*entity.Booking, *errors.AppError)
	ListMine(ctx context.Context, userID uuid.UUID, queryParams params.QueryParams) (*entity.PaginatedBookingEntity, *errors.AppError)
	Cancel(ctx context.Context, userID, bookingID uuid.UUID) *errors.AppError
	ExpireStalePending(ctx context.Context) (int, *errors.AppError)
}

type BookingService struct {
	repo      repository.BookingRepositoryInterface
	eventRepo eventRepository.EventRepositoryInterface
	enqueuer  queue.Enqueuer
	now       func() time.Time
}

func NewBookingService(repo repository.BookingRepositoryInterface, eventRepo eventRepository.EventRepositoryInterface, enqueuer queue.Enqueuer) *BookingService {
	return &BookingService{
		repo:      repo,
		eventRepo: eventRepo,
		enqueuer:  enqueuer,
		now:       time.Now,
	}
}

func (s *BookingService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateBookingRequest) (*entity.Booking, *errors.AppError) {
	if req.Quantity < 1 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "quantity must be at least 1", nil)
	}

	event, err := s.eventRepo.GetByID(ctx, req.EventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "event not found", nil)
	}
	if event.EndDate.Before(s.now()) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "event has already ended", nil)
	}

	taken, err := s.repo.SumQuantityForEvent(ctx, req.EventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to check availability", err)
	}
	if taken+req.Quantity > event.Capacity {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "not enough tickets left", nil)
	}

	now := s.now()
	booking := &entity.Booking{
		Reference: utils.GenerateID(),
		EventID:   req.EventID,
		UserID:    userID,
		Quantity:  req.Quantity,
		Status:    entity.BookingStatusConfirmed,
		BaseEntity: coreEntity.BaseEntity{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to create booking", err)
	}

	task, err := tasks.NewBookingConfirmedTask(tasks.BookingConfirmedPayload{
		UserID:     userID,
		BookingID:  booking.ID,
		Reference:  booking.Reference,
		EventTitle: event.Title,
		Quantity:   booking.Quantity,
	})
	if err == nil {
		// Confirmation delivery is best-effort; the booking itself stands.
		if err := s.enqueuer.Enqueue(ctx, task); err != nil {
			logger.Warn("BookingService:Create:EnqueueFailed", "booking_id", booking.ID, "error", err)
		}
	}

	logger.Info("BookingService:Create:Success",
		"booking_id", booking.ID,
		"reference", booking.Reference,
		"event_id", req.EventID,
		"quantity", req.Quantity,
	)
	return booking, nil
}

func (s *BookingService) ListMine(ctx context.Context, userID uuid.UUID, queryParams params.QueryParams) (*entity.PaginatedBookingEntity, *errors.AppError) {
	res, err := s.repo.GetByUserID(ctx, userID, queryParams)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load bookings", err)
	}
	return res, nil
}

func (s *BookingService) Cancel(ctx context.Context, userID, bookingID uuid.UUID) *errors.AppError {
	booking, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to load booking", err)
	}
	if booking == nil {
		return errors.NewAppError(errors.ErrNotFound, "booking not found", nil)
	}
	if booking.UserID != userID {
		return errors.NewAppError(errors.ErrForbidden, "only the booking owner can cancel it", nil)
	}
	if booking.Status == entity.BookingStatusCancelled {
		return errors.NewAppError(errors.ErrInvalidInput, "booking is already cancelled", nil)
	}
	if err := s.repo.UpdateStatus(ctx, bookingID, entity.BookingStatusCancelled); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to cancel booking", err)
	}
	return nil
}

// ExpireStalePending is run by the nightly cron to cancel pending bookings
// whose payment window has lapsed.
func (s *BookingService) ExpireStalePending(ctx context.Context) (int, *errors.AppError) {
	cutoff := s.now().Add(-time.Duration(constants.PendingBookingTTLHours) * time.Hour)
	n, err := s.repo.CancelStalePending(ctx, cutoff)
	if err != nil {
		return 0, errors.NewAppError(errors.ErrInternalServer, "failed to expire pending bookings", err)
	}
	if n > 0 {
		logger.Info("BookingService:ExpireStalePending", "cancelled", n, "cutoff", cutoff)
	}
	return n, nil
}
