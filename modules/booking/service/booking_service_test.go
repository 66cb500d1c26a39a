package service

import (
	"context"
	"testing"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coreErrors "gotix-api/core/errors"
	"gotix-api/core/params"
	"gotix-api/modules/booking/dto"
	"gotix-api/modules/booking/entity"
	eventEntity "gotix-api/modules/event/entity"
)

type stubBookingRepo struct {
	created     *entity.Booking
	byID        *entity.Booking
	sum         int
	cancelled   int
	lastStatus  string
	staleCutoff time.Time
}

func (s *stubBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	booking.ID = uuid.New()
	s.created = booking
	return nil
}

func (s *stubBookingRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	return s.byID, nil
}

func (s *stubBookingRepo) GetByUserID(ctx context.Context, userID uuid.UUID, p params.QueryParams) (*entity.PaginatedBookingEntity, error) {
	return &entity.PaginatedBookingEntity{PageNumber: p.PageNumber, PageSize: p.PageSize}, nil
}

func (s *stubBookingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	s.lastStatus = status
	return nil
}

func (s *stubBookingRepo) SumQuantityForEvent(ctx context.Context, eventID uuid.UUID) (int, error) {
	return s.sum, nil
}

func (s *stubBookingRepo) CancelStalePending(ctx context.Context, olderThan time.Time) (int, error) {
	s.staleCutoff = olderThan
	return s.cancelled, nil
}

type stubEventRepo struct {
	event *eventEntity.Event
}

func (s *stubEventRepo) Count(ctx context.Context, predicate goqu.Expression) (int, error) {
	return 0, nil
}

func (s *stubEventRepo) Find(ctx context.Context, predicate goqu.Expression, offset, limit int) ([]eventEntity.Event, error) {
	return nil, nil
}

func (s *stubEventRepo) GetByID(ctx context.Context, id uuid.UUID) (*eventEntity.Event, error) {
	return s.event, nil
}

func (s *stubEventRepo) Create(ctx context.Context, event *eventEntity.Event) error { return nil }
func (s *stubEventRepo) Update(ctx context.Context, event *eventEntity.Event) error { return nil }
func (s *stubEventRepo) Delete(ctx context.Context, id uuid.UUID) error             { return nil }

type stubEnqueuer struct {
	tasks []*asynq.Task
}

func (s *stubEnqueuer) Enqueue(ctx context.Context, task *asynq.Task) error {
	s.tasks = append(s.tasks, task)
	return nil
}

func fixedNow() time.Time {
	return time.Date(2025, time.March, 12, 15, 0, 0, 0, time.UTC)
}

func upcomingEvent(capacity int) *eventEntity.Event {
	return &eventEntity.Event{
		Title:     "Jazz Night",
		Capacity:  capacity,
		StartDate: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, time.June, 2, 23, 59, 59, 0, time.UTC),
	}
}

func newBookingService(repo *stubBookingRepo, events *stubEventRepo, enq *stubEnqueuer) *BookingService {
	svc := NewBookingService(repo, events, enq)
	svc.now = fixedNow
	return svc
}

func TestCreateBooking(t *testing.T) {
	repo := &stubBookingRepo{}
	enq := &stubEnqueuer{}
	svc := newBookingService(repo, &stubEventRepo{event: upcomingEvent(100)}, enq)
	userID := uuid.New()

	booking, appErr := svc.Create(context.Background(), userID, &dto.CreateBookingRequest{
		EventID:  uuid.New(),
		Quantity: 2,
	})
	require.Nil(t, appErr)

	assert.Equal(t, entity.BookingStatusConfirmed, booking.Status)
	assert.Equal(t, userID, booking.UserID)
	assert.NotEmpty(t, booking.Reference)

	require.Len(t, enq.tasks, 1)
	assert.Equal(t, "booking:confirmed", enq.tasks[0].Type())
}

func TestCreateBookingUnknownEvent(t *testing.T) {
	svc := newBookingService(&stubBookingRepo{}, &stubEventRepo{}, &stubEnqueuer{})

	_, appErr := svc.Create(context.Background(), uuid.New(), &dto.CreateBookingRequest{
		EventID:  uuid.New(),
		Quantity: 1,
	})
	require.NotNil(t, appErr)
	assert.Equal(t, coreErrors.ErrNotFound, appErr.Code)
}

func TestCreateBookingEndedEvent(t *testing.T) {
	ended := upcomingEvent(100)
	ended.EndDate = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	svc := newBookingService(&stubBookingRepo{}, &stubEventRepo{event: ended}, &stubEnqueuer{})

	_, appErr := svc.Create(context.Background(), uuid.New(), &dto.CreateBookingRequest{
		EventID:  uuid.New(),
		Quantity: 1,
	})
	require.NotNil(t, appErr)
	assert.Equal(t, coreErrors.ErrInvalidInput, appErr.Code)
}

func TestCreateBookingSoldOut(t *testing.T) {
	repo := &stubBookingRepo{sum: 98}
	enq := &stubEnqueuer{}
	svc := newBookingService(repo, &stubEventRepo{event: upcomingEvent(100)}, enq)

	_, appErr := svc.Create(context.Background(), uuid.New(), &dto.CreateBookingRequest{
		EventID:  uuid.New(),
		Quantity: 3,
	})
	require.NotNil(t, appErr)
	assert.Equal(t, coreErrors.ErrInvalidInput, appErr.Code)
	assert.Empty(t, enq.tasks)

	// The last two tickets are still sellable.
	_, appErr = svc.Create(context.Background(), uuid.New(), &dto.CreateBookingRequest{
		EventID:  uuid.New(),
		Quantity: 2,
	})
	require.Nil(t, appErr)
}

func TestCreateBookingBadQuantity(t *testing.T) {
	svc := newBookingService(&stubBookingRepo{}, &stubEventRepo{event: upcomingEvent(100)}, &stubEnqueuer{})

	_, appErr := svc.Create(context.Background(), uuid.New(), &dto.CreateBookingRequest{
		EventID:  uuid.New(),
		Quantity: 0,
	})
	require.NotNil(t, appErr)
	assert.Equal(t, coreErrors.ErrInvalidInput, appErr.Code)
}

func TestCancelBooking(t *testing.T) {
	owner := uuid.New()
	repo := &stubBookingRepo{byID: &entity.Booking{
		UserID: owner,
		Status: entity.BookingStatusConfirmed,
	}}
	svc := newBookingService(repo, &stubEventRepo{}, &stubEnqueuer{})

	appErr := svc.Cancel(context.Background(), owner, uuid.New())
	require.Nil(t, appErr)
	assert.Equal(t, entity.BookingStatusCancelled, repo.lastStatus)
}

func TestCancelBookingNotOwner(t *testing.T) {
	repo := &stubBookingRepo{byID: &entity.Booking{
		UserID: uuid.New(),
		Status: entity.BookingStatusConfirmed,
	}}
	svc := newBookingService(repo, &stubEventRepo{}, &stubEnqueuer{})

	appErr := svc.Cancel(context.Background(), uuid.New(), uuid.New())
	require.NotNil(t, appErr)
	assert.Equal(t, coreErrors.ErrForbidden, appErr.Code)
}

func TestCancelBookingTwice(t *testing.T) {
	owner := uuid.New()
	repo := &stubBookingRepo{byID: &entity.Booking{
		UserID: owner,
		Status: entity.BookingStatusCancelled,
	}}
	svc := newBookingService(repo, &stubEventRepo{}, &stubEnqueuer{})

	appErr := svc.Cancel(context.Background(), owner, uuid.New())
	require.NotNil(t, appErr)
	assert.Equal(t, coreErrors.ErrInvalidInput, appErr.Code)
}

func TestExpireStalePending(t *testing.T) {
	repo := &stubBookingRepo{cancelled: 4}
	svc := newBookingService(repo, &stubEventRepo{}, &stubEnqueuer{})

	n, appErr := svc.ExpireStalePending(context.Background())
	require.Nil(t, appErr)
	assert.Equal(t, 4, n)
	assert.Equal(t, fixedNow().Add(-24*time.Hour), repo.staleCutoff)
}
