package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coreErrors "gotix-api/core/errors"
	"gotix-api/modules/event/dto"
	"gotix-api/modules/event/entity"
)

type stubEventRepo struct {
	events []entity.Event
	total  int

	countErr error
	findErr  error

	lastPredicate goqu.Expression
	lastOffset    int
	lastLimit     int

	created *entity.Event
	byID    *entity.Event
}

func (s *stubEventRepo) Count(ctx context.Context, predicate goqu.Expression) (int, error) {
	s.lastPredicate = predicate
	return s.total, s.countErr
}

func (s *stubEventRepo) Find(ctx context.Context, predicate goqu.Expression, offset, limit int) ([]entity.Event, error) {
	s.lastPredicate = predicate
	s.lastOffset = offset
	s.lastLimit = limit
	return s.events, s.findErr
}

func (s *stubEventRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	return s.byID, nil
}

func (s *stubEventRepo) Create(ctx context.Context, event *entity.Event) error {
	event.ID = uuid.New()
	s.created = event
	return nil
}

func (s *stubEventRepo) Update(ctx context.Context, event *entity.Event) error { return nil }
func (s *stubEventRepo) Delete(ctx context.Context, id uuid.UUID) error        { return nil }

func newTestService(repo *stubEventRepo, now time.Time) *EventService {
	svc := NewEventService(repo)
	svc.now = func() time.Time { return now }
	return svc
}

func TestListBuildsEnvelope(t *testing.T) {
	now := date(2025, time.March, 12, 15, 0, 0)
	repo := &stubEventRepo{
		total:  13,
		events: []entity.Event{{Title: "A"}, {Title: "B"}},
	}
	svc := newTestService(repo, now)

	res, appErr := svc.List(context.Background(), &dto.EventQuery{
		Page:     2,
		Category: "music",
		RawDay:   "today",
	})
	require.Nil(t, appErr)

	assert.Len(t, res.Events, 2)
	assert.Equal(t, 2, res.Pagination.CurrentPage)
	assert.Equal(t, 3, res.Pagination.TotalPages)
	assert.Equal(t, 13, res.Pagination.TotalEvents)
	assert.True(t, res.Pagination.HasNextPage)
	assert.True(t, res.Pagination.HasPreviousPage)

	assert.Equal(t, "music", res.Filters.Category)
	assert.Equal(t, "today", res.Filters.Day)

	// Page size is fixed at six.
	assert.Equal(t, 6, repo.lastOffset)
	assert.Equal(t, 6, repo.lastLimit)
}

func TestListEmptyCatalog(t *testing.T) {
	now := date(2025, time.March, 12, 15, 0, 0)
	repo := &stubEventRepo{events: []entity.Event{}}
	svc := newTestService(repo, now)

	res, appErr := svc.List(context.Background(), &dto.EventQuery{Page: 1})
	require.Nil(t, appErr)

	assert.Empty(t, res.Events)
	assert.Equal(t, 0, res.Pagination.TotalPages)
	assert.Equal(t, 0, res.Pagination.TotalEvents)
	assert.False(t, res.Pagination.HasNextPage)
	assert.False(t, res.Pagination.HasPreviousPage)
}

func TestListEchoesRawFilters(t *testing.T) {
	now := date(2025, time.March, 12, 15, 0, 0)
	svc := newTestService(&stubEventRepo{}, now)

	res, appErr := svc.List(context.Background(), &dto.EventQuery{
		Page:           1,
		RawDay:         "today|someday",
		RawCustomStart: "2025-06-01",
		RawCustomEnd:   "2025-06-30",
	})
	require.Nil(t, appErr)

	assert.Equal(t, "today|someday", res.Filters.Day)
	assert.Equal(t, "2025-06-01", res.Filters.CustomStartDate)
	assert.Equal(t, "2025-06-30", res.Filters.CustomEndDate)
}

func TestListStorageFailure(t *testing.T) {
	now := date(2025, time.March, 12, 15, 0, 0)

	svc := newTestService(&stubEventRepo{countErr: errors.New("boom")}, now)
	res, appErr := svc.List(context.Background(), &dto.EventQuery{Page: 1})
	require.NotNil(t, appErr)
	assert.Nil(t, res)
	assert.Equal(t, coreErrors.ErrInternalServer, appErr.Code)

	svc = newTestService(&stubEventRepo{findErr: errors.New("boom")}, now)
	res, appErr = svc.List(context.Background(), &dto.EventQuery{Page: 1})
	require.NotNil(t, appErr)
	assert.Nil(t, res)
	assert.Equal(t, coreErrors.ErrInternalServer, appErr.Code)
}

func TestCreateSlugsAndValidates(t *testing.T) {
	now := date(2025, time.March, 12, 15, 0, 0)
	repo := &stubEventRepo{}
	svc := newTestService(repo, now)
	userID := uuid.New()

	event, appErr := svc.Create(context.Background(), userID, &dto.CreateEventRequest{
		Title:     "Jazz Night",
		Category:  "Live Concert",
		Location:  "Jakarta",
		Price:     150000,
		Capacity:  100,
		StartDate: "2025-06-01",
		EndDate:   "2025-06-02",
	})
	require.Nil(t, appErr)

	assert.Equal(t, "live-concert", event.Category)
	assert.True(t, len(event.Slug) > len("jazz-night"))
	assert.Contains(t, event.Slug, "jazz-night-")
	assert.Equal(t, userID, event.CreatedBy)
	assert.Equal(t, date(2025, time.June, 2, 23, 59, 59), event.EndDate)
}

func TestCreateRejectsBadInput(t *testing.T) {
	now := date(2025, time.March, 12, 15, 0, 0)
	svc := newTestService(&stubEventRepo{}, now)
	userID := uuid.New()

	tests := []struct {
		name string
		req  dto.CreateEventRequest
	}{
		{"missing title", dto.CreateEventRequest{Category: "music", Capacity: 10, StartDate: "2025-06-01", EndDate: "2025-06-02"}},
		{"missing category", dto.CreateEventRequest{Title: "X", Capacity: 10, StartDate: "2025-06-01", EndDate: "2025-06-02"}},
		{"zero capacity", dto.CreateEventRequest{Title: "X", Category: "music", StartDate: "2025-06-01", EndDate: "2025-06-02"}},
		{"negative price", dto.CreateEventRequest{Title: "X", Category: "music", Capacity: 10, Price: -1, StartDate: "2025-06-01", EndDate: "2025-06-02"}},
		{"malformed date", dto.CreateEventRequest{Title: "X", Category: "music", Capacity: 10, StartDate: "01-06-2025", EndDate: "2025-06-02"}},
		{"end before start", dto.CreateEventRequest{Title: "X", Category: "music", Capacity: 10, StartDate: "2025-06-02", EndDate: "2025-06-01"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, appErr := svc.Create(context.Background(), userID, &tt.req)
			require.NotNil(t, appErr)
			assert.Equal(t, coreErrors.ErrInvalidInput, appErr.Code)
		})
	}
}

func TestUpdateRequiresOwnership(t *testing.T) {
	now := date(2025, time.March, 12, 15, 0, 0)
	owner := uuid.New()
	repo := &stubEventRepo{byID: &entity.Event{
		Title:     "Jazz Night",
		CreatedBy: owner,
		StartDate: date(2025, time.June, 1, 0, 0, 0),
		EndDate:   date(2025, time.June, 2, 23, 59, 59),
	}}
	svc := newTestService(repo, now)

	_, appErr := svc.Update(context.Background(), uuid.New(), uuid.New(), &dto.UpdateEventRequest{})
	require.NotNil(t, appErr)
	assert.Equal(t, coreErrors.ErrForbidden, appErr.Code)

	newTitle := "Jazz Evening"
	updated, appErr := svc.Update(context.Background(), owner, uuid.New(), &dto.UpdateEventRequest{Title: &newTitle})
	require.Nil(t, appErr)
	assert.Equal(t, "Jazz Evening", updated.Title)
}

func TestDeleteUnknownEvent(t *testing.T) {
	now := date(2025, time.March, 12, 15, 0, 0)
	svc := newTestService(&stubEventRepo{}, now)

	appErr := svc.Delete(context.Background(), uuid.New(), uuid.New())
	require.NotNil(t, appErr)
	assert.Equal(t, coreErrors.ErrNotFound, appErr.Code)
}
