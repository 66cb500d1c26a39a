package tasks

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"gotix-api/core/logger"
	"gotix-api/modules/notification/dto"
	"gotix-api/modules/notification/service"
)

// TypeBookingConfirmed is emitted when a booking succeeds; the worker turns
// it into a user notification.
const TypeBookingConfirmed = "booking:confirmed"

type BookingConfirmedPayload struct {
	UserID     uuid.UUID `json:"user_id"`
	BookingID  uuid.UUID `json:"booking_id"`
	Reference  string    `json:"reference"`
	EventTitle string    `json:"event_title"`
	Quantity   int       `json:"quantity"`
}

func NewBookingConfirmedTask(p BookingConfirmedPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeBookingConfirmed, payload), nil
}

type BookingConfirmedHandler struct {
	notifSvc *service.NotificationService
}

func NewBookingConfirmedHandler(notifSvc *service.NotificationService) *BookingConfirmedHandler {
	return &BookingConfirmedHandler{notifSvc: notifSvc}
}

func (h *BookingConfirmedHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var p BookingConfirmedPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to decode booking confirmed payload: %w", err)
	}

	err := h.notifSvc.Create(ctx, &dto.CreateNotificationRequest{
		UserID:  p.UserID,
		Title:   "Booking confirmed",
		Message: fmt.Sprintf("Your booking %s for %q (%d tickets) is confirmed.", p.Reference, p.EventTitle, p.Quantity),
		Type:    TypeBookingConfirmed,
		Data: map[string]interface{}{
			"booking_id": p.BookingID.String(),
			"reference":  p.Reference,
		},
	})
	if err != nil {
		logger.Error("BookingConfirmedHandler:ProcessTask:Error", "booking_id", p.BookingID, "error", err)
		return err
	}

	logger.Info("BookingConfirmedHandler:ProcessTask:Success", "booking_id", p.BookingID, "user_id", p.UserID)
	return nil
}
