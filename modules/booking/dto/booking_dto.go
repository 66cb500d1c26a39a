package dto

import (
	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	EventID  uuid.UUID `json:"event_id"`
	Quantity int       `json:"quantity"`
}
