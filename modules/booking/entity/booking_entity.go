package entity

import (
	"github.com/google/uuid"

	"gotix-api/core/entity"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

type Booking struct {
	Reference string    `db:"reference" json:"reference"`
	EventID   uuid.UUID `db:"event_id" json:"event_id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	Quantity  int       `db:"quantity" json:"quantity"`
	Status    string    `db:"status" json:"status"`
	entity.BaseEntity
}

type PaginatedBookingEntity = entity.Pagination[Booking]
