package entity

import (
	"time"

	"github.com/google/uuid"

	"gotix-api/core/entity"
)

type Event struct {
	Title       string    `db:"title" json:"title"`
	Slug        string    `db:"slug" json:"slug"`
	Description string    `db:"description" json:"description"`
	Category    string    `db:"category" json:"category"`
	Location    string    `db:"location" json:"location"`
	ImageURL    *string   `db:"image_url" json:"image_url,omitempty"`
	Price       float64   `db:"price" json:"price"`
	Capacity    int       `db:"capacity" json:"capacity"`
	StartDate   time.Time `db:"start_date" json:"start_date"`
	EndDate     time.Time `db:"end_date" json:"end_date"`
	CreatedBy   uuid.UUID `db:"created_by" json:"created_by"`
	entity.BaseEntity
}
