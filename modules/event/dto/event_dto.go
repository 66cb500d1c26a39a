package dto

import (
	"time"

	"gotix-api/modules/event/entity"
)

// EventQuery carries the parsed discovery query parameters.
type EventQuery struct {
	Page        int
	Category    string
	DayTokens   []string
	CustomStart *time.Time
	CustomEnd   *time.Time

	// Raw values echoed back in the response envelope.
	RawDay         string
	RawCustomStart string
	RawCustomEnd   string
}

// PaginationInfo is the paging block of the discovery envelope.
type PaginationInfo struct {
	CurrentPage     int  `json:"currentPage"`
	TotalPages      int  `json:"totalPages"`
	TotalEvents     int  `json:"totalEvents"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

// AppliedFilters echoes which filters the caller sent, for client display.
type AppliedFilters struct {
	Category        string `json:"category"`
	Day             string `json:"day"`
	CustomStartDate string `json:"customStartDate"`
	CustomEndDate   string `json:"customEndDate"`
}

type EventListResponse struct {
	Events     []entity.Event `json:"events"`
	Pagination PaginationInfo `json:"pagination"`
	Filters    AppliedFilters `json:"filters"`
}

type CreateEventRequest struct {
	Title       string  `json:"title" form:"title"`
	Description string  `json:"description" form:"description"`
	Category    string  `json:"category" form:"category"`
	Location    string  `json:"location" form:"location"`
	Price       float64 `json:"price" form:"price"`
	Capacity    int     `json:"capacity" form:"capacity"`
	StartDate   string  `json:"start_date" form:"start_date"`
	EndDate     string  `json:"end_date" form:"end_date"`
	ImageURL    string  `json:"-" form:"-"`
}

type UpdateEventRequest struct {
	Title       *string  `json:"title" form:"title"`
	Description *string  `json:"description" form:"description"`
	Category    *string  `json:"category" form:"category"`
	Location    *string  `json:"location" form:"location"`
	Price       *float64 `json:"price" form:"price"`
	Capacity    *int     `json:"capacity" form:"capacity"`
	StartDate   *string  `json:"start_date" form:"start_date"`
	EndDate     *string  `json:"end_date" form:"end_date"`
	ImageURL    *string  `json:"-" form:"-"`
}
