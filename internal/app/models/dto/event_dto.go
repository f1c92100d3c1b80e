package dto

import "github.com/frolicdev/frolic/internal/app/models"

// CreateEventRequest represents event creation data. Capacity defaults
// follow the stored column defaults when omitted.
type CreateEventRequest struct {
	Title                string   `json:"title" binding:"required"`
	Description          string   `json:"description" binding:"required"`
	Date                 string   `json:"date" binding:"required"`
	Time                 string   `json:"time" binding:"required"`
	Location             string   `json:"location" binding:"required"`
	Category             string   `json:"category" binding:"required"`
	Rules                []string `json:"rules"`
	DepartmentID         *int64   `json:"department"`
	MaxParticipants      *int     `json:"maxParticipants"`
	GroupMinParticipants *int     `json:"groupMinParticipants"`
	GroupMaxParticipants *int     `json:"groupMaxParticipants"`
	MaxGroupsAllowed     *int     `json:"maxGroupsAllowed"`
}

// UpdateEventRequest represents a partial event update; nil fields keep
// their stored values.
type UpdateEventRequest struct {
	Title                *string   `json:"title"`
	Description          *string   `json:"description"`
	Date                 *string   `json:"date"`
	Time                 *string   `json:"time"`
	Location             *string   `json:"location"`
	Category             *string   `json:"category"`
	Rules                *[]string `json:"rules"`
	DepartmentID         *int64    `json:"department"`
	MaxParticipants      *int      `json:"maxParticipants"`
	GroupMinParticipants *int      `json:"groupMinParticipants"`
	GroupMaxParticipants *int      `json:"groupMaxParticipants"`
	MaxGroupsAllowed     *int      `json:"maxGroupsAllowed"`
}

// EventFilterRequest represents event list filter parameters
type EventFilterRequest struct {
	Query        string `form:"q"`
	DepartmentID *int64 `form:"department"`
	Location     string `form:"location"`
	Page         int    `form:"page,default=1" binding:"min=1"`
	Limit        int    `form:"limit,default=10" binding:"min=1,max=100"`
}

// EventListResponse represents a paginated event list
type EventListResponse struct {
	Events     []*models.Event `json:"events"`
	Pagination PaginationInfo  `json:"pagination"`
}

// EventSummaryResponse aggregates registration counts for an event
type EventSummaryResponse struct {
	EventID           int64 `json:"eventId"`
	TotalGroups       int64 `json:"totalGroups"`
	TotalParticipants int64 `json:"totalParticipants"`
}
