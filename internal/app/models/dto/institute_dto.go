package dto

import "github.com/frolicdev/frolic/internal/app/models"

// CreateInstituteRequest represents institute creation data
type CreateInstituteRequest struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location" binding:"required"`
	Contact  string `json:"contact" binding:"required"`
}

// UpdateInstituteRequest represents institute update data; empty fields keep
// their stored values.
type UpdateInstituteRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Contact  string `json:"contact"`
}

// InstituteListResponse represents a paginated institute list
type InstituteListResponse struct {
	Institutes []*models.Institute `json:"institutes"`
	Pagination PaginationInfo      `json:"pagination"`
}

// InstituteSummaryResponse aggregates counts for a single institute
type InstituteSummaryResponse struct {
	InstituteID       int64 `json:"instituteId"`
	EventsCount       int64 `json:"eventsCount"`
	ParticipantsCount int64 `json:"participantsCount"`
}
