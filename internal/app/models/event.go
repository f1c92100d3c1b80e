package models

import "time"

// Event represents a competition event
type Event struct {
	ID                   int64     `json:"id" db:"id"`
	Title                string    `json:"title" db:"title"`
	Description          string    `json:"description" db:"description"`
	Date                 string    `json:"date" db:"date"`
	Time                 string    `json:"time" db:"time"`
	Location             string    `json:"location" db:"location"`
	Category             string    `json:"category" db:"category"`
	Rules                []string  `json:"rules" db:"rules"`
	DepartmentID         *int64    `json:"departmentId,omitempty" db:"department_id"`
	MaxParticipants      int       `json:"maxParticipants" db:"max_participants"`
	GroupMinParticipants int       `json:"groupMinParticipants" db:"group_min_participants"`
	GroupMaxParticipants int       `json:"groupMaxParticipants" db:"group_max_participants"`
	MaxGroupsAllowed     int       `json:"maxGroupsAllowed" db:"max_groups_allowed"`
	CreatedAt            time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt            time.Time `json:"updatedAt" db:"updated_at"`

	Department *Department `json:"department,omitempty"`
}
