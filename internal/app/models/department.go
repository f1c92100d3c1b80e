package models

import "time"

// Department represents a department within an institute
type Department struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Hod          string    `json:"hod" db:"hod"` // head of department
	ContactEmail string    `json:"contactEmail" db:"contact_email"`
	InstituteID  int64     `json:"instituteId" db:"institute_id"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`

	Institute *Institute `json:"institute,omitempty"`
}
