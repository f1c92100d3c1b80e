package models

import "time"

// Participant represents a registered competitor inside a group
type Participant struct {
	ID            int64     `json:"id" db:"id"`
	FullName      string    `json:"fullName" db:"full_name"`
	Email         string    `json:"email" db:"email"`
	Phone         string    `json:"phone" db:"phone"`
	InstituteID   int64     `json:"instituteId" db:"institute_id"`
	DepartmentID  int64     `json:"departmentId" db:"department_id"`
	UserID        int64     `json:"userId" db:"user_id"`
	GroupID       *int64    `json:"groupId,omitempty" db:"group_id"`
	IsGroupLeader bool      `json:"isGroupLeader" db:"is_group_leader"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`

	InstituteName  string `json:"instituteName,omitempty"`
	DepartmentName string `json:"departmentName,omitempty"`
	GroupName      string `json:"groupName,omitempty"`
}
