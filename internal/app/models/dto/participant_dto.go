package dto

// AddParticipantRequest represents the data a user submits when joining a
// group. Email is taken from the authenticated user, not the body.
type AddParticipantRequest struct {
	FullName      string `json:"fullName" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	InstituteID   int64  `json:"institute" binding:"required,gt=0"`
	DepartmentID  int64  `json:"department" binding:"required,gt=0"`
	IsGroupLeader bool   `json:"isGroupLeader"`
}

// UpdateParticipantRequest represents a partial participant update; nil
// fields keep their stored values.
type UpdateParticipantRequest struct {
	FullName      *string `json:"fullName"`
	Phone         *string `json:"phone"`
	InstituteID   *int64  `json:"institute"`
	DepartmentID  *int64  `json:"department"`
	IsGroupLeader *bool   `json:"isGroupLeader"`
}
