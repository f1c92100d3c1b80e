package dto

// CreateGroupRequest represents group creation data
type CreateGroupRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateGroupRequest represents a partial group update; nil fields keep
// their stored values.
type UpdateGroupRequest struct {
	Name          *string `json:"name"`
	IsPaymentDone *bool   `json:"isPaymentDone"`
	IsPresent     *bool   `json:"isPresent"`
}
