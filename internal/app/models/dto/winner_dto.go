package dto

// CreateWinnerRequest represents winner declaration data. Exactly one of
// participant/group is expected, but the store tolerates either being nil.
type CreateWinnerRequest struct {
	Rank          int    `json:"rank" binding:"required,gt=0"`
	ParticipantID *int64 `json:"participant"`
	GroupID       *int64 `json:"group"`
	Prize         string `json:"prize" binding:"required"`
}

// UpdateWinnerRequest represents a partial winner update; nil fields keep
// their stored values.
type UpdateWinnerRequest struct {
	Rank          *int    `json:"rank"`
	ParticipantID *int64  `json:"participant"`
	GroupID       *int64  `json:"group"`
	Prize         *string `json:"prize"`
}
