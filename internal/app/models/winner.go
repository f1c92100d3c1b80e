package models

import "time"

// EventWiseWinner represents a ranked result for an event. Either a
// participant or a group may hold the rank; (event, rank) is unique at the
// database level.
type EventWiseWinner struct {
	ID            int64     `json:"id" db:"id"`
	EventID       int64     `json:"eventId" db:"event_id"`
	Rank          int       `json:"rank" db:"rank"`
	ParticipantID *int64    `json:"participantId,omitempty" db:"participant_id"`
	GroupID       *int64    `json:"groupId,omitempty" db:"group_id"`
	Prize         string    `json:"prize" db:"prize"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`

	ParticipantName string `json:"participantName,omitempty"`
	GroupName       string `json:"groupName,omitempty"`
}
