package models

import "time"

// Group represents a team competing in an event. The member list is not
// stored on the group row; it is derived from participants whose group
// reference points here, so a group read always reflects reality.
type Group struct {
	ID            int64     `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	EventID       int64     `json:"eventId" db:"event_id"`
	IsPaymentDone bool      `json:"isPaymentDone" db:"is_payment_done"`
	IsPresent     bool      `json:"isPresent" db:"is_present"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`

	Event   *Event         `json:"event,omitempty"`
	Members []*Participant `json:"members,omitempty"`
}
