package models

import "time"

// CustomEvent is a user-created countdown, owned by the custom store.
// The JSON shape matches the persisted collection exactly, so a stored
// record round-trips losslessly through Marshal/Unmarshal.
type CustomEvent struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	TargetDate time.Time `json:"targetDate"`
	Color      string    `json:"color"`
	Priority   int       `json:"priority"`
	Type       EventType `json:"type"`
	Notes      string    `json:"notes,omitempty"`
	IsCustom   bool      `json:"isCustom"` // always true, discriminates the variant
	CreatedAt  time.Time `json:"createdAt"`
}

// NewEventFields carries the caller-supplied fields for a new custom event.
// ID, IsCustom and CreatedAt are assigned by the store.
type NewEventFields struct {
	Title      string
	TargetDate time.Time
	Color      string
	Priority   int
	Type       EventType
	Notes      string
}

// EventUpdate is a partial payload for updating a custom event. Nil fields
// are left untouched. ID, IsCustom and CreatedAt are not representable here,
// which keeps them immutable after creation.
type EventUpdate struct {
	Title      *string
	TargetDate *time.Time
	Color      *string
	Priority   *int
	Type       *EventType
	Notes      *string
}
