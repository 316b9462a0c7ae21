package models

import "time"

// EventType classifies an event for filtering and display.
type EventType string

const (
	TypeExam             EventType = "exam"
	TypeApplicationStart EventType = "application_start"
	TypeApplicationEnd   EventType = "application_end"
	TypeResult           EventType = "result"
	TypeHoliday          EventType = "holiday"
)

// DefaultColor is used when an event carries no color of its own.
const DefaultColor = "#2563eb"

// TypeInfo holds display metadata for an event type.
type TypeInfo struct {
	Label string // Turkish display label
	Color string // hex color associated with the type
}

// Types maps every valid EventType to its display metadata.
var Types = map[EventType]TypeInfo{
	TypeExam:             {Label: "Sınav", Color: "#3b82f6"},
	TypeApplicationStart: {Label: "Başvuru Başlangıç", Color: "#10b981"},
	TypeApplicationEnd:   {Label: "Son Başvuru", Color: "#f59e0b"},
	TypeResult:           {Label: "Sonuç Açıklama", Color: "#a855f7"},
	TypeHoliday:          {Label: "Tatil / Özel Gün", Color: "#ec4899"},
}

// Valid reports whether t is one of the known event types.
func (t EventType) Valid() bool {
	_, ok := Types[t]
	return ok
}

// Label returns the display label for the type, or the raw value if unknown.
func (t EventType) Label() string {
	if info, ok := Types[t]; ok {
		return info.Label
	}
	return string(t)
}

// Event is a catalog event: immutable, sourced from the static dataset.
type Event struct {
	ID         string    `yaml:"id"`
	Title      string    `yaml:"title"`
	TargetDate time.Time `yaml:"target_date"`
	Color      string    `yaml:"color"`
	Priority   int       `yaml:"priority"`
	Type       EventType `yaml:"type"`
}

// Category groups catalog events under a named section.
type Category struct {
	ID     string  `yaml:"id"`
	Title  string  `yaml:"title"`
	Slug   string  `yaml:"slug"`
	Events []Event `yaml:"events"`
}
