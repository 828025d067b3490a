package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventPersonSelected   EventType = "PersonSelected"
	EventSelectionCleared EventType = "SelectionCleared"
	EventDatasetReloaded  EventType = "DatasetReloaded"
	EventError            EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// PersonSelectedEvent is emitted when a suggestion is confirmed
type PersonSelectedEvent struct {
	Person Person
}

func (e PersonSelectedEvent) Type() EventType { return EventPersonSelected }

// SelectionClearedEvent is emitted when typing invalidates the confirmed selection
type SelectionClearedEvent struct{}

func (e SelectionClearedEvent) Type() EventType { return EventSelectionCleared }

// DatasetReloadedEvent is emitted after the people file was re-read
type DatasetReloadedEvent struct {
	Version uint64
	Count   int
}

func (e DatasetReloadedEvent) Type() EventType { return EventDatasetReloaded }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
