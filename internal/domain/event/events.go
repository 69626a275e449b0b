package event

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DomainEvent is the interface all domain events implement.
type DomainEvent interface {
	EventID() string
	EventType() string
	OccurredAt() time.Time
}

// BaseEvent provides a default DomainEvent implementation.
type BaseEvent struct {
	ID   string    `json:"event_id"`
	Type string    `json:"event_type"`
	At   time.Time `json:"occurred_at"`
}

// NewBaseEvent creates a BaseEvent with a generated UUID and the current time.
func NewBaseEvent(eventType string) BaseEvent {
	return BaseEvent{
		ID:   uuid.NewString(),
		Type: eventType,
		At:   time.Now().UTC(),
	}
}

// EventID returns the unique identifier for this event.
func (e BaseEvent) EventID() string { return e.ID }

// EventType returns the type name of this event.
func (e BaseEvent) EventType() string { return e.Type }

// OccurredAt returns the time at which this event occurred.
func (e BaseEvent) OccurredAt() time.Time { return e.At }

// ComparisonCompleted is raised after a comparison run finishes
// successfully. ScenarioID is empty for ad-hoc (unsaved) comparisons.
type ComparisonCompleted struct {
	BaseEvent
	ScenarioID    string          `json:"scenario_id,omitempty"`
	Strategy      string          `json:"strategy"`
	MonthsSaved   int             `json:"months_saved"`
	InterestSaved decimal.Decimal `json:"interest_saved"`
	CascadeMonths int             `json:"cascade_months"`
}

// NewComparisonCompleted builds the event for one finished run.
func NewComparisonCompleted(scenarioID, strategy string, monthsSaved int, interestSaved decimal.Decimal, cascadeMonths int) ComparisonCompleted {
	return ComparisonCompleted{
		BaseEvent:     NewBaseEvent("cascade.comparison.completed"),
		ScenarioID:    scenarioID,
		Strategy:      strategy,
		MonthsSaved:   monthsSaved,
		InterestSaved: interestSaved,
		CascadeMonths: cascadeMonths,
	}
}
