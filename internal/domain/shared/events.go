// Package shared contains common domain types, errors, events, and value objects
// that are used across all domain packages.
package shared

import "time"

// EventType represents the type of domain event.
type EventType string

// Domain event types. Each event represents something significant that
// happened in the admission or academic record-keeping flow.
const (
	// Admission events
	EventApplicantCreated   EventType = "admission.applicant_created"
	EventApplicantStateSet  EventType = "admission.state_changed"
	EventInterviewScheduled EventType = "admission.interview_scheduled"
	EventCredentialIssued   EventType = "admission.credential_issued"
	EventFormSubmitted      EventType = "admission.form_submitted"

	// Group events
	EventGroupCreated   EventType = "group.created"
	EventGroupConfirmed EventType = "group.confirmed"
	EventGroupRetired   EventType = "group.retired"
	EventRosterChanged  EventType = "group.roster_changed"

	// Assessment events
	EventGradeRecorded       EventType = "assessment.grade_recorded"
	EventGradeUpdated        EventType = "assessment.grade_updated"
	EventObservationRecorded EventType = "assessment.observation_recorded"

	// Summons events
	EventSummonsCreated   EventType = "summons.created"
	EventSummonsStatusSet EventType = "summons.status_changed"
)

// Event is the base interface for all domain events.
type Event interface {
	// EventType returns the type of the event.
	EventType() EventType

	// OccurredAt returns when the event occurred.
	OccurredAt() time.Time

	// AggregateID returns the ID of the aggregate that produced this event.
	AggregateID() string

	// Payload returns the event data as a map for serialization.
	Payload() map[string]interface{}
}

// BaseEvent provides common event functionality.
type BaseEvent struct {
	Type        EventType `json:"type"`
	Timestamp   time.Time `json:"timestamp"`
	AggregateId string    `json:"aggregate_id"`
	Version     int       `json:"version"`
}

// EventType implements Event interface.
func (e BaseEvent) EventType() EventType {
	return e.Type
}

// OccurredAt implements Event interface.
func (e BaseEvent) OccurredAt() time.Time {
	return e.Timestamp
}

// AggregateID implements Event interface.
func (e BaseEvent) AggregateID() string {
	return e.AggregateId
}

// NewBaseEvent creates a new base event.
func NewBaseEvent(eventType EventType, aggregateID string) BaseEvent {
	return BaseEvent{
		Type:        eventType,
		Timestamp:   time.Now(),
		AggregateId: aggregateID,
		Version:     1,
	}
}

// GenericEvent is an event carrying an arbitrary payload map. Command
// handlers use it for notifications that need no dedicated struct.
type GenericEvent struct {
	BaseEvent
	Data map[string]interface{}
}

// Payload implements Event interface.
func (e GenericEvent) Payload() map[string]interface{} {
	return e.Data
}

// NewGenericEvent creates an event of the given type with a payload map.
func NewGenericEvent(eventType EventType, aggregateID string, data map[string]interface{}) GenericEvent {
	if data == nil {
		data = map[string]interface{}{}
	}
	return GenericEvent{
		BaseEvent: NewBaseEvent(eventType, aggregateID),
		Data:      data,
	}
}

// EventHandler is a function that handles an event.
type EventHandler func(event Event) error

// EventPublisher defines the interface for publishing events.
type EventPublisher interface {
	// Publish sends an event to subscribers.
	Publish(event Event) error
}

// EventSubscriber defines the interface for subscribing to events.
type EventSubscriber interface {
	// Subscribe registers a handler for an event type.
	Subscribe(eventType EventType, handler EventHandler) error

	// SubscribeAll registers a handler for all events.
	SubscribeAll(handler EventHandler) error
}

// EventBus combines publishing and subscribing.
type EventBus interface {
	EventPublisher
	EventSubscriber
}

// NopPublisher discards all events. Useful for tests and for callers
// that do not need event fan-out.
type NopPublisher struct{}

// Publish implements EventPublisher.
func (NopPublisher) Publish(Event) error { return nil }
