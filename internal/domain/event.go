package domain

import (
	"context"
	"strings"
	"time"
)

// EventStatus is the publication state of an event. Only the initial state is assigned;
// no transitions are implemented.
type EventStatus string

// EventStatusDraft is assigned to every newly created event.
const EventStatusDraft EventStatus = "DRAFT"

// Event represents a bookable occasion.
// swagger:model Event
type Event struct {
	ID                      int64       `json:"id"`
	Name                    string      `json:"name"`
	Description             string      `json:"description"`
	BeginEnrollmentDateTime time.Time   `json:"beginEnrollmentDateTime"`
	CloseEnrollmentDateTime time.Time   `json:"closeEnrollmentDateTime"`
	BeginEventDateTime      time.Time   `json:"beginEventDateTime"`
	EndEventDateTime        time.Time   `json:"endEventDateTime"`
	Location                string      `json:"location,omitempty"`
	BasePrice               int         `json:"basePrice"`
	MaxPrice                int         `json:"maxPrice"`
	LimitOfEnrollment       int         `json:"limitOfEnrollment"`
	Offline                 bool        `json:"offline"`
	Free                    bool        `json:"free"`
	EventStatus             EventStatus `json:"eventStatus"`
}

// EventInput is the caller-supplied payload for creating or replacing an event.
// It carries no identifier and no derived attributes.
// swagger:model EventInput
type EventInput struct {
	Name                    string    `json:"name"`
	Description             string    `json:"description"`
	BeginEnrollmentDateTime time.Time `json:"beginEnrollmentDateTime"`
	CloseEnrollmentDateTime time.Time `json:"closeEnrollmentDateTime"`
	BeginEventDateTime      time.Time `json:"beginEventDateTime"`
	EndEventDateTime        time.Time `json:"endEventDateTime"`
	Location                string    `json:"location"`
	BasePrice               int       `json:"basePrice"`
	MaxPrice                int       `json:"maxPrice"`
	LimitOfEnrollment       int       `json:"limitOfEnrollment"`
}

// TimePrecision is the resolution events keep their timestamps at. It matches the
// finest resolution every supported store round-trips.
const TimePrecision = time.Microsecond

// NormalizeTime converts t to UTC at TimePrecision.
func NormalizeTime(t time.Time) time.Time {
	return t.UTC().Truncate(TimePrecision)
}

// Normalize returns in with every timestamp passed through NormalizeTime.
func (in EventInput) Normalize() EventInput {
	in.BeginEnrollmentDateTime = NormalizeTime(in.BeginEnrollmentDateTime)
	in.CloseEnrollmentDateTime = NormalizeTime(in.CloseEnrollmentDateTime)
	in.BeginEventDateTime = NormalizeTime(in.BeginEventDateTime)
	in.EndEventDateTime = NormalizeTime(in.EndEventDateTime)
	return in
}

// NewEventFromInput maps in onto a new draft Event and computes its derived attributes.
// ID is set by the repository on create.
func NewEventFromInput(in EventInput) *Event {
	e := &Event{EventStatus: EventStatusDraft}
	e.Apply(in)
	return e
}

// Apply replaces every mutable field of e with the values from in and recomputes the
// derived attributes. Timestamps are normalized with NormalizeTime. ID and EventStatus
// are left untouched.
func (e *Event) Apply(in EventInput) {
	in = in.Normalize()
	e.Name = in.Name
	e.Description = in.Description
	e.BeginEnrollmentDateTime = in.BeginEnrollmentDateTime
	e.CloseEnrollmentDateTime = in.CloseEnrollmentDateTime
	e.BeginEventDateTime = in.BeginEventDateTime
	e.EndEventDateTime = in.EndEventDateTime
	e.Location = in.Location
	e.BasePrice = in.BasePrice
	e.MaxPrice = in.MaxPrice
	e.LimitOfEnrollment = in.LimitOfEnrollment
	e.Derive()
}

// Derive recomputes Offline and Free from the stored fields.
func (e *Event) Derive() {
	e.Offline = strings.TrimSpace(e.Location) != ""
	e.Free = e.BasePrice == 0 && e.MaxPrice == 0
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id int64) (*Event, error)
	List(ctx context.Context, req PageRequest) (*EventPage, error)
	Update(ctx context.Context, event *Event) error
}

// EventService defines the business operations exposed over HTTP.
type EventService interface {
	CreateEvent(ctx context.Context, in EventInput) (*Event, error)
	GetEvent(ctx context.Context, id int64) (*Event, error)
	ListEvents(ctx context.Context, req PageRequest) (*EventPage, error)
	UpdateEvent(ctx context.Context, id int64, in EventInput) (*Event, error)
}
