package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// EventStatus is the publication state of an event.
type EventStatus string

const (
	EventDraft     EventStatus = "DRAFT"
	EventPublished EventStatus = "PUBLISHED"
	EventCanceled  EventStatus = "CANCELED"
)

// Valid reports whether the status is one the backend accepts.
func (s EventStatus) Valid() bool {
	return s == EventDraft || s == EventPublished || s == EventCanceled
}

// Bookable reports whether the status allows reservations. DRAFT and
// CANCELED are terminal with respect to booking eligibility.
func (s EventStatus) Bookable() bool { return s == EventPublished }

// UserRef is a reference to a user that the backend serializes either as a
// bare id string or as an embedded user object, depending on population.
type UserRef struct {
	ID   string
	User *User
}

func (r *UserRef) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		return json.Unmarshal(b, &r.ID)
	}
	var u User
	if err := json.Unmarshal(b, &u); err != nil {
		return fmt.Errorf("unmarshal user ref: %w", err)
	}
	r.ID = u.ID
	r.User = &u
	return nil
}

func (r UserRef) MarshalJSON() ([]byte, error) {
	if r.User != nil {
		return json.Marshal(r.User)
	}
	return json.Marshal(r.ID)
}

// Event represents a bookable activity as returned by the backend.
// Invariant (enforced server-side): 0 <= AvailableSeats <= MaxParticipants.
// swagger:model Event
type Event struct {
	ID              string      `json:"_id"`
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	Date            time.Time   `json:"date"`
	Location        string      `json:"location"`
	MaxParticipants int         `json:"maxParticipants"`
	AvailableSeats  int         `json:"availableSeats"`
	Status          EventStatus `json:"status"`
	CreatedBy       UserRef     `json:"createdBy"`
	CreatedAt       time.Time   `json:"createdAt,omitzero"`
	UpdatedAt       time.Time   `json:"updatedAt,omitzero"`
}

// SeatsConsistent reports whether the seat counts respect the capacity invariant.
func (e *Event) SeatsConsistent() bool {
	return e.AvailableSeats >= 0 && e.AvailableSeats <= e.MaxParticipants
}

// EventFilters are the supported query parameters of GET /events.
type EventFilters struct {
	Status    EventStatus
	StartDate *time.Time
	EndDate   *time.Time
	Search    string
	Page      int
	Limit     int
}

// CreateEventInput is the request body for POST /events.
type CreateEventInput struct {
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Date            time.Time `json:"date"`
	Location        string    `json:"location"`
	MaxParticipants int       `json:"maxParticipants"`
}

// UpdateEventInput is the request body for PATCH /events/:id.
// Nil fields are omitted and left unchanged by the backend.
type UpdateEventInput struct {
	Title           *string    `json:"title,omitempty"`
	Description     *string    `json:"description,omitempty"`
	Date            *time.Time `json:"date,omitempty"`
	Location        *string    `json:"location,omitempty"`
	MaxParticipants *int       `json:"maxParticipants,omitempty"`
}

// EventService defines the typed operations over the backend events resource.
type EventService interface {
	List(ctx context.Context, filters EventFilters) ([]*Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	Create(ctx context.Context, in CreateEventInput) (*Event, error)
	Update(ctx context.Context, id string, in UpdateEventInput) (*Event, error)
	Delete(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id string, status EventStatus) (*Event, error)
	ListPublished(ctx context.Context) ([]*Event, error)
	ListUpcoming(ctx context.Context) ([]*Event, error)
}
