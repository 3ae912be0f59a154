package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// ReservationStatus is the lifecycle state of a reservation.
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "PENDING"
	ReservationConfirmed ReservationStatus = "CONFIRMED"
	ReservationRefused   ReservationStatus = "REFUSED"
	ReservationCanceled  ReservationStatus = "CANCELED"
)

// Valid reports whether the status is one the backend issues.
func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationPending, ReservationConfirmed, ReservationRefused, ReservationCanceled:
		return true
	}
	return false
}

// Terminal reports whether no further transition is defined out of the status.
func (s ReservationStatus) Terminal() bool {
	return s == ReservationRefused || s == ReservationCanceled
}

// reservationTransitions is the allowed transition table: from -> to -> roles
// that may perform it. It mirrors the backend rules; the backend remains the
// authority and invalid attempts must surface its rejection, never be hidden.
var reservationTransitions = map[ReservationStatus]map[ReservationStatus][]UserRole{
	ReservationPending: {
		ReservationConfirmed: {RoleAdmin},
		ReservationRefused:   {RoleAdmin},
	},
	ReservationConfirmed: {
		ReservationCanceled: {RoleAdmin, RoleParticipant},
	},
}

// CanTransition reports whether actor may move a reservation from one status
// to another. REFUSED and CANCELED are terminal: nothing leaves them.
func CanTransition(from, to ReservationStatus, actor UserRole) bool {
	for _, role := range reservationTransitions[from][to] {
		if role == actor {
			return true
		}
	}
	return false
}

// EventRef is a reference to an event, serialized by the backend either as a
// bare id string or as an embedded event object.
type EventRef struct {
	ID    string
	Event *Event
}

func (r *EventRef) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		return json.Unmarshal(b, &r.ID)
	}
	var e Event
	if err := json.Unmarshal(b, &e); err != nil {
		return fmt.Errorf("unmarshal event ref: %w", err)
	}
	r.ID = e.ID
	r.Event = &e
	return nil
}

func (r EventRef) MarshalJSON() ([]byte, error) {
	if r.Event != nil {
		return json.Marshal(r.Event)
	}
	return json.Marshal(r.ID)
}

// Reservation is a participant's claim on seats of an event.
// swagger:model Reservation
type Reservation struct {
	ID            string            `json:"_id"`
	User          UserRef           `json:"user"`
	Event         EventRef          `json:"event"`
	NumberOfSeats int               `json:"numberOfSeats"`
	Status        ReservationStatus `json:"status"`
	CreatedAt     time.Time         `json:"createdAt,omitzero"`
	UpdatedAt     time.Time         `json:"updatedAt,omitzero"`
}

// ReservationAction is an action a screen may offer on a reservation.
type ReservationAction string

const (
	ActionConfirm        ReservationAction = "confirm"
	ActionRefuse         ReservationAction = "refuse"
	ActionCancel         ReservationAction = "cancel"
	ActionAdminCancel    ReservationAction = "admin-cancel"
	ActionDownloadTicket ReservationAction = "download-ticket"
)

// AllowedActions returns the actions valid for the reservation's current
// status and the actor's role. The participant cancel is additionally gated
// on the event date as a UX hint; the backend stays the source of truth and
// a forced attempt must surface its rejection.
func AllowedActions(res *Reservation, eventDate time.Time, actor UserRole, now time.Time) []ReservationAction {
	var actions []ReservationAction
	if actor.CanModerate() {
		switch res.Status {
		case ReservationPending:
			actions = append(actions, ActionConfirm, ActionRefuse)
		case ReservationConfirmed:
			actions = append(actions, ActionAdminCancel)
		}
		return actions
	}
	if res.Status == ReservationConfirmed {
		actions = append(actions, ActionDownloadTicket)
		if eventDate.After(now) {
			actions = append(actions, ActionCancel)
		}
	}
	return actions
}

// CreateReservationInput is the request body for POST /reservations.
type CreateReservationInput struct {
	EventID       string `json:"eventId"`
	NumberOfSeats int    `json:"numberOfSeats"`
}

// ReservationFilters are the supported query parameters of the admin
// GET /reservations listing.
type ReservationFilters struct {
	Status  ReservationStatus
	EventID string
	UserID  string
	Page    int
	Limit   int
}

// EventReservationStats is the backend response to GET /reservations/event/:id/stats.
// swagger:model EventReservationStats
type EventReservationStats struct {
	Total         int `json:"total"`
	Pending       int `json:"pending"`
	Confirmed     int `json:"confirmed"`
	Refused       int `json:"refused"`
	Canceled      int `json:"canceled"`
	SeatsReserved int `json:"seatsReserved"`
}

// ReservationService defines the typed operations over the backend
// reservations resource. DownloadTicket streams the ticket binary; the
// caller owns closing the reader.
type ReservationService interface {
	Create(ctx context.Context, in CreateReservationInput) (*Reservation, error)
	ListMine(ctx context.Context) ([]*Reservation, error)
	ListAll(ctx context.Context, filters ReservationFilters) ([]*Reservation, error)
	ListByEvent(ctx context.Context, eventID string) ([]*Reservation, error)
	GetByID(ctx context.Context, id string) (*Reservation, error)
	Confirm(ctx context.Context, id string) (*Reservation, error)
	Refuse(ctx context.Context, id string) (*Reservation, error)
	Cancel(ctx context.Context, id string) (*Reservation, error)
	AdminCancel(ctx context.Context, id string) (*Reservation, error)
	EventStats(ctx context.Context, eventID string) (*EventReservationStats, error)
	DownloadTicket(ctx context.Context, id string) (io.ReadCloser, string, error)
}
