package controllers

import (
	"time"

	"booknest/internal/domain"
)

// EventView is an event decorated with its derived availability state, the
// shape every screen renders from.
// swagger:model EventView
type EventView struct {
	Event        *domain.Event       `json:"event"`
	Availability domain.Availability `json:"availability"`
}

// NewEventView derives the availability of an event at the given instant.
func NewEventView(e *domain.Event, now time.Time) EventView {
	return EventView{Event: e, Availability: e.Availability(now)}
}

// NewEventViews maps a list of events to views.
func NewEventViews(events []*domain.Event, now time.Time) []EventView {
	views := make([]EventView, 0, len(events))
	for _, e := range events {
		views = append(views, NewEventView(e, now))
	}
	return views
}

// ReservationView is a reservation decorated with the actions the actor may
// take on it in its current state. Screens render only these actions.
// swagger:model ReservationView
type ReservationView struct {
	Reservation *domain.Reservation        `json:"reservation"`
	Actions     []domain.ReservationAction `json:"actions"`
}

// NewReservationView computes the allowed actions for the actor. The event
// date gate on participant cancel only applies when the backend populated
// the event reference; with a bare id the cancel action is not offered.
func NewReservationView(res *domain.Reservation, actor domain.UserRole, now time.Time) ReservationView {
	var eventDate time.Time
	if res.Event.Event != nil {
		eventDate = res.Event.Event.Date
	}
	actions := domain.AllowedActions(res, eventDate, actor, now)
	if actions == nil {
		actions = []domain.ReservationAction{}
	}
	return ReservationView{Reservation: res, Actions: actions}
}

// NewReservationViews maps a list of reservations to views.
func NewReservationViews(list []*domain.Reservation, actor domain.UserRole, now time.Time) []ReservationView {
	views := make([]ReservationView, 0, len(list))
	for _, res := range list {
		views = append(views, NewReservationView(res, actor, now))
	}
	return views
}
