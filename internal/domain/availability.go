package domain

import (
	"fmt"
	"time"
)

// AvailabilityLevel is the badge bucket a screen renders for seat availability.
type AvailabilityLevel string

const (
	LevelAvailable AvailabilityLevel = "available"
	LevelLow       AvailabilityLevel = "low"
	LevelFull      AvailabilityLevel = "full"
)

// lowAvailabilityThreshold is the remaining-seats ratio at or below which an
// event is flagged as low availability.
const lowAvailabilityThreshold = 0.20

// Availability is the derived seat-availability state of an event. Every
// screen renders from this one derivation; it is never recomputed inline.
// swagger:model Availability
type Availability struct {
	IsFull            bool              `json:"isFull"`
	IsLowAvailability bool              `json:"isLowAvailability"`
	IsPast            bool              `json:"isPast"`
	CanReserve        bool              `json:"canReserve"`
	FillRatio         float64           `json:"fillRatio"`
	Level             AvailabilityLevel `json:"level"`
}

// ComputeAvailability derives the availability state from seat counts, event
// date, and publication status. IsFull and IsLowAvailability are mutually
// exclusive. CanReserve requires a published, future event with seats left.
func ComputeAvailability(availableSeats, maxParticipants int, date time.Time, status EventStatus, now time.Time) Availability {
	a := Availability{
		IsFull: availableSeats == 0,
		IsPast: date.Before(now),
	}
	if maxParticipants > 0 {
		a.FillRatio = float64(maxParticipants-availableSeats) / float64(maxParticipants)
		a.IsLowAvailability = availableSeats > 0 &&
			float64(availableSeats)/float64(maxParticipants) <= lowAvailabilityThreshold
	}
	a.CanReserve = status.Bookable() && !a.IsFull && !a.IsPast && availableSeats > 0

	switch {
	case a.IsFull:
		a.Level = LevelFull
	case a.IsLowAvailability:
		a.Level = LevelLow
	default:
		a.Level = LevelAvailable
	}
	return a
}

// Availability derives the event's availability state at the given instant.
func (e *Event) Availability(now time.Time) Availability {
	return ComputeAvailability(e.AvailableSeats, e.MaxParticipants, e.Date, e.Status, now)
}

// CheckSeatRequest validates a seat request against the seats currently
// available, before any network call. A request for more seats than remain
// yields a conflict with the user-facing message; the backend re-checks on
// create since seats are a shared resource.
func CheckSeatRequest(requested, available int) error {
	if requested < 1 {
		return NewAPIError(400, "Le nombre de places doit être au moins 1", nil)
	}
	if requested > available {
		return NewAPIError(409, fmt.Sprintf("Seulement %d places disponibles", available), nil)
	}
	return nil
}
