package services

import (
	"context"
	"io"
	"net/url"
	"strconv"

	"booknest/internal/backend"
	"booknest/internal/domain"
)

type reservationService struct {
	client *backend.Client
}

// NewReservationService returns the reservations resource service.
//
// Endpoint conventions are pinned to what the backend actually serves:
// "my reservations" is GET /reservations/me and participant cancel is
// PATCH /reservations/:id/cancel.
func NewReservationService(client *backend.Client) domain.ReservationService {
	return &reservationService{client: client}
}

func (s *reservationService) Create(ctx context.Context, in domain.CreateReservationInput) (*domain.Reservation, error) {
	var res domain.Reservation
	if err := s.client.Post(ctx, "/reservations", in, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *reservationService) ListMine(ctx context.Context) ([]*domain.Reservation, error) {
	var list []*domain.Reservation
	if err := s.client.Get(ctx, "/reservations/me", nil, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []*domain.Reservation{}
	}
	return list, nil
}

func (s *reservationService) ListAll(ctx context.Context, filters domain.ReservationFilters) ([]*domain.Reservation, error) {
	q := url.Values{}
	if filters.Status != "" {
		q.Set("status", string(filters.Status))
	}
	if filters.EventID != "" {
		q.Set("eventId", filters.EventID)
	}
	if filters.UserID != "" {
		q.Set("userId", filters.UserID)
	}
	if filters.Page > 0 {
		q.Set("page", strconv.Itoa(filters.Page))
	}
	if filters.Limit > 0 {
		q.Set("limit", strconv.Itoa(filters.Limit))
	}

	var list []*domain.Reservation
	if err := s.client.Get(ctx, "/reservations", q, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []*domain.Reservation{}
	}
	return list, nil
}

func (s *reservationService) ListByEvent(ctx context.Context, eventID string) ([]*domain.Reservation, error) {
	var list []*domain.Reservation
	if err := s.client.Get(ctx, "/reservations/event/"+url.PathEscape(eventID), nil, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []*domain.Reservation{}
	}
	return list, nil
}

func (s *reservationService) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	var res domain.Reservation
	if err := s.client.Get(ctx, "/reservations/"+url.PathEscape(id), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *reservationService) Confirm(ctx context.Context, id string) (*domain.Reservation, error) {
	return s.transition(ctx, id, "confirm")
}

func (s *reservationService) Refuse(ctx context.Context, id string) (*domain.Reservation, error) {
	return s.transition(ctx, id, "refuse")
}

func (s *reservationService) Cancel(ctx context.Context, id string) (*domain.Reservation, error) {
	return s.transition(ctx, id, "cancel")
}

func (s *reservationService) AdminCancel(ctx context.Context, id string) (*domain.Reservation, error) {
	return s.transition(ctx, id, "admin-cancel")
}

func (s *reservationService) transition(ctx context.Context, id, action string) (*domain.Reservation, error) {
	var res domain.Reservation
	if err := s.client.Patch(ctx, "/reservations/"+url.PathEscape(id)+"/"+action, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *reservationService) EventStats(ctx context.Context, eventID string) (*domain.EventReservationStats, error) {
	var stats domain.EventReservationStats
	if err := s.client.Get(ctx, "/reservations/event/"+url.PathEscape(eventID)+"/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *reservationService) DownloadTicket(ctx context.Context, id string) (io.ReadCloser, string, error) {
	return s.client.GetBinary(ctx, "/reservations/"+url.PathEscape(id)+"/ticket")
}
