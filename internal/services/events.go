package services

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"booknest/internal/backend"
	"booknest/internal/domain"
)

type eventService struct {
	client *backend.Client
	now    func() time.Time
}

// NewEventService returns the events resource service. Every call is a thin
// pass-through to the backend; errors surface untouched.
func NewEventService(client *backend.Client) domain.EventService {
	return &eventService{client: client, now: time.Now}
}

func (s *eventService) List(ctx context.Context, filters domain.EventFilters) ([]*domain.Event, error) {
	q := url.Values{}
	if filters.Status != "" {
		q.Set("status", string(filters.Status))
	}
	if filters.StartDate != nil {
		q.Set("startDate", filters.StartDate.UTC().Format(time.RFC3339))
	}
	if filters.EndDate != nil {
		q.Set("endDate", filters.EndDate.UTC().Format(time.RFC3339))
	}
	if filters.Search != "" {
		q.Set("search", filters.Search)
	}
	if filters.Page > 0 {
		q.Set("page", strconv.Itoa(filters.Page))
	}
	if filters.Limit > 0 {
		q.Set("limit", strconv.Itoa(filters.Limit))
	}

	var events []*domain.Event
	if err := s.client.Get(ctx, "/events", q, &events); err != nil {
		return nil, err
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

func (s *eventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	var event domain.Event
	if err := s.client.Get(ctx, "/events/"+url.PathEscape(id), nil, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (s *eventService) Create(ctx context.Context, in domain.CreateEventInput) (*domain.Event, error) {
	var event domain.Event
	if err := s.client.Post(ctx, "/events", in, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (s *eventService) Update(ctx context.Context, id string, in domain.UpdateEventInput) (*domain.Event, error) {
	var event domain.Event
	if err := s.client.Patch(ctx, "/events/"+url.PathEscape(id), in, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (s *eventService) Delete(ctx context.Context, id string) error {
	return s.client.Delete(ctx, "/events/"+url.PathEscape(id), nil)
}

func (s *eventService) UpdateStatus(ctx context.Context, id string, status domain.EventStatus) (*domain.Event, error) {
	body := struct {
		Status domain.EventStatus `json:"status"`
	}{Status: status}
	var event domain.Event
	if err := s.client.Patch(ctx, "/events/"+url.PathEscape(id)+"/status", body, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (s *eventService) ListPublished(ctx context.Context) ([]*domain.Event, error) {
	return s.List(ctx, domain.EventFilters{Status: domain.EventPublished})
}

func (s *eventService) ListUpcoming(ctx context.Context) ([]*domain.Event, error) {
	now := s.now()
	return s.List(ctx, domain.EventFilters{
		Status:    domain.EventPublished,
		StartDate: &now,
	})
}
