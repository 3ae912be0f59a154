package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"booknest/internal/delivery/http/helpers"
	"booknest/internal/domain"
)

func newReservationsController(res *fakeReservationService, events *fakeEventService, dash *fakeDashboardService) *ReservationsController {
	c := NewReservationsController(testLogger(), res, events, dash, testStore())
	c.now = func() time.Time { return testNow }
	return c
}

func doRequest(t *testing.T, handler http.HandlerFunc, method, target, pathKey, pathValue, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	r := httptest.NewRequest(method, target, reader)
	if pathKey != "" {
		r.SetPathValue(pathKey, pathValue)
	}
	rec := httptest.NewRecorder()
	handler(rec, r)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) *helpers.APIError {
	t.Helper()
	var resp helpers.APIResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.NotNil(t, resp.Error)
	return resp.Error
}

func TestCreateReservation_Success(t *testing.T) {
	created := &domain.Reservation{ID: "res-1", Status: domain.ReservationPending, NumberOfSeats: 2}
	fetches := 0
	events := &fakeEventService{
		GetByIDFn: func(ctx context.Context, id string) (*domain.Event, error) {
			fetches++
			if fetches == 1 {
				return publishedEvent("evt-1", 5, 10), nil
			}
			// The post-booking re-fetch sees the decremented count.
			return publishedEvent("evt-1", 3, 10), nil
		},
	}
	var gotInput domain.CreateReservationInput
	reservations := &fakeReservationService{
		CreateFn: func(ctx context.Context, in domain.CreateReservationInput) (*domain.Reservation, error) {
			gotInput = in
			return created, nil
		},
	}
	c := newReservationsController(reservations, events, nil)

	rec := doRequest(t, c.CreateReservation, http.MethodPost, "/events/evt-1/reservations",
		"eventID", "evt-1", `{"numberOfSeats":2}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, domain.CreateReservationInput{EventID: "evt-1", NumberOfSeats: 2}, gotInput)
	assert.Equal(t, 2, fetches)

	var resp struct {
		Data CreateReservationResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "res-1", resp.Data.Reservation.ID)
	assert.Equal(t, 3, resp.Data.Event.Event.AvailableSeats)
}

func TestCreateReservation_RejectedBeforeBooking(t *testing.T) {
	tests := []struct {
		name        string
		event       *domain.Event
		body        string
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "more seats than available",
			event:       publishedEvent("evt-1", 2, 10),
			body:        `{"numberOfSeats":3}`,
			wantStatus:  http.StatusConflict,
			wantMessage: "Seulement 2 places disponibles",
		},
		{
			name: "full event",
			event: &domain.Event{
				ID: "evt-1", Date: testNow.Add(time.Hour),
				MaxParticipants: 10, AvailableSeats: 0, Status: domain.EventPublished,
			},
			body:        `{"numberOfSeats":1}`,
			wantStatus:  http.StatusConflict,
			wantMessage: "Toutes les places sont réservées",
		},
		{
			name: "past event",
			event: &domain.Event{
				ID: "evt-1", Date: testNow.Add(-time.Hour),
				MaxParticipants: 10, AvailableSeats: 5, Status: domain.EventPublished,
			},
			body:        `{"numberOfSeats":1}`,
			wantStatus:  http.StatusConflict,
			wantMessage: "Cet événement est déjà passé",
		},
		{
			name: "draft event",
			event: &domain.Event{
				ID: "evt-1", Date: testNow.Add(time.Hour),
				MaxParticipants: 10, AvailableSeats: 5, Status: domain.EventDraft,
			},
			body:        `{"numberOfSeats":1}`,
			wantStatus:  http.StatusConflict,
			wantMessage: "Cet événement n'est pas ouvert à la réservation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := &fakeEventService{
				GetByIDFn: func(ctx context.Context, id string) (*domain.Event, error) { return tt.event, nil },
			}
			reservations := &fakeReservationService{
				CreateFn: func(ctx context.Context, in domain.CreateReservationInput) (*domain.Reservation, error) {
					t.Fatal("Create must not be called when the pre-check rejects")
					return nil, nil
				},
			}
			c := newReservationsController(reservations, events, nil)

			rec := doRequest(t, c.CreateReservation, http.MethodPost, "/events/evt-1/reservations",
				"eventID", "evt-1", tt.body)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMessage, decodeError(t, rec).Message)
		})
	}
}

func TestCreateReservation_InvalidBody(t *testing.T) {
	c := newReservationsController(&fakeReservationService{}, &fakeEventService{}, nil)

	rec := doRequest(t, c.CreateReservation, http.MethodPost, "/events/evt-1/reservations",
		"eventID", "evt-1", `{"numberOfSeats":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, c.CreateReservation, http.MethodPost, "/events/evt-1/reservations",
		"eventID", "evt-1", `{"seats":2}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateReservation_BackendConflictSurfaces(t *testing.T) {
	// The pre-check passes but the backend loses the race.
	events := &fakeEventService{
		GetByIDFn: func(ctx context.Context, id string) (*domain.Event, error) {
			return publishedEvent("evt-1", 2, 10), nil
		},
	}
	reservations := &fakeReservationService{
		CreateFn: func(ctx context.Context, in domain.CreateReservationInput) (*domain.Reservation, error) {
			return nil, domain.NewAPIError(409, "Seulement 1 places disponibles", nil)
		},
	}
	c := newReservationsController(reservations, events, nil)

	rec := doRequest(t, c.CreateReservation, http.MethodPost, "/events/evt-1/reservations",
		"eventID", "evt-1", `{"numberOfSeats":2}`)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Seulement 1 places disponibles", decodeError(t, rec).Message)
}

func TestCreateReservation_FailedRefetchStillReportsBooking(t *testing.T) {
	fetches := 0
	events := &fakeEventService{
		GetByIDFn: func(ctx context.Context, id string) (*domain.Event, error) {
			fetches++
			if fetches == 1 {
				return publishedEvent("evt-1", 5, 10), nil
			}
			return nil, domain.NewAPIError(500, "", nil)
		},
	}
	reservations := &fakeReservationService{
		CreateFn: func(ctx context.Context, in domain.CreateReservationInput) (*domain.Reservation, error) {
			return &domain.Reservation{ID: "res-1", Status: domain.ReservationPending}, nil
		},
	}
	c := newReservationsController(reservations, events, nil)

	rec := doRequest(t, c.CreateReservation, http.MethodPost, "/events/evt-1/reservations",
		"eventID", "evt-1", `{"numberOfSeats":1}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp struct {
		Data CreateReservationResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 5, resp.Data.Event.Event.AvailableSeats)
}

func TestListMyReservations(t *testing.T) {
	list := []*domain.Reservation{
		{ID: "res-1", Status: domain.ReservationConfirmed, Event: domain.EventRef{ID: "evt-1", Event: publishedEvent("evt-1", 5, 10)}},
		{ID: "res-2", Status: domain.ReservationPending},
		{ID: "res-3", Status: domain.ReservationCanceled},
	}
	reservations := &fakeReservationService{
		ListMineFn: func(ctx context.Context) ([]*domain.Reservation, error) { return list, nil },
	}
	c := newReservationsController(reservations, nil, nil)

	t.Run("unfiltered", func(t *testing.T) {
		rec := doRequest(t, c.ListMyReservations, http.MethodGet, "/participant/reservations", "", "", "")
		require.Equal(t, http.StatusOK, rec.Code)
		var resp struct {
			Data ReservationListResponse `json:"data"`
		}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.Len(t, resp.Data.Reservations, 3)
		// Confirmed reservation on an upcoming event offers ticket download and cancel.
		assert.ElementsMatch(t,
			[]domain.ReservationAction{domain.ActionDownloadTicket, domain.ActionCancel},
			resp.Data.Reservations[0].Actions)
		// Pending offers nothing to a participant.
		assert.Empty(t, resp.Data.Reservations[1].Actions)
	})

	t.Run("status filter applied in memory", func(t *testing.T) {
		list = []*domain.Reservation{
			{ID: "res-1", Status: domain.ReservationConfirmed},
			{ID: "res-2", Status: domain.ReservationPending},
		}
		rec := doRequest(t, c.ListMyReservations, http.MethodGet, "/participant/reservations?status=PENDING", "", "", "")
		require.Equal(t, http.StatusOK, rec.Code)
		var resp struct {
			Data ReservationListResponse `json:"data"`
		}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.Len(t, resp.Data.Reservations, 1)
		assert.Equal(t, "res-2", resp.Data.Reservations[0].Reservation.ID)
	})
}

func TestCancelReservation(t *testing.T) {
	canceled := &domain.Reservation{ID: "res-1", Status: domain.ReservationCanceled}
	var canceledID string
	reservations := &fakeReservationService{
		CancelFn: func(ctx context.Context, id string) (*domain.Reservation, error) {
			canceledID = id
			return canceled, nil
		},
		ListMineFn: func(ctx context.Context) ([]*domain.Reservation, error) {
			return []*domain.Reservation{canceled}, nil
		},
	}
	c := newReservationsController(reservations, nil, nil)

	rec := doRequest(t, c.CancelReservation, http.MethodPatch, "/participant/reservations/res-1/cancel",
		"reservationID", "res-1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "res-1", canceledID)
	var resp struct {
		Data CancelResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, domain.ReservationCanceled, resp.Data.Reservation.Status)
	require.Len(t, resp.Data.Reservations, 1)
}

func TestCancelReservation_BackendRejectionSurfaces(t *testing.T) {
	reservations := &fakeReservationService{
		CancelFn: func(ctx context.Context, id string) (*domain.Reservation, error) {
			return nil, domain.NewAPIError(409, "Cette réservation ne peut plus être annulée", nil)
		},
	}
	c := newReservationsController(reservations, nil, nil)

	rec := doRequest(t, c.CancelReservation, http.MethodPatch, "/participant/reservations/res-1/cancel",
		"reservationID", "res-1", "")

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Cette réservation ne peut plus être annulée", decodeError(t, rec).Message)
}

func TestDownloadTicket(t *testing.T) {
	reservations := &fakeReservationService{
		DownloadTicketFn: func(ctx context.Context, id string) (io.ReadCloser, string, error) {
			return io.NopCloser(strings.NewReader("%PDF-1.4 ticket")), "application/pdf", nil
		},
	}
	c := newReservationsController(reservations, nil, nil)

	rec := doRequest(t, c.DownloadTicket, http.MethodGet, "/participant/reservations/res-1/ticket",
		"reservationID", "res-1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="ticket-res-1.pdf"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF-1.4 ticket", rec.Body.String())
}

func TestDownloadTicket_NotFound(t *testing.T) {
	reservations := &fakeReservationService{
		DownloadTicketFn: func(ctx context.Context, id string) (io.ReadCloser, string, error) {
			return nil, "", domain.NewAPIError(404, "Reservation not found", nil)
		},
	}
	c := newReservationsController(reservations, nil, nil)

	rec := doRequest(t, c.DownloadTicket, http.MethodGet, "/participant/reservations/nope/ticket",
		"reservationID", "nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestParticipantDashboard(t *testing.T) {
	dash := &fakeDashboardService{
		ParticipantStatsFn: func(ctx context.Context) (*domain.ParticipantStats, error) {
			return &domain.ParticipantStats{TotalReservations: 4, UpcomingEvents: 2}, nil
		},
	}
	reservations := &fakeReservationService{
		ListMineFn: func(ctx context.Context) ([]*domain.Reservation, error) {
			return []*domain.Reservation{{ID: "res-1", Status: domain.ReservationConfirmed}}, nil
		},
	}
	c := newReservationsController(reservations, nil, dash)

	rec := doRequest(t, c.ShowDashboard, http.MethodGet, "/participant/dashboard", "", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Data ParticipantDashboardResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 4, resp.Data.Stats.TotalReservations)
	require.Len(t, resp.Data.Reservations, 1)
}
