package services

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"booknest/internal/domain"
)

func TestReservationService_Create(t *testing.T) {
	client, rec := newRecordingBackend(t, http.StatusCreated, `{"_id":"res-1","status":"PENDING","numberOfSeats":2}`)
	svc := NewReservationService(client)

	res, err := svc.Create(context.Background(), domain.CreateReservationInput{EventID: "evt-1", NumberOfSeats: 2})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, rec.Method)
	assert.Equal(t, "/reservations", rec.Path)
	assert.JSONEq(t, `{"eventId":"evt-1","numberOfSeats":2}`, string(rec.Body))
	assert.Equal(t, domain.ReservationPending, res.Status)
}

func TestReservationService_ListMine(t *testing.T) {
	client, rec := newRecordingBackend(t, http.StatusOK, `null`)
	svc := NewReservationService(client)

	list, err := svc.ListMine(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/reservations/me", rec.Path)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestReservationService_ListAll_QueryConstruction(t *testing.T) {
	client, rec := newRecordingBackend(t, http.StatusOK, `[]`)
	svc := NewReservationService(client)

	_, err := svc.ListAll(context.Background(), domain.ReservationFilters{
		Status:  domain.ReservationPending,
		EventID: "evt-1",
		UserID:  "usr-1",
		Page:    3,
		Limit:   50,
	})
	require.NoError(t, err)
	assert.Equal(t, "/reservations", rec.Path)
	assert.Equal(t, "PENDING", rec.Query["status"][0])
	assert.Equal(t, "evt-1", rec.Query["eventId"][0])
	assert.Equal(t, "usr-1", rec.Query["userId"][0])
	assert.Equal(t, "3", rec.Query["page"][0])
	assert.Equal(t, "50", rec.Query["limit"][0])
}

func TestReservationService_Transitions(t *testing.T) {
	tests := []struct {
		name     string
		call     func(svc domain.ReservationService) (*domain.Reservation, error)
		wantPath string
	}{
		{
			name: "confirm",
			call: func(svc domain.ReservationService) (*domain.Reservation, error) {
				return svc.Confirm(context.Background(), "res-1")
			},
			wantPath: "/reservations/res-1/confirm",
		},
		{
			name: "refuse",
			call: func(svc domain.ReservationService) (*domain.Reservation, error) {
				return svc.Refuse(context.Background(), "res-1")
			},
			wantPath: "/reservations/res-1/refuse",
		},
		{
			name: "cancel",
			call: func(svc domain.ReservationService) (*domain.Reservation, error) {
				return svc.Cancel(context.Background(), "res-1")
			},
			wantPath: "/reservations/res-1/cancel",
		},
		{
			name: "admin cancel",
			call: func(svc domain.ReservationService) (*domain.Reservation, error) {
				return svc.AdminCancel(context.Background(), "res-1")
			},
			wantPath: "/reservations/res-1/admin-cancel",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, rec := newRecordingBackend(t, http.StatusOK, `{"_id":"res-1","status":"CONFIRMED"}`)
			svc := NewReservationService(client)

			res, err := tt.call(svc)
			require.NoError(t, err)
			assert.Equal(t, http.MethodPatch, rec.Method)
			assert.Equal(t, tt.wantPath, rec.Path)
			assert.Equal(t, "res-1", res.ID)
		})
	}
}

func TestReservationService_ListByEvent(t *testing.T) {
	client, rec := newRecordingBackend(t, http.StatusOK, `[{"_id":"res-1","event":"evt-1","status":"PENDING"}]`)
	svc := NewReservationService(client)

	list, err := svc.ListByEvent(context.Background(), "evt-1")
	require.NoError(t, err)
	assert.Equal(t, "/reservations/event/evt-1", rec.Path)
	require.Len(t, list, 1)
	assert.Equal(t, "evt-1", list[0].Event.ID)
}

func TestReservationService_EventStats(t *testing.T) {
	client, rec := newRecordingBackend(t, http.StatusOK, `{"total":5,"pending":2,"confirmed":3,"seatsReserved":8}`)
	svc := NewReservationService(client)

	stats, err := svc.EventStats(context.Background(), "evt-1")
	require.NoError(t, err)
	assert.Equal(t, "/reservations/event/evt-1/stats", rec.Path)
	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 8, stats.SeatsReserved)
}

func TestReservationService_DownloadTicket(t *testing.T) {
	client, rec := newRecordingBackend(t, http.StatusOK, "%PDF-1.4 ticket")
	svc := NewReservationService(client)

	body, _, err := svc.DownloadTicket(context.Background(), "res-1")
	require.NoError(t, err)
	defer body.Close()

	assert.Equal(t, "/reservations/res-1/ticket", rec.Path)
	raw, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 ticket", string(raw))
}
