package controllers

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"booknest/internal/delivery/http/helpers"
	"booknest/internal/domain"
	"booknest/internal/session"
)

// ReservationsController serves the participant-facing screens: the booking
// flow, the reservations list with self-service cancel, the ticket download,
// and the participant dashboard.
type ReservationsController struct {
	Logger       *slog.Logger
	Reservations domain.ReservationService
	Events       domain.EventService
	Dashboard    domain.DashboardService
	Store        *session.Store
	now          func() time.Time
}

func NewReservationsController(
	logger *slog.Logger,
	reservations domain.ReservationService,
	events domain.EventService,
	dashboard domain.DashboardService,
	store *session.Store,
) *ReservationsController {
	return &ReservationsController{
		Logger:       logger,
		Reservations: reservations,
		Events:       events,
		Dashboard:    dashboard,
		Store:        store,
		now:          time.Now,
	}
}

// CreateReservationRequest is the request body for POST /events/{eventID}/reservations.
type CreateReservationRequest struct {
	NumberOfSeats int `json:"numberOfSeats"`
}

// Validate implements Validator.
func (r CreateReservationRequest) Validate() []string {
	if r.NumberOfSeats < 1 {
		return []string{"numberOfSeats must be at least 1"}
	}
	return nil
}

// CreateReservationResponse is the data payload after booking: the created
// reservation plus the event re-fetched so the screen renders fresh seat counts.
type CreateReservationResponse struct {
	Reservation *domain.Reservation `json:"reservation"`
	Event       EventView           `json:"event"`
}

// CreateReservationSuccessResponse is the success envelope for the booking flow (201).
type CreateReservationSuccessResponse struct {
	Data  CreateReservationResponse `json:"data"`
	Error *helpers.APIError         `json:"error"`
}

// CreateReservation godoc
// @Summary Reserve seats on an event
// @Description Books numberOfSeats on a published, future event. A request exceeding the seats currently available is rejected before any booking call; concurrent booking races are resolved by the backend and surface as a conflict.
// @Tags reservations
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param eventID path string true "Event ID"
// @Param body body CreateReservationRequest true "Seats to reserve"
// @Success 201 {object} controllers.CreateReservationSuccessResponse "data contains the reservation and the refreshed event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or validation_error"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (seats no longer available)"
// @Router /events/{eventID}/reservations [post]
func (c *ReservationsController) CreateReservation(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	var req CreateReservationRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	event, err := c.Events.GetByID(r.Context(), eventID)
	if err != nil {
		helpers.HandleBackendError(w, r, c.Logger, c.Store, err)
		return
	}

	now := c.now()
	if avail := event.Availability(now); !avail.CanReserve {
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, reserveBlockedMessage(avail))
		return
	}
	if err := domain.CheckSeatRequest(req.NumberOfSeats, event.AvailableSeats); err != nil {
		helpers.HandleBackendError(w, r, c.Logger, c.Store, err)
		return
	}

	res, err := c.Reservations.Create(r.Context(), domain.CreateReservationInput{
		EventID:       eventID,
		NumberOfSeats: req.NumberOfSeats,
	})
	if err != nil {
		helpers.HandleBackendError(w, r, c.Logger, c.Store, err)
		return
	}

	// Seat counts are server-side truth: re-fetch rather than patching the
	// local copy. A failed re-fetch still reports the successful booking.
	refreshed, err := c.Events.GetByID(r.Context(), eventID)
	if err != nil {
		refreshed = event
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, CreateReservationResponse{
		Reservation: res,
		Event:       NewEventView(refreshed, now),
	})
}

// reserveBlockedMessage explains why the booking flow is closed for an event.
func reserveBlockedMessage(avail domain.Availability) string {
	switch {
	case avail.IsPast:
		return "Cet événement est déjà passé"
	case avail.IsFull:
		return "Toutes les places sont réservées"
	default:
		return "Cet événement n'est pas ouvert à la réservation"
	}
}

// ReservationListResponse is the data payload of a reservations list screen.
type ReservationListResponse struct {
	Reservations []ReservationView `json:"reservations"`
}

// ListMySuccessResponse is the success envelope for GET /participant/reservations (200).
type ListMySuccessResponse struct {
	Data  ReservationListResponse `json:"data"`
	Error *helpers.APIError       `json:"error"`
}

// ListMyReservations godoc
// @Summary List the authenticated participant's reservations
// @Description Lists the participant's reservations with the actions valid for each (cancel, ticket download). The optional status filter is applied in memory to the fetched list.
// @Tags reservations
// @Produce json
// @Security SessionCookie
// @Param status query string false "Filter by reservation status"
// @Success 200 {object} controllers.ListMySuccessResponse "data contains reservation views"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /participant/reservations [get]
func (c *ReservationsController) ListMyReservations(w http.ResponseWriter, r *http.Request) {
	list, err := c.Reservations.ListMine(r.Context())
	if err != nil {
		helpers.HandleBackendError(w, r, c.Logger, c.Store, err)
		return
	}
	if s := domain.ReservationStatus(r.URL.Query().Get("status")); s != "" && s.Valid() {
		filtered := list[:0]
		for _, res := range list {
			if res.Status == s {
				filtered = append(filtered, res)
			}
		}
		list = filtered
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ReservationListResponse{
		Reservations: NewReservationViews(list, domain.RoleParticipant, c.now()),
	})
}

// CancelResponse is the data payload after a self-service cancel: the
// canceled reservation plus the re-fetched list.
type CancelResponse struct {
	Reservation  *domain.Reservation `json:"reservation"`
	Reservations []ReservationView   `json:"reservations"`
}

// CancelReservation godoc
// @Summary Cancel a confirmed reservation
// @Description Cancels the participant's reservation. The date gate is a UX hint; the backend decides, and its rejection is surfaced, never hidden.
// @Tags reservations
// @Produce json
// @Security SessionCookie
// @Param reservationID path string true "Reservation ID"
// @Success 200 {object} helpers.APIResponse "data contains the reservation and the refreshed list"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (invalid state)"
// @Router /participant/reservations/{reservationID}/cancel [patch]
func (c *ReservationsController) CancelReservation(w http.ResponseWriter, r *http.Request) {
	reservationID := r.PathValue("reservationID")
	if reservationID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing reservationID")
		return
	}
	res, err := c.Reservations.Cancel(r.Context(), reservationID)
	if err != nil {
		helpers.HandleBackendError(w, r, c.Logger, c.Store, err)
		return
	}
	list, err := c.Reservations.ListMine(r.Context())
	if err != nil {
		helpers.HandleBackendError(w, r, c.Logger, c.Store, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, CancelResponse{
		Reservation:  res,
		Reservations: NewReservationViews(list, domain.RoleParticipant, c.now()),
	})
}

// DownloadTicket godoc
// @Summary Download the ticket for a confirmed reservation
// @Description Streams the ticket binary from the backend.
// @Tags reservations
// @Produce application/octet-stream
// @Security SessionCookie
// @Param reservationID path string true "Reservation ID"
// @Success 200 {file} file "ticket"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /participant/reservations/{reservationID}/ticket [get]
func (c *ReservationsController) DownloadTicket(w http.ResponseWriter, r *http.Request) {
	reservationID := r.PathValue("reservationID")
	if reservationID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing reservationID")
		return
	}
	body, contentType, err := c.Reservations.DownloadTicket(r.Context(), reservationID)
	if err != nil {
		helpers.HandleBackendError(w, r, c.Logger, c.Store, err)
		return
	}
	defer body.Close()

	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "ticket-"+reservationID+".pdf"))
	if _, err := io.Copy(w, body); err != nil {
		c.Logger.ErrorContext(r.Context(), "ticket stream interrupted", "reservation_id", reservationID, "err", err)
	}
}

// ParticipantDashboardResponse is the data payload of the participant dashboard.
type ParticipantDashboardResponse struct {
	Stats        *domain.ParticipantStats `json:"stats"`
	Reservations []ReservationView        `json:"reservations"`
}

// ShowDashboard godoc
// @Summary Participant dashboard
// @Description Composes the participant's statistics and reservation list.
// @Tags reservations
// @Produce json
// @Security SessionCookie
// @Success 200 {object} helpers.APIResponse "data contains stats and reservation views"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /participant/dashboard [get]
func (c *ReservationsController) ShowDashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := c.Dashboard.ParticipantStats(r.Context())
	if err != nil {
		helpers.HandleBackendError(w, r, c.Logger, c.Store, err)
		return
	}
	list, err := c.Reservations.ListMine(r.Context())
	if err != nil {
		helpers.HandleBackendError(w, r, c.Logger, c.Store, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ParticipantDashboardResponse{
		Stats:        stats,
		Reservations: NewReservationViews(list, domain.RoleParticipant, c.now()),
	})
}
