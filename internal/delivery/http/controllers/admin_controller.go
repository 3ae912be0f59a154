package controllers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"booknest/internal/delivery/http/helpers"
	"booknest/internal/domain"
	"booknest/internal/session"
)

// AdminController serves the moderation screens: dashboard, event management,
// reservation validation, and the user directory.
type AdminController struct {
	Logger       *slog.Logger
	Events       domain.EventService
	Reservations domain.ReservationService
	Users        domain.UserService
	Dashboard    domain.DashboardService
	Store        *session.Store
	now          func() time.Time
}

func NewAdminController(
	logger *slog.Logger,
	events domain.EventService,
	reservations domain.ReservationService,
	users domain.UserService,
	dashboard domain.DashboardService,
	store *session.Store,
) *AdminController {
	return &AdminController{
		Logger:       logger,
		Events:       events,
		Reservations: reservations,
		Users:        users,
		Dashboard:    dashboard,
		Store:        store,
		now:          time.Now,
	}
}

// DashboardStats godoc
// @Summary Admin dashboard statistics
// @Tags admin
// @Produce json
// @Security SessionCookie
// @Success 200 {object} helpers.APIResponse "data contains dashboard stats"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Router /admin/dashboard [get]
func (c *AdminController) DashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := c.Dashboard.AdminStats(r.Context())
	if err != nil {
		helpers.HandleBackendError(w, r, c.Logger, c.Store, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, stats)
}

// ListEvents godoc
// @Summary List events for moderation
// @Description Lists events in any status with the same filters as the public catalogue, plus a status filter.
// @Tags admin
// @Produce json
// @Security SessionCookie
// @Param status query string false "Filter by event status (DRAFT, PUBLISHED, CANCELED)"
// @Success 200 {object} controllers.ListEventsSuccessResponse "data contains event views and pagination meta"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Router /admin/events [get]
func (c *AdminController) ListEvents(w http.ResponseWriter, r *http.Request) {
	filters, ok := parseEventFilters(w, r)
	if !ok {
		return
	}
	if s := domain.EventStatus(r.URL.Query().Get("status")); s != "" {
		if !s.Valid() {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid status")
			return
		}
		filters.Status = s
	}
	events, err := c.Events.List(r.Context(), filters)
	if err != nil {
		helpers.HandleBackendError(w, r, c.Logger, c.Store, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, EventListResponse{
		Events: NewEventViews(events, c.now()),
		Meta:   helpers.NewPaginationMeta(filters.Page, filters.Limit, len(events)),
	})
}

// AdminEventResponse is the moderation detail for one event: the event, its
// reservations with allowed actions, and its reservation statistics.
type AdminEventResponse struct {
	Event        EventView                     `json:"event"`
	Reservations []ReservationView             `json:"reservations"`
	Stats        *domain.EventReservationStats `json:"stats"`
}

// GetEvent godoc
// @Summary Event moderation detail
// @Description Composes the event, its reservations (with allowed admin actions), and reservation statistics.
// @Tags admin
// @Produce json
// @Security SessionCookie
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains the event, reservations, and stats"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/events/{eventID} [get]
func (c *AdminController) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	event, err := c.Events.GetByID(r.Context(), eventID)
	if err != nil {
		helpers.HandleBackendError(w, r, c.Logger, c.Store, err)
		return
	}
	reservations, err := c.Reservations.ListByEvent(r.Context(), eventID)
	if err != nil {
		helpers.HandleBackendError(w, r, c.Logger, c.Store, err)
		return
	}
	stats, err := c.Reservations.EventStats(r.Context(), eventID)
	if err != nil {
		helpers.HandleBackendError(w, r, c.Logger, c.Store, err)
		return
	}
	now := c.now()
	helpers.WriteJSONSuccess(w, http.StatusOK, AdminEventResponse{
		Event:        NewEventView(event, now),
		Reservations: NewReservationViews(reservations, domain.RoleAdmin, now),
		Stats:        stats,
	})
}

// CreateEventRequest is the request body for POST /admin/events.
// Events are created as DRAFT; publication is a separate status transition.
type CreateEventRequest struct {
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Date            time.Time `json:"date"`
	Location        string    `json:"location"`
	MaxParticipants int       `json:"maxParticipants"`
}

// Validate implements Validator.
func (r CreateEventRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.Title) == "" {
		errs = append(errs, "title is required")
	}
	if r.Date.IsZero() {
		errs = append(errs, "date is required")
	}
	if strings.TrimSpace(r.Location) == "" {
		errs = append(errs, "location is required")
	}
	if r.MaxParticipants < 1 {
		errs = append(errs, "maxParticipants must be at least 1")
	}
	return errs
}

// CreateEvent godoc
// @Summary Create an event
// @Tags admin
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param body body CreateEventRequest true "Event data"
// @Success 201 {object} controllers.GetEventSuccessResponse "data contains the created event view"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or validation_error"
// @Router /admin/events [post]
func (c *AdminController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Events.Create(r.Context(), domain.CreateEventInput{
		Title:           req.Title,
		Description:     req.Description,
		Date:            req.Date,
		Location:        req.Location,
		MaxParticipants: req.MaxParticipants,
	})
	if err != nil {
		helpers.HandleBackendError(w, r, c.Logger, c.Store, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, NewEventView(event, c.now()))
}

// UpdateEventRequest is the request body for PATCH /admin/events/{eventID}.
// All fields optional; omitted fields are unchanged.
type UpdateEventRequest struct {
	Title           *string    `json:"title"`
	Description     *string    `json:"description"`
	Date            *time.Time `json:"date"`
	Location        *string    `json:"location"`
	MaxParticipants *int       `json:"maxParticipants"`
}

// Validate implements Validator.
func (r UpdateEventRequest) Validate() []string {
	var errs []string
	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		errs = append(errs, "title must not be empty")
	}
	if r.MaxParticipants != nil && *r.MaxParticipants < 1 {
		errs = append(errs, "maxParticipants must be at least 1")
	}
	return errs
}

// UpdateEvent godoc
// @Summary Update event details
// @Tags admin
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param eventID path string true "Event ID"
// @Param body body UpdateEventRequest true "Fields to update (all optional)"
// @Success 200 {object} controllers.GetEventSuccessResponse "data contains the updated event view"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/events/{eventID} [patch]
func (c *AdminController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	var req UpdateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Events.Update(r.Context(), eventID, domain.UpdateEventInput{
		Title:           req.Title,
		Description:     req.Description,
		Date:            req.Date,
		Location:        req.Location,
		MaxParticipants: req.MaxParticipants,
	})
	if err != nil {
		helpers.HandleBackendError(w, r, c.Logger, c.Store, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, NewEventView(event, c.now()))
}

// DeleteEventResponse is the data payload for DELETE /admin/events/{eventID}.
type DeleteEventResponse struct {
	Status string `json:"status"`
}

// DeleteEvent godoc
// @Summary Delete an event
// @Tags admin
// @Produce json
// @Security SessionCookie
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/events/{eventID} [delete]
func (c *AdminController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	if err := c.Events.Delete(r.Context(), eventID); err != nil {
		helpers.HandleBackendError(w, r, c.Logger, c.Store, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, DeleteEventResponse{Status: "deleted"})
}

// UpdateEventStatusRequest is the request body for PATCH /admin/events/{eventID}/status.
type UpdateEventStatusRequest struct {
	Status domain.EventStatus `json:"status"`
}

// Validate implements Validator.
func (r UpdateEventStatusRequest) Validate() []string {
	if !r.Status.Valid() {
		return []string{"status must be one of DRAFT, PUBLISHED, CANCELED"}
	}
	return nil
}

// UpdateEventStatus godoc
// @Summary Publish or cancel an event
// @Description Transitions the event's publication status. Invalid transitions are rejected by the backend and surfaced.
// @Tags admin
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param eventID path string true "Event ID"
// @Param body body UpdateEventStatusRequest true "Target status"
// @Success 200 {object} controllers.GetEventSuccessResponse "data contains the updated event view"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (invalid transition)"
// @Router /admin/events/{eventID}/status [patch]
func (c *AdminController) UpdateEventStatus(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	var req UpdateEventStatusRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Events.UpdateStatus(r.Context(), eventID, req.Status)
	if err != nil {
		helpers.HandleBackendError(w, r, c.Logger, c.Store, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, NewEventView(event, c.now()))
}

// ListReservations godoc
// @Summary List reservations for validation
// @Description Lists all reservations with optional status, event, user, and pagination filters. Each row carries the admin actions valid for its state.
// @Tags admin
// @Produce json
// @Security SessionCookie
// @Param status query string false "Filter by reservation status"
// @Param eventId query string false "Filter by event"
// @Param userId query string false "Filter by user"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.ListMySuccessResponse "data contains reservation views"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Router /admin/reservations [get]
func (c *AdminController) ListReservations(w http.ResponseWriter, r *http.Request) {
	filters, ok := parseReservationFilters(w, r)
	if !ok {
		return
	}
	list, err := c.Reservations.ListAll(r.Context(), filters)
	if err != nil {
		helpers.HandleBackendError(w, r, c.Logger, c.Store, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ReservationListResponse{
		Reservations: NewReservationViews(list, domain.RoleAdmin, c.now()),
	})
}

// ConfirmReservation godoc
// @Summary Confirm a pending reservation
// @Description Confirms the reservation and re-fetches the filtered list so the screen shows server-side truth. Confirming a reservation that is not PENDING surfaces the backend conflict.
// @Tags admin
// @Produce json
// @Security SessionCookie
// @Param reservationID path string true "Reservation ID"
// @Success 200 {object} helpers.APIResponse "data contains the reservation and the refreshed list"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (not PENDING)"
// @Router /admin/reservations/{reservationID}/confirm [patch]
func (c *AdminController) ConfirmReservation(w http.ResponseWriter, r *http.Request) {
	c.transitionReservation(w, r, c.Reservations.Confirm)
}

// RefuseReservation godoc
// @Summary Refuse a pending reservation
// @Tags admin
// @Produce json
// @Security SessionCookie
// @Param reservationID path string true "Reservation ID"
// @Success 200 {object} helpers.APIResponse "data contains the reservation and the refreshed list"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (not PENDING)"
// @Router /admin/reservations/{reservationID}/refuse [patch]
func (c *AdminController) RefuseReservation(w http.ResponseWriter, r *http.Request) {
	c.transitionReservation(w, r, c.Reservations.Refuse)
}

// AdminCancelReservation godoc
// @Summary Administratively cancel a confirmed reservation
// @Tags admin
// @Produce json
// @Security SessionCookie
// @Param reservationID path string true "Reservation ID"
// @Success 200 {object} helpers.APIResponse "data contains the reservation and the refreshed list"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (not CONFIRMED)"
// @Router /admin/reservations/{reservationID}/admin-cancel [patch]
func (c *AdminController) AdminCancelReservation(w http.ResponseWriter, r *http.Request) {
	c.transitionReservation(w, r, c.Reservations.AdminCancel)
}

// transitionReservation runs one status transition and then re-fetches the
// reservation list with the caller's filters; the response always reflects
// the backend's state, never a local mutation.
func (c *AdminController) transitionReservation(
	w http.ResponseWriter,
	r *http.Request,
	transition func(ctx context.Context, id string) (*domain.Reservation, error),
) {
	reservationID := r.PathValue("reservationID")
	if reservationID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing reservationID")
		return
	}
	// Reject a bad query before mutating anything: a 400 response must
	// mean the transition did not run.
	filters, ok := parseReservationFilters(w, r)
	if !ok {
		return
	}
	res, err := transition(r.Context(), reservationID)
	if err != nil {
		helpers.HandleBackendError(w, r, c.Logger, c.Store, err)
		return
	}
	list, err := c.Reservations.ListAll(r.Context(), filters)
	if err != nil {
		helpers.HandleBackendError(w, r, c.Logger, c.Store, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, CancelResponse{
		Reservation:  res,
		Reservations: NewReservationViews(list, domain.RoleAdmin, c.now()),
	})
}

// parseReservationFilters reads the admin reservation listing query
// parameters. An unknown status yields a 400 and ok=false.
func parseReservationFilters(w http.ResponseWriter, r *http.Request) (domain.ReservationFilters, bool) {
	var filters domain.ReservationFilters
	q := r.URL.Query()

	if s := domain.ReservationStatus(q.Get("status")); s != "" {
		if !s.Valid() {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid status")
			return filters, false
		}
		filters.Status = s
	}
	filters.EventID = q.Get("eventId")
	filters.UserID = q.Get("userId")
	filters.Page, filters.Limit = helpers.ParsePagination(r)
	return filters, true
}

// ListUsers godoc
// @Summary List users
// @Tags admin
// @Produce json
// @Security SessionCookie
// @Success 200 {object} helpers.APIResponse "data is an array of users"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Router /admin/users [get]
func (c *AdminController) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := c.Users.List(r.Context())
	if err != nil {
		helpers.HandleBackendError(w, r, c.Logger, c.Store, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, users)
}

// GetUser godoc
// @Summary Get a user by ID
// @Tags admin
// @Produce json
// @Security SessionCookie
// @Param userID path string true "User ID"
// @Success 200 {object} helpers.APIResponse "data contains the user"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/users/{userID} [get]
func (c *AdminController) GetUser(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userID")
	if userID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing userID")
		return
	}
	user, err := c.Users.GetByID(r.Context(), userID)
	if err != nil {
		helpers.HandleBackendError(w, r, c.Logger, c.Store, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, user)
}
