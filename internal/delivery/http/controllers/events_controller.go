package controllers

import (
	"log/slog"
	"net/http"
	"time"

	"booknest/internal/delivery/http/helpers"
	"booknest/internal/domain"
	"booknest/internal/session"
)

// EventsController serves the public browsing screens: the home page, the
// event catalogue, and the event detail view.
type EventsController struct {
	Logger *slog.Logger
	Events domain.EventService
	Store  *session.Store
	now    func() time.Time
}

func NewEventsController(logger *slog.Logger, events domain.EventService, store *session.Store) *EventsController {
	return &EventsController{Logger: logger, Events: events, Store: store, now: time.Now}
}

// EventListResponse is the data payload of the event catalogue.
type EventListResponse struct {
	Events []EventView            `json:"events"`
	Meta   helpers.PaginationMeta `json:"meta"`
}

// ListEventsSuccessResponse is the success envelope for GET /events (200).
type ListEventsSuccessResponse struct {
	Data  EventListResponse `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListEvents godoc
// @Summary Browse published events
// @Description Lists published events with optional date range, free-text search, and pagination. Each event carries its derived availability state.
// @Tags events
// @Produce json
// @Param search query string false "Free-text search"
// @Param startDate query string false "RFC 3339 lower bound on event date"
// @Param endDate query string false "RFC 3339 upper bound on event date"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.ListEventsSuccessResponse "data contains events and pagination meta"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /events [get]
func (c *EventsController) ListEvents(w http.ResponseWriter, r *http.Request) {
	filters, ok := parseEventFilters(w, r)
	if !ok {
		return
	}
	// The public catalogue only ever shows published events.
	filters.Status = domain.EventPublished

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

// GetEventSuccessResponse is the success envelope for GET /events/{eventID} (200).
type GetEventSuccessResponse struct {
	Data  EventView         `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// GetEvent godoc
// @Summary Event detail
// @Description Returns one event with its derived availability; canReserve gates the booking flow.
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} controllers.GetEventSuccessResponse "data contains the event view"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{eventID} [get]
func (c *EventsController) GetEvent(w http.ResponseWriter, r *http.Request) {
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
	helpers.WriteJSONSuccess(w, http.StatusOK, NewEventView(event, c.now()))
}

// Home godoc
// @Summary Home screen
// @Description Returns the upcoming published events shown on the landing page.
// @Tags events
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains upcoming event views"
// @Router / [get]
func (c *EventsController) Home(w http.ResponseWriter, r *http.Request) {
	events, err := c.Events.ListUpcoming(r.Context())
	if err != nil {
		helpers.HandleBackendError(w, r, c.Logger, c.Store, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, NewEventViews(events, c.now()))
}

// parseEventFilters reads the shared event listing query parameters. On a
// malformed date it writes a 400 and returns ok=false.
func parseEventFilters(w http.ResponseWriter, r *http.Request) (domain.EventFilters, bool) {
	var filters domain.EventFilters
	q := r.URL.Query()

	filters.Search = q.Get("search")
	if s := q.Get("startDate"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "startDate must be RFC 3339")
			return filters, false
		}
		filters.StartDate = &t
	}
	if s := q.Get("endDate"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "endDate must be RFC 3339")
			return filters, false
		}
		filters.EndDate = &t
	}
	filters.Page, filters.Limit = helpers.ParsePagination(r)
	return filters, true
}
