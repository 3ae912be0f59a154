package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"booknest/internal/delivery/http/controllers"
	"booknest/internal/delivery/http/helpers"
	"booknest/internal/delivery/http/middleware"
)

// NewRouter initializes the HTTP router with all application routes.
// /participant/* requires a session; /admin/* additionally requires the
// ADMIN role. Public browsing and auth routes are open.
func NewRouter(
	events *controllers.EventsController,
	reservations *controllers.ReservationsController,
	admin *controllers.AdminController,
	auth *controllers.AuthController,
) *http.ServeMux {
	mux := http.NewServeMux()

	requireSession := middleware.RequireSession()
	requireAdmin := middleware.RequireAdmin()

	// Public browsing
	mux.HandleFunc("GET /{$}", events.Home)
	mux.HandleFunc("GET /events", events.ListEvents)
	mux.HandleFunc("GET /events/{eventID}", events.GetEvent)

	// Auth
	mux.HandleFunc("POST /auth/register", auth.Register)
	mux.HandleFunc("POST /auth/login", auth.Login)
	mux.HandleFunc("POST /auth/logout", auth.Logout)
	mux.HandleFunc("GET /auth/profile", requireSession(auth.GetProfile))
	mux.HandleFunc("PATCH /auth/profile", requireSession(auth.UpdateProfile))

	// Booking
	mux.HandleFunc("POST /events/{eventID}/reservations", requireSession(reservations.CreateReservation))

	// Participant screens
	mux.HandleFunc("GET /participant/dashboard", requireSession(reservations.ShowDashboard))
	mux.HandleFunc("GET /participant/reservations", requireSession(reservations.ListMyReservations))
	mux.HandleFunc("PATCH /participant/reservations/{reservationID}/cancel", requireSession(reservations.CancelReservation))
	mux.HandleFunc("GET /participant/reservations/{reservationID}/ticket", requireSession(reservations.DownloadTicket))

	// Admin screens
	mux.HandleFunc("GET /admin/dashboard", requireAdmin(admin.DashboardStats))
	mux.HandleFunc("GET /admin/events", requireAdmin(admin.ListEvents))
	mux.HandleFunc("POST /admin/events", requireAdmin(admin.CreateEvent))
	mux.HandleFunc("GET /admin/events/{eventID}", requireAdmin(admin.GetEvent))
	mux.HandleFunc("PATCH /admin/events/{eventID}", requireAdmin(admin.UpdateEvent))
	mux.HandleFunc("DELETE /admin/events/{eventID}", requireAdmin(admin.DeleteEvent))
	mux.HandleFunc("PATCH /admin/events/{eventID}/status", requireAdmin(admin.UpdateEventStatus))
	mux.HandleFunc("GET /admin/reservations", requireAdmin(admin.ListReservations))
	mux.HandleFunc("PATCH /admin/reservations/{reservationID}/confirm", requireAdmin(admin.ConfirmReservation))
	mux.HandleFunc("PATCH /admin/reservations/{reservationID}/refuse", requireAdmin(admin.RefuseReservation))
	mux.HandleFunc("PATCH /admin/reservations/{reservationID}/admin-cancel", requireAdmin(admin.AdminCancelReservation))
	mux.HandleFunc("GET /admin/users", requireAdmin(admin.ListUsers))
	mux.HandleFunc("GET /admin/users/{userID}", requireAdmin(admin.GetUser))

	// Forbidden screen target for 403 redirects
	mux.HandleFunc("GET /403", func(w http.ResponseWriter, r *http.Request) {
		helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "Accès interdit - Rôle insuffisant")
	})

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
