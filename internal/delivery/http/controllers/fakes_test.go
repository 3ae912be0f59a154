package controllers

import (
	"context"
	"io"
	"log/slog"
	"time"

	"booknest/internal/domain"
	"booknest/internal/session"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testStore() *session.Store {
	return session.NewStore(false)
}

var testNow = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

// fakeEventService implements domain.EventService with per-method function fields.
type fakeEventService struct {
	ListFn          func(ctx context.Context, filters domain.EventFilters) ([]*domain.Event, error)
	GetByIDFn       func(ctx context.Context, id string) (*domain.Event, error)
	CreateFn        func(ctx context.Context, in domain.CreateEventInput) (*domain.Event, error)
	UpdateFn        func(ctx context.Context, id string, in domain.UpdateEventInput) (*domain.Event, error)
	DeleteFn        func(ctx context.Context, id string) error
	UpdateStatusFn  func(ctx context.Context, id string, status domain.EventStatus) (*domain.Event, error)
	ListPublishedFn func(ctx context.Context) ([]*domain.Event, error)
	ListUpcomingFn  func(ctx context.Context) ([]*domain.Event, error)
}

func (f *fakeEventService) List(ctx context.Context, filters domain.EventFilters) ([]*domain.Event, error) {
	return f.ListFn(ctx, filters)
}
func (f *fakeEventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeEventService) Create(ctx context.Context, in domain.CreateEventInput) (*domain.Event, error) {
	return f.CreateFn(ctx, in)
}
func (f *fakeEventService) Update(ctx context.Context, id string, in domain.UpdateEventInput) (*domain.Event, error) {
	return f.UpdateFn(ctx, id, in)
}
func (f *fakeEventService) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}
func (f *fakeEventService) UpdateStatus(ctx context.Context, id string, status domain.EventStatus) (*domain.Event, error) {
	return f.UpdateStatusFn(ctx, id, status)
}
func (f *fakeEventService) ListPublished(ctx context.Context) ([]*domain.Event, error) {
	return f.ListPublishedFn(ctx)
}
func (f *fakeEventService) ListUpcoming(ctx context.Context) ([]*domain.Event, error) {
	return f.ListUpcomingFn(ctx)
}

// fakeReservationService implements domain.ReservationService.
type fakeReservationService struct {
	CreateFn         func(ctx context.Context, in domain.CreateReservationInput) (*domain.Reservation, error)
	ListMineFn       func(ctx context.Context) ([]*domain.Reservation, error)
	ListAllFn        func(ctx context.Context, filters domain.ReservationFilters) ([]*domain.Reservation, error)
	ListByEventFn    func(ctx context.Context, eventID string) ([]*domain.Reservation, error)
	GetByIDFn        func(ctx context.Context, id string) (*domain.Reservation, error)
	ConfirmFn        func(ctx context.Context, id string) (*domain.Reservation, error)
	RefuseFn         func(ctx context.Context, id string) (*domain.Reservation, error)
	CancelFn         func(ctx context.Context, id string) (*domain.Reservation, error)
	AdminCancelFn    func(ctx context.Context, id string) (*domain.Reservation, error)
	EventStatsFn     func(ctx context.Context, eventID string) (*domain.EventReservationStats, error)
	DownloadTicketFn func(ctx context.Context, id string) (io.ReadCloser, string, error)
}

func (f *fakeReservationService) Create(ctx context.Context, in domain.CreateReservationInput) (*domain.Reservation, error) {
	return f.CreateFn(ctx, in)
}
func (f *fakeReservationService) ListMine(ctx context.Context) ([]*domain.Reservation, error) {
	return f.ListMineFn(ctx)
}
func (f *fakeReservationService) ListAll(ctx context.Context, filters domain.ReservationFilters) ([]*domain.Reservation, error) {
	return f.ListAllFn(ctx, filters)
}
func (f *fakeReservationService) ListByEvent(ctx context.Context, eventID string) ([]*domain.Reservation, error) {
	return f.ListByEventFn(ctx, eventID)
}
func (f *fakeReservationService) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeReservationService) Confirm(ctx context.Context, id string) (*domain.Reservation, error) {
	return f.ConfirmFn(ctx, id)
}
func (f *fakeReservationService) Refuse(ctx context.Context, id string) (*domain.Reservation, error) {
	return f.RefuseFn(ctx, id)
}
func (f *fakeReservationService) Cancel(ctx context.Context, id string) (*domain.Reservation, error) {
	return f.CancelFn(ctx, id)
}
func (f *fakeReservationService) AdminCancel(ctx context.Context, id string) (*domain.Reservation, error) {
	return f.AdminCancelFn(ctx, id)
}
func (f *fakeReservationService) EventStats(ctx context.Context, eventID string) (*domain.EventReservationStats, error) {
	return f.EventStatsFn(ctx, eventID)
}
func (f *fakeReservationService) DownloadTicket(ctx context.Context, id string) (io.ReadCloser, string, error) {
	return f.DownloadTicketFn(ctx, id)
}

// fakeAuthService implements domain.AuthService.
type fakeAuthService struct {
	RegisterFn      func(ctx context.Context, in domain.RegisterInput) (*domain.AuthResult, error)
	LoginFn         func(ctx context.Context, creds domain.Credentials) (*domain.AuthResult, error)
	GetProfileFn    func(ctx context.Context) (*domain.User, error)
	UpdateProfileFn func(ctx context.Context, in domain.UpdateProfileInput) (*domain.User, error)
}

func (f *fakeAuthService) Register(ctx context.Context, in domain.RegisterInput) (*domain.AuthResult, error) {
	return f.RegisterFn(ctx, in)
}
func (f *fakeAuthService) Login(ctx context.Context, creds domain.Credentials) (*domain.AuthResult, error) {
	return f.LoginFn(ctx, creds)
}
func (f *fakeAuthService) GetProfile(ctx context.Context) (*domain.User, error) {
	return f.GetProfileFn(ctx)
}
func (f *fakeAuthService) UpdateProfile(ctx context.Context, in domain.UpdateProfileInput) (*domain.User, error) {
	return f.UpdateProfileFn(ctx, in)
}

// fakeUserService implements domain.UserService.
type fakeUserService struct {
	ListFn    func(ctx context.Context) ([]*domain.User, error)
	GetByIDFn func(ctx context.Context, id string) (*domain.User, error)
}

func (f *fakeUserService) List(ctx context.Context) ([]*domain.User, error) { return f.ListFn(ctx) }
func (f *fakeUserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return f.GetByIDFn(ctx, id)
}

// fakeDashboardService implements domain.DashboardService.
type fakeDashboardService struct {
	AdminStatsFn       func(ctx context.Context) (*domain.DashboardStats, error)
	ParticipantStatsFn func(ctx context.Context) (*domain.ParticipantStats, error)
}

func (f *fakeDashboardService) AdminStats(ctx context.Context) (*domain.DashboardStats, error) {
	return f.AdminStatsFn(ctx)
}
func (f *fakeDashboardService) ParticipantStats(ctx context.Context) (*domain.ParticipantStats, error) {
	return f.ParticipantStatsFn(ctx)
}

func publishedEvent(id string, available, max int) *domain.Event {
	return &domain.Event{
		ID:              id,
		Title:           "Concert",
		Date:            testNow.Add(72 * time.Hour),
		Location:        "Paris",
		MaxParticipants: max,
		AvailableSeats:  available,
		Status:          domain.EventPublished,
	}
}
