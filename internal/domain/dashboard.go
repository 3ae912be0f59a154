package domain

import "context"

// ReservationsByStatus breaks down reservation counts per lifecycle state.
type ReservationsByStatus struct {
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Refused   int `json:"refused"`
	Canceled  int `json:"canceled"`
}

// DashboardStats is the backend response to GET /admin/dashboard/stats.
// swagger:model DashboardStats
type DashboardStats struct {
	TotalEvents          int                  `json:"totalEvents"`
	TotalReservations    int                  `json:"totalReservations"`
	UpcomingEvents       int                  `json:"upcomingEvents"`
	AverageFillRate      float64              `json:"averageFillRate"`
	ReservationsByStatus ReservationsByStatus `json:"reservationsByStatus"`
}

// ParticipantStats is the backend response to GET /dashboard/stats.
// swagger:model ParticipantStats
type ParticipantStats struct {
	TotalReservations    int                  `json:"totalReservations"`
	UpcomingEvents       int                  `json:"upcomingEvents"`
	ReservationsByStatus ReservationsByStatus `json:"reservationsByStatus"`
}

// DashboardService defines the dashboard statistics operations.
type DashboardService interface {
	AdminStats(ctx context.Context) (*DashboardStats, error)
	ParticipantStats(ctx context.Context) (*ParticipantStats, error)
}
