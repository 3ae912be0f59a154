package services

import (
	"context"

	"booknest/internal/backend"
	"booknest/internal/domain"
)

type dashboardService struct {
	client *backend.Client
}

// NewDashboardService returns the dashboard statistics service.
func NewDashboardService(client *backend.Client) domain.DashboardService {
	return &dashboardService{client: client}
}

func (s *dashboardService) AdminStats(ctx context.Context) (*domain.DashboardStats, error) {
	var stats domain.DashboardStats
	if err := s.client.Get(ctx, "/admin/dashboard/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *dashboardService) ParticipantStats(ctx context.Context) (*domain.ParticipantStats, error) {
	var stats domain.ParticipantStats
	if err := s.client.Get(ctx, "/dashboard/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
