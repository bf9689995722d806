package stats

import (
	"context"
	"fmt"

	"mySkinMatch/pkg/logger"
)

// StatsRepository contract interface
type StatsRepository interface {
	CountUsers(ctx context.Context) (int64, error)
	CountProducts(ctx context.Context) (int64, error)
	CountPreferences(ctx context.Context) (int64, error)
	CountRecommendationEvents(ctx context.Context) (int64, error)
}

// SystemStats is the admin dashboard summary.
type SystemStats struct {
	TotalUsers           int64 `json:"total_users"`
	TotalProducts        int64 `json:"total_products"`
	TotalPreferences     int64 `json:"total_preferences"`
	TotalRecommendations int64 `json:"total_recommendations"`
}

type statsService struct {
	statsRepo StatsRepository
}

func NewStatsService(statsRepo StatsRepository) *statsService {
	return &statsService{
		statsRepo: statsRepo,
	}
}

func (s *statsService) GetSystemStats(ctx context.Context) (SystemStats, error) {
	if err := ctx.Err(); err != nil {
		return SystemStats{}, fmt.Errorf("context error: %w", err)
	}

	var stats SystemStats
	var err error

	if stats.TotalUsers, err = s.statsRepo.CountUsers(ctx); err != nil {
		logger.Error("failed to count users", err)
		return SystemStats{}, fmt.Errorf("failed to count users: %w", err)
	}

	if stats.TotalProducts, err = s.statsRepo.CountProducts(ctx); err != nil {
		logger.Error("failed to count products", err)
		return SystemStats{}, fmt.Errorf("failed to count products: %w", err)
	}

	if stats.TotalPreferences, err = s.statsRepo.CountPreferences(ctx); err != nil {
		logger.Error("failed to count preferences", err)
		return SystemStats{}, fmt.Errorf("failed to count preferences: %w", err)
	}

	if stats.TotalRecommendations, err = s.statsRepo.CountRecommendationEvents(ctx); err != nil {
		logger.Error("failed to count recommendation events", err)
		return SystemStats{}, fmt.Errorf("failed to count recommendation events: %w", err)
	}

	return stats, nil
}
