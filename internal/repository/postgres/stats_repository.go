package postgres

import (
	"context"
	"fmt"
	"mySkinMatch/domain"

	"gorm.io/gorm"
)

type StatsRepository struct {
	DB *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{
		DB: db,
	}
}

func (r *StatsRepository) CountUsers(ctx context.Context) (int64, error) {
	return r.count(ctx, &domain.User{})
}

func (r *StatsRepository) CountProducts(ctx context.Context) (int64, error) {
	return r.count(ctx, &domain.Product{})
}

func (r *StatsRepository) CountPreferences(ctx context.Context) (int64, error) {
	return r.count(ctx, &domain.UserPreference{})
}

func (r *StatsRepository) CountRecommendationEvents(ctx context.Context) (int64, error) {
	return r.count(ctx, &domain.RecommendationEvent{})
}

func (r *StatsRepository) count(ctx context.Context, model interface{}) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("context error: %w", err)
	}

	var total int64
	if err := r.DB.WithContext(ctx).Model(model).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count rows: %w", err)
	}

	return total, nil
}
