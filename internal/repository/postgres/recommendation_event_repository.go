package postgres

import (
	"context"
	"fmt"
	"mySkinMatch/domain"

	"gorm.io/gorm"
)

type RecommendationEventRepository struct {
	DB *gorm.DB
}

func NewRecommendationEventRepository(db *gorm.DB) *RecommendationEventRepository {
	return &RecommendationEventRepository{
		DB: db,
	}
}

func (r *RecommendationEventRepository) SaveEvent(ctx context.Context, event domain.RecommendationEvent) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(&event).Error; err != nil {
		return fmt.Errorf("failed to save recommendation event: %w", err)
	}

	return nil
}
