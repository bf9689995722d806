package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Recommendation is one ranked catalog entry. Similarity and distance are
// always complementary: Distance = 1 - Similarity.
type Recommendation struct {
	Product     Product `json:"product"`
	Similarity  float64 `json:"content_similarity"`
	Distance    float64 `json:"knn_distance"`
	Explanation string  `json:"explanation"`
}

// RecommendationEvent is the per-request serving log. Context carries the
// profile snapshot the ranking was produced from.
type RecommendationEvent struct {
	ID          uint              `gorm:"primaryKey" json:"id"`
	UserID      uint              `gorm:"column:user_id;not null" json:"user_id"`
	ResultCount int               `gorm:"column:result_count" json:"result_count"`
	TopScore    float64           `gorm:"column:top_score" json:"top_score"`
	Context     datatypes.JSONMap `gorm:"column:context;type:jsonb" json:"context"`
	CreatedAt   time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (RecommendationEvent) TableName() string {
	return "recommendation_events"
}
