package postgres

import (
	"context"
	"errors"
	"fmt"
	"mySkinMatch/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PreferenceRepository struct {
	DB *gorm.DB
}

func NewPreferenceRepository(db *gorm.DB) *PreferenceRepository {
	return &PreferenceRepository{
		DB: db,
	}
}

// Upsert keeps one preference row per user, replacing the profile on conflict.
func (r *PreferenceRepository) Upsert(ctx context.Context, pref *domain.UserPreference) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	err := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"kondisi_kulit",
			"masalah_kulit",
			"rentang_harga",
			"preferensi_produk",
			"kata_kunci_preferensi",
			"frekuensi_penggunaan",
			"budget_min",
			"budget_max",
			"k_value",
			"updated_at",
		}),
	}).Create(pref).Error
	if err != nil {
		return fmt.Errorf("failed to upsert preference: %w", err)
	}

	return nil
}

func (r *PreferenceRepository) FindByUserID(ctx context.Context, userID uint) (domain.UserPreference, error) {
	if err := ctx.Err(); err != nil {
		return domain.UserPreference{}, fmt.Errorf("context error: %w", err)
	}

	var pref domain.UserPreference

	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).First(&pref).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserPreference{}, errors.New("preference not found")
		}
		return domain.UserPreference{}, fmt.Errorf("failed to find preference: %w", err)
	}

	return pref, nil
}
