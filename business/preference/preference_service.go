package preference

import (
	"context"
	"errors"
	"fmt"

	"mySkinMatch/domain"
	"mySkinMatch/pkg/logger"
)

// PreferenceRepository contract interface
type PreferenceRepository interface {
	Upsert(ctx context.Context, pref *domain.UserPreference) error
	FindByUserID(ctx context.Context, userID uint) (domain.UserPreference, error)
}

var ErrPreferenceNotFound = errors.New("preference not found")

type preferenceService struct {
	preferenceRepo PreferenceRepository
}

func NewPreferenceService(preferenceRepo PreferenceRepository) *preferenceService {
	return &preferenceService{
		preferenceRepo: preferenceRepo,
	}
}

// SavePreferences stores or replaces the user's profile. The price range label
// is always recomputed from budget_max so the two never drift apart.
func (s *preferenceService) SavePreferences(ctx context.Context, pref *domain.UserPreference) (*domain.UserPreference, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when saving preferences")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if pref.UserID == 0 {
		logger.Error("Invalid preference data: user ID is required")
		return nil, errors.New("user ID is required")
	}

	if pref.BudgetMin < 0 {
		logger.Error("Invalid preference data: budget_min must not be negative")
		return nil, errors.New("budget_min must not be negative")
	}

	if pref.BudgetMax > 0 && pref.BudgetMax < pref.BudgetMin {
		logger.Error("Invalid preference data: budget_max below budget_min")
		return nil, errors.New("budget_max must be greater than or equal to budget_min")
	}

	if pref.ProductPreference == "" {
		pref.ProductPreference = domain.ProductPreferenceAll
	}

	if pref.KValue <= 0 {
		pref.KValue = 3
	}

	pref.PriceRange = PriceRangeLabel(pref.BudgetMax)

	if err := s.preferenceRepo.Upsert(ctx, pref); err != nil {
		logger.Error("failed to save preferences", err)
		return nil, fmt.Errorf("failed to save preferences: %w", err)
	}

	logger.Info("preferences saved", "user_id", pref.UserID)

	return pref, nil
}

func (s *preferenceService) GetPreferences(ctx context.Context, userID uint) (*domain.UserPreference, error) {
	if userID == 0 {
		logger.Error("invalid user id when getting preferences")
		return nil, errors.New("invalid user id")
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	pref, err := s.preferenceRepo.FindByUserID(ctx, userID)
	if err != nil {
		logger.Error("failed to find preferences", err)
		return nil, ErrPreferenceNotFound
	}

	return &pref, nil
}

// PriceRangeLabel buckets a rupiah budget ceiling into the display ranges
// used by the catalog filters.
func PriceRangeLabel(budgetMax int64) string {
	switch {
	case budgetMax <= 50000:
		return "0-50000"
	case budgetMax <= 100000:
		return "50000-100000"
	case budgetMax <= 200000:
		return "100000-200000"
	case budgetMax <= 500000:
		return "200000-500000"
	default:
		return "500000+"
	}
}
