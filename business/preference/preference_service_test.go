package preference

import (
	"context"
	"testing"

	"mySkinMatch/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePreferenceRepo struct {
	saved *domain.UserPreference
	found *domain.UserPreference
	err   error
}

func (f *fakePreferenceRepo) Upsert(ctx context.Context, pref *domain.UserPreference) error {
	f.saved = pref
	return f.err
}

func (f *fakePreferenceRepo) FindByUserID(ctx context.Context, userID uint) (domain.UserPreference, error) {
	if f.found == nil {
		return domain.UserPreference{}, f.err
	}
	return *f.found, nil
}

func TestPriceRangeLabel(t *testing.T) {
	cases := []struct {
		budgetMax int64
		want      string
	}{
		{0, "0-50000"},
		{50000, "0-50000"},
		{50001, "50000-100000"},
		{100000, "50000-100000"},
		{150000, "100000-200000"},
		{200000, "100000-200000"},
		{350000, "200000-500000"},
		{500000, "200000-500000"},
		{500001, "500000+"},
		{2000000, "500000+"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, PriceRangeLabel(tc.budgetMax), "budget_max=%d", tc.budgetMax)
	}
}

func TestSavePreferencesDefaults(t *testing.T) {
	repo := &fakePreferenceRepo{}
	svc := NewPreferenceService(repo)

	saved, err := svc.SavePreferences(context.Background(), &domain.UserPreference{
		UserID:        5,
		SkinCondition: "berminyak",
		BudgetMax:     75000,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.ProductPreferenceAll, saved.ProductPreference)
	assert.Equal(t, 3, saved.KValue)
	assert.Equal(t, "50000-100000", saved.PriceRange)
	assert.Same(t, saved, repo.saved)
}

func TestSavePreferencesRequiresUserID(t *testing.T) {
	svc := NewPreferenceService(&fakePreferenceRepo{})

	_, err := svc.SavePreferences(context.Background(), &domain.UserPreference{})
	assert.Error(t, err)
}

func TestSavePreferencesRejectsInvalidBudget(t *testing.T) {
	svc := NewPreferenceService(&fakePreferenceRepo{})

	_, err := svc.SavePreferences(context.Background(), &domain.UserPreference{
		UserID:    1,
		BudgetMin: 100000,
		BudgetMax: 50000,
	})
	assert.Error(t, err)

	_, err = svc.SavePreferences(context.Background(), &domain.UserPreference{
		UserID:    1,
		BudgetMin: -1,
	})
	assert.Error(t, err)
}

func TestGetPreferencesNotFound(t *testing.T) {
	repo := &fakePreferenceRepo{err: assert.AnError}
	svc := NewPreferenceService(repo)

	_, err := svc.GetPreferences(context.Background(), 9)
	assert.ErrorIs(t, err, ErrPreferenceNotFound)
}

func TestGetPreferences(t *testing.T) {
	repo := &fakePreferenceRepo{found: &domain.UserPreference{UserID: 9, SkinCondition: "kering"}}
	svc := NewPreferenceService(repo)

	pref, err := svc.GetPreferences(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, "kering", pref.SkinCondition)
}
