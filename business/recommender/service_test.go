package recommender

import (
	"context"
	"errors"
	"sync"
	"testing"

	"mySkinMatch/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProductRepo struct {
	products []domain.Product
	err      error
	calls    int
}

func (f *fakeProductRepo) FindAll(ctx context.Context) ([]domain.Product, error) {
	f.calls++
	return f.products, f.err
}

type fakeEventRepo struct {
	mu     sync.Mutex
	events []domain.RecommendationEvent
	err    error
}

func (f *fakeEventRepo) SaveEvent(ctx context.Context, event domain.RecommendationEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return f.err
}

func TestGetRecommendationsMatchesProfile(t *testing.T) {
	productRepo := &fakeProductRepo{products: testCatalog()}
	eventRepo := &fakeEventRepo{}
	svc := NewRecommenderService(productRepo, eventRepo)

	profile := domain.PreferenceProfile{
		SkinCondition: "sensitif",
		SkinProblem:   "jerawat",
	}

	recs, err := svc.GetRecommendations(context.Background(), 7, profile, 10, 3)
	require.NoError(t, err)
	require.NotEmpty(t, recs)

	// The acne serum for sensitive skin should win for this profile.
	assert.Equal(t, uint64(2), recs[0].Product.ID)
	assert.NotEmpty(t, recs[0].Explanation)

	for i := 1; i < len(recs); i++ {
		assert.GreaterOrEqual(t, recs[i].Distance, recs[i-1].Distance)
	}
}

func TestGetRecommendationsDeterministic(t *testing.T) {
	svc := NewRecommenderService(&fakeProductRepo{products: testCatalog()}, &fakeEventRepo{})

	profile := domain.PreferenceProfile{SkinCondition: "kering"}

	first, err := svc.GetRecommendations(context.Background(), 1, profile, 10, 3)
	require.NoError(t, err)
	second, err := svc.GetRecommendations(context.Background(), 1, profile, 10, 3)
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Product.ID, second[i].Product.ID)
		assert.InDelta(t, first[i].Similarity, second[i].Similarity, 1e-12)
	}
}

func TestGetRecommendationsEmptyCatalog(t *testing.T) {
	svc := NewRecommenderService(&fakeProductRepo{}, &fakeEventRepo{})

	recs, err := svc.GetRecommendations(context.Background(), 1, domain.PreferenceProfile{}, 10, 3)
	require.NoError(t, err)
	assert.Empty(t, recs)
	assert.NotNil(t, recs)
}

func TestGetRecommendationsBuildsIndexOnce(t *testing.T) {
	productRepo := &fakeProductRepo{products: testCatalog()}
	svc := NewRecommenderService(productRepo, &fakeEventRepo{})

	for i := 0; i < 3; i++ {
		_, err := svc.GetRecommendations(context.Background(), 1, domain.PreferenceProfile{SkinCondition: "normal"}, 10, 3)
		require.NoError(t, err)
	}

	assert.Equal(t, 1, productRepo.calls)
}

func TestGetRecommendationsRecordsEvent(t *testing.T) {
	eventRepo := &fakeEventRepo{}
	svc := NewRecommenderService(&fakeProductRepo{products: testCatalog()}, eventRepo)

	_, err := svc.GetRecommendations(context.Background(), 42, domain.PreferenceProfile{SkinCondition: "berminyak"}, 10, 3)
	require.NoError(t, err)

	eventRepo.mu.Lock()
	defer eventRepo.mu.Unlock()
	require.Len(t, eventRepo.events, 1)
	assert.Equal(t, uint(42), eventRepo.events[0].UserID)
}

func TestGetRecommendationsEventFailureIsNotFatal(t *testing.T) {
	eventRepo := &fakeEventRepo{err: errors.New("db down")}
	svc := NewRecommenderService(&fakeProductRepo{products: testCatalog()}, eventRepo)

	recs, err := svc.GetRecommendations(context.Background(), 1, domain.PreferenceProfile{SkinCondition: "kering"}, 10, 3)
	require.NoError(t, err)
	assert.NotEmpty(t, recs)
}

func TestLoadCatalogEmpty(t *testing.T) {
	svc := NewRecommenderService(&fakeProductRepo{}, &fakeEventRepo{})

	built, err := svc.LoadCatalog(context.Background())
	require.NoError(t, err)
	assert.False(t, built)
}

func TestLoadCatalogRepoError(t *testing.T) {
	svc := NewRecommenderService(&fakeProductRepo{err: errors.New("connection refused")}, &fakeEventRepo{})

	_, err := svc.LoadCatalog(context.Background())
	assert.Error(t, err)
}

func TestLoadCatalogRefreshesSnapshot(t *testing.T) {
	productRepo := &fakeProductRepo{products: testCatalog()[:1]}
	svc := NewRecommenderService(productRepo, &fakeEventRepo{})

	built, err := svc.LoadCatalog(context.Background())
	require.NoError(t, err)
	require.True(t, built)

	productRepo.products = testCatalog()
	built, err = svc.LoadCatalog(context.Background())
	require.NoError(t, err)
	require.True(t, built)

	assert.Equal(t, 3, svc.index.Load().Size())
}
