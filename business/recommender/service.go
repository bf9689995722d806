package recommender

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"mySkinMatch/domain"
	"mySkinMatch/pkg/logger"

	"gorm.io/datatypes"
)

const indexBuildTimeout = 30 * time.Second

// ---- Repository interfaces ----

type ProductRepository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
}

type EventRepository interface {
	SaveEvent(ctx context.Context, event domain.RecommendationEvent) error
}

// ---- Usecase / Service ----

// RecommenderService owns one immutable index snapshot per process. Readers
// load it lock-free; rebuilds are exclusive and swap the whole snapshot in
// one store, so no request ever observes a half-built index.
type RecommenderService struct {
	productRepo ProductRepository
	eventRepo   EventRepository

	buildMu sync.Mutex
	index   atomic.Pointer[FeatureIndex]
}

func NewRecommenderService(productRepo ProductRepository, eventRepo EventRepository) *RecommenderService {
	return &RecommenderService{
		productRepo: productRepo,
		eventRepo:   eventRepo,
	}
}

// LoadCatalog rebuilds the feature index from a fresh catalog snapshot.
// Returns false when the catalog is empty; the previous index, if any, stays
// in place in that case.
func (s *RecommenderService) LoadCatalog(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("context error: %w", err)
	}

	s.buildMu.Lock()
	defer s.buildMu.Unlock()

	buildCtx, cancel := context.WithTimeout(ctx, indexBuildTimeout)
	defer cancel()

	products, err := s.productRepo.FindAll(buildCtx)
	if err != nil {
		return false, fmt.Errorf("load catalog: %w", err)
	}
	if len(products) == 0 {
		logger.Warn("catalog_empty", "action", "index build skipped")
		return false, nil
	}

	started := time.Now()
	ix, err := BuildIndex(products)
	if err != nil {
		return false, fmt.Errorf("build feature index: %w", err)
	}

	s.index.Store(ix)
	indexRebuildsTotal.Inc()

	logger.Info("feature_index_built",
		"items", ix.Size(),
		"vocabulary", ix.vectorizer.VocabularySize(),
		"took", time.Since(started).String(),
	)

	return true, nil
}

// GetRecommendations ranks the whole catalog against the profile and returns
// the top maxResults. The index is built lazily on first use and reused for
// the rest of the process lifetime; an empty catalog yields an empty slice,
// not an error. kValue is accepted for compatibility with the KNN framing of
// the caller but does not change how many neighbors are computed.
func (s *RecommenderService) GetRecommendations(
	ctx context.Context,
	userID uint,
	profile domain.PreferenceProfile,
	maxResults int,
	kValue int,
) ([]domain.Recommendation, error) {

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	ix, err := s.ensureIndex(ctx)
	if err != nil {
		return nil, err
	}
	if ix == nil {
		return []domain.Recommendation{}, nil
	}

	queryText := BuildQueryText(profile)
	query := ix.QueryVector(queryText)

	scores := scoreAll(query, ix)
	recs := rank(scores, ix, profile, maxResults)

	tid := TraceIDFromContext(ctx)
	logger.Debug("recommend",
		"trace_id", tid,
		"user_id", userID,
		"query", queryText,
		"catalog_size", ix.Size(),
		"max_results", maxResults,
		"k_value", kValue,
		"results", len(recs),
	)

	s.logEvent(ctx, userID, profile, recs)

	return recs, nil
}

// ensureIndex returns the current snapshot, building it on first use. A nil
// index with nil error means the catalog is empty.
func (s *RecommenderService) ensureIndex(ctx context.Context) (*FeatureIndex, error) {
	if ix := s.index.Load(); ix != nil {
		return ix, nil
	}

	if _, err := s.LoadCatalog(ctx); err != nil {
		return nil, err
	}

	return s.index.Load(), nil
}

// logEvent records the serving event for admin statistics. Failures are
// logged, never surfaced: the ranking already succeeded.
func (s *RecommenderService) logEvent(ctx context.Context, userID uint, profile domain.PreferenceProfile, recs []domain.Recommendation) {
	if s.eventRepo == nil {
		return
	}

	topScore := 0.0
	if len(recs) > 0 {
		topScore = recs[0].Similarity
	}

	event := domain.RecommendationEvent{
		UserID:      userID,
		ResultCount: len(recs),
		TopScore:    topScore,
		Context: datatypes.JSONMap{
			"kondisi_kulit":     profile.SkinCondition,
			"masalah_kulit":     profile.SkinProblem,
			"preferensi_produk": profile.ProductPreference,
			"kata_kunci":        profile.SearchKeywords,
		},
	}

	if err := s.eventRepo.SaveEvent(ctx, event); err != nil {
		logger.Error("failed to save recommendation event", err)
	}
}
