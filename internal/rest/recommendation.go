package rest

import (
	"context"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"mySkinMatch/domain"
	"mySkinMatch/pkg/logger"
	"mySkinMatch/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type RecommenderService interface {
	LoadCatalog(ctx context.Context) (bool, error)
	GetRecommendations(ctx context.Context, userID uint, profile domain.PreferenceProfile, maxResults, kValue int) ([]domain.Recommendation, error)
}

type PreferenceReader interface {
	GetPreferences(ctx context.Context, userID uint) (*domain.UserPreference, error)
}

type RecommendationHandler struct {
	recommenderService RecommenderService
	preferenceService  PreferenceReader
	timeout            time.Duration
}

func NewRecommendationHandler(recommenderService RecommenderService, preferenceService PreferenceReader) *RecommendationHandler {
	return &RecommendationHandler{
		recommenderService: recommenderService,
		preferenceService:  preferenceService,
		timeout:            30 * time.Second,
	}
}

// GetRecommendations runs the content-based engine against the caller's
// stored preferences. Query params tweak a single request without touching
// the stored profile: kata_kunci overrides keywords, min_price/max_price and
// sort_by reshape the ranked list after scoring.
func (h *RecommendationHandler) GetRecommendations(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	start := time.Now()
	metrics.RecommendRequests.Inc()

	pref, err := h.preferenceService.GetPreferences(ctx, userID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.JSON(http.StatusBadRequest, ResponseError{
				Message: "preferences not set, save your skin profile first",
			})
		}
		logger.Error("Failed to load preferences", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	profile := domain.PreferenceProfile{
		SkinCondition:      pref.SkinCondition,
		SkinProblem:        pref.SkinProblem,
		ProductPreference:  pref.ProductPreference,
		PreferenceKeywords: pref.PreferenceKeywords,
		SearchKeywords:     c.QueryParam("kata_kunci"),
		BudgetMin:          pref.BudgetMin,
		BudgetMax:          pref.BudgetMax,
		KValue:             pref.KValue,
	}

	maxResults, _ := strconv.Atoi(c.QueryParam("max_results"))

	recs, err := h.recommenderService.GetRecommendations(ctx, userID, profile, maxResults, pref.KValue)
	if err != nil {
		logger.Error("Failed to get recommendations", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	minPrice, _ := strconv.ParseInt(c.QueryParam("min_price"), 10, 64)
	maxPrice, _ := strconv.ParseInt(c.QueryParam("max_price"), 10, 64)
	recs = filterByPrice(recs, minPrice, maxPrice)
	sortRecommendations(recs, c.QueryParam("sort_by"))

	metrics.RecommendLatency.Observe(time.Since(start).Seconds())

	return c.JSON(http.StatusOK, fres.Response.StatusOK(map[string]interface{}{
		"recommendations": recs,
		"total":           len(recs),
	}))
}

// RebuildIndex forces a catalog reload, picking up newly imported products.
func (h *RecommendationHandler) RebuildIndex(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	okBuilt, err := h.recommenderService.LoadCatalog(ctx)
	if err != nil {
		logger.Error("Failed to rebuild recommendation index", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	if !okBuilt {
		return c.JSON(http.StatusOK, fres.Response.StatusOK("Catalog is empty, index not built"))
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("Recommendation index rebuilt"))
}

// filterByPrice drops items outside the requested price window. Zero bounds
// mean unbounded on that side.
func filterByPrice(recs []domain.Recommendation, minPrice, maxPrice int64) []domain.Recommendation {
	if minPrice <= 0 && maxPrice <= 0 {
		return recs
	}

	filtered := make([]domain.Recommendation, 0, len(recs))
	for _, rec := range recs {
		if minPrice > 0 && rec.Product.Price < minPrice {
			continue
		}
		if maxPrice > 0 && rec.Product.Price > maxPrice {
			continue
		}
		filtered = append(filtered, rec)
	}

	return filtered
}

// sortRecommendations reorders the ranked list for display. The default keeps
// the engine's similarity order.
func sortRecommendations(recs []domain.Recommendation, sortBy string) {
	switch sortBy {
	case "price_low":
		sort.SliceStable(recs, func(i, j int) bool {
			return recs[i].Product.Price < recs[j].Product.Price
		})
	case "price_high":
		sort.SliceStable(recs, func(i, j int) bool {
			return recs[i].Product.Price > recs[j].Product.Price
		})
	case "rating":
		sort.SliceStable(recs, func(i, j int) bool {
			return recs[i].Product.Rating > recs[j].Product.Rating
		})
	}
}
