package rest

import (
	"context"
	"mySkinMatch/domain"
	"mySkinMatch/pkg/logger"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type PreferenceService interface {
	SavePreferences(ctx context.Context, pref *domain.UserPreference) (*domain.UserPreference, error)
	GetPreferences(ctx context.Context, userID uint) (*domain.UserPreference, error)
}

type PreferenceHandler struct {
	preferenceService PreferenceService
	validator         *validator.Validate
	timeout           time.Duration
}

func NewPreferenceHandler(preferenceService PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{
		preferenceService: preferenceService,
		validator:         validator.New(),
		timeout:           10 * time.Second,
	}
}

type PreferenceRequest struct {
	SkinCondition      string `json:"kondisi_kulit,omitempty" validate:"omitempty,max=50"`
	SkinProblem        string `json:"masalah_kulit,omitempty" validate:"omitempty,max=50"`
	ProductPreference  string `json:"preferensi_produk,omitempty" validate:"omitempty,max=100"`
	PreferenceKeywords string `json:"kata_kunci_preferensi,omitempty" validate:"omitempty,max=255"`
	UsageFrequency     string `json:"frekuensi_penggunaan,omitempty" validate:"omitempty,max=50"`
	BudgetMin          int64  `json:"budget_min,omitempty" validate:"omitempty,gte=0"`
	BudgetMax          int64  `json:"budget_max,omitempty" validate:"omitempty,gte=0"`
	KValue             int    `json:"k_value,omitempty" validate:"omitempty,gte=1,lte=50"`
}

// SavePreferences stores the caller's skin profile, replacing any previous one.
func (h *PreferenceHandler) SavePreferences(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var req PreferenceRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate preferences", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	saved, err := h.preferenceService.SavePreferences(ctx, &domain.UserPreference{
		UserID:             userID,
		SkinCondition:      req.SkinCondition,
		SkinProblem:        req.SkinProblem,
		ProductPreference:  req.ProductPreference,
		PreferenceKeywords: req.PreferenceKeywords,
		UsageFrequency:     req.UsageFrequency,
		BudgetMin:          req.BudgetMin,
		BudgetMax:          req.BudgetMax,
		KValue:             req.KValue,
	})
	if err != nil {
		logger.Error("Failed to save preferences", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":     "Preferences saved successfully",
		"preferences": saved,
	})
}

// GetPreferences returns the caller's stored skin profile.
func (h *PreferenceHandler) GetPreferences(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	pref, err := h.preferenceService.GetPreferences(ctx, userID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: "preferences not found"})
		}
		logger.Error("Failed to get preferences", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":     "Preferences retrieved successfully",
		"preferences": pref,
	})
}
