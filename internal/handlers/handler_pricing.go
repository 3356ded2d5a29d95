package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/chargewatch/pricetrack/internal/apperrors"
	portssvc "github.com/chargewatch/pricetrack/internal/core/ports/services"
	"github.com/chargewatch/pricetrack/internal/dto"
	"github.com/chargewatch/pricetrack/internal/middleware"
	"github.com/gin-gonic/gin"
)

// pricingHandler handles HTTP requests for the versioned price history.
type pricingHandler struct {
	ledgerService portssvc.PricingLedgerSvcFacade
}

// newPricingHandler creates a new pricingHandler.
func newPricingHandler(ls portssvc.PricingLedgerSvcFacade) *pricingHandler {
	return &pricingHandler{
		ledgerService: ls,
	}
}

// registerPricingRoutes registers the read side of the pricing API.
func registerPricingRoutes(rg *gin.RouterGroup, ledgerService portssvc.PricingLedgerSvcFacade) {
	h := newPricingHandler(ledgerService)

	pricing := rg.Group("/pricing")
	{
		pricing.GET("/current", h.getCurrentPricing)
		pricing.GET("/history", h.getPricingHistory)
	}
}

// registerAdminRoutes registers destructive plan maintenance operations.
func registerAdminRoutes(rg *gin.RouterGroup, ledgerService portssvc.PricingLedgerSvcFacade) {
	h := newPricingHandler(ledgerService)

	plans := rg.Group("/plans")
	{
		plans.POST("/retire", h.retirePlan)
	}
}

// getCurrentPricing godoc
// @Summary Get the active price for a plan
// @Description Retrieves the current pricing fact for a (country, provider, plan) key
// @Tags pricing
// @Produce json
// @Param country query string true "Country name"
// @Param provider query string true "Charging network name"
// @Param plan query string true "Pricing plan name"
// @Success 200 {object} dto.PricingFactResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 404 {object} map[string]string "No active pricing for this key"
// @Failure 500 {object} map[string]string "Stored data failed validation or lookup failed"
// @Router /pricing/current [get]
func (h *pricingHandler) getCurrentPricing(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.PlanKeyParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for getCurrentPricing", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	fact, err := h.ledgerService.GetCurrentPricing(c.Request.Context(), params.ToPlanKey())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No active pricing found for this key"})
		} else {
			logger.Error("Failed to get current pricing", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get current pricing"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPricingFactResponse(fact))
}

// getPricingHistory godoc
// @Summary Get the full version history for a plan
// @Description Retrieves all pricing fact versions for a (country, provider, plan) key, ordered by version
// @Tags pricing
// @Produce json
// @Param country query string true "Country name"
// @Param provider query string true "Charging network name"
// @Param plan query string true "Pricing plan name"
// @Success 200 {array} dto.PricingFactResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to get pricing history"
// @Router /pricing/history [get]
func (h *pricingHandler) getPricingHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.PlanKeyParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for getPricingHistory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	history, err := h.ledgerService.GetPricingHistory(c.Request.Context(), params.ToPlanKey())
	if err != nil {
		logger.Error("Failed to get pricing history", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get pricing history"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPricingFactListResponse(history))
}

// retirePlan godoc
// @Summary Retire a pricing plan
// @Description Archives every current pricing fact for (provider, plan) across all countries
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.RetirePlanRequest true "Plan to retire"
// @Success 200 {object} dto.RetirePlanResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to retire plan"
// @Security ApiKeyAuth
// @Router /plans/retire [post]
func (h *pricingHandler) retirePlan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RetirePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for retirePlan", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	archived, err := h.ledgerService.RetirePlan(c.Request.Context(), req.Provider, req.PlanName)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to retire plan", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retire plan"})
		}
		return
	}

	logger.Info("Plan retired",
		slog.String("provider", req.Provider),
		slog.String("plan_name", req.PlanName),
		slog.Int64("archived", archived))
	c.JSON(http.StatusOK, dto.RetirePlanResponse{Provider: req.Provider, PlanName: req.PlanName, Archived: archived})
}
