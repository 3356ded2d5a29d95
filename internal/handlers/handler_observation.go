package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/chargewatch/pricetrack/internal/core/ports/services"
	"github.com/chargewatch/pricetrack/internal/dto"
	"github.com/chargewatch/pricetrack/internal/middleware"
	"github.com/gin-gonic/gin"
)

// observationHandler accepts collector batches.
type observationHandler struct {
	ingestionService portssvc.IngestionSvcFacade
}

func newObservationHandler(is portssvc.IngestionSvcFacade) *observationHandler {
	return &observationHandler{
		ingestionService: is,
	}
}

// registerObservationRoutes registers the collector write endpoint.
func registerObservationRoutes(rg *gin.RouterGroup, ingestionService portssvc.IngestionSvcFacade) {
	h := newObservationHandler(ingestionService)

	rg.POST("/observations", h.postObservations)
}

// postObservations godoc
// @Summary Ingest one collector batch
// @Description Accepts the raw plan card texts scraped for one country and provider, parses them and records price changes in the versioned ledger. Per-plan failures are reported in the response and do not abort the batch.
// @Tags observations
// @Accept json
// @Produce json
// @Param batch body dto.ObservationBatchRequest true "Observed plan cards"
// @Success 200 {object} dto.ObservationBatchResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} map[string]string "Failed to process batch"
// @Security ApiKeyAuth
// @Router /observations [post]
func (h *observationHandler) postObservations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ObservationBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for postObservations", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received observation batch",
		slog.String("country", req.Country),
		slog.String("provider", req.Provider),
		slog.Int("plans", len(req.Plans)))

	res, err := h.ingestionService.IngestObservations(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to process observation batch", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process observation batch"})
		return
	}

	c.JSON(http.StatusOK, res)
}
