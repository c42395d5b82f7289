package handler

import (
	"net/http"
	"strconv"

	"biztrack/internal/apierror"
	"biztrack/internal/middleware"
	"biztrack/internal/service"
	"biztrack/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InsightsHandler struct {
	svc        service.InsightService
	dispatcher *worker.Dispatcher
}

func NewInsightsHandler(svc service.InsightService, dispatcher *worker.Dispatcher) *InsightsHandler {
	return &InsightsHandler{svc: svc, dispatcher: dispatcher}
}

func (h *InsightsHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	resp, err := h.svc.List(c.Request.Context(), limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Generate godoc
// @Summary      Generate AI insights
// @Description  Builds a business snapshot and asks the AI upstream for recommendations. Pass ?async=true to run in the background worker instead.
// @Tags         ai
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.GenerateInsightsResponse
// @Success      202 {object} map[string]string
// @Failure      502 {object} apierror.APIError
// @Failure      503 {object} apierror.APIError
// @Router       /api/ai/generate-insights [post]
func (h *InsightsHandler) Generate(c *gin.Context) {
	if c.Query("async") == "true" && h.dispatcher != nil {
		claims := middleware.GetClaims(c)
		if err := h.dispatcher.EnqueueInsights(c.Request.Context(), worker.InsightJobPayload{
			RequestedBy: claims.UserID,
		}); err != nil {
			c.JSON(http.StatusInternalServerError, apierror.New("failed to enqueue insight job"))
			return
		}
		c.JSON(http.StatusAccepted, gin.H{"status": "queued"})
		return
	}

	resp, err := h.svc.Generate(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InsightsHandler) MarkRead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid insight id"))
		return
	}
	if err := h.svc.MarkRead(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
