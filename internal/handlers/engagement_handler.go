package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mentorhub/mentorhub-api/internal/middleware"
	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/internal/services"
	"github.com/mentorhub/mentorhub-api/pkg/logger"
	"go.uber.org/zap"
)

type EngagementHandler struct {
	service services.EngagementServiceInterface
}

func NewEngagementHandler(service services.EngagementServiceInterface) *EngagementHandler {
	return &EngagementHandler{service: service}
}

// RecordEvents accepts a batch of contact engagement events from the front end
func (h *EngagementHandler) RecordEvents(c *gin.Context) {
	var req models.EngagementEventBatch
	if err := c.ShouldBindJSON(&req); err != nil {
		if details := ParseValidationErrors(err); len(details) > 0 {
			respondErrorWithDetails(c, http.StatusBadRequest, "Validation failed", details, err)
			return
		}
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := h.service.RecordEvents(c.Request.Context(), req.Events, middleware.RequesterFirstName(c)); err != nil {
		respondServiceError(c, err, "Mentor not found")
		return
	}

	logger.Debug("Received engagement events", zap.Int("count", len(req.Events)))
	c.JSON(http.StatusAccepted, gin.H{"success": true, "received": len(req.Events)})
}
