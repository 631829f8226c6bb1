package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shuubhamcodes/FLEETPULSE/module/core/domain"
	"github.com/shuubhamcodes/FLEETPULSE/module/core/service"
)

type telemetryService interface {
	Ingest(ctx context.Context, p *service.ReadingPayload) error
}

type TelemetryHandler struct {
	svc telemetryService
}

func NewTelemetryHandler(svc telemetryService) *TelemetryHandler {
	return &TelemetryHandler{svc: svc}
}

func (h *TelemetryHandler) Register(r gin.IRoutes) {
	r.POST("/ingest-vehicle", h.Ingest)
}

func (h *TelemetryHandler) Ingest(c *gin.Context) {
	var payload service.ReadingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}

	if err := h.svc.Ingest(c.Request.Context(), &payload); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Reason})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store reading"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
