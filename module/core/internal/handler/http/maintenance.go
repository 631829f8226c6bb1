package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shuubhamcodes/FLEETPULSE/module/core/domain"
)

type maintenanceService interface {
	Log(ctx context.Context, userID string, entry *domain.MaintenanceLog) error
	History(ctx context.Context, vehicleID string) ([]domain.MaintenanceLog, error)
}

type MaintenanceHandler struct {
	svc maintenanceService
}

func NewMaintenanceHandler(svc maintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{svc: svc}
}

func (h *MaintenanceHandler) Register(r gin.IRoutes) {
	r.POST("/maintenance", h.Log)
	r.GET("/maintenance/:vehicle_id", h.History)
}

type maintenanceRequest struct {
	VehicleID   string `json:"vehicle_id"`
	Description string `json:"description"`
	ServicedAt  *int64 `json:"serviced_at"`
}

type maintenanceResponse struct {
	VehicleID   string `json:"vehicle_id"`
	Description string `json:"description"`
	ServicedAt  int64  `json:"serviced_at"`
	LoggedBy    string `json:"logged_by"`
}

func (h *MaintenanceHandler) Log(c *gin.Context) {
	var req maintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}
	if req.VehicleID == "" || req.Description == "" || req.ServicedAt == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "vehicle_id, description and serviced_at are required"})
		return
	}

	entry := &domain.MaintenanceLog{
		VehicleID:   req.VehicleID,
		Description: req.Description,
		ServicedAt:  time.Unix(*req.ServicedAt, 0),
	}

	userID := c.GetString(userIDKey)
	if err := h.svc.Log(c.Request.Context(), userID, entry); err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "technician role required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store maintenance log"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true})
}

func (h *MaintenanceHandler) History(c *gin.Context) {
	logs, err := h.svc.History(c.Request.Context(), c.Param("vehicle_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load maintenance logs"})
		return
	}

	results := make([]maintenanceResponse, len(logs))
	for i, m := range logs {
		results[i] = maintenanceResponse{
			VehicleID:   m.VehicleID,
			Description: m.Description,
			ServicedAt:  m.ServicedAt.Unix(),
			LoggedBy:    m.LoggedBy,
		}
	}
	c.JSON(http.StatusOK, gin.H{"logs": results})
}
