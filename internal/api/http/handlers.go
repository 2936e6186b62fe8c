package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/workspacefs/workspaced/internal/api/middleware"
	"github.com/workspacefs/workspaced/internal/infrastructure/logging"
	"github.com/workspacefs/workspaced/internal/infrastructure/monitoring"
	"github.com/workspacefs/workspaced/internal/service"
	"github.com/workspacefs/workspaced/internal/shared/id"
	"github.com/workspacefs/workspaced/internal/shared/utils"
	"github.com/workspacefs/workspaced/internal/types"
	"github.com/workspacefs/workspaced/internal/workspace"
)

// Version reported by the root endpoint.
const Version = "0.1.0"

// Handlers contains all HTTP handlers
type Handlers struct {
	registry *service.Registry
	ws       *workspace.Workspace
	metrics  *monitoring.Metrics
	logger   *logging.Logger
}

// NewHandlers creates a new handler set
func NewHandlers(registry *service.Registry, ws *workspace.Workspace, metrics *monitoring.Metrics, logger *logging.Logger) *Handlers {
	return &Handlers{
		registry: registry,
		ws:       ws,
		metrics:  metrics,
		logger:   logger,
	}
}

// Root handles the basic liveness check
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "workspaced",
		"version": Version,
	})
}

// Health handles the detailed health check
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":           "healthy",
		"workspace":        gin.H{"root": h.ws.Root()},
		"service_registry": h.registry.Stats(),
		"metrics":          h.metrics.GetSnapshot(),
	})
}

// ListServices lists all registered services and their tool catalogs
func (h *Handlers) ListServices(c *gin.Context) {
	var category *types.Category
	if categoryStr := c.Query("category"); categoryStr != "" {
		cat := types.Category(categoryStr)
		category = &cat
	}

	c.JSON(http.StatusOK, gin.H{
		"services": h.registry.List(category),
		"stats":    h.registry.Stats(),
	})
}

// DiscoverServices finds services relevant to a free-text intent
func (h *Handlers) DiscoverServices(c *gin.Context) {
	var req types.DiscoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateIntent(req.Intent); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	limit := req.Limit
	if limit <= 0 {
		limit = 5
	}

	c.JSON(http.StatusOK, gin.H{
		"intent":   req.Intent,
		"services": h.registry.Discover(req.Intent, limit),
	})
}

// ExecuteService executes a service tool
func (h *Handlers) ExecuteService(c *gin.Context) {
	var req types.ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateToolID(req.ToolID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	requestID := middleware.GetRequestID(c)
	callID := id.NewCallID()
	start := time.Now()
	timer := monitoring.NewTimer(h.metrics, serviceOf(req.ToolID), req.ToolID)

	appCtx := &types.Context{}
	if requestID != "" {
		appCtx.RequestID = &requestID
	}

	result, err := h.registry.Execute(c.Request.Context(), req.ToolID, req.Params, appCtx)
	if err != nil {
		timer.Stop("error")
		h.logger.Error("tool call failed",
			zap.String("call_id", string(callID)),
			zap.String("tool_id", req.ToolID),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	status := "success"
	if !result.Success {
		status = "failure"
		h.metrics.RecordToolError(serviceOf(req.ToolID), req.ToolID, result.Code)
	}
	timer.Stop(status)

	h.logger.Info("tool call",
		zap.String("call_id", string(callID)),
		zap.String("request_id", requestID),
		zap.String("tool_id", req.ToolID),
		zap.String("status", status),
		zap.Duration("duration", time.Since(start)),
	)

	c.JSON(http.StatusOK, result)
}

func serviceOf(toolID string) string {
	for i := 0; i < len(toolID); i++ {
		if toolID[i] == '.' {
			return toolID[:i]
		}
	}
	return toolID
}
