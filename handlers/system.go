package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jobmatch/backend/models"
	"github.com/jobmatch/backend/tools"
)

// Version is reported by the health check
const Version = "1.0.0"

// HealthCheck returns server health status
// @Summary Health check
// @Description Check if the server is running and healthy
// @Tags System
// @Produce json
// @Success 200 {object} models.HealthResponse "Server is healthy"
// @Router /health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Version:   Version,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// ToolsHandler exposes the tool registry
type ToolsHandler struct {
	registry *tools.ToolRegistry
}

// NewToolsHandler creates a new tools handler
func NewToolsHandler(registry *tools.ToolRegistry) *ToolsHandler {
	return &ToolsHandler{registry: registry}
}

// GetTools returns available MCP tools
// @Summary List available tools
// @Description Get a list of all pipeline tools exposed to MCP clients
// @Tags Tools
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "List of tools"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Router /tools [get]
func (h *ToolsHandler) GetTools(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"tools": h.registry.Definitions(),
	})
}
