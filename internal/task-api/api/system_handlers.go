package api

import (
	"context"
	"net/http"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
)

const (
	ServiceName    = "nexa-task-api"
	ServiceVersion = "1.0.0"
)

// Health always reports healthy; it carries no dependency checks.
func Health(ctx context.Context, c *app.RequestContext) {
	c.JSON(http.StatusOK, utils.H{
		"status":  "healthy",
		"service": ServiceName,
		"version": ServiceVersion,
	})
}

// Root is the welcome endpoint pointing at the health check.
func Root(ctx context.Context, c *app.RequestContext) {
	c.JSON(http.StatusOK, utils.H{
		"message": "Welcome to Nexa Task API",
		"health":  "/api/v1/health",
	})
}
