package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/nordkitchen/foodtruck-manager/internal/httperr"
	"github.com/nordkitchen/foodtruck-manager/internal/service"
)

// writeStatus maps a service status onto the HTTP response.
func writeStatus(c *gin.Context, status service.Status, entity string) {
	switch status {
	case service.StatusSuccess:
		c.JSON(201, gin.H{"status": status})
	case service.StatusUpdated, service.StatusDeleted:
		c.JSON(200, gin.H{"status": status})
	case service.StatusAlreadyExists:
		httperr.Conflict(c, "already_exists", entity+" already exists")
	case service.StatusNotFound:
		httperr.NotFound(c, "not_found", entity+" not found")
	default:
		httperr.Internal(c, "operation_failed", "failed to process "+entity)
	}
}
