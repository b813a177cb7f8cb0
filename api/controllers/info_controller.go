package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/moyoez/katana/api/models"
	"github.com/moyoez/katana/types"
)

// HandleInfo returns the app name, version and runtime mode.
// GET /api/self/v1/info
func HandleInfo(c *gin.Context) {
	c.JSON(http.StatusOK, types.InfoResponse{
		Name:        types.AppName,
		Version:     types.AppVersion,
		RuntimeMode: models.GetRuntime().Mode.String(),
	})
}

// HandleRecent lists recent uploads, newest first.
// GET /api/self/v1/recent
func HandleRecent(c *gin.Context) {
	uploads := models.GetRecentUploads()
	c.JSON(http.StatusOK, types.RecentListResponse{
		Uploads: uploads,
		Count:   len(uploads),
	})
}
