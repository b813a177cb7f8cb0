package controllers

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/moyoez/katana/api/models"
	"github.com/moyoez/katana/tool"
	"github.com/moyoez/katana/types"
)

// HandleDrop hands the posted paths to the tray as a file drop.
// Admission is left to the orchestrator, so an accepted request may still upload nothing.
// POST /api/self/v1/drop
func HandleDrop(c *gin.Context) {
	var req types.DropRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, tool.FastReturnError("Invalid request body: "+err.Error()))
		return
	}
	if len(req.Files) == 0 {
		c.JSON(http.StatusBadRequest, tool.FastReturnError("No files in request"))
		return
	}
	for _, f := range req.Files {
		if strings.TrimSpace(f) == "" || !filepath.IsAbs(f) {
			c.JSON(http.StatusBadRequest, tool.FastReturnError("File paths must be absolute: "+f))
			return
		}
	}

	controls := models.GetControls()
	if controls == nil {
		c.JSON(http.StatusServiceUnavailable, tool.FastReturnError("Tray is not running"))
		return
	}
	tool.DefaultLogger.Debugf("[Server] drop of %d file(s) via API", len(req.Files))
	controls.Drop(req.Files)
	c.JSON(http.StatusAccepted, tool.FastReturnAccepted("drop"))
}

// HandleCapture starts an interactive region capture.
// POST /api/self/v1/capture
func HandleCapture(c *gin.Context) {
	controls := models.GetControls()
	if controls == nil {
		c.JSON(http.StatusServiceUnavailable, tool.FastReturnError("Tray is not running"))
		return
	}
	controls.Capture()
	c.JSON(http.StatusAccepted, tool.FastReturnAccepted("capture"))
}
