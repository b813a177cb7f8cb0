package controllers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/moyoez/katana/api/models"
	"github.com/moyoez/katana/tool"
	"github.com/moyoez/katana/types"
)

func configResponse(cfg types.AppConfig) types.ConfigResponse {
	return types.ConfigResponse{
		ShowIcon:     cfg.ShowIcon,
		StartAtLogin: cfg.StartAtLogin,
		UploadURL:    cfg.UploadURL,
		UploadField:  cfg.UploadField,
		LinkPath:     cfg.LinkPath,
		RecentLimit:  cfg.RecentLimit,
		ApiPort:      cfg.ApiPort,
	}
}

// UserConfigGet returns the preferences in effect, flag overrides included.
// GET /api/self/v1/config
func UserConfigGet(c *gin.Context) {
	c.JSON(http.StatusOK, configResponse(tool.GetEffectiveConfig()))
}

// UserConfigPatch accepts a partial preferences update and persists it to config.yaml.
// Only the file values are changed, so flag overrides stay out of config.yaml.
// A showIcon change is applied to the Dock right away; the rest takes effect on next start.
// PATCH /api/self/v1/config
func UserConfigPatch(c *gin.Context) {
	var body types.ConfigPatchRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, tool.FastReturnError("Invalid request body: "+err.Error()))
		return
	}

	cfg := tool.GetCurrentConfig()
	if body.UploadURL != nil {
		u, err := url.Parse(strings.TrimSpace(*body.UploadURL))
		if err != nil || u.Scheme == "" || u.Host == "" {
			c.JSON(http.StatusBadRequest, tool.FastReturnError("uploadURL must be an absolute URL"))
			return
		}
		cfg.UploadURL = u.String()
	}
	if body.UploadField != nil {
		if strings.TrimSpace(*body.UploadField) == "" {
			c.JSON(http.StatusBadRequest, tool.FastReturnError("uploadField cannot be empty"))
			return
		}
		cfg.UploadField = *body.UploadField
	}
	if body.LinkPath != nil {
		cfg.LinkPath = body.LinkPath
	}
	if body.StartAtLogin != nil {
		cfg.StartAtLogin = *body.StartAtLogin
	}
	dockChanged := body.ShowIcon != nil && *body.ShowIcon != cfg.ShowIcon
	if body.ShowIcon != nil {
		cfg.ShowIcon = *body.ShowIcon
	}

	tool.PersistAppConfig(cfg)
	if dockChanged {
		if controls := models.GetControls(); controls != nil {
			controls.SetDockVisible(cfg.ShowIcon)
		}
	}
	c.JSON(http.StatusOK, tool.FastReturnSuccessWithData(configResponse(tool.GetEffectiveConfig())))
}
