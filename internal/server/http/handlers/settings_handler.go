package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/server/http/dto"
)

// SettingsHandler reads and patches settings. Both routes work before login.
type SettingsHandler struct {
	facade SettingsFacade
}

// NewSettingsHandler constructs SettingsHandler.
func NewSettingsHandler(facade SettingsFacade) *SettingsHandler {
	return &SettingsHandler{facade: facade}
}

// Get returns current settings.
func (h *SettingsHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, toSettingsResponse(h.facade.Settings()))
}

// Patch merges the body over current settings and persists the result.
func (h *SettingsHandler) Patch(c *gin.Context) {
	var req dto.SettingsPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	updated, err := h.facade.UpdateSettings(c.Request.Context(), model.SettingsPatch{
		PollingInterval:    req.PollingInterval,
		SoundEnabled:       req.SoundEnabled,
		VibrateEnabled:     req.VibrateEnabled,
		SpreadsheetID:      req.SpreadsheetID,
		GoogleClientID:     req.GoogleClientID,
		GoogleClientSecret: req.GoogleClientSecret,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSettingsResponse(updated))
}

func toSettingsResponse(s model.Settings) dto.SettingsResponse {
	return dto.SettingsResponse{
		PollingInterval:       s.PollingInterval,
		SoundEnabled:          s.SoundEnabled,
		VibrateEnabled:        s.VibrateEnabled,
		SpreadsheetID:         s.SpreadsheetID,
		GoogleClientID:        s.GoogleClientID,
		GoogleClientSecretSet: s.GoogleClientSecret != "",
	}
}
