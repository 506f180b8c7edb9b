package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/server/http/dto"
)

// StateHandler reports dashboard state and runs manual refreshes.
type StateHandler struct {
	facade StateFacade
}

// NewStateHandler constructs StateHandler.
func NewStateHandler(facade StateFacade) *StateHandler {
	return &StateHandler{facade: facade}
}

// Health answers liveness probes.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Get returns the current dashboard state.
func (h *StateHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, toStateResponse(h.facade.State()))
}

// Sync runs one refresh immediately.
func (h *StateHandler) Sync(c *gin.Context) {
	if err := h.facade.Sync(c.Request.Context()); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toStateResponse(h.facade.State()))
}

func toStateResponse(s model.DashboardState) dto.StateResponse {
	resp := dto.StateResponse{
		Authenticated:   s.Authenticated,
		Banner:          s.Banner,
		Syncing:         s.Syncing,
		NewOrderIDs:     s.NewOrderIDs,
		OrderCount:      s.OrderCount,
		MenuCount:       s.MenuCount,
		PollingInterval: s.PollingInterval,
	}
	if resp.NewOrderIDs == nil {
		resp.NewOrderIDs = []string{}
	}
	if s.Authenticated {
		resp.Profile = &dto.SessionResponse{
			Email:   s.Profile.Email,
			Name:    s.Profile.Name,
			Picture: s.Profile.Picture,
		}
	}
	if !s.LastSync.IsZero() {
		last := s.LastSync
		resp.LastSync = &last
	}
	return resp
}
