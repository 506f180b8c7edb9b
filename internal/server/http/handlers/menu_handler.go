package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/server/http/dto"
)

// MenuHandler exposes menu listing and editing.
type MenuHandler struct {
	facade MenuFacade
}

// NewMenuHandler constructs MenuHandler.
func NewMenuHandler(facade MenuFacade) *MenuHandler {
	return &MenuHandler{facade: facade}
}

// List returns the menu snapshot.
func (h *MenuHandler) List(c *gin.Context) {
	items := h.facade.Menu()
	resp := make([]dto.MenuItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, toMenuResponse(item))
	}
	c.JSON(http.StatusOK, resp)
}

// Update writes price and availability for one item.
func (h *MenuHandler) Update(c *gin.Context) {
	var req dto.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	item, err := h.facade.UpdateMenuItem(c.Request.Context(), c.Param("id"), req.Price, *req.Available)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMenuResponse(item))
}

func toMenuResponse(item model.MenuItem) dto.MenuItemResponse {
	return dto.MenuItemResponse{
		ID:        item.ID,
		Name:      item.Name,
		Price:     item.Price,
		Available: item.Available,
	}
}
