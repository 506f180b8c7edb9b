package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/orderdesk/internal/domain/model"
	"github.com/polkiloo/orderdesk/internal/server/http/dto"
)

// OrderHandler exposes the order board.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// List returns the orders snapshot, newest first.
func (h *OrderHandler) List(c *gin.Context) {
	orders := h.facade.Orders()
	resp := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, h.toResponse(o))
	}
	c.JSON(http.StatusOK, resp)
}

// Get returns a single order from the snapshot.
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.facade.Order(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.toResponse(order))
}

// UpdateStatus sets the status named in the body.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req dto.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	order, err := h.facade.UpdateOrderStatus(c.Request.Context(), c.Param("id"), model.OrderStatus(req.Status))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.toResponse(order))
}

// Advance moves the order one workflow step forward.
func (h *OrderHandler) Advance(c *gin.Context) {
	order, err := h.facade.AdvanceOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.toResponse(order))
}

// Acknowledge clears the new-order marker without changing status.
func (h *OrderHandler) Acknowledge(c *gin.Context) {
	h.facade.AcknowledgeOrder(c.Param("id"))
	c.Status(http.StatusNoContent)
}

func (h *OrderHandler) toResponse(o model.Order) dto.OrderResponse {
	resp := dto.OrderResponse{
		ID:            o.ID,
		CustomerName:  o.CustomerName,
		Phone:         o.Phone,
		Type:          string(o.Type),
		Items:         o.Items,
		TotalAmount:   o.TotalAmount,
		PaymentStatus: o.PaymentStatus,
		Status:        string(o.Status),
		CreatedAt:     o.CreatedAt,
		IsNew:         h.facade.IsNew(o.ID),
	}
	if next, ok := o.Status.Next(); ok {
		resp.NextStatus = string(next)
	}
	return resp
}
