package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tokoku/go-storefront-api/internal/dto"
	"github.com/tokoku/go-storefront-api/internal/service"
)

type OrderHandler struct {
	orderService *service.OrderService
}

func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.orderService.List(c.Request.Context()))
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: err.Error()})
		return
	}

	order, err := h.orderService.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, dto.CreateOrderResponse{Message: "Order Berhasil", Order: *order})
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: err.Error()})
		return
	}

	order, err := h.orderService.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Status tidak dikenal"})
		case errors.Is(err, service.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "Order Not Found"})
		default:
			c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, order)
}

// Delete responds the same whether or not the id existed. Stock is not
// restored.
func (h *OrderHandler) Delete(c *gin.Context) {
	if err := h.orderService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "internal server error"})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Deleted"})
}
