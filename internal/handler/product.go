package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tokoku/go-storefront-api/internal/dto"
	"github.com/tokoku/go-storefront-api/internal/model"
	"github.com/tokoku/go-storefront-api/internal/service"
)

type ProductHandler struct {
	productService *service.ProductService
}

func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

func (h *ProductHandler) List(c *gin.Context) {
	var req dto.ListProductsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: err.Error()})
		return
	}

	products := h.productService.List(c.Request.Context(), req.Search)
	c.JSON(http.StatusOK, dto.ProductListResponse{Data: products})
}

func (h *ProductHandler) GetByID(c *gin.Context) {
	id, err := model.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "Not Found"})
		return
	}

	product, err := h.productService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "Not Found"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "internal server error"})
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: err.Error()})
		return
	}

	product, err := h.productService.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "internal server error"})
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, err := model.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "Not Found"})
		return
	}

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: err.Error()})
		return
	}

	product, err := h.productService.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "Not Found"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "internal server error"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// Delete responds the same whether or not the id existed.
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := model.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusOK, dto.MessageResponse{Message: "Deleted"})
		return
	}

	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "internal server error"})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Deleted"})
}
