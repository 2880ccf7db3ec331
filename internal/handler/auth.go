package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tokoku/go-storefront-api/internal/dto"
	"github.com/tokoku/go-storefront-api/internal/model"
	"github.com/tokoku/go-storefront-api/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: err.Error()})
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Email sudah terdaftar!"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterResponse{Message: "Registrasi berhasil", User: *user})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: err.Error()})
		return
	}

	user, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: "Email atau Password salah!"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "internal server error"})
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{Message: "Login sukses", User: dto.ToUserResponse(user)})
}

func (h *AuthHandler) UpdateUser(c *gin.Context) {
	id, err := model.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "User not found"})
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: err.Error()})
		return
	}

	user, err := h.authService.UpdateUser(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "User not found"})
		case errors.Is(err, service.ErrWrongPassword):
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Password lama salah!"})
		default:
			c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{Message: "Update berhasil", User: dto.ToUserResponse(user)})
}
