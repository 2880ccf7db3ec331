package dto

import (
	"github.com/tokoku/go-storefront-api/internal/model"
)

// --- Auth ---

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterResponse echoes the full user record, password included. The web
// client stores the whole record in local storage for re-login.
type RegisterResponse struct {
	Message string     `json:"message"`
	User    model.User `json:"user"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserRequest is a partial update. Only the listed fields are
// patchable; role and id deliberately are not. Setting NewPassword requires
// CurrentPassword to match the stored one.
type UpdateUserRequest struct {
	CurrentPassword *string `json:"currentPassword"`
	NewPassword     *string `json:"newPassword"`
	Name            *string `json:"name"`
	Email           *string `json:"email"`
	Avatar          *string `json:"avatar"`
}

type UserResponse struct {
	ID     model.ID `json:"id"`
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Role   string   `json:"role"`
	Avatar string   `json:"avatar"`
}

type AuthResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

func ToUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Role:   u.Role,
		Avatar: u.Avatar,
	}
}

// --- Product ---

type CreateProductRequest struct {
	Name     string `json:"name" binding:"required"`
	Price    int64  `json:"price" binding:"min=0"`
	Stock    int    `json:"stock" binding:"min=0"`
	SKU      string `json:"sku"`
	Category string `json:"category"`
	ImageURL string `json:"image_url"`
}

type UpdateProductRequest struct {
	Name     *string `json:"name"`
	Price    *int64  `json:"price"`
	Stock    *int    `json:"stock"`
	SKU      *string `json:"sku"`
	Category *string `json:"category"`
	ImageURL *string `json:"image_url"`
}

type ListProductsRequest struct {
	Search string `form:"search"`
}

type ProductListResponse struct {
	Data []model.Product `json:"data"`
}

// --- Order ---

type OrderItemRequest struct {
	ProductID model.ID `json:"id" binding:"required"`
	Name      string   `json:"name"`
	Price     int64    `json:"price"`
	Quantity  int      `json:"quantity" binding:"required,min=1"`
}

type CreateOrderRequest struct {
	CustomerName  string             `json:"customer_name" binding:"required"`
	Address       string             `json:"address"`
	Courier       string             `json:"courier"`
	PaymentMethod string             `json:"payment_method"`
	Total         float64            `json:"total"`
	Items         []OrderItemRequest `json:"items" binding:"required,dive"`
}

type CreateOrderResponse struct {
	Message string      `json:"message"`
	Order   model.Order `json:"order"`
}

type UpdateOrderRequest struct {
	Status model.OrderStatus `json:"status" binding:"required"`
}

// --- Dashboard ---

type StatsResponse struct {
	TotalProducts int   `json:"total_products"`
	TotalRevenue  int64 `json:"total_revenue"`
	TotalAsset    int64 `json:"total_asset"`
	LowStock      int   `json:"low_stock"`
}

type ChartPoint struct {
	Name  string `json:"name"`
	Total int64  `json:"total"`
}

// --- Shared ---

type MessageResponse struct {
	Message string `json:"message"`
}
