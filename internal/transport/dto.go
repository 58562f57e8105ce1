// Package transport holds the request and response shapes of the HTTP API.
package transport

import (
	"time"

	"github.com/google/uuid"

	"github.com/ReemOthm/home-decor-backend/internal/models"
)

type SignupRequest struct {
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Password  string     `json:"password"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Phone     string     `json:"phone_number"`
	Address   string     `json:"address"`
	BirthDate *time.Time `json:"birth_date"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// UserView is the sanitized user shape: no password hash, no refresh token.
type UserView struct {
	ID          uuid.UUID  `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	PhoneNumber string     `json:"phone_number"`
	Address     string     `json:"address"`
	BirthDate   *time.Time `json:"birth_date,omitempty"`
	IsAdmin     bool       `json:"is_admin"`
	IsBanned    bool       `json:"is_banned"`
	CreatedAt   time.Time  `json:"created_at"`
}

func ViewOfUser(u *models.User) UserView {
	return UserView{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		PhoneNumber: u.PhoneNumber,
		Address:     u.Address,
		BirthDate:   u.BirthDate,
		IsAdmin:     u.IsAdmin,
		IsBanned:    u.IsBanned,
		CreatedAt:   u.CreatedAt,
	}
}

func ViewOfUsers(users []models.User) []UserView {
	views := make([]UserView, len(users))
	for i := range users {
		views[i] = ViewOfUser(&users[i])
	}
	return views
}

type LoginResponse struct {
	TokenResponse
	User UserView `json:"user"`
}

type UpdateProfileRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone_number"`
	Address   *string `json:"address"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type CreateProductRequest struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Quantity    int       `json:"quantity"`
	Price       float64   `json:"price"`
	CategoryID  uuid.UUID `json:"category_id"`
}

type UpdateProductRequest struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	Image       *string    `json:"image"`
	Quantity    *int       `json:"quantity"`
	Price       *float64   `json:"price"`
	CategoryID  *uuid.UUID `json:"category_id"`
}

type CreateOrderRequest struct {
	Payment models.PaymentMethod `json:"payment"`
}

type AttachProductRequest struct {
	ProductID uuid.UUID `json:"product_id"`
}

type UpdateOrderRequest struct {
	Status  models.OrderStatus   `json:"status"`
	Payment models.PaymentMethod `json:"payment"`
	Amount  float64              `json:"amount"`
}

type UpdateMyOrderRequest struct {
	Payment models.PaymentMethod `json:"payment"`
}
