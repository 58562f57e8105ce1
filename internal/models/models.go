package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "Pending"
	OrderShipped   OrderStatus = "Shipped"
	OrderDelivered OrderStatus = "Delivered"
	OrderCancelled OrderStatus = "Cancelled"
)

type PaymentMethod string

const (
	PaymentCreditCard     PaymentMethod = "CreditCard"
	PaymentDebitCard      PaymentMethod = "DebitCard"
	PaymentPayPal         PaymentMethod = "PayPal"
	PaymentCashOnDelivery PaymentMethod = "CashOnDelivery"
)

func ValidStatus(s OrderStatus) bool {
	switch s {
	case OrderPending, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

func ValidPayment(p PaymentMethod) bool {
	switch p {
	case PaymentCreditCard, PaymentDebitCard, PaymentPayPal, PaymentCashOnDelivery:
		return true
	}
	return false
}

type User struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primaryKey"     json:"id"`
	Username              string     `gorm:"not null"                 json:"username"`
	Email                 string     `gorm:"uniqueIndex;not null"     json:"email"`
	PasswordHash          string     `gorm:"not null"                 json:"-"`
	FirstName             string     `gorm:"not null"                 json:"first_name"`
	LastName              string     `json:"last_name"`
	PhoneNumber           string     `json:"phone_number"`
	Address               string     `json:"address"`
	BirthDate             *time.Time `json:"birth_date,omitempty"`
	IsAdmin               bool       `gorm:"default:false"            json:"is_admin"`
	IsBanned              bool       `gorm:"default:false"            json:"is_banned"`
	RefreshToken          *string    `json:"-"`
	RefreshTokenExpiresAt *time.Time `json:"-"`
	CreatedAt             time.Time  `json:"created_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"not null"             json:"name"`
	Slug        string    `gorm:"uniqueIndex;not null" json:"slug"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

type Product struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"         json:"id"`
	Name        string    `gorm:"not null"                     json:"name"`
	Description string    `json:"description"`
	Slug        string    `gorm:"uniqueIndex;not null"         json:"slug"`
	Image       string    `json:"image"`
	Quantity    int       `gorm:"not null;check:quantity >= 0" json:"quantity"`
	Price       float64   `gorm:"not null"                     json:"price"`
	CategoryID  uuid.UUID `gorm:"type:uuid;index;not null"     json:"category_id"`
	Category    *Category `json:"category,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Order's product list is one-directional: a product row carries no
// reference back to the orders containing it.
type Order struct {
	ID        uuid.UUID     `gorm:"type:uuid;primaryKey"     json:"id"`
	UserID    uuid.UUID     `gorm:"type:uuid;index;not null" json:"user_id"`
	Status    OrderStatus   `gorm:"not null"                 json:"status"`
	Payment   PaymentMethod `gorm:"not null"                 json:"payment"`
	Amount    float64       `gorm:"not null"                 json:"amount"`
	Products  []Product     `gorm:"many2many:order_products" json:"products"`
	CreatedAt time.Time     `json:"created_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
