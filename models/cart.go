package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type CartStatus string

const (
	CartStatusActive    CartStatus = "active"
	CartStatusCompleted CartStatus = "completed"
)

type Cart struct {
	ID            string          `gorm:"primaryKey" json:"id"`
	UserID        string          `gorm:"index:idx_carts_user_status" json:"user_id"`
	Status        CartStatus      `gorm:"type:VARCHAR(20);default:'active';index:idx_carts_user_status" json:"status"`
	Items         []CartItem      `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount   decimal.Decimal `gorm:"type:numeric" json:"total_amount"`
	PromoDiscount decimal.Decimal `gorm:"type:numeric" json:"promo_discount"`
	Version       int64           `json:"-"` // optimistic lock, checked on save
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type CartItem struct {
	ID        string          `gorm:"primaryKey" json:"id"`
	CartID    string          `gorm:"index" json:"-"`
	Position  int             `json:"-"` // insertion order, stable for display
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Image     string          `json:"image"`
	Size      int             `json:"size"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:numeric" json:"unit_price"`
	LineTotal decimal.Decimal `gorm:"type:numeric" json:"line_total"`
	SKU       string          `json:"sku"`
}
