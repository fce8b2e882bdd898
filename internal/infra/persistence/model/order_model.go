package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderItemRecord is one purchased line stored inside the order row.
// Prices are snapshotted at purchase time so later catalog edits do
// not rewrite history.
type OrderItemRecord struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Image     string  `json:"image"`
	Size      string  `json:"size"`
	Quantity  int     `json:"quantity"`
}

// ShippingRecord is the delivery address stored inside the order row.
type ShippingRecord struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Pincode   string `json:"pincode"`
}

// OrderModel mirrors the 'orders' table. Items and shipping are stored
// as JSONB documents since they are read and written as a whole.
type OrderModel struct {
	ID            uuid.UUID         `gorm:"type:uuid;primary_key"`
	OrderID       string            `gorm:"type:varchar(64);unique;not null;index"`
	Items         []OrderItemRecord `gorm:"type:jsonb;serializer:json;not null"`
	Shipping      ShippingRecord    `gorm:"type:jsonb;serializer:json;not null"`
	PaymentRef    string            `gorm:"type:varchar(128)"`
	Subtotal      float64           `gorm:"not null"`
	ShippingCost  float64           `gorm:"not null"`
	Tax           float64           `gorm:"not null"`
	GrandTotal    float64           `gorm:"not null"`
	Status        string            `gorm:"type:varchar(32);not null;index"`
	CustomerEmail string            `gorm:"type:varchar(255);not null;index"`
	CreatedAt     time.Time         `gorm:"index"`
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
