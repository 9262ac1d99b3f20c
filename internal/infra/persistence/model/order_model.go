package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
type OrderModel struct {
	ID                    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID            uuid.UUID       `gorm:"type:uuid;not null;index"`
	Customer              UserModel       `gorm:"foreignKey:CustomerID"`
	ShopID                uuid.UUID       `gorm:"type:uuid;not null;index"`
	Shop                  ShopModel       `gorm:"foreignKey:ShopID"`
	CourierID             *uuid.UUID      `gorm:"type:uuid;index"`
	Courier               *UserModel      `gorm:"foreignKey:CourierID"`
	Status                string          `gorm:"type:varchar(20);not null;default:'pending';index"`
	TotalAmount           decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	DeliveryAddress       string          `gorm:"type:text;not null"`
	DeliveryPhone         string          `gorm:"type:varchar(20);not null"`
	CustomerNotes         *string         `gorm:"type:text"`
	CourierNotes          *string         `gorm:"type:text"`
	EstimatedDeliveryTime *time.Time
	ActualDeliveryTime    *time.Time
	Items                 []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt             time.Time        `gorm:"index"`
	UpdatedAt             time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the GORM-specific struct for the 'order_items' table.
// Prices are snapshots and are never recomputed after insert.
type OrderItemModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Product    ProductModel    `gorm:"foreignKey:ProductID"`
	Quantity   int             `gorm:"not null;check:quantity > 0"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	TotalPrice decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
