package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryModel is the GORM-specific struct for the 'categories' table.
type CategoryModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description *string   `gorm:"type:text"`
	Icon        *string   `gorm:"type:varchar(50)"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// ProductModel is the GORM-specific struct for the 'products' table.
type ProductModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ShopID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Shop        ShopModel       `gorm:"foreignKey:ShopID;constraint:OnDelete:CASCADE"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Category    CategoryModel   `gorm:"foreignKey:CategoryID"`
	Name        string          `gorm:"type:varchar(200);not null"`
	Description *string         `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null;check:price > 0"`
	ImageURL    *string         `gorm:"type:text"`
	Quantity    int             `gorm:"not null;default:0;check:quantity >= 0"`
	IsAvailable bool            `gorm:"not null;default:true"`
	Rating      float64         `gorm:"type:double precision;not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
