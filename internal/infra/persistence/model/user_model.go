// Package model contains the GORM persistence models. They mirror the database
// schema and are mapped to domain entities by the postgres repositories.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is the GORM-specific struct for the 'users' table.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Username     *string   `gorm:"type:varchar(50);uniqueIndex"`
	Phone        string    `gorm:"type:varchar(20);not null;uniqueIndex"`
	PasswordHash string    `gorm:"type:text;not null"`
	Role         string    `gorm:"type:varchar(20);not null;check:role IN ('customer','shop','courier','admin')"`
	FullName     string    `gorm:"type:varchar(100);not null"`
	AvatarURL    *string   `gorm:"type:text"`
	IsActive     bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ShopModel is the GORM-specific struct for the 'shops' table.
// One shop per owner is enforced by the shop use case, not by the schema.
type ShopModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	User        UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Description *string   `gorm:"type:text"`
	Address     string    `gorm:"type:text;not null"`
	Phone       string    `gorm:"type:varchar(20);not null"`
	ImageURL    *string   `gorm:"type:text"`
	IsActive    bool      `gorm:"not null;default:true"`
	Rating      float64   `gorm:"type:double precision;not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShopModel) TableName() string {
	return "shops"
}

// CourierLocationModel is the GORM-specific struct for the 'courier_locations' table.
// It holds a single row per courier.
type CourierLocationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CourierID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Courier   UserModel `gorm:"foreignKey:CourierID;constraint:OnDelete:CASCADE"`
	Latitude  float64   `gorm:"type:decimal(10,8);not null"`
	Longitude float64   `gorm:"type:decimal(11,8);not null"`
	Accuracy  *float64
	IsOnline  bool `gorm:"not null;default:false"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CourierLocationModel) TableName() string {
	return "courier_locations"
}
