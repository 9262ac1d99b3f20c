package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel is the GORM-specific struct for the 'notifications' table.
type NotificationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_notifications_user_created,priority:1"`
	User      UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Title     string    `gorm:"type:varchar(200);not null"`
	Message   string    `gorm:"type:text;not null"`
	Type      string    `gorm:"type:varchar(20);not null;check:type IN ('order_update','new_order','rating','system')"`
	IsRead    bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"index:idx_notifications_user_created,priority:2,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}

// RatingModel is the GORM-specific struct for the 'ratings' table.
// TargetID points into shops, products or users depending on TargetType, so it carries no foreign key.
type RatingModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_user_target,priority:1"`
	User       UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	TargetType string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_ratings_user_target,priority:2;index:idx_ratings_target,priority:1"`
	TargetID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_user_target,priority:3;index:idx_ratings_target,priority:2"`
	Rating     int       `gorm:"not null;check:rating BETWEEN 1 AND 5"`
	Comment    *string   `gorm:"type:text"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (RatingModel) TableName() string {
	return "ratings"
}

// All lists every model in dependency order for schema migration.
func All() []any {
	return []any{
		&UserModel{},
		&ShopModel{},
		&CategoryModel{},
		&ProductModel{},
		&OrderModel{},
		&OrderItemModel{},
		&RatingModel{},
		&NotificationModel{},
		&CourierLocationModel{},
	}
}
