package entity

import (
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	MinRatingScore   = 1
	MaxRatingScore   = 5
	MaxRatingComment = 500
)

// RatingTargetType names the kind of entity a rating applies to.
type RatingTargetType string

const (
	RatingTargetShop    RatingTargetType = "shop"
	RatingTargetProduct RatingTargetType = "product"
	RatingTargetCourier RatingTargetType = "courier"
)

// IsValid checks if the RatingTargetType is a valid value.
func (t RatingTargetType) IsValid() bool {
	switch t {
	case RatingTargetShop, RatingTargetProduct, RatingTargetCourier:
		return true
	default:
		return false
	}
}

// RatingTarget identifies the shop, product or courier being rated.
// Build it with ShopTarget, ProductTarget or CourierTarget.
type RatingTarget struct {
	Type RatingTargetType `json:"target_type"`
	ID   uuid.UUID        `json:"target_id"`
}

// ShopTarget returns a target pointing at a shop.
func ShopTarget(id uuid.UUID) RatingTarget {
	return RatingTarget{Type: RatingTargetShop, ID: id}
}

// ProductTarget returns a target pointing at a product.
func ProductTarget(id uuid.UUID) RatingTarget {
	return RatingTarget{Type: RatingTargetProduct, ID: id}
}

// CourierTarget returns a target pointing at a courier account.
func CourierTarget(id uuid.UUID) RatingTarget {
	return RatingTarget{Type: RatingTargetCourier, ID: id}
}

// Rating is a score from one user for one target.
type Rating struct {
	ID        uuid.UUID    `json:"id"`
	UserID    uuid.UUID    `json:"user_id"`
	Target    RatingTarget `json:"target"`
	Score     int          `json:"rating"`
	Comment   *string      `json:"comment,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}

// IsValidScore reports whether score is within the 1..5 scale.
func IsValidScore(score int) bool {
	return score >= MinRatingScore && score <= MaxRatingScore
}

// IsValidComment reports whether comment fits the length limit.
func IsValidComment(comment *string) bool {
	return comment == nil || utf8.RuneCountInString(*comment) <= MaxRatingComment
}
