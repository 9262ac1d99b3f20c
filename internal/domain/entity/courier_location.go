package entity

import (
	"time"

	"github.com/google/uuid"
)

// CourierLocation is the last reported position of a courier. There is one row per courier.
type CourierLocation struct {
	ID        uuid.UUID `json:"id"`
	CourierID uuid.UUID `json:"courier_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Accuracy  *float64  `json:"accuracy,omitempty"`
	IsOnline  bool      `json:"is_online"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasValidCoordinates reports whether latitude and longitude are within WGS84 bounds.
func (l *CourierLocation) HasValidCoordinates() bool {
	return l.Latitude >= -90 && l.Latitude <= 90 && l.Longitude >= -180 && l.Longitude <= 180
}
