package handler

import (
	"time"

	"zakaz/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// money renders an amount with exactly two fractional digits, e.g. "56.00".
func money(d decimal.Decimal) string {
	return d.StringFixed(entity.MoneyPlaces)
}

type orderItemView struct {
	ID         uuid.UUID `json:"id"`
	ProductID  uuid.UUID `json:"product_id"`
	Quantity   int       `json:"quantity"`
	UnitPrice  string    `json:"unit_price"`
	TotalPrice string    `json:"total_price"`
}

type orderView struct {
	ID                    uuid.UUID          `json:"id"`
	CustomerID            uuid.UUID          `json:"customer_id"`
	ShopID                uuid.UUID          `json:"shop_id"`
	CourierID             *uuid.UUID         `json:"courier_id"`
	Status                entity.OrderStatus `json:"status"`
	StatusLabel           string             `json:"status_label"`
	TotalAmount           string             `json:"total_amount"`
	DeliveryAddress       string             `json:"delivery_address"`
	DeliveryPhone         string             `json:"delivery_phone"`
	CustomerNotes         *string            `json:"customer_notes,omitempty"`
	CourierNotes          *string            `json:"courier_notes,omitempty"`
	EstimatedDeliveryTime *time.Time         `json:"estimated_delivery_time,omitempty"`
	ActualDeliveryTime    *time.Time         `json:"actual_delivery_time,omitempty"`
	Items                 []orderItemView    `json:"items"`
	CreatedAt             time.Time          `json:"created_at"`
	UpdatedAt             time.Time          `json:"updated_at"`
}

func newOrderView(o *entity.Order) orderView {
	items := make([]orderItemView, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, orderItemView{
			ID:         item.ID,
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			UnitPrice:  money(item.UnitPrice),
			TotalPrice: money(item.TotalPrice),
		})
	}

	return orderView{
		ID:                    o.ID,
		CustomerID:            o.CustomerID,
		ShopID:                o.ShopID,
		CourierID:             o.CourierID,
		Status:                o.Status,
		StatusLabel:           o.Status.Label(),
		TotalAmount:           money(o.TotalAmount),
		DeliveryAddress:       o.DeliveryAddress,
		DeliveryPhone:         o.DeliveryPhone,
		CustomerNotes:         o.CustomerNotes,
		CourierNotes:          o.CourierNotes,
		EstimatedDeliveryTime: o.EstimatedDeliveryTime,
		ActualDeliveryTime:    o.ActualDeliveryTime,
		Items:                 items,
		CreatedAt:             o.CreatedAt,
		UpdatedAt:             o.UpdatedAt,
	}
}

func newOrderViews(orders []*entity.Order) []orderView {
	views := make([]orderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, newOrderView(o))
	}

	return views
}

type productView struct {
	ID          uuid.UUID `json:"id"`
	ShopID      uuid.UUID `json:"shop_id"`
	CategoryID  uuid.UUID `json:"category_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Price       string    `json:"price"`
	ImageURL    *string   `json:"image_url,omitempty"`
	Quantity    int       `json:"quantity"`
	IsAvailable bool      `json:"is_available"`
	Rating      float64   `json:"rating"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newProductView(p *entity.Product) productView {
	return productView{
		ID:          p.ID,
		ShopID:      p.ShopID,
		CategoryID:  p.CategoryID,
		Name:        p.Name,
		Description: p.Description,
		Price:       money(p.Price),
		ImageURL:    p.ImageURL,
		Quantity:    p.Quantity,
		IsAvailable: p.IsAvailable,
		Rating:      p.Rating,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
