package postgres

import (
	"context"
	"strings"
	"time"

	"zakaz/internal/domain/entity"
	domainerrors "zakaz/internal/domain/errors"
	"zakaz/internal/domain/repository"
	"zakaz/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create inserts the order row followed by its items. Callers run it inside a transaction.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)
	db := repo.db.WithContext(ctx)

	if err := db.Omit(clause.Associations).Create(orderM).Error; err != nil {
		return orderWriteError(err, "failed to create order")
	}
	if len(orderM.Items) == 0 {
		return nil
	}
	if err := db.Omit(clause.Associations).Create(&orderM.Items).Error; err != nil {
		return orderWriteError(err, "failed to create order items")
	}

	return nil
}

func orderWriteError(err error, details string) error {
	if isForeignKeyConstraintViolation(err) || isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
		return domainerrors.ErrValidationFailed.WithDetails(constraintName(err))
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

// FindByID returns the order with its items.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	err := repo.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.created_at ASC") }).
		Where("id = ?", id).
		First(&orderM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return toOrderDomain(&orderM), nil
}

// FindByIDForUpdate returns the order without items and locks its row.
func (repo *orderRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id = ?", id).
		First(&orderM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to lock order")
	}

	return toOrderDomain(&orderM), nil
}

// List returns orders matching filter with their items, newest first.
func (repo *orderRepository) List(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
	var (
		conds []string
		args  []any
	)
	if filter.CustomerID != nil {
		conds = append(conds, "customer_id = ?")
		args = append(args, *filter.CustomerID)
	}
	if filter.ShopID != nil {
		conds = append(conds, "shop_id = ?")
		args = append(args, *filter.ShopID)
	}
	if filter.CourierID != nil {
		conds = append(conds, "courier_id = ?")
		args = append(args, *filter.CourierID)
	}

	query := repo.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.created_at ASC") })

	where := strings.Join(conds, " AND ")
	if filter.IncludeReadyUnassigned {
		readyUnassigned := "(status = ? AND courier_id IS NULL)"
		args = append(args, entity.OrderStatusReady.String())
		if where == "" {
			where = readyUnassigned
		} else {
			where = "(" + where + ") OR " + readyUnassigned
		}
	}
	if where != "" {
		query = query.Where(where, args...)
	}

	var orderModels []*model.OrderModel
	if err := query.Order("created_at DESC").Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// UpdateStatus writes status, notes, delivery times and updated_at of order.
func (repo *orderRepository) UpdateStatus(ctx context.Context, order *entity.Order) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", order.ID).
		Updates(map[string]any{
			"status":                  order.Status.String(),
			"courier_notes":           order.CourierNotes,
			"estimated_delivery_time": order.EstimatedDeliveryTime,
			"actual_delivery_time":    order.ActualDeliveryTime,
			"updated_at":              order.UpdatedAt,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// AssignCourier claims the order with a conditional update. Of two couriers racing for
// the same order exactly one sees a changed row.
func (repo *orderRepository) AssignCourier(ctx context.Context, orderID, courierID uuid.UUID, at time.Time) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND courier_id IS NULL AND status = ?", orderID, entity.OrderStatusReady.String()).
		Updates(map[string]any{
			"courier_id": courierID,
			"status":     entity.OrderStatusPickedUp.String(),
			"updated_at": at,
		})

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to assign courier")
	}

	return result.RowsAffected == 1, nil
}

// HasDeliveredFromShop reports whether customerID has a delivered order from shopID.
func (repo *orderRepository) HasDeliveredFromShop(ctx context.Context, customerID, shopID uuid.UUID) (bool, error) {
	return repo.exists(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM orders
			WHERE customer_id = ? AND shop_id = ? AND status = ?
		)`, customerID, shopID, entity.OrderStatusDelivered.String())
}

// HasDeliveredWithProduct reports whether customerID has a delivered order containing productID.
func (repo *orderRepository) HasDeliveredWithProduct(ctx context.Context, customerID, productID uuid.UUID) (bool, error) {
	return repo.exists(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM orders o
			JOIN order_items oi ON oi.order_id = o.id
			WHERE o.customer_id = ? AND oi.product_id = ? AND o.status = ?
		)`, customerID, productID, entity.OrderStatusDelivered.String())
}

// HasDeliveredByCourier reports whether customerID has a delivered order carried by courierID.
func (repo *orderRepository) HasDeliveredByCourier(ctx context.Context, customerID, courierID uuid.UUID) (bool, error) {
	return repo.exists(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM orders
			WHERE customer_id = ? AND courier_id = ? AND status = ?
		)`, customerID, courierID, entity.OrderStatusDelivered.String())
}

func (repo *orderRepository) exists(ctx context.Context, query string, args ...any) (bool, error) {
	var found bool
	if err := repo.db.WithContext(ctx).Raw(query, args...).Scan(&found).Error; err != nil {
		return false, errors.Wrap(err, "failed to check delivered orders")
	}

	return found, nil
}

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	order := &entity.Order{
		ID:                    data.ID,
		CustomerID:            data.CustomerID,
		ShopID:                data.ShopID,
		CourierID:             data.CourierID,
		Status:                entity.OrderStatus(data.Status),
		TotalAmount:           data.TotalAmount,
		DeliveryAddress:       data.DeliveryAddress,
		DeliveryPhone:         data.DeliveryPhone,
		CustomerNotes:         data.CustomerNotes,
		CourierNotes:          data.CourierNotes,
		EstimatedDeliveryTime: data.EstimatedDeliveryTime,
		ActualDeliveryTime:    data.ActualDeliveryTime,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}

	if len(data.Items) > 0 {
		order.Items = make([]*entity.OrderItem, 0, len(data.Items))
		for i := range data.Items {
			item := &data.Items[i]
			order.Items = append(order.Items, &entity.OrderItem{
				ID:         item.ID,
				OrderID:    item.OrderID,
				ProductID:  item.ProductID,
				Quantity:   item.Quantity,
				UnitPrice:  item.UnitPrice,
				TotalPrice: item.TotalPrice,
				CreatedAt:  item.CreatedAt,
			})
		}
	}

	return order
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	orderM := &model.OrderModel{
		ID:                    data.ID,
		CustomerID:            data.CustomerID,
		ShopID:                data.ShopID,
		CourierID:             data.CourierID,
		Status:                data.Status.String(),
		TotalAmount:           data.TotalAmount,
		DeliveryAddress:       data.DeliveryAddress,
		DeliveryPhone:         data.DeliveryPhone,
		CustomerNotes:         data.CustomerNotes,
		CourierNotes:          data.CourierNotes,
		EstimatedDeliveryTime: data.EstimatedDeliveryTime,
		ActualDeliveryTime:    data.ActualDeliveryTime,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}

	orderM.Items = make([]model.OrderItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		createdAt := item.CreatedAt
		if createdAt.IsZero() {
			createdAt = data.CreatedAt
		}
		orderM.Items = append(orderM.Items, model.OrderItemModel{
			ID:         item.ID,
			OrderID:    data.ID,
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: item.TotalPrice,
			CreatedAt:  createdAt,
		})
	}

	return orderM
}
