package postgres

import (
	"context"
	"time"

	"retrokick/internal/domain/entity"
	domainerrors "retrokick/internal/domain/errors"
	"retrokick/internal/domain/repository"
	"retrokick/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the domain's OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create persists a new order row.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)
	if orderM.ID == uuid.Nil {
		orderM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrOrderCreationFailed.WrapMessage("order id already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrOrderCreationFailed.WrapMessage("missing required order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.CreatedAt = orderM.CreatedAt

	return nil
}

// FindByOrderID retrieves a single order by its customer-facing id.
func (repo *orderRepository) FindByOrderID(ctx context.Context, orderID string) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		First(&orderM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by order id")
	}

	return toOrderDomain(&orderM), nil
}

// List returns all orders sorted by creation time, newest first.
func (repo *orderRepository) List(ctx context.Context) ([]*entity.Order, error) {
	var orderMs []model.OrderModel
	err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&orderMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderMs))
	for i := range orderMs {
		orders = append(orders, toOrderDomain(&orderMs[i]))
	}

	return orders, nil
}

// UpdateStatus overwrites the status of the matching order and stamps
// UpdatedAt, then reloads the row so the caller sees the stored state.
func (repo *orderRepository) UpdateStatus(ctx context.Context, orderID string, status entity.OrderStatus) (*entity.Order, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("order_id = ?", orderID).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrOrderNotFound
	}

	return repo.FindByOrderID(ctx, orderID)
}

// Stats computes the dashboard aggregates. Counts and revenue come
// from aggregate queries so the whole order table is never loaded.
func (repo *orderRepository) Stats(ctx context.Context, recentLimit int) (*repository.OrderStats, error) {
	stats := &repository.OrderStats{}

	db := repo.db.WithContext(ctx)

	if err := db.Model(&model.OrderModel{}).Count(&stats.TotalOrders).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count orders")
	}

	// Revenue sums grand_total over every order regardless of status.
	var revenue struct{ Total float64 }
	err := db.Model(&model.OrderModel{}).
		Select("COALESCE(SUM(grand_total), 0) AS total").
		Scan(&revenue).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum order revenue")
	}
	stats.TotalRevenue = revenue.Total

	err = db.Model(&model.OrderModel{}).
		Where("status = ?", string(entity.StatusPending)).
		Count(&stats.PendingOrders).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to count pending orders")
	}

	err = db.Model(&model.OrderModel{}).
		Where("status = ?", string(entity.StatusDelivered)).
		Count(&stats.CompletedOrders).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to count completed orders")
	}

	if recentLimit > 0 {
		var recentMs []model.OrderModel
		err = db.Order("created_at DESC").Limit(recentLimit).Find(&recentMs).Error
		if err != nil {
			return nil, errors.Wrap(err, "failed to load recent orders")
		}
		stats.RecentOrders = make([]*entity.Order, 0, len(recentMs))
		for i := range recentMs {
			stats.RecentOrders = append(stats.RecentOrders, toOrderDomain(&recentMs[i]))
		}
	}

	return stats, nil
}

func toOrderDomain(m *model.OrderModel) *entity.Order {
	items := make([]entity.OrderItem, 0, len(m.Items))
	for _, it := range m.Items {
		items = append(items, entity.OrderItem{
			ProductID:   it.ProductID,
			ProductName: it.Name,
			UnitPrice:   it.UnitPrice,
			Image:       it.Image,
			Size:        it.Size,
			Quantity:    it.Quantity,
		})
	}

	order := &entity.Order{
		OrderID: m.OrderID,
		Items:   items,
		Shipping: entity.ShippingInfo{
			FirstName: m.Shipping.FirstName,
			LastName:  m.Shipping.LastName,
			Email:     m.Shipping.Email,
			Phone:     m.Shipping.Phone,
			Address:   m.Shipping.Address,
			City:      m.Shipping.City,
			State:     m.Shipping.State,
			Pincode:   m.Shipping.Pincode,
		},
		PaymentRef:    m.PaymentRef,
		Subtotal:      m.Subtotal,
		ShippingCost:  m.ShippingCost,
		Tax:           m.Tax,
		GrandTotal:    m.GrandTotal,
		Status:        entity.OrderStatus(m.Status),
		CustomerEmail: m.CustomerEmail,
		CreatedAt:     m.CreatedAt,
	}
	if !m.UpdatedAt.IsZero() && !m.UpdatedAt.Equal(m.CreatedAt) {
		updatedAt := m.UpdatedAt
		order.UpdatedAt = &updatedAt
	}

	return order
}

func fromOrderDomain(o *entity.Order) *model.OrderModel {
	items := make([]model.OrderItemRecord, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, model.OrderItemRecord{
			ProductID: it.ProductID,
			Name:      it.ProductName,
			UnitPrice: it.UnitPrice,
			Image:     it.Image,
			Size:      it.Size,
			Quantity:  it.Quantity,
		})
	}

	return &model.OrderModel{
		OrderID: o.OrderID,
		Items:   items,
		Shipping: model.ShippingRecord{
			FirstName: o.Shipping.FirstName,
			LastName:  o.Shipping.LastName,
			Email:     o.Shipping.Email,
			Phone:     o.Shipping.Phone,
			Address:   o.Shipping.Address,
			City:      o.Shipping.City,
			State:     o.Shipping.State,
			Pincode:   o.Shipping.Pincode,
		},
		PaymentRef:    o.PaymentRef,
		Subtotal:      o.Subtotal,
		ShippingCost:  o.ShippingCost,
		Tax:           o.Tax,
		GrandTotal:    o.GrandTotal,
		Status:        string(o.Status),
		CustomerEmail: o.CustomerEmail,
	}
}
