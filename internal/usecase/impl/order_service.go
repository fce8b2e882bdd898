package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"retrokick/config"
	deliverycontext "retrokick/internal/delivery/context"
	"retrokick/internal/domain/entity"
	domainerrors "retrokick/internal/domain/errors"
	"retrokick/internal/domain/repository"
	"retrokick/internal/domain/service"
	"retrokick/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const recentOrdersLimit = 5

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager  repository.TransactionManager
	orderRepo  repository.OrderRepository
	dispatcher service.MailDispatcher
	pricing    entity.PricingRules
	adminEmail string
	logger     *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	OrderRepo  repository.OrderRepository
	Dispatcher service.MailDispatcher
	Config     *config.Config
	Logger     *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	pricing := entity.PricingRules{}
	adminEmail := ""
	if params.Config != nil {
		if params.Config.Checkout != nil {
			pricing = entity.PricingRules{
				FreeShippingThreshold: params.Config.Checkout.FreeShippingThreshold,
				ShippingFee:           params.Config.Checkout.ShippingFee,
				TaxRate:               params.Config.Checkout.TaxRate,
			}
		}
		if params.Config.Mail != nil {
			adminEmail = params.Config.Mail.AdminEmail
		}
	}

	return &orderService{
		txManager:  params.TxManager,
		orderRepo:  params.OrderRepo,
		dispatcher: params.Dispatcher,
		pricing:    pricing,
		adminEmail: adminEmail,
		logger:     params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// newOrderID builds the customer-facing order id. The UUID keeps ids
// collision-resistant across concurrent checkouts.
func newOrderID() string {
	return "RK-" + strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
}

// PlaceOrder snapshots the cart into an order, computes totals from
// the configured pricing rules and persists it as confirmed. The
// notification mails go out only after the row is durable.
func (srv *orderService) PlaceOrder(ctx context.Context, input usecase.PlaceOrderInput) (*entity.Order, error) {
	if len(input.Items) == 0 {
		return nil, domainerrors.ErrCartEmpty
	}

	subtotal := 0.0
	items := make([]entity.OrderItem, 0, len(input.Items))
	for _, line := range input.Items {
		if line.Quantity < 1 {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("cart line has no quantity")
		}
		subtotal += line.UnitPrice * float64(line.Quantity)
		items = append(items, entity.OrderItem{
			ProductID:   line.ProductID,
			ProductName: line.Name,
			UnitPrice:   line.UnitPrice,
			Image:       line.Image,
			Size:        line.Size,
			Quantity:    line.Quantity,
		})
	}
	quote := srv.pricing.Quote(subtotal)

	order := &entity.Order{
		OrderID:       newOrderID(),
		Items:         items,
		Shipping:      input.Shipping,
		PaymentRef:    input.PaymentRef,
		Subtotal:      quote.Subtotal,
		ShippingCost:  quote.ShippingCost,
		Tax:           quote.Tax,
		GrandTotal:    quote.GrandTotal,
		Status:        entity.StatusConfirmed,
		CustomerEmail: input.Shipping.Email,
		CreatedAt:     time.Now(),
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.OrderRepo().Create(ctx, order)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to persist order",
			slog.String("orderID", order.OrderID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute order creation transaction")
	}

	srv.dispatcher.Enqueue(orderConfirmationMail(order))
	if srv.adminEmail != "" {
		srv.dispatcher.Enqueue(adminOrderNoticeMail(order, srv.adminEmail))
	}

	srv.log(ctx).Info("Order placed",
		slog.String("orderID", order.OrderID),
		slog.Float64("grandTotal", order.GrandTotal),
		slog.Int("items", len(order.Items)))

	return order, nil
}

// ListOrders returns all orders, newest first.
func (srv *orderService) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// GetOrder returns a single order by its customer-facing id.
func (srv *orderService) GetOrder(ctx context.Context, orderID string) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

// UpdateStatus replaces the order's status. Any known status may
// replace any other; unknown values are rejected before touching the
// store.
func (srv *orderService) UpdateStatus(ctx context.Context, input usecase.UpdateOrderStatusInput) (*entity.Order, error) {
	status := entity.OrderStatus(input.Status)
	if !status.Valid() {
		return nil, domainerrors.ErrInvalidOrderStatus.WrapMessage("unknown status: " + input.Status)
	}

	var updated *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		order, err := repoFactory.OrderRepo().UpdateStatus(ctx, input.OrderID, status)
		if err != nil {
			return err
		}
		updated = order

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to execute status update transaction")
	}

	srv.log(ctx).Info("Order status updated",
		slog.String("orderID", input.OrderID), slog.String("status", input.Status))

	return updated, nil
}

// Stats computes the admin dashboard aggregates.
func (srv *orderService) Stats(ctx context.Context) (*usecase.OrderStatsOutput, error) {
	stats, err := srv.orderRepo.Stats(ctx, recentOrdersLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute order stats")
	}

	return &usecase.OrderStatsOutput{
		TotalOrders:     stats.TotalOrders,
		TotalRevenue:    stats.TotalRevenue,
		PendingOrders:   stats.PendingOrders,
		CompletedOrders: stats.CompletedOrders,
		RecentOrders:    stats.RecentOrders,
	}, nil
}
