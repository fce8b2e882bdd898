package impl

import (
	"context"
	"log/slog"

	deliverycontext "retrokick/internal/delivery/context"
	"retrokick/internal/domain/entity"
	domainerrors "retrokick/internal/domain/errors"
	"retrokick/internal/domain/repository"
	"retrokick/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface. Every mutation
// loads the snapshot, applies the change in memory and writes the full
// snapshot back before returning.
type cartService struct {
	store   repository.CartStore
	catalog repository.ProductCatalog
	logger  *slog.Logger
}

// CartServiceParams holds dependencies for cartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	Store   repository.CartStore
	Catalog repository.ProductCatalog
	Logger  *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		store:   params.Store,
		catalog: params.Catalog,
		logger:  params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCart rehydrates the session's cart.
func (srv *cartService) GetCart(ctx context.Context, sessionID string) (*usecase.CartOutput, error) {
	cart, err := srv.store.Load(ctx, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	return cartOutput(cart), nil
}

// AddItem validates the product and size against the catalog, then
// merges the line into the cart.
func (srv *cartService) AddItem(ctx context.Context, input usecase.AddCartItemInput) (*usecase.CartOutput, error) {
	if input.Quantity < 1 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("quantity must be at least 1")
	}

	product, err := srv.catalog.FindByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}
	if !product.HasSize(input.Size) {
		return nil, domainerrors.ErrSizeUnavailable.WrapMessage("size " + input.Size + " is not offered for " + product.Name)
	}

	cart, err := srv.store.Load(ctx, input.SessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	cart.AddItem(entity.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		UnitPrice: product.Price,
		Image:     product.Image,
		Size:      input.Size,
		Quantity:  input.Quantity,
	})

	if err := srv.store.Save(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "failed to save cart")
	}

	srv.log(ctx).Debug("Cart item added",
		slog.String("sessionID", input.SessionID),
		slog.String("productID", product.ID),
		slog.String("size", input.Size),
		slog.Int("quantity", input.Quantity))

	return cartOutput(cart), nil
}

// UpdateQuantity sets the line's quantity exactly; zero or less removes it.
func (srv *cartService) UpdateQuantity(ctx context.Context, input usecase.UpdateCartItemInput) (*usecase.CartOutput, error) {
	cart, err := srv.store.Load(ctx, input.SessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	cart.UpdateQuantity(input.ProductID, input.Size, input.Quantity)

	if err := srv.store.Save(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "failed to save cart")
	}

	return cartOutput(cart), nil
}

// RemoveItem deletes the line; removing an absent line is a no-op.
func (srv *cartService) RemoveItem(ctx context.Context, input usecase.RemoveCartItemInput) (*usecase.CartOutput, error) {
	cart, err := srv.store.Load(ctx, input.SessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	cart.RemoveItem(input.ProductID, input.Size)

	if err := srv.store.Save(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "failed to save cart")
	}

	return cartOutput(cart), nil
}

// ClearCart drops the whole snapshot.
func (srv *cartService) ClearCart(ctx context.Context, sessionID string) error {
	if err := srv.store.Delete(ctx, sessionID); err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}

func cartOutput(cart *entity.Cart) *usecase.CartOutput {
	return &usecase.CartOutput{
		Cart:       cart,
		TotalItems: cart.TotalItems(),
		TotalPrice: cart.TotalPrice(),
	}
}
