package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"comerciojusto/config"
	deliverycontext "comerciojusto/internal/delivery/context"
	"comerciojusto/internal/domain/entity"
	domainerrors "comerciojusto/internal/domain/errors"
	"comerciojusto/internal/domain/repository"
	"comerciojusto/internal/domain/service"
	"comerciojusto/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	txManager   repository.TransactionManager
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	cache       service.Cache
	countTTL    time.Duration
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
	Cache       service.Cache
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	countTTL := 300 * time.Second
	if params.Config != nil && params.Config.Cache != nil && params.Config.Cache.CartCountTTL > 0 {
		countTTL = params.Config.Cache.CartCountTTL
	}

	return &cartService{
		txManager:   params.TxManager,
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
		cache:       params.Cache,
		countTTL:    countTTL,
		logger:      params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddItem increments the product line, snapshotting name and price on first add.
func (srv *cartService) AddItem(ctx context.Context, input *usecase.AddCartItemInput) (int, error) {
	if err := input.Owner.Validate(); err != nil {
		return 0, domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}
	if input.Quantity < 1 || input.Quantity > entity.MaxLineQuantity {
		return 0, domainerrors.ErrInvalidQuantity.WrapMessage("quantity must be between 1 and " + strconv.Itoa(entity.MaxLineQuantity))
	}

	product, err := srv.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return 0, domainerrors.ErrProductNotFound.WrapMessage("cannot add unknown product")
		}

		return 0, errors.Wrap(err, "failed to find product")
	}
	if !product.Active {
		return 0, domainerrors.ErrProductNotFound.WrapMessage("product is not available")
	}

	var count int
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.NewCartRepository()

		cart, err := cartRepo.LockOrCreate(ctx, input.Owner)
		if err != nil {
			return errors.Wrap(err, "failed to lock cart")
		}

		items := cart.Items.Clone()
		items.Add(product.ID.String(), input.Quantity, product.Price, product.Name)
		if err := cartRepo.SaveItems(ctx, cart.ID, items); err != nil {
			return errors.Wrap(err, "failed to save cart")
		}
		count = items.Count()

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to add cart item", slog.Any("productID", input.ProductID), slog.Any("error", err))

		return 0, errors.Wrap(err, "failed to add item to cart")
	}

	cacheSet(ctx, srv.cache, srv.log(ctx), cartCountCacheKey(input.Owner), count, srv.countTTL)

	return count, nil
}

// RemoveItem drops a product line. Missing carts and absent ids change nothing.
func (srv *cartService) RemoveItem(ctx context.Context, owner entity.CartOwner, productID string) (int, error) {
	if err := owner.Validate(); err != nil {
		return 0, domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	var count int
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.NewCartRepository()

		cart, err := cartRepo.LockByOwner(ctx, owner)
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to lock cart")
		}

		count = cart.Items.Count()
		if _, ok := cart.Items[productID]; !ok {
			return nil
		}

		items := cart.Items.Clone()
		items.Remove(productID)
		if err := cartRepo.SaveItems(ctx, cart.ID, items); err != nil {
			return errors.Wrap(err, "failed to save cart")
		}
		count = items.Count()

		return nil
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to remove item from cart")
	}

	cacheSet(ctx, srv.cache, srv.log(ctx), cartCountCacheKey(owner), count, srv.countTTL)

	return count, nil
}

// View resolves the cart against the catalog. Lines whose product no longer exists are dropped.
// Prices shown are the snapshots taken when the product was added.
func (srv *cartService) View(ctx context.Context, owner entity.CartOwner) (*usecase.CartView, error) {
	view := &usecase.CartView{Total: decimal.Zero}
	if owner.Validate() != nil {
		return view, nil
	}

	cart, err := srv.cartRepo.FindByOwner(ctx, owner)
	if errors.Is(err, repository.ErrCartNotFound) {
		return view, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	ids := make([]uuid.UUID, 0, len(cart.Items))
	for _, id := range cart.Items.IDs() {
		if parsed, err := uuid.Parse(id); err == nil {
			ids = append(ids, parsed)
		}
	}

	products, err := srv.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart products")
	}

	for _, id := range ids {
		product, ok := products[id]
		if !ok {
			continue
		}
		item := cart.Items[id.String()]
		subtotal := item.Subtotal()
		view.Lines = append(view.Lines, &entity.CartLine{
			ProductID: id,
			Product:   product,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Name:      item.Name,
			Subtotal:  subtotal,
		})
		view.Total = view.Total.Add(subtotal)
	}
	view.Count = cart.Items.Count()

	return view, nil
}

// MergeAnonymousCart folds the session cart into the user's cart, creating it if needed,
// and deletes the session cart. Both rows are locked, anonymous first.
func (srv *cartService) MergeAnonymousCart(ctx context.Context, sessionID string, userID uuid.UUID) (int, error) {
	userOwner := entity.UserCartOwner(userID)
	if sessionID == "" {
		return srv.Count(ctx, userOwner)
	}
	sessionOwner := entity.SessionCartOwner(sessionID)

	var (
		count  int
		merged bool
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.NewCartRepository()

		anonymous, err := cartRepo.LockByOwner(ctx, sessionOwner)
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to lock session cart")
		}
		merged = true

		if anonymous.IsEmpty() {
			return cartRepo.Delete(ctx, anonymous.ID)
		}

		userCart, err := cartRepo.LockOrCreate(ctx, userOwner)
		if err != nil {
			return errors.Wrap(err, "failed to lock user cart")
		}

		items := userCart.Items.Clone()
		items.Merge(anonymous.Items)
		if err := cartRepo.SaveItems(ctx, userCart.ID, items); err != nil {
			return errors.Wrap(err, "failed to save merged cart")
		}
		if err := cartRepo.Delete(ctx, anonymous.ID); err != nil {
			return errors.Wrap(err, "failed to delete session cart")
		}
		count = items.Count()

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to merge carts", slog.Any("userID", userID), slog.Any("error", err))

		return 0, errors.Wrap(err, "failed to merge anonymous cart")
	}

	cacheDelete(ctx, srv.cache, srv.log(ctx), cartCountCacheKey(sessionOwner), cartCountCacheKey(userOwner))
	if !merged || count == 0 {
		return srv.Count(ctx, userOwner)
	}

	srv.log(ctx).Info("Anonymous cart merged", slog.Any("userID", userID), slog.Int("count", count))
	cacheSet(ctx, srv.cache, srv.log(ctx), cartCountCacheKey(userOwner), count, srv.countTTL)

	return count, nil
}

// Count returns the number of distinct products in the owner's cart.
func (srv *cartService) Count(ctx context.Context, owner entity.CartOwner) (int, error) {
	if owner.Validate() != nil {
		return 0, nil
	}

	key := cartCountCacheKey(owner)
	var count int
	if cacheGet(ctx, srv.cache, srv.log(ctx), key, &count) {
		return count, nil
	}

	cart, err := srv.cartRepo.FindByOwner(ctx, owner)
	switch {
	case errors.Is(err, repository.ErrCartNotFound):
		count = 0
	case err != nil:
		return 0, errors.Wrap(err, "failed to count cart items")
	default:
		count = cart.Items.Count()
	}

	cacheSet(ctx, srv.cache, srv.log(ctx), key, count, srv.countTTL)

	return count, nil
}
