package impl

import (
	"bytes"
	"context"
	"log/slog"
	"slices"
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
	"go.uber.org/fx"
)

const (
	metadataUserID      = "user_id"
	paymentStatusPaid   = "paid"
	lineDescriptionSize = 100
)

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	txManager   repository.TransactionManager
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	sessionRepo repository.CheckoutSessionRepository
	gateway     service.PaymentGateway
	publisher   service.EventPublisher
	cache       service.Cache
	baseURL     string
	currency    string
	now         func() time.Time
	logger      *slog.Logger
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
	SessionRepo repository.CheckoutSessionRepository
	Gateway     service.PaymentGateway
	Publisher   service.EventPublisher
	Cache       service.Cache
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		txManager:   params.TxManager,
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
		sessionRepo: params.SessionRepo,
		gateway:     params.Gateway,
		publisher:   params.Publisher,
		cache:       params.Cache,
		baseURL:     params.Config.HTTP.BaseURL,
		currency:    params.Config.Payment.Currency,
		now:         time.Now,
		logger:      params.Logger,
	}
}

func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateCheckout charges the cart snapshot through a hosted checkout page.
// An empty cart never reaches the processor; a deleted product aborts the whole checkout.
func (srv *checkoutService) CreateCheckout(ctx context.Context, input *usecase.CreateCheckoutInput) (*usecase.CreateCheckoutOutput, error) {
	cart, err := srv.cartRepo.FindByOwner(ctx, entity.UserCartOwner(input.UserID))
	if err != nil && !errors.Is(err, repository.ErrCartNotFound) {
		return nil, errors.Wrap(err, "failed to load cart")
	}
	if cart.IsEmpty() {
		return nil, domainerrors.ErrEmptyCart.WrapMessage("checkout requested with an empty cart")
	}

	items := cart.Items.Clone()
	ids, err := parseProductIDs(items)
	if err != nil {
		return nil, err
	}

	products, err := srv.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart products")
	}

	lineItems := make([]service.CheckoutLineItem, 0, len(ids))
	var amountTotal int64
	for _, id := range ids {
		product, ok := products[id]
		if !ok {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("cart references a deleted product")
		}
		item := items[id.String()]
		unitAmount := entity.MinorUnits(item.Price)
		amountTotal += unitAmount * int64(item.Quantity)

		lineItems = append(lineItems, service.CheckoutLineItem{
			Name:        product.Name,
			Description: product.ShortDescription(lineDescriptionSize),
			UnitAmount:  unitAmount,
			Quantity:    item.Quantity,
		})
	}

	session, err := srv.gateway.CreateCheckoutSession(ctx, &service.CheckoutRequest{
		Currency:      srv.currency,
		LineItems:     lineItems,
		SuccessURL:    srv.baseURL + usecase.CheckoutSuccessPath,
		CancelURL:     srv.baseURL + usecase.CheckoutCancelPath,
		CustomerEmail: input.Email,
		Metadata:      map[string]string{metadataUserID: input.UserID.String()},
	})
	if err != nil {
		srv.log(ctx).Error("Payment processor rejected checkout", slog.Any("userID", input.UserID), slog.Any("error", err))
		if errors.Is(err, domainerrors.ErrPaymentProcessor) {
			return nil, errors.Wrap(err, "failed to create checkout session")
		}

		return nil, domainerrors.ErrPaymentProcessor.WrapMessage(err.Error())
	}

	if session.AmountTotal > 0 {
		amountTotal = session.AmountTotal
	}
	snapshot := &entity.CheckoutSession{
		ID:          session.ID,
		UserID:      input.UserID,
		Items:       items,
		AmountTotal: amountTotal,
		Currency:    srv.currency,
	}
	if err := srv.sessionRepo.Create(ctx, snapshot); err != nil {
		return nil, errors.Wrap(err, "failed to record checkout session")
	}

	srv.log(ctx).Info("Checkout session created",
		slog.String("sessionID", session.ID),
		slog.Any("userID", input.UserID),
		slog.Int64("amountTotal", amountTotal))

	return &usecase.CreateCheckoutOutput{SessionID: session.ID, RedirectURL: session.URL}, nil
}

// HandleWebhook verifies a processor notification and, for a paid checkout, creates one order
// per seller from the snapshot. Replays of the same session id change nothing.
func (srv *checkoutService) HandleWebhook(ctx context.Context, input *usecase.WebhookInput) (*usecase.WebhookOutput, error) {
	event, err := srv.gateway.ParseWebhook(input.Payload, input.Signature)
	if err != nil {
		srv.log(ctx).Warn("Rejected webhook", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to verify webhook")
	}

	output := &usecase.WebhookOutput{EventType: event.Type}
	if event.Type != service.EventCheckoutSessionCompleted {
		srv.log(ctx).Debug("Ignoring webhook event", slog.String("type", event.Type))

		return output, nil
	}
	if event.PaymentStatus != "" && event.PaymentStatus != paymentStatusPaid {
		srv.log(ctx).Info("Ignoring unpaid checkout", slog.String("sessionID", event.SessionID), slog.String("paymentStatus", event.PaymentStatus))

		return output, nil
	}
	if event.SessionID == "" {
		return nil, domainerrors.ErrInvalidWebhookPayload.WrapMessage("missing checkout session id")
	}

	result, err := srv.completeCheckout(ctx, event)
	if err != nil {
		srv.log(ctx).Error("Failed to complete checkout", slog.String("sessionID", event.SessionID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to complete checkout")
	}

	output.Processed = true
	output.Duplicate = result.duplicate
	output.OrdersCreated = len(result.orders)
	if result.duplicate || result.session == nil {
		return output, nil
	}

	srv.afterCompletion(ctx, input.RequestID, event, result)

	return output, nil
}

type completion struct {
	session   *entity.CheckoutSession
	orders    []*entity.Order
	sellers   []uuid.UUID
	duplicate bool
}

func (srv *checkoutService) completeCheckout(ctx context.Context, event *service.WebhookEvent) (*completion, error) {
	result := &completion{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessionRepo := repoFactory.NewCheckoutSessionRepository()

		session, err := sessionRepo.LockByID(ctx, event.SessionID)
		switch {
		case errors.Is(err, repository.ErrCheckoutSessionNotFound):
			session, err = srv.snapshotFromCart(ctx, repoFactory, event)
			if err != nil {
				return err
			}
			if session == nil {
				return nil
			}
		case err != nil:
			return errors.Wrap(err, "failed to lock checkout session")
		case session.Status == entity.CheckoutSessionCompleted:
			result.duplicate = true

			return nil
		}
		result.session = session

		orders, sellers, err := srv.createOrders(ctx, repoFactory, session)
		if err != nil {
			return err
		}
		result.orders = orders
		result.sellers = sellers

		if err := srv.removePurchasedItems(ctx, repoFactory.NewCartRepository(), session); err != nil {
			return err
		}

		return sessionRepo.MarkCompleted(ctx, session.ID, srv.now())
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// snapshotFromCart rebuilds a missing snapshot from the buyer's current cart.
// Returns nil when the buyer has nothing left to order.
func (srv *checkoutService) snapshotFromCart(ctx context.Context, repoFactory repository.RepositoryFactory, event *service.WebhookEvent) (*entity.CheckoutSession, error) {
	userID, err := uuid.Parse(event.Metadata[metadataUserID])
	if err != nil {
		return nil, domainerrors.ErrInvalidWebhookPayload.WrapMessage("checkout session without a valid user_id")
	}

	srv.log(ctx).Warn("Checkout snapshot missing, using buyer cart", slog.String("sessionID", event.SessionID), slog.Any("userID", userID))

	cart, err := repoFactory.NewCartRepository().LockByOwner(ctx, entity.UserCartOwner(userID))
	if err != nil && !errors.Is(err, repository.ErrCartNotFound) {
		return nil, errors.Wrap(err, "failed to lock buyer cart")
	}

	currency := event.Currency
	if currency == "" {
		currency = srv.currency
	}
	session := &entity.CheckoutSession{
		ID:          event.SessionID,
		UserID:      userID,
		Items:       entity.CartItems{},
		AmountTotal: event.AmountTotal,
		Currency:    currency,
	}
	if !cart.IsEmpty() {
		session.Items = cart.Items.Clone()
	}

	sessionRepo := repoFactory.NewCheckoutSessionRepository()
	if err := sessionRepo.Create(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to record checkout session")
	}
	if len(session.Items) == 0 {
		return nil, sessionRepo.MarkCompleted(ctx, session.ID, srv.now())
	}

	return session, nil
}

// createOrders groups the snapshot by seller and inserts one order per seller.
func (srv *checkoutService) createOrders(ctx context.Context, repoFactory repository.RepositoryFactory, session *entity.CheckoutSession) ([]*entity.Order, []uuid.UUID, error) {
	productRepo := repoFactory.NewProductRepository()
	profileRepo := repoFactory.NewProfileRepository()
	orderRepo := repoFactory.NewOrderRepository()

	ids, err := parseProductIDs(session.Items)
	if err != nil {
		return nil, nil, err
	}
	products, err := productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load ordered products")
	}

	bySeller := make(map[uuid.UUID][]*entity.OrderItem)
	for _, id := range ids {
		product, ok := products[id]
		if !ok {
			srv.log(ctx).Warn("Ordered product no longer exists", slog.Any("productID", id), slog.String("sessionID", session.ID))

			continue
		}
		bySeller[product.ProfileID] = append(bySeller[product.ProfileID], &entity.OrderItem{
			ProductID: id,
			Quantity:  session.Items[id.String()].Quantity,
		})
	}

	sellers := make([]uuid.UUID, 0, len(bySeller))
	for sellerID := range bySeller {
		sellers = append(sellers, sellerID)
	}
	slices.SortFunc(sellers, func(a, b uuid.UUID) int { return bytes.Compare(a[:], b[:]) })

	orders := make([]*entity.Order, 0, len(sellers))
	for _, sellerID := range sellers {
		order := &entity.Order{
			CheckoutSessionID: session.ID,
			ProfileID:         sellerID,
			BuyerID:           session.UserID,
			Status:            entity.OrderRequested,
			Items:             bySeller[sellerID],
		}
		created, err := orderRepo.CreateIfAbsent(ctx, order)
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to create order")
		}
		if !created {
			continue
		}

		units := 0
		for _, item := range order.Items {
			if err := productRepo.AddSales(ctx, item.ProductID, item.Quantity); err != nil {
				return nil, nil, errors.Wrap(err, "failed to update product sales")
			}
			units += item.Quantity
		}
		if err := profileRepo.AddSales(ctx, sellerID, units); err != nil {
			return nil, nil, errors.Wrap(err, "failed to update profile sales")
		}
		orders = append(orders, order)
	}

	return orders, sellers, nil
}

// removePurchasedItems drops the paid lines from the buyer's cart. Lines added after checkout stay.
func (srv *checkoutService) removePurchasedItems(ctx context.Context, cartRepo repository.CartRepository, session *entity.CheckoutSession) error {
	cart, err := cartRepo.LockByOwner(ctx, entity.UserCartOwner(session.UserID))
	if errors.Is(err, repository.ErrCartNotFound) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to lock buyer cart")
	}

	items := cart.Items.Clone()
	for id := range session.Items {
		items.Remove(id)
	}
	if len(items) == len(cart.Items) {
		return nil
	}

	return cartRepo.SaveItems(ctx, cart.ID, items)
}

func (srv *checkoutService) afterCompletion(ctx context.Context, requestID string, event *service.WebhookEvent, result *completion) {
	logger := srv.log(ctx)

	keys := []string{cartCountCacheKey(entity.UserCartOwner(result.session.UserID))}
	for _, sellerID := range result.sellers {
		keys = append(keys, profileCacheKey(sellerID))
	}
	cacheDelete(ctx, srv.cache, logger, keys...)

	if len(result.orders) == 0 {
		return
	}

	orderIDs := make([]string, 0, len(result.orders))
	for _, order := range result.orders {
		orderIDs = append(orderIDs, order.ID.String())
	}
	items := make(map[string]int, len(result.session.Items))
	for id, line := range result.session.Items {
		items[id] = line.Quantity
	}

	amountTotal := event.AmountTotal
	if amountTotal == 0 {
		amountTotal = result.session.AmountTotal
	}
	confirmed := &service.OrderConfirmedEvent{
		RequestID:         requestID,
		CheckoutSessionID: result.session.ID,
		BuyerID:           result.session.UserID.String(),
		OrderIDs:          orderIDs,
		AmountTotal:       amountTotal,
		Currency:          result.session.Currency,
		Items:             items,
	}
	if err := srv.publisher.PublishOrderConfirmed(ctx, confirmed); err != nil {
		logger.Error("Failed to publish order confirmation", slog.String("sessionID", result.session.ID), slog.Any("error", err))

		return
	}

	logger.Info("Checkout completed", slog.String("sessionID", result.session.ID), slog.Int("orders", len(result.orders)))
}

func parseProductIDs(items entity.CartItems) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(items))
	for _, id := range items.IDs() {
		parsed, err := uuid.Parse(id)
		if err != nil {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("cart holds an invalid product id")
		}
		ids = append(ids, parsed)
	}

	return ids, nil
}
